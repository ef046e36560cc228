package auth_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "hotel/infras/otel/mocks"
	"hotel/internal/domains/auth/mocks"
	"hotel/internal/domains/auth/model/dto"
	"hotel/internal/handlers/auth"
	"hotel/shared/constant"
	"hotel/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandler_Routes(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		path      string
		body      string
		setupMock func(svc *mocks.MockAuth)
		wantCode  int
		wantBody  string
	}{
		{
			name:   "register",
			method: http.MethodPost,
			path:   "/v1/auth/register",
			body:   `{"email":"budi@example.com","password":"correct-horse","username":"budi"}`,
			setupMock: func(svc *mocks.MockAuth) {
				svc.EXPECT().Register(gomock.Any(), gomock.Any()).
					Return(dto.ProfileResponse{ID: "p-1", Username: "budi", Role: constant.RoleGuest}, nil)
			},
			wantCode: http.StatusCreated,
			wantBody: `"role":"guest"`,
		},
		{
			name:      "register with short password",
			method:    http.MethodPost,
			path:      "/v1/auth/register",
			body:      `{"email":"budi@example.com","password":"short","username":"budi"}`,
			setupMock: func(_ *mocks.MockAuth) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:   "login rejected",
			method: http.MethodPost,
			path:   "/v1/auth/login",
			body:   `{"email":"budi@example.com","password":"wrong"}`,
			setupMock: func(svc *mocks.MockAuth) {
				svc.EXPECT().Login(gomock.Any(), gomock.Any()).
					Return(dto.LoginResponse{}, failure.BadRequestFromString("invalid email or password"))
			},
			wantCode: http.StatusBadRequest,
			wantBody: "invalid email or password",
		},
		{
			name:   "me",
			method: http.MethodGet,
			path:   "/v1/auth/me",
			setupMock: func(svc *mocks.MockAuth) {
				svc.EXPECT().Me(gomock.Any()).Return(dto.ProfileResponse{Email: "budi@example.com"}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: "budi@example.com",
		},
		{
			name:   "change password",
			method: http.MethodPut,
			path:   "/v1/auth/password",
			body:   `{"current_password":"correct-horse","new_password":"battery-staple"}`,
			setupMock: func(svc *mocks.MockAuth) {
				svc.EXPECT().ChangePassword(gomock.Any(), dto.ChangePasswordRequest{
					CurrentPassword: "correct-horse",
					NewPassword:     "battery-staple",
				}).Return(nil)
			},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockAuth(gomock.NewController(t))
			tt.setupMock(svc)

			handler := auth.New(svc, otelMocks.NewOtel())
			router := chi.NewRouter()
			router.Route("/v1", handler.Router)

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}

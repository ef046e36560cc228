package room_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	otelMocks "hotel/infras/otel/mocks"
	"hotel/internal/domains/room/mocks"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/handlers/room"
	"hotel/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*mocks.MockRoomService, http.Handler) {
	svc := mocks.NewMockRoomService(gomock.NewController(t))
	handler := room.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return svc, router
}

func TestHandler_Routes(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		setupMock func(svc *mocks.MockRoomService)
		wantCode  int
		wantBody  string
	}{
		{
			name: "catalog with filters",
			path: "/v1/rooms?type=suite&guests=3&check_in=2024-06-01&check_out=2024-06-03",
			setupMock: func(svc *mocks.MockRoomService) {
				svc.EXPECT().
					ListAvailable(gomock.Any(), dto.CatalogQuery{Type: "suite", Guests: 3, CheckIn: "2024-06-01", CheckOut: "2024-06-03"}).
					Return(dto.CatalogResponse{Guests: 3, Total: 1}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `"total":1`,
		},
		{
			name:      "guests not a number",
			path:      "/v1/rooms?guests=two",
			setupMock: func(_ *mocks.MockRoomService) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "unknown room type",
			path:      "/v1/rooms?type=penthouse",
			setupMock: func(_ *mocks.MockRoomService) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "room detail",
			path: "/v1/rooms/r-1",
			setupMock: func(svc *mocks.MockRoomService) {
				svc.EXPECT().Get(gomock.Any(), "r-1").Return(dto.RoomResponse{ID: "r-1", Name: "Garden Suite"}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `"name":"Garden Suite"`,
		},
		{
			name: "unknown room",
			path: "/v1/rooms/r-404",
			setupMock: func(svc *mocks.MockRoomService) {
				svc.EXPECT().Get(gomock.Any(), "r-404").Return(dto.RoomResponse{}, failure.NotFound("room not found"))
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)
			tt.setupMock(svc)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}

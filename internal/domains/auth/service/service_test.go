package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel/config"
	"hotel/infras/jwt"
	jwtMocks "hotel/infras/jwt/mocks"
	otelMocks "hotel/infras/otel/mocks"
	"hotel/internal/domains/auth/mocks"
	"hotel/internal/domains/auth/model"
	"hotel/internal/domains/auth/model/dto"
	"hotel/internal/domains/auth/service"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/password"
)

const secret = "correct-horse"

type fixture struct {
	repo *mocks.MockProfile
	jwt  *jwtMocks.MockJWT
	svc  service.Auth
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		repo: mocks.NewMockProfile(ctrl),
		jwt:  jwtMocks.NewMockJWT(ctrl),
	}

	f.svc = service.New(f.repo, &config.Config{}, otelMocks.NewOtel(), f.jwt)

	return f
}

func guest(t *testing.T) model.Profile {
	t.Helper()

	hashed, err := password.Hash(secret)
	require.NoError(t, err)

	return model.Profile{
		ID:       "guest-1",
		Email:    "budi@example.com",
		Password: hashed,
		Username: "budi",
		Role:     constant.RoleGuest,
		Active:   true,
	}
}

func tokenPair() *jwt.TokenPair {
	return &jwt.TokenPair{AccessToken: "access", RefreshToken: "refresh", TokenType: "Bearer", ExpiresIn: 900}
}

func withUser(id string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, id)
}

func TestAuthService_Register(t *testing.T) {
	req := dto.RegisterRequest{Email: "budi@example.com", Password: secret, Username: "budi"}

	tests := []struct {
		name        string
		setupMock   func(f fixture)
		wantErrCode int
	}{
		{
			name: "new guest",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, profile model.Profile) error {
						assert.Equal(t, constant.RoleGuest, profile.Role)
						assert.True(t, profile.Active)
						assert.NotEqual(t, secret, profile.Password)
						assert.NoError(t, password.Verify(secret, profile.Password))

						return nil
					})
			},
		},
		{
			name: "email or username taken",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErrCode: http.StatusConflict,
		},
		{
			name: "concurrent registration hits unique index",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: constant.PqErrorCodeUniqueViolation})
			},
			wantErrCode: http.StatusConflict,
		},
		{
			name: "storage down",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("connection refused"))
			},
			wantErrCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Register(context.Background(), req)

			if tt.wantErrCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantErrCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "budi", res.Username)
			assert.Equal(t, constant.RoleGuest, res.Role)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	profile := guest(t)

	tests := []struct {
		name        string
		req         dto.LoginRequest
		setupMock   func(f fixture)
		wantErrCode int
	}{
		{
			name: "successful login",
			req:  dto.LoginRequest{Email: profile.Email, Password: secret},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(profile, nil)
				f.jwt.EXPECT().GenerateTokenPair(profile.ID, profile.Email, constant.RoleGuest).Return(tokenPair(), nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Contains(t, fields, model.FieldLastLogin)

						return nil
					})
			},
		},
		{
			name: "unknown email",
			req:  dto.LoginRequest{Email: "nobody@example.com", Password: secret},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Profile{}, nil)
			},
			wantErrCode: http.StatusBadRequest,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Email: profile.Email, Password: "wrong-password"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(profile, nil)
			},
			wantErrCode: http.StatusBadRequest,
		},
		{
			name: "deactivated profile",
			req:  dto.LoginRequest{Email: profile.Email, Password: secret},
			setupMock: func(f fixture) {
				inactive := profile
				inactive.Active = false

				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inactive, nil)
			},
			wantErrCode: http.StatusForbidden,
		},
		{
			name: "token generation error",
			req:  dto.LoginRequest{Email: profile.Email, Password: secret},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(profile, nil)
				f.jwt.EXPECT().GenerateTokenPair(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("token generation failed"))
			},
			wantErrCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Login(context.Background(), tt.req)

			if tt.wantErrCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantErrCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "access", res.AccessToken)
			assert.Equal(t, "refresh", res.RefreshToken)
			assert.Equal(t, profile.ID, res.Profile.ID)
			assert.NotNil(t, res.Profile.LastLogin)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	profile := guest(t)
	claims := &jwt.Claims{UserID: profile.ID, Email: profile.Email, Role: constant.RoleGuest}

	tests := []struct {
		name        string
		setupMock   func(f fixture)
		wantErrCode int
	}{
		{
			name: "valid refresh token",
			setupMock: func(f fixture) {
				f.jwt.EXPECT().ValidateToken("refresh", jwt.RefreshToken).Return(claims, nil)
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(profile, nil)
				f.jwt.EXPECT().GenerateTokenPair(profile.ID, profile.Email, profile.Role).Return(tokenPair(), nil)
			},
		},
		{
			name: "role promoted since last login",
			setupMock: func(f fixture) {
				admin := profile
				admin.Role = constant.RoleAdmin

				f.jwt.EXPECT().ValidateToken("refresh", jwt.RefreshToken).Return(claims, nil)
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(admin, nil)
				f.jwt.EXPECT().GenerateTokenPair(profile.ID, profile.Email, constant.RoleAdmin).Return(tokenPair(), nil)
			},
		},
		{
			name: "expired token",
			setupMock: func(f fixture) {
				f.jwt.EXPECT().ValidateToken("refresh", jwt.RefreshToken).Return(nil, jwt.ErrExpiredToken)
			},
			wantErrCode: http.StatusUnauthorized,
		},
		{
			name: "profile deactivated",
			setupMock: func(f fixture) {
				inactive := profile
				inactive.Active = false

				f.jwt.EXPECT().ValidateToken("refresh", jwt.RefreshToken).Return(claims, nil)
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inactive, nil)
			},
			wantErrCode: http.StatusUnauthorized,
		},
		{
			name: "profile removed",
			setupMock: func(f fixture) {
				f.jwt.EXPECT().ValidateToken("refresh", jwt.RefreshToken).Return(claims, nil)
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Profile{}, nil)
			},
			wantErrCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh"})

			if tt.wantErrCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantErrCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "access", res.AccessToken)
			assert.Equal(t, "Bearer", res.TokenType)
		})
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	profile := guest(t)

	tests := []struct {
		name        string
		ctx         context.Context
		req         dto.ChangePasswordRequest
		setupMock   func(f fixture)
		wantErrCode int
	}{
		{
			name: "password changed",
			ctx:  withUser(profile.ID),
			req:  dto.ChangePasswordRequest{CurrentPassword: secret, NewPassword: "battery-staple"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(profile, nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						hashed, ok := fields[model.FieldPassword].(string)
						require.True(t, ok)
						assert.NoError(t, password.Verify("battery-staple", hashed))
						assert.Equal(t, profile.ID, fields[constant.FieldModifiedBy])

						return nil
					})
			},
		},
		{
			name:        "anonymous caller",
			ctx:         context.Background(),
			req:         dto.ChangePasswordRequest{CurrentPassword: secret, NewPassword: "battery-staple"},
			setupMock:   func(fixture) {},
			wantErrCode: http.StatusUnauthorized,
		},
		{
			name: "current password mismatch",
			ctx:  withUser(profile.ID),
			req:  dto.ChangePasswordRequest{CurrentPassword: "not-it", NewPassword: "battery-staple"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(profile, nil)
			},
			wantErrCode: http.StatusBadRequest,
		},
		{
			name: "update fails",
			ctx:  withUser(profile.ID),
			req:  dto.ChangePasswordRequest{CurrentPassword: secret, NewPassword: "battery-staple"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(profile, nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("deadlock"))
			},
			wantErrCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			err := f.svc.ChangePassword(tt.ctx, tt.req)

			if tt.wantErrCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantErrCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestAuthService_Me(t *testing.T) {
	profile := guest(t)

	f := newFixture(t)
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(profile, nil)

	res, err := f.svc.Me(withUser(profile.ID))
	require.NoError(t, err)

	assert.Equal(t, profile.Email, res.Email)
	assert.Equal(t, constant.RoleGuest, res.Role)
	assert.Nil(t, res.LastLogin)

	_, err = newFixture(t).svc.Me(context.Background())
	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
}

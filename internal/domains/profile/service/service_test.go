package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"hotel/config"
	otelMocks "hotel/infras/otel/mocks"
	authMocks "hotel/internal/domains/auth/mocks"
	authModel "hotel/internal/domains/auth/model"
	"hotel/internal/domains/profile/model/dto"
	"hotel/internal/domains/profile/service"
	"hotel/shared/cache"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const adminID = "0f8e2d4c-7b6a-4e1f-9a3b-000000000001"

type fixture struct {
	repo  *authMocks.MockProfile
	cache *cacheMocks.MockRedisCache
	svc   service.Profile
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	f := fixture{
		repo:  authMocks.NewMockProfile(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}

	f.svc = service.New(f.repo, cfg, f.cache, otelMocks.NewOtel())

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func adminContext() context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, adminID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleAdmin)
}

func guestProfile() authModel.Profile {
	return authModel.Profile{
		ID:       "p-guest",
		Email:    "budi@example.com",
		Username: "budi",
		Role:     constant.RoleGuest,
		Active:   true,
	}
}

func TestProfileService_GetAll(t *testing.T) {
	tests := []struct {
		name      string
		params    gDto.QueryParams
		setupMock func(f fixture)
		wantSort  string
		wantTotal int
		wantErr   bool
	}{
		{
			name:   "unknown sort column falls back to created_at",
			params: gDto.QueryParams{Page: 1, Limit: 10, SortBy: "password; DROP TABLE profiles"},
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
				f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
				f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]authModel.Profile, error) {
						assert.Equal(t, "profiles.created_at", params.SortBy)
						assert.Equal(t, gDto.SortDirDesc, params.SortDir)

						return []authModel.Profile{guestProfile(), {ID: adminID, Role: constant.RoleAdmin}}, nil
					})
			},
			wantTotal: 2,
		},
		{
			name:   "allowed sort column is kept",
			params: gDto.QueryParams{Page: 1, Limit: 10, SortBy: authModel.FieldEmail, SortDir: gDto.SortDirAsc},
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
				f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
				f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]authModel.Profile, error) {
						assert.Equal(t, "profiles.email", params.SortBy)
						assert.Equal(t, gDto.SortDirAsc, params.SortDir)

						return []authModel.Profile{guestProfile()}, nil
					})
			},
			wantTotal: 1,
		},
		{
			name:   "count fails",
			params: gDto.QueryParams{Page: 1, Limit: 10},
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
				f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("connection reset"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.GetAll(adminContext(), tt.params, dto.ListQuery{})

			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, res.TotalData)
			assert.Len(t, res.Profiles, tt.wantTotal)
		})
	}
}

func TestProfileService_Get(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), "profile:get:missing", gomock.Any()).Return(cache.Nil)
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(authModel.Profile{}, nil)

	_, err := f.svc.Get(adminContext(), "missing")

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestProfileService_Update(t *testing.T) {
	guest := constant.RoleGuest
	admin := constant.RoleAdmin
	inactive := false

	tests := []struct {
		name        string
		id          string
		req         dto.UpdateProfileRequest
		setupMock   func(f fixture)
		wantRole    string
		wantErrCode int
	}{
		{
			name:        "empty request",
			id:          "p-guest",
			req:         dto.UpdateProfileRequest{},
			setupMock:   func(fixture) {},
			wantErrCode: http.StatusBadRequest,
		},
		{
			name:        "admin cannot demote themselves",
			id:          adminID,
			req:         dto.UpdateProfileRequest{Role: &guest},
			setupMock:   func(fixture) {},
			wantErrCode: http.StatusBadRequest,
		},
		{
			name:        "admin cannot deactivate themselves",
			id:          adminID,
			req:         dto.UpdateProfileRequest{Active: &inactive},
			setupMock:   func(fixture) {},
			wantErrCode: http.StatusBadRequest,
		},
		{
			name: "unknown profile",
			id:   "p-missing",
			req:  dto.UpdateProfileRequest{Role: &admin},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(authModel.Profile{}, nil)
			},
			wantErrCode: http.StatusNotFound,
		},
		{
			name: "promote guest",
			id:   "p-guest",
			req:  dto.UpdateProfileRequest{Role: &admin},
			setupMock: func(f fixture) {
				promoted := guestProfile()
				promoted.Role = constant.RoleAdmin

				gomock.InOrder(
					f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(guestProfile(), nil),
					f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
							assert.Equal(t, &admin, fields[authModel.FieldRole])
							assert.Equal(t, adminID, fields[constant.FieldModifiedBy])
							assert.NotContains(t, fields, authModel.FieldActive)

							return nil
						}),
					f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(promoted, nil),
				)
			},
			wantRole: constant.RoleAdmin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Update(adminContext(), tt.req, tt.id)

			if tt.wantErrCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantErrCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, res.Role)
		})
	}
}

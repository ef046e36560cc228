package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"slices"

	"hotel/config"
	"hotel/infras/otel"
	authModel "hotel/internal/domains/auth/model"
	authDto "hotel/internal/domains/auth/model/dto"
	"hotel/internal/domains/auth/repository"
	"hotel/internal/domains/profile/model/dto"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetProfile    = "profile:get"
	cacheGetAllProfile = "profile:gets"
)

var sortable = []string{
	constant.FieldCreatedAt,
	authModel.FieldEmail,
	authModel.FieldUsername,
	authModel.FieldLastLogin,
}

// Profile lets admins look after accounts: list them, promote or demote, deactivate.
type Profile interface {
	GetAll(ctx context.Context, params gDto.QueryParams, query dto.ListQuery) (dto.GetProfilesResponse, error)
	Get(ctx context.Context, id string) (authDto.ProfileResponse, error)
	Update(ctx context.Context, req dto.UpdateProfileRequest, id string) (authDto.ProfileResponse, error)
}

type serviceImpl struct {
	repo  repository.Profile
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Profile, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Profile {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, query dto.ListQuery) (res dto.GetProfilesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !slices.Contains(sortable, params.SortBy) {
		params.SortBy = constant.DefaultValueSortBy
	}

	if params.SortDir == constant.Empty {
		params.SortDir = constant.DefaultValueSortDir
	}

	params.SortBy = authModel.TableName + "." + params.SortBy

	filter := query.Filter()
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllProfile, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for profiles")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count profiles")

		return res, fmt.Errorf("failed to count profiles: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get profiles")

		return res, fmt.Errorf("failed to get profiles: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save profiles to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res authDto.ProfileResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetProfile, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for profile")

		return res, nil
	}

	profile, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(profile)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save profile to cache")
		}
	}()

	return res, nil
}

// Update applies an admin edit. An admin cannot demote or deactivate their own account,
// which keeps at least the acting admin in charge.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateProfileRequest, id string) (res authDto.ProfileResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return res, failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if user == id && req.Demotes() {
		return res, failure.BadRequestFromString("you cannot demote or deactivate your own account") // nolint:wrapcheck
	}

	if _, err = s.get(ctx, id); err != nil {
		return res, err
	}

	filter := shared.FilterByID(id, authModel.FieldID, authModel.TableName)

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Str("profile_id", id).Msg("failed to update profile")

		return res, fmt.Errorf("failed to update profile: %w", err)
	}

	updated, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(updated)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetProfile, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete profile from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllProfile)
	}()

	return res, nil
}

func (s *serviceImpl) get(ctx context.Context, id string) (authModel.Profile, error) {
	profile, err := s.repo.Get(ctx, shared.FilterByID(id, authModel.FieldID, authModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("profile_id", id).Msg("failed to get profile")

		return profile, fmt.Errorf("failed to get profile: %w", err)
	}

	if profile.ID == constant.Empty {
		return profile, failure.NotFound("profile not found") // nolint:wrapcheck
	}

	return profile, nil
}

package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Room=MockRoomService

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/s3"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoom     = "room:get"
	cacheCatalogRoom = "room:catalog"
)

type Room interface {
	ListAvailable(ctx context.Context, query dto.CatalogQuery) (dto.CatalogResponse, error)
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
	GetModel(ctx context.Context, id string) (model.Room, error)
	GetAll(ctx context.Context) ([]model.Room, error)
	Create(ctx context.Context, req dto.CreateRoomRequest) (model.Room, error)
	Update(ctx context.Context, req dto.UpdateRoomRequest, id string) (model.Room, error)
	ToggleAvailability(ctx context.Context, id string) (model.Room, error)
}

type serviceImpl struct {
	repo  repository.Room
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Room {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

// ListAvailable returns bookable rooms ordered by nightly price, cheapest first.
func (s *serviceImpl) ListAvailable(ctx context.Context, query dto.CatalogQuery) (res dto.CatalogResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListAvailable")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldIsAvailable,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.TableName,
			},
		},
	}

	if typ, ok := query.TypeFilter(); ok {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldType,
			Operator: gDto.FilterOperatorEq,
			Value:    string(typ),
			Table:    model.TableName,
		})
	}

	params := gDto.QueryParams{
		SortBy:  model.TableName + "." + model.FieldPricePerNight,
		SortDir: gDto.SortDirAsc,
	}

	var rooms []model.Room

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCatalogRoom, params, filter)

	err = s.cache.Get(ctx, cacheKey, &rooms)
	if err != nil {
		rooms, err = s.repo.GetAll(ctx, params, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to get available rooms")

			return res, fmt.Errorf("failed to get available rooms: %w", err)
		}

		go func() {
			c := context.WithoutCancel(ctx)

			if err := s.cache.Save(c, cacheKey, rooms, s.cfg.Cache.TTL); err != nil {
				log.Error().Err(err).Msg("failed to save room catalog to cache")
			}
		}()
	} else {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room catalog")
	}

	res.FromModels(rooms, query)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetRoom, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room")

		return res, nil
	}

	room, err := s.GetModel(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(room)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room to cache")
		}
	}()

	return res, nil
}

// GetModel reads a room straight from storage, failure.NotFound when it does not exist.
func (s *serviceImpl) GetModel(ctx context.Context, id string) (room model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetModel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, err = s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return room, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return room, failure.NotFound("room not found") // nolint:wrapcheck
	}

	return room, nil
}

// GetAll lists every room for the admin view, grouped by type.
func (s *serviceImpl) GetAll(ctx context.Context) (rooms []model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params := gDto.QueryParams{
		SortBy:  model.TableName + "." + model.FieldType,
		SortDir: gDto.SortDirAsc,
	}

	rooms, err = s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}

	return rooms, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (room model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var images []string

	uploadedObject := constant.Empty

	if req.Image != nil {
		url, objectName, err := s.uploadImage(ctx, req.ImageFile, req.Image)
		if err != nil {
			return room, err
		}

		images = append(images, url)
		uploadedObject = objectName
	}

	room = req.ToModel(user, images)

	if err = s.repo.Insert(ctx, room); err != nil {
		log.Error().Err(err).Msg("failed to create room")

		s.discardImage(ctx, uploadedObject)

		return room, fmt.Errorf("failed to create room: %w", err)
	}

	s.invalidate(ctx, room.ID)

	return room, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomRequest, id string) (room model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return room, failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.GetModel(ctx, id)
	if err != nil {
		return room, err
	}

	updatedFields := shared.TransformFields(req, user)

	if amenities := req.AmenityList(); amenities != nil {
		updatedFields[model.FieldAmenities] = amenities
	}

	uploadedObject := constant.Empty

	if req.Image != nil {
		url, objectName, err := s.uploadImage(ctx, req.ImageFile, req.Image)
		if err != nil {
			return room, err
		}

		updatedFields[model.FieldImages] = append(current.Images, url)
		uploadedObject = objectName
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update room")

		s.discardImage(ctx, uploadedObject)

		return room, fmt.Errorf("failed to update room: %w", err)
	}

	s.invalidate(ctx, id)

	return s.GetModel(ctx, id)
}

// ToggleAvailability flips is_available and returns the stored row.
func (s *serviceImpl) ToggleAvailability(ctx context.Context, id string) (room model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ToggleAvailability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	current, err := s.GetModel(ctx, id)
	if err != nil {
		return room, err
	}

	updatedFields := map[string]any{
		model.FieldIsAvailable:   !current.IsAvailable,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to toggle room availability")

		return room, fmt.Errorf("failed to toggle room availability: %w", err)
	}

	s.invalidate(ctx, id)

	return s.GetModel(ctx, id)
}

func (s *serviceImpl) uploadImage(ctx context.Context, file multipart.File, header *multipart.FileHeader) (url, objectName string, err error) {
	objectName = uuid.NewString() + filepath.Ext(header.Filename)

	url, err = s.s3.UploadFile(ctx, s.cfg.External.S3.BucketName, s.cfg.Room.ImageDir, file, header, objectName)
	if err != nil {
		log.Error().Err(err).Str("file", header.Filename).Msg("failed to upload room image")

		return "", "", fmt.Errorf("failed to upload image: %w", err)
	}

	return url, objectName, nil
}

func (s *serviceImpl) discardImage(ctx context.Context, objectName string) {
	if objectName == constant.Empty {
		return
	}

	if err := s.s3.DeleteFile(ctx, s.cfg.External.S3.BucketName, s.cfg.Room.ImageDir, objectName); err != nil {
		log.Error().Err(err).Str("object", objectName).Msg("failed to remove orphaned room image")
	}
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoom, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete room from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheCatalogRoom)
	}()
}

package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"errors"
	"fmt"

	"hotel/config"
	"hotel/infras/metrics"
	"hotel/infras/otel"
	"hotel/internal/domains/booking/event"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/repository"
	roomModel "hotel/internal/domains/room/model"
	roomRepo "hotel/internal/domains/room/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/pricing"
	"hotel/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking   = "booking:get"
	cacheMineBooking  = "booking:mine"
	cacheCountBooking = "booking:count"
)

const msgOverlap = "room is already booked for the selected dates"

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetMine(ctx context.Context, params gDto.QueryParams) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetModel(ctx context.Context, id string) (model.Booking, error)
	GetAll(ctx context.Context) ([]model.Booking, error)
	SetStatus(ctx context.Context, id string, status model.Status) (model.Booking, error)
	SetPaymentStatus(ctx context.Context, id string, status model.PaymentStatus) (model.Booking, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Booking
	roomRepo  roomRepo.Room
	publisher event.Publisher
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.Booking, roomRepo roomRepo.Room, publisher event.Publisher, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:      repo,
		roomRepo:  roomRepo,
		publisher: publisher,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

// Create books a room for the authenticated caller. The total is always priced here,
// never taken from the client.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		return res, failure.Unauthorized("sign in to book a room") // nolint:wrapcheck
	}

	// API key callers have no profile to own the booking.
	if user == constant.ContextInternal {
		return res, failure.Forbidden("bookings must be made from a signed-in account") // nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room for booking")
		metrics.BookingRequestsTotal.WithLabelValues(metrics.OutcomeFailed).Inc()

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		metrics.BookingRequestsTotal.WithLabelValues(metrics.OutcomeRejected).Inc()

		return res, failure.BadRequestFromString("room does not exist") // nolint:wrapcheck
	}

	booking, err := req.ToModel(user, room)
	if err != nil {
		metrics.BookingRequestsTotal.WithLabelValues(metrics.OutcomeRejected).Inc()

		return res, rejection(err, room)
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		if failure.HasPqCode(err, constant.PqErrorCodeExclusionViolation) {
			metrics.BookingRequestsTotal.WithLabelValues(metrics.OutcomeConflict).Inc()

			return res, failure.Conflict(msgOverlap) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create booking")
		metrics.BookingRequestsTotal.WithLabelValues(metrics.OutcomeFailed).Inc()

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	metrics.BookingRequestsTotal.WithLabelValues(metrics.OutcomeCreated).Inc()

	s.invalidate(ctx, booking.ID)
	s.touch(ctx)
	s.publisher.Publish(ctx, event.TypeCreated, booking)

	res.FromModel(booking)

	return res, nil
}

func rejection(err error, room roomModel.Room) error {
	switch {
	case errors.Is(err, dto.ErrRoomUnavailable):
		return failure.BadRequestFromString(err.Error()) // nolint:wrapcheck
	case errors.Is(err, dto.ErrOverCapacity):
		return failure.BadRequestFromString(fmt.Sprintf("%s can host at most %d guests", room.Name, room.Capacity)) // nolint:wrapcheck
	case errors.Is(err, pricing.ErrInvalidStay):
		return failure.BadRequestFromString(err.Error()) // nolint:wrapcheck
	}

	return failure.BadRequest(err) // nolint:wrapcheck
}

// GetMine pages through the caller's own bookings, newest first.
func (s *serviceImpl) GetMine(ctx context.Context, params gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMine")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		return res, failure.Unauthorized("sign in to see your bookings") // nolint:wrapcheck
	}

	params.SortBy = model.TableName + "." + constant.FieldCreatedAt
	params.SortDir = gDto.SortDirDesc

	filter := shared.FilterByID(user, model.FieldUserID, model.TableName)
	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(cacheMineBooking, user), params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for own bookings")

		return res, nil
	}

	total, err := s.count(ctx, user, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) count(ctx context.Context, user string, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheCountBooking, user)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

// Get returns a booking to its owner or to an admin.
func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err != nil {
		booking, err := s.GetModel(ctx, id)
		if err != nil {
			return res, err
		}

		res.FromModel(booking)

		go func() {
			c := context.WithoutCancel(ctx)

			if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
				log.Error().Err(err).Msg("failed to save booking to cache")
			}
		}()
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if role != constant.RoleAdmin && res.UserID != user {
		return dto.BookingResponse{}, failure.ResourceRestrictedError
	}

	return res, nil
}

func (s *serviceImpl) GetModel(ctx context.Context, id string) (booking model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetModel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err = s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

// GetAll loads every booking with its room, newest first.
func (s *serviceImpl) GetAll(ctx context.Context) (bookings []model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params := gDto.QueryParams{
		SortBy:  model.TableName + "." + constant.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}

	bookings, err = s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	return bookings, nil
}

// SetStatus cancels or restores a booking. Restoring into an occupied range is a conflict.
func (s *serviceImpl) SetStatus(ctx context.Context, id string, status model.Status) (booking model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !status.IsValid() {
		return booking, failure.BadRequestFromString("unsupported booking status") // nolint:wrapcheck
	}

	current, err := s.GetModel(ctx, id)
	if err != nil {
		return booking, err
	}

	if current.BookingStatus == status {
		return current, nil
	}

	err = s.update(ctx, id, model.FieldBookingStatus, status)
	if failure.HasPqCode(err, constant.PqErrorCodeExclusionViolation) {
		return booking, failure.Conflict(msgOverlap) // nolint:wrapcheck
	}

	if err != nil {
		return booking, err
	}

	booking, err = s.GetModel(ctx, id)
	if err != nil {
		return booking, err
	}

	s.publisher.Publish(ctx, event.StatusChange(status), booking)

	return booking, nil
}

func (s *serviceImpl) SetPaymentStatus(ctx context.Context, id string, status model.PaymentStatus) (booking model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetPaymentStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !status.IsValid() {
		return booking, failure.BadRequestFromString("unsupported payment status") // nolint:wrapcheck
	}

	current, err := s.GetModel(ctx, id)
	if err != nil {
		return booking, err
	}

	if current.PaymentStatus == status {
		return current, nil
	}

	if err = s.update(ctx, id, model.FieldPaymentStatus, status); err != nil {
		return booking, err
	}

	booking, err = s.GetModel(ctx, id)
	if err != nil {
		return booking, err
	}

	s.publisher.Publish(ctx, event.TypePaymentUpdated, booking)

	return booking, nil
}

func (s *serviceImpl) update(ctx context.Context, id, field string, value any) error {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields := map[string]any{
		field:                    value,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("field", field).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.GetModel(ctx, id)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	s.invalidate(ctx, id)
	s.publisher.Publish(ctx, event.TypeDeleted, booking)

	return nil
}

// touch stamps the booking set as changed so dashboard views on every instance reload.
func (s *serviceImpl) touch(ctx context.Context) {
	if err := s.cache.Save(ctx, constant.CacheKeyBookingStamp, uuid.NewString(), 0); err != nil {
		log.Error().Err(err).Msg("failed to stamp booking change")
	}
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheMineBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}

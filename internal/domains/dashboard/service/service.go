package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotel/config"
	"hotel/infras/metrics"
	"hotel/infras/otel"
	bookingModel "hotel/internal/domains/booking/model"
	bookingService "hotel/internal/domains/booking/service"
	"hotel/internal/domains/dashboard/model"
	roomModel "hotel/internal/domains/room/model"
	roomDto "hotel/internal/domains/room/model/dto"
	roomService "hotel/internal/domains/room/service"
	"hotel/shared/cache"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const reloadKey = "dashboard"

var errUnavailable = errors.New("failed to load dashboard data")

type Dashboard interface {
	Get(ctx context.Context, refresh bool) (model.Snapshot, error)
	SetBookingStatus(ctx context.Context, id string, status bookingModel.Status) (model.Snapshot, error)
	SetPaymentStatus(ctx context.Context, id string, status bookingModel.PaymentStatus) (model.Snapshot, error)
	DeleteBooking(ctx context.Context, id string) (model.Snapshot, error)
	ToggleRoom(ctx context.Context, id string) (model.Snapshot, error)
	UpdateRoom(ctx context.Context, req roomDto.UpdateRoomRequest, id string) (model.Snapshot, error)
	CreateRoom(ctx context.Context, req roomDto.CreateRoomRequest) (model.Snapshot, error)
}

type serviceImpl struct {
	bookings bookingService.Booking
	rooms    roomService.Room
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	view     *view
	group    singleflight.Group
}

func New(bookings bookingService.Booking, rooms roomService.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Dashboard {
	return &serviceImpl{
		bookings: bookings,
		rooms:    rooms,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		view:     newView(),
	}
}

// Get serves the cached view, reloading it when empty, expired or explicitly requested.
func (s *serviceImpl) Get(ctx context.Context, refresh bool) (res model.Snapshot, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if refresh {
		return s.reload(ctx, model.ReloadRequested)
	}

	return s.current(ctx)
}

func (s *serviceImpl) SetBookingStatus(ctx context.Context, id string, status bookingModel.Status) (res model.Snapshot, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetBookingStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.bookings.SetStatus(ctx, id, status)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	return s.afterPatch(ctx, s.view.patchBooking(booking))
}

func (s *serviceImpl) SetPaymentStatus(ctx context.Context, id string, status bookingModel.PaymentStatus) (res model.Snapshot, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetPaymentStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.bookings.SetPaymentStatus(ctx, id, status)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	return s.afterPatch(ctx, s.view.patchBooking(booking))
}

func (s *serviceImpl) DeleteBooking(ctx context.Context, id string) (res model.Snapshot, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.bookings.Delete(ctx, id); err != nil {
		return res, err //nolint:wrapcheck
	}

	return s.afterPatch(ctx, s.view.removeBooking(id))
}

func (s *serviceImpl) ToggleRoom(ctx context.Context, id string) (res model.Snapshot, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ToggleRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, err := s.rooms.ToggleAvailability(ctx, id)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	return s.afterPatch(ctx, s.view.patchRoom(room))
}

func (s *serviceImpl) UpdateRoom(ctx context.Context, req roomDto.UpdateRoomRequest, id string) (res model.Snapshot, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, err := s.rooms.Update(ctx, req, id)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	return s.afterPatch(ctx, s.view.patchRoom(room))
}

func (s *serviceImpl) CreateRoom(ctx context.Context, req roomDto.CreateRoomRequest) (res model.Snapshot, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, err := s.rooms.Create(ctx, req)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	return s.afterPatch(ctx, s.view.addRoom(room))
}

// afterPatch falls back to a full reload when the patch could not be applied to the view.
func (s *serviceImpl) afterPatch(ctx context.Context, applied bool) (model.Snapshot, error) {
	if !applied {
		return s.reload(ctx, model.ReloadUnknownID)
	}

	return s.current(ctx)
}

func (s *serviceImpl) current(ctx context.Context) (model.Snapshot, error) {
	ttl := time.Duration(s.cfg.Dashboard.ViewTTLSeconds) * time.Second

	if reason := s.view.staleness(timezone.Now(), ttl, s.bookingStamp(ctx)); reason != constant.Empty {
		return s.reload(ctx, reason)
	}

	return s.view.snapshot(), nil
}

// bookingStamp reads the stamp bumped by guest bookings. An unreachable cache reads
// as no stamp, which leaves the TTL as the only expiry.
func (s *serviceImpl) bookingStamp(ctx context.Context) string {
	var stamp string

	if err := s.cache.Get(ctx, constant.CacheKeyBookingStamp, &stamp); err != nil {
		if !errors.Is(err, cache.Nil) {
			log.Warn().Err(err).Msg("failed to read booking stamp")
		}

		return constant.Empty
	}

	return stamp
}

// reload re-reads both collections. Concurrent reloads share one round trip and
// a failed or outdated reload leaves the previous view untouched.
func (s *serviceImpl) reload(ctx context.Context, reason string) (model.Snapshot, error) {
	_, err, _ := s.group.Do(reloadKey, func() (any, error) {
		c := context.WithoutCancel(ctx)

		stamp := s.bookingStamp(c)
		version := s.view.currentVersion()

		var (
			bookings []bookingModel.Booking
			rooms    []roomModel.Room
		)

		g, gctx := errgroup.WithContext(c)

		g.Go(func() (err error) {
			bookings, err = s.bookings.GetAll(gctx)

			return err //nolint:wrapcheck
		})

		g.Go(func() (err error) {
			rooms, err = s.rooms.GetAll(gctx)

			return err //nolint:wrapcheck
		})

		if err := g.Wait(); err != nil {
			return nil, fmt.Errorf("reload dashboard: %w", err)
		}

		if !s.view.replace(bookings, rooms, timezone.Now(), stamp, version) {
			log.Debug().Str("reason", reason).Msg("dashboard patched during reload, keeping patched view")

			return nil, nil
		}

		metrics.DashboardReloadsTotal.WithLabelValues(reason).Inc()

		return nil, nil
	})
	if err != nil {
		log.Error().Err(err).Str("reason", reason).Msg("failed to reload dashboard")

		return model.Snapshot{}, failure.InternalError(errUnavailable) //nolint:wrapcheck
	}

	return s.view.snapshot(), nil
}

package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/mailer"
	"hotel/infras/metrics"
	"hotel/infras/otel"
	"hotel/internal/domains/booking/event"
	"hotel/internal/domains/notification/model"
	"hotel/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

type Notification interface {
	// Handle is a kafka.Handler. Returning an error leaves the offset uncommitted.
	Handle(ctx context.Context, message kafkaGo.Message) error
}

type serviceImpl struct {
	mailer mailer.Mailer
	cfg    *config.Config
	otel   otel.Otel
}

func New(mailer mailer.Mailer, cfg *config.Config, otel otel.Otel) Notification {
	return &serviceImpl{
		mailer: mailer,
		cfg:    cfg,
		otel:   otel,
	}
}

// Handle mails the guest about a booking event. Undecodable messages are dropped so
// they do not block the partition. Mail failures are returned for redelivery, which
// means a guest may receive the same notice twice.
func (s *serviceImpl) Handle(ctx context.Context, message kafkaGo.Message) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Handle")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	evt, decodeErr := kafka.Decode[event.Event](message)
	if decodeErr != nil {
		scope.TraceError(decodeErr)
		log.Error().Err(decodeErr).Str("key", string(message.Key)).Msg("dropping undecodable booking event")
		metrics.NotificationsTotal.WithLabelValues(metrics.OutcomeRejected).Inc()

		return nil
	}

	scope.SetAttributes(map[string]any{
		event.HeaderEventType: string(evt.Type),
		"booking_id":          evt.BookingID,
	})

	content, ok := model.MessageFor(evt.Type)
	if !ok || evt.GuestEmail == constant.Empty {
		metrics.NotificationsTotal.WithLabelValues(metrics.OutcomeSkipped).Inc()

		return nil
	}

	html, text, err := model.NewNotice(s.cfg.Report.HotelName, content.Headline, evt).Render()
	if err != nil {
		log.Error().Err(err).Str("booking", evt.BookingID).Msg("failed to render notice")
		metrics.NotificationsTotal.WithLabelValues(metrics.OutcomeRejected).Inc()

		return nil
	}

	err = s.mailer.Send(ctx, mailer.Mail{
		To:       evt.GuestEmail,
		Subject:  fmt.Sprintf("[%s] %s", s.cfg.Report.HotelName, content.Subject),
		HTMLBody: html,
		TextBody: text,
	})
	if err != nil {
		metrics.NotificationsTotal.WithLabelValues(metrics.OutcomeFailed).Inc()

		return fmt.Errorf("notify booking %s: %w", evt.BookingID, err)
	}

	metrics.NotificationsTotal.WithLabelValues(metrics.OutcomeSent).Inc()

	return nil
}

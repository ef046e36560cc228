// Package event publishes booking lifecycle events for the notification worker.
package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=../mocks/event_mock.go -package=mocks

import (
	"context"

	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/internal/domains/booking/model"
	"hotel/shared/constant"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

const HeaderEventType = "event_type"

type Type string

const (
	TypeCreated        Type = "booking.created"
	TypeCancelled      Type = "booking.cancelled"
	TypeRestored       Type = "booking.restored"
	TypePaymentUpdated Type = "booking.payment_updated"
	TypeDeleted        Type = "booking.deleted"
)

// Event is the JSON value written to the booking topic.
type Event struct {
	Type          Type   `json:"type"`
	BookingID     string `json:"booking_id"`
	RoomName      string `json:"room_name"`
	GuestName     string `json:"guest_name"`
	GuestEmail    string `json:"guest_email"`
	CheckInDate   string `json:"check_in_date"`
	CheckOutDate  string `json:"check_out_date"`
	Nights        int    `json:"nights"`
	GuestsCount   int    `json:"guests_count"`
	TotalPrice    int64  `json:"total_price"`
	PaymentMethod string `json:"payment_method"`
	PaymentStatus string `json:"payment_status"`
	BookingStatus string `json:"booking_status"`
	OccurredAt    string `json:"occurred_at"`
}

func New(eventType Type, booking model.Booking) Event {
	return Event{
		Type:          eventType,
		BookingID:     booking.ID,
		RoomName:      booking.RoomName,
		GuestName:     booking.GuestName,
		GuestEmail:    booking.GuestEmail,
		CheckInDate:   booking.CheckInDate.String(),
		CheckOutDate:  booking.CheckOutDate.String(),
		Nights:        booking.Nights(),
		GuestsCount:   booking.GuestsCount,
		TotalPrice:    booking.TotalPrice,
		PaymentMethod: string(booking.PaymentMethod),
		PaymentStatus: string(booking.PaymentStatus),
		BookingStatus: string(booking.BookingStatus),
		OccurredAt:    timezone.Format(timezone.Now(), constant.DateFormat),
	}
}

// StatusChange picks the event type for a booking status transition.
func StatusChange(status model.Status) Type {
	if status == model.StatusCancelled {
		return TypeCancelled
	}

	return TypeRestored
}

type Publisher interface {
	Publish(ctx context.Context, eventType Type, booking model.Booking)
}

type publisherImpl struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func NewPublisher(client kafka.Client, cfg *config.Config, otel otel.Otel) Publisher {
	return &publisherImpl{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

// Publish sends in the background. A failed publish is logged and never fails the caller.
func (p *publisherImpl) Publish(ctx context.Context, eventType Type, booking model.Booking) {
	message := kafka.Message{
		Key:     booking.ID,
		Value:   New(eventType, booking),
		Headers: map[string]string{HeaderEventType: string(eventType)},
	}

	go func() {
		c, scope := p.otel.NewScope(context.WithoutCancel(ctx), constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
		defer scope.End()

		scope.SetAttribute(HeaderEventType, string(eventType))

		if err := p.client.SendMessages(c, p.cfg.Kafka.Topic.Booking, message); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("booking", booking.ID).Str("event", string(eventType)).Msg("failed to publish booking event")
		}
	}()
}

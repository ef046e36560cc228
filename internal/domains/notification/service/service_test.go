package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"hotel/config"
	"hotel/infras/mailer"
	mailerMocks "hotel/infras/mailer/mocks"
	otelMocks "hotel/infras/otel/mocks"
	"hotel/internal/domains/booking/event"
	"hotel/internal/domains/notification/service"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func message(t *testing.T, evt event.Event) kafkaGo.Message {
	t.Helper()

	value, err := json.Marshal(evt)
	require.NoError(t, err)

	return kafkaGo.Message{Key: []byte(evt.BookingID), Value: value}
}

func booked() event.Event {
	return event.Event{
		Type:          event.TypeCreated,
		BookingID:     "b-1",
		RoomName:      "Garden View 101",
		GuestName:     "Budi Santoso",
		GuestEmail:    "budi@example.com",
		CheckInDate:   "2024-06-01",
		CheckOutDate:  "2024-06-03",
		Nights:        2,
		GuestsCount:   2,
		TotalPrice:    470000,
		PaymentMethod: "bank_transfer",
		PaymentStatus: "completed",
		BookingStatus: "confirmed",
	}
}

func TestNotificationService_Handle(t *testing.T) {
	tests := []struct {
		name      string
		message   func(t *testing.T) kafkaGo.Message
		setupMock func(m *mailerMocks.MockMailer)
		wantErr   bool
	}{
		{
			name:    "confirmation mailed",
			message: func(t *testing.T) kafkaGo.Message { return message(t, booked()) },
			setupMock: func(m *mailerMocks.MockMailer) {
				m.EXPECT().Send(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, mail mailer.Mail) error {
						assert.Equal(t, "budi@example.com", mail.To)
						assert.Equal(t, "[Garden Residence] Your booking is confirmed", mail.Subject)
						assert.Contains(t, mail.TextBody, "Rp 470.000")
						assert.Contains(t, mail.TextBody, "Bank Transfer (Completed)")
						assert.Contains(t, mail.HTMLBody, "Garden View 101")

						return nil
					})
			},
		},
		{
			name: "cancellation mailed",
			message: func(t *testing.T) kafkaGo.Message {
				evt := booked()
				evt.Type = event.TypeCancelled

				return message(t, evt)
			},
			setupMock: func(m *mailerMocks.MockMailer) {
				m.EXPECT().Send(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, mail mailer.Mail) error {
						assert.Contains(t, mail.Subject, "cancelled")

						return nil
					})
			},
		},
		{
			name: "deletion is not mailed",
			message: func(t *testing.T) kafkaGo.Message {
				evt := booked()
				evt.Type = event.TypeDeleted

				return message(t, evt)
			},
			setupMock: func(_ *mailerMocks.MockMailer) {},
		},
		{
			name: "missing guest email",
			message: func(t *testing.T) kafkaGo.Message {
				evt := booked()
				evt.GuestEmail = ""

				return message(t, evt)
			},
			setupMock: func(_ *mailerMocks.MockMailer) {},
		},
		{
			name:      "garbage is dropped",
			message:   func(_ *testing.T) kafkaGo.Message { return kafkaGo.Message{Value: []byte("{not json")} },
			setupMock: func(_ *mailerMocks.MockMailer) {},
		},
		{
			name:    "smtp failure asks for redelivery",
			message: func(t *testing.T) kafkaGo.Message { return message(t, booked()) },
			setupMock: func(m *mailerMocks.MockMailer) {
				m.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mailerMocks.NewMockMailer(gomock.NewController(t))
			tt.setupMock(m)

			cfg := &config.Config{}
			cfg.Report.HotelName = "Garden Residence"

			svc := service.New(m, cfg, otelMocks.NewOtel())

			err := svc.Handle(context.Background(), tt.message(t))

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}

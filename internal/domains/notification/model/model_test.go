package model_test

import (
	"testing"

	"hotel/internal/domains/booking/event"
	"hotel/internal/domains/notification/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageFor(t *testing.T) {
	for _, eventType := range []event.Type{event.TypeCreated, event.TypeCancelled, event.TypeRestored, event.TypePaymentUpdated} {
		message, ok := model.MessageFor(eventType)

		assert.True(t, ok, eventType)
		assert.NotEmpty(t, message.Subject, eventType)
	}

	_, ok := model.MessageFor(event.TypeDeleted)
	assert.False(t, ok)
}

func TestNotice_RenderEscapesGuestInput(t *testing.T) {
	notice := model.NewNotice("Garden Residence", "Confirmed.", event.Event{
		GuestName:     "<script>alert(1)</script>",
		TotalPrice:    235000,
		PaymentMethod: "cash",
		PaymentStatus: "pending",
		BookingStatus: "confirmed",
	})

	html, text, err := notice.Render()
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, text, "Rp 235.000")
	assert.Contains(t, text, "Cash (Pending)")
	assert.Contains(t, text, "Confirmed")
}

package dto_test

import (
	"testing"

	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		RoomID:        "7f1c0b7e-5a43-4f4e-9a55-8f3f1b2d6c10",
		GuestName:     "Budi Santoso",
		GuestEmail:    "budi@example.com",
		GuestPhone:    "081234567890",
		CheckInDate:   "2024-06-01",
		CheckOutDate:  "2024-06-03",
		GuestsCount:   2,
		PaymentMethod: model.PaymentCreditCard,
	}
}

func TestCreateBookingRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *dto.CreateBookingRequest)
		wantMsg string
	}{
		{
			name:   "valid",
			mutate: func(_ *dto.CreateBookingRequest) {},
		},
		{
			name:    "missing guest name",
			mutate:  func(req *dto.CreateBookingRequest) { req.GuestName = "" },
			wantMsg: "guest_name is required",
		},
		{
			name:    "guest name too short",
			mutate:  func(req *dto.CreateBookingRequest) { req.GuestName = "B" },
			wantMsg: "guest_name must be greater than or equal to 2",
		},
		{
			name:    "malformed email",
			mutate:  func(req *dto.CreateBookingRequest) { req.GuestEmail = "budi@" },
			wantMsg: "guest_email must be a valid email address",
		},
		{
			name:    "phone too short",
			mutate:  func(req *dto.CreateBookingRequest) { req.GuestPhone = "0812" },
			wantMsg: "guest_phone must be greater than or equal to 8",
		},
		{
			name:    "unknown payment method",
			mutate:  func(req *dto.CreateBookingRequest) { req.PaymentMethod = "paypal" },
			wantMsg: "payment_method has an unsupported value",
		},
		{
			name:    "date in another layout",
			mutate:  func(req *dto.CreateBookingRequest) { req.CheckInDate = "01/06/2024" },
			wantMsg: "check_in_date must match the format 2006-01-02",
		},
		{
			name: "special requests too long",
			mutate: func(req *dto.CreateBookingRequest) {
				long := make([]byte, 1001)
				for i := range long {
					long[i] = 'a'
				}

				req.SpecialRequests = string(long)
			},
			wantMsg: "special_requests must be less than or equal to 1000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)

			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}

func TestCreateBookingRequest_ToModel(t *testing.T) {
	room := roomModel.Room{ID: "room-1", Name: "Garden Deluxe", Type: roomModel.TypeDeluxe, PricePerNight: 235000, Capacity: 2, IsAvailable: true}
	req := validRequest()

	booking, err := req.ToModel("guest-1", room)

	require.NoError(t, err)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, "room-1", booking.RoomID)
	assert.Equal(t, int64(470000), booking.TotalPrice)
	assert.Equal(t, 2, booking.Nights())
	assert.Equal(t, model.PaymentCompleted, booking.PaymentStatus)
	assert.Equal(t, model.StatusConfirmed, booking.BookingStatus)
	assert.Equal(t, "guest-1", booking.CreatedBy)

	room.IsAvailable = false
	_, err = req.ToModel("guest-1", room)
	assert.ErrorIs(t, err, dto.ErrRoomUnavailable)

	room.IsAvailable = true
	req.GuestsCount = 5
	_, err = req.ToModel("guest-1", room)
	assert.ErrorIs(t, err, dto.ErrOverCapacity)
}

func TestBookingResponse_FromModel(t *testing.T) {
	room := roomModel.Room{ID: "room-1", Name: "Garden Deluxe", Type: roomModel.TypeDeluxe, PricePerNight: 235000, Capacity: 2, IsAvailable: true}
	req := validRequest()
	req.SpecialRequests = "extra pillow"

	booking, err := req.ToModel("guest-1", room)
	require.NoError(t, err)

	var res dto.BookingResponse
	res.FromModel(booking)

	assert.Equal(t, "Deluxe Room", res.RoomTypeLabel)
	assert.Equal(t, "Credit Card", res.PaymentMethodLabel)
	assert.Equal(t, "Rp 470.000", res.TotalPriceLabel)
	assert.Equal(t, "2024-06-03", res.CheckOutDate)
	assert.Equal(t, "extra pillow", res.SpecialRequests)
}

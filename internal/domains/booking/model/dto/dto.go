package dto

import (
	"errors"
	"strings"

	"hotel/internal/domains/booking/model"
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared"
	"hotel/shared/currency"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/pricing"
	"hotel/shared/timezone"

	"github.com/google/uuid"
)

var (
	ErrRoomUnavailable = errors.New("room is not available")
	ErrOverCapacity    = errors.New("guest count exceeds room capacity")
)

type CreateBookingRequest struct {
	RoomID          string              `json:"room_id"          validate:"required,uuid"`
	GuestName       string              `json:"guest_name"       validate:"required,min=2,max=100"`
	GuestEmail      string              `json:"guest_email"      validate:"required,email,max=100"`
	GuestPhone      string              `json:"guest_phone"      validate:"required,min=8,max=20"`
	CheckInDate     string              `json:"check_in_date"    validate:"required,datetime=2006-01-02"`
	CheckOutDate    string              `json:"check_out_date"   validate:"required,datetime=2006-01-02"`
	GuestsCount     int                 `json:"guests_count"     validate:"required,gte=1,lte=20"`
	PaymentMethod   model.PaymentMethod `json:"payment_method"   validate:"required,enum"`
	SpecialRequests string              `json:"special_requests" validate:"omitempty,max=1000"`
}

// ToModel prices the stay against the room and builds a confirmed booking owned by user.
func (c *CreateBookingRequest) ToModel(user string, room roomModel.Room) (model.Booking, error) {
	if !room.IsAvailable {
		return model.Booking{}, ErrRoomUnavailable
	}

	if !room.CanAccommodate(c.GuestsCount) {
		return model.Booking{}, ErrOverCapacity
	}

	checkIn, err := gModel.ParseDate(c.CheckInDate)
	if err != nil {
		return model.Booking{}, err //nolint:wrapcheck
	}

	checkOut, err := gModel.ParseDate(c.CheckOutDate)
	if err != nil {
		return model.Booking{}, err //nolint:wrapcheck
	}

	nights, err := pricing.Nights(checkIn.Time, checkOut.Time)
	if err != nil {
		return model.Booking{}, err //nolint:wrapcheck
	}

	var requests *string
	if trimmed := strings.TrimSpace(c.SpecialRequests); trimmed != "" {
		requests = &trimmed
	}

	now := timezone.Now()

	return model.Booking{
		ID:              uuid.NewString(),
		RoomID:          room.ID,
		UserID:          user,
		GuestName:       strings.TrimSpace(c.GuestName),
		GuestEmail:      strings.TrimSpace(c.GuestEmail),
		GuestPhone:      strings.TrimSpace(c.GuestPhone),
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		GuestsCount:     c.GuestsCount,
		TotalPrice:      pricing.Total(nights, room.PricePerNight),
		PaymentMethod:   c.PaymentMethod,
		PaymentStatus:   c.PaymentMethod.InitialPaymentStatus(),
		BookingStatus:   model.StatusConfirmed,
		SpecialRequests: requests,
		RoomName:        room.Name,
		RoomType:        room.Type,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateStatusRequest struct {
	BookingStatus model.Status `json:"booking_status" validate:"required,enum"`
}

type UpdatePaymentRequest struct {
	PaymentStatus model.PaymentStatus `json:"payment_status" validate:"required,enum"`
}

type BookingResponse struct {
	ID                 string `json:"id"`
	RoomID             string `json:"room_id"`
	RoomName           string `json:"room_name"`
	RoomType           string `json:"room_type"`
	RoomTypeLabel      string `json:"room_type_label"`
	UserID             string `json:"user_id"`
	GuestName          string `json:"guest_name"`
	GuestEmail         string `json:"guest_email"`
	GuestPhone         string `json:"guest_phone"`
	CheckInDate        string `json:"check_in_date"`
	CheckOutDate       string `json:"check_out_date"`
	Nights             int    `json:"nights"`
	GuestsCount        int    `json:"guests_count"`
	PricePerNight      int64  `json:"price_per_night"`
	TotalPrice         int64  `json:"total_price"`
	TotalPriceLabel    string `json:"total_price_label"`
	PaymentMethod      string `json:"payment_method"`
	PaymentMethodLabel string `json:"payment_method_label"`
	PaymentStatus      string `json:"payment_status"`
	BookingStatus      string `json:"booking_status"`
	SpecialRequests    string `json:"special_requests"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.RoomName = model.RoomName
	r.RoomType = string(model.RoomType)
	r.RoomTypeLabel = model.RoomType.Label()
	r.UserID = model.UserID
	r.GuestName = model.GuestName
	r.GuestEmail = model.GuestEmail
	r.GuestPhone = model.GuestPhone
	r.CheckInDate = model.CheckInDate.String()
	r.CheckOutDate = model.CheckOutDate.String()
	r.Nights = model.Nights()
	r.GuestsCount = model.GuestsCount
	r.PricePerNight = model.PricePerNight()
	r.TotalPrice = model.TotalPrice
	r.TotalPriceLabel = currency.FormatIDR(model.TotalPrice)
	r.PaymentMethod = string(model.PaymentMethod)
	r.PaymentMethodLabel = model.PaymentMethod.Label()
	r.PaymentStatus = string(model.PaymentStatus)
	r.BookingStatus = string(model.BookingStatus)

	if model.SpecialRequests != nil {
		r.SpecialRequests = *model.SpecialRequests
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

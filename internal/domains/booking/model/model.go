package model

import (
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared/model"
	"hotel/shared/pricing"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldRoomID          = "room_id"
	FieldUserID          = "user_id"
	FieldGuestName       = "guest_name"
	FieldGuestEmail      = "guest_email"
	FieldGuestPhone      = "guest_phone"
	FieldCheckInDate     = "check_in_date"
	FieldCheckOutDate    = "check_out_date"
	FieldGuestsCount     = "guests_count"
	FieldTotalPrice      = "total_price"
	FieldPaymentMethod   = "payment_method"
	FieldPaymentStatus   = "payment_status"
	FieldBookingStatus   = "booking_status"
	FieldSpecialRequests = "special_requests"
)

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) IsValid() bool {
	return s == StatusConfirmed || s == StatusCancelled
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentRefunded  PaymentStatus = "refunded"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentRefunded:
		return true
	}

	return false
}

type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentIrisBCA      PaymentMethod = "iris_bca"
	PaymentCreditCard   PaymentMethod = "credit_card"
	PaymentEWallet      PaymentMethod = "e_wallet"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentBankTransfer, PaymentIrisBCA, PaymentCreditCard, PaymentEWallet:
		return true
	}

	return false
}

// InitialPaymentStatus is the status written at booking time. Cash is settled at the front desk,
// electronic payments are simulated as already settled.
func (m PaymentMethod) InitialPaymentStatus() PaymentStatus {
	if m == PaymentCash {
		return PaymentPending
	}

	return PaymentCompleted
}

func (m PaymentMethod) Label() string {
	switch m {
	case PaymentCash:
		return "Cash"
	case PaymentBankTransfer:
		return "Bank Transfer"
	case PaymentIrisBCA:
		return "IRIS BCA"
	case PaymentCreditCard:
		return "Credit Card"
	case PaymentEWallet:
		return "E-Wallet"
	}

	return string(m)
}

type Booking struct {
	ID              string         `db:"id"`
	RoomID          string         `db:"room_id"`
	UserID          string         `db:"user_id"`
	GuestName       string         `db:"guest_name"`
	GuestEmail      string         `db:"guest_email"`
	GuestPhone      string         `db:"guest_phone"`
	CheckInDate     model.Date     `db:"check_in_date"`
	CheckOutDate    model.Date     `db:"check_out_date"`
	GuestsCount     int            `db:"guests_count"`
	TotalPrice      int64          `db:"total_price"`
	PaymentMethod   PaymentMethod  `db:"payment_method"`
	PaymentStatus   PaymentStatus  `db:"payment_status"`
	BookingStatus   Status         `db:"booking_status"`
	SpecialRequests *string        `db:"special_requests"`
	RoomName        string         `column:"name" db:"room_name" table:"rooms"`
	RoomType        roomModel.Type `column:"type" db:"room_type" table:"rooms"`
	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return "LEFT JOIN rooms ON rooms.id = bookings.room_id"
}

// Nights recomputes the stay length from the stored dates.
func (b Booking) Nights() int {
	nights, err := pricing.Nights(b.CheckInDate.Time, b.CheckOutDate.Time)
	if err != nil {
		return 0
	}

	return nights
}

// PricePerNight is derived from the stored total, which was priced by nights.
func (b Booking) PricePerNight() int64 {
	nights := b.Nights()
	if nights == 0 {
		return 0
	}

	return b.TotalPrice / int64(nights)
}

// IsRevenue reports whether the booking counts toward revenue.
func (b Booking) IsRevenue() bool {
	return b.PaymentStatus == PaymentCompleted
}

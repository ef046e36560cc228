package model

import (
	"time"

	dashboardModel "hotel/internal/domains/dashboard/model"
	"hotel/shared/constant"
	"hotel/shared/timezone"
)

const (
	FormatCSV = "csv"
	FormatPDF = "pdf"

	FilePrefix = "bookings"
)

// Row is one booking as it appears in an exported report.
type Row struct {
	BookingDate     string
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	RoomName        string
	RoomType        string
	CheckIn         string
	CheckOut        string
	Nights          int
	Guests          int
	PricePerNight   int64
	TotalPrice      int64
	PaymentMethod   string
	PaymentStatus   string
	BookingStatus   string
	SpecialRequests string
}

type Report struct {
	HotelName   string
	GeneratedAt time.Time
	Stats       dashboardModel.Stats
	Rows        []Row
}

// New flattens a dashboard snapshot. Nights and the nightly price are recomputed from
// the stored dates, the same way the booking was priced.
func New(hotelName string, generatedAt time.Time, snapshot dashboardModel.Snapshot) Report {
	report := Report{
		HotelName:   hotelName,
		GeneratedAt: generatedAt,
		Stats:       snapshot.Stats,
		Rows:        make([]Row, len(snapshot.Bookings)),
	}

	for i, booking := range snapshot.Bookings {
		row := Row{
			BookingDate:   timezone.Format(booking.CreatedAt, constant.DateOnlyFormat),
			GuestName:     booking.GuestName,
			GuestEmail:    booking.GuestEmail,
			GuestPhone:    booking.GuestPhone,
			RoomName:      booking.RoomName,
			RoomType:      booking.RoomType.Label(),
			CheckIn:       booking.CheckInDate.String(),
			CheckOut:      booking.CheckOutDate.String(),
			Nights:        booking.Nights(),
			Guests:        booking.GuestsCount,
			PricePerNight: booking.PricePerNight(),
			TotalPrice:    booking.TotalPrice,
			PaymentMethod: booking.PaymentMethod.Label(),
			PaymentStatus: string(booking.PaymentStatus),
			BookingStatus: string(booking.BookingStatus),
		}

		if booking.SpecialRequests != nil {
			row.SpecialRequests = *booking.SpecialRequests
		}

		report.Rows[i] = row
	}

	return report
}

// FileName is the download name, e.g. bookings-20240601-150405.csv.
func (r Report) FileName(format string) string {
	return FilePrefix + "-" + timezone.Format(r.GeneratedAt, "20060102-150405") + "." + format
}

// Document is a rendered report ready to be downloaded or archived.
type Document struct {
	FileName    string
	ContentType string
	Body        []byte
}

package model_test

import (
	"testing"
	"time"

	bookingModel "hotel/internal/domains/booking/model"
	dashboardModel "hotel/internal/domains/dashboard/model"
	"hotel/internal/domains/report/model"
	roomModel "hotel/internal/domains/room/model"
	gModel "hotel/shared/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	checkIn, err := gModel.ParseDate("2024-06-01")
	require.NoError(t, err)

	checkOut, err := gModel.ParseDate("2024-06-03")
	require.NoError(t, err)

	note := "Honeymoon"
	snapshot := dashboardModel.Snapshot{
		Bookings: []bookingModel.Booking{
			{
				ID:              "b-1",
				GuestName:       "Budi Santoso",
				CheckInDate:     checkIn,
				CheckOutDate:    checkOut,
				GuestsCount:     2,
				TotalPrice:      470000,
				PaymentMethod:   bookingModel.PaymentBankTransfer,
				PaymentStatus:   bookingModel.PaymentCompleted,
				BookingStatus:   bookingModel.StatusConfirmed,
				SpecialRequests: &note,
				RoomName:        "Garden Deluxe",
				RoomType:        roomModel.TypeDeluxe,
			},
			{ID: "b-2", GuestName: "Siti Rahma"},
		},
		Stats: dashboardModel.Stats{TotalBookings: 2, TotalRevenue: 470000},
	}

	generatedAt := time.Date(2024, 6, 4, 8, 30, 5, 0, time.UTC)

	report := model.New("Garden Residence", generatedAt, snapshot)

	require.Len(t, report.Rows, 2)

	row := report.Rows[0]
	assert.Equal(t, 2, row.Nights)
	assert.Equal(t, int64(235000), row.PricePerNight)
	assert.Equal(t, int64(470000), row.TotalPrice)
	assert.Equal(t, "Deluxe Room", row.RoomType)
	assert.Equal(t, "Bank Transfer", row.PaymentMethod)
	assert.Equal(t, "Honeymoon", row.SpecialRequests)

	assert.Empty(t, report.Rows[1].SpecialRequests)
	assert.Zero(t, report.Rows[1].Nights)
	assert.Equal(t, snapshot.Stats, report.Stats)
}

func TestReport_FileName(t *testing.T) {
	report := model.Report{GeneratedAt: time.Date(2024, 6, 4, 8, 30, 5, 0, time.UTC)}

	assert.Regexp(t, `^bookings-20240604-\d{6}\.csv$`, report.FileName(model.FormatCSV))
	assert.Regexp(t, `^bookings-20240604-\d{6}\.pdf$`, report.FileName(model.FormatPDF))
}

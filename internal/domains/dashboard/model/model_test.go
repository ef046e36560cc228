package model_test

import (
	"testing"

	bookingModel "hotel/internal/domains/booking/model"
	"hotel/internal/domains/dashboard/model"
	roomModel "hotel/internal/domains/room/model"

	"github.com/stretchr/testify/assert"
)

func TestComputeStats(t *testing.T) {
	bookings := []bookingModel.Booking{
		{ID: "b-1", TotalPrice: 470000, PaymentStatus: bookingModel.PaymentCompleted},
		{ID: "b-2", TotalPrice: 300000, PaymentStatus: bookingModel.PaymentPending},
		{ID: "b-3", TotalPrice: 150000, PaymentStatus: bookingModel.PaymentRefunded},
		{ID: "b-4", TotalPrice: 1000000, PaymentStatus: bookingModel.PaymentCompleted, BookingStatus: bookingModel.StatusCancelled},
	}

	tests := []struct {
		name     string
		bookings []bookingModel.Booking
		rooms    []roomModel.Room
		want     model.Stats
	}{
		{
			name: "no rooms means zero occupancy",
			want: model.Stats{},
		},
		{
			name:     "revenue counts completed payments only",
			bookings: bookings,
			rooms: []roomModel.Room{
				{ID: "r-1", IsAvailable: true},
				{ID: "r-2", IsAvailable: false},
				{ID: "r-3", IsAvailable: true},
				{ID: "r-4", IsAvailable: false},
			},
			want: model.Stats{
				TotalBookings:  4,
				TotalRevenue:   1470000,
				TotalRooms:     4,
				AvailableRooms: 2,
				OccupancyRate:  50,
			},
		},
		{
			name:  "every room available",
			rooms: []roomModel.Room{{ID: "r-1", IsAvailable: true}},
			want: model.Stats{
				TotalRooms:     1,
				AvailableRooms: 1,
			},
		},
		{
			name:  "nothing available",
			rooms: []roomModel.Room{{ID: "r-1"}, {ID: "r-2"}, {ID: "r-3"}},
			want: model.Stats{
				TotalRooms:    3,
				OccupancyRate: 100,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := model.ComputeStats(tt.bookings, tt.rooms)

			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got.OccupancyRate, 0.0)
			assert.LessOrEqual(t, got.OccupancyRate, 100.0)
		})
	}
}

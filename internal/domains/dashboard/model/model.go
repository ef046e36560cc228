package model

import (
	"time"

	bookingModel "hotel/internal/domains/booking/model"
	roomModel "hotel/internal/domains/room/model"
)

const (
	ReloadRequested = "requested"
	ReloadEmpty     = "empty"
	ReloadExpired   = "expired"
	ReloadUnknownID = "unknown_id"
	ReloadChanged   = "changed"
)

type Stats struct {
	TotalBookings  int
	TotalRevenue   int64
	TotalRooms     int
	AvailableRooms int
	OccupancyRate  float64
}

// ComputeStats derives the dashboard figures. Revenue only counts completed payments
// and occupancy is 0 for an empty inventory.
func ComputeStats(bookings []bookingModel.Booking, rooms []roomModel.Room) Stats {
	stats := Stats{
		TotalBookings: len(bookings),
		TotalRooms:    len(rooms),
	}

	for _, booking := range bookings {
		if booking.IsRevenue() {
			stats.TotalRevenue += booking.TotalPrice
		}
	}

	for _, room := range rooms {
		if room.IsAvailable {
			stats.AvailableRooms++
		}
	}

	if stats.TotalRooms > 0 {
		occupied := stats.TotalRooms - stats.AvailableRooms
		stats.OccupancyRate = float64(occupied) / float64(stats.TotalRooms) * 100
	}

	return stats
}

// Snapshot is one consistent read of the admin view.
type Snapshot struct {
	Bookings []bookingModel.Booking
	Rooms    []roomModel.Room
	Stats    Stats
	LoadedAt time.Time
}

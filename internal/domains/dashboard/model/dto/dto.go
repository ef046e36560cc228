package dto

import (
	"fmt"

	bookingDto "hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/dashboard/model"
	roomDto "hotel/internal/domains/room/model/dto"
	"hotel/shared/constant"
	"hotel/shared/currency"
	"hotel/shared/timezone"
)

type StatsResponse struct {
	TotalBookings      int     `json:"total_bookings"`
	TotalRevenue       int64   `json:"total_revenue"`
	TotalRevenueLabel  string  `json:"total_revenue_label"`
	TotalRooms         int     `json:"total_rooms"`
	AvailableRooms     int     `json:"available_rooms"`
	OccupancyRate      float64 `json:"occupancy_rate"`
	OccupancyRateLabel string  `json:"occupancy_rate_label"`
}

func (r *StatsResponse) FromModel(stats model.Stats) {
	r.TotalBookings = stats.TotalBookings
	r.TotalRevenue = stats.TotalRevenue
	r.TotalRevenueLabel = currency.FormatIDR(stats.TotalRevenue)
	r.TotalRooms = stats.TotalRooms
	r.AvailableRooms = stats.AvailableRooms
	r.OccupancyRate = stats.OccupancyRate
	r.OccupancyRateLabel = FormatPercent(stats.OccupancyRate)
}

type DashboardResponse struct {
	Stats    StatsResponse                `json:"stats"`
	Bookings []bookingDto.BookingResponse `json:"bookings"`
	Rooms    []roomDto.RoomResponse       `json:"rooms"`
	LoadedAt string                       `json:"loaded_at"`
}

func (r *DashboardResponse) FromModel(snapshot model.Snapshot) {
	r.Stats.FromModel(snapshot.Stats)
	r.LoadedAt = timezone.Format(snapshot.LoadedAt, constant.DateFormat)

	r.Bookings = make([]bookingDto.BookingResponse, len(snapshot.Bookings))
	for i, booking := range snapshot.Bookings {
		r.Bookings[i].FromModel(booking)
	}

	r.Rooms = make([]roomDto.RoomResponse, len(snapshot.Rooms))
	for i, room := range snapshot.Rooms {
		r.Rooms[i].FromModel(room)
	}
}

// FormatPercent renders a rate with one decimal, e.g. "66.7%".
func FormatPercent(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate)
}

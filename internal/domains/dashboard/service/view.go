package service

import (
	"cmp"
	"slices"
	"sync"
	"time"

	bookingModel "hotel/internal/domains/booking/model"
	"hotel/internal/domains/dashboard/model"
	roomModel "hotel/internal/domains/room/model"
)

// view is the admin dashboard state keyed by entity id. version counts applied
// patches so a reload that read the store before a patch cannot overwrite it.
type view struct {
	mu       sync.RWMutex
	bookings map[string]bookingModel.Booking
	rooms    map[string]roomModel.Room
	loadedAt time.Time
	stamp    string
	version  uint64
}

func newView() *view {
	return &view{}
}

func (v *view) currentVersion() uint64 {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.version
}

// replace installs a reload taken at version. It reports false and keeps the view
// when a patch was applied after the reload started.
func (v *view) replace(bookings []bookingModel.Booking, rooms []roomModel.Room, loadedAt time.Time, stamp string, version uint64) bool {
	byID := make(map[string]bookingModel.Booking, len(bookings))
	for _, booking := range bookings {
		byID[booking.ID] = booking
	}

	roomsByID := make(map[string]roomModel.Room, len(rooms))
	for _, room := range rooms {
		roomsByID[room.ID] = room
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.version != version {
		return false
	}

	v.bookings = byID
	v.rooms = roomsByID
	v.loadedAt = loadedAt
	v.stamp = stamp

	return true
}

// staleness returns the reason the view has to be reloaded, or "" when it can be served.
// stamp is the latest booking stamp seen in the shared cache.
func (v *view) staleness(now time.Time, ttl time.Duration, stamp string) string {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if v.loadedAt.IsZero() {
		return model.ReloadEmpty
	}

	if stamp != v.stamp {
		return model.ReloadChanged
	}

	if ttl > 0 && now.Sub(v.loadedAt) > ttl {
		return model.ReloadExpired
	}

	return ""
}

func (v *view) patchBooking(booking bookingModel.Booking) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.bookings[booking.ID]; !ok {
		return false
	}

	v.bookings[booking.ID] = booking
	v.version++

	return true
}

func (v *view) removeBooking(id string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.bookings[id]; !ok {
		return false
	}

	delete(v.bookings, id)
	v.version++

	return true
}

// patchRoom stores the room and refreshes the joined room columns of its bookings.
func (v *view) patchRoom(room roomModel.Room) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.rooms[room.ID]; !ok {
		return false
	}

	v.rooms[room.ID] = room

	for id, booking := range v.bookings {
		if booking.RoomID != room.ID {
			continue
		}

		booking.RoomName = room.Name
		booking.RoomType = room.Type
		v.bookings[id] = booking
	}

	v.version++

	return true
}

func (v *view) addRoom(room roomModel.Room) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.rooms == nil {
		return false
	}

	v.rooms[room.ID] = room
	v.version++

	return true
}

// snapshot copies the view out in dashboard order: bookings newest first, rooms by type.
func (v *view) snapshot() model.Snapshot {
	v.mu.RLock()

	bookings := make([]bookingModel.Booking, 0, len(v.bookings))
	for _, booking := range v.bookings {
		bookings = append(bookings, booking)
	}

	rooms := make([]roomModel.Room, 0, len(v.rooms))
	for _, room := range v.rooms {
		rooms = append(rooms, room)
	}

	loadedAt := v.loadedAt

	v.mu.RUnlock()

	slices.SortFunc(bookings, func(a, b bookingModel.Booking) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}

		return cmp.Compare(a.ID, b.ID)
	})

	slices.SortFunc(rooms, func(a, b roomModel.Room) int {
		return cmp.Or(
			cmp.Compare(a.Type, b.Type),
			cmp.Compare(a.Name, b.Name),
			cmp.Compare(a.ID, b.ID),
		)
	})

	return model.Snapshot{
		Bookings: bookings,
		Rooms:    rooms,
		Stats:    model.ComputeStats(bookings, rooms),
		LoadedAt: loadedAt,
	}
}

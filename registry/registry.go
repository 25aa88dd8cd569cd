// Package registry holds the in-memory room inventory and enforces the
// check-in / check-out lifecycle: unique room numbers, customer-iff-occupied,
// and booking-id exclusivity among active stays.
package registry

import (
	"fmt"
	"strings"
	"sync"

	"github.com/Harman090807/Hotel-management-app/models"
)

// Registry owns every room and the set of booking ids currently in use.
// One write lock guards all mutations, so each operation's validate-then-
// mutate sequence is atomic with respect to concurrent requests. Queries
// return clones; live rooms never leave the registry.
type Registry struct {
	mu         sync.RWMutex
	rooms      []*models.Room
	bookingIDs map[int64]struct{}
}

func New() *Registry {
	return &Registry{bookingIDs: make(map[int64]struct{})}
}

// Departure is everything a check-out produces: the receipt for the caller,
// the freed room, and the stay that just ended (nil only if the room had no
// customer attached, which the occupancy invariant rules out).
type Departure struct {
	Receipt models.Receipt
	Room    models.Room
	Guest   *models.Customer
}

// AddRoom inserts a new available room. The room number must be a positive
// integer unused so far, the attribute values must belong to their closed
// sets, and rent must not be negative.
func (r *Registry) AddRoom(number int, ac models.AC, comfort models.Comfort, size models.Size, rent int) (models.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if number <= 0 {
		return models.Room{}, fmt.Errorf("%w: room number must be a positive integer", ErrInvalidAttribute)
	}
	if !ac.Valid() {
		return models.Room{}, fmt.Errorf("%w: ac must be A or N, got %q", ErrInvalidAttribute, ac)
	}
	if !comfort.Valid() {
		return models.Room{}, fmt.Errorf("%w: comfort must be S or N, got %q", ErrInvalidAttribute, comfort)
	}
	if !size.Valid() {
		return models.Room{}, fmt.Errorf("%w: size must be B or S, got %q", ErrInvalidAttribute, size)
	}
	if rent < 0 {
		return models.Room{}, fmt.Errorf("%w: rent must not be negative, got %d", ErrInvalidAttribute, rent)
	}
	if r.indexOf(number) >= 0 {
		return models.Room{}, fmt.Errorf("%w: %d", ErrDuplicateRoom, number)
	}

	room := &models.Room{
		RoomNumber: number,
		AC:         ac,
		Comfort:    comfort,
		Size:       size,
		Rent:       rent,
		Status:     models.StatusAvailable,
	}
	r.rooms = append(r.rooms, room)
	return room.Clone(), nil
}

// CheckIn attaches a guest to an available room and reserves their booking
// id. Free-text fields are trimmed so both the API and the form path store
// the same thing. Returns the occupied room snapshot with the new customer
// attached.
func (r *Registry) CheckIn(number int, guest models.Customer) (models.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if guest.PaymentAdvance < 0 {
		return models.Room{}, fmt.Errorf("%w: payment advance must not be negative, got %v", ErrInvalidAttribute, guest.PaymentAdvance)
	}
	i := r.indexOf(number)
	if i < 0 {
		return models.Room{}, fmt.Errorf("%w: %d", ErrRoomNotFound, number)
	}
	room := r.rooms[i]
	if room.Occupied() {
		return models.Room{}, fmt.Errorf("%w: %d", ErrRoomOccupied, number)
	}
	if _, taken := r.bookingIDs[guest.BookingID]; taken {
		return models.Room{}, fmt.Errorf("%w: %d", ErrDuplicateBookingID, guest.BookingID)
	}

	cust := models.Customer{
		Name:           strings.TrimSpace(guest.Name),
		Address:        strings.TrimSpace(guest.Address),
		Phone:          strings.TrimSpace(guest.Phone),
		FromDate:       strings.TrimSpace(guest.FromDate),
		ToDate:         strings.TrimSpace(guest.ToDate),
		PaymentAdvance: guest.PaymentAdvance,
		BookingID:      guest.BookingID,
	}
	room.Cust = &cust
	room.Status = models.StatusOccupied
	r.bookingIDs[cust.BookingID] = struct{}{}
	return room.Clone(), nil
}

// CheckOut bills the stay and frees the room. The bill is days times the
// daily rent with no clamping anywhere: negative days make a negative bill,
// and an advance above the bill makes payable negative. The booking id
// becomes reusable immediately.
func (r *Registry) CheckOut(number, days int) (Departure, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(number)
	if i < 0 {
		return Departure{}, fmt.Errorf("%w: %d", ErrRoomNotFound, number)
	}
	room := r.rooms[i]
	if !room.Occupied() {
		return Departure{}, fmt.Errorf("%w: %d", ErrRoomNotOccupied, number)
	}

	bill := days * room.Rent
	advance := 0.0
	guest := room.Cust
	if guest != nil {
		advance = guest.PaymentAdvance
		delete(r.bookingIDs, guest.BookingID)
	}
	room.Cust = nil
	room.Status = models.StatusAvailable

	return Departure{
		Receipt: models.Receipt{
			RoomNumber: number,
			Bill:       bill,
			Advance:    advance,
			Payable:    float64(bill) - advance,
		},
		Room:  room.Clone(),
		Guest: guest,
	}, nil
}

// Rooms returns a snapshot of every room in insertion order.
func (r *Registry) Rooms() []models.Room {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(*models.Room) bool { return true })
}

// Available returns the rooms no guest currently holds.
func (r *Registry) Available() []models.Room {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(room *models.Room) bool { return !room.Occupied() })
}

// Occupied returns the rooms with an active stay.
func (r *Registry) Occupied() []models.Room {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(room *models.Room) bool { return room.Occupied() })
}

// FindByNumber returns a snapshot of one room, or false if it does not exist.
func (r *Registry) FindByNumber(number int) (models.Room, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(number)
	if i < 0 {
		return models.Room{}, false
	}
	return r.rooms[i].Clone(), true
}

// Guests lists the current stays as (room number, customer) pairs.
func (r *Registry) Guests() []models.Guest {
	r.mu.RLock()
	defer r.mu.RUnlock()

	guests := make([]models.Guest, 0, len(r.rooms))
	for _, room := range r.rooms {
		if room.Occupied() && room.Cust != nil {
			guests = append(guests, models.Guest{RoomNumber: room.RoomNumber, Customer: *room.Cust})
		}
	}
	return guests
}

// SearchByCustomerName finds current stays whose guest name equals the query
// ignoring case. It is an exact match, not a substring one, and a blank
// query matches nothing.
func (r *Registry) SearchByCustomerName(name string) []models.Guest {
	query := strings.TrimSpace(name)
	results := make([]models.Guest, 0)
	if query == "" {
		return results
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, room := range r.rooms {
		if room.Occupied() && room.Cust != nil && strings.EqualFold(room.Cust.Name, query) {
			results = append(results, models.Guest{RoomNumber: room.RoomNumber, Customer: *room.Cust})
		}
	}
	return results
}

// Stats reports the room count and how many are occupied, for the gauges.
func (r *Registry) Stats() (total, occupied int) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total = len(r.rooms)
	for _, room := range r.rooms {
		if room.Occupied() {
			occupied++
		}
	}
	return total, occupied
}

// Restore installs previously persisted rooms into an empty registry. It is
// called once at startup, before the server accepts requests, and checks the
// same invariants normal operations maintain: unique room numbers, customer
// attached iff occupied, and no booking id on two rooms.
func (r *Registry) Restore(rooms []models.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.rooms) > 0 {
		return fmt.Errorf("registry already holds %d rooms", len(r.rooms))
	}

	seen := make(map[int]struct{}, len(rooms))
	bookingIDs := make(map[int64]struct{})
	restored := make([]*models.Room, 0, len(rooms))
	for _, room := range rooms {
		if _, dup := seen[room.RoomNumber]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicateRoom, room.RoomNumber)
		}
		seen[room.RoomNumber] = struct{}{}

		if room.Occupied() != (room.Cust != nil) {
			return fmt.Errorf("room %d: status %s with customer=%v violates the occupancy invariant",
				room.RoomNumber, room.Status, room.Cust != nil)
		}
		if room.Cust != nil {
			if _, taken := bookingIDs[room.Cust.BookingID]; taken {
				return fmt.Errorf("%w: %d", ErrDuplicateBookingID, room.Cust.BookingID)
			}
			bookingIDs[room.Cust.BookingID] = struct{}{}
		}

		clone := room.Clone()
		restored = append(restored, &clone)
	}

	r.rooms = restored
	r.bookingIDs = bookingIDs
	return nil
}

// indexOf must be called with the lock held.
func (r *Registry) indexOf(number int) int {
	for i, room := range r.rooms {
		if room.RoomNumber == number {
			return i
		}
	}
	return -1
}

// collect must be called with the lock held.
func (r *Registry) collect(keep func(*models.Room) bool) []models.Room {
	out := make([]models.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		if keep(room) {
			out = append(out, room.Clone())
		}
	}
	return out
}

package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNilRoomReference      = errors.New("booking must reference a room")
	ErrMissingBookingDetails = errors.New("all booking details (customerName, date, startTime, endTime, roomId) are required")
)

type Booking struct {
	id        uuid.UUID
	roomID    uuid.UUID
	customer  CustomerName
	slot      TimeSlot
	status    Status
	createdAt time.Time
}

func NewBooking(id, roomID uuid.UUID, customer CustomerName, slot TimeSlot, now time.Time) (*Booking, error) {
	if roomID == uuid.Nil {
		return nil, ErrNilRoomReference
	}
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Booking{
		id:        id,
		roomID:    roomID,
		customer:  customer,
		slot:      slot,
		status:    StatusConfirmed,
		createdAt: now,
	}, nil
}

// ConflictsWith reports whether both bookings hold the same room at intersecting times.
func (b *Booking) ConflictsWith(other *Booking) bool {
	return b.roomID == other.roomID && b.slot.Overlaps(other.slot)
}

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) RoomID() uuid.UUID      { return b.roomID }
func (b *Booking) Customer() CustomerName { return b.customer }
func (b *Booking) TimeSlot() TimeSlot     { return b.slot }
func (b *Booking) Status() Status         { return b.status }
func (b *Booking) CreatedAt() time.Time   { return b.createdAt }

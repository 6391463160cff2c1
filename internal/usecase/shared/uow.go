package shared

import (
	"context"

	"hall-booking/internal/domain/booking"
	"hall-booking/internal/domain/room"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: serialized write unit; staged writes are applied only if fn returns nil
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: consistent snapshot for multi-collection reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads Reads) error) error
}

type Tx interface {
	Rooms() RoomRepository
	Bookings() BookingRepository
	Idempotency() IdempotencyRepository
	Reads() Reads
}

// Reads inside a Tx also observe the writes staged by that Tx.
type Reads interface {
	RoomByID(ctx context.Context, id uuid.UUID) (*room.Room, error)
	ListRooms(ctx context.Context) ([]*room.Room, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	BookingsByRoomAndDate(ctx context.Context, roomID uuid.UUID, date booking.Date) ([]*booking.Booking, error)
	ListBookings(ctx context.Context) ([]*booking.Booking, error)
	IdempotencyByKey(ctx context.Context, key uuid.UUID) (*IdempotencyRecord, error)
}

type RoomRepository interface {
	Create(ctx context.Context, r *room.Room) (uuid.UUID, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
}

type IdempotencyRepository interface {
	Save(ctx context.Context, rec IdempotencyRecord) error
}

package uow

import (
	"context"
	"sync"

	"hall-booking/internal/domain/booking"
	"hall-booking/internal/domain/room"
	"hall-booking/internal/infra"
	"hall-booking/internal/infra/memstore"
	"hall-booking/internal/pkg/errs"
	"hall-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var errTransactionCommit = errs.New("failed to commit unit of work")

type Stores struct {
	Rooms       *memstore.RoomStore
	Bookings    *memstore.BookingStore
	Idempotency *memstore.IdempotencyStore
}

func NewStores() *Stores {
	return &Stores{
		Rooms:       memstore.NewRoomStore(),
		Bookings:    memstore.NewBookingStore(),
		Idempotency: memstore.NewIdempotencyStore(),
	}
}

// MemoryUoW funnels every write through a single writer lock so that a
// check (e.g. the booking conflict scan) and the insert it guards are atomic.
// Readers share the same lock and therefore see whole units of work only.
type MemoryUoW struct {
	mu     sync.RWMutex
	stores *Stores
}

func NewMemoryUoW(stores *Stores) shared.UnitOfWork {
	return &MemoryUoW{stores: stores}
}

func (u *MemoryUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return infra.WrapRepoErr(infra.KindCanceled, "unit of work not started", err)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	tx := &memTx{stores: u.stores}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	if err := tx.commit(); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

func (u *MemoryUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads shared.Reads) error) error {
	if err := ctx.Err(); err != nil {
		return infra.WrapRepoErr(infra.KindCanceled, "read-only unit of work not started", err)
	}

	u.mu.RLock()
	defer u.mu.RUnlock()

	return fn(ctx, &reads{stores: u.stores})
}

type memTx struct {
	stores *Stores

	pendingRooms       []*room.Room
	pendingBookings    []*booking.Booking
	pendingIdempotency []shared.IdempotencyRecord
}

func (t *memTx) Rooms() shared.RoomRepository {
	return &txRoomRepo{tx: t}
}

func (t *memTx) Bookings() shared.BookingRepository {
	return &txBookingRepo{tx: t}
}

func (t *memTx) Idempotency() shared.IdempotencyRepository {
	return &txIdempotencyRepo{tx: t}
}

func (t *memTx) Reads() shared.Reads {
	return &reads{stores: t.stores, tx: t}
}

// commit validates every staged write before applying any of them.
func (t *memTx) commit() error {
	for _, r := range t.pendingRooms {
		if t.stores.Rooms.Contains(r.ID()) {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "room id already registered", nil)
		}
	}
	for _, b := range t.pendingBookings {
		if t.stores.Bookings.Contains(b.ID()) {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "booking id already exists", nil)
		}
	}
	for _, rec := range t.pendingIdempotency {
		if t.stores.Idempotency.Contains(rec.Key) {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "idempotency key already recorded", nil)
		}
	}

	for _, r := range t.pendingRooms {
		if err := t.stores.Rooms.Insert(r); err != nil {
			return err
		}
	}
	for _, b := range t.pendingBookings {
		if err := t.stores.Bookings.Insert(b); err != nil {
			return err
		}
	}
	for _, rec := range t.pendingIdempotency {
		if err := t.stores.Idempotency.Insert(rec); err != nil {
			return err
		}
	}
	return nil
}

type txRoomRepo struct {
	tx *memTx
}

func (r *txRoomRepo) Create(_ context.Context, rm *room.Room) (uuid.UUID, error) {
	if r.tx.stores.Rooms.Contains(rm.ID()) {
		return uuid.Nil, infra.WrapRepoErr(infra.KindDuplicateKey, "room id already registered", nil)
	}
	for _, p := range r.tx.pendingRooms {
		if p.ID() == rm.ID() {
			return uuid.Nil, infra.WrapRepoErr(infra.KindDuplicateKey, "room id already staged", nil)
		}
	}
	r.tx.pendingRooms = append(r.tx.pendingRooms, rm)
	return rm.ID(), nil
}

type txBookingRepo struct {
	tx *memTx
}

func (r *txBookingRepo) Create(_ context.Context, b *booking.Booking) (uuid.UUID, error) {
	if r.tx.stores.Bookings.Contains(b.ID()) {
		return uuid.Nil, infra.WrapRepoErr(infra.KindDuplicateKey, "booking id already exists", nil)
	}
	for _, p := range r.tx.pendingBookings {
		if p.ID() == b.ID() {
			return uuid.Nil, infra.WrapRepoErr(infra.KindDuplicateKey, "booking id already staged", nil)
		}
	}
	r.tx.pendingBookings = append(r.tx.pendingBookings, b)
	return b.ID(), nil
}

type txIdempotencyRepo struct {
	tx *memTx
}

func (r *txIdempotencyRepo) Save(_ context.Context, rec shared.IdempotencyRecord) error {
	if r.tx.stores.Idempotency.Contains(rec.Key) {
		return infra.WrapRepoErr(infra.KindDuplicateKey, "idempotency key already recorded", nil)
	}
	for _, p := range r.tx.pendingIdempotency {
		if p.Key == rec.Key {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "idempotency key already staged", nil)
		}
	}
	r.tx.pendingIdempotency = append(r.tx.pendingIdempotency, rec)
	return nil
}

// reads serves committed state, overlaid with the staged writes of tx when tx is set.
type reads struct {
	stores *Stores
	tx     *memTx
}

func (r *reads) RoomByID(_ context.Context, id uuid.UUID) (*room.Room, error) {
	if r.tx != nil {
		for _, p := range r.tx.pendingRooms {
			if p.ID() == id {
				return p, nil
			}
		}
	}
	return r.stores.Rooms.FindByID(id)
}

func (r *reads) ListRooms(_ context.Context) ([]*room.Room, error) {
	out := r.stores.Rooms.List()
	if r.tx != nil {
		out = append(out, r.tx.pendingRooms...)
	}
	return out, nil
}

func (r *reads) BookingByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	if r.tx != nil {
		for _, p := range r.tx.pendingBookings {
			if p.ID() == id {
				return p, nil
			}
		}
	}
	return r.stores.Bookings.FindByID(id)
}

func (r *reads) BookingsByRoomAndDate(_ context.Context, roomID uuid.UUID, date booking.Date) ([]*booking.Booking, error) {
	out := r.stores.Bookings.FindByRoomAndDate(roomID, date)
	if r.tx != nil {
		for _, p := range r.tx.pendingBookings {
			if p.RoomID() == roomID && p.TimeSlot().Date() == date {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

func (r *reads) ListBookings(_ context.Context) ([]*booking.Booking, error) {
	out := r.stores.Bookings.List()
	if r.tx != nil {
		out = append(out, r.tx.pendingBookings...)
	}
	return out, nil
}

func (r *reads) IdempotencyByKey(_ context.Context, key uuid.UUID) (*shared.IdempotencyRecord, error) {
	if r.tx != nil {
		for _, p := range r.tx.pendingIdempotency {
			if p.Key == key {
				rec := p
				return &rec, nil
			}
		}
	}
	return r.stores.Idempotency.Get(key)
}

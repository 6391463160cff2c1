package memstore

import (
	"sync"

	"hall-booking/internal/domain/booking"
	"hall-booking/internal/infra"

	"github.com/google/uuid"
)

type slotKey struct {
	roomID uuid.UUID
	date   booking.Date
}

// BookingStore keeps bookings in creation order, indexed by room and date for conflict scans.
type BookingStore struct {
	mu     sync.RWMutex
	byID   map[uuid.UUID]*booking.Booking
	order  []*booking.Booking
	bySlot map[slotKey][]*booking.Booking
}

func NewBookingStore() *BookingStore {
	return &BookingStore{
		byID:   make(map[uuid.UUID]*booking.Booking),
		bySlot: make(map[slotKey][]*booking.Booking),
	}
}

func (s *BookingStore) Insert(b *booking.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[b.ID()]; exists {
		return infra.WrapRepoErr(infra.KindDuplicateKey, "booking id already exists", nil)
	}
	s.byID[b.ID()] = b
	s.order = append(s.order, b)
	key := slotKey{roomID: b.RoomID(), date: b.TimeSlot().Date()}
	s.bySlot[key] = append(s.bySlot[key], b)
	return nil
}

func (s *BookingStore) Contains(id uuid.UUID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.byID[id]
	return ok
}

func (s *BookingStore) FindByID(id uuid.UUID) (*booking.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "booking not found", nil)
	}
	return b, nil
}

func (s *BookingStore) FindByRoomAndDate(roomID uuid.UUID, date booking.Date) []*booking.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	src := s.bySlot[slotKey{roomID: roomID, date: date}]
	out := make([]*booking.Booking, len(src))
	copy(out, src)
	return out
}

func (s *BookingStore) List() []*booking.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*booking.Booking, len(s.order))
	copy(out, s.order)
	return out
}

func (s *BookingStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

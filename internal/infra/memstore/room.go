package memstore

import (
	"sync"

	"hall-booking/internal/domain/room"
	"hall-booking/internal/infra"

	"github.com/google/uuid"
)

// RoomStore keeps rooms in registration order.
type RoomStore struct {
	mu    sync.RWMutex
	byID  map[uuid.UUID]*room.Room
	order []uuid.UUID
}

func NewRoomStore() *RoomStore {
	return &RoomStore{
		byID: make(map[uuid.UUID]*room.Room),
	}
}

func (s *RoomStore) Insert(r *room.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[r.ID()]; exists {
		return infra.WrapRepoErr(infra.KindDuplicateKey, "room id already registered", nil)
	}
	s.byID[r.ID()] = r
	s.order = append(s.order, r.ID())
	return nil
}

func (s *RoomStore) Contains(id uuid.UUID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.byID[id]
	return ok
}

func (s *RoomStore) FindByID(id uuid.UUID) (*room.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "room not found", nil)
	}
	return r, nil
}

// List returns a fresh slice on every call; rooms themselves are immutable.
func (s *RoomStore) List() []*room.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*room.Room, len(s.order))
	for i, id := range s.order {
		out[i] = s.byID[id]
	}
	return out
}

func (s *RoomStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

package memstore

import (
	"sync"

	"hall-booking/internal/infra"
	"hall-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdempotencyStore struct {
	mu      sync.RWMutex
	records map[uuid.UUID]shared.IdempotencyRecord
}

func NewIdempotencyStore() *IdempotencyStore {
	return &IdempotencyStore{
		records: make(map[uuid.UUID]shared.IdempotencyRecord),
	}
}

func (s *IdempotencyStore) Insert(rec shared.IdempotencyRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[rec.Key]; exists {
		return infra.WrapRepoErr(infra.KindDuplicateKey, "idempotency key already recorded", nil)
	}
	s.records[rec.Key] = rec
	return nil
}

func (s *IdempotencyStore) Contains(key uuid.UUID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.records[key]
	return ok
}

func (s *IdempotencyStore) Get(key uuid.UUID) (*shared.IdempotencyRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[key]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "idempotency key not found", nil)
	}
	return &rec, nil
}

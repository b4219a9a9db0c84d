// Package storage keeps the per-slot state of face instances in memory.
package storage

import (
	"sync"

	"github.com/google/uuid"

	"github.com/hammamikhairi/sailconv/internal/domain"
	"github.com/hammamikhairi/sailconv/internal/logger"
)

// Handle is the opaque reference a host keeps for a face instance.
type Handle struct {
	ID    string
	Slot  uint8
	State *domain.State
}

// SlotStore allocates face state once per slot and hands the same state
// back on every later setup call, the way firmware keeps a context pointer
// across wake-ups. Safe for concurrent access.
type SlotStore struct {
	mu      sync.RWMutex
	handles map[uint8]*Handle
	log     *logger.Logger
}

// NewSlotStore creates an empty slot store.
func NewSlotStore(log *logger.Logger) *SlotStore {
	return &SlotStore{
		handles: make(map[uint8]*Handle),
		log:     log,
	}
}

// Setup returns the handle for slot, allocating zeroed state on first use.
func (s *SlotStore) Setup(slot uint8) *Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	if h, ok := s.handles[slot]; ok {
		s.log.Debug("slot %d: reusing state %s", slot, h.ID)
		return h
	}

	h := &Handle{
		ID:    uuid.NewString(),
		Slot:  slot,
		State: &domain.State{},
	}
	s.handles[slot] = h
	s.log.Debug("slot %d: allocated state %s", slot, h.ID)
	return h
}

// Load retrieves the handle of an already set-up slot.
func (s *SlotStore) Load(slot uint8) (*Handle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h, ok := s.handles[slot]
	if !ok {
		s.log.Debug("slot not found: %d", slot)
		return nil, domain.ErrNotFound
	}
	return h, nil
}

// Release drops the state of a slot.
func (s *SlotStore) Release(slot uint8) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.handles[slot]
	if !ok {
		return domain.ErrNotFound
	}
	delete(s.handles, slot)
	s.log.Debug("slot %d: released state %s", slot, h.ID)
	return nil
}

// Len returns the number of allocated slots.
func (s *SlotStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.handles)
}

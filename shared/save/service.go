package save

import (
	"sync"

	"github.com/automoto/starlock/shared/rooms"
)

// Service is the only mutation and query surface over the save store. Game
// logic runs on a single goroutine, so operations never actually contend;
// the mutex makes TakePendingLoad atomic regardless and keeps the dev
// watcher goroutine from ever observing torn state.
type Service struct {
	mu      sync.Mutex
	store   *store
	durable DurableStore
}

// NewService returns a Service over an empty store.
func NewService() *Service {
	return &Service{store: newStore()}
}

// SaveCheckpoint writes or overwrites the slot's snapshot. Always succeeds;
// a later activation on the same slot simply replaces the previous one.
func (s *Service) SaveCheckpoint(slot int, room rooms.Coord, x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl := s.store.slotFor(slot)
	sl.hasSnapshot = true
	sl.snapshot = Snapshot{Room: room, X: x, Y: y}
}

// HasSave reports whether the slot holds a snapshot.
func (s *Service) HasSave(slot int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl, ok := s.store.peek(slot)
	return ok && sl.hasSnapshot
}

// LoadCheckpoint returns a copy of the slot's snapshot, or false if the slot
// has none. Never mutates.
func (s *Service) LoadCheckpoint(slot int) (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl, ok := s.store.peek(slot)
	if !ok || !sl.hasSnapshot {
		return Snapshot{}, false
	}
	return sl.snapshot, true
}

// QueueLoad requests that the next game session restore the given slot.
// Last writer wins; there is never more than one outstanding request.
func (s *Service) QueueLoad(slot int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.pending = slot
	s.store.hasPending = true
}

// TakePendingLoad returns and clears the pending request. At-most-once: the
// first caller after a QueueLoad gets the slot, every later caller gets
// false until a new request is queued.
func (s *Service) TakePendingLoad() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.store.hasPending {
		return 0, false
	}
	slot := s.store.pending
	s.store.hasPending = false
	s.store.pending = 0
	return slot, true
}

// ClearPendingLoad cancels a pending request without consuming it.
func (s *Service) ClearPendingLoad() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.hasPending = false
	s.store.pending = 0
}

// MarkFlag records a persistent flag for the slot. Idempotent.
func (s *Service) MarkFlag(slot int, kind Kind, id EntityID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.slotFor(slot).flags[flagKey{kind: kind, id: id}] = true
}

// HasFlag reports whether the flag is set for the slot.
func (s *Service) HasFlag(slot int, kind Kind, id EntityID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl, ok := s.store.peek(slot)
	return ok && sl.flags[flagKey{kind: kind, id: id}]
}

// Contact is the entity-contact notification: it marks the flag and reports
// whether it was already persisted, so a touched entity knows whether this
// contact was the first.
func (s *Service) Contact(slot int, kind Kind, id EntityID) (alreadyPersisted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl := s.store.slotFor(slot)
	key := flagKey{kind: kind, id: id}
	already := sl.flags[key]
	sl.flags[key] = true
	return already
}

// MarkKeyCollected records a collected key.
func (s *Service) MarkKeyCollected(slot int, id EntityID) { s.MarkFlag(slot, KindKey, id) }

// IsKeyCollected reports whether the key was collected.
func (s *Service) IsKeyCollected(slot int, id EntityID) bool { return s.HasFlag(slot, KindKey, id) }

// MarkLockUnlocked records an unlocked lock.
func (s *Service) MarkLockUnlocked(slot int, id EntityID) { s.MarkFlag(slot, KindLock, id) }

// IsLockUnlocked reports whether the lock was unlocked.
func (s *Service) IsLockUnlocked(slot int, id EntityID) bool { return s.HasFlag(slot, KindLock, id) }

// MarkStarCollected records a collected star.
func (s *Service) MarkStarCollected(slot int, id EntityID) { s.MarkFlag(slot, KindStar, id) }

// IsStarCollected reports whether the star was collected.
func (s *Service) IsStarCollected(slot int, id EntityID) bool { return s.HasFlag(slot, KindStar, id) }

// FlagCount returns how many flags of the given kind the slot has set.
func (s *Service) FlagCount(slot int, kind Kind) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl, ok := s.store.peek(slot)
	if !ok {
		return 0
	}
	n := 0
	for key := range sl.flags {
		if key.kind == kind {
			n++
		}
	}
	return n
}

// StarCount returns how many stars the slot has collected.
func (s *Service) StarCount(slot int) int { return s.FlagCount(slot, KindStar) }

// KeyAvailable reports whether the slot holds an unspent key. Flag sets only
// grow, so each unlocked lock stands for one spent key.
func (s *Service) KeyAvailable(slot int) bool {
	return s.FlagCount(slot, KindKey) > s.FlagCount(slot, KindLock)
}

// MarkExplored records that the slot's playthrough has visited a room.
func (s *Service) MarkExplored(slot int, c rooms.Coord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.slotFor(slot).explored[c] = true
}

// IsExplored reports whether the slot's playthrough has visited a room.
func (s *Service) IsExplored(slot int, c rooms.Coord) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl, ok := s.store.peek(slot)
	return ok && sl.explored[c]
}

// ExploredRooms lists every room the slot's playthrough has visited, in no
// particular order.
func (s *Service) ExploredRooms(slot int) []rooms.Coord {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl, ok := s.store.peek(slot)
	if !ok {
		return nil
	}
	out := make([]rooms.Coord, 0, len(sl.explored))
	for c := range sl.explored {
		out = append(out, c)
	}
	return out
}

// ResetAll clears every slot and the pending load. Used when starting a new
// game; there is no undo.
func (s *Service) ResetAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.reset()
}

package save

import "github.com/automoto/starlock/shared/rooms"

// flagKey partitions the generic persistent flag set: keys, locks, and stars
// live in one map under their own Kind namespace.
type flagKey struct {
	kind Kind
	id   EntityID
}

// slot holds everything persisted for one save-game context. Flags and
// explored rooms only accumulate during a playthrough; the only way to
// remove anything is a full reset.
type slot struct {
	hasSnapshot bool
	snapshot    Snapshot
	flags       map[flagKey]bool
	explored    map[rooms.Coord]bool
}

func newSlot() *slot {
	return &slot{
		flags:    make(map[flagKey]bool),
		explored: make(map[rooms.Coord]bool),
	}
}

// store is the aggregate save state: all slots plus the pending-load
// request. Never accessed directly by game code; Service is the only
// mutation surface.
type store struct {
	slots      map[int]*slot
	pending    int
	hasPending bool
}

func newStore() *store {
	return &store{slots: make(map[int]*slot)}
}

// slotFor returns the slot, creating it empty on first touch. Mutating
// operations use this; queries use peek so they never allocate state.
func (st *store) slotFor(id int) *slot {
	s, ok := st.slots[id]
	if !ok {
		s = newSlot()
		st.slots[id] = s
	}
	return s
}

// peek returns the slot if it exists. Absence is a normal query result, not
// an error.
func (st *store) peek(id int) (*slot, bool) {
	s, ok := st.slots[id]
	return s, ok
}

func (st *store) reset() {
	st.slots = make(map[int]*slot)
	st.hasPending = false
	st.pending = 0
}

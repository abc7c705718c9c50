package save

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/quasilyte/gdata"

	"github.com/automoto/starlock/shared/rooms"
)

// FileVersion is the current durable format version. Decoding rejects any
// other value rather than guessing at a migration.
const FileVersion = 1

// ErrVersion reports a durable file written by an unknown format version.
var ErrVersion = errors.New("unsupported save file version")

// DurableStore reads and writes the single serialized save file. The
// in-memory store stays authoritative for gameplay; durable writes are
// best-effort.
type DurableStore interface {
	// Load returns the stored bytes, or ok=false when nothing was saved yet.
	Load() (data []byte, ok bool, err error)
	// Save replaces the stored bytes.
	Save(data []byte) error
}

// GdataStore persists the save file through the platform data directory,
// the same mechanism used for settings.
type GdataStore struct {
	m   *gdata.Manager
	key string
}

// OpenGdataStore opens the platform store for the given app name. The item
// key names the save file within it.
func OpenGdataStore(appName, key string) (*GdataStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open data store: %w", err)
	}
	return &GdataStore{m: m, key: key}, nil
}

func (g *GdataStore) Load() ([]byte, bool, error) {
	data, err := g.m.LoadItem(g.key)
	if err != nil {
		return nil, false, fmt.Errorf("load %s: %w", g.key, err)
	}
	if len(data) == 0 {
		return nil, false, nil
	}
	return data, true, nil
}

func (g *GdataStore) Save(data []byte) error {
	if err := g.m.SaveItem(g.key, data); err != nil {
		return fmt.Errorf("save %s: %w", g.key, err)
	}
	return nil
}

// MemoryStore is a DurableStore for tests and for running with persistence
// disabled.
type MemoryStore struct {
	data []byte
	ok   bool
}

func (m *MemoryStore) Load() ([]byte, bool, error) {
	return m.data, m.ok, nil
}

func (m *MemoryStore) Save(data []byte) error {
	m.data = append([]byte(nil), data...)
	m.ok = true
	return nil
}

// Durable file layout, version 1.
type fileV1 struct {
	Version int            `json:"version"`
	Slots   map[int]slotV1 `json:"slots,omitempty"`
}

type slotV1 struct {
	Snapshot *snapshotV1 `json:"snapshot,omitempty"`
	Flags    []flagV1    `json:"flags,omitempty"`
	Explored [][2]int    `json:"explored,omitempty"`
}

type snapshotV1 struct {
	RoomX int     `json:"roomX"`
	RoomY int     `json:"roomY"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

type flagV1 struct {
	Kind  string  `json:"kind"`
	RoomX int     `json:"roomX"`
	RoomY int     `json:"roomY"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// AttachDurable wires a durable store to the service. Call before Restore.
func (s *Service) AttachDurable(ds DurableStore) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.durable = ds
}

// Flush serializes the full store to the durable layer. The in-memory state
// is already consistent when this runs; a failed flush leaves gameplay
// untouched and the caller decides how loudly to report it.
func (s *Service) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.durable == nil {
		return nil
	}

	file := fileV1{Version: FileVersion, Slots: make(map[int]slotV1, len(s.store.slots))}
	for id, sl := range s.store.slots {
		out := slotV1{}
		if sl.hasSnapshot {
			out.Snapshot = &snapshotV1{
				RoomX: sl.snapshot.Room.X,
				RoomY: sl.snapshot.Room.Y,
				X:     sl.snapshot.X,
				Y:     sl.snapshot.Y,
			}
		}
		for key := range sl.flags {
			out.Flags = append(out.Flags, flagV1{
				Kind:  key.kind.String(),
				RoomX: key.id.RoomX,
				RoomY: key.id.RoomY,
				X:     key.id.X,
				Y:     key.id.Y,
			})
		}
		for c := range sl.explored {
			out.Explored = append(out.Explored, [2]int{c.X, c.Y})
		}
		file.Slots[id] = out
	}

	data, err := json.Marshal(&file)
	if err != nil {
		return fmt.Errorf("encode save file: %w", err)
	}
	return s.durable.Save(data)
}

// Restore replaces the in-memory store with the durable file's contents.
// No file yet is not an error; the store is simply left empty. The pending
// load is never persisted, so restoring cannot resurrect a consumed request.
func (s *Service) Restore() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.durable == nil {
		return nil
	}

	data, ok, err := s.durable.Load()
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	var file fileV1
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("decode save file: %w", err)
	}
	if file.Version != FileVersion {
		return fmt.Errorf("%w: %d", ErrVersion, file.Version)
	}

	st := newStore()
	for id, in := range file.Slots {
		sl := st.slotFor(id)
		if in.Snapshot != nil {
			sl.hasSnapshot = true
			sl.snapshot = Snapshot{
				Room: rooms.Coord{X: in.Snapshot.RoomX, Y: in.Snapshot.RoomY},
				X:    in.Snapshot.X,
				Y:    in.Snapshot.Y,
			}
		}
		for _, f := range in.Flags {
			kind, known := KindFromString(f.Kind)
			if !known {
				return fmt.Errorf("decode save file: unknown flag kind %q", f.Kind)
			}
			sl.flags[flagKey{kind: kind, id: EntityID{RoomX: f.RoomX, RoomY: f.RoomY, X: f.X, Y: f.Y}}] = true
		}
		for _, e := range in.Explored {
			sl.explored[rooms.Coord{X: e[0], Y: e[1]}] = true
		}
	}
	s.store = st
	return nil
}

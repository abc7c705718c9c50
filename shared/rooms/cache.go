package rooms

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
)

// Load failures callers can branch on with errors.Is. A missing room is
// normal at world edges; a parse failure is a content bug and should be loud
// in development.
var (
	ErrRoomNotFound = errors.New("room not found")
	ErrRoomParse    = errors.New("room parse failure")
)

// Template is the parsed, reusable form of one room. The underlying
// Definition is shared read-only across every instantiation.
type Template struct {
	def *Definition
}

// Instantiate produces an independent live copy of the room content. Solids
// and spawns are deep-copied so engine-side mutation of one live room can
// never leak into a later instantiation or a concurrently live one.
func (t *Template) Instantiate() *Instance {
	inst := &Instance{
		Coord:  t.def.Coord,
		PixelW: t.def.PixelW,
		PixelH: t.def.PixelH,
		TileW:  t.def.TileW,
		TileH:  t.def.TileH,
		Solids: append([]SolidRect(nil), t.def.Solids...),
		Spawns: make([]EntitySpawn, len(t.def.Spawns)),
	}
	for i, s := range t.def.Spawns {
		s.Props = s.Props.clone()
		inst.Spawns[i] = s
	}
	return inst
}

// Instance is one live placement of a room. Callers may filter or mutate its
// slices freely; the cached template is untouched.
type Instance struct {
	Coord  Coord
	PixelW int
	PixelH int
	TileW  int
	TileH  int
	Solids []SolidRect
	Spawns []EntitySpawn
}

// Cache maps grid coordinates to lazily parsed room templates. Templates are
// parsed once and never evicted during play; Invalidate exists only for the
// dev hot-reload path.
type Cache struct {
	fsys    fs.FS
	dir     string
	entries map[Coord]*Template
	loads   int
	hits    int
}

// NewCache builds a cache over the room files in dir within fsys.
func NewCache(fsys fs.FS, dir string) *Cache {
	return &Cache{
		fsys:    fsys,
		dir:     dir,
		entries: make(map[Coord]*Template),
	}
}

// GetOrLoad returns a fresh instance of the room at c, parsing and caching
// the template on first use. On failure the cache is left unpopulated for c,
// so a later call may succeed once the content is fixed or present.
func (rc *Cache) GetOrLoad(c Coord) (*Instance, error) {
	if t, ok := rc.entries[c]; ok {
		rc.hits++
		return t.Instantiate(), nil
	}

	p := path.Join(rc.dir, c.Filename())
	if _, err := fs.Stat(rc.fsys, p); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrRoomNotFound, c.ID())
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrRoomParse, c.ID(), err)
	}

	def, err := ParseRoom(rc.fsys, p, c)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRoomParse, c.ID(), err)
	}

	t := &Template{def: def}
	rc.entries[c] = t
	rc.loads++
	return t.Instantiate(), nil
}

// Invalidate drops the cached template for c so the next GetOrLoad reparses.
// Used only by the dev file watcher; normal play never evicts.
func (rc *Cache) Invalidate(c Coord) {
	delete(rc.entries, c)
}

// Stats reports how many templates were parsed from disk and how many
// requests were served from cache. Shown on the debug overlay.
func (rc *Cache) Stats() (loads, hits int) {
	return rc.loads, rc.hits
}

// Len is the number of resident templates.
func (rc *Cache) Len() int {
	return len(rc.entries)
}

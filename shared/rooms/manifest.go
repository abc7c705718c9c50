package rooms

import (
	"errors"
	"fmt"
	"io/fs"
	"path"

	"gopkg.in/yaml.v3"
)

// Manifest is the authored world index: which rooms exist, where a fresh
// game starts, and how many stars the world holds.
type Manifest struct {
	Title        string
	InitialRoom  Coord
	InitialSpawn [2]float64
	StarTotal    int
	Rooms        []Coord

	roomSet map[Coord]bool
}

type manifestFile struct {
	Title        string    `yaml:"title"`
	InitialRoom  []int     `yaml:"initial_room"`
	InitialSpawn []float64 `yaml:"initial_spawn"`
	StarTotal    int       `yaml:"star_total"`
	Rooms        [][]int   `yaml:"rooms"`
}

// LoadManifest reads and validates the world manifest at path within fsys.
func LoadManifest(fsys fs.FS, p string) (*Manifest, error) {
	raw, err := fs.ReadFile(fsys, p)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", p, err)
	}

	var mf manifestFile
	if err := yaml.Unmarshal(raw, &mf); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", p, err)
	}

	if len(mf.InitialRoom) != 2 {
		return nil, fmt.Errorf("manifest %s: initial_room must be [x, y]", p)
	}
	if len(mf.InitialSpawn) != 2 {
		return nil, fmt.Errorf("manifest %s: initial_spawn must be [x, y]", p)
	}

	m := &Manifest{
		Title:        mf.Title,
		InitialRoom:  Coord{X: mf.InitialRoom[0], Y: mf.InitialRoom[1]},
		InitialSpawn: [2]float64{mf.InitialSpawn[0], mf.InitialSpawn[1]},
		StarTotal:    mf.StarTotal,
		roomSet:      make(map[Coord]bool, len(mf.Rooms)),
	}
	for i, r := range mf.Rooms {
		if len(r) != 2 {
			return nil, fmt.Errorf("manifest %s: rooms[%d] must be [x, y]", p, i)
		}
		c := Coord{X: r[0], Y: r[1]}
		if m.roomSet[c] {
			return nil, fmt.Errorf("manifest %s: room %s listed twice", p, c)
		}
		m.roomSet[c] = true
		m.Rooms = append(m.Rooms, c)
	}

	if !m.roomSet[m.InitialRoom] {
		return nil, fmt.Errorf("manifest %s: initial_room %s not in rooms list", p, m.InitialRoom)
	}
	return m, nil
}

// HasRoom reports whether the manifest lists a room at c.
func (m *Manifest) HasRoom(c Coord) bool {
	return m.roomSet[c]
}

// Bounds returns the inclusive grid extents of all listed rooms, for the
// world-map overlay.
func (m *Manifest) Bounds() (minX, minY, maxX, maxY int) {
	if len(m.Rooms) == 0 {
		return 0, 0, 0, 0
	}
	first := m.Rooms[0]
	minX, minY, maxX, maxY = first.X, first.Y, first.X, first.Y
	for _, c := range m.Rooms[1:] {
		if c.X < minX {
			minX = c.X
		}
		if c.Y < minY {
			minY = c.Y
		}
		if c.X > maxX {
			maxX = c.X
		}
		if c.Y > maxY {
			maxY = c.Y
		}
	}
	return minX, minY, maxX, maxY
}

// Validate loads every listed room and reports authoring problems: rooms
// that fail to load, and entity placements within one room that share an
// exact position (those would collapse to one persistent identity). All
// problems are reported together rather than stopping at the first.
func (m *Manifest) Validate(fsys fs.FS, dir string) error {
	var problems []error
	for _, c := range m.Rooms {
		def, err := ParseRoom(fsys, path.Join(dir, c.Filename()), c)
		if err != nil {
			problems = append(problems, fmt.Errorf("room %s: %w", c, err))
			continue
		}
		seen := make(map[[2]float64]string, len(def.Spawns))
		for _, s := range def.Spawns {
			if s.Kind == KindSpawn {
				continue
			}
			pos := [2]float64{s.X, s.Y}
			if prev, dup := seen[pos]; dup {
				problems = append(problems, fmt.Errorf(
					"room %s: %s and %s share position (%.1f,%.1f)", c, prev, s.Kind, s.X, s.Y))
				continue
			}
			seen[pos] = s.Kind
		}
	}
	return errors.Join(problems...)
}

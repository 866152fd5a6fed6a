package engine

import (
	"fmt"

	"roguecore/internal/domain"
)

// Map - одна игровая зона: местность, разреженные индексы существ и предметов,
// очередь ходов и то, что герой здесь видел.
type Map struct {
	name  string
	grid  *TerrainGrid
	level int
	owner *DungeonMaster

	creatures map[uint32]Creature
	piles     map[uint32]*domain.ItemPile
	schedule  *Schedule

	seen   []domain.Lighting
	memory []domain.Glyph
}

// NewMap creates a map filled with one terrain.
func NewMap(name string, width, height int, fill domain.Terrain) *Map {
	return newMap(name, NewTerrainGrid(width, height, fill))
}

// NewMapFromTemplate creates a map from a width*height byte template.
func NewMapFromTemplate(name string, width, height int, template []byte, key domain.TerrainKey) *Map {
	return newMap(name, NewTerrainGridFromTemplate(width, height, template, key))
}

func newMap(name string, grid *TerrainGrid) *Map {
	n := grid.width * grid.height
	m := &Map{
		name:      name,
		grid:      grid,
		creatures: make(map[uint32]Creature),
		piles:     make(map[uint32]*domain.ItemPile),
		schedule:  NewSchedule(),
		seen:      make([]domain.Lighting, n),
		memory:    make([]domain.Glyph, n),
	}
	for i := range m.memory {
		m.memory[i] = domain.Blank
	}
	return m
}

func (m *Map) Name() string   { return m.name }
func (m *Map) Width() int     { return m.grid.width }
func (m *Map) Height() int    { return m.grid.height }
func (m *Map) String() string { return m.name }

// Level is the depth index the owning dungeon master created the map for.
func (m *Map) Level() int { return m.level }

// Owner returns the dungeon master that created the map, nil for hand-built maps.
func (m *Map) Owner() *DungeonMaster { return m.owner }

// Contains is the bounds test.
func (m *Map) Contains(p domain.Point) bool { return m.grid.Contains(p) }

// Pos binds a point to this map.
func (m *Map) Pos(p domain.Point) Position { return At(m, p.X, p.Y) }

// Terrain panics outside the map.
func (m *Map) Terrain(p domain.Point) domain.Terrain { return m.grid.Get(p) }

// SetTerrain panics outside the map.
func (m *Map) SetTerrain(p domain.Point, t domain.Terrain) { m.grid.Set(p, t) }

// FindTerrain returns the first cell of type t in row-major order.
func (m *Map) FindTerrain(t domain.Terrain) (domain.Point, bool) { return m.grid.Find(t) }

// CountTerrain returns the number of cells of type t.
func (m *Map) CountTerrain(t domain.Terrain) int { return m.grid.Count(t) }

// IsPassable reports whether mover could stand on p, ignoring other creatures.
// Outside the map nothing is passable.
func (m *Map) IsPassable(p domain.Point, mover Creature) bool {
	return m.Contains(p) && m.grid.Get(p).Passable()
}

// IsFree is IsPassable plus "nobody is standing there".
func (m *Map) IsFree(p domain.Point, mover Creature) bool {
	if !m.IsPassable(p, mover) {
		return false
	}
	c, ok := m.creatures[p.Key()]
	return !ok || c == mover
}

// BlocksVision is the opacity predicate for field-of-view and line-of-sight code.
func (m *Map) BlocksVision(p domain.Point, observer Creature) bool {
	return !m.Contains(p) || m.grid.Get(p).Opaque()
}

// Representation returns what observer sees at p: a creature, else the top item, else the
// terrain. When observer is on this map, dark cells show the remembered glyph dimmed.
// A nil observer sees everything.
func (m *Map) Representation(p domain.Point, observer Creature) domain.Glyph {
	if !m.Contains(p) {
		return domain.Blank
	}
	if observer != nil && observer.Base().pos.m == m && m.Seen(p) != domain.Lit {
		if g := m.Remembered(p); g != domain.Blank {
			return g.Dim()
		}
		return domain.Blank
	}
	return m.visible(p)
}

func (m *Map) visible(p domain.Point) domain.Glyph {
	if c, ok := m.creatures[p.Key()]; ok {
		return c.Glyph()
	}
	if pile, ok := m.piles[p.Key()]; ok {
		if top, ok := pile.Top(); ok {
			return top.Glyph
		}
	}
	return m.grid.Get(p).Glyph()
}

// --- Seen grid ---

// ClearSeen marks every cell dark. Memory is kept.
func (m *Map) ClearSeen() {
	for i := range m.seen {
		m.seen[i] = domain.Dark
	}
}

// SetSeen stores the lighting of a cell. Lighting a cell also refreshes the memory.
func (m *Map) SetSeen(p domain.Point, l domain.Lighting) {
	i := m.grid.index(p)
	m.seen[i] = l
	if l == domain.Lit {
		m.memory[i] = m.visible(p)
	}
}

// Seen panics outside the map.
func (m *Map) Seen(p domain.Point) domain.Lighting { return m.seen[m.grid.index(p)] }

// Remember stores a glyph in the hero's memory of the map.
func (m *Map) Remember(p domain.Point, g domain.Glyph) { m.memory[m.grid.index(p)] = g }

// Remembered returns domain.Blank for never-seen cells.
func (m *Map) Remembered(p domain.Point) domain.Glyph { return m.memory[m.grid.index(p)] }

// --- Schedule ---

// NextActor is the actor with the lowest turn on this map.
func (m *Map) NextActor() (Actor, bool) { return m.schedule.Peek() }

// UpdateActor reschedules an actor of this map after it acted.
func (m *Map) UpdateActor(a Actor, cost int) {
	if a.Base().pos.m != m {
		panic(fmt.Sprintf("engine: update of %s on %s, actor is bound to %v", describeActor(a), m.name, a.Base().pos.m))
	}
	m.schedule.Reschedule(a, cost)
}

// Schedule puts an actor that does not occupy a cell (a dungeon master) into this map's
// turn order and binds it to the map. Creatures use AddCreature.
func (m *Map) Schedule(a Actor) {
	b := a.Base()
	if b.pos.m != nil && b.pos.m != m {
		b.pos.m.detach(a)
	}
	m.schedule.Add(a)
	b.pos = Position{m: m}
}

// Unschedule reverses Schedule. Returns false if a was not scheduled here.
func (m *Map) Unschedule(a Actor) bool {
	if !m.schedule.Remove(a) {
		return false
	}
	if b := a.Base(); b.pos.m == m {
		b.pos.m = nil
	}
	return true
}

// Scheduled reports whether a is in this map's turn order.
func (m *Map) Scheduled(a Actor) bool { return m.schedule.Contains(a) }

// ScheduleLen is the number of scheduled actors.
func (m *Map) ScheduleLen() int { return m.schedule.Len() }

// DebugSchedule dumps the turn order.
func (m *Map) DebugSchedule() []map[string]interface{} { return m.schedule.DebugDump() }

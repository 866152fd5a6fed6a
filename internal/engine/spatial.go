package engine

import (
	"fmt"
	"math/rand"
	"sort"

	"roguecore/internal/domain"
)

// GetCreature returns the creature standing on p.
func (m *Map) GetCreature(p domain.Point) (Creature, bool) {
	if !m.Contains(p) {
		return nil, false
	}
	c, ok := m.creatures[p.Key()]
	return c, ok
}

// AddCreature puts c on p and into the turn order. A creature bound to another map is
// detached there first. The cell must be empty.
func (m *Map) AddCreature(p domain.Point, c Creature) {
	b := c.Base()
	if b.pos.m == m {
		panic(fmt.Sprintf("engine: %s is already on %s", c.Name(), m.name))
	}
	if !m.Contains(p) {
		panic(fmt.Sprintf("engine: add %s at %v outside %s", c.Name(), p, m.name))
	}
	if other, ok := m.creatures[p.Key()]; ok {
		panic(fmt.Sprintf("engine: add %s at %v on %s, occupied by %s", c.Name(), p, m.name, other.Name()))
	}
	if old := b.pos.m; old != nil {
		old.detach(c)
	}

	m.creatures[p.Key()] = c
	b.pos = At(m, p.X, p.Y)
	m.schedule.Add(c)
}

// DelCreature removes the creature on p from the index and the turn order and returns it.
func (m *Map) DelCreature(p domain.Point) Creature {
	c, ok := m.GetCreature(p)
	if !ok {
		panic(fmt.Sprintf("engine: no creature at %v on %s", p, m.name))
	}
	b := c.Base()
	if b.pos.m != m {
		panic(fmt.Sprintf("engine: %s indexed on %s but bound to %v", c.Name(), m.name, b.pos.m))
	}
	delete(m.creatures, p.Key())
	m.schedule.Remove(c)
	b.pos.m = nil
	return c
}

// MoveCreature reindexes c at p. The turn order is not touched.
func (m *Map) MoveCreature(p domain.Point, c Creature) {
	b := c.Base()
	if b.pos.m != m {
		panic(fmt.Sprintf("engine: move of %s on %s, bound to %v", c.Name(), m.name, b.pos.m))
	}
	if !m.Contains(p) {
		panic(fmt.Sprintf("engine: move of %s to %v outside %s", c.Name(), p, m.name))
	}
	if other, ok := m.creatures[p.Key()]; ok && other != c {
		panic(fmt.Sprintf("engine: move of %s to %v, occupied by %s", c.Name(), p, other.Name()))
	}
	delete(m.creatures, b.pos.Point().Key())
	m.creatures[p.Key()] = c
	b.pos.X, b.pos.Y = p.X, p.Y
}

// detach removes a from every index of m without touching its coordinates.
func (m *Map) detach(a Actor) {
	b := a.Base()
	if c, ok := a.(Creature); ok {
		key := b.pos.Point().Key()
		if cur, ok := m.creatures[key]; ok && cur == c {
			delete(m.creatures, key)
		}
	}
	m.schedule.Remove(a)
	b.pos.m = nil
}

// Creatures returns every creature on the map ordered by cell key.
func (m *Map) Creatures() []Creature {
	keys := make([]uint32, 0, len(m.creatures))
	for k := range m.creatures {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	out := make([]Creature, len(keys))
	for i, k := range keys {
		out[i] = m.creatures[k]
	}
	return out
}

// CreatureCount is the number of occupied cells.
func (m *Map) CreatureCount() int { return len(m.creatures) }

// randomProbes bounds the random search in RandomFree before it falls back to a scan.
const randomProbes = 256

// RandomFree picks a random passable, unoccupied cell.
func (m *Map) RandomFree(rng *rand.Rand) (domain.Point, bool) {
	w, h := m.Width(), m.Height()
	for i := 0; i < randomProbes; i++ {
		p := domain.Pt(rng.Intn(w), rng.Intn(h))
		if m.IsFree(p, nil) {
			return p, true
		}
	}
	return m.NearestFree(domain.Pt(rng.Intn(w), rng.Intn(h)))
}

// PlaceCreature adds c on a random free cell and returns it. Panics if the map is full.
func (m *Map) PlaceCreature(rng *rand.Rand, c Creature) domain.Point {
	p, ok := m.RandomFree(rng)
	if !ok {
		panic(fmt.Sprintf("engine: no free cell for %s on %s", c.Name(), m.name))
	}
	m.AddCreature(p, c)
	return p
}

// NearestFree runs a breadth-first search from p (inclusive) for a free cell.
func (m *Map) NearestFree(p domain.Point) (domain.Point, bool) {
	if !m.Contains(p) {
		return domain.Point{}, false
	}
	visited := make([]bool, m.Width()*m.Height())
	visited[m.grid.index(p)] = true
	queue := []domain.Point{p}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if m.IsFree(cur, nil) {
			return cur, true
		}
		for _, d := range domain.Offsets8 {
			n := cur.Add(d)
			if !m.Contains(n) {
				continue
			}
			if i := m.grid.index(n); !visited[i] {
				visited[i] = true
				queue = append(queue, n)
			}
		}
	}
	return domain.Point{}, false
}

package engine

import (
	"fmt"

	"roguecore/internal/domain"
)

// Position is a cell bound to its owning map. The map pointer is a back-reference only;
// the map owns the indexes.
type Position struct {
	X, Y int
	m    *Map
}

// At binds (x, y) to m.
func At(m *Map, x, y int) Position {
	return Position{X: x, Y: y, m: m}
}

// Map returns the owning map or nil.
func (p Position) Map() *Map { return p.m }

// Point drops the map binding.
func (p Position) Point() domain.Point { return domain.Pt(p.X, p.Y) }

// Offset shifts the position on the same map. The result may be outside it.
func (p Position) Offset(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy, m: p.m}
}

// Inside reports whether the position is bound and within its map.
func (p Position) Inside() bool {
	return p.m != nil && p.m.Contains(p.Point())
}

// Equal requires the same map and the same coordinates.
func (p Position) Equal(o Position) bool {
	return p.m == o.m && p.X == o.X && p.Y == o.Y
}

func (p Position) String() string {
	if p.m == nil {
		return fmt.Sprintf("(%d,%d)@-", p.X, p.Y)
	}
	return fmt.Sprintf("(%d,%d)@%s", p.X, p.Y, p.m.Name())
}

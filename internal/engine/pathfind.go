package engine

import (
	"roguecore/internal/domain"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"
)

// pathNode exists only for the duration of one PathFind call.
type pathNode struct {
	p      domain.Point
	parent *pathNode
	g, h   int
	d2     int // квадрат расстояния до цели, чтобы из равных путей брать более прямой
	seq    uint64
}

func (n *pathNode) f() int { return n.g + n.h }

func lessNode(a, b *pathNode) bool {
	if a.f() != b.f() {
		return a.f() < b.f()
	}
	if a.h != b.h {
		return a.h < b.h
	}
	if a.d2 != b.d2 {
		return a.d2 < b.d2
	}
	return a.seq < b.seq
}

// PathFind runs A* from start to goal with 8-way moves of cost 1 and a Chebyshev
// heuristic. The result runs from the first step through goal, start excluded. It is empty
// when start == goal or when no path exists.
//
// Impassable cells and cells held by another creature are skipped; the goal itself is
// accepted as soon as it is reached, even if somebody stands on it. Occupancy is read at
// call time, nothing is reserved.
func (m *Map) PathFind(start, goal domain.Point, mover Creature) []domain.Point {
	if start == goal || !m.Contains(start) || !m.Contains(goal) {
		return nil
	}

	open := heap.New[*pathNode](lessNode)
	best := map[uint32]int{start.Key(): 0}
	closed := mapset.New[uint32]()
	var seq uint64

	open.Push(&pathNode{p: start, h: start.Chebyshev(goal)})

	for open.Size() > 0 {
		cur, _ := open.Pop()
		key := cur.p.Key()
		// Устаревшая запись: клетка уже закрыта с лучшей стоимостью
		if closed.Has(key) {
			continue
		}
		closed.Put(key)

		for _, d := range domain.Offsets8 {
			next := cur.p.Add(d)
			if next == goal {
				return buildPath(cur, goal)
			}
			if !m.Contains(next) {
				continue
			}
			nk := next.Key()
			if closed.Has(nk) || !m.IsFree(next, mover) {
				continue
			}
			g := cur.g + 1
			if old, ok := best[nk]; ok && old <= g {
				continue
			}
			best[nk] = g
			seq++
			open.Push(&pathNode{
				p:      next,
				parent: cur,
				g:      g,
				h:      next.Chebyshev(goal),
				d2:     next.DistanceSquaredTo(goal),
				seq:    seq,
			})
		}
	}
	return nil
}

func buildPath(last *pathNode, goal domain.Point) []domain.Point {
	path := make([]domain.Point, last.g+1)
	path[last.g] = goal
	for n := last; n.parent != nil; n = n.parent {
		path[n.g-1] = n.p
	}
	return path
}

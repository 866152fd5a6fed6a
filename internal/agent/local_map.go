package agent

import (
	"roguecore/internal/domain"
	"roguecore/internal/engine"
)

// localMap - то, что бот знает об уровне: увиденные клетки с настоящей местностью,
// остальное - стена.
type localMap struct {
	m     *engine.Map
	seen  []bool
	width int
}

func buildLocalMap(real *engine.Map) *localMap {
	w, h := real.Width(), real.Height()
	l := &localMap{
		m:     engine.NewMap(real.Name()+"/bot", w, h, domain.RockWall),
		seen:  make([]bool, w*h),
		width: w,
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := domain.Pt(x, y)
			if real.Remembered(p) == domain.Blank {
				continue
			}
			l.seen[y*w+x] = true
			l.m.SetTerrain(p, real.Terrain(p))
		}
	}
	return l
}

func (l *localMap) known(p domain.Point) bool {
	return l.m.Contains(p) && l.seen[p.Y*l.width+p.X]
}

func (l *localMap) stairDown() (domain.Point, bool) {
	return l.m.FindTerrain(domain.StairDown)
}

// frontier - известная проходимая клетка рядом с неизвестной
func (l *localMap) frontier(p domain.Point) bool {
	for _, d := range domain.Offsets8 {
		n := p.Add(d)
		if l.m.Contains(n) && !l.known(n) {
			return true
		}
	}
	return false
}

// nearestFrontier - поиск в ширину по известным проходимым клеткам от from.
// Сама клетка from не считается: стоя на ней, герой уже видит соседей.
func (l *localMap) nearestFrontier(from domain.Point) (domain.Point, bool) {
	if !l.m.Contains(from) {
		return domain.Point{}, false
	}
	visited := map[domain.Point]bool{from: true}
	queue := []domain.Point{from}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur != from && l.frontier(cur) {
			return cur, true
		}
		for _, d := range domain.Offsets8 {
			n := cur.Add(d)
			if visited[n] || !l.known(n) || !l.m.IsPassable(n, nil) {
				continue
			}
			visited[n] = true
			queue = append(queue, n)
		}
	}
	return domain.Point{}, false
}

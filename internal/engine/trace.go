package engine

import (
	"fmt"

	"roguecore/internal/domain"
)

// TraceLine returns every cell of the Bresenham line from a to b, both included.
// The result has max(|dx|,|dy|)+1 cells and TraceLine(b, a) is its exact reverse.
func TraceLine(a, b domain.Point) []domain.Point {
	// Всегда идем от "меньшей" точки, иначе A->B и B->A расходятся на полушагах
	if b.Y < a.Y || (b.Y == a.Y && b.X < a.X) {
		line := bresenham(b, a)
		for i, j := 0, len(line)-1; i < j; i, j = i+1, j-1 {
			line[i], line[j] = line[j], line[i]
		}
		return line
	}
	return bresenham(a, b)
}

func bresenham(a, b domain.Point) []domain.Point {
	x0, y0, x1, y1 := a.X, a.Y, b.X, b.Y

	// Крутая линия: меняем оси местами и идем по главной оси
	steep := absInt(y1-y0) > absInt(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}

	dx, dy := absInt(x1-x0), absInt(y1-y0)
	xstep, ystep := 1, 1
	if x1 < x0 {
		xstep = -1
	}
	if y1 < y0 {
		ystep = -1
	}

	line := make([]domain.Point, 0, dx+1)
	errAcc, y := 0, y0
	for x := x0; ; x += xstep {
		if steep {
			line = append(line, domain.Pt(y, x))
		} else {
			line = append(line, domain.Pt(x, y))
		}
		if x == x1 {
			break
		}
		errAcc += dy
		if 2*errAcc >= dx {
			y += ystep
			errAcc -= dx
		}
	}
	return line
}

// TraceLine traces between two positions of this map.
func (m *Map) TraceLine(a, b Position) []Position {
	if a.m != m || b.m != m {
		panic(fmt.Sprintf("engine: trace %v -> %v on %s", a, b, m.name))
	}
	if !m.Contains(a.Point()) || !m.Contains(b.Point()) {
		panic(fmt.Sprintf("engine: trace %v -> %v leaves %s", a, b, m.name))
	}
	pts := TraceLine(a.Point(), b.Point())
	out := make([]Position, len(pts))
	for i, p := range pts {
		out[i] = m.Pos(p)
	}
	return out
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

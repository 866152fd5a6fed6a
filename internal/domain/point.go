package domain

// Point is a grid coordinate with no map attached.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pt is a convenience constructor for Point.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Axis limit imposed by Key: each coordinate has to fit in 16 bits.
const MaxAxis = 1 << 16

// Offsets8 lists the eight neighbours in row-major order.
var Offsets8 = [8]Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Shift возвращает новую точку со смещением, не меняя текущую.
func (p Point) Shift(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Add adds another point's components to a copy of this point.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub subtracts another point's components from a copy of this point.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Sign reduces each component to -1, 0 or 1.
func (p Point) Sign() Point {
	return Point{X: sign(p.X), Y: sign(p.Y)}
}

// Chebyshev is the 8-way step distance: diagonal and orthogonal moves cost the same.
func (p Point) Chebyshev(o Point) int {
	dx, dy := abs(p.X-o.X), abs(p.Y-o.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// MinAxis returns the smaller of the two axis deltas.
func (p Point) MinAxis(o Point) int {
	dx, dy := abs(p.X-o.X), abs(p.Y-o.Y)
	if dx < dy {
		return dx
	}
	return dy
}

// DistanceSquaredTo возвращает квадрат расстояния (int) для сравнения без корней
func (p Point) DistanceSquaredTo(o Point) int {
	dx := p.X - o.X
	dy := p.Y - o.Y
	return dx*dx + dy*dy
}

// IsAdjacent возвращает true, если цель в соседней клетке (включая диагональ)
func (p Point) IsAdjacent(o Point) bool {
	dx, dy := abs(p.X-o.X), abs(p.Y-o.Y)
	return dx <= 1 && dy <= 1 && (dx != 0 || dy != 0)
}

// Key packs the point into one sparse-index key: x in the high half, y in the low half.
// Only valid for 0 <= x, y < MaxAxis.
func (p Point) Key() uint32 {
	return uint32(p.X)<<16 | uint32(p.Y)&0xFFFF
}

// PointFromKey is the inverse of Key.
func PointFromKey(k uint32) Point {
	return Point{X: int(k >> 16), Y: int(k & 0xFFFF)}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}

package dungeon

import (
	"math/rand"
)

// CellularParams описывает клеточный автомат пещеры.
type CellularParams struct {
	Char          byte // чем заполняем (стена)
	PercFill      int  // начальный процент заливки
	BlankIfLess   int  // клетка пустеет, если соседей-стен меньше
	FillIfMore    int  // клетка заполняется, если соседей-стен больше
	Iterations    int
	BordersFilled bool // клетки за краем считаются стенами
}

// CaveParams - открытая пещера
var CaveParams = CellularParams{
	Char:          CharWall,
	PercFill:      35,
	BlankIfLess:   4,
	FillIfMore:    4,
	Iterations:    10,
	BordersFilled: true,
}

// CellularAutomata returns a width*height template: p.Char for rock, CharCaveFloor for
// open ground.
func CellularAutomata(width, height int, p CellularParams, rng *rand.Rand) []byte {
	c := newCanvas(width, height, CharCaveFloor)
	for i := range c.cells {
		if rng.Intn(100)+1 < p.PercFill {
			c.cells[i] = p.Char
		}
	}

	next := make([]byte, len(c.cells))
	for it := 0; it < p.Iterations; it++ {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				num := c.surrounding(x, y, p.Char, p.BordersFilled)
				switch {
				case num < p.BlankIfLess:
					next[y*width+x] = CharCaveFloor
				case num > p.FillIfMore:
					next[y*width+x] = p.Char
				default:
					next[y*width+x] = c.at(x, y)
				}
			}
		}
		c.cells, next = next, c.cells
	}

	if p.BordersFilled {
		c.border(p.Char)
	}
	return c.cells
}

// surrounding считает клетки ch в окрестности 3x3, включая саму клетку
func (c *canvas) surrounding(x, y int, ch byte, filledBorders bool) int {
	num := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			nx, ny := x+dx, y+dy
			if !c.inside(nx, ny) {
				if filledBorders {
					num++
				}
				continue
			}
			if c.at(nx, ny) == ch {
				num++
			}
		}
	}
	return num
}

// regions размечает связные области открытых клеток (8-связность).
// Возвращает метку каждой клетки (-1 для закрытых) и размер каждой области.
func (c *canvas) regions(open func(byte) bool) ([]int, []int) {
	labels := make([]int, len(c.cells))
	for i := range labels {
		labels[i] = -1
	}
	var sizes []int
	queue := make([]int, 0, 64)

	for start := range c.cells {
		if labels[start] != -1 || !open(c.cells[start]) {
			continue
		}
		id := len(sizes)
		size := 0
		labels[start] = id
		queue = append(queue[:0], start)
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			size++
			cx, cy := cur%c.w, cur/c.w
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					nx, ny := cx+dx, cy+dy
					if !c.inside(nx, ny) {
						continue
					}
					n := ny*c.w + nx
					if labels[n] == -1 && open(c.cells[n]) {
						labels[n] = id
						queue = append(queue, n)
					}
				}
			}
		}
		sizes = append(sizes, size)
	}
	return labels, sizes
}

// sealIsolated оставляет открытой только самую большую область, остальные заливает fill.
// Возвращает размер оставшейся области.
func (c *canvas) sealIsolated(open func(byte) bool, fill byte) int {
	labels, sizes := c.regions(open)
	if len(sizes) == 0 {
		return 0
	}
	best := 0
	for id, size := range sizes {
		if size > sizes[best] {
			best = id
		}
	}
	for i, l := range labels {
		if l != -1 && l != best {
			c.cells[i] = fill
		}
	}
	return sizes[best]
}

package dungeon

import (
	"math/rand"
)

// Константы генерации
const (
	MapWidth  = 40
	MapHeight = 25
	MaxRooms  = 8
	MinSize   = 4
	MaxSize   = 10

	// ItemAttempts - сколько случайных клеток пробуем при раскладке предметов
	ItemAttempts = 250
)

// Символы шаблона уровня
const (
	CharWall      byte = '#'
	CharFloor     byte = '.'
	CharCaveFloor byte = ' '
	CharGrass     byte = ','
	CharTree      byte = 'T'
	CharWater     byte = '~'
	CharDeepWater byte = '='
	CharMountain  byte = '^'
	CharSand      byte = ':'
	CharStairUp   byte = '<'
	CharStairDown byte = '>'
)

// Rect - Вспомогательная структура для комнаты
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.W && r.X+r.W >= other.X &&
		r.Y <= other.Y+other.H && r.Y+r.H >= other.Y
}

// canvas - черновик уровня: символы шаблона построчно, как их ждет engine.NewMapFromTemplate
type canvas struct {
	w, h  int
	cells []byte
}

func newCanvas(w, h int, fill byte) *canvas {
	c := &canvas{w: w, h: h, cells: make([]byte, w*h)}
	for i := range c.cells {
		c.cells[i] = fill
	}
	return c
}

func (c *canvas) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.w && y < c.h
}

func (c *canvas) at(x, y int) byte      { return c.cells[y*c.w+x] }
func (c *canvas) set(x, y int, ch byte) { c.cells[y*c.w+x] = ch }

// border заливает внешнее кольцо клеток
func (c *canvas) border(ch byte) {
	for x := 0; x < c.w; x++ {
		c.set(x, 0, ch)
		c.set(x, c.h-1, ch)
	}
	for y := 0; y < c.h; y++ {
		c.set(0, y, ch)
		c.set(c.w-1, y, ch)
	}
}

func createRoom(c *canvas, room Rect) {
	for y := room.Y + 1; y < room.Y+room.H; y++ {
		for x := room.X + 1; x < room.X+room.W; x++ {
			c.set(x, y, CharFloor)
		}
	}
}

func createHCorridor(c *canvas, x1, x2, y int) {
	start := min(x1, x2)
	end := max(x1, x2)
	for x := start; x <= end; x++ {
		c.set(x, y, CharFloor)
	}
}

func createVCorridor(c *canvas, y1, y2, x int) {
	start := min(y1, y2)
	end := max(y1, y2)
	for y := start; y <= end; y++ {
		c.set(x, y, CharFloor)
	}
}

// generateRooms - классический генератор: комнаты без пересечений, каждая новая
// соединяется коридором с предыдущей.
func generateRooms(c *canvas, maxRooms int, rng *rand.Rand) []Rect {
	maxW := min(MaxSize, c.w-3)
	maxH := min(MaxSize, c.h-3)
	minW := min(MinSize, maxW)
	minH := min(MinSize, maxH)

	rooms := make([]Rect, 0, maxRooms)
	for i := 0; i < maxRooms; i++ {
		w := randRange(rng, minW, maxW)
		h := randRange(rng, minH, maxH)
		x := randRange(rng, 1, c.w-w-2)
		y := randRange(rng, 1, c.h-h-2)

		newRoom := Rect{X: x, Y: y, W: w, H: h}

		// Проверяем пересечения
		failed := false
		for _, other := range rooms {
			if newRoom.Intersects(other) {
				failed = true
				break
			}
		}
		if failed {
			continue
		}

		createRoom(c, newRoom)

		// Соединяем с предыдущей комнатой
		if len(rooms) > 0 {
			prevX, prevY := rooms[len(rooms)-1].Center()
			currX, currY := newRoom.Center()

			if rng.Intn(2) == 0 {
				createHCorridor(c, prevX, currX, prevY)
				createVCorridor(c, prevY, currY, currX)
			} else {
				createVCorridor(c, prevY, currY, prevX)
				createHCorridor(c, prevX, currX, currY)
			}
		}
		rooms = append(rooms, newRoom)
	}
	return rooms
}

func randRange(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return rng.Intn(max-min+1) + min
}

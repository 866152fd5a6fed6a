package dungeon

import (
	"math/rand"
	"os"
	"testing"

	"roguecore/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// Тест вспомогательной функции пересечения комнат
func TestRect_Intersects(t *testing.T) {
	r1 := Rect{0, 0, 10, 10}
	r2 := Rect{5, 5, 10, 10} // Пересекается
	r3 := Rect{20, 20, 5, 5} // Не пересекается

	if !r1.Intersects(r2) {
		t.Error("Rects should intersect")
	}

	if r1.Intersects(r3) {
		t.Error("Rects should NOT intersect")
	}
}

func TestGenerateRooms(t *testing.T) {
	c := newCanvas(MapWidth, MapHeight, CharWall)
	rooms := generateRooms(c, MaxRooms, rand.New(rand.NewSource(7)))
	require.NotEmpty(t, rooms)

	for i, r := range rooms {
		cx, cy := r.Center()
		assert.Equal(t, CharFloor, c.at(cx, cy), "room %d center is carved", i)
		for j := i + 1; j < len(rooms); j++ {
			assert.False(t, r.Intersects(rooms[j]), "rooms %d and %d overlap", i, j)
		}
	}

	// Края карты остаются стеной
	for x := 0; x < c.w; x++ {
		assert.Equal(t, CharWall, c.at(x, 0))
		assert.Equal(t, CharWall, c.at(x, c.h-1))
	}
	for y := 0; y < c.h; y++ {
		assert.Equal(t, CharWall, c.at(0, y))
		assert.Equal(t, CharWall, c.at(c.w-1, y))
	}

	// Все комнаты связаны коридорами
	_, sizes := c.regions(isOpen)
	assert.Len(t, sizes, 1)
}

func TestGenerateRooms_TinyMap(t *testing.T) {
	c := newCanvas(8, 8, CharWall)
	assert.NotPanics(t, func() {
		generateRooms(c, MaxRooms, rand.New(rand.NewSource(1)))
	})
}

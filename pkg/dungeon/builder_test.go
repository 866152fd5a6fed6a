package dungeon

import (
	"math/rand"
	"testing"

	"roguecore/internal/domain"
	"roguecore/internal/engine"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRng(seed int64) *rand.Rand { return rand.New(rand.NewSource(seed)) }

func TestLevelBuilder_Rooms(t *testing.T) {
	b := NewLevel("rooms:1", 1, newRng(11)).WithSize(MapWidth, MapHeight).WithRooms(MaxRooms)
	m := b.PlaceExit("up").PlaceExit("down").Build()

	rooms := b.Rooms()
	require.Greater(t, len(rooms), 1)

	up, ok := m.FindTerrain(domain.StairUp)
	require.True(t, ok)
	down, ok := m.FindTerrain(domain.StairDown)
	require.True(t, ok)

	ux, uy := rooms[0].Center()
	dx, dy := rooms[len(rooms)-1].Center()
	assert.Equal(t, domain.Pt(ux, uy), up, "stair up in the first room")
	assert.Equal(t, domain.Pt(dx, dy), down, "stair down in the last room")

	assert.NotNil(t, m.PathFind(up, down, nil), "stairs are connected")
}

func TestLevelBuilder_SurfaceHasNoStairUp(t *testing.T) {
	m := NewLevel("rooms:0", 0, newRng(3)).WithRooms(MaxRooms).PlaceExit("up").PlaceExit("down").Build()

	assert.Equal(t, 0, m.CountTerrain(domain.StairUp))
	assert.Equal(t, 1, m.CountTerrain(domain.StairDown))
}

func TestLevelBuilder_TemplateKeepsItsStairs(t *testing.T) {
	m := NewLevel("town:0", 0, newRng(1)).
		WithSize(len(Town[0]), len(Town)).
		WithTemplate(Town, CharMountain, CharMountain).
		PlaceExit("down").
		Build()

	assert.Equal(t, 1, m.CountTerrain(domain.StairDown))
	down, _ := m.FindTerrain(domain.StairDown)
	assert.Equal(t, domain.Pt(18, 9), down)
	assert.Equal(t, domain.Mountain, m.Terrain(domain.Pt(0, 0)))
	assert.Equal(t, domain.Grass, m.Terrain(domain.Pt(1, 1)))
}

func TestLevelBuilder_TemplateIsClipped(t *testing.T) {
	var m *engine.Map
	require.NotPanics(t, func() {
		m = NewLevel("town:0", 0, newRng(1)).
			WithSize(20, 10).
			WithTemplate(Town, CharMountain, CharMountain).
			PlaceExit("down").
			Build()
	})
	assert.Equal(t, 20, m.Width())
	assert.Equal(t, 1, m.CountTerrain(domain.StairDown))
}

func TestLevelBuilder_ScatterItems(t *testing.T) {
	m := NewLevel("rooms:2", 2, newRng(5)).
		WithRooms(MaxRooms).
		PlaceExit("up").
		PlaceExit("down").
		ScatterItems(ItemAttempts).
		Build()

	require.Greater(t, m.PileCount(), 0)
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			p := domain.Pt(x, y)
			if !m.HasItems(p) {
				continue
			}
			tr := m.Terrain(p)
			if !tr.Passable() || tr == domain.StairUp || tr == domain.StairDown {
				t.Errorf("items at %v lie on %s", p, tr)
			}
		}
	}
}

func TestLevelBuilder_Deterministic(t *testing.T) {
	build := func() []byte {
		return NewLevel("cave:4", 4, newRng(77)).
			WithSize(60, 40).
			WithCave(CaveParams).
			PlaceExit("up").
			PlaceExit("down").
			Template()
	}
	assert.Equal(t, build(), build())
}

func TestItemTemplate_Spawn(t *testing.T) {
	rng := newRng(1)
	for i := 0; i < 20; i++ {
		gold := Gold.Spawn(rng)
		assert.GreaterOrEqual(t, gold.Count, 1)
		assert.LessOrEqual(t, gold.Count, Gold.MaxCount)
	}
	sword := IronSword.Spawn(rng)
	assert.Equal(t, 1, sword.Count)
	assert.Equal(t, domain.ItemCategoryWeapon, sword.Category)
	assert.Equal(t, byte(')'), sword.Glyph.Char())

	assert.Len(t, ItemKeys(), len(ItemTemplates))
}

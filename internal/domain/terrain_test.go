package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerrain_Properties(t *testing.T) {
	tests := []struct {
		terrain  Terrain
		passable bool
		opaque   bool
	}{
		{DirtFloor, true, false},
		{Grass, true, false},
		{RockWall, false, true},
		{Tree, false, true},
		{ShallowWater, false, false},
		{DeepWater, false, false},
		{Mountain, false, true},
		{Desert, true, false},
		{StairUp, true, false},
		{StairDown, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.terrain.String(), func(t *testing.T) {
			assert.True(t, tt.terrain.Valid())
			assert.Equal(t, tt.passable, tt.terrain.Passable())
			assert.Equal(t, tt.opaque, tt.terrain.Opaque())
			assert.NotZero(t, tt.terrain.Glyph().Char())
		})
	}
}

func TestTerrain_String(t *testing.T) {
	assert.Equal(t, "a rock wall", RockWall.String())
	assert.False(t, EndTerrain.Valid())
	assert.Equal(t, "Terrain(10)", EndTerrain.String())
}

func TestTerrainKey_Lookup(t *testing.T) {
	key := TerrainKey{'#': RockWall, '>': StairDown}
	assert.Equal(t, RockWall, key.Lookup('#'))
	assert.Equal(t, StairDown, key.Lookup('>'))
	assert.Equal(t, Baseline, key.Lookup('?'))
}

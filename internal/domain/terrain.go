package domain

import "fmt"

// Terrain is the per-cell ground type of a map.
type Terrain uint8

const (
	DirtFloor Terrain = iota
	Grass
	RockWall
	Tree
	ShallowWater
	DeepWater
	Mountain
	Desert
	StairUp
	StairDown

	EndTerrain
)

// Baseline is used for template characters that have no mapping.
const Baseline = Grass

type terrainInfo struct {
	name     string
	glyph    Glyph
	passable bool
	opaque   bool
}

// terrainTable is filled once at package load and never written afterwards.
var terrainTable = [EndTerrain]terrainInfo{
	DirtFloor:    {"some dirt", MakeGlyph(Brown, '.'), true, false},
	Grass:        {"some grass", MakeGlyph(DGreen, '.'), true, false},
	RockWall:     {"a rock wall", MakeGlyph(Brown, '#'), false, true},
	Tree:         {"a tree", MakeGlyph(LGreen, '&'), false, true},
	ShallowWater: {"some water", MakeGlyph(LBlue, '~'), false, false},
	DeepWater:    {"some water", MakeGlyph(DBlue, '~'), false, false},
	Mountain:     {"a mountain", MakeGlyph(Brown, '^'), false, true},
	Desert:       {"desert", MakeGlyph(Yellow, '.'), true, false},
	StairUp:      {"a staircase leading up", MakeGlyph(White, '<'), true, false},
	StairDown:    {"a staircase leading down", MakeGlyph(White, '>'), true, false},
}

// Valid reports whether t is a known terrain type.
func (t Terrain) Valid() bool { return t < EndTerrain }

// Passable reports whether creatures may enter the terrain.
func (t Terrain) Passable() bool { return terrainTable[t].passable }

// Opaque reports whether the terrain blocks line of sight.
func (t Terrain) Opaque() bool { return terrainTable[t].opaque }

// Name is the display name ("a rock wall").
func (t Terrain) Name() string { return terrainTable[t].name }

// Glyph is the display symbol.
func (t Terrain) Glyph() Glyph { return terrainTable[t].glyph }

func (t Terrain) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Terrain(%d)", uint8(t))
	}
	return t.Name()
}

// TerrainKey maps template characters to terrain, e.g. '#' => RockWall.
type TerrainKey map[byte]Terrain

// Lookup resolves a template character, falling back to Baseline.
func (k TerrainKey) Lookup(c byte) Terrain {
	if t, ok := k[c]; ok {
		return t
	}
	return Baseline
}

package engine

import (
	"fmt"

	"roguecore/internal/domain"
)

// TerrainGrid - плотный массив типов местности, индекс y*width+x.
type TerrainGrid struct {
	width, height int
	cells         []domain.Terrain
}

// NewTerrainGrid fills every cell with one terrain.
func NewTerrainGrid(width, height int, fill domain.Terrain) *TerrainGrid {
	checkDimensions(width, height)
	if !fill.Valid() {
		panic(fmt.Sprintf("engine: invalid fill terrain %d", fill))
	}
	g := &TerrainGrid{width: width, height: height, cells: make([]domain.Terrain, width*height)}
	for i := range g.cells {
		g.cells[i] = fill
	}
	return g
}

// NewTerrainGridFromTemplate reads one byte per cell, row by row. Bytes missing from key
// become domain.Baseline.
func NewTerrainGridFromTemplate(width, height int, template []byte, key domain.TerrainKey) *TerrainGrid {
	checkDimensions(width, height)
	if len(template) != width*height {
		panic(fmt.Sprintf("engine: template has %d cells, want %dx%d", len(template), width, height))
	}
	g := &TerrainGrid{width: width, height: height, cells: make([]domain.Terrain, width*height)}
	for i, c := range template {
		g.cells[i] = key.Lookup(c)
	}
	return g
}

func checkDimensions(width, height int) {
	if width <= 0 || height <= 0 || width > domain.MaxAxis || height > domain.MaxAxis {
		panic(fmt.Sprintf("engine: map size %dx%d out of range (1..%d per axis)", width, height, domain.MaxAxis))
	}
}

func (g *TerrainGrid) Width() int  { return g.width }
func (g *TerrainGrid) Height() int { return g.height }

// Contains is the bounds test.
func (g *TerrainGrid) Contains(p domain.Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

func (g *TerrainGrid) index(p domain.Point) int {
	if !g.Contains(p) {
		panic(fmt.Sprintf("engine: %v outside %dx%d grid", p, g.width, g.height))
	}
	return p.Y*g.width + p.X
}

// Get panics outside the grid.
func (g *TerrainGrid) Get(p domain.Point) domain.Terrain {
	return g.cells[g.index(p)]
}

// Set panics outside the grid or on an invalid terrain.
func (g *TerrainGrid) Set(p domain.Point, t domain.Terrain) {
	if !t.Valid() {
		panic(fmt.Sprintf("engine: invalid terrain %d", t))
	}
	g.cells[g.index(p)] = t
}

// Find returns the first cell of type t in row-major order.
func (g *TerrainGrid) Find(t domain.Terrain) (domain.Point, bool) {
	for i, c := range g.cells {
		if c == t {
			return domain.Pt(i%g.width, i/g.width), true
		}
	}
	return domain.Point{}, false
}

// Count returns how many cells hold t.
func (g *TerrainGrid) Count(t domain.Terrain) int {
	n := 0
	for _, c := range g.cells {
		if c == t {
			n++
		}
	}
	return n
}

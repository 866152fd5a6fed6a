package dungeon

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// surfaceScale - сколько клеток приходится на одну "волну" шума
const surfaceScale = 18.0

// heightBand - верхняя граница высоты (0..1) и символ местности под ней
type heightBand struct {
	top  float64
	char byte
}

// surfaceBands идут снизу вверх: глубокая вода, мель, песок, трава, лес, горы
var surfaceBands = []heightBand{
	{0.22, CharDeepWater},
	{0.30, CharWater},
	{0.35, CharSand},
	{0.62, CharGrass},
	{0.74, CharTree},
	{1.01, CharMountain},
}

// GenerateSurface строит поверхность (уровень 0) по карте высот из шума OpenSimplex.
// Края карты всегда горы.
func GenerateSurface(width, height int, seed int64) []byte {
	noise := opensimplex.New(seed)
	c := newCanvas(width, height, CharGrass)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			fx, fy := float64(x)/surfaceScale, float64(y)/surfaceScale
			// Две октавы: крупный рельеф и мелкая рябь
			h := noise.Eval2(fx, fy) + 0.5*noise.Eval2(2*fx+31.7, 2*fy+17.3)
			h = (h/1.5 + 1) / 2
			c.set(x, y, bandFor(h))
		}
	}
	c.border(CharMountain)
	return c.cells
}

func bandFor(h float64) byte {
	for _, b := range surfaceBands {
		if h < b.top {
			return b.char
		}
	}
	return CharMountain
}

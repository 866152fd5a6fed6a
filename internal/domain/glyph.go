package domain

import "fmt"

// Glyph is a packed coloured map symbol:
//
//	[0:8]  - character (one byte)
//	[8:32] - RGB colour (0xRRGGBB)
//
// A Glyph is what Map.Representation hands to the renderer.
type Glyph uint32

const (
	bitsChar    = 8
	bitsColour  = 24
	shiftColour = bitsChar

	maskChar   = (1 << bitsChar) - 1
	maskColour = (1 << bitsColour) - 1
)

// Colour is a 24-bit RGB value.
type Colour uint32

// Palette used by terrain, species and items.
const (
	Black  Colour = 0x000000
	White  Colour = 0xFFFFFF
	Grey   Colour = 0x808080
	Brown  Colour = 0x8B5A2B
	DGreen Colour = 0x006400
	LGreen Colour = 0x32CD32
	LBlue  Colour = 0x87CEFA
	DBlue  Colour = 0x00008B
	Yellow Colour = 0xFFD700
	Orange Colour = 0xFFA500
	Red    Colour = 0xDC143C
	Cyan   Colour = 0x22D3EE
)

// Blank is drawn for cells the observer knows nothing about.
var Blank = MakeGlyph(Black, ' ')

// MakeGlyph packs a colour and a character. Only the low 24 bits of the colour are kept.
func MakeGlyph(c Colour, char byte) Glyph {
	return Glyph((uint32(c)&maskColour)<<shiftColour | uint32(char)&maskChar)
}

// Char returns the character byte.
func (g Glyph) Char() byte {
	return byte(g & maskChar)
}

// Colour returns the RGB colour.
func (g Glyph) Colour() Colour {
	return Colour(uint32(g>>shiftColour) & maskColour)
}

// RGB splits the colour into channels.
func (g Glyph) RGB() (r, gr, b int32) {
	c := uint32(g.Colour())
	return int32(c >> 16 & 0xFF), int32(c >> 8 & 0xFF), int32(c & 0xFF)
}

// Dim halves every channel; used for remembered but currently dark cells.
func (g Glyph) Dim() Glyph {
	c := uint32(g.Colour())
	c = (c >> 1) & 0x7F7F7F
	return MakeGlyph(Colour(c), g.Char())
}

// HexColour возвращает строковое HEX-представление цвета (например, "#00FF00").
func (g Glyph) HexColour() string {
	return fmt.Sprintf("#%06X", uint32(g.Colour()))
}

// String реализует fmt.Stringer. Формат: "Glyph{char='A', colour=#FFA500}"
func (g Glyph) String() string {
	char := g.Char()
	charStr := string([]byte{char})

	// Для непечатаемых символов показываем hex
	if char < 32 || char > 126 {
		charStr = fmt.Sprintf("\\x%02X", char)
	}
	return fmt.Sprintf("Glyph{char='%s', colour=%s}", charStr, g.HexColour())
}

package creature

import (
	"sort"

	"roguecore/internal/domain"
)

// Species - шаблон монстра: как выглядит, как быстро ходит, как далеко видит.
type Species struct {
	Key         string
	Name        string
	Glyph       domain.Glyph
	Speed       domain.Speed
	Sight       int
	Description string
}

// --- ВРАГИ ---

var Goblin = Species{
	Key:         "goblin",
	Name:        "Хитрый Гоблин",
	Glyph:       domain.MakeGlyph(0x22C55E, 'g'),
	Speed:       domain.Quick,
	Sight:       domain.VisionRadius,
	Description: "Мелкий пакостный гоблин, воровато оглядывается.",
}

var Orc = Species{
	Key:         "orc",
	Name:        "Свирепый Орк",
	Glyph:       domain.MakeGlyph(0xDC2626, 'O'),
	Speed:       domain.Normal,
	Sight:       domain.VisionRadius,
	Description: "Огромный зеленокожий орк с тяжелой дубиной.",
}

var Troll = Species{
	Key:         "troll",
	Name:        "Каменный Тролль",
	Glyph:       domain.MakeGlyph(0x78716C, 'T'),
	Speed:       domain.Slow,
	Sight:       domain.VisionRadius - 2,
	Description: "Массивное существо с каменной кожей.",
}

var Rat = Species{
	Key:         "rat",
	Name:        "Пещерная Крыса",
	Glyph:       domain.MakeGlyph(domain.Brown, 'r'),
	Speed:       domain.Fast,
	Sight:       domain.VisionRadius / 2,
	Description: "Облезлая крыса с голодными глазами.",
}

// Bestiary - все виды, которые могут появиться на уровнях
var Bestiary = map[string]Species{
	Goblin.Key: Goblin,
	Orc.Key:    Orc,
	Troll.Key:  Troll,
	Rat.Key:    Rat,
}

// SpeciesKeys returns the bestiary keys sorted, so random picks are reproducible.
func SpeciesKeys() []string {
	keys := make([]string, 0, len(Bestiary))
	for k := range Bestiary {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

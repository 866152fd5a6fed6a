package dungeon

import (
	"math/rand"
	"sort"

	"roguecore/internal/domain"
)

// Key - расшифровка символов шаблона в местность
var Key = domain.TerrainKey{
	CharWall:      domain.RockWall,
	CharFloor:     domain.DirtFloor,
	CharCaveFloor: domain.DirtFloor,
	CharGrass:     domain.Grass,
	CharTree:      domain.Tree,
	CharWater:     domain.ShallowWater,
	CharDeepWater: domain.DeepWater,
	CharMountain:  domain.Mountain,
	CharSand:      domain.Desert,
	CharStairUp:   domain.StairUp,
	CharStairDown: domain.StairDown,
}

// isOpen - можно ли ходить по символу шаблона
func isOpen(ch byte) bool { return Key.Lookup(ch).Passable() }

// isGround - открытая клетка, на которой нет лестницы
func isGround(ch byte) bool {
	return isOpen(ch) && ch != CharStairUp && ch != CharStairDown
}

// Town - деревня на поверхности. Лестница вниз в колодце посреди площади.
var Town = []string{
	"^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^",
	"^,,,,,TT,,,,,,,,,,,,,,,,,,,,,,,,,,TT,,,^",
	"^,,#####,,,,,,,,,,,,,,,,,,,,#####,,T,,,^",
	"^,,#...#,,,,,,,,,::,,,,,,,,,#...#,,,,,,^",
	"^,,#...#,,,,,,,,,::,,,,,,,,,#...#,,,,,,^",
	"^,,##.##,,,,,,,,,::,,,,,,,,,##.##,,,,,,^",
	"^,,,,:,,,,,,,,,,,::,,,,,,,,,,,:,,,,,,,,^",
	"^,,,,::::::::::::::::::::::::::,,,,,,,,^",
	"^,,,,,,,,,,,,,,::::::,,,,,,,,,,,,,,,,,,^",
	"^,,,,,,,,,,,,,,::#>#:,,,,,,,,,,,,~~~,,,^",
	"^,,,,,,,,,,,,,,::#.#:,,,,,,,,,,,~~==~,,^",
	"^,,,,,,,,,,,,,,::::::,,,,,,,,,,,,~~~,,,^",
	"^,,######,,,,,,,,::,,,,,,,,,,,,,,,,,,,,^",
	"^,,#....#,,,,,,,,::,,,,,,,,,######,,,,,^",
	"^,,#....:::::::::::::::::::::.....#,,,,^",
	"^,,######,,,,,,,,,,,,,,,,,,,#....#,,,,,^",
	"^,,,,,,,,,,TT,,,,,,,,,,,,,,,######,,,,,^",
	"^,,,,,,,,TTTTT,,,,,,,,,,,,,,,,,,,,,TT,,^",
	"^,,,,,,,,,TT,,,,,,,,,,,,,,,,,,,,,,TTTT,^",
	"^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^",
}

// ItemTemplate определяет шаблон предмета, который мастер раскладывает по уровню
type ItemTemplate struct {
	Name        string
	Category    string
	Glyph       domain.Glyph
	MaxCount    int // больше 1 - предмет лежит стопкой случайного размера
	Description string
}

// Spawn создаёт предмет из шаблона
func (t ItemTemplate) Spawn(rng *rand.Rand) *domain.Item {
	count := 1
	if t.MaxCount > 1 {
		count = rng.Intn(t.MaxCount) + 1
	}
	return &domain.Item{
		Name:     t.Name,
		Category: t.Category,
		Glyph:    t.Glyph,
		Count:    count,
	}
}

// --- ОРУЖИЕ ---

var IronSword = ItemTemplate{
	Name:        "Железный меч",
	Category:    domain.ItemCategoryWeapon,
	Glyph:       domain.MakeGlyph(0xC0C0C0, ')'),
	Description: "Простой, но надёжный железный меч.",
}

var SteelDagger = ItemTemplate{
	Name:        "Стальной кинжал",
	Category:    domain.ItemCategoryWeapon,
	Glyph:       domain.MakeGlyph(0xE5E7EB, ')'),
	Description: "Быстрый и лёгкий кинжал.",
}

var WoodenClub = ItemTemplate{
	Name:        "Деревянная дубина",
	Category:    domain.ItemCategoryWeapon,
	Glyph:       domain.MakeGlyph(0x78350F, ')'),
	Description: "Грубая деревянная дубина.",
}

// --- БРОНЯ ---

var LeatherArmor = ItemTemplate{
	Name:        "Кожаная броня",
	Category:    domain.ItemCategoryArmor,
	Glyph:       domain.MakeGlyph(0x92400E, '['),
	Description: "Лёгкая кожаная броня.",
}

var ChainMail = ItemTemplate{
	Name:        "Кольчуга",
	Category:    domain.ItemCategoryArmor,
	Glyph:       domain.MakeGlyph(0x9CA3AF, '['),
	Description: "Прочная кольчуга из стальных колец.",
}

// --- ЗЕЛЬЯ И ЕДА ---

var HealthPotion = ItemTemplate{
	Name:        "Зелье лечения",
	Category:    domain.ItemCategoryPotion,
	Glyph:       domain.MakeGlyph(0xDC2626, '!'),
	MaxCount:    2,
	Description: "Красное зелье, восстанавливающее здоровье.",
}

var Bread = ItemTemplate{
	Name:        "Хлеб",
	Category:    domain.ItemCategoryFood,
	Glyph:       domain.MakeGlyph(0xD97706, '%'),
	MaxCount:    3,
	Description: "Свежий хлеб.",
}

var Gold = ItemTemplate{
	Name:        "Золото",
	Category:    domain.ItemCategoryMisc,
	Glyph:       domain.MakeGlyph(domain.Yellow, '$'),
	MaxCount:    25,
	Description: "Горсть потёртых монет.",
}

// ItemTemplates - карта всех предметов, которые можно найти на уровне
var ItemTemplates = map[string]ItemTemplate{
	"iron_sword":    IronSword,
	"steel_dagger":  SteelDagger,
	"wooden_club":   WoodenClub,
	"leather_armor": LeatherArmor,
	"chain_mail":    ChainMail,
	"health_potion": HealthPotion,
	"bread":         Bread,
	"gold":          Gold,
}

// ItemKeys возвращает ключи ItemTemplates по алфавиту
func ItemKeys() []string {
	keys := make([]string, 0, len(ItemTemplates))
	for k := range ItemTemplates {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// randomItem выбирает шаблон детерминированно от rng
func randomItem(rng *rand.Rand) ItemTemplate {
	keys := ItemKeys()
	return ItemTemplates[keys[rng.Intn(len(keys))]]
}

package dungeon

import (
	"math/rand"

	"roguecore/internal/domain"
	"roguecore/internal/engine"
)

type placedItem struct {
	pos  domain.Point
	item *domain.Item
}

// LevelBuilder предоставляет fluent API для создания уровней
type LevelBuilder struct {
	name   string
	level  int
	width  int
	height int
	rooms  []Rect
	canvas *canvas
	items  []placedItem
	rng    *rand.Rand
}

// NewLevel создает новый builder для уровня
func NewLevel(name string, level int, rng *rand.Rand) *LevelBuilder {
	return &LevelBuilder{
		name:   name,
		level:  level,
		width:  MapWidth,
		height: MapHeight,
		rng:    rng,
	}
}

// WithSize устанавливает размер карты
func (b *LevelBuilder) WithSize(width, height int) *LevelBuilder {
	b.width = width
	b.height = height
	return b
}

func (b *LevelBuilder) ensureCanvas(fill byte) {
	if b.canvas == nil {
		b.canvas = newCanvas(b.width, b.height, fill)
	}
}

// WithRooms генерирует комнаты и коридоры
func (b *LevelBuilder) WithRooms(maxRooms int) *LevelBuilder {
	// Инициализируем карту стенами
	b.canvas = newCanvas(b.width, b.height, CharWall)
	b.rooms = generateRooms(b.canvas, maxRooms, b.rng)
	return b
}

// WithCave заливает уровень пещерой из клеточного автомата.
// Отрезанные карманы замуровываются, чтобы любая открытая клетка была достижима.
func (b *LevelBuilder) WithCave(p CellularParams) *LevelBuilder {
	b.canvas = &canvas{w: b.width, h: b.height, cells: CellularAutomata(b.width, b.height, p, b.rng)}
	b.rooms = nil
	if b.canvas.sealIsolated(isOpen, p.Char) == 0 {
		// Автомат все засыпал: хотя бы одна комната в центре
		b.carveFallbackRoom()
	}
	return b
}

// WithSurface строит поверхность по шуму. Острова посреди воды зарастают лесом.
func (b *LevelBuilder) WithSurface() *LevelBuilder {
	b.canvas = &canvas{w: b.width, h: b.height, cells: GenerateSurface(b.width, b.height, b.rng.Int63())}
	b.rooms = nil
	if b.canvas.sealIsolated(isOpen, CharTree) == 0 {
		b.carveFallbackRoom()
	}
	return b
}

// WithTemplate кладет готовый шаблон по центру уровня. Что не влезло - обрезается,
// свободное место заполняется pad, отрезанные области - seal.
func (b *LevelBuilder) WithTemplate(rows []string, pad, seal byte) *LevelBuilder {
	b.canvas = newCanvas(b.width, b.height, pad)
	b.rooms = nil
	if len(rows) > 0 {
		offX := (b.width - len(rows[0])) / 2
		offY := (b.height - len(rows)) / 2
		for ty, row := range rows {
			for tx := 0; tx < len(row); tx++ {
				if x, y := tx+offX, ty+offY; b.canvas.inside(x, y) {
					b.canvas.set(x, y, row[tx])
				}
			}
		}
	}
	if b.canvas.sealIsolated(isOpen, seal) == 0 {
		b.carveFallbackRoom()
	}
	return b
}

func (b *LevelBuilder) carveFallbackRoom() {
	w, h := max(1, b.width/3), max(1, b.height/3)
	room := Rect{X: (b.width - w) / 2, Y: (b.height - h) / 2, W: w, H: h}
	createRoom(b.canvas, room)
	b.rooms = []Rect{room}
}

// PlaceExit размещает лестницу. "up" - в первой комнате (на уровне 0 ее нет),
// "down" - в последней. Без комнат лестница встает на случайную открытую клетку.
func (b *LevelBuilder) PlaceExit(direction string) *LevelBuilder {
	b.ensureCanvas(CharFloor)

	ch := CharStairDown
	if direction == "up" {
		if b.level == 0 {
			return b
		}
		ch = CharStairUp
	}
	// Шаблон мог уже принести свою лестницу
	for _, c := range b.canvas.cells {
		if c == ch {
			return b
		}
	}

	if len(b.rooms) > 0 {
		room := b.rooms[len(b.rooms)-1]
		if ch == CharStairUp {
			room = b.rooms[0]
		}
		cx, cy := room.Center()
		if isGround(b.canvas.at(cx, cy)) {
			b.canvas.set(cx, cy, ch)
			return b
		}
	}

	if x, y, ok := b.randomGround(); ok {
		b.canvas.set(x, y, ch)
	}
	return b
}

// randomGround ищет открытую клетку без лестницы: сначала наугад, потом перебором
func (b *LevelBuilder) randomGround() (int, int, bool) {
	c := b.canvas
	for attempt := 0; attempt < 100; attempt++ {
		x, y := b.rng.Intn(c.w), b.rng.Intn(c.h)
		if isGround(c.at(x, y)) {
			return x, y, true
		}
	}
	start := b.rng.Intn(len(c.cells))
	for i := range c.cells {
		idx := (start + i) % len(c.cells)
		if isGround(c.cells[idx]) {
			return idx % c.w, idx / c.w, true
		}
	}
	return 0, 0, false
}

// ScatterItems бросает attempts раз случайную клетку; если это пол - кладет туда предмет
func (b *LevelBuilder) ScatterItems(attempts int) *LevelBuilder {
	b.ensureCanvas(CharFloor)
	for i := 0; i < attempts; i++ {
		x := b.rng.Intn(b.width)
		y := b.rng.Intn(b.height)
		if !isGround(b.canvas.at(x, y)) {
			continue
		}
		b.items = append(b.items, placedItem{
			pos:  domain.Pt(x, y),
			item: randomItem(b.rng).Spawn(b.rng),
		})
	}
	return b
}

// Rooms возвращает комнаты, если уровень строился из комнат
func (b *LevelBuilder) Rooms() []Rect { return b.rooms }

// Template возвращает текущий черновик уровня построчно
func (b *LevelBuilder) Template() []byte {
	b.ensureCanvas(CharFloor)
	return b.canvas.cells
}

// Build собирает и возвращает готовую карту
func (b *LevelBuilder) Build() *engine.Map {
	b.ensureCanvas(CharFloor)
	m := engine.NewMapFromTemplate(b.name, b.width, b.height, b.canvas.cells, Key)
	for _, pi := range b.items {
		// Куча полна - предмет просто пропадает
		m.AddItem(pi.pos, pi.item)
	}
	return m
}

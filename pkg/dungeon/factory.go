package dungeon

import (
	"math/rand"

	"roguecore/internal/creature"
	"roguecore/internal/domain"
	"roguecore/internal/engine"
	"roguecore/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Типы мастеров подземелий
const (
	KindCave      = "cave"
	KindRooms     = "rooms"
	KindOverworld = "overworld"
	KindTown      = "town"
)

const (
	// spawnBatch - сколько монстров мастер добавляет за один обход
	spawnBatch = 4
	// spawnMinDistance - ближе к герою монстры не появляются
	spawnMinDistance = 8
	// spawnTries - попыток найти клетку для одного монстра
	spawnTries = 20
)

// recipe задает рельеф уровня; лестницы и предметы designer добавляет сам
type recipe func(b *LevelBuilder, level int)

func caveRecipe(b *LevelBuilder, _ int) { b.WithCave(CaveParams) }

func roomsRecipe(b *LevelBuilder, _ int) { b.WithRooms(MaxRooms) }

func overworldRecipe(b *LevelBuilder, level int) {
	if level == 0 {
		b.WithSurface()
		return
	}
	b.WithCave(CaveParams)
}

func townRecipe(b *LevelBuilder, level int) {
	if level == 0 {
		b.WithTemplate(Town, CharMountain, CharMountain)
		return
	}
	b.WithRooms(MaxRooms)
}

// designer реализует engine.Designer поверх LevelBuilder
type designer struct {
	kind     string
	recipe   recipe
	spawnCap int
	log      *logrus.Entry
}

func newDesigner(kind string, r recipe, cfg engine.Config) *designer {
	return &designer{
		kind:     kind,
		recipe:   r,
		spawnCap: cfg.SpawnCap,
		log:      logger.Log.WithFields(logrus.Fields{"component": "designer", "kind": kind}),
	}
}

func (d *designer) Kind() string { return d.kind }

func (d *designer) CreateLevel(name string, level, width, height int, rng *rand.Rand) *engine.Map {
	b := NewLevel(name, level, rng).WithSize(width, height)
	d.recipe(b, level)
	m := b.PlaceExit("up").
		PlaceExit("down").
		ScatterItems(ItemAttempts).
		Build()

	d.log.WithFields(logrus.Fields{
		"map":   name,
		"rooms": len(b.Rooms()),
		"piles": m.PileCount(),
	}).Debug("Level built")
	return m
}

// Housekeep доводит население уровня до spawnCap, не больше spawnBatch за раз
func (d *designer) Housekeep(ctx *engine.Context, dm *engine.DungeonMaster, m *engine.Map) {
	alive := 0
	for _, c := range m.Creatures() {
		if _, ok := c.(*creature.Monster); ok {
			alive++
		}
	}

	var hero engine.Creature
	if ctx.World != nil {
		hero = ctx.World.Hero()
	}

	pool := speciesForLevel(m.Level())
	for n := 0; n < spawnBatch && alive < d.spawnCap; n++ {
		p, ok := spawnPoint(m, hero, dm.Rng())
		if !ok {
			return
		}
		sp := pool[dm.Rng().Intn(len(pool))]
		mon := creature.NewMonster(sp, dm.Rng(), ctx.Now)
		m.AddCreature(p, mon)
		alive++

		ctx.Log.WithFields(logrus.Fields{
			"map":     m.Name(),
			"species": sp.Key,
			"id":      mon.ID(),
			"pos":     p,
		}).Debug("Monster spawned")
	}
}

// spawnPoint ищет свободную клетку подальше от героя
func spawnPoint(m *engine.Map, hero engine.Creature, rng *rand.Rand) (domain.Point, bool) {
	var heroAt domain.Point
	heroHere := false
	if hero != nil && hero.Base().Pos().Map() == m {
		heroAt = hero.Base().Pos().Point()
		heroHere = true
	}

	for i := 0; i < spawnTries; i++ {
		p, ok := m.RandomFree(rng)
		if !ok {
			return domain.Point{}, false
		}
		if !heroHere || p.Chebyshev(heroAt) >= spawnMinDistance {
			return p, true
		}
	}
	return domain.Point{}, false
}

// speciesForLevel - чем глубже, тем опаснее
func speciesForLevel(level int) []creature.Species {
	pool := []creature.Species{creature.Rat, creature.Goblin}
	if level >= 1 {
		pool = append(pool, creature.Orc)
	}
	if level >= 3 {
		pool = append(pool, creature.Troll)
	}
	return pool
}

// Register добавляет в реестр все типы мастеров этого пакета
func Register(reg engine.Registry) {
	recipes := map[string]recipe{
		KindCave:      caveRecipe,
		KindRooms:     roomsRecipe,
		KindOverworld: overworldRecipe,
		KindTown:      townRecipe,
	}
	for kind, r := range recipes {
		kind, r := kind, r
		reg.Register(kind, func(cfg engine.Config) engine.Designer {
			return newDesigner(kind, r, cfg)
		})
	}
}

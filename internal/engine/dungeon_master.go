package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"roguecore/internal/domain"
	"roguecore/pkg/logger"
	"roguecore/pkg/utils"

	"github.com/sirupsen/logrus"
)

// ErrUnknownKind is returned when no designer is registered for a dungeon master kind.
var ErrUnknownKind = errors.New("unknown dungeon master kind")

// Designer builds the levels of one dungeon master and tends them while they are in play.
type Designer interface {
	Kind() string
	// CreateLevel must return a map of the requested size. Creatures it places are
	// scheduled at turn 0 unless the designer says otherwise.
	CreateLevel(name string, level, width, height int, rng *rand.Rand) *Map
	Housekeep(ctx *Context, dm *DungeonMaster, m *Map)
}

// DesignerFactory creates a designer for one dungeon master.
type DesignerFactory func(cfg Config) Designer

// Registry maps dungeon master kinds to their designers.
type Registry map[string]DesignerFactory

func NewRegistry() Registry {
	return make(Registry)
}

// Register adds or replaces a kind.
func (r Registry) Register(kind string, f DesignerFactory) {
	r[kind] = f
}

// Kinds returns the registered kinds, sorted.
func (r Registry) Kinds() []string {
	out := make([]string, 0, len(r))
	for k := range r {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Create instantiates the designer for kind.
func (r Registry) Create(kind string, cfg Config) (Designer, error) {
	f, ok := r[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownKind, kind, r.Kinds())
	}
	return f(cfg), nil
}

// DungeonMaster owns a stack of levels and is itself a very slow actor: every turn it
// runs its designer's housekeeping on the levels that are in play.
type DungeonMaster struct {
	ActorBase

	name     string
	designer Designer
	maps     map[int]*Map
	seed     int64
	width    int
	height   int
	interval int
	rng      *rand.Rand
	log      *logrus.Entry
}

func NewDungeonMaster(name string, d Designer, cfg Config) *DungeonMaster {
	interval := cfg.DMIntervalUnits
	if interval <= 0 {
		interval = 1
	}
	return &DungeonMaster{
		name:     name,
		designer: d,
		maps:     make(map[int]*Map),
		seed:     cfg.Seed,
		width:    cfg.MapWidth,
		height:   cfg.MapHeight,
		interval: interval,
		rng:      utils.NewRng(utils.DeriveSeed(cfg.Seed, name, -1)),
		log: logger.Log.WithFields(logrus.Fields{
			"component": "dm",
			"dm":        name,
			"kind":      d.Kind(),
		}),
	}
}

func (dm *DungeonMaster) Name() string        { return dm.name }
func (dm *DungeonMaster) Kind() string        { return dm.designer.Kind() }
func (dm *DungeonMaster) Designer() Designer  { return dm.designer }
func (dm *DungeonMaster) Speed() domain.Speed { return domain.VSlow }
func (dm *DungeonMaster) Base() *ActorBase    { return &dm.ActorBase }
func (dm *DungeonMaster) String() string      { return "dm:" + dm.name }

// Rng is the housekeeping generator, independent of the per-level generators.
func (dm *DungeonMaster) Rng() *rand.Rand { return dm.rng }

// Map returns an already built level.
func (dm *DungeonMaster) Map(level int) (*Map, bool) {
	m, ok := dm.maps[level]
	return m, ok
}

// Levels lists the built levels in ascending order.
func (dm *DungeonMaster) Levels() []int {
	out := make([]int, 0, len(dm.maps))
	for lvl := range dm.maps {
		out = append(out, lvl)
	}
	sort.Ints(out)
	return out
}

// GetOrCreateMap returns level lvl, building it on first request. The first map a dungeon
// master builds also carries the dungeon master in its turn order.
func (dm *DungeonMaster) GetOrCreateMap(lvl int) *Map {
	if lvl < 0 {
		panic(fmt.Sprintf("engine: %s asked for level %d", dm.name, lvl))
	}
	if m, ok := dm.maps[lvl]; ok {
		return m
	}

	seed := utils.DeriveSeed(dm.seed, dm.name, lvl)
	name := fmt.Sprintf("%s:%d", dm.name, lvl)
	m := dm.designer.CreateLevel(name, lvl, dm.width, dm.height, utils.NewRng(seed))
	if m == nil {
		panic(fmt.Sprintf("engine: designer %s built no map for level %d", dm.Kind(), lvl))
	}
	m.owner = dm
	m.level = lvl

	first := len(dm.maps) == 0
	dm.maps[lvl] = m
	if first {
		m.Schedule(dm)
	}

	dm.log.WithFields(logrus.Fields{
		"level":     lvl,
		"seed":      seed,
		"width":     m.Width(),
		"height":    m.Height(),
		"creatures": m.CreatureCount(),
	}).Info("Level created")
	return m
}

// Act runs housekeeping on every level that is in play.
func (dm *DungeonMaster) Act(ctx *Context) Result {
	for _, lvl := range dm.Levels() {
		m := dm.maps[lvl]
		if ctx.World != nil && !ctx.World.InPlay(m) {
			continue
		}
		dm.designer.Housekeep(ctx, dm, m)
	}
	return Took(domain.VSlow.Cost(dm.interval))
}

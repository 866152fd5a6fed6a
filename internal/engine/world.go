package engine

import (
	"context"
	"errors"
	"fmt"

	"roguecore/pkg/logger"

	"github.com/sirupsen/logrus"
)

// ErrDuplicateDM is returned when a dungeon master name is taken.
var ErrDuplicateDM = errors.New("dungeon master already exists")

// World owns the dungeon masters and the maps in play and runs the global turn loop.
// It is driven from one goroutine; nothing here is locked.
type World struct {
	cfg      Config
	registry Registry
	dms      map[string]*DungeonMaster

	// Карты "в игре", в порядке добавления. Порядок разрешает ничьи между картами.
	inPlay []*Map

	hero  Creature
	input Input
	view  View

	now     int
	turns   int
	stopped bool

	log *logrus.Entry
}

// NewWorld builds the world and, when cfg.StartDM is set, the starting dungeon master and
// its level 0, which is put in play.
func NewWorld(cfg Config, reg Registry, input Input, view View) (*World, error) {
	if view == nil {
		view = nopView{}
	}
	w := &World{
		cfg:      cfg,
		registry: reg,
		dms:      make(map[string]*DungeonMaster),
		input:    input,
		view:     view,
		log:      logger.Log.WithField("component", "world"),
	}

	if cfg.StartDM != "" {
		dm, err := w.CreateDM(cfg.StartKind, cfg.StartDM)
		if err != nil {
			return nil, fmt.Errorf("start dungeon master: %w", err)
		}
		w.AddMapToPlay(dm.GetOrCreateMap(0))
	}
	return w, nil
}

// CreateDM registers a new dungeon master of the given kind.
func (w *World) CreateDM(kind, name string) (*DungeonMaster, error) {
	if _, ok := w.dms[name]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateDM, name)
	}
	d, err := w.registry.Create(kind, w.cfg)
	if err != nil {
		return nil, err
	}
	dm := NewDungeonMaster(name, d, w.cfg)
	w.dms[name] = dm

	w.log.WithFields(logrus.Fields{"dm": name, "kind": kind}).Info("Dungeon master created")
	return dm, nil
}

// DM looks up a dungeon master by name.
func (w *World) DM(name string) (*DungeonMaster, bool) {
	dm, ok := w.dms[name]
	return dm, ok
}

func (w *World) Config() Config { return w.cfg }

// Hero is the player creature, nil until SetHero.
func (w *World) Hero() Creature { return w.hero }

func (w *World) SetHero(h Creature) { w.hero = h }

// Now is the turn of the actor that acted last.
func (w *World) Now() int { return w.now }

// Turns counts Act calls.
func (w *World) Turns() int { return w.turns }

// Stop ends Run after the current action.
func (w *World) Stop() { w.stopped = true }

func (w *World) Stopped() bool { return w.stopped }

// AddMapToPlay is a no-op for maps already in play.
func (w *World) AddMapToPlay(m *Map) {
	if w.InPlay(m) {
		return
	}
	w.inPlay = append(w.inPlay, m)
	w.log.WithField("map", m.Name()).Debug("Map entered play")
}

func (w *World) RemoveMapFromPlay(m *Map) {
	for i, cur := range w.inPlay {
		if cur == m {
			copy(w.inPlay[i:], w.inPlay[i+1:])
			w.inPlay[len(w.inPlay)-1] = nil
			w.inPlay = w.inPlay[:len(w.inPlay)-1]
			w.log.WithField("map", m.Name()).Debug("Map left play")
			return
		}
	}
}

func (w *World) InPlay(m *Map) bool {
	for _, cur := range w.inPlay {
		if cur == m {
			return true
		}
	}
	return false
}

// MapsInPlay returns a copy of the in-play list.
func (w *World) MapsInPlay() []*Map {
	out := make([]*Map, len(w.inPlay))
	copy(out, w.inPlay)
	return out
}

// PlaceHero puts the hero on a random free cell of the starting dungeon master's level 0.
func (w *World) PlaceHero(hero Creature) error {
	dm, ok := w.dms[w.cfg.StartDM]
	if !ok {
		return fmt.Errorf("place hero: no dungeon master %q", w.cfg.StartDM)
	}
	m := dm.GetOrCreateMap(0)
	p := m.PlaceCreature(dm.Rng(), hero)
	w.hero = hero
	w.AddMapToPlay(m)

	w.log.WithFields(logrus.Fields{"map": m.Name(), "x": p.X, "y": p.Y}).Info("Hero placed")
	return nil
}

// Run loops until ctx is cancelled, Stop is called, MaxTurns is reached or no map is in
// play. Cancellation is returned as ctx.Err().
func (w *World) Run(ctx context.Context) error {
	w.log.WithField("maps", len(w.inPlay)).Info("World loop started")
	defer func() {
		w.log.WithFields(logrus.Fields{"turns": w.turns, "now": w.now}).Info("World loop finished")
		for _, m := range w.inPlay {
			w.log.WithFields(logrus.Fields{"map": m.Name(), "schedule": m.DebugSchedule()}).Debug("Turn order at exit")
		}
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if w.stopped {
			return nil
		}
		if w.cfg.MaxTurns > 0 && w.turns >= w.cfg.MaxTurns {
			return nil
		}
		if !w.Step(ctx) {
			return nil
		}
	}
}

// NextActor finds the globally next actor: the lowest turn across the front actors of all
// maps in play, ties going to the map that entered play first. Maps with an empty turn
// order leave play.
func (w *World) NextActor() (Actor, bool) {
	var (
		best Actor
		idle []*Map
	)
	for _, m := range w.inPlay {
		a, ok := m.NextActor()
		if !ok {
			idle = append(idle, m)
			continue
		}
		if best == nil || a.Base().turn < best.Base().turn {
			best = a
		}
	}
	for _, m := range idle {
		w.RemoveMapFromPlay(m)
	}
	return best, best != nil
}

// Step performs exactly one Act call. Returns false when nothing is left to run.
func (w *World) Step(ctx context.Context) bool {
	a, ok := w.NextActor()
	if !ok {
		return false
	}
	w.now = a.Base().turn

	res := a.Act(&Context{
		Ctx:   ctx,
		World: w,
		Input: w.input,
		View:  w.view,
		Now:   w.now,
		Log:   w.log.WithFields(logrus.Fields{"actor": describeActor(a), "turn": w.now}),
	})
	w.turns++
	w.settle(a, res)
	return true
}

// settle applies an outcome through the map the actor is bound to now, which is not the
// map it acted on if it changed levels.
func (w *World) settle(a Actor, res Result) {
	m := a.Base().pos.m

	switch res.Outcome {
	case Removed:
		if m == nil {
			return
		}
		if c, ok := a.(Creature); ok {
			if cur, ok := m.GetCreature(c.Base().pos.Point()); ok && cur == c {
				m.DelCreature(c.Base().pos.Point())
				return
			}
		}
		m.Unschedule(a)

	case Repeat, Continue:
		if res.Cost < 0 {
			panic(fmt.Sprintf("engine: %s returned negative cost %d", describeActor(a), res.Cost))
		}
		if m == nil || !m.Scheduled(a) {
			w.log.WithFields(logrus.Fields{
				"actor":   describeActor(a),
				"outcome": res.Outcome.String(),
			}).Warn("Actor is no longer scheduled, dropping it")
			return
		}
		cost := res.Cost
		if res.Outcome == Repeat {
			cost = 0
		}
		m.UpdateActor(a, cost)
		w.AddMapToPlay(m)

	default:
		panic(fmt.Sprintf("engine: unknown outcome %v", res.Outcome))
	}
}

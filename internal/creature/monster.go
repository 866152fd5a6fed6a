package creature

import (
	"math/rand"

	"roguecore/internal/domain"
	"roguecore/internal/engine"
	"roguecore/internal/systems"
	"roguecore/pkg/utils"

	"github.com/sirupsen/logrus"
)

// Monster chases the hero: every turn it re-targets, recomputes its path and takes one step
// if the next cell is still free.
type Monster struct {
	engine.ActorBase
	id      string
	species Species
}

// NewMonster creates a monster that first acts at turn now.
func NewMonster(sp Species, rng *rand.Rand, now int) *Monster {
	m := &Monster{
		id:      utils.GenerateDeterministicID(rng, "m_"),
		species: sp,
	}
	m.StartAt(now)
	return m
}

func (m *Monster) ID() string              { return m.id }
func (m *Monster) Species() Species        { return m.species }
func (m *Monster) Name() string            { return m.species.Name }
func (m *Monster) Glyph() domain.Glyph     { return m.species.Glyph }
func (m *Monster) Speed() domain.Speed     { return m.species.Speed }
func (m *Monster) Base() *engine.ActorBase { return &m.ActorBase }

func (m *Monster) Act(ctx *engine.Context) engine.Result {
	var hero engine.Creature
	if ctx.World != nil {
		hero = ctx.World.Hero()
	}

	dec := systems.ComputeNPCAction(m, hero, m.species.Sight)
	if dec.Action == domain.ActionMove {
		res := systems.TryMove(m, dec.Dx, dec.Dy)
		ctx.Log.WithFields(logrus.Fields{
			"id":     m.id,
			"dx":     dec.Dx,
			"dy":     dec.Dy,
			"moved":  res.HasMoved,
			"reason": dec.Reason,
		}).Debug("Monster step")
	}
	return engine.Took(m.species.Speed.Cost(1))
}

package creature

import (
	"math/rand"
	"testing"

	"roguecore/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMonster(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	a := NewMonster(Orc, rng, 42)
	b := NewMonster(Orc, rand.New(rand.NewSource(3)), 42)

	assert.Equal(t, 42, a.Turn())
	assert.Equal(t, a.ID(), b.ID(), "ids come from the rng")
	assert.Equal(t, "Свирепый Орк", a.Name())
	assert.Equal(t, domain.Normal, a.Speed())
	assert.Equal(t, byte('O'), a.Glyph().Char())
}

func TestMonster_ChasesHero(t *testing.T) {
	f := newFixture(t, domain.Simple(domain.ActionWait))
	// Герой ходит позже, чтобы первым был орк
	hero := NewHero("Герой", 0)
	hero.StartAt(100)
	f.level.AddCreature(domain.Pt(8, 2), hero)
	f.world.SetHero(hero)

	orc := NewMonster(Orc, rand.New(rand.NewSource(1)), 0)
	f.level.AddCreature(domain.Pt(2, 2), orc)

	f.step(t)
	assert.Equal(t, domain.Pt(3, 2), orc.Pos().Point())
	assert.Equal(t, domain.Normal.Cost(1), orc.Turn())
}

func TestMonster_IdleWithoutHero(t *testing.T) {
	f := newFixture(t)
	rat := NewMonster(Rat, rand.New(rand.NewSource(1)), 0)
	f.level.AddCreature(domain.Pt(2, 2), rat)

	f.step(t)
	assert.Equal(t, domain.Pt(2, 2), rat.Pos().Point())
	assert.Equal(t, domain.Fast.Cost(1), rat.Turn())
}

func TestMonster_SpeedCycle(t *testing.T) {
	f := newFixture(t)
	level := f.level

	monsters := []*Monster{
		NewMonster(Rat, rand.New(rand.NewSource(1)), 0),
		NewMonster(Orc, rand.New(rand.NewSource(2)), 0),
		NewMonster(Troll, rand.New(rand.NewSource(3)), 0),
	}
	for i, m := range monsters {
		level.AddCreature(domain.Pt(1+3*i, 8), m)
	}

	acts := map[*Monster]int{}
	for {
		a, ok := f.world.NextActor()
		require.True(t, ok)
		if a.Base().Turn() >= domain.CycleTicks {
			break
		}
		if m, ok := a.(*Monster); ok {
			acts[m]++
		}
		f.step(t)
	}
	assert.Equal(t, 6, acts[monsters[0]], "fast")
	assert.Equal(t, 3, acts[monsters[1]], "normal")
	assert.Equal(t, 2, acts[monsters[2]], "slow")
}

func TestSpeciesKeys(t *testing.T) {
	assert.Equal(t, []string{"goblin", "orc", "rat", "troll"}, SpeciesKeys())
	for _, k := range SpeciesKeys() {
		assert.Equal(t, k, Bestiary[k].Key)
	}
}

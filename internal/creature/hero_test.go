package creature

import (
	"math/rand"
	"testing"

	"roguecore/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHero_MoveCostsOneNormalAction(t *testing.T) {
	f := newFixture(t, domain.Move(1, 0))
	h := f.addHero(domain.Pt(2, 2))

	f.step(t)

	assert.Equal(t, domain.Pt(3, 2), h.Pos().Point())
	assert.Equal(t, domain.Normal.Cost(1), h.Turn())
	assert.Equal(t, 1, f.view.renders)
	assert.Equal(t, domain.Lit, f.level.Seen(domain.Pt(2, 2)), "the hero looked around before moving")
}

func TestHero_BlockedMoveTakesNoTime(t *testing.T) {
	f := newFixture(t, domain.Move(-1, 0), domain.Move(0, 1))
	h := f.addHero(domain.Pt(0, 3))

	f.step(t)
	assert.Equal(t, domain.Pt(0, 3), h.Pos().Point())
	assert.Equal(t, 0, h.Turn())
	require.NotEmpty(t, f.view.messages)
	assert.Equal(t, "Путь прегражден.", f.view.messages[0])

	// The hero keeps the turn and the next command goes through
	f.step(t)
	assert.Equal(t, domain.Pt(0, 4), h.Pos().Point())
	assert.Equal(t, 4, h.Turn())
}

func TestHero_BlockedByCreature(t *testing.T) {
	f := newFixture(t, domain.Move(1, 1))
	h := f.addHero(domain.Pt(2, 2))
	rat := NewMonster(Rat, rand.New(rand.NewSource(1)), 100)
	f.level.AddCreature(domain.Pt(3, 3), rat)

	f.step(t)
	assert.Equal(t, domain.Pt(2, 2), h.Pos().Point())
	assert.Equal(t, 0, h.Turn())
	assert.Contains(t, f.view.messages[0], Rat.Name)
}

func TestHero_InvalidCommandIsRejected(t *testing.T) {
	f := newFixture(t, domain.Command{Action: domain.ActionMove, Dx: 2}, domain.Rest(0), domain.Command{})
	h := f.addHero(domain.Pt(2, 2))

	for i := 0; i < 3; i++ {
		f.step(t)
	}
	assert.Equal(t, domain.Pt(2, 2), h.Pos().Point())
	assert.Equal(t, 0, h.Turn())
}

func TestHero_WaitAndRest(t *testing.T) {
	f := newFixture(t, domain.Simple(domain.ActionWait), domain.Rest(3))
	h := f.addHero(domain.Pt(2, 2))

	f.step(t)
	assert.Equal(t, 4, h.Turn())
	f.step(t)
	assert.Equal(t, 4+3*4, h.Turn())
}

func TestHero_Stairs(t *testing.T) {
	f := newFixture(t,
		domain.Simple(domain.ActionAscend),  // level 0 has no way up
		domain.Simple(domain.ActionDescend), // on the stair down
		domain.Simple(domain.ActionAscend),
	)
	h := f.addHero(domain.Pt(5, 5))

	f.step(t)
	assert.Same(t, f.level, h.Pos().Map())
	assert.Equal(t, 0, h.Turn())

	f.step(t)
	lower, ok := f.dm.Map(1)
	require.True(t, ok)
	assert.Same(t, lower, h.Pos().Map())
	assert.Equal(t, domain.Pt(1, 1), h.Pos().Point(), "arrives on the stair up")
	assert.True(t, f.world.InPlay(lower))
	assert.False(t, f.level.Scheduled(h))
	assert.Equal(t, 4, h.Turn())

	f.step(t)
	assert.Same(t, f.level, h.Pos().Map())
	assert.Equal(t, domain.Pt(5, 5), h.Pos().Point(), "arrives on the stair down")
	assert.Equal(t, 8, h.Turn())
}

func TestHero_DescendOffStairs(t *testing.T) {
	f := newFixture(t, domain.Simple(domain.ActionDescend))
	h := f.addHero(domain.Pt(2, 2))

	f.step(t)
	assert.Same(t, f.level, h.Pos().Map())
	_, built := f.dm.Map(1)
	assert.False(t, built)
}

func TestHero_Quit(t *testing.T) {
	f := newFixture(t, domain.Simple(domain.ActionQuit))
	h := f.addHero(domain.Pt(2, 2))

	f.step(t)
	assert.True(t, f.world.Stopped())
	assert.Nil(t, h.Pos().Map())
	_, ok := f.level.GetCreature(domain.Pt(2, 2))
	assert.False(t, ok)
}

func TestHero_ClosedInputQuits(t *testing.T) {
	f := newFixture(t)
	h := f.addHero(domain.Pt(2, 2))

	f.step(t)
	assert.True(t, f.world.Stopped())
	assert.Nil(t, h.Pos().Map())
}

func TestHero_SeesItems(t *testing.T) {
	f := newFixture(t, domain.Move(0, 1))
	h := f.addHero(domain.Pt(2, 2))
	f.level.AddItem(domain.Pt(2, 3), &domain.Item{Name: "золото", Count: 7})

	f.step(t)
	require.Equal(t, domain.Pt(2, 3), h.Pos().Point())
	require.NotEmpty(t, f.view.messages)
	assert.Equal(t, "Здесь лежит: золото (7).", f.view.messages[0])
}

func TestHero_PickupAndDrop(t *testing.T) {
	f := newFixture(t,
		domain.Simple(domain.ActionDrop), // nothing to drop yet
		domain.Simple(domain.ActionPickup),
		domain.Simple(domain.ActionPickup), // the floor is empty now
		domain.Simple(domain.ActionDrop),
	)
	h := f.addHero(domain.Pt(2, 2))
	f.level.AddItem(domain.Pt(2, 2), &domain.Item{Name: "хлеб", Category: domain.ItemCategoryFood, Count: 2})

	f.step(t)
	assert.Equal(t, 0, h.Turn())
	assert.Equal(t, "Инвентарь пуст.", f.view.messages[0])

	f.step(t)
	assert.Equal(t, 4, h.Turn())
	assert.False(t, f.level.HasItems(domain.Pt(2, 2)))
	require.Equal(t, 1, h.Inventory().Len())
	assert.Equal(t, "Герой подбирает хлеб (2).", f.view.messages[1])

	f.step(t)
	assert.Equal(t, 4, h.Turn())
	assert.Equal(t, "Здесь ничего нет.", f.view.messages[2])

	f.step(t)
	assert.Equal(t, 8, h.Turn())
	assert.True(t, h.Inventory().Empty())
	top, ok := f.level.ItemPile(domain.Pt(2, 2)).Top()
	require.True(t, ok)
	assert.Equal(t, "хлеб", top.Name)
	assert.Equal(t, "Герой выбрасывает хлеб (2).", f.view.messages[3])
}

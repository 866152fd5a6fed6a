package systems

import (
	"testing"

	"roguecore/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryPickup(t *testing.T) {
	m := createTestMap(
		"...",
		"...",
	)
	actor := newDummy("actor")
	m.AddCreature(domain.Pt(1, 1), actor)
	inv := domain.NewItemPile(2)

	_, err := TryPickup(actor, inv)
	assert.ErrorIs(t, err, ErrNothingHere)

	m.AddItem(domain.Pt(1, 1), &domain.Item{Name: "gold", Count: 5})
	m.AddItem(domain.Pt(1, 1), &domain.Item{Name: "bread", Count: 1})
	inv.Add(&domain.Item{Name: "gold", Count: 3})

	picked, err := TryPickup(actor, inv)
	require.NoError(t, err)
	require.Len(t, picked, 2)
	assert.Equal(t, 5, picked[0].Count, "reports what was lying on the floor")
	assert.Equal(t, 2, inv.Len())
	gold, _ := inv.Top()
	assert.Equal(t, 8, gold.Count)
	assert.False(t, m.HasItems(domain.Pt(1, 1)))
}

func TestTryPickup_InventoryFull(t *testing.T) {
	m := createTestMap("..")
	actor := newDummy("actor")
	m.AddCreature(domain.Pt(0, 0), actor)
	inv := domain.NewItemPile(1)
	inv.Add(&domain.Item{Name: "sword", Count: 1})

	m.AddItem(domain.Pt(0, 0), &domain.Item{Name: "armor", Count: 1})
	m.AddItem(domain.Pt(0, 0), &domain.Item{Name: "sword", Count: 1})

	picked, err := TryPickup(actor, inv)
	require.NoError(t, err)
	require.Len(t, picked, 1)
	assert.Equal(t, "sword", picked[0].Name)

	// Броня не влезла и осталась лежать
	require.True(t, m.HasItems(domain.Pt(0, 0)))
	left, _ := m.ItemPile(domain.Pt(0, 0)).Top()
	assert.Equal(t, "armor", left.Name)

	_, err = TryPickup(actor, inv)
	assert.ErrorIs(t, err, ErrInventoryFull)
	assert.True(t, m.HasItems(domain.Pt(0, 0)))
}

func TestTryDrop(t *testing.T) {
	m := createTestMap("..")
	actor := newDummy("actor")
	m.AddCreature(domain.Pt(1, 0), actor)
	inv := domain.NewItemPile(4)
	potion, _ := inv.Add(&domain.Item{Name: "potion", Count: 2})

	assert.ErrorIs(t, TryDrop(actor, inv, &domain.Item{Name: "potion"}), ErrNotCarried)

	require.NoError(t, TryDrop(actor, inv, potion))
	assert.True(t, inv.Empty())
	top, ok := m.ItemPile(domain.Pt(1, 0)).Top()
	require.True(t, ok)
	assert.Same(t, potion, top)
}

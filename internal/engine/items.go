package engine

import (
	"fmt"

	"roguecore/internal/domain"
)

// ItemPile returns the pile on p, creating an empty one on first touch.
func (m *Map) ItemPile(p domain.Point) *domain.ItemPile {
	if !m.Contains(p) {
		panic(fmt.Sprintf("engine: item pile at %v outside %s", p, m.name))
	}
	key := p.Key()
	pile, ok := m.piles[key]
	if !ok {
		pile = domain.NewItemPile(domain.MaxPileStacks)
		m.piles[key] = pile
	}
	return pile
}

// HasItems reports whether p holds at least one stack. It never creates a pile.
func (m *Map) HasItems(p domain.Point) bool {
	pile, ok := m.piles[p.Key()]
	return ok && m.Contains(p) && !pile.Empty()
}

// AddItem drops item on p. Returns false when the pile is full.
func (m *Map) AddItem(p domain.Point, item *domain.Item) bool {
	_, ok := m.ItemPile(p).Add(item)
	return ok
}

// AddItemPile merges pile into the pile on p. Stacks that do not fit stay in pile.
func (m *Map) AddItemPile(p domain.Point, pile *domain.ItemPile) {
	domain.TransferAll(pile, m.ItemPile(p))
}

// DelItem removes one stack from p.
func (m *Map) DelItem(p domain.Point, item *domain.Item) bool {
	pile, ok := m.piles[p.Key()]
	if !ok || !m.Contains(p) {
		return false
	}
	if !pile.Remove(item) {
		return false
	}
	if pile.Empty() {
		delete(m.piles, p.Key())
	}
	return true
}

// DelItemPile detaches the whole pile on p and returns it, or nil if there was none.
func (m *Map) DelItemPile(p domain.Point) *domain.ItemPile {
	if !m.Contains(p) {
		return nil
	}
	pile, ok := m.piles[p.Key()]
	if !ok {
		return nil
	}
	delete(m.piles, p.Key())
	return pile
}

// PileCount is the number of non-empty piles.
func (m *Map) PileCount() int {
	n := 0
	for _, pile := range m.piles {
		if !pile.Empty() {
			n++
		}
	}
	return n
}

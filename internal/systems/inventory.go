package systems

import (
	"errors"

	"roguecore/internal/domain"
	"roguecore/internal/engine"
)

var (
	ErrNothingHere   = errors.New("здесь ничего нет")
	ErrInventoryFull = errors.New("инвентарь полон")
	ErrNotCarried    = errors.New("предмет не найден")
	ErrNoRoom        = errors.New("здесь больше ничего не поместится")
)

// --- PICKUP ---

// TryPickup переносит все стопки с клетки под актором в inv.
// Что не влезло, остается лежать. Возвращает поднятые стопки в исходном виде.
func TryPickup(actor engine.Creature, inv *domain.ItemPile) ([]*domain.Item, error) {
	pos := actor.Base().Pos()
	m, p := pos.Map(), pos.Point()
	if m == nil || !m.HasItems(p) {
		return nil, ErrNothingHere
	}

	ground := m.DelItemPile(p)
	before := append([]*domain.Item(nil), ground.Items()...)
	// Запоминаем количество до слияния: Add может нарастить чужую стопку
	counts := make([]int, len(before))
	for i, it := range before {
		counts[i] = it.Count
	}

	domain.TransferAll(ground, inv)

	left := make(map[*domain.Item]bool, ground.Len())
	for _, it := range ground.Items() {
		left[it] = true
	}
	var picked []*domain.Item
	for i, it := range before {
		if !left[it] {
			picked = append(picked, &domain.Item{Name: it.Name, Category: it.Category, Glyph: it.Glyph, Count: counts[i]})
		}
	}

	// Остаток возвращаем на пол
	if !ground.Empty() {
		m.AddItemPile(p, ground)
	}
	if len(picked) == 0 {
		return nil, ErrInventoryFull
	}
	return picked, nil
}

// --- DROP ---

// TryDrop кладет стопку item из inv на клетку под актором.
func TryDrop(actor engine.Creature, inv *domain.ItemPile, item *domain.Item) error {
	pos := actor.Base().Pos()
	m, p := pos.Map(), pos.Point()
	if m == nil {
		return ErrNoRoom
	}
	if !inv.Remove(item) {
		return ErrNotCarried
	}
	if !m.AddItem(p, item) {
		inv.Add(item)
		return ErrNoRoom
	}
	return nil
}

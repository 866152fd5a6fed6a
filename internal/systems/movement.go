package systems

import (
	"roguecore/internal/domain"
	"roguecore/internal/engine"
)

// MovementResult - результат вычисления движения
type MovementResult struct {
	Target    domain.Point
	HasMoved  bool
	BlockedBy engine.Creature // Если врезались в кого-то
	IsWall    bool            // Если врезались в стену или край карты
}

// CalculateMove вычисляет новую позицию. Не меняет состояние мира!
func CalculateMove(c engine.Creature, dx, dy int) MovementResult {
	pos := c.Base().Pos()
	m := pos.Map()
	target := pos.Point().Shift(dx, dy)

	res := MovementResult{Target: target}

	// 1. Границы и стены
	if m == nil || !m.IsPassable(target, c) {
		res.IsWall = true
		return res
	}

	// 2. Другие существа
	if other, ok := m.GetCreature(target); ok && other != c {
		res.BlockedBy = other
		return res
	}

	res.HasMoved = true
	return res
}

// TryMove applies CalculateMove. Time is the caller's business.
func TryMove(c engine.Creature, dx, dy int) MovementResult {
	res := CalculateMove(c, dx, dy)
	if res.HasMoved {
		c.Base().Pos().Map().MoveCreature(res.Target, c)
	}
	return res
}

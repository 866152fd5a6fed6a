package systems

import (
	"roguecore/internal/domain"
	"roguecore/internal/engine"
	"roguecore/pkg/logger"

	"github.com/sirupsen/logrus"
)

// HasLineOfSight проверяет прямую видимость между двумя точками одной карты.
// Идет по линии Брезенхэма; концы линии не проверяются, поэтому стену рядом видно.
func HasLineOfSight(m *engine.Map, p1, p2 domain.Point, observer engine.Creature) bool {
	losLogger := logger.Log.WithFields(logrus.Fields{
		"component": "physics_system",
		"function":  "HasLineOfSight",
		"start_pos": p1,
		"end_pos":   p2,
	})

	if p1 == p2 {
		return true
	}

	line := engine.TraceLine(p1, p2)
	for _, p := range line[1 : len(line)-1] {
		if m.BlocksVision(p, observer) {
			losLogger.WithField("blocking_point", p).Debug("Line of sight blocked")
			return false
		}
	}
	return true
}

// CanSee combines range, map and line of sight checks between two creatures.
func CanSee(observer, target engine.Creature, radius int) bool {
	op, tp := observer.Base().Pos(), target.Base().Pos()
	m := op.Map()
	if m == nil || tp.Map() != m {
		return false
	}
	if op.Point().Chebyshev(tp.Point()) > radius {
		return false
	}
	return HasLineOfSight(m, op.Point(), tp.Point(), observer)
}

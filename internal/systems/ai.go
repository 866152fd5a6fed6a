package systems

import (
	"roguecore/internal/domain"
	"roguecore/internal/engine"
	"roguecore/pkg/logger"

	"github.com/sirupsen/logrus"
)

// NPCDecision - что монстр решил сделать в этот ход.
type NPCDecision struct {
	Action domain.ActionType // ActionMove или ActionWait
	Dx, Dy int
	Reason string
}

func wait(reason string) NPCDecision {
	return NPCDecision{Action: domain.ActionWait, Reason: reason}
}

// ComputeNPCAction решает, что делать NPC, преследующему target.
// Путь пересчитывается каждый ход: занятость клеток меняется между ходами.
func ComputeNPCAction(npc, target engine.Creature, sight int) NPCDecision {
	aiLogger := logger.Log.WithFields(logrus.Fields{
		"component": "ai_system",
		"npc":       npc.Name(),
	})

	if target == nil {
		return wait("no target")
	}
	np, tp := npc.Base().Pos(), target.Base().Pos()
	m := np.Map()
	if m == nil || tp.Map() != m {
		return wait("target elsewhere")
	}

	dist := np.Point().Chebyshev(tp.Point())
	if dist <= 1 {
		return wait("adjacent")
	}
	if dist > domain.AggroRadius || !CanSee(npc, target, sight) {
		return wait("target not visible")
	}

	path := m.PathFind(np.Point(), tp.Point(), npc)
	if len(path) > 0 {
		step := path[0]
		if !m.IsFree(step, npc) {
			return wait("path blocked")
		}
		d := step.Sub(np.Point())
		aiLogger.WithFields(logrus.Fields{"dx": d.X, "dy": d.Y, "path_len": len(path)}).Debug("Chasing target")
		return NPCDecision{Action: domain.ActionMove, Dx: d.X, Dy: d.Y, Reason: "path"}
	}

	// Пути нет: пробуем хотя бы приблизиться
	dx, dy := calculateSmartMove(npc, tp.Point())
	if dx == 0 && dy == 0 {
		return wait("no path")
	}
	return NPCDecision{Action: domain.ActionMove, Dx: dx, Dy: dy, Reason: "slide"}
}

// Внутренние утилиты (приватные для пакета systems)

func calculateSmartMove(npc engine.Creature, target domain.Point) (int, int) {
	from := npc.Base().Pos().Point()
	delta := target.Sub(from)
	step := delta.Sign()

	// Попытка 1: Идеальный путь
	if checkMove(npc, step.X, step.Y) {
		return step.X, step.Y
	}

	// Попытка 2: Smart Sliding (выбор приоритетной оси)
	tryXFirst := absInt(delta.X) > absInt(delta.Y)

	if tryXFirst {
		if step.X != 0 && checkMove(npc, step.X, 0) {
			return step.X, 0
		}
		if step.Y != 0 && checkMove(npc, 0, step.Y) {
			return 0, step.Y
		}
	} else {
		if step.Y != 0 && checkMove(npc, 0, step.Y) {
			return 0, step.Y
		}
		if step.X != 0 && checkMove(npc, step.X, 0) {
			return step.X, 0
		}
	}

	return 0, 0 // Тупик
}

func checkMove(c engine.Creature, dx, dy int) bool {
	if dx == 0 && dy == 0 {
		return false
	}
	return CalculateMove(c, dx, dy).HasMoved
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

package agent

import (
	"context"

	"roguecore/internal/domain"
	"roguecore/internal/engine"
	"roguecore/pkg/logger"

	"github.com/sirupsen/logrus"
)

// DefaultMaxDepth - глубже этого уровня бот не спускается
const DefaultMaxDepth = 5

// Bot представляет собой "Игрока-компьютера" (Headless Agent).
// Он подключается к миру так же, как терминал: через engine.Input, и решает за героя.
//
// Жизненный цикл одного хода:
//  1. Герой осматривается (FOV) и спрашивает у Input команду.
//  2. Бот строит локальную картину мира из памяти героя.
//  3. Стоит на лестнице вниз - спускается. Видел лестницу - идет к ней.
//  4. Иначе идет к ближайшей границе неизведанного. Исследовать нечего - выходит из игры.
type Bot struct {
	maxDepth int
	log      *logrus.Entry
}

func NewBot(maxDepth int) *Bot {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Bot{
		maxDepth: maxDepth,
		log:      logger.Log.WithField("component", "bot"),
	}
}

// NextCommand реализует engine.Input
func (b *Bot) NextCommand(ctx context.Context, hero engine.Creature) (domain.Command, error) {
	if err := ctx.Err(); err != nil {
		return domain.Command{}, err
	}

	pos := hero.Base().Pos()
	m := pos.Map()
	if m == nil {
		return domain.Simple(domain.ActionQuit), nil
	}
	me := pos.Point()
	canDescend := m.Level() < b.maxDepth

	if canDescend && m.Terrain(me) == domain.StairDown {
		b.log.WithFields(logrus.Fields{"map": m.Name(), "level": m.Level()}).Info("Descending")
		return domain.Simple(domain.ActionDescend), nil
	}

	// --- ВОССОЗДАНИЕ ЛОКАЛЬНОЙ КАРТИНЫ МИРА ---
	// Бот видит только то, что видел герой. Всё неизвестное для него - стена,
	// чтобы не строить пути в неизвестность.
	local := buildLocalMap(m)

	if canDescend {
		if stair, ok := local.stairDown(); ok {
			if cmd, ok := b.stepToward(local, m, hero, me, stair); ok {
				return cmd, nil
			}
		}
	}

	if target, ok := local.nearestFrontier(me); ok {
		if cmd, ok := b.stepToward(local, m, hero, me, target); ok {
			return cmd, nil
		}
		// Дорогу загородили - пережидаем
		return domain.Simple(domain.ActionWait), nil
	}

	b.log.WithFields(logrus.Fields{"map": m.Name(), "level": m.Level()}).Info("Nothing left to explore")
	return domain.Simple(domain.ActionQuit), nil
}

// stepToward ищет путь по локальной карте и превращает первый шаг в команду.
// Если первая клетка занята существом, пробует обойти его соседней клеткой.
func (b *Bot) stepToward(local *localMap, m *engine.Map, hero engine.Creature, from, to domain.Point) (domain.Command, bool) {
	path := local.m.PathFind(from, to, nil)
	if len(path) == 0 {
		return domain.Command{}, false
	}
	next := path[0]
	if m.IsFree(next, hero) {
		d := next.Sub(from)
		return domain.Move(d.X, d.Y), true
	}

	best, bestDist := from, from.Chebyshev(to)
	for _, d := range domain.Offsets8 {
		n := from.Add(d)
		if !local.known(n) || !m.IsFree(n, hero) {
			continue
		}
		if dist := n.Chebyshev(to); dist < bestDist {
			best, bestDist = n, dist
		}
	}
	if best == from {
		return domain.Command{}, false
	}
	d := best.Sub(from)
	return domain.Move(d.X, d.Y), true
}

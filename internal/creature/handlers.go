package creature

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"roguecore/internal/domain"
	"roguecore/internal/engine"
	"roguecore/internal/systems"
)

// HandlerFunc - это контракт для любой команды героя (MOVE, WAIT, etc).
// Хендлер сам решает, сколько времени заняла команда.
type HandlerFunc func(ctx *engine.Context, h *Hero, cmd domain.Command) engine.Result

// withValidation берет "чистый" хендлер и добавляет проверку аргументов команды.
// Невалидная команда не тратит время.
func withValidation(handler HandlerFunc) HandlerFunc {
	return func(ctx *engine.Context, h *Hero, cmd domain.Command) engine.Result {
		if err := cmd.Validate(); err != nil {
			ctx.Log.WithError(err).WithField("action", cmd.Action.String()).Warn("Rejected command")
			return engine.Again()
		}
		return handler(ctx, h, cmd)
	}
}

var heroHandlers = map[domain.ActionType]HandlerFunc{
	domain.ActionMove:    withValidation(handleMove),
	domain.ActionWait:    handleWait,
	domain.ActionRest:    withValidation(handleRest),
	domain.ActionDescend: handleDescend,
	domain.ActionAscend:  handleAscend,
	domain.ActionPickup:  handlePickup,
	domain.ActionDrop:    handleDrop,
	domain.ActionQuit:    handleQuit,
}

func handleMove(ctx *engine.Context, h *Hero, cmd domain.Command) engine.Result {
	res := systems.TryMove(h, cmd.Dx, cmd.Dy)

	switch {
	case res.HasMoved:
		m := h.Pos().Map()
		if m.HasItems(res.Target) {
			ctx.Message("Здесь лежит: %s.", describePile(m.ItemPile(res.Target)))
		}
		if t := m.Terrain(res.Target); t == domain.StairDown || t == domain.StairUp {
			ctx.Message("Здесь %s.", t.Name())
		}
		return engine.Took(domain.Normal.Cost(1))
	case res.BlockedBy != nil:
		ctx.Message("%s преграждает путь.", res.BlockedBy.Name())
	default:
		ctx.Message("Путь прегражден.")
	}
	// Упереться в стену - не ход
	return engine.Again()
}

func handleWait(ctx *engine.Context, h *Hero, cmd domain.Command) engine.Result {
	return engine.Took(domain.Normal.Cost(1))
}

func handleRest(ctx *engine.Context, h *Hero, cmd domain.Command) engine.Result {
	ctx.Message("%s отдыхает.", h.Name())
	return engine.Took(domain.Normal.Cost(cmd.Units))
}

func handleDescend(ctx *engine.Context, h *Hero, cmd domain.Command) engine.Result {
	return changeLevel(ctx, h, domain.StairDown, +1, domain.StairUp)
}

func handleAscend(ctx *engine.Context, h *Hero, cmd domain.Command) engine.Result {
	return changeLevel(ctx, h, domain.StairUp, -1, domain.StairDown)
}

func handlePickup(ctx *engine.Context, h *Hero, cmd domain.Command) engine.Result {
	picked, err := systems.TryPickup(h, h.inventory)
	if err != nil {
		ctx.Message("%s.", capitalize(err.Error()))
		return engine.Again()
	}
	for _, it := range picked {
		ctx.Message("%s подбирает %s.", h.Name(), describeItem(it))
	}
	return engine.Took(domain.Normal.Cost(1))
}

// handleDrop выкладывает последнюю поднятую стопку
func handleDrop(ctx *engine.Context, h *Hero, cmd domain.Command) engine.Result {
	items := h.inventory.Items()
	if len(items) == 0 {
		ctx.Message("Инвентарь пуст.")
		return engine.Again()
	}
	it := items[len(items)-1]
	if err := systems.TryDrop(h, h.inventory, it); err != nil {
		ctx.Message("%s.", capitalize(err.Error()))
		return engine.Again()
	}
	ctx.Message("%s выбрасывает %s.", h.Name(), describeItem(it))
	return engine.Took(domain.Normal.Cost(1))
}

func handleQuit(ctx *engine.Context, h *Hero, cmd domain.Command) engine.Result {
	ctx.Log.Info("Hero quits")
	ctx.World.Stop()
	return engine.Gone()
}

// changeLevel moves the hero from a staircase of type from to the matching staircase of
// the neighbouring level, built on demand by the owning dungeon master.
func changeLevel(ctx *engine.Context, h *Hero, from domain.Terrain, delta int, arrive domain.Terrain) engine.Result {
	pos := h.Pos()
	m := pos.Map()
	if m.Terrain(pos.Point()) != from {
		ctx.Message("Здесь нет лестницы.")
		return engine.Again()
	}
	dm := m.Owner()
	target := m.Level() + delta
	if dm == nil || target < 0 {
		ctx.Message("Эта лестница никуда не ведет.")
		return engine.Again()
	}

	next := dm.GetOrCreateMap(target)
	p, ok := next.FindTerrain(arrive)
	if !ok {
		p = domain.Pt(next.Width()/2, next.Height()/2)
	}
	spot, ok := next.NearestFree(p)
	if !ok {
		ctx.Message("Лестница завалена.")
		return engine.Again()
	}

	next.AddCreature(spot, h)
	if ctx.World != nil {
		ctx.World.AddMapToPlay(next)
	}
	ctx.Log.WithField("map", next.Name()).Info("Hero changed level")
	ctx.Message("Уровень %d.", target)
	return engine.Took(domain.Normal.Cost(1))
}

func describePile(p *domain.ItemPile) string {
	items := p.Items()
	if len(items) == 1 {
		return describeItem(items[0])
	}
	return fmt.Sprintf("%s и еще %d", describeItem(items[0]), len(items)-1)
}

func describeItem(it *domain.Item) string {
	if it.Count > 1 {
		return fmt.Sprintf("%s (%d)", it.Name, it.Count)
	}
	return it.Name
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

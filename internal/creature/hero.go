package creature

import (
	"roguecore/internal/domain"
	"roguecore/internal/engine"
	"roguecore/internal/systems"
)

// Hero is driven by an engine.Input. Before every decision it refreshes its field of view
// and asks the view to redraw.
type Hero struct {
	engine.ActorBase
	name      string
	sight     int
	inventory *domain.ItemPile
}

func NewHero(name string, sight int) *Hero {
	if sight <= 0 {
		sight = domain.VisionRadius
	}
	return &Hero{
		name:      name,
		sight:     sight,
		inventory: domain.NewItemPile(domain.MaxPileStacks),
	}
}

func (h *Hero) Name() string            { return h.name }
func (h *Hero) Glyph() domain.Glyph     { return domain.MakeGlyph(domain.White, '@') }
func (h *Hero) Speed() domain.Speed     { return domain.Normal }
func (h *Hero) Base() *engine.ActorBase { return &h.ActorBase }
func (h *Hero) Sight() int              { return h.sight }

// Inventory - то, что герой несет с собой
func (h *Hero) Inventory() *domain.ItemPile { return h.inventory }

func (h *Hero) Act(ctx *engine.Context) engine.Result {
	m := h.Pos().Map()
	systems.UpdateFOV(m, h, h.sight)
	if ctx.View != nil {
		ctx.View.Render(m, h)
	}

	// Без источника команд герой просто ждет
	if ctx.Input == nil {
		return engine.Took(domain.Normal.Cost(1))
	}

	cmd, err := ctx.Input.NextCommand(ctx.Ctx, h)
	if err != nil {
		// Ввод закрыт (выход из терминала, отмена контекста) - считаем это выходом из игры
		ctx.Log.WithError(err).Info("Input closed")
		return handleQuit(ctx, h, domain.Simple(domain.ActionQuit))
	}

	handler, ok := heroHandlers[cmd.Action]
	if !ok {
		ctx.Log.WithField("action", cmd.Action.String()).Warn("No handler for action")
		return engine.Again()
	}
	return handler(ctx, h, cmd)
}

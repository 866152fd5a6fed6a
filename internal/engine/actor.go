package engine

import (
	"fmt"

	"roguecore/internal/domain"
)

// Outcome tells the scheduler what to do with an actor after Act returns.
type Outcome uint8

const (
	// Continue: the action took Result.Cost ticks.
	Continue Outcome = iota
	// Repeat: nothing happened, act again immediately.
	Repeat
	// Removed: the actor died or left play and must not be rescheduled.
	Removed
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Repeat:
		return "repeat"
	case Removed:
		return "removed"
	}
	return fmt.Sprintf("Outcome(%d)", uint8(o))
}

// Result is returned by every Act call.
type Result struct {
	Outcome Outcome
	Cost    int
}

// Took reports an action costing the given number of ticks.
func Took(cost int) Result { return Result{Outcome: Continue, Cost: cost} }

// Again asks for another Act call without advancing time.
func Again() Result { return Result{Outcome: Repeat} }

// Gone removes the actor from scheduling.
func Gone() Result { return Result{Outcome: Removed} }

// Actor - всё, что получает ход: герой, монстры, мастера подземелий.
// Планировщик никогда не смотрит на конкретный тип.
type Actor interface {
	Act(ctx *Context) Result
	Speed() domain.Speed
	Base() *ActorBase
}

// Creature is an actor that occupies a cell.
type Creature interface {
	Actor
	Name() string
	Glyph() domain.Glyph
}

// ActorBase holds the state the engine keeps for every actor.
// Embed it and return its address from Base().
type ActorBase struct {
	pos  Position
	turn int
}

// Pos is the current position. Pos().Map() is nil while the actor is unbound.
func (b *ActorBase) Pos() Position { return b.pos }

// Turn is the tick at which the actor next acts.
func (b *ActorBase) Turn() int { return b.turn }

// StartAt sets the initial turn. Only factories call it, before the actor is placed.
func (b *ActorBase) StartAt(turn int) {
	if b.pos.m != nil {
		panic("engine: StartAt on an actor that is already bound to a map")
	}
	b.turn = turn
}

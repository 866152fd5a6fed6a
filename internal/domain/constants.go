package domain

import "fmt"

// Speed is the tick cost of one standard action. A full cycle is 12 ticks:
// Fast acts 6 times in it, Quick 4, Normal 3, Slow 2, VSlow once.
type Speed int

const (
	VSlow  Speed = 12
	Slow   Speed = 6
	Normal Speed = 4
	Quick  Speed = 3
	Fast   Speed = 2
)

// CycleTicks is the length of one full speed cycle.
const CycleTicks = 12

// Cost returns the ticks consumed by an action lasting the given number of units.
func (s Speed) Cost(units int) int {
	return units * int(s)
}

func (s Speed) String() string {
	switch s {
	case VSlow:
		return "vslow"
	case Slow:
		return "slow"
	case Normal:
		return "normal"
	case Quick:
		return "quick"
	case Fast:
		return "fast"
	}
	return fmt.Sprintf("Speed(%d)", int(s))
}

// Lighting is the per-cell state the field-of-view collaborator writes.
type Lighting uint8

const (
	Dark Lighting = iota
	Lit
)

// Параметры восприятия
const (
	VisionRadius = 8
	AggroRadius  = 10
)

// MaxPileStacks caps the distinct stacks one floor cell can hold.
const MaxPileStacks = 52

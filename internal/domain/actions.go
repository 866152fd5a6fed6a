package domain

import (
	"errors"
	"strings"
)

// ActionType - Внутренний числовой идентификатор действия героя
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionMove
	ActionWait
	ActionRest
	ActionDescend
	ActionAscend
	ActionPickup
	ActionDrop
	ActionQuit
)

// Маппинг для конвертации ввода -> Domain
var actionStringToCmd = map[string]ActionType{
	"MOVE":    ActionMove,
	"WAIT":    ActionWait,
	"REST":    ActionRest,
	"DESCEND": ActionDescend,
	"ASCEND":  ActionAscend,
	"PICKUP":  ActionPickup,
	"DROP":    ActionDrop,
	"QUIT":    ActionQuit,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionMove:    "MOVE",
	ActionWait:    "WAIT",
	ActionRest:    "REST",
	ActionDescend: "DESCEND",
	ActionAscend:  "ASCEND",
	ActionPickup:  "PICKUP",
	ActionDrop:    "DROP",
	ActionQuit:    "QUIT",
}

// ParseAction конвертирует строку в ActionType
func ParseAction(s string) ActionType {
	// Делаем нечувствительным к регистру для надежности
	upper := strings.ToUpper(s)
	if val, ok := actionStringToCmd[upper]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}

// Command is one decision delivered by an input source.
type Command struct {
	Action ActionType
	Dx, Dy int // ActionMove
	Units  int // ActionRest
}

// Move builds a one-step move command.
func Move(dx, dy int) Command { return Command{Action: ActionMove, Dx: dx, Dy: dy} }

// Rest builds a multi-unit wait.
func Rest(units int) Command { return Command{Action: ActionRest, Units: units} }

// Simple builds a command without arguments (wait, stairs, pickup, drop, quit).
func Simple(a ActionType) Command { return Command{Action: a} }

// Validate checks the command arguments.
func (c Command) Validate() error {
	switch c.Action {
	case ActionUnknown:
		return errors.New("unknown action")
	case ActionMove:
		if c.Dx == 0 && c.Dy == 0 {
			return errors.New("movement vector cannot be zero")
		}
		if c.Dx < -1 || c.Dx > 1 || c.Dy < -1 || c.Dy > 1 {
			return errors.New("movement step too large")
		}
	case ActionRest:
		if c.Units <= 0 {
			return errors.New("rest needs a positive number of units")
		}
	}
	return nil
}

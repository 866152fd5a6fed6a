package tui

import (
	"roguecore/internal/domain"

	"github.com/gdamore/tcell"
)

// restUnits - сколько единиц отдыхает герой по клавише 'r'
const restUnits = 10

// viDirs - классическая раскладка hjkl + yubn
var viDirs = map[rune]domain.Point{
	'h': {X: -1, Y: 0},
	'l': {X: 1, Y: 0},
	'k': {X: 0, Y: -1},
	'j': {X: 0, Y: 1},
	'y': {X: -1, Y: -1},
	'u': {X: 1, Y: -1},
	'b': {X: -1, Y: 1},
	'n': {X: 1, Y: 1},
}

var arrowDirs = map[tcell.Key]domain.Point{
	tcell.KeyLeft:  {X: -1, Y: 0},
	tcell.KeyRight: {X: 1, Y: 0},
	tcell.KeyUp:    {X: 0, Y: -1},
	tcell.KeyDown:  {X: 0, Y: 1},
	tcell.KeyHome:  {X: -1, Y: -1},
	tcell.KeyPgUp:  {X: 1, Y: -1},
	tcell.KeyEnd:   {X: -1, Y: 1},
	tcell.KeyPgDn:  {X: 1, Y: 1},
}

// parseKey переводит нажатие в команду героя. false - клавиша ничего не значит.
func parseKey(ev *tcell.EventKey) (domain.Command, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		r := ev.Rune()
		if d, ok := viDirs[r]; ok {
			return domain.Move(d.X, d.Y), true
		}
		switch r {
		case '.', 's':
			return domain.Simple(domain.ActionWait), true
		case 'r':
			return domain.Rest(restUnits), true
		case '>':
			return domain.Simple(domain.ActionDescend), true
		case '<':
			return domain.Simple(domain.ActionAscend), true
		case 'g', ',':
			return domain.Simple(domain.ActionPickup), true
		case 'd':
			return domain.Simple(domain.ActionDrop), true
		case 'q', 'Q':
			return domain.Simple(domain.ActionQuit), true
		}
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return domain.Simple(domain.ActionQuit), true
	default:
		if d, ok := arrowDirs[ev.Key()]; ok {
			return domain.Move(d.X, d.Y), true
		}
	}
	return domain.Command{}, false
}

package engine

import (
	"context"
	"fmt"

	"roguecore/internal/domain"

	"github.com/sirupsen/logrus"
)

// Input delivers the hero's decisions. NextCommand may block until the player acts;
// it returns an error when the source is closed or ctx is cancelled.
type Input interface {
	NextCommand(ctx context.Context, hero Creature) (domain.Command, error)
}

// View shows the world to the player.
type View interface {
	Render(m *Map, observer Creature)
	Message(text string)
}

// Context is everything an actor may touch while it acts. Nothing in the engine is global.
type Context struct {
	Ctx   context.Context
	World *World
	Input Input
	View  View
	Now   int
	Log   *logrus.Entry
}

// Message sends a formatted line to the view.
func (c *Context) Message(format string, args ...interface{}) {
	if c.View == nil {
		return
	}
	c.View.Message(fmt.Sprintf(format, args...))
}

type nopView struct{}

func (nopView) Render(*Map, Creature) {}
func (nopView) Message(string)        {}

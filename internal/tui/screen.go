package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"roguecore/internal/domain"
	"roguecore/internal/engine"
	"roguecore/pkg/logger"

	"github.com/gdamore/tcell"
	"github.com/sirupsen/logrus"
)

// Screen - терминальный интерфейс: рисует карту вокруг героя и читает его команды.
// Реализует engine.Input и engine.View.
//
// Раскладка: верхняя строка - сообщения, дальше карта, нижняя строка - статус.
type Screen struct {
	scr    tcell.Screen
	events chan tcell.Event
	quit   chan struct{}
	once   sync.Once

	pending []string
	log     *logrus.Entry
}

// New открывает терминал
func New() (*Screen, error) {
	scr, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewWithScreen(scr)
}

// NewWithScreen работает поверх готового экрана (в тестах - tcell.NewSimulationScreen)
func NewWithScreen(scr tcell.Screen) (*Screen, error) {
	if err := scr.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	scr.Clear()

	s := &Screen{
		scr:    scr,
		events: make(chan tcell.Event),
		quit:   make(chan struct{}),
		log:    logger.Log.WithField("component", "tui"),
	}
	go s.pump()
	return s, nil
}

// pump перекладывает события терминала в канал, чтобы NextCommand мог ждать и ctx
func (s *Screen) pump() {
	defer close(s.events)
	for {
		ev := s.scr.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.quit:
			return
		}
	}
}

// Close возвращает терминал в обычный режим. Повторный вызов ничего не делает.
func (s *Screen) Close() {
	s.once.Do(func() {
		close(s.quit)
		s.scr.Fini()
	})
}

// NextCommand ждет клавишу, которая что-то значит. io.EOF - экран закрыт.
func (s *Screen) NextCommand(ctx context.Context, hero engine.Creature) (domain.Command, error) {
	for {
		select {
		case <-ctx.Done():
			return domain.Command{}, ctx.Err()
		case ev, ok := <-s.events:
			if !ok {
				return domain.Command{}, io.EOF
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if cmd, ok := parseKey(ev); ok {
					return cmd, nil
				}
				s.log.WithField("key", ev.Name()).Debug("Unbound key")
			case *tcell.EventResize:
				s.scr.Sync()
			}
		}
	}
}

// Message копит строку до следующей отрисовки
func (s *Screen) Message(text string) {
	s.pending = append(s.pending, text)
}

// Render рисует кадр: сообщения, карту с героем в центре и строку статуса
func (s *Screen) Render(m *engine.Map, observer engine.Creature) {
	s.scr.Clear()
	w, h := s.scr.Size()

	s.drawText(0, 0, w, strings.Join(s.pending, " "), tcell.StyleDefault)
	s.pending = s.pending[:0]

	viewH := h - 2
	if viewH > 0 && m != nil {
		center := domain.Pt(m.Width()/2, m.Height()/2)
		if observer != nil && observer.Base().Pos().Map() == m {
			center = observer.Base().Pos().Point()
		}
		offX := viewportOffset(center.X, w, m.Width())
		offY := viewportOffset(center.Y, viewH, m.Height())

		for sy := 0; sy < viewH; sy++ {
			for sx := 0; sx < w; sx++ {
				p := domain.Pt(sx+offX, sy+offY)
				if !m.Contains(p) {
					continue
				}
				g := m.Representation(p, observer)
				style := tcell.StyleDefault.Foreground(tcell.NewHexColor(int32(g.Colour())))
				s.scr.SetContent(sx, sy+1, rune(g.Char()), nil, style)
			}
		}
	}

	if h > 1 && m != nil {
		status := fmt.Sprintf("%s  уровень %d", m.Name(), m.Level())
		if observer != nil {
			status = fmt.Sprintf("%s  %s %s", status, observer.Name(), observer.Base().Pos())
		}
		s.drawText(0, h-1, w, status, tcell.StyleDefault.Reverse(true))
	}
	s.scr.Show()
}

// viewportOffset: левый/верхний край окна size вокруг center на карте длины total
func viewportOffset(center, size, total int) int {
	if total <= size {
		return 0
	}
	off := center - size/2
	if off < 0 {
		return 0
	}
	if off > total-size {
		return total - size
	}
	return off
}

func (s *Screen) drawText(x, y, width int, text string, style tcell.Style) {
	for _, r := range text {
		if x >= width {
			return
		}
		s.scr.SetContent(x, y, r, nil, style)
		x++
	}
}

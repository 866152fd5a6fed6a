package storage

import (
	"context"
	"io"
	"time"

	"roguecore/internal/domain"
	"roguecore/internal/engine"
	"roguecore/pkg/logger"

	"github.com/sirupsen/logrus"
)

// NewSession - пустая запись для мира с настройками cfg
func NewSession(cfg engine.Config) *domain.ReplaySession {
	return &domain.ReplaySession{
		Seed:        cfg.Seed,
		DM:          cfg.StartDM,
		Kind:        cfg.StartKind,
		Width:       cfg.MapWidth,
		Height:      cfg.MapHeight,
		SpawnCap:    cfg.SpawnCap,
		SightRadius: cfg.SightRadius,
		DMInterval:  cfg.DMIntervalUnits,
		Timestamp:   time.Now().Unix(),
	}
}

// ApplyTo переносит настройки мира из записи в cfg. Ограничение на число ходов не трогает.
func ApplyTo(s *domain.ReplaySession, cfg *engine.Config) {
	cfg.Seed = s.Seed
	cfg.StartDM = s.DM
	cfg.StartKind = s.Kind
	cfg.MapWidth = s.Width
	cfg.MapHeight = s.Height
	cfg.SpawnCap = s.SpawnCap
	cfg.SightRadius = s.SightRadius
	cfg.DMIntervalUnits = s.DMInterval
}

// Recorder оборачивает источник команд и запоминает всё, что он вернул.
type Recorder struct {
	input   engine.Input
	session *domain.ReplaySession
}

func NewRecorder(input engine.Input, session *domain.ReplaySession) *Recorder {
	return &Recorder{input: input, session: session}
}

// NextCommand реализует engine.Input
func (r *Recorder) NextCommand(ctx context.Context, hero engine.Creature) (domain.Command, error) {
	cmd, err := r.input.NextCommand(ctx, hero)
	if err != nil {
		return cmd, err
	}
	r.session.Commands = append(r.session.Commands, domain.ReplayCommand{
		Tick:    hero.Base().Turn(),
		Command: cmd,
	})
	return cmd, nil
}

func (r *Recorder) Session() *domain.ReplaySession { return r.session }

// Player отдает записанные команды по порядку. Когда запись кончилась, ввод закрыт (io.EOF).
type Player struct {
	commands []domain.ReplayCommand
	next     int
	diverged int
	log      *logrus.Entry
}

func NewPlayer(s *domain.ReplaySession) *Player {
	return &Player{
		commands: s.Commands,
		log:      logger.Log.WithFields(logrus.Fields{"component": "replay", "seed": s.Seed}),
	}
}

// NextCommand реализует engine.Input
func (p *Player) NextCommand(ctx context.Context, hero engine.Creature) (domain.Command, error) {
	if err := ctx.Err(); err != nil {
		return domain.Command{}, err
	}
	if p.next >= len(p.commands) {
		return domain.Command{}, io.EOF
	}
	rc := p.commands[p.next]
	p.next++

	// Время разошлось - значит, мир уже не тот, что при записи
	if turn := hero.Base().Turn(); turn != rc.Tick {
		p.diverged++
		p.log.WithFields(logrus.Fields{
			"index":    p.next - 1,
			"recorded": rc.Tick,
			"actual":   turn,
		}).Warn("Replay diverged")
	}
	return rc.Command, nil
}

// Remaining - сколько команд еще не отдано
func (p *Player) Remaining() int { return len(p.commands) - p.next }

// Diverged - сколько команд пришлось на другое время, чем при записи
func (p *Player) Diverged() int { return p.diverged }

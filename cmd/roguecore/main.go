package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"roguecore/internal/agent"
	"roguecore/internal/creature"
	"roguecore/internal/domain"
	"roguecore/internal/engine"
	"roguecore/internal/infrastructure/storage"
	"roguecore/internal/tui"
	"roguecore/internal/version"
	"roguecore/pkg/dungeon"
	"roguecore/pkg/logger"

	"github.com/sirupsen/logrus"
)

func init() {
	logger.Init()
}

// options - флаги командной строки поверх engine.Config
type options struct {
	seed     int64
	dm       string
	kind     string
	turns    int
	width    int
	height   int
	depth    int
	headless bool
	logFile  string
	logLevel string
	record   string
	replay   string
}

func parseFlags() options {
	var o options
	// Читаем флаг -seed. По умолчанию 0 (значит сгенерировать случайно).
	flag.Int64Var(&o.seed, "seed", 0, "Initial world seed (0 for random)")
	flag.StringVar(&o.dm, "dm", "", "Name of the starting dungeon master (defaults to -kind)")
	flag.StringVar(&o.kind, "kind", dungeon.KindCave, "Kind of the starting dungeon master: cave, rooms, overworld, town")
	flag.IntVar(&o.turns, "turns", 0, "Stop after this many actor turns (0 = no limit)")
	flag.IntVar(&o.width, "width", 0, "Level width (0 = default)")
	flag.IntVar(&o.height, "height", 0, "Level height (0 = default)")
	flag.IntVar(&o.depth, "depth", agent.DefaultMaxDepth, "Deepest level the headless bot descends to")
	flag.BoolVar(&o.headless, "headless", false, "Let the bot play without a terminal")
	flag.StringVar(&o.logFile, "log-file", "", "Write logs to this file (the terminal UI defaults to roguecore.log)")
	flag.StringVar(&o.logLevel, "log-level", "", "Log level (overrides LOG_LEVEL)")
	flag.StringVar(&o.record, "record", "", "Save the hero's commands into this directory when the game ends")
	flag.StringVar(&o.replay, "replay", "", "Play back a recorded game instead of reading commands")
	flag.Parse()
	return o
}

func main() {
	if err := run(parseFlags()); err != nil {
		logger.Log.WithError(err).Error("roguecore stopped with error")
		fmt.Fprintln(os.Stderr, "roguecore:", err)
		os.Exit(1)
	}
}

func run(o options) error {
	// 1. Логи. Терминальный интерфейс рисует на stdout, поэтому логи уходят в файл.
	logFile := o.logFile
	if logFile == "" && !o.headless {
		logFile = "roguecore.log"
	}
	logOpts := logger.Options{Level: o.logLevel}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOpts.Output = f
	}
	logger.Configure(logOpts)

	logger.Log.Info("Starting roguecore...")
	logger.Log.Info(version.String())

	// 2. Формируем конфиг
	cfg := engine.NewConfig()
	if o.seed != 0 {
		cfg.Seed = o.seed
		logger.Log.Infof("🎲 Using explicit Master Seed: %d", cfg.Seed)
	} else {
		logger.Log.Infof("🎲 Using random Master Seed: %d", cfg.Seed)
	}
	cfg.StartKind = o.kind
	cfg.StartDM = o.dm
	if cfg.StartDM == "" {
		cfg.StartDM = o.kind
	}
	cfg.MaxTurns = o.turns
	if o.width > 0 {
		cfg.MapWidth = o.width
	}
	if o.height > 0 {
		cfg.MapHeight = o.height
	}

	replays := storage.NewReplayService(o.record)
	var session *domain.ReplaySession
	if o.replay != "" {
		var err error
		if session, err = replays.Load(o.replay); err != nil {
			return fmt.Errorf("load replay: %w", err)
		}
		storage.ApplyTo(session, &cfg)
		logger.Log.WithFields(logrus.Fields{
			"file":     o.replay,
			"seed":     cfg.Seed,
			"commands": len(session.Commands),
		}).Info("Replaying recorded game")
	}

	reg := engine.NewRegistry()
	dungeon.Register(reg)

	// 3. Источник команд и экран
	var (
		input engine.Input
		view  engine.View
	)
	if o.headless {
		input = agent.NewBot(o.depth)
	} else {
		screen, err := tui.New()
		if err != nil {
			return err
		}
		defer screen.Close()
		input, view = screen, screen
	}
	if session != nil {
		input = storage.NewPlayer(session)
	}
	var recorder *storage.Recorder
	if o.record != "" && session == nil {
		recorder = storage.NewRecorder(input, storage.NewSession(cfg))
		input = recorder
	}

	// 4. Мир и герой
	world, err := engine.NewWorld(cfg, reg, input, view)
	if err != nil {
		return err
	}
	hero := creature.NewHero("Герой", cfg.SightRadius)
	if err := world.PlaceHero(hero); err != nil {
		return err
	}

	// Graceful Shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = world.Run(ctx)
	logger.Log.WithFields(logrus.Fields{
		"turns": world.Turns(),
		"now":   world.Now(),
		"hero":  hero.Pos().String(),
	}).Info("Done.")

	if recorder != nil {
		path, saveErr := replays.Save(recorder.Session())
		if saveErr != nil {
			return fmt.Errorf("save replay: %w", saveErr)
		}
		logger.Log.WithField("file", path).Info("Replay saved")
	}

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

package storage

import (
	"bytes"
	"context"
	"encoding/binary"
	"io"
	"os"
	"testing"

	"roguecore/internal/agent"
	"roguecore/internal/creature"
	"roguecore/internal/domain"
	"roguecore/internal/engine"
	"roguecore/pkg/dungeon"
	"roguecore/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func sampleSession() *domain.ReplaySession {
	cfg := engine.NewConfig()
	cfg.Seed = 42
	cfg.StartDM, cfg.StartKind = "deep", dungeon.KindCave
	s := NewSession(cfg)
	s.Commands = []domain.ReplayCommand{
		{Tick: 0, Command: domain.Move(1, -1)},
		{Tick: 4, Command: domain.Rest(10)},
		{Tick: 44, Command: domain.Simple(domain.ActionDescend)},
	}
	return s
}

func TestBinaryRoundTrip(t *testing.T) {
	in := sampleSession()

	var buf bytes.Buffer
	require.NoError(t, writeBinary(&buf, in))
	out, err := readBinary(&buf)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestReadBinary_Rejects(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeBinary(&buf, sampleSession()))
	raw := buf.Bytes()

	bad := append([]byte("XXXX"), raw[4:]...)
	_, err := readBinary(bytes.NewReader(bad))
	assert.ErrorContains(t, err, "invalid magic")

	_, err = readBinary(bytes.NewReader(raw[:len(raw)-3]))
	assert.Error(t, err, "truncated command")

	// Заголовок обещает 2^31-1 команд, а записей нет.
	var huge bytes.Buffer
	header := ReplayFileHeader{
		Version:      Version1,
		Width:        10,
		Height:       10,
		CommandCount: 0x7fffffff,
	}
	copy(header.Magic[:], MagicHeader)
	require.NoError(t, binary.Write(&huge, binary.LittleEndian, &header))
	_, err = readBinary(&huge)
	assert.ErrorContains(t, err, "command 0")
}

func TestReadBinary_RejectsBadSettings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *domain.ReplaySession)
		want   string
	}{
		{"zero width", func(s *domain.ReplaySession) { s.Width = 0 }, "invalid map size"},
		{"too tall", func(s *domain.ReplaySession) { s.Height = domain.MaxAxis + 1 }, "invalid map size"},
		{"negative spawn cap", func(s *domain.ReplaySession) { s.SpawnCap = -1 }, "negative limits"},
		{"negative sight", func(s *domain.ReplaySession) { s.SightRadius = -3 }, "negative limits"},
		{"negative dm interval", func(s *domain.ReplaySession) { s.DMInterval = -1 }, "negative limits"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := sampleSession()
			tt.mutate(s)
			var buf bytes.Buffer
			require.NoError(t, writeBinary(&buf, s))
			_, err := readBinary(&buf)
			assert.ErrorContains(t, err, tt.want)
		})
	}

	s := sampleSession()
	s.Width, s.Height = domain.MaxAxis, 1
	var buf bytes.Buffer
	require.NoError(t, writeBinary(&buf, s))
	_, err := readBinary(&buf)
	assert.NoError(t, err, "max axis is still a valid size")
}

func TestReplayService_SaveLoad(t *testing.T) {
	svc := NewReplayService(t.TempDir())
	in := sampleSession()

	path, err := svc.Save(in)
	require.NoError(t, err)
	out, err := svc.Load(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestReplayService_SaveFails(t *testing.T) {
	dir := t.TempDir()

	wide := sampleSession()
	wide.Commands = append(wide.Commands, domain.ReplayCommand{Tick: 50, Command: domain.Command{Action: domain.ActionMove, Dx: 200}})
	path, err := NewReplayService(dir).Save(wide)
	assert.Error(t, err)
	assert.Empty(t, path)

	blocker := dir + "/file"
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	path, err = NewReplayService(blocker).Save(sampleSession())
	assert.Error(t, err)
	assert.Empty(t, path)
}

func TestApplyTo(t *testing.T) {
	s := sampleSession()
	cfg := engine.NewConfig()
	cfg.MaxTurns = 17
	ApplyTo(s, &cfg)

	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "deep", cfg.StartDM)
	assert.Equal(t, dungeon.KindCave, cfg.StartKind)
	assert.Equal(t, 17, cfg.MaxTurns)
}

func TestPlayer_EndsWithEOF(t *testing.T) {
	p := NewPlayer(sampleSession())
	hero := creature.NewHero("Герой", 0)

	cmd, err := p.NextCommand(context.Background(), hero)
	require.NoError(t, err)
	assert.Equal(t, domain.Move(1, -1), cmd)
	assert.Equal(t, 2, p.Remaining())

	p.NextCommand(context.Background(), hero)
	p.NextCommand(context.Background(), hero)
	assert.Equal(t, 2, p.Diverged(), "the hero never moved in time")

	_, err = p.NextCommand(context.Background(), hero)
	assert.ErrorIs(t, err, io.EOF)
}

// Партия бота, записанная и проигранная заново, идет теми же ходами
func TestRecordAndReplay(t *testing.T) {
	reg := engine.NewRegistry()
	dungeon.Register(reg)

	cfg := engine.NewConfig()
	cfg.Seed = 99
	cfg.StartDM, cfg.StartKind = dungeon.KindRooms, dungeon.KindRooms
	cfg.MapWidth, cfg.MapHeight = 50, 30
	cfg.MaxTurns = 400

	rec := NewRecorder(agent.NewBot(2), NewSession(cfg))
	w, err := engine.NewWorld(cfg, reg, rec, nil)
	require.NoError(t, err)
	require.NoError(t, w.PlaceHero(creature.NewHero("Бот", cfg.SightRadius)))
	require.NoError(t, w.Run(context.Background()))
	require.NotEmpty(t, rec.Session().Commands)

	var buf bytes.Buffer
	require.NoError(t, writeBinary(&buf, rec.Session()))
	session, err := readBinary(&buf)
	require.NoError(t, err)

	replayCfg := engine.NewConfig()
	ApplyTo(session, &replayCfg)
	player := NewPlayer(session)
	w2, err := engine.NewWorld(replayCfg, reg, player, nil)
	require.NoError(t, err)
	require.NoError(t, w2.PlaceHero(creature.NewHero("Бот", replayCfg.SightRadius)))
	require.NoError(t, w2.Run(context.Background()))

	assert.Equal(t, 0, player.Remaining())
	assert.Equal(t, 0, player.Diverged())
	assert.True(t, w2.Stopped(), "the hero quits when the recording ends")
}

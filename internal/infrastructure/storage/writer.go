package storage

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"roguecore/internal/domain"
)

const (
	MagicHeader string = `RCRP` // 4 байта
	Version1    uint32 = 1
)

// ReplayFileHeader - это точное представление заголовка файла в памяти.
// binary.Write умеет писать это целиком, так как тут нет слайсов и строк, только массивы и числа.
type ReplayFileHeader struct {
	Magic        [4]byte // 4 байта
	Version      uint32  // 4 байта
	Seed         int64   // 8 байт
	Timestamp    int64   // 8 байт
	Width        int32   // 4 байта
	Height       int32   // 4 байта
	SpawnCap     int32   // 4 байта
	SightRadius  int32   // 4 байта
	DMInterval   int32   // 4 байта
	CommandCount int32   // 4 байта
	DMLen        uint8   // 1
	KindLen      uint8   // 1
}

// CommandRecord - запись одной команды. Длина фиксирована.
type CommandRecord struct {
	Tick   int32 // 4
	Action uint8 // 1
	Dx     int8  // 1
	Dy     int8  // 1
	Units  int32 // 4
}

type ReplayService struct {
	SaveDir string
}

func NewReplayService(dir string) *ReplayService {
	return &ReplayService{SaveDir: dir}
}

// Save пишет сессию в SaveDir и возвращает путь к файлу.
func (s *ReplayService) Save(session *domain.ReplaySession) (string, error) {
	if err := os.MkdirAll(s.SaveDir, 0o755); err != nil {
		return "", err
	}
	filename := fmt.Sprintf("replay_%d_%s_%d.rcrp", session.Seed, session.DM, session.Timestamp)
	path := filepath.Join(s.SaveDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}

	if err := writeBinary(f, session); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}

func writeBinary(w io.Writer, s *domain.ReplaySession) error {
	if len(s.DM) > 255 || len(s.Kind) > 255 {
		return fmt.Errorf("dungeon master name too long: %q/%q", s.DM, s.Kind)
	}

	// 1. Глобальный заголовок
	header := ReplayFileHeader{
		Version:      Version1,
		Seed:         s.Seed,
		Timestamp:    s.Timestamp,
		Width:        int32(s.Width),
		Height:       int32(s.Height),
		SpawnCap:     int32(s.SpawnCap),
		SightRadius:  int32(s.SightRadius),
		DMInterval:   int32(s.DMInterval),
		CommandCount: int32(len(s.Commands)),
		DMLen:        uint8(len(s.DM)),
		KindLen:      uint8(len(s.Kind)),
	}
	copy(header.Magic[:], MagicHeader)

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := io.WriteString(w, s.DM+s.Kind); err != nil {
		return err
	}

	// 2. Команды
	for _, rc := range s.Commands {
		cmd := rc.Command
		if cmd.Dx < -128 || cmd.Dx > 127 || cmd.Dy < -128 || cmd.Dy > 127 {
			return fmt.Errorf("move vector out of range: %d,%d", cmd.Dx, cmd.Dy)
		}
		rec := CommandRecord{
			Tick:   int32(rc.Tick),
			Action: uint8(cmd.Action),
			Dx:     int8(cmd.Dx),
			Dy:     int8(cmd.Dy),
			Units:  int32(cmd.Units),
		}
		if err := binary.Write(w, binary.LittleEndian, &rec); err != nil {
			return err
		}
	}

	return nil
}

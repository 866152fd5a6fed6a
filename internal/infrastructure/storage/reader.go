package storage

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"roguecore/internal/domain"
)

func (s *ReplayService) Load(path string) (*domain.ReplaySession, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readBinary(f)
}

// maxPrealloc ограничивает начальную ёмкость слайса команд.
const maxPrealloc = 1024

func readBinary(r io.Reader) (*domain.ReplaySession, error) {
	// 1. Читаем заголовок целиком
	var header ReplayFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	// Валидация
	if string(header.Magic[:]) != MagicHeader {
		return nil, fmt.Errorf("invalid magic")
	}
	if header.Version != Version1 {
		return nil, fmt.Errorf("unsupported version: %d (expected %d)", header.Version, Version1)
	}
	if header.CommandCount < 0 {
		return nil, fmt.Errorf("negative command count: %d", header.CommandCount)
	}
	if err := validateHeader(&header); err != nil {
		return nil, err
	}

	names := make([]byte, int(header.DMLen)+int(header.KindLen))
	if _, err := io.ReadFull(r, names); err != nil {
		return nil, fmt.Errorf("failed to read names: %w", err)
	}

	session := &domain.ReplaySession{
		Seed:        header.Seed,
		DM:          string(names[:header.DMLen]),
		Kind:        string(names[header.DMLen:]),
		Width:       int(header.Width),
		Height:      int(header.Height),
		SpawnCap:    int(header.SpawnCap),
		SightRadius: int(header.SightRadius),
		DMInterval:  int(header.DMInterval),
		Timestamp:   header.Timestamp,
		Commands:    make([]domain.ReplayCommand, 0, min(int(header.CommandCount), maxPrealloc)),
	}

	// 2. Читаем команды. Счётчику из файла не доверяем: слайс растёт по мере чтения.
	for i := 0; i < int(header.CommandCount); i++ {
		var rec CommandRecord
		if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
			return nil, fmt.Errorf("command %d: %w", i, err)
		}
		session.Commands = append(session.Commands, domain.ReplayCommand{
			Tick: int(rec.Tick),
			Command: domain.Command{
				Action: domain.ActionType(rec.Action),
				Dx:     int(rec.Dx),
				Dy:     int(rec.Dy),
				Units:  int(rec.Units),
			},
		})
	}

	return session, nil
}

func validateHeader(h *ReplayFileHeader) error {
	if h.Width < 1 || h.Height < 1 || h.Width > domain.MaxAxis || h.Height > domain.MaxAxis {
		return fmt.Errorf("invalid map size %dx%d (1..%d per axis)", h.Width, h.Height, domain.MaxAxis)
	}
	if h.SpawnCap < 0 || h.SightRadius < 0 || h.DMInterval < 0 {
		return fmt.Errorf("negative limits: spawn cap %d, sight %d, dm interval %d",
			h.SpawnCap, h.SightRadius, h.DMInterval)
	}
	return nil
}

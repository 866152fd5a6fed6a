package engine

import "time"

// Config хранит параметры запуска движка
type Config struct {
	// Seed - мастер-зерно. От него зависят все уровни:
	// зерно уровня = hash(Seed, имя мастера, номер уровня)
	Seed int64

	// Стартовый мастер подземелья и его тип (ключ в Registry)
	StartDM   string
	StartKind string

	// Размер уровней, которые строят мастера
	MapWidth  int
	MapHeight int

	// MaxTurns останавливает цикл после N вызовов Act. 0 - без ограничения.
	MaxTurns int

	// DMIntervalUnits - сколько VSlow-единиц мастер спит между обходами
	DMIntervalUnits int
	// SpawnCap - максимум монстров на уровне
	SpawnCap int
	// SightRadius - радиус обзора героя и монстров
	SightRadius int
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed:            time.Now().UnixNano(),
		StartDM:         "cave",
		StartKind:       "cave",
		MapWidth:        80,
		MapHeight:       80,
		MaxTurns:        0,
		DMIntervalUnits: 10,
		SpawnCap:        12,
		SightRadius:     8,
	}
}

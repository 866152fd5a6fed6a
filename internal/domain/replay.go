package domain

// ReplayCommand - это запись одной команды героя
type ReplayCommand struct {
	Tick    int     `json:"tick"` // Время героя в момент решения
	Command Command `json:"command"`
}

// ReplaySession - полная запись партии.
// Все уровни выводятся из зерна, поэтому настроек мира и команд героя достаточно,
// чтобы проиграть партию заново.
type ReplaySession struct {
	Seed        int64           `json:"seed"` // Зерно генерации мира и рандома
	DM          string          `json:"dm"`
	Kind        string          `json:"kind"`
	Width       int             `json:"width"`
	Height      int             `json:"height"`
	SpawnCap    int             `json:"spawnCap"`
	SightRadius int             `json:"sightRadius"`
	DMInterval  int             `json:"dmInterval"`
	Timestamp   int64           `json:"timestamp"`
	Commands    []ReplayCommand `json:"commands"`
}

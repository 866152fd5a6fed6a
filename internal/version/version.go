package version

import (
	"fmt"
	"time"
)

// Заполняются при сборке: -ldflags "-X roguecore/internal/version.BuildDate=2026-03-01 ..."
var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
	BuildTag    string
)

// Номер сборки - число дней от начала проекта
var buildEpoch = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

// VersionInfo describes the build metadata in structured form.
type VersionInfo struct {
	BuildID    int
	BuildDate  string
	Commit     string
	Tag        string
	Calculated bool
	Error      string
}

func CalculateBuildID() (int, error) {
	if BuildDate == "" {
		return 0, fmt.Errorf("BuildDate is empty")
	}

	t, err := time.ParseInLocation("2006-01-02", BuildDate, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid BuildDate %q: %w", BuildDate, err)
	}
	if t.Before(buildEpoch) {
		return 0, fmt.Errorf("BuildDate %s is before %s", BuildDate, buildEpoch.Format("2006-01-02"))
	}

	return int(t.Sub(buildEpoch).Hours() / 24), nil
}

// Info returns structured version information.
func Info() VersionInfo {
	info := VersionInfo{
		BuildDate: BuildDate,
		Commit:    BuildCommit,
		Tag:       BuildTag,
	}

	id, err := CalculateBuildID()
	if err != nil {
		info.Error = err.Error()
		return info
	}
	info.BuildID = id
	info.Calculated = true
	return info
}

// String returns the banner printed at startup.
func String() string {
	info := Info()
	tag := coalesce(info.Tag, "dev")

	if !info.Calculated {
		return fmt.Sprintf("roguecore %s (build unknown: %s)", tag, info.Error)
	}
	return fmt.Sprintf("roguecore %s build %d (%s) commit[%s]",
		tag, info.BuildID, info.BuildDate, coalesce(info.Commit, "unknown"))
}

func coalesce(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

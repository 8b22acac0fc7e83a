package version

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Заполняются через -ldflags "-X .../internal/version.BuildDate=2026-02-01"
var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
)

// buildEpoch - нулевой день счетчика сборок
var buildEpoch = time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)

// CalculateBuildID - число дней от эпохи до даты сборки
func CalculateBuildID() (int, error) {
	if BuildDate == "" {
		return 0, fmt.Errorf("BuildDate is empty")
	}

	t, err := time.ParseInLocation("2006-01-02", BuildDate, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid BuildDate %q: %w", BuildDate, err)
	}
	if t.Before(buildEpoch) {
		return 0, fmt.Errorf("BuildDate %s is before epoch", BuildDate)
	}

	// Обе даты в UTC, поэтому часы делятся на сутки без остатка
	return int(t.Sub(buildEpoch).Hours() / 24), nil
}

// Fields - метаданные сборки для стартового лога
func Fields() logrus.Fields {
	f := logrus.Fields{
		"build":  Short(),
		"commit": coalesce(BuildCommit, "unknown"),
	}
	if _, err := CalculateBuildID(); err != nil {
		f["build_error"] = err.Error()
	} else {
		f["build_date"] = BuildDate
	}
	return f
}

// String - сборка одной строкой
func String() string {
	id, err := CalculateBuildID()
	if err != nil {
		return fmt.Sprintf("Build unknown (%s)", err)
	}
	return fmt.Sprintf("Build %d (%s) commit[%s]", id, BuildDate, coalesce(BuildCommit, "unknown"))
}

// Short возвращает "b<id>" или "dev". Идет в имена файлов журнала.
func Short() string {
	id, err := CalculateBuildID()
	if err != nil {
		return "dev"
	}
	return fmt.Sprintf("b%d", id)
}

func coalesce(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

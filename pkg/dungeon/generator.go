package dungeon

import (
	"math/rand"

	"github.com/jerryeechan/poachers/internal/config"
	"github.com/jerryeechan/poachers/internal/domain"
	"github.com/jerryeechan/poachers/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Generate создает новый сектор.
// Генератор расходуется в фиксированном порядке: пустоты построчно, безопасный старт,
// выжившие, тасование колоды, параметры клеток, тасование рельсов.
func Generate(sector, san int, rules *config.Rules, rng *rand.Rand) domain.Grid {
	grid := NewSector(sector, san, rules, rng).
		WithSpine().
		WithVoids().
		WithBridges().
		WithSafeStart().
		PlaceNPCs().
		DealDeck().
		BreakTracks().
		Build()

	logger.Log.WithFields(logrus.Fields{
		"component": "dungeon_generator",
		"sector":    sector,
		"san":       san,
		"voids":     grid.Count(func(t domain.Tile) bool { return t.Kind == domain.TileVoid }),
		"enemies":   grid.Count(func(t domain.Tile) bool { return t.Kind == domain.TileEnemy }),
	}).Info("Sector generated.")

	return grid
}

// RollWeather - погода нового сектора, равновероятно
func RollWeather(rng *rand.Rand) domain.Weather {
	all := domain.AllWeather()
	return all[rng.Intn(len(all))]
}

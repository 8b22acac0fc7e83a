package systems

import (
	"github.com/jerryeechan/poachers/internal/config"
	"github.com/jerryeechan/poachers/internal/domain"
)

// ScoreLine - строка итоговой таблицы
type ScoreLine struct {
	Label      string `json:"label"`
	Value      int    `json:"value"`
	Multiplier int    `json:"multiplier"`
}

func (l ScoreLine) Points() int {
	return l.Value * l.Multiplier
}

// Score - итог забега с разбивкой
type Score struct {
	Total     int         `json:"total"`
	Breakdown []ScoreLine `json:"breakdown"`
}

// CalculateFinalScore сворачивает статистику в очки
func CalculateFinalScore(r *config.Rules, stats domain.Stats, gold int) Score {
	sc := r.Scoring
	breakdown := []ScoreLine{
		{Label: "Пройдено секторов", Value: stats.SectorsPassed, Multiplier: sc.PerSector},
		{Label: "Добыто дерева", Value: stats.TotalWood, Multiplier: sc.PerWood},
		{Label: "Добыто камня", Value: stats.TotalStone, Multiplier: sc.PerStone},
		{Label: "Побеждено врагов", Value: stats.EnemiesDefeated, Multiplier: sc.PerEnemy},
		{Label: "Создано предметов", Value: stats.ItemsCrafted, Multiplier: sc.PerCraft},
		{Label: "Золото", Value: gold, Multiplier: sc.PerGold},
	}

	total := 0
	for _, l := range breakdown {
		total += l.Points()
	}
	return Score{Total: total, Breakdown: breakdown}
}

package systems

import (
	"fmt"
	"math/rand"

	"github.com/jerryeechan/poachers/internal/config"
	"github.com/jerryeechan/poachers/internal/domain"
	"github.com/jerryeechan/poachers/pkg/logger"

	"github.com/sirupsen/logrus"
)

// RollEnemy бросает атаку и здоровье врага для уровня угрозы level.
// Порядок бросков фиксирован: сначала атака, затем здоровье.
func RollEnemy(rng *rand.Rand, r *config.Rules, level int) (attack, hp int) {
	attack = r.Enemies.Attack.Roll(rng) + level*r.Enemies.AttackPerLevel
	hp = r.Enemies.HP.Roll(rng) + level*r.Enemies.HPPerLevel
	return attack, hp
}

// PlaceEnemy превращает клетку во врага с заданными параметрами
func PlaceEnemy(t *domain.Tile, attack, hp, interval int) {
	t.Kind = domain.TileEnemy
	t.Cleared = false
	t.ScavengeLeft = 0
	t.Attack = attack
	t.HP = hp
	t.MaxHP = hp
	t.AttackProgress = 0
	t.MaxAttackProgress = interval
}

// ActiveEnemyDamage - суммарная атака всех видимых живых врагов
func ActiveEnemyDamage(g domain.Grid) (damage, count int) {
	for _, t := range g.Tiles {
		if t.IsActiveEnemy() {
			damage += t.Attack
			count++
		}
	}
	return damage, count
}

// TickEnemyAttacks продвигает таймеры атак раскрытых врагов на minutes.
// Враг, досчитавший до интервала, бьет на свою атаку; остаток времени сохраняется.
func TickEnemyAttacks(g domain.Grid, minutes, defaultInterval int) (domain.Grid, int, []domain.LogLine) {
	if minutes <= 0 {
		return g, 0, nil
	}
	out := g.Clone()
	damage := 0
	var logs []domain.LogLine

	for i := range out.Tiles {
		t := &out.Tiles[i]
		if !t.IsActiveEnemy() {
			continue
		}
		interval := t.MaxAttackProgress
		if interval <= 0 {
			interval = defaultInterval
		}
		progress := t.AttackProgress + minutes
		if progress >= interval {
			damage += t.Attack
			logs = append(logs, domain.Line(domain.LogWarning,
				fmt.Sprintf("Враг в (%d, %d) атакует! (-%d HP)", t.X, t.Y, t.Attack)))
			progress %= interval
		}
		t.AttackProgress = progress
	}

	if damage > 0 {
		logger.Log.WithFields(logrus.Fields{
			"component": "enemy_system",
			"minutes":   minutes,
			"damage":    damage,
		}).Debug("Passive enemy attacks resolved.")
	}
	return out, damage, logs
}

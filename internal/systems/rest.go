package systems

import (
	"fmt"
	"math/rand"

	"github.com/jerryeechan/poachers/internal/config"
	"github.com/jerryeechan/poachers/internal/domain"
	"github.com/jerryeechan/poachers/pkg/logger"

	"github.com/sirupsen/logrus"
)

// RollEncounter бросает 1+san/SanPerDie костей. Каждые SumPerSpawn очков суммы - один враг.
func RollEncounter(rng *rand.Rand, r *config.Rules, san int) domain.Encounter {
	count := 1 + max(0, san)/r.Rest.SanPerDie
	enc := domain.Encounter{Dice: make([]int, count)}
	for i := range enc.Dice {
		enc.Dice[i] = rng.Intn(r.Rest.DiceSides) + 1
		enc.Sum += enc.Dice[i]
	}
	enc.Spawn = enc.Sum / r.Rest.SumPerSpawn
	return enc
}

// spawnCandidates - расчищенная земля, на которой могут появиться враги
func spawnCandidates(g domain.Grid) []int {
	var out []int
	for i, t := range g.Tiles {
		if t.Kind == domain.TileSearch && t.Cleared {
			out = append(out, i)
		}
	}
	return out
}

// PrepareRest строит отчет об отдыхе, ничего не меняя в состоянии.
// Порядок бросков: кости, выбор клеток без повторов, атака и здоровье каждого врага.
func PrepareRest(rng *rand.Rand, r *config.Rules, s *domain.GameState) domain.RestReport {
	enc := RollEncounter(rng, r, s.Stats.San)

	candidates := spawnCandidates(s.Grid)
	n := min(enc.Spawn, len(candidates))
	// Частичное тасование Фишера-Йетса: первые n элементов - выборка без повторов
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}

	level := r.EnemyLevel(s.Sector, s.Stats.San)
	spawns := make([]domain.SpawnPlan, 0, n)
	for _, idx := range candidates[:n] {
		atk, hp := RollEnemy(rng, r, level)
		t := s.Grid.Tiles[idx]
		spawns = append(spawns, domain.SpawnPlan{X: t.X, Y: t.Y, Attack: atk, HP: hp})
	}

	damage, count := ActiveEnemyDamage(s.Grid)
	rep := domain.RestReport{
		Heal:           0,
		StaminaRestore: max(0, r.MaxStamina(s)-s.Stamina),
		Damage:         damage,
		EnemiesCount:   count,
		PressureLoss:   min(s.Pressure, r.Rest.PressureDecay),
		Encounter:      enc,
		Spawns:         spawns,
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "rest_system",
		"dice":      enc.Dice,
		"spawn":     len(spawns),
		"damage":    damage,
	}).Debug("Rest prepared.")

	return rep
}

// ApplyRest применяет подтвержденный отчет одним шагом и возвращает новое состояние.
// Клетки, которые перестали быть расчищенной землей, пропускаются.
func ApplyRest(r *config.Rules, s domain.GameState, rep domain.RestReport) (domain.GameState, []domain.LogLine) {
	var logs []domain.LogLine

	s.Stamina = r.MaxStamina(&s)
	s.HP -= rep.Damage
	s.Pressure = max(0, s.Pressure-rep.PressureLoss)
	s.Day++
	s.Minutes = r.Clock.DayStart
	s.Stats.San += r.Rest.SanPerRest

	grid := s.Grid.Clone()
	spawned := 0
	for _, sp := range rep.Spawns {
		idx := grid.Index(sp.X, sp.Y)
		if idx < 0 {
			continue
		}
		t := &grid.Tiles[idx]
		if t.Kind != domain.TileSearch || !t.Cleared {
			continue
		}
		PlaceEnemy(t, sp.Attack, sp.HP, r.Enemies.PassiveInterval)
		t.Revealed = true
		t.Peeked = false
		spawned++
	}
	s.Grid = UpdatePeekStatus(grid)

	if rep.Damage > 0 {
		logs = append(logs, domain.Line(domain.LogCombat,
			fmt.Sprintf("Ночью враги атаковали: -%d HP (врагов: %d).", rep.Damage, rep.EnemiesCount)))
	}
	if spawned > 0 {
		logs = append(logs, domain.Line(domain.LogWarning,
			fmt.Sprintf("За ночь появились новые враги: %d.", spawned)))
	}
	logs = append(logs, domain.Line(domain.LogInfo, fmt.Sprintf("День %d. Вы отдохнули.", s.Day)))

	logger.Log.WithFields(logrus.Fields{
		"component": "rest_system",
		"day":       s.Day,
		"damage":    rep.Damage,
		"spawned":   spawned,
		"san":       s.Stats.San,
	}).Info("Rest applied.")

	return s, logs
}

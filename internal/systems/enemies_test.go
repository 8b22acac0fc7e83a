package systems

import (
	"testing"

	"github.com/jerryeechan/poachers/internal/domain"
)

func TestTickEnemyAttacks(t *testing.T) {
	g := blankGrid(3)
	active := revealedTile(&g, 0, 0, domain.TileEnemy)
	active.Attack = 3
	active.AttackProgress = 100
	active.MaxAttackProgress = 120

	hidden := &g.Tiles[g.Index(2, 2)]
	hidden.Kind = domain.TileEnemy
	hidden.Attack = 9

	out, damage, logs := TickEnemyAttacks(g, 30, 120)

	if damage != 3 {
		t.Errorf("damage = %d, want 3", damage)
	}
	if len(logs) != 1 {
		t.Errorf("expected one log line, got %d", len(logs))
	}
	if got := out.Tiles[0].AttackProgress; got != 10 {
		t.Errorf("progress = %d, want overflow 10", got)
	}
	if out.Tiles[g.Index(2, 2)].AttackProgress != 0 {
		t.Error("hidden enemy must not advance")
	}
	if g.Tiles[0].AttackProgress != 100 {
		t.Error("input grid was mutated")
	}
}

func TestTickEnemyAttacks_DefaultInterval(t *testing.T) {
	g := blankGrid(2)
	e := revealedTile(&g, 1, 1, domain.TileEnemy)
	e.Attack = 2

	_, damage, _ := TickEnemyAttacks(g, 50, 60)
	if damage != 0 {
		t.Errorf("damage = %d before interval", damage)
	}
	_, damage, _ = TickEnemyAttacks(g, 60, 60)
	if damage != 2 {
		t.Errorf("damage = %d, want 2", damage)
	}
}

func TestRollEnemy_ScalesWithLevel(t *testing.T) {
	r := testRules()
	for level := 0; level < 4; level++ {
		atk, hp := RollEnemy(newRng(int64(level)), r, level)
		minAtk := r.Enemies.Attack.Min + level*r.Enemies.AttackPerLevel
		minHP := r.Enemies.HP.Min + level*r.Enemies.HPPerLevel
		if atk < minAtk || atk > r.Enemies.Attack.Max()+level*r.Enemies.AttackPerLevel {
			t.Errorf("level %d: attack %d out of range", level, atk)
		}
		if hp < minHP || hp > r.Enemies.HP.Max()+level*r.Enemies.HPPerLevel {
			t.Errorf("level %d: hp %d out of range", level, hp)
		}
	}
}

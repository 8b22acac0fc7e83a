package config

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/jerryeechan/poachers/internal/domain"
)

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default rules invalid: %v", err)
	}
}

func TestParse_OverlaysDefaults(t *testing.T) {
	data := []byte(`
costs:
  base: 6
  windy: 9
items:
  WOOD:
    max_stack: 40
`)
	rules, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if rules.Costs.Base != 6 || rules.Costs.Windy != 9 {
		t.Errorf("costs not applied: %+v", rules.Costs)
	}
	if rules.Items[domain.ItemWood].MaxStack != 40 {
		t.Errorf("wood max stack = %d, want 40", rules.Items[domain.ItemWood].MaxStack)
	}
	// Незатронутые значения остаются встроенными
	if rules.Items[domain.ItemStone].MaxStack != 20 || rules.Grid.Size != 8 {
		t.Error("untouched defaults were lost")
	}
}

func TestParse_FailsFast(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown tile kind", "exploration:\n  clicks:\n    LAVA: 2\n", "LAVA"},
		{"unknown item kind", "boiler:\n  fuel:\n    COAL: 3\n", "COAL"},
		{"unknown field", "costs:\n  teleport: 1\n", "teleport"},
		{"bad stack", "items:\n  KEY:\n    max_stack: 0\n", "items.KEY"},
		{"windy cheaper", "costs:\n  windy: 2\n", "windy"},
		{"bad probability", "exploration:\n  berry_chance: 1.5\n", "berry_chance"},
		{"repeated recipe input", "recipes:\n  - id: twin\n    inputs:\n      - {item: WOOD, count: 1}\n      - {item: WOOD, count: 2}\n    output: {item: CHARCOAL, count: 1}\n", "duplicate input"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestMarshal_ParsesBack(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), "PICKAXE") {
		t.Error("item kinds should be written by name")
	}
	if _, err := Parse(data); err != nil {
		t.Fatalf("dumped rules do not parse: %v", err)
	}
}

func TestRules_Derived(t *testing.T) {
	r := Default()
	state := &domain.GameState{Rescued: []domain.NPC{
		{Buff: domain.BuffStamina}, {Buff: domain.BuffStamina}, {Buff: domain.BuffAttack},
	}}

	if got := r.MaxStamina(state); got != 70 {
		t.Errorf("MaxStamina = %d, want 70", got)
	}
	if got := r.MaxHP(state); got != 20 {
		t.Errorf("MaxHP = %d, want 20", got)
	}
	if got := r.Attack(state); got != 3 {
		t.Errorf("Attack = %d, want 3", got)
	}
	if got := r.TargetPressure(3); got != 200 {
		t.Errorf("TargetPressure(3) = %d, want 200", got)
	}

	levels := []struct{ sector, san, want int }{
		{1, 0, 0},
		{2, 0, 0},
		{3, 0, 1},
		{3, 250, 3},
	}
	for _, tt := range levels {
		if got := r.EnemyLevel(tt.sector, tt.san); got != tt.want {
			t.Errorf("EnemyLevel(%d,%d) = %d, want %d", tt.sector, tt.san, got, tt.want)
		}
	}
}

func TestRange_RollBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	r := Range{Min: 2, Spread: 3}
	for i := 0; i < 200; i++ {
		v := r.Roll(rng)
		if v < 2 || v > r.Max() {
			t.Fatalf("roll %d outside [2,%d]", v, r.Max())
		}
	}
	if (Range{Min: 4}).Roll(nil) != 4 {
		t.Error("zero spread must not touch the generator")
	}
}

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jerryeechan/poachers/internal/domain"

	"gopkg.in/yaml.v3"
)

// Load читает YAML-файл баланса поверх встроенных значений и проверяет результат.
// Пустой путь означает встроенный баланс.
func Load(path string) (*Rules, error) {
	if path == "" {
		rules := Default()
		return rules, rules.Validate()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules %s: %w", path, err)
	}
	rules, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("rules %s: %w", path, err)
	}
	return rules, nil
}

// Parse разбирает YAML поверх Default. Неизвестные ключи считаются ошибкой.
func Parse(data []byte) (*Rules, error) {
	rules := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(rules); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode: %w", err)
	}

	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return rules, nil
}

// Marshal сериализует правила в YAML (для rulesctl dump)
func Marshal(r *Rules) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Validate проверяет целостность баланса. Ошибки собираются все сразу,
// чтобы при старте было видно каждую проблему файла.
func (r *Rules) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	g := r.Grid
	if g.Size < 5 {
		fail("grid.size must be at least 5, got %d", g.Size)
	}
	if g.SpineRow < 1 || g.SpineRow >= g.Size-1 {
		fail("grid.spine_row %d must leave a row above and below", g.SpineRow)
	}
	if g.CenterX < 1 || g.CenterX >= g.Size-1 {
		fail("grid.center_x %d must leave room for the cargo car and locomotive", g.CenterX)
	}

	if r.Vitals.MaxStamina <= 0 || r.Vitals.MaxHP <= 0 {
		fail("vitals: maxima must be positive")
	}
	if r.Costs.Base <= 0 || r.Costs.Windy < r.Costs.Base {
		fail("costs: base must be positive and windy >= base")
	}
	if r.Costs.HarvestFloor <= 0 || r.Costs.HarvestInitial < r.Costs.HarvestFloor || r.Costs.HarvestDecay < 0 {
		fail("costs: harvest curve must start above a positive floor and never increase")
	}
	if r.Capacity.InventorySlots <= 0 || r.Capacity.CargoSlots <= 0 {
		fail("capacity: slot counts must be positive")
	}

	for _, kind := range domain.AllItemKinds() {
		spec, ok := r.Items[kind]
		if !ok {
			fail("items: missing entry for %s", kind)
			continue
		}
		if spec.MaxStack <= 0 {
			fail("items.%s: max_stack must be positive", kind)
		}
		if spec.Durable && spec.MaxDurability <= 0 {
			fail("items.%s: durable item needs max_durability", kind)
		}
	}

	for tile, tool := range r.Tools {
		if _, ok := r.Items[tool]; !ok {
			fail("tools.%s: unknown tool %s", tile, tool)
		}
	}

	seen := make(map[string]bool)
	for i, rec := range r.Recipes {
		if rec.ID == "" {
			fail("recipes[%d]: id is required", i)
		}
		if seen[rec.ID] {
			fail("recipes[%d]: duplicate id %q", i, rec.ID)
		}
		seen[rec.ID] = true
		if _, ok := r.Items[rec.Output.Item]; !ok || rec.Output.Count <= 0 {
			fail("recipes.%s: invalid output", rec.ID)
		}
		if r.Items[rec.Output.Item].Durable && rec.Durability <= 0 {
			fail("recipes.%s: tool output needs durability", rec.ID)
		}
		if len(rec.Inputs) == 0 {
			fail("recipes.%s: no inputs", rec.ID)
		}
		inputs := make(map[domain.ItemKind]bool, len(rec.Inputs))
		for _, in := range rec.Inputs {
			if _, ok := r.Items[in.Item]; !ok || in.Count <= 0 {
				fail("recipes.%s: invalid input %s x%d", rec.ID, in.Item, in.Count)
			}
			if inputs[in.Item] {
				fail("recipes.%s: duplicate input %s", rec.ID, in.Item)
			}
			inputs[in.Item] = true
		}
	}

	for _, rg := range []struct {
		name string
		r    Range
	}{
		{"loot.tree", r.Loot.Tree},
		{"loot.rock", r.Loot.Rock},
		{"enemies.attack", r.Enemies.Attack},
		{"enemies.hp", r.Enemies.HP},
		{"enemies.loot_wood", r.Enemies.LootWood},
		{"enemies.loot_stone", r.Enemies.LootStone},
		{"enemies.gold", r.Enemies.Gold},
		{"map.tree_charges", r.Map.TreeCharges},
		{"map.ground_charges", r.Map.GroundCharges},
		{"map.safe_ground_charges", r.Map.SafeGroundCharges},
		{"map.npc.rescue_turns", r.Map.NPC.RescueTurns},
		{"exploration.berry", r.Exploration.Berry},
	} {
		if rg.r.Min < 0 || rg.r.Spread < 0 {
			fail("%s: range must be non-negative", rg.name)
		}
	}
	if r.Enemies.HP.Min <= 0 {
		fail("enemies.hp.min must be positive")
	}
	if r.Map.NPC.RescueTurns.Min <= 0 {
		fail("map.npc.rescue_turns.min must be positive")
	}
	if r.Map.Tracks.RepairClicks <= 0 {
		fail("map.tracks.repair_clicks must be positive")
	}

	for _, p := range []struct {
		name string
		v    float64
	}{
		{"loot.scavenge_wood_chance", r.Loot.ScavengeWoodChance},
		{"loot.scavenge_stone_chance", r.Loot.ScavengeStoneChance},
		{"enemies.key_chance", r.Enemies.KeyChance},
		{"map.deck.tree_share", r.Map.Deck.TreeShare},
		{"map.deck.rock_share", r.Map.Deck.RockShare},
		{"map.deck.enemy_share", r.Map.Deck.EnemyShare},
		{"exploration.berry_chance", r.Exploration.BerryChance},
		{"boiler.stamina_retain", r.Boiler.StaminaRetain},
	} {
		if p.v < 0 || p.v > 1 {
			fail("%s must be within [0,1], got %v", p.name, p.v)
		}
	}
	if r.Map.Deck.TreeShare+r.Map.Deck.RockShare+r.Map.Deck.EnemyShare > 1 {
		fail("map.deck: shares sum above 1")
	}

	if r.Exploration.DefaultClicks <= 0 {
		fail("exploration.default_clicks must be positive")
	}
	for kind, n := range r.Exploration.Clicks {
		if n <= 0 {
			fail("exploration.clicks.%s must be positive", kind)
		}
	}
	for kind, reward := range r.Exploration.Rewards {
		if _, ok := r.Items[reward.Item]; !ok || reward.Count <= 0 {
			fail("exploration.rewards.%s: invalid reward", kind)
		}
	}
	for kind := range r.Consumables {
		if _, ok := r.Items[kind]; !ok {
			fail("consumables.%s: unknown item", kind)
		}
	}

	if r.Rest.DiceSides <= 0 || r.Rest.SanPerDie <= 0 || r.Rest.SumPerSpawn <= 0 {
		fail("rest: dice parameters must be positive")
	}
	if r.Clock.MinutesPerDay <= 0 || r.Clock.DayStart < 0 || r.Clock.DayStart >= r.Clock.MinutesPerDay {
		fail("clock: day_start must fall inside the day")
	}
	if r.Enemies.PassiveInterval <= 0 {
		fail("enemies.passive_interval must be positive")
	}
	if r.Boiler.PressureBase <= 0 {
		fail("boiler.pressure_base must be positive")
	}
	for kind, gain := range r.Boiler.Fuel {
		if _, ok := r.Items[kind]; !ok || gain <= 0 {
			fail("boiler.fuel.%s: invalid fuel", kind)
		}
	}

	return errors.Join(errs...)
}

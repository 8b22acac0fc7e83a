package config

import (
	"math/rand"

	"github.com/jerryeechan/poachers/internal/domain"
)

// Range - случайная величина Min + [0, Spread).
// При Spread <= 0 бросок не делается и генератор не расходуется.
type Range struct {
	Min    int `yaml:"min" json:"min"`
	Spread int `yaml:"spread" json:"spread"`
}

func (r Range) Roll(rng *rand.Rand) int {
	if r.Spread <= 0 {
		return r.Min
	}
	return r.Min + rng.Intn(r.Spread)
}

// Max - наибольшее значение, которое может выпасть
func (r Range) Max() int {
	if r.Spread <= 0 {
		return r.Min
	}
	return r.Min + r.Spread - 1
}

// Rules - весь баланс игры. Ядро не содержит магических чисел: все берется отсюда.
type Rules struct {
	Grid        GridRules                           `yaml:"grid"`
	Vitals      VitalRules                          `yaml:"vitals"`
	Costs       CostRules                           `yaml:"costs"`
	Capacity    CapacityRules                       `yaml:"capacity"`
	Items       domain.ItemSpecs                    `yaml:"items"`
	Tools       map[domain.TileKind]domain.ItemKind `yaml:"tools"`
	Recipes     []domain.Recipe                     `yaml:"recipes"`
	Loot        LootRules                           `yaml:"loot"`
	Enemies     EnemyRules                          `yaml:"enemies"`
	Map         MapRules                            `yaml:"map"`
	Exploration ExplorationRules                    `yaml:"exploration"`
	Consumables map[domain.ItemKind]Consumable      `yaml:"consumables"`
	Rest        RestRules                           `yaml:"rest"`
	Clock       ClockRules                          `yaml:"clock"`
	Boiler      BoilerRules                         `yaml:"boiler"`
	Scoring     ScoringRules                        `yaml:"scoring"`
}

// GridRules - размер сектора и положение поезда
type GridRules struct {
	Size     int `yaml:"size"`
	SpineRow int `yaml:"spine_row"`
	CenterX  int `yaml:"center_x"` // вагон-мастерская, слева грузовой, справа локомотив
}

type VitalRules struct {
	MaxStamina     int `yaml:"max_stamina"`
	MaxHP          int `yaml:"max_hp"`
	StaminaPerBuff int `yaml:"stamina_per_buff"`
	HealthPerBuff  int `yaml:"health_per_buff"`
	BaseAttack     int `yaml:"base_attack"`
	AttackPerBuff  int `yaml:"attack_per_buff"`
	BowDamage      int `yaml:"bow_damage"`
}

// CostRules - стоимость действий в выносливости
type CostRules struct {
	Base  int `yaml:"base"`
	Windy int `yaml:"windy"`
	// Добыча на земле и деревьях дешевеет с каждым разом, но не ниже HarvestFloor
	HarvestInitial int `yaml:"harvest_initial"`
	HarvestDecay   int `yaml:"harvest_decay"`
	HarvestFloor   int `yaml:"harvest_floor"`
	Enemy          int `yaml:"enemy"`
}

type CapacityRules struct {
	InventorySlots        int `yaml:"inventory_slots"`
	CargoSlots            int `yaml:"cargo_slots"`
	CargoSlotsPerCarriage int `yaml:"cargo_slots_per_carriage"`
	Passengers            int `yaml:"passengers"`
	PassengersPerCarriage int `yaml:"passengers_per_carriage"`
}

type LootRules struct {
	Tree Range `yaml:"tree"`
	Rock Range `yaml:"rock"`
	// Подбор на расчищенной земле: бросок < WoodChance - дерево, < StoneChance - камень
	ScavengeWoodChance  float64 `yaml:"scavenge_wood_chance"`
	ScavengeStoneChance float64 `yaml:"scavenge_stone_chance"`
}

type EnemyRules struct {
	Attack            Range   `yaml:"attack"`
	AttackPerLevel    int     `yaml:"attack_per_level"`
	HP                Range   `yaml:"hp"`
	HPPerLevel        int     `yaml:"hp_per_level"`
	LootWood          Range   `yaml:"loot_wood"`
	LootStone         Range   `yaml:"loot_stone"`
	Gold              Range   `yaml:"gold"`
	KeyChance         float64 `yaml:"key_chance"`
	KeyChancePerLevel float64 `yaml:"key_chance_per_level"`
	LevelSectorStep   int     `yaml:"level_sector_step"`
	LevelSanStep      int     `yaml:"level_san_step"`
	PassiveInterval   int     `yaml:"passive_interval"` // минут между атаками раскрытого врага
}

type MapRules struct {
	SafeZoneOffset    int        `yaml:"safe_zone_offset"`
	VoidThreshold     int        `yaml:"void_threshold"`
	VoidMultiplier    float64    `yaml:"void_multiplier"`
	TreeCharges       Range      `yaml:"tree_charges"`
	GroundCharges     Range      `yaml:"ground_charges"`
	SafeGroundCharges Range      `yaml:"safe_ground_charges"`
	Deck              DeckRules  `yaml:"deck"`
	NPC               NPCRules   `yaml:"npc"`
	Tracks            TrackRules `yaml:"tracks"`
}

type DeckRules struct {
	TreeShare  float64 `yaml:"tree_share"`
	RockShare  float64 `yaml:"rock_share"`
	EnemyShare float64 `yaml:"enemy_share"`
	MinTrees   int     `yaml:"min_trees"`
	MinRocks   int     `yaml:"min_rocks"`
	MinEnemies int     `yaml:"min_enemies"`
}

type NPCRules struct {
	Count       int   `yaml:"count"`
	MinDistance int   `yaml:"min_distance"`
	RescueTurns Range `yaml:"rescue_turns"`
}

type TrackRules struct {
	BrokenBase      int `yaml:"broken_base"`
	BrokenPerSector int `yaml:"broken_per_sector"`
	RepairWood      int `yaml:"repair_wood"`
	RepairStone     int `yaml:"repair_stone"`
	RepairClicks    int `yaml:"repair_clicks"`
}

type ExplorationRules struct {
	DefaultClicks int                                   `yaml:"default_clicks"`
	Clicks        map[domain.TileKind]int               `yaml:"clicks"`
	Rewards       map[domain.TileKind]domain.Ingredient `yaml:"rewards"`
	BerryChance   float64                               `yaml:"berry_chance"`
	Berry         Range                                 `yaml:"berry"`
}

// Consumable - эффект съедаемого предмета
type Consumable struct {
	Heal    int `yaml:"heal"`
	Stamina int `yaml:"stamina"`
}

type RestRules struct {
	HealAmount    int `yaml:"heal_amount"` // зарезервировано, отдых не лечит
	PressureDecay int `yaml:"pressure_decay"`
	SanPerRest    int `yaml:"san_per_rest"`
	DiceSides     int `yaml:"dice_sides"`
	SanPerDie     int `yaml:"san_per_die"`
	SumPerSpawn   int `yaml:"sum_per_spawn"`
}

type ClockRules struct {
	MinutesPerAction int `yaml:"minutes_per_action"`
	DayStart         int `yaml:"day_start"`
	MinutesPerDay    int `yaml:"minutes_per_day"`
}

type BoilerRules struct {
	PressureBase      int                     `yaml:"pressure_base"`
	PressurePerSector int                     `yaml:"pressure_per_sector"`
	Fuel              map[domain.ItemKind]int `yaml:"fuel"`
	StaminaRetain     float64                 `yaml:"stamina_retain"`
}

type ScoringRules struct {
	PerSector int `yaml:"per_sector"`
	PerWood   int `yaml:"per_wood"`
	PerStone  int `yaml:"per_stone"`
	PerEnemy  int `yaml:"per_enemy"`
	PerCraft  int `yaml:"per_craft"`
	PerGold   int `yaml:"per_gold"`
}

// --- Производные величины ---

func (r *Rules) Ledger() domain.Ledger {
	return domain.NewLedger(r.Items)
}

// MaxStamina - максимум выносливости с учетом спасенных
func (r *Rules) MaxStamina(s *domain.GameState) int {
	return r.Vitals.MaxStamina + s.BuffCount(domain.BuffStamina)*r.Vitals.StaminaPerBuff
}

func (r *Rules) MaxHP(s *domain.GameState) int {
	return r.Vitals.MaxHP + s.BuffCount(domain.BuffHealth)*r.Vitals.HealthPerBuff
}

// Attack - урон в ближнем бою
func (r *Rules) Attack(s *domain.GameState) int {
	return r.Vitals.BaseAttack + s.BuffCount(domain.BuffAttack)*r.Vitals.AttackPerBuff
}

func (r *Rules) PassengerCapacity(carriageLevel int) int {
	return r.Capacity.Passengers + carriageLevel*r.Capacity.PassengersPerCarriage
}

func (r *Rules) CargoSlots(carriageLevel int) int {
	return r.Capacity.CargoSlots + carriageLevel*r.Capacity.CargoSlotsPerCarriage
}

// TargetPressure - давление, нужное для отправления с сектора
func (r *Rules) TargetPressure(sector int) int {
	return r.Boiler.PressureBase + (sector-1)*r.Boiler.PressurePerSector
}

// EnemyLevel - уровень угрозы: растет со временем в пути и с безумием
func (r *Rules) EnemyLevel(sector, san int) int {
	level := 0
	if r.Enemies.LevelSectorStep > 0 && sector > 1 {
		level += (sector - 1) / r.Enemies.LevelSectorStep
	}
	if r.Enemies.LevelSanStep > 0 && san > 0 {
		level += san / r.Enemies.LevelSanStep
	}
	return level
}

// ExplorationClicks - сколько кликов нужно для раскрытия клетки типа kind
func (r *Rules) ExplorationClicks(kind domain.TileKind) int {
	if n, ok := r.Exploration.Clicks[kind]; ok {
		return n
	}
	return r.Exploration.DefaultClicks
}

// ToolFor - инструмент, нужный для работы с клеткой
func (r *Rules) ToolFor(kind domain.TileKind) (domain.ItemKind, bool) {
	tool, ok := r.Tools[kind]
	return tool, ok
}

func (r *Rules) Recipe(id string) (domain.Recipe, bool) {
	for _, rec := range r.Recipes {
		if rec.ID == id {
			return rec, true
		}
	}
	return domain.Recipe{}, false
}

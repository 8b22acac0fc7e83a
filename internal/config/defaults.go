package config

import "github.com/jerryeechan/poachers/internal/domain"

// Default возвращает встроенный баланс.
// Каждый вызов создает новые карты, поэтому результат можно безопасно править.
func Default() *Rules {
	return &Rules{
		Grid: GridRules{Size: 8, SpineRow: 3, CenterX: 3},
		Vitals: VitalRules{
			MaxStamina:     50,
			MaxHP:          20,
			StaminaPerBuff: 10,
			HealthPerBuff:  5,
			BaseAttack:     2,
			AttackPerBuff:  1,
			BowDamage:      5,
		},
		Costs: CostRules{
			Base:           8,
			Windy:          12,
			HarvestInitial: 10,
			HarvestDecay:   2,
			HarvestFloor:   4,
			Enemy:          10,
		},
		Capacity: CapacityRules{
			InventorySlots:        8,
			CargoSlots:            6,
			CargoSlotsPerCarriage: 2,
			Passengers:            3,
			PassengersPerCarriage: 1,
		},
		Items: domain.ItemSpecs{
			domain.ItemWood:     {MaxStack: 20},
			domain.ItemStone:    {MaxStack: 20},
			domain.ItemCharcoal: {MaxStack: 10},
			domain.ItemAxe:      {MaxStack: 1, Durable: true, MaxDurability: 5},
			domain.ItemPickaxe:  {MaxStack: 1, Durable: true, MaxDurability: 5},
			domain.ItemBow:      {MaxStack: 1, Durable: true, MaxDurability: 5},
			domain.ItemKey:      {MaxStack: 5},
			domain.ItemBerry:    {MaxStack: 10},
		},
		Tools: map[domain.TileKind]domain.ItemKind{
			domain.TileTree:  domain.ItemAxe,
			domain.TileRock:  domain.ItemPickaxe,
			domain.TileEnemy: domain.ItemBow,
		},
		Recipes: []domain.Recipe{
			{
				ID:     "charcoal",
				Inputs: []domain.Ingredient{{Item: domain.ItemWood, Count: 3}},
				Output: domain.Ingredient{Item: domain.ItemCharcoal, Count: 1},
			},
			{
				ID:          "axe",
				Inputs:      []domain.Ingredient{{Item: domain.ItemWood, Count: 1}, {Item: domain.ItemStone, Count: 1}},
				Output:      domain.Ingredient{Item: domain.ItemAxe, Count: 1},
				Durability:  5,
				StaminaCost: 5,
			},
			{
				ID:          "pickaxe",
				Inputs:      []domain.Ingredient{{Item: domain.ItemWood, Count: 5}, {Item: domain.ItemStone, Count: 1}},
				Output:      domain.Ingredient{Item: domain.ItemPickaxe, Count: 1},
				Durability:  5,
				StaminaCost: 5,
			},
			{
				ID:          "bow",
				Inputs:      []domain.Ingredient{{Item: domain.ItemWood, Count: 10}, {Item: domain.ItemStone, Count: 5}},
				Output:      domain.Ingredient{Item: domain.ItemBow, Count: 1},
				Durability:  5,
				StaminaCost: 10,
			},
		},
		Loot: LootRules{
			Tree:                Range{Min: 2, Spread: 3},
			Rock:                Range{Min: 3, Spread: 2},
			ScavengeWoodChance:  0.45,
			ScavengeStoneChance: 0.80,
		},
		Enemies: EnemyRules{
			Attack:            Range{Min: 2, Spread: 3},
			AttackPerLevel:    1,
			HP:                Range{Min: 3, Spread: 3},
			HPPerLevel:        2,
			LootWood:          Range{Min: 1, Spread: 3},
			LootStone:         Range{Min: 1, Spread: 2},
			Gold:              Range{Min: 1, Spread: 5},
			KeyChance:         0.05,
			KeyChancePerLevel: 0.02,
			LevelSectorStep:   2,
			LevelSanStep:      100,
			PassiveInterval:   120,
		},
		Map: MapRules{
			SafeZoneOffset:    1,
			VoidThreshold:     3,
			VoidMultiplier:    0.4,
			TreeCharges:       Range{Min: 2, Spread: 3},
			GroundCharges:     Range{Min: 1, Spread: 3},
			SafeGroundCharges: Range{Min: 2, Spread: 2},
			Deck: DeckRules{
				TreeShare:  0.25,
				RockShare:  0.20,
				EnemyShare: 0.15,
				MinTrees:   4,
				MinRocks:   3,
				MinEnemies: 3,
			},
			NPC: NPCRules{
				Count:       1,
				MinDistance: 4,
				RescueTurns: Range{Min: 2, Spread: 3},
			},
			Tracks: TrackRules{
				BrokenBase:      0,
				BrokenPerSector: 1,
				RepairWood:      2,
				RepairStone:     1,
				RepairClicks:    2,
			},
		},
		Exploration: ExplorationRules{
			DefaultClicks: 1,
			Clicks: map[domain.TileKind]int{
				domain.TileSearch: 1,
				domain.TileTree:   2,
				domain.TileRock:   2,
				domain.TileEnemy:  1,
				domain.TileNPC:    2,
				domain.TileTrack:  1,
				domain.TileBridge: 1,
				domain.TileVoid:   1,
			},
			Rewards: map[domain.TileKind]domain.Ingredient{
				domain.TileTree: {Item: domain.ItemWood, Count: 1},
				domain.TileRock: {Item: domain.ItemStone, Count: 1},
			},
			BerryChance: 0.3,
			Berry:       Range{Min: 1, Spread: 2},
		},
		Consumables: map[domain.ItemKind]Consumable{
			domain.ItemBerry: {Heal: 3, Stamina: 5},
		},
		Rest: RestRules{
			HealAmount:    0,
			PressureDecay: 10,
			SanPerRest:    25,
			DiceSides:     6,
			SanPerDie:     100,
			SumPerSpawn:   5,
		},
		Clock: ClockRules{
			MinutesPerAction: 10,
			DayStart:         6 * 60,
			MinutesPerDay:    24 * 60,
		},
		Boiler: BoilerRules{
			PressureBase:      100,
			PressurePerSector: 50,
			Fuel: map[domain.ItemKind]int{
				domain.ItemWood:     5,
				domain.ItemCharcoal: 15,
			},
			StaminaRetain: 0.8,
		},
		Scoring: ScoringRules{
			PerSector: 500,
			PerWood:   10,
			PerStone:  15,
			PerEnemy:  100,
			PerCraft:  50,
			PerGold:   1,
		},
	}
}

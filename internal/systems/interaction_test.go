package systems

import (
	"testing"

	"github.com/jerryeechan/poachers/internal/domain"
)

func enemyGrid(hp, attack int) domain.Grid {
	g := blankGrid(3)
	e := revealedTile(&g, 1, 1, domain.TileEnemy)
	e.HP = hp
	e.MaxHP = hp
	e.Attack = attack
	return g
}

func lootOf(out Outcome, kind domain.ItemKind) (LootReport, bool) {
	for _, l := range out.Loot {
		if l.Item == kind {
			return l, true
		}
	}
	return LootReport{}, false
}

func TestResolve_MeleeCombat(t *testing.T) {
	r := testRules()
	rng := newRng(1)
	actor := Actor{Inventory: withItems(t), Selected: -1, Attack: 3, Sector: 1}

	g := enemyGrid(5, 4)
	first, err := Resolve(rng, r, g, actor, 1, 1)
	if err != nil {
		t.Fatalf("first hit: %v", err)
	}
	tile := first.Grid.Tiles[first.Grid.Index(1, 1)]
	if tile.HP != 2 || tile.Kind != domain.TileEnemy {
		t.Fatalf("after first hit: kind %s hp %d, want enemy with 2", tile.Kind, tile.HP)
	}
	if first.HPDelta != -4 {
		t.Errorf("retaliation = %d, want -4", first.HPDelta)
	}
	if first.Stats.EnemiesDefeated != 0 {
		t.Error("enemy is still alive")
	}
	if g.Tiles[g.Index(1, 1)].HP != 5 {
		t.Error("input grid was mutated")
	}

	actor.Inventory = first.Inventory
	second, err := Resolve(rng, r, first.Grid, actor, 1, 1)
	if err != nil {
		t.Fatalf("second hit: %v", err)
	}
	tile = second.Grid.Tiles[second.Grid.Index(1, 1)]
	if tile.Kind != domain.TileSearch || !tile.Cleared {
		t.Errorf("defeated enemy should become cleared ground, got %s cleared=%v", tile.Kind, tile.Cleared)
	}
	if second.Stats.EnemiesDefeated != 1 {
		t.Errorf("enemiesDefeated = %d, want 1", second.Stats.EnemiesDefeated)
	}
	if second.HPDelta != -4 {
		t.Errorf("melee kill retaliation = %d, want -4", second.HPDelta)
	}

	wood, ok := lootOf(second, domain.ItemWood)
	if !ok || wood.Added < r.Enemies.LootWood.Min || wood.Added > r.Enemies.LootWood.Max() {
		t.Errorf("wood loot %+v outside configured range", wood)
	}
	stone, ok := lootOf(second, domain.ItemStone)
	if !ok || stone.Added < r.Enemies.LootStone.Min || stone.Added > r.Enemies.LootStone.Max() {
		t.Errorf("stone loot %+v outside configured range", stone)
	}
	if second.Stats.TotalWood != wood.Added || second.Stats.TotalStone != stone.Added {
		t.Error("stats must credit exactly the added loot")
	}
	if second.GoldDelta < r.Enemies.Gold.Min || second.GoldDelta > r.Enemies.Gold.Max() {
		t.Errorf("gold = %d outside range", second.GoldDelta)
	}
}

func TestResolve_BowNeverTakesRetaliation(t *testing.T) {
	r := testRules()
	bowInv := withItems(t, domain.Ingredient{Item: domain.ItemBow, Count: 1})

	tests := []struct {
		name     string
		hp       int
		killed   bool
		startDur int
	}{
		{"killing blow", r.Vitals.BowDamage, true, 5},
		{"wounding shot", r.Vitals.BowDamage + 3, false, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actor := Actor{Inventory: bowInv, Selected: 0, Attack: 2, Sector: 1}
			out, err := Resolve(newRng(3), r, enemyGrid(tt.hp, 6), actor, 1, 1)
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if out.HPDelta != 0 {
				t.Errorf("HPDelta = %d, want 0", out.HPDelta)
			}
			if got := out.Inventory[0].Durability; got != tt.startDur-1 {
				t.Errorf("bow durability = %d, want %d", got, tt.startDur-1)
			}
			if killed := out.Stats.EnemiesDefeated == 1; killed != tt.killed {
				t.Errorf("killed = %v, want %v", killed, tt.killed)
			}
		})
	}
}

func TestResolve_ToolBreakClearsSelection(t *testing.T) {
	r := testRules()
	ledger := r.Ledger()
	inv, _ := ledger.Add(domain.NewInventory(8), domain.ItemBow, 1, 1)
	actor := Actor{Inventory: inv, Selected: 0, Attack: 2, Sector: 1}

	out, err := Resolve(newRng(5), r, enemyGrid(20, 1), actor, 1, 1)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if out.Inventory[0] != nil {
		t.Error("broken bow must leave the slot")
	}
	if out.Selected != -1 {
		t.Errorf("selection = %d, want -1", out.Selected)
	}
}

func TestResolve_GatherTree(t *testing.T) {
	r := testRules()
	g := blankGrid(3)
	tree := revealedTile(&g, 0, 0, domain.TileTree)
	tree.ScavengeLeft = 1

	actor := Actor{Inventory: withItems(t, domain.Ingredient{Item: domain.ItemAxe, Count: 1}), Selected: -1}
	out, err := Resolve(newRng(9), r, g, actor, 0, 0)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	got := out.Grid.Tiles[0]
	if got.Kind != domain.TileSearch || !got.Cleared {
		t.Errorf("exhausted tree should clear, got %s", got.Kind)
	}
	wood, _ := lootOf(out, domain.ItemWood)
	if wood.Added < r.Loot.Tree.Min || wood.Added > r.Loot.Tree.Max() {
		t.Errorf("wood %d outside tree range", wood.Added)
	}
	if out.Inventory[0].Durability != 4 {
		t.Errorf("axe durability = %d, want 4", out.Inventory[0].Durability)
	}
}

func TestResolve_OverflowCreditsOnlyAdded(t *testing.T) {
	r := testRules()
	g := blankGrid(3)
	revealedTile(&g, 2, 2, domain.TileRock)

	// Все слоты кроме кирки забиты деревом
	inv := withItems(t,
		domain.Ingredient{Item: domain.ItemPickaxe, Count: 1},
		domain.Ingredient{Item: domain.ItemWood, Count: 7 * 20},
	)
	out, err := Resolve(newRng(2), r, g, Actor{Inventory: inv, Selected: -1}, 2, 2)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	stone, ok := lootOf(out, domain.ItemStone)
	if !ok || stone.Requested == 0 {
		t.Fatal("rock should roll stone")
	}
	if stone.Added != 0 || out.Stats.TotalStone != 0 {
		t.Errorf("nothing fits, but added=%d total=%d", stone.Added, out.Stats.TotalStone)
	}
}

func TestResolve_ExplorationProgress(t *testing.T) {
	r := testRules()
	g := blankGrid(3)
	revealedTile(&g, 0, 0, domain.TileSearch).Cleared = true
	tree := &g.Tiles[g.Index(1, 0)]
	tree.Kind = domain.TileTree
	tree.MaxExploration = 2
	tree.ScavengeLeft = 2
	g = UpdatePeekStatus(g)

	actor := Actor{Inventory: withItems(t), Selected: -1}
	first, err := Resolve(newRng(4), r, g, actor, 1, 0)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if tl := first.Grid.Tiles[1]; tl.Revealed || tl.ExplorationProgress != 1 {
		t.Fatalf("after one click: revealed=%v progress=%d", tl.Revealed, tl.ExplorationProgress)
	}

	second, err := Resolve(newRng(4), r, first.Grid, Actor{Inventory: first.Inventory, Selected: -1}, 1, 0)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	tl := second.Grid.Tiles[1]
	if !tl.Revealed || tl.Peeked {
		t.Errorf("tile should be revealed and not peeked")
	}
	if second.Inventory.Count(domain.ItemWood) != 1 {
		t.Errorf("first-reveal reward missing, wood = %d", second.Inventory.Count(domain.ItemWood))
	}
}

func TestResolve_AmbushOnReveal(t *testing.T) {
	r := testRules()
	g := blankGrid(5)
	revealedTile(&g, 0, 2, domain.TileSearch).Cleared = true
	ground := &g.Tiles[g.Index(1, 2)]
	ground.MaxExploration = 1
	enemy := &g.Tiles[g.Index(2, 2)]
	enemy.Kind = domain.TileEnemy
	enemy.Attack = 3
	enemy.HP = 4
	g = UpdatePeekStatus(g)
	if g.Tiles[g.Index(2, 2)].Peeked {
		t.Fatal("enemy should start hidden")
	}

	out, err := Resolve(newRng(6), r, g, Actor{Inventory: withItems(t), Selected: -1}, 1, 2)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if out.HPDelta != -3 {
		t.Errorf("ambush damage = %d, want -3", out.HPDelta)
	}
	if len(out.Ambushed) != 1 || out.Ambushed[0] != (domain.Position{X: 2, Y: 2}) {
		t.Errorf("ambushed = %v", out.Ambushed)
	}
	if !out.Grid.Tiles[g.Index(1, 2)].Cleared {
		t.Error("revealed ground must be cleared")
	}
}

func TestResolve_RescueCountdown(t *testing.T) {
	r := testRules()
	g := blankGrid(3)
	npc := revealedTile(&g, 1, 1, domain.TileNPC)
	npc.NPCBuff = domain.BuffHealth
	npc.RescueProgress = 2
	npc.MaxRescueProgress = 2

	actor := Actor{Inventory: withItems(t), Selected: -1}
	first, err := Resolve(newRng(1), r, g, actor, 1, 1)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if first.Rescued != nil {
		t.Fatal("rescued too early")
	}
	second, err := Resolve(newRng(1), r, first.Grid, actor, 1, 1)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if second.Rescued == nil || second.Rescued.Buff != domain.BuffHealth {
		t.Fatalf("rescued = %+v, want health buff", second.Rescued)
	}
	if tl := second.Grid.Tiles[g.Index(1, 1)]; tl.Kind != domain.TileSearch || !tl.Cleared {
		t.Error("rescued NPC tile should become cleared ground")
	}
}

func TestResolve_RepairTrack(t *testing.T) {
	r := testRules()
	g := blankGrid(3)
	track := revealedTile(&g, 0, 1, domain.TileTrack)
	track.IsBroken = true
	track.MaxRepairProgress = 2

	inv := withItems(t,
		domain.Ingredient{Item: domain.ItemWood, Count: 3},
		domain.Ingredient{Item: domain.ItemStone, Count: 1},
	)
	first, err := Resolve(newRng(1), r, g, Actor{Inventory: inv, Selected: -1}, 0, 1)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !first.Grid.Tiles[g.Index(0, 1)].IsBroken || first.Inventory.Count(domain.ItemWood) != 3 {
		t.Fatal("materials are spent only on completion")
	}
	second, err := Resolve(newRng(1), r, first.Grid, Actor{Inventory: first.Inventory, Selected: -1}, 0, 1)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if second.Grid.Tiles[g.Index(0, 1)].IsBroken {
		t.Error("track should be repaired")
	}
	if second.Inventory.Count(domain.ItemWood) != 1 || second.Inventory.Count(domain.ItemStone) != 0 {
		t.Errorf("repair cost not deducted: wood %d stone %d",
			second.Inventory.Count(domain.ItemWood), second.Inventory.Count(domain.ItemStone))
	}
}

package dungeon

import (
	"math/rand"

	"github.com/jerryeechan/poachers/internal/config"
	"github.com/jerryeechan/poachers/internal/domain"
	"github.com/jerryeechan/poachers/internal/systems"
	"github.com/jerryeechan/poachers/pkg/logger"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

// randRange - целое в [min, max] включительно
func (b *SectorBuilder) randRange(min, max int) int {
	return b.rng.Intn(max-min+1) + min
}

// SectorBuilder предоставляет fluent API для создания сектора.
// Шаги расходуют генератор в порядке вызова, поэтому порядок цепочки важен.
type SectorBuilder struct {
	rules  *config.Rules
	sector int
	san    int
	rng    *rand.Rand

	grid  domain.Grid
	pool  []int           // клетки под колоду, в порядке row-major
	fixed mapset.Set[int] // клетки, уже получившие содержимое вне колоды

	log *logrus.Entry
}

// NewSector создает builder для сектора
func NewSector(sector, san int, rules *config.Rules, rng *rand.Rand) *SectorBuilder {
	size := rules.Grid.Size
	return &SectorBuilder{
		rules:  rules,
		sector: sector,
		san:    san,
		rng:    rng,
		grid:   domain.NewGrid(size, size),
		fixed:  mapset.New[int](),
		log: logger.Log.WithFields(logrus.Fields{
			"component": "sector_builder",
			"sector":    sector,
		}),
	}
}

func (b *SectorBuilder) center() (int, int) {
	return b.rules.Grid.CenterX, b.rules.Grid.SpineRow
}

func (b *SectorBuilder) distance(t domain.Tile) int {
	cx, cy := b.center()
	return abs(t.X-cx) + abs(t.Y-cy)
}

// WithSpine укладывает рельсы и три вагона: грузовой, мастерская, локомотив.
// Вагоны сразу раскрыты. Сами рельсы скрыты, пока их не исследуют.
func (b *SectorBuilder) WithSpine() *SectorBuilder {
	cx, cy := b.center()
	for x := 0; x < b.grid.Width; x++ {
		t := &b.grid.Tiles[b.grid.Index(x, cy)]
		switch x {
		case cx - 1:
			t.Kind = domain.TileCargo
		case cx:
			t.Kind = domain.TileWorkshop
		case cx + 1:
			t.Kind = domain.TileLocomotive
		default:
			t.Kind = domain.TileTrack
			continue
		}
		t.Revealed = true
		t.Cleared = true
	}
	return b
}

// WithVoids - одна проверка на каждую клетку вне рельсов, построчно.
// В безопасной полосе у поезда пустоты не бывает.
func (b *SectorBuilder) WithVoids() *SectorBuilder {
	_, cy := b.center()
	m := b.rules.Map
	for i := range b.grid.Tiles {
		t := &b.grid.Tiles[i]
		if t.Y == cy {
			continue
		}
		chance := 0.0
		if abs(t.Y-cy) > m.SafeZoneOffset {
			chance = max(0, float64(b.distance(*t)-m.VoidThreshold)*m.VoidMultiplier)
		}
		if b.rng.Float64() < chance {
			t.Kind = domain.TileVoid
		} else {
			t.Kind = domain.TileSearch
			b.pool = append(b.pool, i)
		}
	}
	return b
}

// WithBridges превращает в мосты рельсы, у которых через клетку сверху и снизу пропасть.
// Генератор не расходуется.
func (b *SectorBuilder) WithBridges() *SectorBuilder {
	_, cy := b.center()
	bridges := 0
	for x := 0; x < b.grid.Width; x++ {
		t := &b.grid.Tiles[b.grid.Index(x, cy)]
		if t.Kind != domain.TileTrack {
			continue
		}
		above, okA := b.grid.At(x, cy-2)
		below, okB := b.grid.At(x, cy+2)
		if okA && okB && above.Kind == domain.TileVoid && below.Kind == domain.TileVoid {
			t.Kind = domain.TileBridge
			bridges++
		}
	}
	if bridges > 0 {
		b.log.WithField("bridges", bridges).Debug("Bridges laid.")
	}
	return b
}

// WithSafeStart - клетки прямо над и под мастерской всегда земля с добычей.
// Они исключаются из колоды.
func (b *SectorBuilder) WithSafeStart() *SectorBuilder {
	cx, cy := b.center()
	for _, y := range []int{cy - 1, cy + 1} {
		idx := b.grid.Index(cx, y)
		if idx < 0 || b.grid.Tiles[idx].Kind == domain.TileVoid {
			continue
		}
		t := &b.grid.Tiles[idx]
		t.Kind = domain.TileSearch
		t.ScavengeLeft = b.rules.Map.SafeGroundCharges.Roll(b.rng)
		b.fixed.Put(idx)
	}
	b.compactPool()
	return b
}

// PlaceNPCs ставит выживших не ближе MinDistance от центра.
// На каждого: выбор клетки, бафф, число ходов спасения.
func (b *SectorBuilder) PlaceNPCs() *SectorBuilder {
	npc := b.rules.Map.NPC
	buffs := domain.AllBuffs()
	for i := 0; i < npc.Count; i++ {
		var candidates []int
		for _, idx := range b.pool {
			if b.distance(b.grid.Tiles[idx]) >= npc.MinDistance {
				candidates = append(candidates, idx)
			}
		}
		if len(candidates) == 0 {
			b.log.Warn("No tile far enough for an NPC.")
			break
		}

		idx := candidates[b.rng.Intn(len(candidates))]
		t := &b.grid.Tiles[idx]
		t.Kind = domain.TileNPC
		t.NPCBuff = buffs[b.rng.Intn(len(buffs))]
		turns := npc.RescueTurns.Roll(b.rng)
		t.RescueProgress = turns
		t.MaxRescueProgress = turns

		b.fixed.Put(idx)
		b.compactPool()
	}
	return b
}

// compactPool убирает из пула клетки с фиксированным содержимым
func (b *SectorBuilder) compactPool() {
	kept := b.pool[:0]
	for _, idx := range b.pool {
		if !b.fixed.Has(idx) {
			kept = append(kept, idx)
		}
	}
	b.pool = kept
}

// DealDeck собирает колоду деревьев, камней и врагов по долям с минимумами,
// добивает землей, тасует и раздает клеткам пула. Затем бросает параметры клеток.
func (b *SectorBuilder) DealDeck() *SectorBuilder {
	d := b.rules.Map.Deck
	size := len(b.pool)

	trees := max(d.MinTrees, int(float64(size)*d.TreeShare))
	rocks := max(d.MinRocks, int(float64(size)*d.RockShare))
	enemies := max(d.MinEnemies, int(float64(size)*d.EnemyShare))

	deck := make([]domain.TileKind, 0, max(size, trees+rocks+enemies))
	for i := 0; i < trees; i++ {
		deck = append(deck, domain.TileTree)
	}
	for i := 0; i < rocks; i++ {
		deck = append(deck, domain.TileRock)
	}
	for i := 0; i < enemies; i++ {
		deck = append(deck, domain.TileEnemy)
	}
	for len(deck) < size {
		deck = append(deck, domain.TileSearch)
	}
	if len(deck) > size {
		b.log.WithFields(logrus.Fields{"deck": len(deck), "pool": size}).Warn("Deck minimums exceed the pool, trimming.")
		deck = deck[:size]
	}

	// Фишер-Йетс с конца
	for i := len(deck) - 1; i > 0; i-- {
		j := b.randRange(0, i)
		deck[i], deck[j] = deck[j], deck[i]
	}

	level := b.rules.EnemyLevel(b.sector, b.san)
	for n, idx := range b.pool {
		t := &b.grid.Tiles[idx]
		t.Kind = deck[n]
		switch t.Kind {
		case domain.TileTree:
			t.ScavengeLeft = b.rules.Map.TreeCharges.Roll(b.rng)
		case domain.TileEnemy:
			atk, hp := systems.RollEnemy(b.rng, b.rules, level)
			systems.PlaceEnemy(t, atk, hp, b.rules.Enemies.PassiveInterval)
		case domain.TileSearch:
			t.ScavengeLeft = b.rules.Map.GroundCharges.Roll(b.rng)
		}
	}

	b.log.WithFields(logrus.Fields{
		"pool":    size,
		"trees":   trees,
		"rocks":   rocks,
		"enemies": enemies,
		"level":   level,
	}).Debug("Deck dealt.")
	return b
}

// BreakTracks ломает часть рельсов и мостов: тасует их и берет префикс
func (b *SectorBuilder) BreakTracks() *SectorBuilder {
	tr := b.rules.Map.Tracks
	var rails []int
	for i, t := range b.grid.Tiles {
		if t.Kind.IsRail() {
			rails = append(rails, i)
		}
	}
	for i := len(rails) - 1; i > 0; i-- {
		j := b.randRange(0, i)
		rails[i], rails[j] = rails[j], rails[i]
	}

	broken := min(len(rails), tr.BrokenBase+b.sector*tr.BrokenPerSector)
	for _, idx := range rails[:broken] {
		t := &b.grid.Tiles[idx]
		t.IsBroken = true
		t.MaxRepairProgress = tr.RepairClicks
	}
	return b
}

// Build проставляет число кликов исследования и считает начальный туман
func (b *SectorBuilder) Build() domain.Grid {
	for i := range b.grid.Tiles {
		t := &b.grid.Tiles[i]
		t.MaxExploration = b.rules.ExplorationClicks(t.Kind)
	}
	return systems.UpdatePeekStatus(b.grid)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

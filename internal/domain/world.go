package domain

// Position - координаты клетки
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Tile - одна клетка сектора.
// Поля Revealed и Peeked взаимоисключающие: раскрытая клетка никогда не "подсмотрена".
type Tile struct {
	X    int      `json:"x"`
	Y    int      `json:"y"`
	Kind TileKind `json:"kind"`

	Revealed bool `json:"revealed"`
	Peeked   bool `json:"peeked"`
	Cleared  bool `json:"cleared"`

	// Сколько раз еще можно добывать (деревья и земля)
	ScavengeLeft int `json:"scavengeLeft,omitempty"`
	// Сколько раз уже добывали. Снижает стоимость следующей добычи.
	SearchCount int `json:"searchCount,omitempty"`

	// Только для врагов
	Attack            int `json:"attack,omitempty"`
	HP                int `json:"hp,omitempty"`
	MaxHP             int `json:"maxHp,omitempty"`
	AttackProgress    int `json:"attackProgress,omitempty"`
	MaxAttackProgress int `json:"maxAttackProgress,omitempty"`

	// Сколько кликов нужно, чтобы раскрыть подсмотренную клетку
	ExplorationProgress int `json:"explorationProgress,omitempty"`
	MaxExploration      int `json:"maxExploration,omitempty"`

	// Только для NPC
	NPCBuff           BuffType `json:"npcBuff,omitempty"`
	RescueProgress    int      `json:"rescueProgress,omitempty"`
	MaxRescueProgress int      `json:"maxRescueProgress,omitempty"`

	// Только для путей и мостов
	IsBroken          bool `json:"isBroken,omitempty"`
	RepairProgress    int  `json:"repairProgress,omitempty"`
	MaxRepairProgress int  `json:"maxRepairProgress,omitempty"`
}

// Visibility выводит состояние тумана из флагов клетки
func (t Tile) Visibility() Visibility {
	if t.Revealed {
		return Revealed
	}
	if t.Peeked {
		return Peeked
	}
	return Hidden
}

// IsExplorable - подсмотрена, но еще не раскрыта
func (t Tile) IsExplorable() bool {
	return t.Peeked && !t.Revealed
}

// IsActiveEnemy - враг, который виден и еще жив
func (t Tile) IsActiveEnemy() bool {
	return t.Kind == TileEnemy && t.Revealed && !t.Cleared
}

// IsHarvestable - с клетки еще можно что-то собрать
func (t Tile) IsHarvestable() bool {
	switch t.Kind {
	case TileTree, TileSearch:
		return t.ScavengeLeft > 0
	}
	return false
}

// ClearToGround превращает клетку в пустую расчищенную землю
func (t *Tile) ClearToGround() {
	t.Kind = TileSearch
	t.Cleared = true
	t.ScavengeLeft = 0
	t.Attack = 0
	t.HP = 0
	t.MaxHP = 0
	t.AttackProgress = 0
	t.MaxAttackProgress = 0
	t.NPCBuff = BuffUnknown
	t.RescueProgress = 0
	t.MaxRescueProgress = 0
}

// Grid - прямоугольная сетка сектора, хранится построчно (row-major).
type Grid struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Tiles  []Tile `json:"tiles"`
}

// NewGrid создает пустую сетку с проставленными координатами
func NewGrid(width, height int) Grid {
	tiles := make([]Tile, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			tiles[y*width+x] = Tile{X: x, Y: y}
		}
	}
	return Grid{Width: width, Height: height, Tiles: tiles}
}

func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Index возвращает индекс клетки или -1, если координаты вне сетки
func (g Grid) Index(x, y int) int {
	if !g.InBounds(x, y) {
		return -1
	}
	return y*g.Width + x
}

// At возвращает копию клетки
func (g Grid) At(x, y int) (Tile, bool) {
	idx := g.Index(x, y)
	if idx < 0 {
		return Tile{}, false
	}
	return g.Tiles[idx], true
}

// Clone - глубокая копия. Tile не содержит ссылок, поэтому достаточно копии среза.
func (g Grid) Clone() Grid {
	tiles := make([]Tile, len(g.Tiles))
	copy(tiles, g.Tiles)
	return Grid{Width: g.Width, Height: g.Height, Tiles: tiles}
}

// Neighbors4 - индексы ортогональных соседей внутри сетки
func (g Grid) Neighbors4(x, y int) []int {
	out := make([]int, 0, 4)
	for _, d := range [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
		if idx := g.Index(x+d[0], y+d[1]); idx >= 0 {
			out = append(out, idx)
		}
	}
	return out
}

// Count считает клетки, удовлетворяющие условию
func (g Grid) Count(pred func(Tile) bool) int {
	n := 0
	for _, t := range g.Tiles {
		if pred(t) {
			n++
		}
	}
	return n
}

package api

import (
	"encoding/json"
)

// --- ЯДРО -> ПРЕДСТАВЛЕНИЕ ---

// StateView это полный снимок забега для слоя представления.
// Строится после каждой команды; скрытые клетки не раскрывают содержимого.
type StateView struct {
	// Sector номер текущего сектора, начиная с 1.
	Sector int    `json:"sector"`
	Day    int    `json:"day"`
	Clock  string `json:"clock"` // "HH:MM"

	Vitals VitalsView `json:"vitals"`
	Train  TrainView  `json:"train"`

	// Weather и View - строковые имена перечислений (SUNNY, MAP, ...).
	Weather string `json:"weather"`
	View    string `json:"view"`

	Grid GridMeta   `json:"grid"`
	Map  []TileView `json:"map"`

	Inventory []SlotView `json:"inventory"`
	Cargo     []SlotView `json:"cargo"`
	Selected  int        `json:"selected"`

	// PendingRest присутствует, пока отчет об отдыхе не подтвержден.
	PendingRest *RestView `json:"pendingRest,omitempty"`

	Stats StatsView `json:"stats"`

	// Score заполняется только на экране конца игры.
	Score *ScoreView `json:"score,omitempty"`

	Logs []LogEntry `json:"logs,omitempty"`
}

// GridMeta содержит размеры сетки сектора.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// VitalsView - показатели игрока с учетом баффов.
type VitalsView struct {
	HP         int `json:"hp"`
	MaxHP      int `json:"maxHp"`
	Stamina    int `json:"stamina"`
	MaxStamina int `json:"maxStamina"`
	Attack     int `json:"attack"`
	Gold       int `json:"gold"`
}

// TrainView - состояние поезда.
type TrainView struct {
	Pressure       int      `json:"pressure"`
	TargetPressure int      `json:"targetPressure"`
	CarriageLevel  int      `json:"carriageLevel"`
	Passengers     []string `json:"passengers"` // баффы спасенных
	Capacity       int      `json:"capacity"`
}

// TileView это DTO одной клетки.
type TileView struct {
	X int `json:"x"`
	Y int `json:"y"`

	// Visibility: HIDDEN, PEEKED или REVEALED.
	Visibility string `json:"visibility"`

	// Kind пуст для скрытых клеток. Подсмотренная клетка показывает силуэт.
	Kind    string `json:"kind,omitempty"`
	Cleared bool   `json:"cleared,omitempty"`

	Explore    int `json:"explore,omitempty"`
	MaxExplore int `json:"maxExplore,omitempty"`

	ScavengeLeft int `json:"scavengeLeft,omitempty"`

	Attack int `json:"attack,omitempty"`
	HP     int `json:"hp,omitempty"`
	MaxHP  int `json:"maxHp,omitempty"`

	NPCBuff string `json:"npcBuff,omitempty"`
	Rescue  int    `json:"rescue,omitempty"`

	IsBroken bool `json:"isBroken,omitempty"`
	Repair   int  `json:"repair,omitempty"`
}

// SlotView - один слот инвентаря. Пустой слот имеет пустой Item.
type SlotView struct {
	Slot          int    `json:"slot"`
	ID            string `json:"id,omitempty"`
	Item          string `json:"item,omitempty"`
	Name          string `json:"name,omitempty"`
	Count         int    `json:"count,omitempty"`
	Durability    int    `json:"durability,omitempty"`
	MaxDurability int    `json:"maxDurability,omitempty"`
}

// RestView - предпросмотр отдыха.
type RestView struct {
	StaminaRestore int         `json:"staminaRestore"`
	Damage         int         `json:"damage"`
	EnemiesCount   int         `json:"enemiesCount"`
	PressureLoss   int         `json:"pressureLoss"`
	Dice           []int       `json:"dice"`
	Spawns         []PointView `json:"spawns"`
}

type PointView struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// StatsView - накопленная статистика забега.
type StatsView struct {
	TotalWood       int `json:"totalWood"`
	TotalStone      int `json:"totalStone"`
	EnemiesDefeated int `json:"enemiesDefeated"`
	ItemsCrafted    int `json:"itemsCrafted"`
	SectorsPassed   int `json:"sectorsPassed"`
	San             int `json:"san"`
}

// ScoreView - итоговые очки с разбивкой.
type ScoreView struct {
	Total int             `json:"total"`
	Lines []ScoreLineView `json:"lines"`
}

type ScoreLineView struct {
	Label      string `json:"label"`
	Value      int    `json:"value"`
	Multiplier int    `json:"multiplier"`
}

// LogEntry представляет одну запись в игровом логе.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, SUCCESS, WARNING, COMBAT, ERROR, IMPORTANT
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// --- ПРЕДСТАВЛЕНИЕ -> ЯДРО ---

// ClientCommand это корневой объект для всех команд к сессии.
type ClientCommand struct {
	// Action название действия, которое нужно выполнить.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// --- Payloads ---

// TilePayload используется для действий над клеткой (CLICK_TILE, ADMIN_INSPECT).
type TilePayload struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// SlotPayload используется для действий со слотом (SELECT_SLOT, USE_ITEM, DEPOSIT, WITHDRAW).
// Slot = -1 в SELECT_SLOT снимает выбор.
type SlotPayload struct {
	Slot int `json:"slot"`
}

// RecipePayload используется для CRAFT.
type RecipePayload struct {
	Recipe string `json:"recipe"`
}

// FuelPayload используется для ADD_FUEL.
type FuelPayload struct {
	Item string `json:"item"`
}

package domain

// Stats - накопительная статистика забега. Используется и как дельта от операций.
type Stats struct {
	TotalWood       int `json:"totalWood"`
	TotalStone      int `json:"totalStone"`
	EnemiesDefeated int `json:"enemiesDefeated"`
	ItemsCrafted    int `json:"itemsCrafted"`
	SectorsPassed   int `json:"sectorsPassed"`
	San             int `json:"san"`
}

// Add складывает дельту со статистикой
func (s Stats) Add(d Stats) Stats {
	s.TotalWood += d.TotalWood
	s.TotalStone += d.TotalStone
	s.EnemiesDefeated += d.EnemiesDefeated
	s.ItemsCrafted += d.ItemsCrafted
	s.SectorsPassed += d.SectorsPassed
	s.San += d.San
	return s
}

// NPC - спасенный пассажир
type NPC struct {
	Buff BuffType `json:"buff"`
}

// GameState - агрегат состояния забега. Владеет им только оркестратор (engine.Session),
// ядро получает нужные поля явными параметрами.
type GameState struct {
	Sector  int `json:"sector"`
	Day     int `json:"day"`
	Minutes int `json:"minutes"` // часы внутри дня в минутах

	Stamina int `json:"stamina"`
	HP      int `json:"hp"`
	Gold    int `json:"gold"`

	Pressure      int `json:"pressure"`
	CarriageLevel int `json:"carriageLevel"`

	Rescued []NPC `json:"rescued"`
	Stats   Stats `json:"stats"`

	Grid    Grid      `json:"grid"`
	Weather Weather   `json:"weather"`
	View    ViewState `json:"view"`

	Inventory Inventory `json:"inventory"`
	Cargo     Inventory `json:"cargo"`
	Selected  int       `json:"selected"` // -1 если ничего не выбрано

	// Отчет об отдыхе, ожидающий подтверждения
	PendingRest *RestReport `json:"pendingRest,omitempty"`
}

// BuffCount - сколько спасенных дают указанный бафф
func (s *GameState) BuffCount(b BuffType) int {
	n := 0
	for _, npc := range s.Rescued {
		if npc.Buff == b {
			n++
		}
	}
	return n
}

// Recipe - строка таблицы крафта
type Recipe struct {
	ID          string       `yaml:"id" json:"id"`
	Inputs      []Ingredient `yaml:"inputs" json:"inputs"`
	Output      Ingredient   `yaml:"output" json:"output"`
	Durability  int          `yaml:"durability,omitempty" json:"durability,omitempty"`
	StaminaCost int          `yaml:"stamina_cost,omitempty" json:"staminaCost,omitempty"`
}

// Encounter - результат броска костей перед отдыхом
type Encounter struct {
	Dice  []int `json:"dice"`
	Sum   int   `json:"sum"`
	Spawn int   `json:"spawn"`
}

// SpawnPlan - враг, который появится на расчищенной клетке после отдыха
type SpawnPlan struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Attack int `json:"attack"`
	HP     int `json:"hp"`
}

// RestReport - предпросмотр отдыха. Применяется целиком при подтверждении.
type RestReport struct {
	Heal           int         `json:"heal"` // всегда 0: отдых не лечит
	StaminaRestore int         `json:"staminaRestore"`
	Damage         int         `json:"damage"`
	EnemiesCount   int         `json:"enemiesCount"`
	PressureLoss   int         `json:"pressureLoss"`
	Encounter      Encounter   `json:"encounter"`
	Spawns         []SpawnPlan `json:"spawns"`
}

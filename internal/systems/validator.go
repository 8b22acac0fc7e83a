package systems

import (
	"github.com/jerryeechan/poachers/internal/config"
	"github.com/jerryeechan/poachers/internal/domain"
)

// TileContext - все, что нужно для проверки клика по клетке.
// Проверки только читают контекст.
type TileContext struct {
	Tile      domain.Tile
	Grid      domain.Grid
	Inventory domain.Inventory
	Selected  int
	Stamina   int
	Weather   domain.Weather
	View      domain.ViewState

	Rescued           int
	PassengerCapacity int
}

// NewTileContext собирает контекст из состояния забега
func NewTileContext(r *config.Rules, s *domain.GameState, tile domain.Tile) TileContext {
	return TileContext{
		Tile:              tile,
		Grid:              s.Grid,
		Inventory:         s.Inventory,
		Selected:          s.Selected,
		Stamina:           s.Stamina,
		Weather:           s.Weather,
		View:              s.View,
		Rescued:           len(s.Rescued),
		PassengerCapacity: r.PassengerCapacity(s.CarriageLevel),
	}
}

// CanClickTile - можно ли вообще взаимодействовать с клеткой
func CanClickTile(t domain.Tile, view domain.ViewState) bool {
	if view != domain.ViewMap {
		return false
	}
	// Исследование подсмотренной клетки
	if t.IsExplorable() {
		return true
	}
	if !t.Revealed || t.Kind == domain.TileVoid {
		return false
	}
	// Целые пути не кликаются
	if t.Kind.IsRail() {
		return t.IsBroken
	}
	if !t.Cleared {
		return true
	}
	return t.IsHarvestable()
}

// CalculateTileCost - стоимость клика в выносливости
func CalculateTileCost(r *config.Rules, t domain.Tile, weather domain.Weather) int {
	// Исследование всегда стоит базово, без учета погоды
	if t.IsExplorable() {
		return r.Costs.Base
	}

	switch t.Kind {
	case domain.TileSearch, domain.TileTree:
		return harvestCost(r, t.SearchCount)
	case domain.TileEnemy:
		return r.Costs.Enemy
	case domain.TileNPC:
		return r.Costs.Base
	}

	if weather == domain.WeatherWindy {
		return r.Costs.Windy
	}
	return r.Costs.Base
}

// harvestCost убывает с каждой добычей, но не ниже пола
func harvestCost(r *config.Rules, searchCount int) int {
	return max(r.Costs.HarvestFloor, r.Costs.HarvestInitial-searchCount*r.Costs.HarvestDecay)
}

// tileValidator - одна проверка требований клетки
type tileValidator func(r *config.Rules, ctx TileContext) error

var tileValidators = map[domain.TileKind][]tileValidator{
	domain.TileNPC:    {npcValidator, toolValidator},
	domain.TileTrack:  {brokenTrackValidator},
	domain.TileBridge: {brokenTrackValidator},
	domain.TileTree:   {toolValidator},
	domain.TileRock:   {toolValidator},
	domain.TileEnemy:  {},
	domain.TileSearch: {},
}

func npcValidator(r *config.Rules, ctx TileContext) error {
	if hasHostiles(ctx.Grid) {
		return domain.Refuse(domain.RefuseNPCBlocked, "Нельзя спасать, пока рядом враги!")
	}
	if ctx.Rescued >= ctx.PassengerCapacity {
		return domain.Refuse(domain.RefuseCapacityExceeded, "Поезд заполнен!")
	}
	return nil
}

// hasHostiles - на поле есть живой враг или раскрытый разрушенный мост
func hasHostiles(g domain.Grid) bool {
	for _, t := range g.Tiles {
		if t.IsActiveEnemy() {
			return true
		}
		if t.Kind == domain.TileBridge && t.Revealed && t.IsBroken {
			return true
		}
	}
	return false
}

func brokenTrackValidator(r *config.Rules, ctx TileContext) error {
	if !ctx.Tile.IsBroken {
		return nil
	}
	wood := r.Map.Tracks.RepairWood
	stone := r.Map.Tracks.RepairStone
	need := []domain.Ingredient{{Item: domain.ItemWood, Count: wood}, {Item: domain.ItemStone, Count: stone}}
	if !ctx.Inventory.Has(need) {
		return domain.Refuse(domain.RefuseInsufficientResources,
			"Для ремонта нужно %d дерева и %d камня!", wood, stone)
	}
	return nil
}

func toolValidator(r *config.Rules, ctx TileContext) error {
	tool, ok := r.ToolFor(ctx.Tile.Kind)
	// Лук для врага желателен, но не обязателен
	if !ok || ctx.Tile.Kind == domain.TileEnemy {
		return nil
	}
	if ctx.Inventory.FindTool(tool, ctx.Selected) < 0 {
		return domain.Refuse(domain.RefuseMissingTool, "Нужен инструмент: %s!", tool.Title())
	}
	return nil
}

// ValidateTileAction проверяет требования клетки без учета выносливости
func ValidateTileAction(r *config.Rules, ctx TileContext) error {
	if ctx.Tile.IsExplorable() {
		return nil
	}

	validators, ok := tileValidators[ctx.Tile.Kind]
	if !ok {
		validators = []tileValidator{toolValidator}
	}
	for _, v := range validators {
		if err := v(r, ctx); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndCalculateCost - полный шлюз перед действием: кликабельность,
// выносливость, требования клетки. Возвращает стоимость даже при отказе.
func ValidateAndCalculateCost(r *config.Rules, ctx TileContext) (int, error) {
	if !CanClickTile(ctx.Tile, ctx.View) {
		return 0, domain.Refuse(domain.RefuseNotClickable, "С этой клеткой ничего не сделать.")
	}

	cost := CalculateTileCost(r, ctx.Tile, ctx.Weather)
	if ctx.Stamina < cost {
		return cost, domain.Refuse(domain.RefuseInsufficientStamina, "Нет сил! Нужно отдохнуть.")
	}
	if err := ValidateTileAction(r, ctx); err != nil {
		return cost, err
	}
	return cost, nil
}

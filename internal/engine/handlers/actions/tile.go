package actions

import (
	"github.com/jerryeechan/poachers/internal/domain"
	"github.com/jerryeechan/poachers/internal/engine/handlers"
	"github.com/jerryeechan/poachers/internal/systems"
	"github.com/jerryeechan/poachers/pkg/api"
	"github.com/jerryeechan/poachers/pkg/logger"

	"github.com/sirupsen/logrus"
)

// HandleClickTile проверяет клик, списывает выносливость и применяет исход целиком
func HandleClickTile(ctx handlers.Context, p api.TilePayload) (handlers.Result, error) {
	s := ctx.State
	r := ctx.Rules

	tile, ok := s.Grid.At(p.X, p.Y)
	if !ok {
		return handlers.Result{}, domain.Refuse(domain.RefuseNotClickable, "Клетка (%d, %d) вне карты.", p.X, p.Y)
	}

	cost, err := systems.ValidateAndCalculateCost(r, systems.NewTileContext(r, s, tile))
	if err != nil {
		return handlers.Result{}, err
	}

	actor := systems.Actor{
		Inventory: s.Inventory,
		Selected:  s.Selected,
		Attack:    r.Attack(s),
		Sector:    s.Sector,
		San:       s.Stats.San,
	}
	out, err := systems.Resolve(ctx.Rng, r, s.Grid, actor, p.X, p.Y)
	if err != nil {
		return handlers.Result{}, err
	}

	s.Stamina -= cost
	s.Grid = out.Grid
	s.Inventory = out.Inventory
	s.Selected = out.Selected
	s.HP += out.HPDelta
	s.Gold += out.GoldDelta
	s.Stats = s.Stats.Add(out.Stats)
	if out.Rescued != nil {
		s.Rescued = append(s.Rescued, *out.Rescued)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "tile_handler",
		"x":         p.X,
		"y":         p.Y,
		"kind":      tile.Kind.String(),
		"cost":      cost,
		"hp_delta":  out.HPDelta,
	}).Debug("Tile action applied.")

	return handlers.Result{Logs: out.Log, Elapsed: r.Clock.MinutesPerAction}, nil
}

// HandleSelectSlot выбирает слот для инструмента. Slot = -1 снимает выбор.
func HandleSelectSlot(ctx handlers.Context, p api.SlotPayload) (handlers.Result, error) {
	s := ctx.State
	if p.Slot == -1 {
		s.Selected = -1
		return handlers.EmptyResult(), nil
	}
	if p.Slot >= len(s.Inventory) || s.Inventory[p.Slot] == nil {
		return handlers.Result{}, domain.Refuse(domain.RefuseInvalidSlot, "Слот %d пуст.", p.Slot)
	}
	s.Selected = p.Slot
	return handlers.Result{
		Msg:     "Выбрано: " + s.Inventory[p.Slot].Kind.Title() + ".",
		MsgType: string(domain.LogInfo),
	}, nil
}

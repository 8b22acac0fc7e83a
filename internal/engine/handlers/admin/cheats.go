package admin

import (
	"fmt"

	"github.com/jerryeechan/poachers/internal/engine/handlers"
	"github.com/jerryeechan/poachers/pkg/api"
)

func HandleHeal(ctx handlers.Context) (handlers.Result, error) {
	s := ctx.State
	s.HP = ctx.Rules.MaxHP(s)
	s.Stamina = ctx.Rules.MaxStamina(s)
	return handlers.Result{Msg: "❤️ Fully Healed", MsgType: "INFO"}, nil
}

// HandleRevealAll снимает туман со всего сектора
func HandleRevealAll(ctx handlers.Context) (handlers.Result, error) {
	grid := ctx.State.Grid.Clone()
	for i := range grid.Tiles {
		grid.Tiles[i].Revealed = true
		grid.Tiles[i].Peeked = false
	}
	ctx.State.Grid = grid
	return handlers.Result{Msg: "👁️ Sector revealed", MsgType: "INFO"}, nil
}

// HandleInspect печатает клетку целиком, включая скрытые поля
func HandleInspect(ctx handlers.Context, p api.TilePayload) (handlers.Result, error) {
	t, ok := ctx.State.Grid.At(p.X, p.Y)
	if !ok {
		return handlers.Result{Msg: "Tile out of bounds", MsgType: "ERROR"}, nil
	}
	return handlers.Result{Msg: fmt.Sprintf("🔍 %+v", t), MsgType: "INFO"}, nil
}

package actions

import (
	"github.com/jerryeechan/poachers/internal/domain"
	"github.com/jerryeechan/poachers/internal/engine/handlers"
	"github.com/jerryeechan/poachers/internal/systems"
	"github.com/jerryeechan/poachers/pkg/api"
)

// HandleUseItem съедает одну единицу из слота личного инвентаря
func HandleUseItem(ctx handlers.Context, p api.SlotPayload) (handlers.Result, error) {
	s := ctx.State
	r := ctx.Rules

	vitals := systems.Vitals{
		HP:         s.HP,
		MaxHP:      r.MaxHP(s),
		Stamina:    s.Stamina,
		MaxStamina: r.MaxStamina(s),
	}
	inv, next, logs, err := systems.ConsumeItem(r, s.Inventory, p.Slot, vitals)
	if err != nil {
		return handlers.Result{}, err
	}

	s.Inventory = inv
	s.HP = next.HP
	s.Stamina = next.Stamina
	clearEmptySelection(s)
	return handlers.Result{Logs: logs}, nil
}

// clearEmptySelection сбрасывает выбор, если слот опустел
func clearEmptySelection(s *domain.GameState) {
	if s.Selected >= 0 && (s.Selected >= len(s.Inventory) || s.Inventory[s.Selected] == nil) {
		s.Selected = -1
	}
}

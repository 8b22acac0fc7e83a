package actions

import (
	"fmt"

	"github.com/jerryeechan/poachers/internal/domain"
	"github.com/jerryeechan/poachers/internal/engine/handlers"
	"github.com/jerryeechan/poachers/internal/systems"
)

// HandleRest готовит отчет об отдыхе. Состояние меняется только после CONFIRM_REST.
func HandleRest(ctx handlers.Context) (handlers.Result, error) {
	s := ctx.State
	if err := requireView(s, domain.ViewMap); err != nil {
		return handlers.Result{}, err
	}

	rep := systems.PrepareRest(ctx.Rng, ctx.Rules, s)
	s.PendingRest = &rep

	return handlers.Result{
		Msg: fmt.Sprintf("Отдых: +%d выносливости, урон %d (врагов: %d), давление -%d, кости %v.",
			rep.StaminaRestore, rep.Damage, rep.EnemiesCount, rep.PressureLoss, rep.Encounter.Dice),
		MsgType: string(domain.LogInfo),
	}, nil
}

// HandleConfirmRest применяет ранее подготовленный отчет
func HandleConfirmRest(ctx handlers.Context) (handlers.Result, error) {
	s := ctx.State
	if s.PendingRest == nil {
		return handlers.Result{}, domain.Refuse(domain.RefuseNoPendingRest, "Сначала нужно решить отдохнуть.")
	}

	next, logs := systems.ApplyRest(ctx.Rules, *s, *s.PendingRest)
	next.PendingRest = nil
	*s = next
	return handlers.Result{Logs: logs}, nil
}

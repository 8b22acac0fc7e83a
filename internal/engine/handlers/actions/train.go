package actions

import (
	"fmt"

	"github.com/jerryeechan/poachers/internal/domain"
	"github.com/jerryeechan/poachers/internal/engine/handlers"
	"github.com/jerryeechan/poachers/internal/systems"
	"github.com/jerryeechan/poachers/pkg/api"
	"github.com/jerryeechan/poachers/pkg/logger"

	"github.com/sirupsen/logrus"
)

// HandleAddFuel бросает одну единицу топлива в котел
func HandleAddFuel(ctx handlers.Context, p api.FuelPayload) (handlers.Result, error) {
	s := ctx.State
	r := ctx.Rules
	if err := requireView(s, domain.ViewMap); err != nil {
		return handlers.Result{}, err
	}

	kind := domain.ParseItemKind(p.Item)
	target := r.TargetPressure(s.Sector)
	res, err := systems.AddFuel(r, kind, s.Inventory, s.Cargo, s.Pressure, target)
	if err != nil {
		return handlers.Result{}, err
	}

	s.Inventory = res.Inventory
	s.Cargo = res.Cargo
	s.Pressure = res.Pressure
	clearEmptySelection(s)

	return handlers.Result{
		Msg:     fmt.Sprintf("Котел: +%d давления (%d/%d).", res.Gain, s.Pressure, target),
		MsgType: string(domain.LogSuccess),
	}, nil
}

// HandleDepart отправляет поезд, если давление набрано
func HandleDepart(ctx handlers.Context) (handlers.Result, error) {
	s := ctx.State
	if err := requireView(s, domain.ViewMap); err != nil {
		return handlers.Result{}, err
	}
	if err := systems.CanDepart(ctx.Rules, s.Sector, s.Pressure); err != nil {
		return handlers.Result{}, err
	}

	s.View = domain.ViewShop
	logger.Log.WithFields(logrus.Fields{
		"component": "train_handler",
		"sector":    s.Sector,
		"pressure":  s.Pressure,
	}).Info("Train departed.")

	return handlers.Result{
		Msg:     fmt.Sprintf("Поезд покидает сектор %d.", s.Sector),
		MsgType: string(domain.LogImportant),
	}, nil
}

// HandleDeposit перекладывает стек из рук в грузовой вагон
func HandleDeposit(ctx handlers.Context, p api.SlotPayload) (handlers.Result, error) {
	s := ctx.State
	inv, cargo, moved, err := systems.MoveStack(ctx.Rules.Ledger(), s.Inventory, s.Cargo, p.Slot)
	if err != nil {
		return handlers.Result{}, err
	}
	kind := s.Inventory[p.Slot].Kind

	s.Inventory = inv
	s.Cargo = cargo
	clearEmptySelection(s)
	return handlers.Result{
		Msg:     fmt.Sprintf("В груз: %s x%d.", kind.Title(), moved),
		MsgType: string(domain.LogInfo),
	}, nil
}

// HandleWithdraw забирает стек из грузового вагона
func HandleWithdraw(ctx handlers.Context, p api.SlotPayload) (handlers.Result, error) {
	s := ctx.State
	cargo, inv, moved, err := systems.MoveStack(ctx.Rules.Ledger(), s.Cargo, s.Inventory, p.Slot)
	if err != nil {
		return handlers.Result{}, err
	}
	kind := s.Cargo[p.Slot].Kind

	s.Inventory = inv
	s.Cargo = cargo
	return handlers.Result{
		Msg:     fmt.Sprintf("Из груза: %s x%d.", kind.Title(), moved),
		MsgType: string(domain.LogInfo),
	}, nil
}

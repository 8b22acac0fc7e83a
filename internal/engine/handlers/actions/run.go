package actions

import (
	"fmt"
	"math/rand"

	"github.com/jerryeechan/poachers/internal/config"
	"github.com/jerryeechan/poachers/internal/domain"
	"github.com/jerryeechan/poachers/internal/engine/handlers"
	"github.com/jerryeechan/poachers/internal/systems"
	"github.com/jerryeechan/poachers/pkg/dungeon"
	"github.com/jerryeechan/poachers/pkg/logger"

	"github.com/sirupsen/logrus"
)

// NewRun создает забег с первого сектора.
// Генератор расходуется так же, как при переезде: сначала карта, потом погода.
func NewRun(r *config.Rules, rng *rand.Rand) domain.GameState {
	s := domain.GameState{
		Sector:    1,
		Day:       1,
		Minutes:   r.Clock.DayStart,
		Stamina:   r.Vitals.MaxStamina,
		HP:        r.Vitals.MaxHP,
		Inventory: domain.NewInventory(r.Capacity.InventorySlots),
		Cargo:     domain.NewInventory(r.CargoSlots(0)),
		Selected:  -1,
	}
	enterSector(r, rng, &s)
	return s
}

// enterSector генерирует сектор s.Sector и ставит поезд на старт
func enterSector(r *config.Rules, rng *rand.Rand, s *domain.GameState) {
	s.Grid = dungeon.Generate(s.Sector, s.Stats.San, r, rng)
	s.Weather = dungeon.RollWeather(rng)
	s.View = domain.ViewMap
	s.Pressure = 0
	s.PendingRest = nil
}

func arrivalText(s *domain.GameState) string {
	return fmt.Sprintf("Прибыли в сектор %d. Погода: %s.", s.Sector, s.Weather)
}

// HandleInit ничего не меняет: клиенту просто нужен свежий снимок
func HandleInit(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{
		Msg:     arrivalText(ctx.State),
		MsgType: string(domain.LogImportant),
	}, nil
}

// HandleRestart начинает новый забег на том же генераторе
func HandleRestart(ctx handlers.Context) (handlers.Result, error) {
	*ctx.State = NewRun(ctx.Rules, ctx.Rng)
	logger.For("run_handler").Info("Run restarted.")
	return handlers.Result{
		Msg:     "Новый забег. " + arrivalText(ctx.State),
		MsgType: string(domain.LogImportant),
	}, nil
}

// HandleNextSector переезжает в следующий сектор после отправления.
// Часть выносливости сгорает в пути, давление сбрасывается.
func HandleNextSector(ctx handlers.Context) (handlers.Result, error) {
	s := ctx.State
	if err := requireView(s, domain.ViewShop); err != nil {
		return handlers.Result{}, err
	}

	s.Sector++
	s.Stats.SectorsPassed++
	s.Stamina = systems.RetainStamina(ctx.Rules, s.Stamina)
	s.Cargo = resizeCargo(s.Cargo, ctx.Rules.CargoSlots(s.CarriageLevel))
	enterSector(ctx.Rules, ctx.Rng, s)

	logger.Log.WithFields(logrus.Fields{
		"component": "run_handler",
		"sector":    s.Sector,
		"weather":   s.Weather.String(),
		"stamina":   s.Stamina,
	}).Info("Sector entered.")

	return handlers.Result{Msg: arrivalText(s), MsgType: string(domain.LogImportant)}, nil
}

// resizeCargo расширяет груз до size слотов. Занятые слоты не теряются.
func resizeCargo(cargo domain.Inventory, size int) domain.Inventory {
	if len(cargo) >= size {
		return cargo
	}
	out := domain.NewInventory(size)
	copy(out, cargo)
	return out
}

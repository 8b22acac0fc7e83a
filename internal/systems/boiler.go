package systems

import (
	"github.com/jerryeechan/poachers/internal/config"
	"github.com/jerryeechan/poachers/internal/domain"
)

// FuelResult - состояние после загрузки топлива
type FuelResult struct {
	Inventory domain.Inventory
	Cargo     domain.Inventory
	Pressure  int
	Gain      int
}

// AddFuel сжигает одну единицу топлива: сначала из рук, потом из груза.
// Давление не поднимается выше цели сектора.
func AddFuel(r *config.Rules, kind domain.ItemKind, inv, cargo domain.Inventory, pressure, target int) (FuelResult, error) {
	gain, ok := r.Boiler.Fuel[kind]
	if !ok {
		return FuelResult{}, domain.Refuse(domain.RefuseNotFuel, "Это не горит: %s.", kind.Title())
	}
	if pressure >= target {
		return FuelResult{}, domain.Refuse(domain.RefuseBoilerFull, "Котел уже под давлением.")
	}

	p, c, ok := r.Ledger().ConsumeAcrossTwo(inv, cargo, []domain.Ingredient{{Item: kind, Count: 1}})
	if !ok {
		return FuelResult{}, domain.Refuse(domain.RefuseInsufficientResources, "Нет топлива: %s.", kind.Title())
	}

	next := min(pressure+gain, target)
	return FuelResult{Inventory: p, Cargo: c, Pressure: next, Gain: next - pressure}, nil
}

// CanDepart проверяет, что давления хватает для отправления
func CanDepart(r *config.Rules, sector, pressure int) error {
	target := r.TargetPressure(sector)
	if pressure < target {
		return domain.Refuse(domain.RefusePressureLow, "Мало давления: %d/%d.", pressure, target)
	}
	return nil
}

// RetainStamina - сколько выносливости остается после переезда
func RetainStamina(r *config.Rules, stamina int) int {
	return int(float64(stamina) * r.Boiler.StaminaRetain)
}

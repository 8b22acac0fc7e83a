package systems

import (
	"github.com/jerryeechan/poachers/internal/config"
	"github.com/jerryeechan/poachers/internal/domain"
)

// Vitals - текущие и максимальные показатели игрока
type Vitals struct {
	HP         int
	MaxHP      int
	Stamina    int
	MaxStamina int
}

// ConsumeItem съедает одну единицу из слота. Эффект обрезается по максимумам.
// Отказывает, если предмет не съедобен или оба показателя уже полные.
func ConsumeItem(r *config.Rules, inv domain.Inventory, slot int, v Vitals) (domain.Inventory, Vitals, []domain.LogLine, error) {
	if slot < 0 || slot >= len(inv) || inv[slot] == nil {
		return inv, v, nil, domain.Refuse(domain.RefuseInvalidSlot, "Слот %d пуст.", slot)
	}
	kind := inv[slot].Kind
	effect, ok := r.Consumables[kind]
	if !ok {
		return inv, v, nil, domain.Refuse(domain.RefuseNotUsable, "Это нельзя съесть: %s.", kind.Title())
	}
	if v.HP >= v.MaxHP && v.Stamina >= v.MaxStamina {
		return inv, v, nil, domain.Refuse(domain.RefuseFullVitals, "Здоровье и силы и так полные!")
	}

	out, taken := r.Ledger().TakeFromSlot(inv, slot, 1)
	if taken == 0 {
		return inv, v, nil, domain.Refuse(domain.RefuseInvalidSlot, "Слот %d пуст.", slot)
	}

	next := v
	next.HP = min(v.MaxHP, v.HP+effect.Heal)
	next.Stamina = min(v.MaxStamina, v.Stamina+effect.Stamina)

	logs := []domain.LogLine{domain.Line(domain.LogSuccess,
		"Съедено: "+kind.Title()+".")}
	return out, next, logs, nil
}

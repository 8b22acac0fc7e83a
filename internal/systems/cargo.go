package systems

import (
	"github.com/jerryeechan/poachers/internal/domain"
)

// MoveStack перекладывает стек из слота from[slot] в инвентарь to.
// То, что не поместилось, остается на месте. Изношенность инструмента сохраняется.
func MoveStack(ledger domain.Ledger, from, to domain.Inventory, slot int) (domain.Inventory, domain.Inventory, int, error) {
	if slot < 0 || slot >= len(from) || from[slot] == nil {
		return from, to, 0, domain.Refuse(domain.RefuseInvalidSlot, "Слот %d пуст.", slot)
	}
	stack := from[slot]

	nextTo, added := ledger.Add(to, stack.Kind, stack.Count, stack.Durability)
	if added == 0 {
		return from, to, 0, domain.Refuse(domain.RefuseCapacityExceeded, "Нет места для: %s.", stack.Kind.Title())
	}
	nextFrom, _ := ledger.TakeFromSlot(from, slot, added)
	return nextFrom, nextTo, added, nil
}

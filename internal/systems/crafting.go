package systems

import (
	"fmt"

	"github.com/jerryeechan/poachers/internal/config"
	"github.com/jerryeechan/poachers/internal/domain"
	"github.com/jerryeechan/poachers/pkg/logger"

	"github.com/sirupsen/logrus"
)

// CraftResult - новые инвентари после крафта
type CraftResult struct {
	Inventory domain.Inventory
	Cargo     domain.Inventory
	Stamina   int
	Added     int  // сколько результата поместилось
	Repaired  bool // инструмент починен, а не создан
	Log       []domain.LogLine
}

// findDurable ищет изнашиваемый предмет типа kind
func findDurable(inv domain.Inventory, kind domain.ItemKind) int {
	for i, s := range inv {
		if s != nil && s.Kind == kind && s.MaxDurability > 0 {
			return i
		}
	}
	return -1
}

// Craft выполняет рецепт. Сырье списывается сначала из личного инвентаря, затем из груза.
// Если такой инструмент уже есть, рецепт чинит его вместо создания нового.
func Craft(r *config.Rules, recipeID string, inv, cargo domain.Inventory, stamina int) (CraftResult, error) {
	rec, ok := r.Recipe(recipeID)
	if !ok {
		return CraftResult{}, domain.Refuse(domain.RefuseUnknownRecipe, "Неизвестный рецепт %q.", recipeID)
	}
	if stamina < rec.StaminaCost {
		return CraftResult{}, domain.Refuse(domain.RefuseInsufficientStamina,
			"Нужно %d выносливости.", rec.StaminaCost)
	}

	ledger := r.Ledger()
	p, c, ok := ledger.ConsumeAcrossTwo(inv, cargo, rec.Inputs)
	if !ok {
		return CraftResult{}, domain.Refuse(domain.RefuseInsufficientResources, "Не хватает материалов.")
	}

	res := CraftResult{Inventory: p, Cargo: c, Stamina: stamina - rec.StaminaCost}
	out := rec.Output

	craftLogger := logger.Log.WithFields(logrus.Fields{
		"component": "crafting_system",
		"recipe":    rec.ID,
	})

	if r.Items[out.Item].Durable {
		if slot := findDurable(res.Inventory, out.Item); slot >= 0 {
			res.Inventory = ledger.Restore(res.Inventory, slot, rec.Durability)
			res.Repaired = true
		} else if slot := findDurable(res.Cargo, out.Item); slot >= 0 {
			res.Cargo = ledger.Restore(res.Cargo, slot, rec.Durability)
			res.Repaired = true
		}
		if res.Repaired {
			res.Added = out.Count
			res.Log = append(res.Log, domain.Line(domain.LogSuccess,
				fmt.Sprintf("Починено: %s (прочность %d).", out.Item.Title(), rec.Durability)))
			craftLogger.Debug("Tool repaired.")
			return res, nil
		}
	}

	res.Inventory, res.Added = ledger.Add(res.Inventory, out.Item, out.Count, rec.Durability)
	if res.Added > 0 {
		res.Log = append(res.Log, domain.Line(domain.LogSuccess,
			fmt.Sprintf("Создано: %s x%d.", out.Item.Title(), res.Added)))
	}
	if res.Added < out.Count {
		res.Log = append(res.Log, domain.Line(domain.LogWarning,
			fmt.Sprintf("Нет места: потеряно %d %s.", out.Count-res.Added, out.Item.Title())))
	}
	craftLogger.WithField("added", res.Added).Debug("Item crafted.")
	return res, nil
}

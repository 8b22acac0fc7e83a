package actions

import (
	"github.com/jerryeechan/poachers/internal/domain"
	"github.com/jerryeechan/poachers/internal/engine/handlers"
	"github.com/jerryeechan/poachers/internal/systems"
	"github.com/jerryeechan/poachers/pkg/api"
	"github.com/jerryeechan/poachers/pkg/logger"

	"github.com/sirupsen/logrus"
)

// HandleCraft выполняет рецепт в мастерской
func HandleCraft(ctx handlers.Context, p api.RecipePayload) (handlers.Result, error) {
	s := ctx.State
	if err := requireView(s, domain.ViewMap, domain.ViewShop); err != nil {
		return handlers.Result{}, err
	}

	res, err := systems.Craft(ctx.Rules, p.Recipe, s.Inventory, s.Cargo, s.Stamina)
	if err != nil {
		return handlers.Result{}, err
	}

	s.Inventory = res.Inventory
	s.Cargo = res.Cargo
	s.Stamina = res.Stamina
	s.Stats.ItemsCrafted++

	logger.Log.WithFields(logrus.Fields{
		"component": "craft_handler",
		"recipe":    p.Recipe,
		"repaired":  res.Repaired,
	}).Info("Recipe completed.")

	return handlers.Result{Logs: res.Log}, nil
}

package agent

import (
	"encoding/json"
	"sort"

	"github.com/jerryeechan/poachers/internal/domain"
	"github.com/jerryeechan/poachers/internal/engine"
	"github.com/jerryeechan/poachers/pkg/api"
	"github.com/jerryeechan/poachers/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Bot представляет собой "Игрока-компьютера" (Headless Agent).
// Он видит забег только через снимки api.StateView, как обычный клиент,
// и отвечает командами через тот же Session.Execute.
//
// Жизненный цикл:
//  1. NewBot -> привязка к сессии.
//  2. Step -> снимок, выбор команды, выполнение. Отказы ядра пробуются по очереди.
//  3. Run -> Step до конца игры или лимита ходов.
type Bot struct {
	Session *engine.Session
	log     *logrus.Entry
}

func NewBot(s *engine.Session) *Bot {
	return &Bot{
		Session: s,
		log: logger.Log.WithFields(logrus.Fields{
			"component": "bot",
			"session":   s.ID,
		}),
	}
}

// Run делает до turns ходов. Возвращает число принятых команд.
func (b *Bot) Run(turns int) int {
	accepted := 0
	for i := 0; i < turns; i++ {
		ok := b.Step()
		if !ok {
			break
		}
		accepted++
	}
	b.log.WithFields(logrus.Fields{
		"accepted": accepted,
		"sector":   b.Session.State.Sector,
		"view":     b.Session.State.View.String(),
	}).Info("Bot finished")
	return accepted
}

// Step выполняет одну принятую команду. false - ходить больше некуда или игра окончена.
func (b *Bot) Step() bool {
	view := engine.BuildSnapshot(b.Session)
	if view.View == domain.ViewGameOver.String() {
		return false
	}

	for _, cmd := range b.plan(view) {
		err := b.Session.Execute(cmd)
		if err == nil {
			return true
		}
		if _, refused := domain.AsRefusal(err); !refused {
			b.log.WithError(err).Error("Bot sent a malformed command")
			return false
		}
	}
	return false
}

// plan - кандидаты в порядке предпочтения. Первый принятый ядром выполняется.
func (b *Bot) plan(v api.StateView) []api.ClientCommand {
	if v.View == domain.ViewShop.String() {
		return []api.ClientCommand{command(domain.ActionNextSector, nil)}
	}
	if v.PendingRest != nil {
		return []api.ClientCommand{command(domain.ActionConfirmRest, nil)}
	}

	var plan []api.ClientCommand
	if v.Train.Pressure >= v.Train.TargetPressure {
		plan = append(plan, command(domain.ActionDepart, nil))
	}

	inv := countItems(v.Inventory)
	if v.Vitals.HP*2 < v.Vitals.MaxHP {
		if slot := findSlot(v.Inventory, "BERRY"); slot >= 0 {
			plan = append(plan, command(domain.ActionUseItem, api.SlotPayload{Slot: slot}))
		}
	}
	if inv["CHARCOAL"] > 0 {
		plan = append(plan, command(domain.ActionAddFuel, api.FuelPayload{Item: "CHARCOAL"}))
	}
	if inv["AXE"] == 0 {
		plan = append(plan, command(domain.ActionCraft, api.RecipePayload{Recipe: "axe"}))
	}
	if inv["PICKAXE"] == 0 && inv["WOOD"] >= 5 {
		plan = append(plan, command(domain.ActionCraft, api.RecipePayload{Recipe: "pickaxe"}))
	}
	if inv["WOOD"] >= 8 {
		plan = append(plan, command(domain.ActionAddFuel, api.FuelPayload{Item: "WOOD"}))
	}

	for _, t := range rankTiles(v) {
		plan = append(plan, command(domain.ActionClickTile, api.TilePayload{X: t.X, Y: t.Y}))
	}

	return append(plan, command(domain.ActionRest, nil))
}

// rankTiles упорядочивает клетки: враги по силам, спасение, ремонт, добыча, исследование
func rankTiles(v api.StateView) []api.TileView {
	var out []api.TileView
	score := map[int]int{}
	for _, t := range v.Map {
		p, ok := tilePriority(t, v.Vitals)
		if !ok {
			continue
		}
		score[t.Y*v.Grid.Width+t.X] = p
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return score[out[i].Y*v.Grid.Width+out[i].X] > score[out[j].Y*v.Grid.Width+out[j].X]
	})
	return out
}

func tilePriority(t api.TileView, vit api.VitalsView) (int, bool) {
	switch t.Visibility {
	case domain.Peeked.String():
		return 10, true
	case domain.Revealed.String():
	default:
		return 0, false
	}
	if t.Cleared && t.ScavengeLeft == 0 && !t.IsBroken {
		return 0, false
	}

	switch t.Kind {
	case domain.TileEnemy.String():
		if t.Attack < vit.HP-2 {
			return 50, true
		}
	case domain.TileNPC.String():
		return 40, true
	case domain.TileTrack.String(), domain.TileBridge.String():
		if t.IsBroken {
			return 30, true
		}
	case domain.TileTree.String(), domain.TileRock.String():
		return 20, true
	case domain.TileSearch.String():
		if t.ScavengeLeft > 0 {
			return 15, true
		}
	}
	return 0, false
}

func countItems(slots []api.SlotView) map[string]int {
	out := map[string]int{}
	for _, s := range slots {
		if s.Item != "" {
			out[s.Item] += s.Count
		}
	}
	return out
}

func findSlot(slots []api.SlotView, item string) int {
	for _, s := range slots {
		if s.Item == item {
			return s.Slot
		}
	}
	return -1
}

func command(action domain.ActionType, payload any) api.ClientCommand {
	cmd := api.ClientCommand{Action: action.String()}
	if payload != nil {
		// Payload - наши собственные DTO, Marshal для них не падает
		cmd.Payload, _ = json.Marshal(payload)
	}
	return cmd
}

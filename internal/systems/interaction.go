package systems

import (
	"fmt"
	"math/rand"

	"github.com/jerryeechan/poachers/internal/config"
	"github.com/jerryeechan/poachers/internal/domain"
	"github.com/jerryeechan/poachers/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Actor - то, что резолвер знает об игроке
type Actor struct {
	Inventory domain.Inventory
	Selected  int
	Attack    int // урон в ближнем бою с учетом баффов
	Sector    int
	San       int
}

// LootReport - сколько выпало и сколько реально поместилось
type LootReport struct {
	Item      domain.ItemKind
	Requested int
	Added     int
}

// Outcome - результат одного клика. Оркестратор применяет его целиком.
type Outcome struct {
	Grid      domain.Grid
	Inventory domain.Inventory
	Selected  int

	HPDelta   int
	GoldDelta int
	Stats     domain.Stats // дельта статистики

	Rescued  *domain.NPC
	Loot     []LootReport
	Ambushed []domain.Position
	Log      []domain.LogLine
}

// resolution - рабочая копия, которую мутируют ветки резолвера
type resolution struct {
	rules  *config.Rules
	rng    *rand.Rand
	ledger domain.Ledger
	actor  Actor
	out    Outcome
	log    *logrus.Entry
}

func (res *resolution) say(t domain.LogType, format string, args ...any) {
	res.out.Log = append(res.out.Log, domain.Line(t, fmt.Sprintf(format, args...)))
}

// addLoot кладет добычу через реестр и засчитывает в статистику только поместившееся
func (res *resolution) addLoot(kind domain.ItemKind, count int) {
	if count <= 0 {
		return
	}
	inv, added := res.ledger.Add(res.out.Inventory, kind, count, 0)
	res.out.Inventory = inv
	res.out.Loot = append(res.out.Loot, LootReport{Item: kind, Requested: count, Added: added})

	switch kind {
	case domain.ItemWood:
		res.out.Stats.TotalWood += added
	case domain.ItemStone:
		res.out.Stats.TotalStone += added
	}
	if added < count {
		res.say(domain.LogWarning, "Нет места: потеряно %d %s.", count-added, kind.Title())
	}
}

// wearTool изнашивает инструмент. Сломанный инструмент исчезает, выбор сбрасывается.
func (res *resolution) wearTool(slot int) {
	if slot < 0 {
		return
	}
	kind := res.out.Inventory[slot].Kind
	inv, broken := res.ledger.DecreaseDurability(res.out.Inventory, slot)
	res.out.Inventory = inv
	if broken {
		res.say(domain.LogWarning, "Инструмент сломался: %s.", kind.Title())
		if res.out.Selected == slot {
			res.out.Selected = -1
		}
	}
}

// Resolve выполняет уже проверенное действие над клеткой (x, y).
// Исходные сетка и инвентарь не меняются.
func Resolve(rng *rand.Rand, r *config.Rules, g domain.Grid, actor Actor, x, y int) (Outcome, error) {
	idx := g.Index(x, y)
	if idx < 0 {
		return Outcome{}, domain.Refuse(domain.RefuseNotClickable, "Клетка (%d, %d) вне карты.", x, y)
	}

	res := &resolution{
		rules:  r,
		rng:    rng,
		ledger: r.Ledger(),
		actor:  actor,
		out: Outcome{
			Grid:      g.Clone(),
			Inventory: actor.Inventory,
			Selected:  actor.Selected,
		},
		log: logger.Log.WithFields(logrus.Fields{
			"component": "interaction_system",
			"x":         x,
			"y":         y,
		}),
	}
	t := &res.out.Grid.Tiles[idx]

	if t.IsExplorable() {
		res.explore(idx)
		return res.out, nil
	}

	var err error
	switch t.Kind {
	case domain.TileEnemy:
		res.combat(t)
	case domain.TileTree, domain.TileRock:
		res.gather(t)
	case domain.TileSearch:
		err = res.scavenge(t)
	case domain.TileNPC:
		res.rescue(t)
	case domain.TileTrack, domain.TileBridge:
		err = res.repair(t)
	default:
		err = domain.Refuse(domain.RefuseNotClickable, "Здесь нечего делать.")
	}
	if err != nil {
		return Outcome{}, err
	}
	return res.out, nil
}

// explore продвигает исследование. Порядок бросков: награда, ягоды (только земля), засада.
func (res *resolution) explore(idx int) {
	t := &res.out.Grid.Tiles[idx]
	need := max(1, t.MaxExploration)
	t.ExplorationProgress++
	if t.ExplorationProgress < need {
		res.say(domain.LogInfo, "Исследование... (%d/%d)", t.ExplorationProgress, need)
		return
	}

	t.Revealed = true
	t.Peeked = false
	kind := t.Kind

	reward, hasReward := res.rules.Exploration.Rewards[kind]
	if hasReward {
		res.say(domain.LogSuccess, "Исследовано: найдено %d %s.", reward.Count, reward.Item.Title())
		res.addLoot(reward.Item, reward.Count)
	}

	switch {
	case kind == domain.TileSearch:
		if res.rng.Float64() < res.rules.Exploration.BerryChance {
			amount := res.rules.Exploration.Berry.Roll(res.rng)
			res.say(domain.LogSuccess, "Дикие ягоды (+%d)", amount)
			res.addLoot(domain.ItemBerry, amount)
		} else {
			res.say(domain.LogInfo, "Местность исследована.")
		}
		t.Cleared = true
	case kind == domain.TileEnemy:
		res.say(domain.LogCombat, "Обнаружен враг! (атака %d, здоровье %d)", t.Attack, t.HP)
	case kind == domain.TileNPC:
		res.say(domain.LogImportant, "Найден выживший! Нужна помощь.")
	case !hasReward:
		res.say(domain.LogInfo, "Местность исследована.")
	}

	res.log.WithField("kind", kind.String()).Debug("Tile revealed.")

	before := res.out.Grid
	res.out.Grid = UpdatePeekStatus(before)
	res.ambush(before)
}

// ambush: враги, которые только что показались из тумана, бьют сразу
func (res *resolution) ambush(before domain.Grid) {
	damage := 0
	for _, i := range NewlyPeeked(before, res.out.Grid) {
		t := res.out.Grid.Tiles[i]
		if t.Kind != domain.TileEnemy || t.Cleared {
			continue
		}
		damage += t.Attack
		res.out.Ambushed = append(res.out.Ambushed, domain.Position{X: t.X, Y: t.Y})
	}
	if damage == 0 {
		return
	}
	res.out.HPDelta -= damage
	res.say(domain.LogCombat, "Засада! (-%d HP)", damage)
	res.log.WithFields(logrus.Fields{
		"enemies": len(res.out.Ambushed),
		"damage":  damage,
	}).Info("Ambush triggered by reveal.")
}

// combat: один обмен ударами. Лук никогда не получает ответного удара.
// Порядок бросков при победе: дерево, камень, золото, ключ.
func (res *resolution) combat(t *domain.Tile) {
	inv := res.out.Inventory
	sel := res.out.Selected
	usingBow := sel >= 0 && sel < len(inv) && inv[sel] != nil && inv[sel].Kind == domain.ItemBow

	dmg := res.actor.Attack
	if usingBow {
		dmg = res.rules.Vitals.BowDamage
	}
	enemyAtk := t.Attack
	t.HP -= dmg

	if t.HP <= 0 {
		e := res.rules.Enemies
		level := res.rules.EnemyLevel(res.actor.Sector, res.actor.San)
		wood := e.LootWood.Roll(res.rng)
		stone := e.LootStone.Roll(res.rng)
		gold := e.Gold.Roll(res.rng)
		key := res.rng.Float64() < e.KeyChance+float64(level)*e.KeyChancePerLevel

		t.ClearToGround()
		res.out.Stats.EnemiesDefeated++
		res.out.GoldDelta += gold

		msg := "Враг повержен!"
		if gold > 0 {
			msg += fmt.Sprintf(" (+%d золота)", gold)
		}
		if key {
			msg += " (Найден ключ!)"
		}
		res.say(domain.LogSuccess, "%s", msg)

		res.addLoot(domain.ItemWood, wood)
		res.addLoot(domain.ItemStone, stone)
		if key {
			res.addLoot(domain.ItemKey, 1)
		}

		if usingBow {
			res.say(domain.LogSuccess, "Точный выстрел! Урона нет.")
		} else {
			res.out.HPDelta -= enemyAtk
			res.say(domain.LogWarning, "Получено %d урона!", enemyAtk)
		}

		res.log.WithFields(logrus.Fields{
			"level": level,
			"gold":  gold,
			"key":   key,
		}).Info("Enemy defeated.")
	} else if usingBow {
		res.say(domain.LogCombat, "Попадание из лука: %d. Враг не достал вас.", dmg)
	} else {
		res.out.HPDelta -= enemyAtk
		res.say(domain.LogCombat, "Удар на %d. Получено %d урона!", dmg, enemyAtk)
	}

	if usingBow {
		res.wearTool(sel)
	}
}

// requiredTool - слот инструмента для клетки или -1, если он не нужен
func (res *resolution) requiredTool(kind domain.TileKind) int {
	tool, ok := res.rules.ToolFor(kind)
	if !ok {
		return -1
	}
	return res.out.Inventory.FindTool(tool, res.out.Selected)
}

// gather: рубка дерева или добыча камня
func (res *resolution) gather(t *domain.Tile) {
	slot := res.requiredTool(t.Kind)

	switch t.Kind {
	case domain.TileTree:
		amount := res.rules.Loot.Tree.Roll(res.rng)
		res.say(domain.LogSuccess, "Рубка (+%d дерева)", amount)
		res.addLoot(domain.ItemWood, amount)
		t.ScavengeLeft--
		t.SearchCount++
		if t.ScavengeLeft <= 0 {
			t.ClearToGround()
		}
	case domain.TileRock:
		amount := res.rules.Loot.Rock.Roll(res.rng)
		res.say(domain.LogSuccess, "Добыча (+%d камня)", amount)
		res.addLoot(domain.ItemStone, amount)
		t.ClearToGround()
	}

	res.wearTool(slot)
}

// scavenge: поиск на расчищенной земле, один бросок на клик
func (res *resolution) scavenge(t *domain.Tile) error {
	if t.ScavengeLeft <= 0 {
		return domain.Refuse(domain.RefuseNotClickable, "Здесь больше ничего нет.")
	}
	roll := res.rng.Float64()
	switch {
	case roll < res.rules.Loot.ScavengeWoodChance:
		res.say(domain.LogSuccess, "Найдены ветки (+1 дерево)")
		res.addLoot(domain.ItemWood, 1)
	case roll < res.rules.Loot.ScavengeStoneChance:
		res.say(domain.LogSuccess, "Найден камень (+1 камень)")
		res.addLoot(domain.ItemStone, 1)
	default:
		res.say(domain.LogInfo, "Ничего не найдено.")
	}
	t.ScavengeLeft--
	t.SearchCount++
	return nil
}

var buffTitles = map[domain.BuffType]string{
	domain.BuffStamina: "макс. выносливость",
	domain.BuffHealth:  "макс. здоровье",
	domain.BuffAttack:  "сила атаки",
}

// rescue: обратный отсчет спасения NPC
func (res *resolution) rescue(t *domain.Tile) {
	slot := res.requiredTool(t.Kind)
	t.RescueProgress--
	if t.RescueProgress > 0 {
		res.say(domain.LogInfo, "Спасение... осталось ходов: %d", t.RescueProgress)
		res.wearTool(slot)
		return
	}

	buff := t.NPCBuff
	if buff == domain.BuffUnknown {
		buff = domain.BuffStamina
	}
	t.ClearToGround()
	res.out.Rescued = &domain.NPC{Buff: buff}
	res.say(domain.LogImportant, "Выживший спасен! Бонус: %s.", buffTitles[buff])
	res.wearTool(slot)
	res.log.WithField("buff", buff.String()).Info("NPC rescued.")
}

// repair: ремонт пути. Материалы списываются в момент завершения.
func (res *resolution) repair(t *domain.Tile) error {
	if !t.IsBroken {
		return domain.Refuse(domain.RefuseNotClickable, "Путь цел.")
	}
	tracks := res.rules.Map.Tracks
	need := max(1, t.MaxRepairProgress)
	t.RepairProgress++
	if t.RepairProgress < need {
		res.say(domain.LogInfo, "Ремонт... (%d/%d)", t.RepairProgress, need)
		return nil
	}

	inv, _, ok := res.ledger.ConsumeAcrossTwo(res.out.Inventory, nil, []domain.Ingredient{
		{Item: domain.ItemWood, Count: tracks.RepairWood},
		{Item: domain.ItemStone, Count: tracks.RepairStone},
	})
	if !ok {
		return domain.Refuse(domain.RefuseInsufficientResources,
			"Для ремонта нужно %d дерева и %d камня!", tracks.RepairWood, tracks.RepairStone)
	}
	res.out.Inventory = inv
	t.IsBroken = false
	t.RepairProgress = 0
	res.say(domain.LogSuccess, "Путь отремонтирован.")
	res.log.Info("Track repaired.")
	return nil
}

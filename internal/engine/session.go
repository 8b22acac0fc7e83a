package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/jerryeechan/poachers/internal/config"
	"github.com/jerryeechan/poachers/internal/domain"
	"github.com/jerryeechan/poachers/internal/engine/handlers"
	"github.com/jerryeechan/poachers/internal/engine/handlers/actions"
	"github.com/jerryeechan/poachers/internal/engine/handlers/admin"
	"github.com/jerryeechan/poachers/internal/network"
	"github.com/jerryeechan/poachers/internal/systems"
	"github.com/jerryeechan/poachers/pkg/api"
	"github.com/jerryeechan/poachers/pkg/logger"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrUnknownAction - команда с неизвестным именем действия
var ErrUnknownAction = errors.New("unknown action")

// Session - один забег. Единственный владелец GameState: ядро получает поля явно,
// хендлеры мутируют состояние только через Context.
// Session не потокобезопасна, команды выполняются строго по очереди.
type Session struct {
	ID    string
	State domain.GameState
	Rules *config.Rules

	Rng  *rand.Rand // Локальный генератор
	Seed int64      // Сид, с которого начался забег

	Logs    []api.LogEntry  // Лог с последнего снимка
	Journal *domain.Journal // Принятые команды для повтора

	// Hub - наблюдатели. Если кто-то подписан, снимок рассылается после каждой команды.
	Hub *network.Broadcaster

	handlers map[domain.ActionType]handlers.HandlerFunc
	log      *logrus.Entry
}

// NewSession создает забег на сиде cfg.Seed и сразу генерирует первый сектор
func NewSession(cfg Config, rules *config.Rules) *Session {
	id := uuid.NewString()
	s := &Session{
		ID:    id,
		Rules: rules,
		Rng:   rand.New(rand.NewSource(cfg.Seed)),
		Seed:  cfg.Seed,
		Logs:  []api.LogEntry{},
		Journal: &domain.Journal{
			Seed:      cfg.Seed,
			Timestamp: time.Now().Unix(),
			Entries:   make([]domain.JournalEntry, 0),
		},
		log: logger.Log.WithFields(logrus.Fields{
			"component": "session",
			"session":   id,
		}),
	}
	s.registerHandlers()

	s.State = actions.NewRun(rules, s.Rng)
	s.log.WithFields(logrus.Fields{
		"seed":    cfg.Seed,
		"weather": s.State.Weather.String(),
	}).Info("Session started")
	s.AddLog(fmt.Sprintf("Прибыли в сектор %d. Сканирование завершено.", s.State.Sector), string(domain.LogImportant))
	return s
}

func (s *Session) registerHandlers() {
	s.handlers = map[domain.ActionType]handlers.HandlerFunc{
		domain.ActionInit:        handlers.WithEmptyPayload(actions.HandleInit),
		domain.ActionClickTile:   handlers.WithPayload(actions.HandleClickTile),
		domain.ActionSelectSlot:  handlers.WithPayload(actions.HandleSelectSlot),
		domain.ActionUseItem:     handlers.WithPayload(actions.HandleUseItem),
		domain.ActionRest:        handlers.WithEmptyPayload(actions.HandleRest),
		domain.ActionConfirmRest: handlers.WithEmptyPayload(actions.HandleConfirmRest),
		domain.ActionCraft:       handlers.WithPayload(actions.HandleCraft),
		domain.ActionAddFuel:     handlers.WithPayload(actions.HandleAddFuel),
		domain.ActionDepart:      handlers.WithEmptyPayload(actions.HandleDepart),
		domain.ActionNextSector:  handlers.WithEmptyPayload(actions.HandleNextSector),
		domain.ActionDeposit:     handlers.WithPayload(actions.HandleDeposit),
		domain.ActionWithdraw:    handlers.WithPayload(actions.HandleWithdraw),
		domain.ActionRestart:     handlers.WithEmptyPayload(actions.HandleRestart),

		domain.ActionAdminHeal:      handlers.WithEmptyPayload(admin.HandleHeal),
		domain.ActionAdminRevealAll: handlers.WithEmptyPayload(admin.HandleRevealAll),
		domain.ActionAdminInspect:   handlers.WithPayload(admin.HandleInspect),
	}
}

// Execute разбирает и выполняет команду.
// Отказ ядра возвращается как *domain.Refusal и пишется в лог как ERROR; состояние не меняется.
func (s *Session) Execute(cmd api.ClientCommand) error {
	return s.ExecuteInternal(domain.InternalCommand{
		Action:  domain.ParseAction(cmd.Action),
		Payload: cmd.Payload,
	})
}

// ExecuteInternal выполняет уже разобранную команду. Через него идет и повтор журнала.
func (s *Session) ExecuteInternal(cmd domain.InternalCommand) error {
	defer s.publishUpdate()

	handler, ok := s.handlers[cmd.Action]
	if !ok {
		s.log.WithField("action", cmd.Action.String()).Warn("Unknown action")
		return fmt.Errorf("%w: %s", ErrUnknownAction, cmd.Action)
	}

	if s.State.View == domain.ViewGameOver && !allowedAfterDeath(cmd.Action) {
		return s.refuse(cmd, domain.Refuse(domain.RefuseWrongView, "Игра окончена. Начните заново."))
	}

	ctx := handlers.Context{
		State: &s.State,
		Rules: s.Rules,
		Rng:   s.Rng,
	}

	result, err := handler(ctx, cmd.Payload)
	if err != nil {
		return s.refuse(cmd, err)
	}

	if !keepsPendingRest(cmd.Action) {
		s.State.PendingRest = nil
	}
	if !cmd.Action.IsReadOnly() {
		s.Journal.Record(cmd)
	}

	for _, line := range result.Logs {
		s.AddLog(line.Text, string(line.Type))
	}
	if result.Msg != "" {
		s.AddLog(result.Msg, result.MsgType)
	}

	s.advanceClock(result.Elapsed)
	s.checkGameOver()
	return nil
}

// publishUpdate рассылает снимок наблюдателям и очищает лог после рассылки
func (s *Session) publishUpdate() {
	if s.Hub == nil || s.Hub.SubscriberCount() == 0 {
		return
	}
	if dropped := s.Hub.Broadcast(BuildSnapshot(s)); dropped > 0 {
		s.log.WithField("dropped", dropped).Debug("Observers lag behind")
	}
	s.DrainLogs()
}

// refuse пишет отказ в лог игрока. Ошибки формата логируются только в logrus.
func (s *Session) refuse(cmd domain.InternalCommand, err error) error {
	entry := s.log.WithFields(logrus.Fields{
		"action": cmd.Action.String(),
		"error":  err.Error(),
	})
	if r, ok := domain.AsRefusal(err); ok {
		entry.WithField("code", string(r.Code)).Debug("Action refused")
		s.AddLog(r.Message, string(domain.LogError))
		return err
	}
	entry.Warn("Malformed command")
	s.AddLog("Некорректная команда.", string(domain.LogError))
	return err
}

// advanceClock двигает часы и таймеры пассивных атак врагов
func (s *Session) advanceClock(minutes int) {
	if minutes <= 0 {
		return
	}
	st := &s.State
	st.Minutes += minutes
	if day := s.Rules.Clock.MinutesPerDay; day > 0 {
		for st.Minutes >= day {
			st.Minutes -= day
			st.Day++
		}
	}

	grid, damage, logs := systems.TickEnemyAttacks(st.Grid, minutes, s.Rules.Enemies.PassiveInterval)
	st.Grid = grid
	st.HP -= damage
	for _, line := range logs {
		s.AddLog(line.Text, string(line.Type))
	}
}

// checkGameOver переводит забег на экран итогов, когда здоровье кончилось
func (s *Session) checkGameOver() {
	st := &s.State
	if st.HP > 0 || st.View == domain.ViewGameOver {
		return
	}
	st.View = domain.ViewGameOver
	st.PendingRest = nil

	score := systems.CalculateFinalScore(s.Rules, st.Stats, st.Gold)
	s.log.WithFields(logrus.Fields{
		"sector": st.Sector,
		"day":    st.Day,
		"score":  score.Total,
	}).Info("Game over")
	s.AddLog(fmt.Sprintf("Вы погибли в секторе %d. Итог: %d очков.", st.Sector, score.Total), string(domain.LogImportant))
}

// Score - итог забега по текущей статистике
func (s *Session) Score() systems.Score {
	return systems.CalculateFinalScore(s.Rules, s.State.Stats, s.State.Gold)
}

func allowedAfterDeath(a domain.ActionType) bool {
	return a == domain.ActionInit || a == domain.ActionRestart || a.IsAdmin()
}

// keepsPendingRest - команды, после которых отчет об отдыхе остается в силе
func keepsPendingRest(a domain.ActionType) bool {
	switch a {
	case domain.ActionRest, domain.ActionInit, domain.ActionAdminInspect:
		return true
	}
	return false
}

// Replay выполняет журнал на новой сессии с тем же сидом.
// Отказы внутри журнала не прерывают повтор: их не должно быть, но состояние они не меняют.
func Replay(j *domain.Journal, rules *config.Rules) (*Session, error) {
	s := NewSession(Config{Seed: j.Seed}, rules)
	for _, e := range j.Entries {
		err := s.ExecuteInternal(domain.InternalCommand{Action: e.Action, Payload: e.Payload})
		if err != nil && !isRefusal(err) {
			return s, fmt.Errorf("replay step %d (%s): %w", e.Step, e.Action, err)
		}
	}
	return s, nil
}

func isRefusal(err error) bool {
	_, ok := domain.AsRefusal(err)
	return ok
}

// Fingerprint - JSON состояния для сравнения повторов.
// ID стеков генерируются случайно, поэтому в отпечаток не входят.
func (s *Session) Fingerprint() ([]byte, error) {
	st := s.State
	st.Inventory = withoutIDs(st.Inventory)
	st.Cargo = withoutIDs(st.Cargo)
	return json.Marshal(st)
}

func withoutIDs(inv domain.Inventory) domain.Inventory {
	out := make(domain.Inventory, len(inv))
	for i, stack := range inv {
		if stack == nil {
			continue
		}
		c := *stack
		c.ID = ""
		out[i] = &c
	}
	return out
}

package engine

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/jerryeechan/poachers/internal/config"
	"github.com/jerryeechan/poachers/internal/domain"
	"github.com/jerryeechan/poachers/internal/network"
	"github.com/jerryeechan/poachers/pkg/api"
	"github.com/jerryeechan/poachers/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func newTestSession(t *testing.T, seed int64) *Session {
	t.Helper()
	return NewSession(Config{Seed: seed}, config.Default())
}

func command(t *testing.T, action string, payload any) api.ClientCommand {
	t.Helper()
	cmd := api.ClientCommand{Action: action}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		cmd.Payload = raw
	}
	return cmd
}

// safeTile - земля прямо над мастерской, всегда подсмотрена на старте
func safeTile(r *config.Rules) api.TilePayload {
	return api.TilePayload{X: r.Grid.CenterX, Y: r.Grid.SpineRow - 1}
}

func TestNewSession_Deterministic(t *testing.T) {
	a := newTestSession(t, 42)
	b := newTestSession(t, 42)

	fa, err := a.Fingerprint()
	if err != nil {
		t.Fatal(err)
	}
	fb, _ := b.Fingerprint()
	if !bytes.Equal(fa, fb) {
		t.Error("sessions with the same seed must start identically")
	}
	if a.State.View != domain.ViewMap || a.State.Sector != 1 || a.State.Selected != -1 {
		t.Errorf("unexpected start state: view=%v sector=%d selected=%d", a.State.View, a.State.Sector, a.State.Selected)
	}
}

func TestExecute_UnknownAction(t *testing.T) {
	s := newTestSession(t, 1)
	err := s.Execute(api.ClientCommand{Action: "MOVE"})
	if !errors.Is(err, ErrUnknownAction) {
		t.Errorf("expected ErrUnknownAction, got %v", err)
	}
}

func TestExecute_MalformedPayload(t *testing.T) {
	s := newTestSession(t, 1)

	tests := []struct {
		name string
		cmd  api.ClientCommand
	}{
		{"broken json", api.ClientCommand{Action: "CLICK_TILE", Payload: json.RawMessage(`{"x":`)}},
		{"negative coords", command(t, "CLICK_TILE", api.TilePayload{X: -1, Y: 0})},
		{"missing payload", api.ClientCommand{Action: "CRAFT"}},
		{"empty recipe", command(t, "CRAFT", api.RecipePayload{})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Execute(tt.cmd)
			if err == nil {
				t.Fatal("expected an error")
			}
			if _, ok := domain.AsRefusal(err); ok {
				t.Errorf("malformed command must not be a refusal: %v", err)
			}
		})
	}
	if len(s.Journal.Entries) != 0 {
		t.Error("rejected commands must not be journaled")
	}
}

func TestExecute_RefusalLeavesStateIntact(t *testing.T) {
	s := newTestSession(t, 7)
	r := s.Rules
	before, _ := s.Fingerprint()
	s.DrainLogs()

	// Мастерская уже расчищена, с ней ничего не сделать
	err := s.Execute(command(t, "CLICK_TILE", api.TilePayload{X: r.Grid.CenterX, Y: r.Grid.SpineRow}))
	if !domain.IsRefusal(err, domain.RefuseNotClickable) {
		t.Fatalf("expected NOT_CLICKABLE, got %v", err)
	}

	after, _ := s.Fingerprint()
	if !bytes.Equal(before, after) {
		t.Error("refused action changed the state")
	}
	if len(s.Logs) != 1 || s.Logs[0].Type != string(domain.LogError) {
		t.Errorf("refusal must be logged as a single ERROR entry, got %+v", s.Logs)
	}
	if len(s.Journal.Entries) != 0 {
		t.Error("refused commands must not be journaled")
	}
}

func TestExecute_ClickAdvancesClock(t *testing.T) {
	s := newTestSession(t, 7)
	r := s.Rules
	stamina := s.State.Stamina
	minutes := s.State.Minutes

	if err := s.Execute(command(t, "CLICK_TILE", safeTile(r))); err != nil {
		t.Fatalf("explore safe tile: %v", err)
	}

	if s.State.Stamina != stamina-r.Costs.Base {
		t.Errorf("stamina = %d, want %d", s.State.Stamina, stamina-r.Costs.Base)
	}
	if s.State.Minutes != minutes+r.Clock.MinutesPerAction {
		t.Errorf("minutes = %d, want %d", s.State.Minutes, minutes+r.Clock.MinutesPerAction)
	}
	if len(s.Journal.Entries) != 1 || s.Journal.Entries[0].Action != domain.ActionClickTile {
		t.Errorf("journal = %+v", s.Journal.Entries)
	}
}

func TestExecute_InitIsReadOnly(t *testing.T) {
	s := newTestSession(t, 3)
	if err := s.Execute(api.ClientCommand{Action: "INIT"}); err != nil {
		t.Fatal(err)
	}
	if len(s.Journal.Entries) != 0 {
		t.Error("INIT must not be journaled")
	}
}

func TestRest_PendingLifecycle(t *testing.T) {
	s := newTestSession(t, 11)

	err := s.Execute(api.ClientCommand{Action: "CONFIRM_REST"})
	if !domain.IsRefusal(err, domain.RefuseNoPendingRest) {
		t.Fatalf("expected NO_PENDING_REST, got %v", err)
	}

	if err := s.Execute(api.ClientCommand{Action: "REST"}); err != nil {
		t.Fatal(err)
	}
	if s.State.PendingRest == nil {
		t.Fatal("REST must store a pending report")
	}

	// Любое другое действие отменяет предложение
	if err := s.Execute(command(t, "SELECT_SLOT", api.SlotPayload{Slot: -1})); err != nil {
		t.Fatal(err)
	}
	if s.State.PendingRest != nil {
		t.Error("pending rest must be discarded by another action")
	}

	if err := s.Execute(api.ClientCommand{Action: "REST"}); err != nil {
		t.Fatal(err)
	}
	day := s.State.Day
	if err := s.Execute(api.ClientCommand{Action: "CONFIRM_REST"}); err != nil {
		t.Fatal(err)
	}
	if s.State.Day != day+1 || s.State.PendingRest != nil {
		t.Errorf("rest not applied: day=%d pending=%v", s.State.Day, s.State.PendingRest)
	}
	if s.State.Minutes != s.Rules.Clock.DayStart {
		t.Errorf("clock must reset to day start, got %d", s.State.Minutes)
	}
}

func TestGameOver_BlocksActionsUntilRestart(t *testing.T) {
	s := newTestSession(t, 5)
	s.State.HP = 0
	s.checkGameOver()

	if s.State.View != domain.ViewGameOver {
		t.Fatalf("view = %v, want GAMEOVER", s.State.View)
	}
	if view := BuildSnapshot(s); view.Score == nil {
		t.Error("game over snapshot must carry the score")
	}

	err := s.Execute(command(t, "CLICK_TILE", safeTile(s.Rules)))
	if !domain.IsRefusal(err, domain.RefuseWrongView) {
		t.Errorf("expected WRONG_VIEW after death, got %v", err)
	}

	if err := s.Execute(api.ClientCommand{Action: "RESTART"}); err != nil {
		t.Fatal(err)
	}
	if s.State.View != domain.ViewMap || s.State.HP != s.Rules.Vitals.MaxHP {
		t.Errorf("restart did not reset the run: view=%v hp=%d", s.State.View, s.State.HP)
	}
}

func TestDepartAndNextSector(t *testing.T) {
	s := newTestSession(t, 9)
	r := s.Rules

	err := s.Execute(api.ClientCommand{Action: "DEPART"})
	if !domain.IsRefusal(err, domain.RefusePressureLow) {
		t.Fatalf("expected PRESSURE_LOW, got %v", err)
	}
	err = s.Execute(api.ClientCommand{Action: "NEXT_SECTOR"})
	if !domain.IsRefusal(err, domain.RefuseWrongView) {
		t.Fatalf("expected WRONG_VIEW, got %v", err)
	}

	s.State.Pressure = r.TargetPressure(s.State.Sector)
	s.State.Stamina = 40
	if err := s.Execute(api.ClientCommand{Action: "DEPART"}); err != nil {
		t.Fatal(err)
	}
	if s.State.View != domain.ViewShop {
		t.Fatalf("view = %v, want SHOP", s.State.View)
	}

	if err := s.Execute(api.ClientCommand{Action: "NEXT_SECTOR"}); err != nil {
		t.Fatal(err)
	}
	st := s.State
	if st.Sector != 2 || st.Stats.SectorsPassed != 1 || st.Pressure != 0 || st.View != domain.ViewMap {
		t.Errorf("bad transition: %+v", st.Stats)
	}
	if want := int(40 * r.Boiler.StaminaRetain); st.Stamina != want {
		t.Errorf("stamina = %d, want %d", st.Stamina, want)
	}
}

func TestAdvanceClock_PassiveEnemyAttack(t *testing.T) {
	s := newTestSession(t, 13)
	r := s.Rules

	idx := s.State.Grid.Index(r.Grid.CenterX, r.Grid.SpineRow-1)
	tile := &s.State.Grid.Tiles[idx]
	tile.Kind = domain.TileEnemy
	tile.Revealed = true
	tile.Peeked = false
	tile.Cleared = false
	tile.Attack = 3
	tile.HP = 5
	tile.AttackProgress = 0
	tile.MaxAttackProgress = r.Clock.MinutesPerAction

	hp := s.State.HP
	s.advanceClock(r.Clock.MinutesPerAction)
	if s.State.HP != hp-3 {
		t.Errorf("hp = %d, want %d", s.State.HP, hp-3)
	}
}

func TestAdvanceClock_WrapsDay(t *testing.T) {
	s := newTestSession(t, 13)
	day := s.State.Day
	s.State.Minutes = s.Rules.Clock.MinutesPerDay - 5
	s.advanceClock(10)
	if s.State.Day != day+1 || s.State.Minutes != 5 {
		t.Errorf("day=%d minutes=%d", s.State.Day, s.State.Minutes)
	}
}

func TestReplay_ReproducesState(t *testing.T) {
	s := newTestSession(t, 2024)
	r := s.Rules

	script := []api.ClientCommand{
		command(t, "CLICK_TILE", safeTile(r)),
		command(t, "CLICK_TILE", safeTile(r)),
		command(t, "CLICK_TILE", api.TilePayload{X: r.Grid.CenterX, Y: r.Grid.SpineRow + 1}),
		{Action: "REST"},
		{Action: "CONFIRM_REST"},
		command(t, "CRAFT", api.RecipePayload{Recipe: "axe"}),
		{Action: "ADMIN_HEAL"},
	}
	for _, cmd := range script {
		_ = s.Execute(cmd)
	}

	replayed, err := Replay(s.Journal, r)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := s.Fingerprint()
	got, _ := replayed.Fingerprint()
	if !bytes.Equal(want, got) {
		t.Error("replayed session diverged from the original")
	}
}

func TestExecute_PublishesToObservers(t *testing.T) {
	s := newTestSession(t, 17)
	s.Hub = network.NewBroadcaster(4)
	updates := s.Hub.Register("watcher")

	if err := s.Execute(api.ClientCommand{Action: "INIT"}); err != nil {
		t.Fatal(err)
	}

	select {
	case v := <-updates:
		if v.Sector != 1 || len(v.Logs) == 0 {
			t.Errorf("unexpected snapshot: sector=%d logs=%d", v.Sector, len(v.Logs))
		}
	default:
		t.Fatal("observer received nothing")
	}
	if len(s.Logs) != 0 {
		t.Error("published logs must be drained")
	}
}

func TestSelectSlot(t *testing.T) {
	s := newTestSession(t, 5)

	err := s.Execute(command(t, "SELECT_SLOT", api.SlotPayload{Slot: 0}))
	if !domain.IsRefusal(err, domain.RefuseInvalidSlot) {
		t.Fatalf("empty slot: expected INVALID_SLOT, got %v", err)
	}

	s.State.Inventory, _ = s.Rules.Ledger().Add(s.State.Inventory, domain.ItemWood, 3, 0)
	if err := s.Execute(command(t, "SELECT_SLOT", api.SlotPayload{Slot: 0})); err != nil {
		t.Fatal(err)
	}
	if s.State.Selected != 0 {
		t.Errorf("selected = %d", s.State.Selected)
	}
	if err := s.Execute(command(t, "SELECT_SLOT", api.SlotPayload{Slot: -1})); err != nil {
		t.Fatal(err)
	}
	if s.State.Selected != -1 {
		t.Errorf("deselect left %d", s.State.Selected)
	}
}

func TestAdminCommands(t *testing.T) {
	s := newTestSession(t, 9)
	s.State.HP = 1
	s.State.Stamina = 0

	if err := s.Execute(api.ClientCommand{Action: "ADMIN_HEAL"}); err != nil {
		t.Fatal(err)
	}
	if s.State.HP != s.Rules.MaxHP(&s.State) || s.State.Stamina != s.Rules.MaxStamina(&s.State) {
		t.Errorf("heal left hp=%d stamina=%d", s.State.HP, s.State.Stamina)
	}

	if err := s.Execute(api.ClientCommand{Action: "ADMIN_REVEAL"}); err != nil {
		t.Fatal(err)
	}
	hidden := s.State.Grid.Count(func(tile domain.Tile) bool { return !tile.Revealed })
	if hidden != 0 {
		t.Errorf("%d tiles still hidden", hidden)
	}

	s.DrainLogs()
	if err := s.Execute(command(t, "ADMIN_INSPECT", safeTile(s.Rules))); err != nil {
		t.Fatal(err)
	}
	if len(s.Logs) == 0 {
		t.Error("inspect must log the tile")
	}
	if len(s.Journal.Entries) != 2 {
		t.Errorf("journal has %d entries, inspect must not be recorded", len(s.Journal.Entries))
	}
}

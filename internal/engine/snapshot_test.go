package engine

import (
	"testing"

	"github.com/jerryeechan/poachers/internal/domain"
)

func TestBuildSnapshot_MasksHiddenTiles(t *testing.T) {
	s := newTestSession(t, 21)
	view := BuildSnapshot(s)

	if len(view.Map) != len(s.State.Grid.Tiles) {
		t.Fatalf("map has %d tiles, want %d", len(view.Map), len(s.State.Grid.Tiles))
	}
	for i, tv := range view.Map {
		tile := s.State.Grid.Tiles[i]
		switch tile.Visibility() {
		case domain.Hidden:
			if tv.Kind != "" || tv.Attack != 0 || tv.NPCBuff != "" {
				t.Errorf("hidden tile (%d,%d) leaks content: %+v", tile.X, tile.Y, tv)
			}
		case domain.Peeked:
			if tv.Attack != 0 || tv.HP != 0 {
				t.Errorf("peeked tile (%d,%d) leaks stats: %+v", tile.X, tile.Y, tv)
			}
		}
	}

	if view.Clock != "06:00" {
		t.Errorf("clock = %q, want 06:00", view.Clock)
	}
	if len(view.Inventory) != s.Rules.Capacity.InventorySlots {
		t.Errorf("inventory has %d slots", len(view.Inventory))
	}
	if view.Score != nil {
		t.Error("score is only shown on game over")
	}
}

func TestSnapshot_DrainsLogs(t *testing.T) {
	s := newTestSession(t, 21)
	if len(s.Logs) == 0 {
		t.Fatal("new session must greet the player")
	}
	first := s.Snapshot()
	if len(first.Logs) == 0 {
		t.Error("snapshot must carry pending logs")
	}
	if second := s.Snapshot(); len(second.Logs) != 0 {
		t.Errorf("logs must be drained, got %d", len(second.Logs))
	}
}

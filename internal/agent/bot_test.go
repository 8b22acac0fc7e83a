package agent

import (
	"bytes"
	"os"
	"testing"

	"github.com/jerryeechan/poachers/internal/config"
	"github.com/jerryeechan/poachers/internal/engine"
	"github.com/jerryeechan/poachers/pkg/api"
	"github.com/jerryeechan/poachers/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestBot_PlaysAndReplays(t *testing.T) {
	for _, seed := range []int64{1, 2, 3} {
		s := engine.NewSession(engine.Config{Seed: seed}, config.Default())
		bot := NewBot(s)

		accepted := bot.Run(200)
		if accepted == 0 {
			t.Fatalf("seed %d: bot made no moves", seed)
		}
		if len(s.Journal.Entries) != accepted {
			t.Errorf("seed %d: journal has %d entries, bot made %d moves", seed, len(s.Journal.Entries), accepted)
		}

		replayed, err := engine.Replay(s.Journal, config.Default())
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		want, _ := s.Fingerprint()
		got, _ := replayed.Fingerprint()
		if !bytes.Equal(want, got) {
			t.Errorf("seed %d: replay diverged", seed)
		}
	}
}

func TestTilePriority(t *testing.T) {
	vit := api.VitalsView{HP: 10}
	tests := []struct {
		name string
		tile api.TileView
		ok   bool
	}{
		{"hidden", api.TileView{Visibility: "HIDDEN"}, false},
		{"peeked", api.TileView{Visibility: "PEEKED", Kind: "ENEMY"}, true},
		{"weak enemy", api.TileView{Visibility: "REVEALED", Kind: "ENEMY", Attack: 2}, true},
		{"strong enemy", api.TileView{Visibility: "REVEALED", Kind: "ENEMY", Attack: 9}, false},
		{"spent ground", api.TileView{Visibility: "REVEALED", Kind: "SEARCH", Cleared: true}, false},
		{"broken track", api.TileView{Visibility: "REVEALED", Kind: "TRACK", IsBroken: true}, true},
		{"car", api.TileView{Visibility: "REVEALED", Kind: "WORKSHOP", Cleared: true}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := tilePriority(tt.tile, vit); ok != tt.ok {
				t.Errorf("tilePriority = %v, want %v", ok, tt.ok)
			}
		})
	}
}

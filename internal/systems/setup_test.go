package systems

import (
	"math/rand"
	"os"
	"testing"

	"github.com/jerryeechan/poachers/internal/config"
	"github.com/jerryeechan/poachers/internal/domain"
	"github.com/jerryeechan/poachers/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize the global logger before running any tests
	logger.Init()

	// Exit with the result of the tests
	os.Exit(m.Run())
}

func newRng(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// blankGrid - квадратная сетка из скрытой земли
func blankGrid(size int) domain.Grid {
	g := domain.NewGrid(size, size)
	for i := range g.Tiles {
		g.Tiles[i].Kind = domain.TileSearch
	}
	return g
}

// revealedTile ставит на клетку раскрытый объект
func revealedTile(g *domain.Grid, x, y int, kind domain.TileKind) *domain.Tile {
	t := &g.Tiles[g.Index(x, y)]
	t.Kind = kind
	t.Revealed = true
	t.Peeked = false
	return t
}

func testRules() *config.Rules {
	return config.Default()
}

package systems

import (
	"github.com/jerryeechan/poachers/internal/domain"
	"github.com/jerryeechan/poachers/pkg/logger"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

// isLightSource - клетка, через которую видно соседей
func isLightSource(t domain.Tile) bool {
	return t.Kind.IsSpine() || t.Cleared || t.Revealed
}

// LightSources собирает индексы светящих клеток
func LightSources(g domain.Grid) mapset.Set[int] {
	lit := mapset.New[int]()
	for i, t := range g.Tiles {
		if isLightSource(t) {
			lit.Put(i)
		}
	}
	return lit
}

// UpdatePeekStatus пересчитывает туман войны и возвращает новую сетку.
// Нераскрытая клетка подсмотрена, если хотя бы один ортогональный сосед светит.
// Раскрытая клетка никогда не подсмотрена. Сам пересчет ничего не раскрывает.
func UpdatePeekStatus(g domain.Grid) domain.Grid {
	lit := LightSources(g)
	out := g.Clone()

	peeked := 0
	for i := range out.Tiles {
		t := &out.Tiles[i]
		if t.Revealed {
			t.Peeked = false
			continue
		}
		t.Peeked = false
		for _, n := range out.Neighbors4(t.X, t.Y) {
			if lit.Has(n) {
				t.Peeked = true
				peeked++
				break
			}
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"component":     "visibility_system",
		"light_sources": lit.Size(),
		"peeked":        peeked,
	}).Debug("Fog of war recalculated.")

	return out
}

// NewlyPeeked возвращает индексы клеток, которые стали подсмотренными в after,
// в порядке возрастания индекса.
func NewlyPeeked(before, after domain.Grid) []int {
	was := mapset.New[int]()
	for i, t := range before.Tiles {
		if t.Peeked {
			was.Put(i)
		}
	}
	var out []int
	for i, t := range after.Tiles {
		if t.Peeked && !was.Has(i) {
			out = append(out, i)
		}
	}
	return out
}

package engine

import (
	"fmt"

	"github.com/jerryeechan/poachers/internal/domain"
	"github.com/jerryeechan/poachers/pkg/api"
)

// BuildSnapshot создает "снимок" забега для слоя представления.
// Скрытые клетки не выдают ничего, кроме координат; подсмотренные - только силуэт.
func BuildSnapshot(s *Session) api.StateView {
	st := &s.State
	r := s.Rules

	view := api.StateView{
		Sector: st.Sector,
		Day:    st.Day,
		Clock:  formatClock(st.Minutes),
		Vitals: api.VitalsView{
			HP:         st.HP,
			MaxHP:      r.MaxHP(st),
			Stamina:    st.Stamina,
			MaxStamina: r.MaxStamina(st),
			Attack:     r.Attack(st),
			Gold:       st.Gold,
		},
		Train: api.TrainView{
			Pressure:       st.Pressure,
			TargetPressure: r.TargetPressure(st.Sector),
			CarriageLevel:  st.CarriageLevel,
			Passengers:     make([]string, 0, len(st.Rescued)),
			Capacity:       r.PassengerCapacity(st.CarriageLevel),
		},
		Weather:   st.Weather.String(),
		View:      st.View.String(),
		Grid:      api.GridMeta{Width: st.Grid.Width, Height: st.Grid.Height},
		Map:       make([]api.TileView, 0, len(st.Grid.Tiles)),
		Inventory: toSlotViews(st.Inventory),
		Cargo:     toSlotViews(st.Cargo),
		Selected:  st.Selected,
		Stats: api.StatsView{
			TotalWood:       st.Stats.TotalWood,
			TotalStone:      st.Stats.TotalStone,
			EnemiesDefeated: st.Stats.EnemiesDefeated,
			ItemsCrafted:    st.Stats.ItemsCrafted,
			SectorsPassed:   st.Stats.SectorsPassed,
			San:             st.Stats.San,
		},
	}

	for _, npc := range st.Rescued {
		view.Train.Passengers = append(view.Train.Passengers, npc.Buff.String())
	}
	for _, t := range st.Grid.Tiles {
		view.Map = append(view.Map, toTileView(t))
	}

	if rep := st.PendingRest; rep != nil {
		rv := &api.RestView{
			StaminaRestore: rep.StaminaRestore,
			Damage:         rep.Damage,
			EnemiesCount:   rep.EnemiesCount,
			PressureLoss:   rep.PressureLoss,
			Dice:           rep.Encounter.Dice,
			Spawns:         make([]api.PointView, 0, len(rep.Spawns)),
		}
		for _, sp := range rep.Spawns {
			rv.Spawns = append(rv.Spawns, api.PointView{X: sp.X, Y: sp.Y})
		}
		view.PendingRest = rv
	}

	if st.View == domain.ViewGameOver {
		score := s.Score()
		sv := &api.ScoreView{Total: score.Total}
		for _, l := range score.Breakdown {
			sv.Lines = append(sv.Lines, api.ScoreLineView{Label: l.Label, Value: l.Value, Multiplier: l.Multiplier})
		}
		view.Score = sv
	}

	logsCopy := make([]api.LogEntry, len(s.Logs))
	copy(logsCopy, s.Logs)
	view.Logs = logsCopy

	return view
}

// Snapshot строит снимок и очищает лог сессии после выдачи
func (s *Session) Snapshot() api.StateView {
	view := BuildSnapshot(s)
	s.DrainLogs()
	return view
}

func toTileView(t domain.Tile) api.TileView {
	vis := t.Visibility()
	tv := api.TileView{X: t.X, Y: t.Y, Visibility: vis.String()}

	switch vis {
	case domain.Hidden:
		return tv
	case domain.Peeked:
		tv.Kind = t.Kind.String()
		tv.Explore = t.ExplorationProgress
		tv.MaxExplore = t.MaxExploration
		return tv
	}

	tv.Kind = t.Kind.String()
	tv.Cleared = t.Cleared
	tv.ScavengeLeft = t.ScavengeLeft
	switch t.Kind {
	case domain.TileEnemy:
		tv.Attack = t.Attack
		tv.HP = t.HP
		tv.MaxHP = t.MaxHP
	case domain.TileNPC:
		tv.NPCBuff = t.NPCBuff.String()
		tv.Rescue = t.RescueProgress
	case domain.TileTrack, domain.TileBridge:
		tv.IsBroken = t.IsBroken
		tv.Repair = t.RepairProgress
	}
	return tv
}

func toSlotViews(inv domain.Inventory) []api.SlotView {
	out := make([]api.SlotView, len(inv))
	for i, stack := range inv {
		out[i] = api.SlotView{Slot: i}
		if stack == nil {
			continue
		}
		out[i].ID = stack.ID
		out[i].Item = stack.Kind.String()
		out[i].Name = stack.Kind.Title()
		out[i].Count = stack.Count
		out[i].Durability = stack.Durability
		out[i].MaxDurability = stack.MaxDurability
	}
	return out
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

package domain

import (
	"fmt"
	"strings"
)

// TileKind - закрытое перечисление типов клеток сектора
type TileKind uint8

const (
	TileUnknown TileKind = iota
	TileVoid
	TileTrack
	TileBridge
	TileSearch // расчищенная земля
	TileTree
	TileRock
	TileEnemy
	TileNPC
	TileLocomotive
	TileWorkshop
	TileCargo
)

var tileStringToKind = map[string]TileKind{
	"VOID":       TileVoid,
	"TRACK":      TileTrack,
	"BRIDGE":     TileBridge,
	"SEARCH":     TileSearch,
	"TREE":       TileTree,
	"ROCK":       TileRock,
	"ENEMY":      TileEnemy,
	"NPC":        TileNPC,
	"LOCOMOTIVE": TileLocomotive,
	"WORKSHOP":   TileWorkshop,
	"CARGO":      TileCargo,
}

var tileKindToString = map[TileKind]string{
	TileVoid:       "VOID",
	TileTrack:      "TRACK",
	TileBridge:     "BRIDGE",
	TileSearch:     "SEARCH",
	TileTree:       "TREE",
	TileRock:       "ROCK",
	TileEnemy:      "ENEMY",
	TileNPC:        "NPC",
	TileLocomotive: "LOCOMOTIVE",
	TileWorkshop:   "WORKSHOP",
	TileCargo:      "CARGO",
}

// AllTileKinds возвращает все известные типы в порядке объявления
func AllTileKinds() []TileKind {
	return []TileKind{
		TileVoid, TileTrack, TileBridge, TileSearch, TileTree, TileRock,
		TileEnemy, TileNPC, TileLocomotive, TileWorkshop, TileCargo,
	}
}

// ParseTileKind конвертирует строку в TileKind (без учета регистра)
func ParseTileKind(s string) TileKind {
	if val, ok := tileStringToKind[strings.ToUpper(s)]; ok {
		return val
	}
	return TileUnknown
}

func (k TileKind) String() string {
	if val, ok := tileKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

// IsSpine - вагоны поезда. Всегда прозрачны и никогда не генерируются случайно.
func (k TileKind) IsSpine() bool {
	return k == TileLocomotive || k == TileWorkshop || k == TileCargo
}

// IsRail - клетки, по которым идет поезд (могут быть сломаны)
func (k TileKind) IsRail() bool {
	return k == TileTrack || k == TileBridge
}

func (k TileKind) MarshalText() ([]byte, error) {
	if k == TileUnknown {
		return nil, fmt.Errorf("cannot marshal unknown tile kind %d", uint8(k))
	}
	return []byte(k.String()), nil
}

func (k *TileKind) UnmarshalText(text []byte) error {
	parsed := ParseTileKind(string(text))
	if parsed == TileUnknown {
		return fmt.Errorf("unknown tile kind %q", string(text))
	}
	*k = parsed
	return nil
}

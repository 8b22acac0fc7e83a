package domain

import (
	"fmt"
	"strings"
)

// ItemKind - тип предмета в слоте инвентаря
type ItemKind uint8

const (
	ItemUnknown ItemKind = iota
	ItemWood
	ItemStone
	ItemCharcoal
	ItemAxe
	ItemPickaxe
	ItemBow
	ItemKey
	ItemBerry
)

var itemStringToKind = map[string]ItemKind{
	"WOOD":     ItemWood,
	"STONE":    ItemStone,
	"CHARCOAL": ItemCharcoal,
	"AXE":      ItemAxe,
	"PICKAXE":  ItemPickaxe,
	"BOW":      ItemBow,
	"KEY":      ItemKey,
	"BERRY":    ItemBerry,
}

var itemKindToString = map[ItemKind]string{
	ItemWood:     "WOOD",
	ItemStone:    "STONE",
	ItemCharcoal: "CHARCOAL",
	ItemAxe:      "AXE",
	ItemPickaxe:  "PICKAXE",
	ItemBow:      "BOW",
	ItemKey:      "KEY",
	ItemBerry:    "BERRY",
}

// Человекочитаемые названия для игрового лога
var itemTitles = map[ItemKind]string{
	ItemWood:     "дерево",
	ItemStone:    "камень",
	ItemCharcoal: "уголь",
	ItemAxe:      "топор",
	ItemPickaxe:  "кирка",
	ItemBow:      "лук",
	ItemKey:      "ключ",
	ItemBerry:    "ягоды",
}

func AllItemKinds() []ItemKind {
	return []ItemKind{
		ItemWood, ItemStone, ItemCharcoal, ItemAxe, ItemPickaxe, ItemBow, ItemKey, ItemBerry,
	}
}

// ParseItemKind конвертирует строку в ItemKind (без учета регистра)
func ParseItemKind(s string) ItemKind {
	if val, ok := itemStringToKind[strings.ToUpper(s)]; ok {
		return val
	}
	return ItemUnknown
}

func (k ItemKind) String() string {
	if val, ok := itemKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

// Title - название для сообщений игроку
func (k ItemKind) Title() string {
	if val, ok := itemTitles[k]; ok {
		return val
	}
	return "???"
}

func (k ItemKind) MarshalText() ([]byte, error) {
	if k == ItemUnknown {
		return nil, fmt.Errorf("cannot marshal unknown item kind %d", uint8(k))
	}
	return []byte(k.String()), nil
}

func (k *ItemKind) UnmarshalText(text []byte) error {
	parsed := ParseItemKind(string(text))
	if parsed == ItemUnknown {
		return fmt.Errorf("unknown item kind %q", string(text))
	}
	*k = parsed
	return nil
}

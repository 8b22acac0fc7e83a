package domain

import "strings"

// ActionType - Внутренний числовой идентификатор действия
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionInit
	ActionClickTile
	ActionSelectSlot
	ActionUseItem
	ActionRest
	ActionConfirmRest
	ActionCraft
	ActionAddFuel
	ActionDepart
	ActionNextSector
	ActionDeposit
	ActionWithdraw
	ActionRestart

	// Отладочные команды
	ActionAdminHeal
	ActionAdminRevealAll
	ActionAdminInspect
)

// Маппинг для конвертации JSON -> Domain
var actionStringToCmd = map[string]ActionType{
	"INIT":          ActionInit,
	"CLICK_TILE":    ActionClickTile,
	"SELECT_SLOT":   ActionSelectSlot,
	"USE_ITEM":      ActionUseItem,
	"REST":          ActionRest,
	"CONFIRM_REST":  ActionConfirmRest,
	"CRAFT":         ActionCraft,
	"ADD_FUEL":      ActionAddFuel,
	"DEPART":        ActionDepart,
	"NEXT_SECTOR":   ActionNextSector,
	"DEPOSIT":       ActionDeposit,
	"WITHDRAW":      ActionWithdraw,
	"RESTART":       ActionRestart,
	"ADMIN_HEAL":    ActionAdminHeal,
	"ADMIN_REVEAL":  ActionAdminRevealAll,
	"ADMIN_INSPECT": ActionAdminInspect,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionInit:           "INIT",
	ActionClickTile:      "CLICK_TILE",
	ActionSelectSlot:     "SELECT_SLOT",
	ActionUseItem:        "USE_ITEM",
	ActionRest:           "REST",
	ActionConfirmRest:    "CONFIRM_REST",
	ActionCraft:          "CRAFT",
	ActionAddFuel:        "ADD_FUEL",
	ActionDepart:         "DEPART",
	ActionNextSector:     "NEXT_SECTOR",
	ActionDeposit:        "DEPOSIT",
	ActionWithdraw:       "WITHDRAW",
	ActionRestart:        "RESTART",
	ActionAdminHeal:      "ADMIN_HEAL",
	ActionAdminRevealAll: "ADMIN_REVEAL",
	ActionAdminInspect:   "ADMIN_INSPECT",
}

// ParseAction конвертирует строку из JSON в ActionType
func ParseAction(s string) ActionType {
	// Делаем нечувствительным к регистру для надежности
	upper := strings.ToUpper(s)
	if val, ok := actionStringToCmd[upper]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}

// IsAdmin - отладочная команда. Доступна и после смерти.
func (a ActionType) IsAdmin() bool {
	return a >= ActionAdminHeal
}

// IsReadOnly - команда не меняет состояние и не попадает в журнал
func (a ActionType) IsReadOnly() bool {
	return a == ActionInit || a == ActionAdminInspect
}

package domain

import (
	"errors"
	"fmt"
)

// RefusalCode - стабильный код причины отказа
type RefusalCode string

const (
	RefuseInsufficientStamina   RefusalCode = "INSUFFICIENT_STAMINA"
	RefuseMissingTool           RefusalCode = "MISSING_TOOL"
	RefuseInsufficientResources RefusalCode = "INSUFFICIENT_RESOURCES"
	RefuseCapacityExceeded      RefusalCode = "CAPACITY_EXCEEDED"
	RefuseNPCBlocked            RefusalCode = "NPC_BLOCKED"
	RefuseNotClickable          RefusalCode = "NOT_CLICKABLE"
	RefuseFullVitals            RefusalCode = "FULL_VITALS"
	RefuseBoilerFull            RefusalCode = "BOILER_FULL"
	RefusePressureLow           RefusalCode = "PRESSURE_LOW"
	RefuseNotFuel               RefusalCode = "NOT_FUEL"
	RefuseWrongView             RefusalCode = "WRONG_VIEW"
	RefuseNoPendingRest         RefusalCode = "NO_PENDING_REST"
	RefuseUnknownRecipe         RefusalCode = "UNKNOWN_RECIPE"
	RefuseInvalidSlot           RefusalCode = "INVALID_SLOT"
	RefuseNotUsable             RefusalCode = "NOT_USABLE"
)

// Refusal - ожидаемый отказ в действии. Состояние при этом не меняется.
type Refusal struct {
	Code    RefusalCode
	Message string
}

func (r *Refusal) Error() string {
	return fmt.Sprintf("%s: %s", r.Code, r.Message)
}

// Refuse - короткий конструктор
func Refuse(code RefusalCode, format string, args ...any) *Refusal {
	return &Refusal{Code: code, Message: fmt.Sprintf(format, args...)}
}

// AsRefusal достает Refusal из цепочки ошибок
func AsRefusal(err error) (*Refusal, bool) {
	var r *Refusal
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}

// IsRefusal проверяет код отказа в цепочке ошибок
func IsRefusal(err error, code RefusalCode) bool {
	r, ok := AsRefusal(err)
	return ok && r.Code == code
}

package domain

import "encoding/json"

// InternalCommand - команда после разбора строки действия.
type InternalCommand struct {
	Action  ActionType
	Payload json.RawMessage // Сырые данные (парсятся хендлером)
}

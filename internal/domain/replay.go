package domain

import "encoding/json"

// JournalEntry - одна принятая команда
type JournalEntry struct {
	Step    int             `json:"step"`
	Action  ActionType      `json:"action"`
	Payload json.RawMessage `json:"payload"`
}

// Journal - запись забега: сид и последовательность команд.
// Повторное выполнение команд на том же сиде и тех же правилах дает то же состояние.
type Journal struct {
	Seed      int64          `json:"seed"`
	Timestamp int64          `json:"timestamp"`
	Entries   []JournalEntry `json:"entries"`
}

// Record добавляет команду в журнал
func (j *Journal) Record(cmd InternalCommand) {
	j.Entries = append(j.Entries, JournalEntry{
		Step:    len(j.Entries),
		Action:  cmd.Action,
		Payload: cmd.Payload,
	})
}

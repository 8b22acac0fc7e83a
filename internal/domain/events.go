package domain

// LogType - категория строки игрового лога
type LogType string

const (
	LogInfo      LogType = "INFO"
	LogSuccess   LogType = "SUCCESS"
	LogWarning   LogType = "WARNING"
	LogCombat    LogType = "COMBAT"
	LogError     LogType = "ERROR"
	LogImportant LogType = "IMPORTANT"
)

// LogLine - событие, которое ядро возвращает оркестратору для показа игроку.
// Ядро само ничего не пишет в лог сессии.
type LogLine struct {
	Text string
	Type LogType
}

// Line - короткий конструктор
func Line(t LogType, text string) LogLine {
	return LogLine{Text: text, Type: t}
}

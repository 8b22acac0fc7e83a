package handlers

import (
	"encoding/json"
	"math/rand"

	"github.com/jerryeechan/poachers/internal/config"
	"github.com/jerryeechan/poachers/internal/domain"
)

// Context передает хендлеру состояние забега.
// Хендлер мутирует State только после того, как все проверки пройдены.
type Context struct {
	State *domain.GameState
	Rules *config.Rules
	Rng   *rand.Rand // общий генератор сессии, порядок бросков важен для журнала
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет в логи сессии напрямую, он возвращает данные.
type Result struct {
	Msg     string           // Итоговая строка для лога
	MsgType string           // Тип лога (INFO, SUCCESS, COMBAT...)
	Logs    []domain.LogLine // События ядра в порядке возникновения

	// Elapsed - сколько минут прошло в мире. Сессия двигает часы и пассивные атаки.
	Elapsed int
}

// HandlerFunc - это контракт для любой команды (CLICK_TILE, CRAFT, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}

package engine

import (
	"time"

	"github.com/jerryeechan/poachers/internal/config"
	"github.com/jerryeechan/poachers/pkg/logger"
)

// Config хранит параметры запуска сессии
type Config struct {
	// Seed - мастер-зерно. От него зависят все сектора забега.
	Seed int64
	// RulesPath - YAML с балансом. Пусто - встроенные правила.
	RulesPath string
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed: time.Now().UnixNano(),
	}
}

// LoadRules читает баланс по RulesPath поверх встроенных значений
func (c Config) LoadRules() (*config.Rules, error) {
	if c.RulesPath != "" {
		logger.For("engine_config").WithField("path", c.RulesPath).Info("Loading rules")
	}
	return config.Load(c.RulesPath)
}

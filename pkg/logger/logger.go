package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
// До вызова Init указывает на logrus по умолчанию, чтобы пакеты ядра
// можно было использовать из тестов и утилит без явной инициализации.
var Log = logrus.StandardLogger()

// Init инициализирует глобальный логгер.
// Вызывается один раз при старте в main.go и в TestMain.
func Init() {
	InitTo(os.Stdout)
}

// InitTo - то же, что Init, но с явным выводом (stderr для CLI-утилит).
func InitTo(out io.Writer) {
	Log = logrus.New()

	// Уровень из LOG_LEVEL. По умолчанию "info", для отладки - "debug".
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	// "json" - для сбора логов прогонов симуляции, "text" - для разработки.
	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	Log.SetOutput(out)
}

// For возвращает запись с полем component
func For(component string) *logrus.Entry {
	return Log.WithField("component", component)
}

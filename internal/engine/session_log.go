package engine

import (
	"fmt"
	"time"

	"github.com/jerryeechan/poachers/pkg/api"
	"github.com/jerryeechan/poachers/pkg/logger"

	"github.com/sirupsen/logrus"
)

// AddLog добавляет запись в лог игрока и дублирует ее в logrus
func (s *Session) AddLog(text, logType string) {
	s.Logs = append(s.Logs, api.LogEntry{
		ID:        fmt.Sprintf("%d_%d", len(s.Journal.Entries), time.Now().UnixNano()),
		Text:      text,
		Type:      logType,
		Timestamp: time.Now().UnixMilli(),
	})
	logger.Log.WithFields(logrus.Fields{
		"session":   s.ID,
		"component": "game_log",
		"log_type":  logType,
	}).Info(text)
}

// DrainLogs отдает накопленные записи и очищает буфер
func (s *Session) DrainLogs() []api.LogEntry {
	out := s.Logs
	s.Logs = []api.LogEntry{}
	return out
}

package main

import (
	"crypto/sha256"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/jerryeechan/poachers/internal/agent"
	"github.com/jerryeechan/poachers/internal/engine"
	"github.com/jerryeechan/poachers/internal/infrastructure/storage"
	"github.com/jerryeechan/poachers/internal/network"
	"github.com/jerryeechan/poachers/internal/version"
	"github.com/jerryeechan/poachers/pkg/logger"

	"github.com/sirupsen/logrus"
)

func init() {
	// stdout занят итогом прогона
	logger.InitTo(os.Stderr)
}

func main() {
	var (
		seed       int64
		rulesPath  string
		turns      int
		recordPath string
		recordDir  string
		replayPath string
		dumpState  bool
		stream     bool
	)
	flag.Int64Var(&seed, "seed", 0, "Run seed (0 for random)")
	flag.StringVar(&rulesPath, "rules", "", "Path to YAML rules (default: $RS_RULES or built-in)")
	flag.IntVar(&turns, "turns", 500, "Max commands the bot may issue")
	flag.StringVar(&recordPath, "record", "", "Write the command journal to this file")
	flag.StringVar(&recordDir, "record-dir", "", "Save the journal into this directory under a generated name")
	flag.StringVar(&replayPath, "replay", "", "Re-execute a journal file instead of playing")
	flag.BoolVar(&dumpState, "json", false, "Print the final snapshot as JSON")
	flag.BoolVar(&stream, "stream", false, "Print every snapshot as a JSON line while the bot plays")
	flag.Parse()

	logger.Log.WithFields(version.Fields()).Info("Starting sector simulation...")

	cfg := engine.NewConfig()
	cfg.RulesPath = rulesPath
	if cfg.RulesPath == "" {
		cfg.RulesPath = os.Getenv("RS_RULES")
	}
	rules, err := cfg.LoadRules()
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load rules")
	}

	var session *engine.Session
	if replayPath != "" {
		logger.Log.Info("💿 Mode: Replay")
		journal, err := storage.Load(replayPath)
		if err != nil {
			logger.Log.WithError(err).Fatal("Failed to load journal")
		}
		session, err = engine.Replay(journal, rules)
		if err != nil {
			logger.Log.WithError(err).Fatal("Replay failed")
		}
	} else {
		if seed != 0 {
			cfg.Seed = seed
			logger.Log.Infof("🎲 Using explicit seed: %d", seed)
		} else {
			logger.Log.Infof("🎲 Using random seed: %d", cfg.Seed)
		}

		session = engine.NewSession(cfg, rules)
		if stream {
			done := streamSnapshots(session)
			agent.NewBot(session).Run(turns)
			session.Hub.Unregister(streamObserver)
			<-done
		} else {
			agent.NewBot(session).Run(turns)
		}

		if recordPath != "" {
			if err := storage.WriteFile(recordPath, session.Journal); err != nil {
				logger.Log.WithError(err).Fatal("Failed to write journal")
			}
			logger.Log.WithFields(logrus.Fields{
				"path":    recordPath,
				"entries": len(session.Journal.Entries),
			}).Info("Journal recorded")
		}
		if recordDir != "" {
			svc, err := storage.NewJournalService(recordDir)
			if err != nil {
				logger.Log.WithError(err).Fatal("Failed to open journal dir")
			}
			path, err := svc.Save(session.Journal)
			if err != nil {
				logger.Log.WithError(err).Fatal("Failed to save journal")
			}
			logger.Log.WithField("path", path).Info("Journal saved")
		}
	}

	if err := report(session, dumpState); err != nil {
		logger.Log.WithError(err).Fatal("Failed to print report")
	}
}

const streamObserver = "stdout"

// streamSnapshots подписывает stdout на снимки сессии. done закрывается,
// когда канал наблюдателя закрыт и все снимки выведены.
func streamSnapshots(s *engine.Session) <-chan struct{} {
	s.Hub = network.NewBroadcaster(256)
	updates := s.Hub.Register(streamObserver)
	done := make(chan struct{})

	go func() {
		defer close(done)
		enc := json.NewEncoder(os.Stdout)
		for view := range updates {
			if err := enc.Encode(view); err != nil {
				logger.Log.WithError(err).Warn("Snapshot stream broken")
				return
			}
		}
	}()
	return done
}

// report печатает итог. Отпечаток состояния совпадает у записи и ее повтора.
func report(s *engine.Session, dumpState bool) error {
	fp, err := s.Fingerprint()
	if err != nil {
		return err
	}
	score := s.Score()

	fmt.Printf("seed=%d sector=%d day=%d hp=%d view=%s commands=%d score=%d state=%x\n",
		s.Seed, s.State.Sector, s.State.Day, s.State.HP, s.State.View,
		len(s.Journal.Entries), score.Total, sha256.Sum256(fp))

	if !dumpState {
		return nil
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(engine.BuildSnapshot(s))
}

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jerryeechan/poachers/internal/config"
	"github.com/jerryeechan/poachers/internal/domain"
	"github.com/jerryeechan/poachers/internal/systems"
)

func main() {
	if len(os.Args) < 2 {
		printHelp()
		return
	}

	switch os.Args[1] {
	case "dump":
		data, err := config.Marshal(config.Default())
		if err != nil {
			fmt.Printf("Dump failed: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
	case "check":
		if len(os.Args) < 3 {
			fmt.Println("Usage: rulesctl check <rules.yaml>")
			return
		}
		if _, err := config.Load(os.Args[2]); err != nil {
			fmt.Printf("Invalid rules: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("OK")
	case "score":
		stats, gold, err := parseScoreArgs(os.Args[2:])
		if err != nil {
			fmt.Printf("Invalid arguments: %v\n", err)
			return
		}
		printScore(systems.CalculateFinalScore(config.Default(), stats, gold))
	default:
		printHelp()
	}
}

// parseScoreArgs: sectors wood stone enemies crafted gold, недостающие считаются нулем
func parseScoreArgs(args []string) (domain.Stats, int, error) {
	vals := make([]int, 6)
	for i, a := range args {
		if i >= len(vals) {
			break
		}
		n, err := strconv.Atoi(a)
		if err != nil {
			return domain.Stats{}, 0, fmt.Errorf("arg %d: %w", i+1, err)
		}
		vals[i] = n
	}
	stats := domain.Stats{
		SectorsPassed:   vals[0],
		TotalWood:       vals[1],
		TotalStone:      vals[2],
		EnemiesDefeated: vals[3],
		ItemsCrafted:    vals[4],
	}
	return stats, vals[5], nil
}

func printScore(s systems.Score) {
	for _, l := range s.Breakdown {
		fmt.Printf("%-20s %5d x %-4d = %d\n", l.Label, l.Value, l.Multiplier, l.Points())
	}
	fmt.Printf("%-20s %d\n", "Итого", s.Total)
}

func printHelp() {
	fmt.Println(`Rules Control - работа с файлом баланса
Commands:
  dump                   - вывести встроенный баланс в YAML
  check <file>           - проверить файл баланса
  score [sectors wood stone enemies crafted gold]
                         - таблица очков для заданной статистики`)
}

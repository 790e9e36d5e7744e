package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/assets"
	"github.com/robalobadob/wordle/apps/go-solver/internal/daily"
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

const fetchTimeout = 15 * time.Second

var (
	targetWord string
	dailyURL   string
	offline    bool
	record     bool
	dbPath     string
	benchLimit int
)

func init() {
	solveCmd.Flags().StringVar(&targetWord, "target", "", "word to solve (default: today's published answer)")
	solveCmd.Flags().StringVar(&dailyURL, "url", getEnv("DAILY_URL", daily.DefaultURL), "page to read today's answer from")

	dailyCmd.Flags().StringVar(&dailyURL, "url", getEnv("DAILY_URL", daily.DefaultURL), "page to read today's answer from")
	dailyCmd.Flags().BoolVar(&offline, "offline", false, "pick today's target locally instead of fetching it")
	dailyCmd.Flags().BoolVar(&record, "record", true, "record the result in the database")
	dailyCmd.Flags().StringVar(&dbPath, "db", getEnv("DB_PATH", "./data/solver.db"), "SQLite database path")

	benchCmd.Flags().IntVar(&benchLimit, "limit", 0, "solve only the first N answers (0 = all)")
}

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve one word and print the guesses",
	RunE: func(cmd *cobra.Command, args []string) error {
		lists, err := loadLists()
		if err != nil {
			return err
		}
		cfg, err := solverConfig(lists)
		if err != nil {
			return err
		}

		var target game.Word
		if targetWord != "" {
			if target, err = game.ParseWord(targetWord); err != nil {
				return fmt.Errorf("target: %w", err)
			}
		} else if target, err = fetchToday(cmd.Context()); err != nil {
			return err
		}

		res, err := solver.Solve(target, lists.Answers, cfg)
		if err != nil {
			return err
		}
		return report(os.Stdout, res)
	},
}

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Solve today's word and record the result",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		lists, err := loadLists()
		if err != nil {
			return err
		}
		cfg, err := solverConfig(lists)
		if err != nil {
			return err
		}

		now := time.Now()
		source := "web"
		var target game.Word
		if offline {
			source = "local"
			target, err = daily.LocalTarget(now, getEnv("DAILY_SALT", "dev-salt"), lists.Answers)
		} else {
			target, err = fetchToday(ctx)
		}
		if err != nil {
			return err
		}

		res, err := solver.Solve(target, lists.Answers, cfg)
		if err != nil {
			return err
		}
		if err := report(os.Stdout, res); err != nil {
			return err
		}
		if !record {
			return nil
		}
		return recordResult(ctx, daily.FromSolve(daily.DateKey(now), source, res))
	},
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Solve every answer and print the guess distribution",
	RunE: func(cmd *cobra.Command, args []string) error {
		lists, err := loadLists()
		if err != nil {
			return err
		}
		cfg, err := solverConfig(lists)
		if err != nil {
			return err
		}
		// per-round debug logs would drown the bar
		cfg.Logger = nil

		targets := lists.Answers
		if benchLimit > 0 && benchLimit < len(targets) {
			targets = targets[:benchLimit]
		}

		start := time.Now()
		var stats benchStats
		bar := progressbar.Default(int64(len(targets)))
		for _, t := range targets {
			res, err := solver.Solve(t, lists.Answers, cfg)
			if err != nil {
				return err
			}
			stats.add(res)
			_ = bar.Add(1)
		}
		log.Info().
			Str("strategy", string(cfg.Strategy)).
			Str("opening", string(cfg.Opening)).
			Dur("elapsed", time.Since(start)).
			Msg("bench done")
		return stats.write(os.Stdout)
	},
}

func fetchToday(ctx context.Context) (game.Word, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()
	w, err := daily.Fetch(ctx, &http.Client{Timeout: fetchTimeout}, dailyURL)
	if err != nil {
		return "", fmt.Errorf("fetch today's answer: %w", err)
	}
	log.Debug().Str("url", dailyURL).Msg("fetched today's answer")
	return w, nil
}

func recordResult(ctx context.Context, r daily.Result) error {
	db, err := daily.OpenDB(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := daily.Migrate(db, assets.Migrations()); err != nil {
		return err
	}
	st := daily.NewStore(db)

	done, err := st.AlreadySolved(ctx, r.Date, r.Strategy)
	if err != nil {
		return err
	}
	if done {
		log.Info().Str("date", r.Date).Str("strategy", r.Strategy).Msg("already recorded")
		return nil
	}
	if err := st.InsertResult(ctx, r); err != nil {
		return fmt.Errorf("record result: %w", err)
	}
	log.Info().Str("date", r.Date).Str("outcome", r.Outcome).Msg("recorded")
	return nil
}

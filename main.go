// apps/go-solver/main.go
//
// Command-line entry point.
//
// Startup:
//   - Load .env if present (godotenv) so every command sees the same variables.
//   - Set the global zerolog level from --log-level / LOG_LEVEL.
//   - Human-friendly console logs on stderr for one-shot commands; "serve"
//     keeps JSON lines.
//
// Commands: solve, daily, bench, serve, token (see commands.go, serve.go).
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/scorer"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

var (
	logLevel     string
	answersFile  string
	allowedFile  string
	strategyName string
	openingWord  string
	usePool      bool
)

func main() {
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wordle-solver",
	Short: "Solve five-letter word puzzles",
	Long: `wordle-solver narrows a candidate word list with colored feedback and
picks each next guess by positional letter frequency or by entropy.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&logLevel, "log-level", getEnv("LOG_LEVEL", "info"), "log level (debug, info, warn, error)")
	pf.StringVar(&answersFile, "answers", getEnv("WORDS_ANSWERS_FILE", ""), "answers list file (default: embedded)")
	pf.StringVar(&allowedFile, "allowed", getEnv("WORDS_ALLOWED_FILE", ""), "allowed guesses file (default: embedded)")
	pf.StringVar(&strategyName, "strategy", getEnv("SOLVER_STRATEGY", string(scorer.Frequency)), "guess scoring: frequency or entropy")
	pf.StringVar(&openingWord, "opening", getEnv("SOLVER_OPENING", string(solver.DefaultOpening)), "first guess")
	pf.BoolVar(&usePool, "pool", getEnvBool("SOLVER_USE_POOL", false), "also score allowed non-answer words as guesses")

	rootCmd.AddCommand(solveCmd, dailyCmd, benchCmd, serveCmd, tokenCmd)
}

func setupLogging(cmd *cobra.Command, args []string) error {
	lvl, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("log level %q: %w", logLevel, err)
	}
	zerolog.SetGlobalLevel(lvl)
	if cmd.Name() != "serve" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	return nil
}

// loadLists loads the word lists named by --answers/--allowed.
func loadLists() (*words.Lists, error) {
	lists, err := words.Init(answersFile, allowedFile)
	if err != nil {
		return nil, fmt.Errorf("load word lists: %w", err)
	}
	a, g := lists.Stats()
	log.Debug().Int("answers", a).Int("allowed", g).Msg("word lists loaded")
	return lists, nil
}

// solverConfig builds the run configuration from the persistent flags.
func solverConfig(lists *words.Lists) (solver.Config, error) {
	opening, err := game.ParseWord(openingWord)
	if err != nil {
		return solver.Config{}, fmt.Errorf("opening: %w", err)
	}
	cfg := solver.Config{
		Opening:  opening,
		Strategy: scorer.ParseStrategy(strategyName),
		Logger:   &log.Logger,
	}
	if usePool {
		cfg.GuessPool = lists.Extra
	}
	return cfg, nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvBool(k string, def bool) bool {
	b, err := strconv.ParseBool(os.Getenv(k))
	if err != nil {
		return def
	}
	return b
}

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/assets"
	"github.com/robalobadob/wordle/apps/go-solver/internal/daily"
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/httpserver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/scorer"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
)

var (
	port         string
	tokenSubject string
)

func init() {
	serveCmd.Flags().StringVar(&port, "port", getEnv("PORT", "5175"), "listen port")
	serveCmd.Flags().StringVar(&dbPath, "db", getEnv("DB_PATH", "./data/solver.db"), "SQLite database with recorded daily solves (empty disables /daily)")

	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "", "token subject")
	_ = tokenCmd.MarkFlagRequired("subject")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		lists, err := loadLists()
		if err != nil {
			return err
		}
		opening, err := game.ParseWord(openingWord)
		if err != nil {
			return fmt.Errorf("opening: %w", err)
		}

		var results *daily.Store
		if dbPath != "" {
			db, err := daily.OpenDB(dbPath)
			if err != nil {
				return err
			}
			defer db.Close()
			if err := daily.Migrate(db, assets.Migrations()); err != nil {
				return err
			}
			results = daily.NewStore(db)
		}

		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			log.Warn().Msg("JWT_SECRET not set; POST /solve is open")
		}
		srv := httpserver.New(store.NewMemoryStore(), lists, results, httpserver.Config{
			Strategy:     scorer.ParseStrategy(strategyName),
			Opening:      opening,
			UseGuessPool: usePool,
			JWTSecret:    secret,
			ClientOrigin: os.Getenv("CLIENT_ORIGIN"),
		})
		log.Info().Str("port", port).Msg("starting go-solver")
		return srv.Start(":" + port)
	},
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint an API token for POST /solve",
	RunE: func(cmd *cobra.Command, args []string) error {
		tok, exp, err := httpserver.SignToken(os.Getenv("JWT_SECRET"), tokenSubject, time.Now())
		if err != nil {
			return err
		}
		fmt.Println(tok)
		log.Info().Time("expires", exp).Str("sub", tokenSubject).Msg("token issued")
		return nil
	},
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hmnguyen/vietlearn/internal/config"
	"github.com/hmnguyen/vietlearn/internal/database"
	"github.com/hmnguyen/vietlearn/internal/seed"
	"github.com/hmnguyen/vietlearn/internal/vocabulary"
)

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the database with the starter words and grammar points",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return fmt.Errorf("config.Load() > %w", err)
			}

			db, err := database.Connect(cmd.Context(), cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Connect() > %w", err)
			}
			defer func() {
				_ = db.Close()
			}()

			return seed.Run(cmd.Context(),
				vocabulary.NewDBWordRepository(db),
				vocabulary.NewDBGrammarRepository(db),
			)
		},
	}
}

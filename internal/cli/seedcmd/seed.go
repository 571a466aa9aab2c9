// Package seedcmd loads the built-in fixtures into the configured
// database.
package seedcmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/RustamYuburov/inventory-application/internal/cli/common"
	"github.com/RustamYuburov/inventory-application/internal/seed"
	"github.com/RustamYuburov/inventory-application/internal/store/mongostore"
)

func New() *cobra.Command {
	var cfgPath string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert the sample catalog into the database",
		Long: `Insert the built-in sample catalog (developers, genres, games)
into the configured database. Records are only added, never replaced;
running seed twice inserts the fixtures twice.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := common.Load(cfgPath)
			if err != nil {
				return err
			}
			log := common.SetupLogger(cfg.Log)

			fixtures, err := seed.Load()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			db, err := mongostore.Open(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
			if err != nil {
				return err
			}
			defer db.Client().Disconnect(context.Background())

			res, err := fixtures.Apply(ctx, seed.Stores{
				Developers: mongostore.NewDevelopers(db),
				Genres:     mongostore.NewGenres(db),
				Games:      mongostore.NewGames(db),
			})
			if err != nil {
				return err
			}
			log.Info("seed complete",
				"developers", res.Developers,
				"genres", res.Genres,
				"games", res.Games,
			)
			return nil
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "config file path")
	return cmd
}

// Package servecmd runs the catalog HTTP server.
package servecmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/RustamYuburov/inventory-application/internal/auth"
	"github.com/RustamYuburov/inventory-application/internal/cli/common"
	"github.com/RustamYuburov/inventory-application/internal/server/httpserver"
	"github.com/RustamYuburov/inventory-application/internal/store/mongostore"
	"github.com/RustamYuburov/inventory-application/internal/uploads"
)

func New() *cobra.Command {
	var cfgPath string
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the catalog HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := common.Load(cfgPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			log := common.SetupLogger(cfg.Log)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			db, err := mongostore.Open(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
			if err != nil {
				return err
			}
			defer db.Client().Disconnect(context.Background())

			images, err := uploads.New(uploads.Config{
				BaseDir:  cfg.Uploads.Dir,
				MaxBytes: cfg.Uploads.MaxBytes,
			})
			if err != nil {
				return err
			}

			srv, err := httpserver.New(httpserver.Config{
				Addr:           cfg.Addr,
				Release:        cfg.Release,
				TemplatesDir:   cfg.Templates.Dir,
				WatchTemplates: cfg.Templates.Watch,
				PublicDir:      cfg.PublicDir,
			}, httpserver.Deps{
				Developers: mongostore.NewDevelopers(db),
				Genres:     mongostore.NewGenres(db),
				Games:      mongostore.NewGames(db),
				Authorizer: auth.NewSharedSecret(cfg.AdminPass),
				Images:     images,
				Logger:     log,
			})
			if err != nil {
				return err
			}
			return srv.Run(ctx)
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "config file path")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address override")
	return cmd
}

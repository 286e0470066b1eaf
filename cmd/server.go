package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/doccatalog/internal/server"
	"github.com/ziadkadry99/doccatalog/internal/web"
)

var serverPort int

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"server"},
	Short:   "Start the document catalog web server",
	Long:    `Starts the HTTP server: the catalog page at /, card fragments, the JSON API, and the static documents folder.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = serverPort
		}

		log, err := newLogger(cfg)
		if err != nil {
			return err
		}

		renderer, err := newRenderer(cfg)
		if err != nil {
			return err
		}
		if !renderer.Catalog().Has(cfg.DefaultCategory) {
			log.Warn().Str("category", cfg.DefaultCategory).Msg("default category not in catalog; first load shows the placeholder")
		}

		srv := server.New(server.Config{
			Port:      cfg.Port,
			StaticDir: cfg.StaticDir,
			AllowAll:  cfg.AllowAllOrigins,
		}, log)

		web.New(renderer, web.Options{
			DefaultCategory: cfg.DefaultCategory,
			CacheTTL:        cfg.CacheTTL,
			Logger:          log,
		}).RegisterRoutes(srv.Router())

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			log.Info().Msg("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		log.Info().
			Str("version", Version).
			Int("categories", len(renderer.Catalog().Categories())).
			Str("default_category", cfg.DefaultCategory).
			Msg("starting doccatalog")

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&serverPort, "port", 8080, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

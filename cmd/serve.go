package cmd

import (
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/vimquiz/internal/httpapi"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve questions, translations and results over a read-only JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps(cmd, modeServer, true)
		if err != nil {
			return err
		}
		defer d.Close()

		addr := d.cfg.HTTP.Addr
		if a, _ := cmd.Flags().GetString("addr"); a != "" {
			addr = a
		}

		// Handlers resolve in arbitrary languages; load them all up front.
		d.text.Preload()

		h := httpapi.NewRouter(httpapi.Deps{
			Catalog:        d.catalog,
			Translations:   d.text,
			Results:        d.results(),
			Logger:         d.log.Named("http"),
			AllowedOrigins: d.cfg.HTTP.AllowedOrigins,
			MinLimit:       d.cfg.Quiz.MinLimit,
			MaxLimit:       d.cfg.Quiz.MaxLimit,
			Seed:           func() int64 { return time.Now().UnixNano() },
		})

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		d.log.Info("serving",
			zap.String("addr", addr),
			zap.Int("questions", d.catalog.Statistics().TotalQuestions),
			zap.Strings("languages", d.text.SupportedLanguages()))
		return httpapi.Serve(ctx, addr, h, d.log)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides http.addr)")
}

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"sl-calculator/internal/api"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator as a JSON HTTP API",
		Long: `Start an HTTP server exposing POST /api/v1/stoploss.

The body is JSON (or a urlencoded form) with entry_price, quantity,
max_loss and direction. Numeric fields may be JSON numbers or strings.

Example:
  curl -s localhost:8080/api/v1/stoploss \
    -d '{"entry_price":"100","quantity":"10","max_loss":"50","direction":"buy"}'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg, err := loadConfig(ctx, configPath)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.Addr
			}

			gin.SetMode(cfg.Server.Mode)
			router := api.NewRouter(initializeCalculator(ctx, cfg))
			return api.Serve(ctx, addr, router)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (default from config)")
	return cmd
}


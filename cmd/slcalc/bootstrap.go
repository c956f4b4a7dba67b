package main

import (
	"context"
	"fmt"
	"os"

	"sl-calculator/internal/charges"
	"sl-calculator/internal/charges/chargesobs"
	"sl-calculator/internal/interfaces"
	"sl-calculator/internal/logger"
	"sl-calculator/internal/store"
	"sl-calculator/internal/trace"

	"github.com/joho/godotenv"
)

// initializeSystem loads .env and initializes the logger and tracer
func initializeSystem() error {
	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := trace.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracer: %v\n", err)
	}

	return nil
}

func shutdownSystem(ctx context.Context) {
	if err := trace.Shutdown(ctx); err != nil {
		logger.Warn(ctx, "Failed to flush traces", "error", err)
	}
}

// loadConfig loads the configuration, falling back to defaults when the
// file does not exist
func loadConfig(ctx context.Context, path string) (*store.Config, error) {
	cfg, err := store.LoadConfig(path)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load config", err, "path", path)
		return nil, err
	}
	return cfg, nil
}

// initializeCalculator builds the calculator with observability
func initializeCalculator(ctx context.Context, cfg *store.Config) interfaces.Calculator {
	calc := charges.New(cfg.Rates())

	rates := calc.Rates()
	logger.Debug(ctx, "Charge schedule loaded",
		"levy_mode", string(rates.LevyMode),
		"brokerage_cap", rates.BrokerageCap,
		"tick_size", rates.TickSize,
	)
	return chargesobs.Wrap(calc)
}

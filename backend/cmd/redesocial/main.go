package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"redesocial/backend/internal/app"
	"redesocial/backend/internal/graph"
	"redesocial/backend/pkg/config"
	"redesocial/backend/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := newRootCmd(openNetwork, os.Stdin, os.Stdout)
	err := root.ExecuteContext(ctx)
	logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openNetwork loads configuration and builds the application context. The
// returned closer releases the driver.
func openNetwork(ctx context.Context) (graph.Network, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if err := logger.Init(cfg.Env); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	application, err := app.New(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return application.Network, func() { _ = application.Close(context.Background()) }, nil
}

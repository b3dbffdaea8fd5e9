// Command httpd runs the repurposer HTTP service.
package main

import (
	"context"
	"log"
	"os"

	"github.com/jonesrussell/repurposer/internal/bootstrap"
	"github.com/jonesrussell/repurposer/internal/logging"
	"github.com/jonesrussell/repurposer/internal/telemetry"
)

func main() {
	cfg := bootstrap.LoadConfig()

	logger, err := bootstrap.CreateLogger(cfg)
	if err != nil {
		log.Printf("Failed to create logger: %v", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	tp := telemetry.NewProvider()

	tables, store := bootstrap.SetupTables(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	p := bootstrap.SetupPipeline(cfg, tables, logger, tp)
	server := bootstrap.SetupServer(cfg, p, tables, store, tp, logger)

	logger.Info("Repurposer service starting",
		logging.Int("port", cfg.Service.Port),
		logging.Bool("debug", cfg.Service.Debug))

	if err := server.RunWithGracefulShutdown(context.Background()); err != nil {
		logger.Error("Server exited with error", logging.Error(err))
		os.Exit(1)
	}
}

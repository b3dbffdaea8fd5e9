package bootstrap

import (
	"context"
	"time"

	// Policy store drivers; selected by config at runtime.
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/jonesrussell/repurposer/internal/config"
	"github.com/jonesrussell/repurposer/internal/domain"
	"github.com/jonesrussell/repurposer/internal/logging"
	"github.com/jonesrussell/repurposer/internal/pipeline"
	"github.com/jonesrussell/repurposer/internal/policies"
	"github.com/jonesrussell/repurposer/internal/telemetry"
)

const policyLoadTimeout = 10 * time.Second

// SetupTables builds the policy tables, applying store overrides when a
// policy database is configured. Store failures fall back to the built-in
// defaults; the service still runs.
func SetupTables(cfg *config.Config, logger logging.Logger) (*policies.Tables, *policies.Store) {
	tables := policies.Defaults()

	if cfg.Policies.DSN == "" {
		logger.Info("Using built-in policy tables")
		return tables, nil
	}

	store, err := policies.Open(cfg.Policies.Driver, cfg.Policies.DSN)
	if err != nil {
		logger.Warn("Policy store unavailable, using built-in tables",
			logging.String("driver", cfg.Policies.Driver),
			logging.Error(err))
		return tables, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), policyLoadTimeout)
	defer cancel()

	lists, err := store.LoadLists(ctx)
	if err != nil {
		logger.Warn("Failed to load policy overrides, using built-in tables",
			logging.Error(err))
		return tables, store
	}

	tables.Apply(lists)
	logger.Info("Policy tables loaded",
		logging.String("driver", cfg.Policies.Driver),
		logging.Int("override_lists", len(lists)))

	return tables, store
}

// SetupPipeline builds the orchestrator with production clock and jitter.
func SetupPipeline(cfg *config.Config, tables *policies.Tables, logger logging.Logger, tp *telemetry.Provider) *pipeline.Pipeline {
	return pipeline.New(
		tables,
		pipeline.SystemClock{},
		pipeline.NewJitter(),
		logger,
		tp,
		pipeline.Options{
			DefaultHashtagPolicy: domain.HashtagPolicy(cfg.Pipeline.DefaultHashtagPolicy),
			ShortFormCap:         cfg.Pipeline.ShortFormHardCap,
		},
	)
}

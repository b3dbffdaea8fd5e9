package bootstrap

import (
	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/repurposer/internal/api"
	"github.com/jonesrussell/repurposer/internal/config"
	"github.com/jonesrussell/repurposer/internal/httpserver"
	"github.com/jonesrussell/repurposer/internal/logging"
	"github.com/jonesrussell/repurposer/internal/pipeline"
	"github.com/jonesrussell/repurposer/internal/policies"
	"github.com/jonesrussell/repurposer/internal/telemetry"
)

// SetupServer builds the HTTP server with all routes and middleware.
func SetupServer(
	cfg *config.Config,
	p *pipeline.Pipeline,
	tables *policies.Tables,
	store *policies.Store,
	tp *telemetry.Provider,
	logger logging.Logger,
) *httpserver.Server {
	serverCfg := httpserver.NewConfig(cfg.Service.Name, cfg.Service.Port)
	serverCfg.Debug = cfg.Service.Debug
	serverCfg.ServiceVersion = cfg.Service.Version
	serverCfg.ShutdownTimeout = cfg.Service.ShutdownTimeout

	var checks map[string]httpserver.HealthChecker
	if store != nil {
		checks = map[string]httpserver.HealthChecker{
			"policy_store": httpserver.DatabaseHealthChecker(store.Ping),
		}
	}

	handler := api.NewHandler(p, tables, tp, logger)
	rateLimit := api.RateLimitMiddleware(cfg.Service.RateLimitRPS, cfg.Service.RateLimitBurst, logger)

	return httpserver.NewServer(serverCfg, logger, checks, func(router *gin.Engine) {
		api.SetupRoutes(router, handler, rateLimit, tp.Handler())
	})
}

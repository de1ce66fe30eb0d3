package http

import (
	"time"

	"clicker_backend/internal/config"
	"clicker_backend/internal/http/handlers"
	"clicker_backend/internal/http/middleware"
	"clicker_backend/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, cfg *config.Config, version string) {
	h := handlers.NewHandler(db, cfg.BotToken, cfg.Game)
	healthHandler := handlers.NewHealthHandler(db, version)

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	apiWindow := time.Duration(cfg.APIRateWindowSec) * time.Second

	// API v1 routes
	v1 := r.Group("/api/v1")
	v1.Use(middleware.RedisRateLimit(cfg.APIRateLimit, apiWindow))
	registerAPIRoutes(v1, h, cfg)

	// Legacy /api routes for older frontends
	api := r.Group("/api")
	api.Use(middleware.RedisRateLimit(cfg.APIRateLimit, apiWindow))
	api.GET("/health", healthHandler.Health)
	registerAPIRoutes(api, h, cfg)

	// Live energy feed
	feed := ws.NewEnergyFeed(h.GameService, time.Duration(cfg.Game.EnergyRefillIntervalMs)*time.Millisecond)
	r.GET("/ws/energy", h.EnergyWS(feed))
}

func registerAPIRoutes(api *gin.RouterGroup, h *handlers.Handler, cfg *config.Config) {
	authWindow := time.Duration(cfg.AuthRateWindowSec) * time.Second
	api.POST("/auth", middleware.RedisRateLimit(cfg.AuthRateLimit, authWindow), h.Auth)

	// Write endpoints share the per-user limiter; reads stay unthrottled
	// beyond the group limit.
	syncWindow := time.Duration(cfg.SyncRateWindowSec) * time.Second
	syncRL := middleware.SyncRateLimit(cfg.SyncRateLimit, syncWindow)

	game := api.Group("/game")
	game.Use(middleware.JWT())
	{
		game.GET("/context", h.GetContext)
		game.POST("/sync", syncRL, h.Sync)

		game.GET("/boosters", h.ListBoosters)
		game.POST("/boosters/:id/upgrade", syncRL, h.UpgradeBooster)

		game.GET("/daily-boosters", h.ListDailyBoosters)
		game.POST("/daily-boosters/:id/use", syncRL, h.UseDailyBooster)
	}
}

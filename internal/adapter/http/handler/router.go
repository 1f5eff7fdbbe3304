package handler

import (
	"net/http"

	"coin-launch-gateway/config"
	"coin-launch-gateway/internal/adapter/http/middleware"
	"coin-launch-gateway/internal/core/domain"
	"coin-launch-gateway/internal/core/ports"
	"coin-launch-gateway/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Launcher       ports.LaunchService
	Reporting      ports.ReportingService // nil = /api/launches not served
	Wallet         *domain.WalletIdentity // nil = wallet not configured
	RateLimitStore ports.RateLimitStore   // nil = rate limiting disabled
	RateLimit      middleware.RateLimitRule
	HealthCheckers []ports.HealthChecker
	Metrics        *metrics.Metrics // nil = /metrics not served
	Server         config.ServerConfig
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) (*gin.Engine, error) {
	if deps.Server.Mode != "" {
		gin.SetMode(deps.Server.Mode)
	}
	r := gin.New()

	// Client IPs only come from X-Forwarded-For when the peer is trusted.
	if err := r.SetTrustedProxies(deps.Server.TrustedProxies); err != nil {
		return nil, err
	}

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Instrument())
	}
	r.Use(middleware.CORS(deps.Server.AllowedOrigins))

	r.GET("/", Root)
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	api := r.Group("/api")
	api.GET("/health", HealthCheck(deps.Wallet, deps.HealthCheckers...))

	docs := api.Group("/docs")
	{
		docs.GET("", SwaggerUI)
		docs.GET("/openapi.yaml", SwaggerSpec)
	}

	// Helper: rate limiter middleware if a store is available, else noop.
	rl := func() gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, deps.RateLimit, deps.Logger)
	}

	launchHandler := NewLaunchHandler(deps.Launcher, deps.Server.MaxUploadBytes, deps.Logger)
	api.OPTIONS("/launch", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	api.POST("/launch",
		rl(),
		middleware.APIKey(deps.Server.APIKey),
		middleware.MaxBodySize(deps.Server.MaxBodyBytes),
		launchHandler.Launch,
	)

	// Launch records carry client IPs, so they are only served behind a key.
	if deps.Reporting != nil && deps.Server.APIKey != "" {
		recordsHandler := NewRecordsHandler(deps.Reporting)
		launches := api.Group("/launches", middleware.APIKey(deps.Server.APIKey))
		{
			launches.GET("", recordsHandler.ListLaunches)
			launches.GET("/:id", recordsHandler.GetLaunch)
		}
	}

	return r, nil
}

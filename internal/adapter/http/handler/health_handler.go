package handler

import (
	"context"
	"net/http"
	"time"

	"coin-launch-gateway/internal/adapter/http/dto"
	"coin-launch-gateway/internal/core/domain"
	"coin-launch-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
)

const healthPingTimeout = 2 * time.Second

// HealthCheck handles GET /api/health. It always answers 200 with status
// "ok"; dependency failures only show up under "dependencies".
func HealthCheck(wallet *domain.WalletIdentity, checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := dto.HealthResponse{
			Status:           "ok",
			Message:          dto.MsgRunning,
			WalletConfigured: wallet != nil,
		}
		if wallet != nil {
			resp.Address = wallet.String()
		}

		if len(checkers) > 0 {
			resp.Dependencies = make(map[string]dto.DependencyStatus, len(checkers))
			for _, checker := range checkers {
				ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
				err := checker.Ping(ctx)
				cancel()
				if err != nil {
					resp.Dependencies[checker.Name()] = dto.DependencyStatus{Status: "unhealthy", Error: err.Error()}
				} else {
					resp.Dependencies[checker.Name()] = dto.DependencyStatus{Status: "healthy"}
				}
			}
		}

		c.JSON(http.StatusOK, resp)
	}
}

const rootPage = `<h1>Zora Launcher Backend</h1><p>API is alive. See <a href="/api/health">/api/health</a>.</p>`

// Root handles GET /.
func Root(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(rootPage))
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler provides liveness and readiness endpoints for the service.
type HealthHandler struct {
	dbPing func() error // nil when the run journal is not wired
}

// NewHealthHandler constructs a HealthHandler. dbPing is typically the journal
// repository's Ping; nil reports the journal as disabled.
func NewHealthHandler(dbPing func() error) *HealthHandler {
	return &HealthHandler{dbPing: dbPing}
}

// Register mounts the health and readiness endpoints into the provided Gin router.
//
// Routes:
//   - GET /healthz: Always returns 200 OK.
//   - GET /readyz: 200 when the journal database answers (or is disabled), 503 otherwise.
func (h *HealthHandler) Register(r *gin.Engine) {
	// @Summary      Liveness probe
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Router       /healthz [get]
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// @Summary      Readiness probe
	// @Description  Reports whether the run journal database is reachable
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Failure      503  {object}  map[string]string
	// @Router       /readyz [get]
	r.GET("/readyz", func(c *gin.Context) {
		switch {
		case h.dbPing == nil:
			c.JSON(http.StatusOK, gin.H{"status": "ready", "journal": "disabled"})
		case h.dbPing() != nil:
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "journal": "down"})
		default:
			c.JSON(http.StatusOK, gin.H{"status": "ready", "journal": "up"})
		}
	})
}

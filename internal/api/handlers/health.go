package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/courtside-dev/roster-sim/internal/league"
)

type HealthHandler struct {
	lg *league.Context
}

func NewHealthHandler(lg *league.Context) *HealthHandler {
	return &HealthHandler{lg: lg}
}

// Health reports liveness plus where the league clock sits.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC(),
		"season": h.lg.Season,
		"phase":  h.lg.Phase.String(),
	})
}

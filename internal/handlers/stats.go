package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/antonioclim/taskpool/api/v1"
)

// GetStats returns the live pool counters
// (GET /stats)
func (h *Handler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, v1.NewStatsResponse(h.runner.Stats()))
}

package handler

import (
	"net/http"

	"mindconnect/internal/service"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	svc *service.AnalyticsService
}

func NewAnalyticsHandler(svc *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

// Snapshot handles GET /api/admin/analytics. Counts that fail to load come
// back as zero, so this always answers 200.
func (h *AnalyticsHandler) Snapshot(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Snapshot(c.Request.Context()))
}

package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"mindconnect/internal/domain"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check handles GET /healthz by pinging the database.
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		log.Printf("[health] database ping: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Database unavailable", "code": domain.CodeUnavailable})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

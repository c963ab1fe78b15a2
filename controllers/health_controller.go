package controllers

import (
	"hospitality/pkg/resp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db}
}

// GET /health, GET /api/health
func (h *HealthController) Check(c *gin.Context) {
	status := gin.H{"status": "OK", "message": "Server is running", "database": "up"}
	if sqlDB, err := h.DB.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
		status["database"] = "down"
	}
	resp.OK(c, status)
}

package controllers

import (
	"citizens-voice-http-service/internal/domain/services"
	"citizens-voice-http-service/internal/domain/services/container"
	"citizens-voice-http-service/internal/error/code"
	"citizens-voice-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// HealthCheckController reports service liveness
type HealthCheckController struct {
	Container *container.ServiceContainer
}

// NewHealthCheckController creates a health check controller instance
func NewHealthCheckController(container *container.ServiceContainer) *HealthCheckController {
	return &HealthCheckController{Container: container}
}

// Ping liveness endpoint
// @Summary      Ping
// @Description  Liveness probe
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /ping [get]
func (h *HealthCheckController) Ping(c *gin.Context) {
	response.Success(c, gin.H{
		"status":  "healthy",
		"message": "pong",
	})
}

// Status reports the state of the backing stores
// @Summary      Service status
// @Description  Reports database and cache connectivity
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health/status [get]
func (h *HealthCheckController) Status(c *gin.Context) {
	dbStatus := "up"
	if sqlDB, err := h.Container.GetDB().DB(); err != nil || sqlDB.Ping() != nil {
		dbStatus = "down"
	}

	cacheStatus := "disabled"
	if redisService, ok := h.Container.GetService("redis").(services.InterfaceRedisService); ok && redisService != nil {
		if redisService.Ping() == nil {
			cacheStatus = "up"
		} else {
			cacheStatus = "down"
		}
	}

	response.Success(c, gin.H{
		"database": dbStatus,
		"cache":    cacheStatus,
	})
}

// HandleHealthFunc returns a Gin handler for health requests
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthCheckController(container)

		switch method {
		case "ping":
			controller.Ping(ctx)
		case "status":
			controller.Status(ctx)
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

package controllers

import (
	"strconv"

	"citizens-voice-http-service/internal/app/middleware"
	"citizens-voice-http-service/internal/domain/models"
	"citizens-voice-http-service/internal/domain/services"
	"citizens-voice-http-service/internal/domain/services/container"
	"citizens-voice-http-service/internal/error/code"
	"citizens-voice-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceStruggleController defines the struggle controller interface
type InterfaceStruggleController interface {
	GetStruggles()
	CreateStruggle()
	SetVerified()
}

// StruggleController handles the published struggle feed
type StruggleController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewStruggleController creates a new struggle controller
func NewStruggleController(ctx *gin.Context, container *container.ServiceContainer) *StruggleController {
	return &StruggleController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateStruggleRequest represents a direct publication by an administrator
type CreateStruggleRequest struct {
	Headline string `json:"headline" binding:"required" example:"Flooding on the East Bank corridor"`
	Summary  string `json:"summary" example:"Roadway under water after every high tide"`
	Category string `json:"category" binding:"required" example:"Infrastructure"`
	Location string `json:"location" example:"East Bank Demerara"`
	Verified bool   `json:"verified" example:"true"`
}

// VerifyStruggleRequest toggles the verification flag
type VerifyStruggleRequest struct {
	Verified *bool `json:"verified" binding:"required"`
}

// GetStruggles lists struggles with optional filters
// @Summary      List struggles
// @Description  Returns published struggles newest first, optionally filtered by category and district. "All" disables a filter.
// @Tags         Struggle
// @Produce      json
// @Param        category query string false "Category filter" example:"Infrastructure"
// @Param        district query string false "District substring filter" example:"Georgetown"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /struggles [get]
func (c *StruggleController) GetStruggles() {
	category := c.Ctx.Query("category")
	district := c.Ctx.Query("district")

	struggleService := c.Container.GetService("struggle").(services.InterfaceStruggleService)
	struggles, err := struggleService.GetStruggles(category, district)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, err.Error(), nil)
		return
	}

	response.Success(c.Ctx, struggles)
}

// CreateStruggle publishes a struggle directly, bypassing moderation
// @Summary      Publish a struggle
// @Description  Creates a struggle without going through the report queue. Admin only.
// @Tags         Struggle
// @Accept       json
// @Produce      json
// @Param        request body CreateStruggleRequest true "Struggle fields"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /admin/struggles [post]
// @Security     BearerAuth
func (c *StruggleController) CreateStruggle() {
	userID, ok := middleware.CurrentUserID(c.Ctx)
	if !ok {
		response.Fail(c.Ctx, code.ErrTokenInvalid, nil)
		return
	}

	var req CreateStruggleRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters", nil)
		return
	}

	struggle := models.Struggle{
		Headline: req.Headline,
		Summary:  req.Summary,
		Category: req.Category,
		Location: req.Location,
		Verified: req.Verified,
		UserID:   userID,
	}

	struggleService := c.Container.GetService("struggle").(services.InterfaceStruggleService)
	if err := struggleService.CreateStruggle(&struggle); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, err.Error(), nil)
		return
	}

	middleware.FlushCache()
	response.Success(c.Ctx, struggle)
}

// SetVerified flips the verification flag on a struggle
// @Summary      Verify a struggle
// @Description  Sets or clears the verified badge on a published struggle. Admin only.
// @Tags         Struggle
// @Accept       json
// @Produce      json
// @Param        id path int true "Struggle ID"
// @Param        request body VerifyStruggleRequest true "Verification flag"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /admin/struggles/{id}/verify [put]
// @Security     BearerAuth
func (c *StruggleController) SetVerified() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "invalid struggle id")
		return
	}

	var req VerifyStruggleRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil || req.Verified == nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters", nil)
		return
	}

	struggleService := c.Container.GetService("struggle").(services.InterfaceStruggleService)
	struggle, err := struggleService.SetVerified(uint(id), *req.Verified)
	if err != nil {
		response.Fail(c.Ctx, code.ErrStruggleNotFound, nil)
		return
	}

	middleware.FlushCache()
	response.Success(c.Ctx, struggle)
}

// HandleStruggleFunc returns a Gin handler for struggle requests
func HandleStruggleFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewStruggleController(ctx, container)

		switch method {
		case "getStruggles":
			controller.GetStruggles()
		case "createStruggle":
			controller.CreateStruggle()
		case "setVerified":
			controller.SetVerified()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

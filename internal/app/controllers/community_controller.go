package controllers

import (
	"citizens-voice-http-service/internal/app/middleware"
	"citizens-voice-http-service/internal/domain/models"
	"citizens-voice-http-service/internal/domain/services"
	"citizens-voice-http-service/internal/domain/services/container"
	"citizens-voice-http-service/internal/error/code"
	"citizens-voice-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// CommunityController handles community registration
type CommunityController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewCommunityController creates a new community controller
func NewCommunityController(ctx *gin.Context, container *container.ServiceContainer) *CommunityController {
	return &CommunityController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateCommunityRequest represents a community registration
type CreateCommunityRequest struct {
	Name        string `json:"name" binding:"required" example:"Sophia Residents Association"`
	Description string `json:"description" example:"Residents of Sophia, Greater Georgetown"`
	District    string `json:"district" example:"Region 4"`
	MemberCount int    `json:"member_count" example:"120"`
}

// GetCommunities lists all communities
// @Summary      List communities
// @Description  Returns all registered communities, newest first
// @Tags         Community
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /communities [get]
func (c *CommunityController) GetCommunities() {
	communityService := c.Container.GetService("community").(services.InterfaceCommunityService)
	communities, err := communityService.GetCommunities()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, err.Error(), nil)
		return
	}

	response.Success(c.Ctx, communities)
}

// CreateCommunity registers a new community
// @Summary      Register a community
// @Description  Creates a community record. Names are unique. Admin only.
// @Tags         Community
// @Accept       json
// @Produce      json
// @Param        request body CreateCommunityRequest true "Community fields"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /admin/communities [post]
// @Security     BearerAuth
func (c *CommunityController) CreateCommunity() {
	userID, ok := middleware.CurrentUserID(c.Ctx)
	if !ok {
		response.Fail(c.Ctx, code.ErrTokenInvalid, nil)
		return
	}

	var req CreateCommunityRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters", nil)
		return
	}

	community := models.Community{
		Name:        req.Name,
		Description: req.Description,
		District:    req.District,
		MemberCount: req.MemberCount,
		CreatedBy:   userID,
	}

	communityService := c.Container.GetService("community").(services.InterfaceCommunityService)
	if err := communityService.CreateCommunity(&community); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrCommunityAlreadyExist, err.Error(), nil)
		return
	}

	middleware.FlushCache()
	response.Success(c.Ctx, community)
}

// HandleCommunityFunc returns a Gin handler for community requests
func HandleCommunityFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewCommunityController(ctx, container)

		switch method {
		case "getCommunities":
			controller.GetCommunities()
		case "createCommunity":
			controller.CreateCommunity()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

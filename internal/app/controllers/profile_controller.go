package controllers

import (
	"citizens-voice-http-service/internal/app/middleware"
	"citizens-voice-http-service/internal/domain/services"
	"citizens-voice-http-service/internal/domain/services/container"
	"citizens-voice-http-service/internal/error/code"
	"citizens-voice-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// ProfileController handles the caller's own profile
type ProfileController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewProfileController creates a new profile controller
func NewProfileController(ctx *gin.Context, container *container.ServiceContainer) *ProfileController {
	return &ProfileController{
		Ctx:       ctx,
		Container: container,
	}
}

// UpdateProfileRequest carries the mutable profile fields
type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name"`
	AvatarURL   *string `json:"avatar_url"`
	DateOfBirth *string `json:"date_of_birth"`
	District    *string `json:"district"`
}

// GetProfile returns the caller's profile, creating a default one if absent
// @Summary      Get own profile
// @Description  Returns the authenticated user's profile. A default profile row is created on first access.
// @Tags         Profile
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Router       /profile [get]
// @Security     BearerAuth
func (c *ProfileController) GetProfile() {
	userID, ok := middleware.CurrentUserID(c.Ctx)
	if !ok {
		response.Fail(c.Ctx, code.ErrTokenInvalid, nil)
		return
	}

	profileService := c.Container.GetService("profile").(services.InterfaceProfileService)
	profile, err := profileService.GetOrCreateProfile(userID)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, err.Error(), nil)
		return
	}

	response.Success(c.Ctx, profile)
}

// UpdateProfile edits the caller's profile
// @Summary      Update own profile
// @Description  Updates display name, avatar URL, date of birth or district on the caller's profile
// @Tags         Profile
// @Accept       json
// @Produce      json
// @Param        request body UpdateProfileRequest true "Fields to change"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /profile [put]
// @Security     BearerAuth
func (c *ProfileController) UpdateProfile() {
	userID, ok := middleware.CurrentUserID(c.Ctx)
	if !ok {
		response.Fail(c.Ctx, code.ErrTokenInvalid, nil)
		return
	}

	var req UpdateProfileRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters", nil)
		return
	}

	updates := map[string]interface{}{}
	if req.DisplayName != nil {
		updates["display_name"] = *req.DisplayName
	}
	if req.AvatarURL != nil {
		updates["avatar_url"] = *req.AvatarURL
	}
	if req.DateOfBirth != nil {
		updates["date_of_birth"] = *req.DateOfBirth
	}
	if req.District != nil {
		updates["district"] = *req.District
	}
	if len(updates) == 0 {
		response.ParamError(c.Ctx, "no fields to update")
		return
	}

	profileService := c.Container.GetService("profile").(services.InterfaceProfileService)
	profile, err := profileService.UpdateProfile(userID, updates)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, err.Error(), nil)
		return
	}

	response.Success(c.Ctx, profile)
}

// HandleProfileFunc returns a Gin handler for profile requests
func HandleProfileFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewProfileController(ctx, container)

		switch method {
		case "getProfile":
			controller.GetProfile()
		case "updateProfile":
			controller.UpdateProfile()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

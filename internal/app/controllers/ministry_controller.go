package controllers

import (
	"strconv"

	"citizens-voice-http-service/internal/app/middleware"
	"citizens-voice-http-service/internal/domain/services"
	"citizens-voice-http-service/internal/domain/services/container"
	"citizens-voice-http-service/internal/error/code"
	"citizens-voice-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// MinistryController handles the ministry directory
type MinistryController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewMinistryController creates a new ministry controller
func NewMinistryController(ctx *gin.Context, container *container.ServiceContainer) *MinistryController {
	return &MinistryController{
		Ctx:       ctx,
		Container: container,
	}
}

// UpdateMinistryRequest carries the mutable fields of a ministry record
type UpdateMinistryRequest struct {
	Name             *string   `json:"name"`
	Address          *string   `json:"address"`
	Contact          *string   `json:"contact"`
	Email            *string   `json:"email"`
	Categories       *[]string `json:"categories"`
	CurrentIssues    *[]string `json:"current_issues"`
	Implementations  *[]string `json:"implementations"`
	MinisterName     *string   `json:"minister_name"`
	MinisterPhotoURL *string   `json:"minister_photo_url"`
}

// GetMinistries lists all ministry records
// @Summary      List ministries
// @Description  Returns the published government ministry directory, sorted by name
// @Tags         Ministry
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /ministries [get]
func (c *MinistryController) GetMinistries() {
	ministryService := c.Container.GetService("ministry").(services.InterfaceMinistryService)
	ministries, err := ministryService.GetMinistries()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, err.Error(), nil)
		return
	}

	response.Success(c.Ctx, ministries)
}

// UpdateMinistry edits a ministry record
// @Summary      Update a ministry
// @Description  Updates the mutable fields of a ministry record. Admin only.
// @Tags         Ministry
// @Accept       json
// @Produce      json
// @Param        id path int true "Ministry record ID"
// @Param        request body UpdateMinistryRequest true "Fields to change"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /admin/ministries/{id} [put]
// @Security     BearerAuth
func (c *MinistryController) UpdateMinistry() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "invalid ministry id")
		return
	}

	var req UpdateMinistryRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters", nil)
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.Contact != nil {
		updates["contact"] = *req.Contact
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Categories != nil {
		updates["categories"] = *req.Categories
	}
	if req.CurrentIssues != nil {
		updates["current_issues"] = *req.CurrentIssues
	}
	if req.Implementations != nil {
		updates["implementations"] = *req.Implementations
	}
	if req.MinisterName != nil {
		updates["minister_name"] = *req.MinisterName
	}
	if req.MinisterPhotoURL != nil {
		updates["minister_photo_url"] = *req.MinisterPhotoURL
	}
	if len(updates) == 0 {
		response.ParamError(c.Ctx, "no fields to update")
		return
	}

	ministryService := c.Container.GetService("ministry").(services.InterfaceMinistryService)
	ministry, err := ministryService.UpdateMinistry(uint(id), updates)
	if err != nil {
		if err.Error() == "ministry record does not exist" {
			response.Fail(c.Ctx, code.ErrMinistryNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, err.Error(), nil)
		return
	}

	middleware.FlushCache()
	response.Success(c.Ctx, ministry)
}

// HandleMinistryFunc returns a Gin handler for ministry requests
func HandleMinistryFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewMinistryController(ctx, container)

		switch method {
		case "getMinistries":
			controller.GetMinistries()
		case "updateMinistry":
			controller.UpdateMinistry()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

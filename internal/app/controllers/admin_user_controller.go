package controllers

import (
	"strconv"

	"citizens-voice-http-service/internal/domain/services"
	"citizens-voice-http-service/internal/domain/services/container"
	"citizens-voice-http-service/internal/error/code"
	"citizens-voice-http-service/internal/error/response"
	"citizens-voice-http-service/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
)

// AdminUserController manages the admin register. A row in admin_users is
// what makes a user an administrator; adding and removing rows here grants
// and revokes that capability.
type AdminUserController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAdminUserController creates a new admin register controller
func NewAdminUserController(ctx *gin.Context, container *container.ServiceContainer) *AdminUserController {
	return &AdminUserController{
		Ctx:       ctx,
		Container: container,
	}
}

// AddAdminRequest grants admin capability to an existing user
type AddAdminRequest struct {
	Email string `json:"email" binding:"required" example:"moderator@example.gy"`
	Role  string `json:"role" example:"admin"`
}

// GetAdminUsers lists all administrators
// @Summary      List administrators
// @Description  Returns the admin register joined with user emails
// @Tags         Admin
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Router       /admin/users [get]
// @Security     BearerAuth
func (c *AdminUserController) GetAdminUsers() {
	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	admins, err := adminService.GetAdminUsers()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, err.Error(), nil)
		return
	}

	response.Success(c.Ctx, admins)
}

// AddAdmin grants admin capability by email
// @Summary      Add an administrator
// @Description  Inserts an admin register row for the user with the given email
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body AddAdminRequest true "Target user"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /admin/users [post]
// @Security     BearerAuth
func (c *AdminUserController) AddAdmin() {
	var req AddAdminRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters", nil)
		return
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	admin, err := adminService.AddAdmin(req.Email, req.Role)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrAdminAlreadyExist, err.Error(), nil)
		return
	}

	logger.Info("admin capability granted to user %d", admin.UserID)
	response.Success(c.Ctx, admin)
}

// RemoveAdmin revokes admin capability
// @Summary      Remove an administrator
// @Description  Deletes an admin register row. The affected user loses admin access immediately, even with a live token.
// @Tags         Admin
// @Produce      json
// @Param        id path int true "Admin register row ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /admin/users/{id} [delete]
// @Security     BearerAuth
func (c *AdminUserController) RemoveAdmin() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "invalid admin id")
		return
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	if err := adminService.RemoveAdmin(uint(id)); err != nil {
		response.Fail(c.Ctx, code.ErrAdminNotFound, nil)
		return
	}

	logger.Info("admin register row %d removed", id)
	response.Success(c.Ctx, nil)
}

// HandleAdminUserFunc returns a Gin handler for admin register requests
func HandleAdminUserFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAdminUserController(ctx, container)

		switch method {
		case "getAdminUsers":
			controller.GetAdminUsers()
		case "addAdmin":
			controller.AddAdmin()
		case "removeAdmin":
			controller.RemoveAdmin()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

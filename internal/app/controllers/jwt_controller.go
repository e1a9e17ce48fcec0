package controllers

import (
	"citizens-voice-http-service/internal/domain/services"
	"citizens-voice-http-service/internal/domain/services/container"
	"citizens-voice-http-service/internal/error/code"
	"citizens-voice-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceJWTController defines the authentication controller interface
type InterfaceJWTController interface {
	Login()
	Register()
}

// JWTController handles authentication requests
type JWTController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewJWTController creates a new authentication controller
func NewJWTController(ctx *gin.Context, container *container.ServiceContainer) *JWTController {
	return &JWTController{
		Ctx:       ctx,
		Container: container,
	}
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"citizen@example.gy"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Email       string `json:"email" binding:"required" example:"citizen@example.gy"`
	Password    string `json:"password" binding:"required" example:"secret123"`
	DisplayName string `json:"display_name" example:"A. Persaud"`
}

// LoginResponse represents a successful login response
type LoginResponse struct {
	Code    int         `json:"code" example:"100000"`
	Message string      `json:"message" example:"success"`
	Data    interface{} `json:"data"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Code    int         `json:"code" example:"101002"`
	Message string      `json:"message" example:"incorrect email or password"`
	Data    interface{} `json:"data"`
}

// HandleJWTFunc returns a Gin handler for authentication requests
func HandleJWTFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewJWTController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		case "register":
			controller.Register()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// Login authenticates a user and returns a signed token
// @Summary      User login
// @Description  Authenticates with email and password. The role claim in the returned token reflects the admin register at login time.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login request parameters"
// @Success      200  {object}  LoginResponse{data=services.LoginResult}
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /auth/login [post]
func (c *JWTController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters", nil)
		return
	}

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)

	result, err := jwtService.Login(req.Email, req.Password)
	if err != nil {
		response.Fail(c.Ctx, code.ErrUserPasswordIncorrect, nil)
		return
	}

	response.Success(c.Ctx, result)
}

// Register creates a new citizen account
// @Summary      User registration
// @Description  Creates a user with a bcrypt-hashed password plus a default profile, then returns a signed token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration request parameters"
// @Success      200  {object}  LoginResponse{data=services.LoginResult}
// @Failure      400  {object}  ErrorResponse
// @Router       /auth/register [post]
func (c *JWTController) Register() {
	var req RegisterRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters", nil)
		return
	}

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)

	result, err := jwtService.Register(req.Email, req.Password, req.DisplayName)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrUserAlreadyExist, err.Error(), nil)
		return
	}

	response.Success(c.Ctx, result)
}

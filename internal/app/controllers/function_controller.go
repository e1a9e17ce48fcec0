package controllers

import (
	"fmt"
	"net/http"

	"citizens-voice-http-service/internal/domain/services"
	"citizens-voice-http-service/internal/domain/services/container"
	"citizens-voice-http-service/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
)

// Public collection endpoints served under /functions. Unlike the /api
// surface these do not use the {code,message,data} envelope: a successful
// GET returns {"<collection>": [...]} and failures return {"error": ...},
// which is the contract the browser client is built against.

// FunctionController serves the public collection endpoints
type FunctionController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewFunctionController creates a new collection function controller
func NewFunctionController(ctx *gin.Context, container *container.ServiceContainer) *FunctionController {
	return &FunctionController{
		Ctx:       ctx,
		Container: container,
	}
}

// failFunction writes the flat error envelope of the /functions surface
func failFunction(ctx *gin.Context, status int, body gin.H) {
	ctx.JSON(status, body)
}

// FunctionRecovery converts a panic in a collection handler into the flat
// 500 envelope instead of Gin's default empty response. CORS headers are
// already set by the time a handler runs, so they survive the recovery.
func FunctionRecovery() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("collection function panic: %v", r)
				ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": fmt.Sprintf("%v", r),
				})
			}
		}()
		ctx.Next()
	}
}

// MethodNotAllowed answers any verb without a registered route. It runs at
// the engine level, before group middleware, so it sets the CORS headers
// itself. OPTIONS never reaches here; the preflight routes answer it with
// an empty 200.
func MethodNotAllowed(allowOrigin, allowHeaders string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Header("Access-Control-Allow-Origin", allowOrigin)
		ctx.Header("Access-Control-Allow-Headers", allowHeaders)
		ctx.JSON(http.StatusMethodNotAllowed, gin.H{
			"error": "Method not allowed",
		})
	}
}

// GetStruggles lists published struggles, newest first
// @Summary      List struggles
// @Description  Returns all published struggles ordered by creation time descending
// @Tags         Functions
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /functions/struggles [get]
func (c *FunctionController) GetStruggles() {
	struggleService := c.Container.GetService("struggle").(services.InterfaceStruggleService)

	struggles, err := struggleService.GetStruggles("", "")
	if err != nil {
		logger.Error("failed to list struggles: %v", err)
		failFunction(c.Ctx, http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{"struggles": struggles})
}

// GetResources lists published resources, newest first
// @Summary      List resources
// @Description  Returns all national resource records ordered by creation time descending
// @Tags         Functions
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /functions/resources [get]
func (c *FunctionController) GetResources() {
	resourceService := c.Container.GetService("resource").(services.InterfaceResourceService)

	resources, err := resourceService.GetResources()
	if err != nil {
		logger.Error("failed to list resources: %v", err)
		failFunction(c.Ctx, http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{"resources": resources})
}

// GetCommunities lists communities, newest first
// @Summary      List communities
// @Description  Returns all registered communities ordered by creation time descending
// @Tags         Functions
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /functions/communities [get]
func (c *FunctionController) GetCommunities() {
	communityService := c.Container.GetService("community").(services.InterfaceCommunityService)

	communities, err := communityService.GetCommunities()
	if err != nil {
		logger.Error("failed to list communities: %v", err)
		failFunction(c.Ctx, http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{"communities": communities})
}

// GetLiveResourceData returns the current petroleum production snapshot
// @Summary      Live resource data
// @Description  Returns a freshly generated petroleum production and revenue snapshot
// @Tags         Functions
// @Produce      json
// @Success      200  {object}  services.LiveResourceSnapshot
// @Failure      500  {object}  map[string]interface{}
// @Router       /functions/resources/live [get]
func (c *FunctionController) GetLiveResourceData() {
	resourceService := c.Container.GetService("resource").(services.InterfaceResourceService)

	snapshot, err := resourceService.GetLiveData()
	if err != nil {
		logger.Error("failed to fetch live resource data: %v", err)
		failFunction(c.Ctx, http.StatusInternalServerError, gin.H{
			"error":  "Failed to fetch live data",
			"detail": err.Error(),
		})
		return
	}

	c.Ctx.JSON(http.StatusOK, snapshot)
}

// HandleFunctionFunc returns a Gin handler for a collection function endpoint
func HandleFunctionFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewFunctionController(ctx, container)

		switch method {
		case "getStruggles":
			controller.GetStruggles()
		case "getResources":
			controller.GetResources()
		case "getCommunities":
			controller.GetCommunities()
		case "getLiveResourceData":
			controller.GetLiveResourceData()
		default:
			failFunction(ctx, http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
		}
	}
}

package controllers

import (
	"fmt"

	"citizens-voice-http-service/internal/app/middleware"
	"citizens-voice-http-service/internal/domain/services/container"
	"citizens-voice-http-service/internal/error/code"
	"citizens-voice-http-service/internal/error/response"
	"citizens-voice-http-service/internal/infrastructure/logger"
	"citizens-voice-http-service/internal/infrastructure/storage"

	"github.com/gin-gonic/gin"
)

// maxUploadBytes caps a single evidence or photo upload at 10 MiB
const maxUploadBytes = 10 << 20

// UploadController handles file uploads to object storage
type UploadController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewUploadController creates a new upload controller
func NewUploadController(ctx *gin.Context, container *container.ServiceContainer) *UploadController {
	return &UploadController{
		Ctx:       ctx,
		Container: container,
	}
}

// Upload stores a multipart file and returns its public URL
// @Summary      Upload a file
// @Description  Stores a multipart file in the named bucket (report-evidence, ministry-photos or avatars) and returns its public URL
// @Tags         Upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        bucket path string true "Target bucket" example:"report-evidence"
// @Param        file formData file true "File to upload"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /uploads/{bucket} [post]
// @Security     BearerAuth
func (c *UploadController) Upload() {
	userID, ok := middleware.CurrentUserID(c.Ctx)
	if !ok {
		response.Fail(c.Ctx, code.ErrTokenInvalid, nil)
		return
	}

	bucket := c.Ctx.Param("bucket")
	if !storage.ValidBucket(bucket) {
		response.Fail(c.Ctx, code.ErrBucketInvalid, nil)
		return
	}

	fileHeader, err := c.Ctx.FormFile("file")
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "missing file field", nil)
		return
	}
	if fileHeader.Size > maxUploadBytes {
		response.ParamError(c.Ctx, "file exceeds the 10 MiB limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrUploadFailed, err.Error(), nil)
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	key := storage.BuildKey(fmt.Sprintf("user-%d", userID), fileHeader.Filename)

	store := c.Container.GetObjectStore()
	url, err := store.Upload(c.Ctx.Request.Context(), bucket, key, contentType, file)
	if err != nil {
		logger.Error("upload to bucket %s failed: %v", bucket, err)
		response.FailWithMessage(c.Ctx, code.ErrUploadFailed, err.Error(), nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"bucket": bucket,
		"key":    key,
		"url":    url,
	})
}

// HandleUploadFunc returns a Gin handler for upload requests
func HandleUploadFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewUploadController(ctx, container)

		switch method {
		case "upload":
			controller.Upload()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

package controllers

import (
	"errors"
	"strconv"
	"strings"

	"citizens-voice-http-service/internal/app/middleware"
	"citizens-voice-http-service/internal/domain/models"
	"citizens-voice-http-service/internal/domain/services"
	"citizens-voice-http-service/internal/domain/services/container"
	"citizens-voice-http-service/internal/error/code"
	"citizens-voice-http-service/internal/error/response"
	"citizens-voice-http-service/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
)

// InterfaceReportController defines the report controller interface
type InterfaceReportController interface {
	SubmitReport()
	GetMyReports()
	GetReports()
	ModerateReport()
}

// ReportController handles citizen report submission and moderation
type ReportController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewReportController creates a new report controller
func NewReportController(ctx *gin.Context, container *container.ServiceContainer) *ReportController {
	return &ReportController{
		Ctx:       ctx,
		Container: container,
	}
}

// SubmitReportRequest represents a citizen submission
type SubmitReportRequest struct {
	Title        string   `json:"title" binding:"required" example:"Broken sea wall at Kitty"`
	Description  string   `json:"description" binding:"required" example:"The wall has been leaking since last month"`
	Category     string   `json:"category" binding:"required" example:"Infrastructure"`
	Location     string   `json:"location" example:"Kitty, Georgetown"`
	EvidenceURLs []string `json:"evidence_urls"`
}

// ModerateReportRequest represents a moderation decision
type ModerateReportRequest struct {
	Status string `json:"status" binding:"required" example:"approved"`
}

// SubmitReport stores a new pending report
// @Summary      Submit a report
// @Description  Stores a citizen report in the moderation queue. At most 3 evidence URLs are accepted.
// @Tags         Report
// @Accept       json
// @Produce      json
// @Param        request body SubmitReportRequest true "Report fields"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /reports [post]
// @Security     BearerAuth
func (c *ReportController) SubmitReport() {
	userID, ok := middleware.CurrentUserID(c.Ctx)
	if !ok {
		response.Fail(c.Ctx, code.ErrTokenInvalid, nil)
		return
	}

	var req SubmitReportRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters", nil)
		return
	}

	if len(req.EvidenceURLs) > models.MaxEvidenceFiles {
		response.Fail(c.Ctx, code.ErrTooMuchEvidence, nil)
		return
	}

	report := models.Report{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Location:     strings.TrimSpace(req.Location),
		EvidenceURLs: req.EvidenceURLs,
		SubmittedBy:  userID,
	}

	reportService := c.Container.GetService("report").(services.InterfaceReportService)
	if err := reportService.SubmitReport(&report); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error(), nil)
		return
	}

	logger.Info("report %d submitted by user %d", report.ID, userID)
	response.Success(c.Ctx, report)
}

// GetMyReports lists the caller's own submissions
// @Summary      My reports
// @Description  Returns the authenticated citizen's reports, newest first
// @Tags         Report
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Router       /reports/mine [get]
// @Security     BearerAuth
func (c *ReportController) GetMyReports() {
	userID, ok := middleware.CurrentUserID(c.Ctx)
	if !ok {
		response.Fail(c.Ctx, code.ErrTokenInvalid, nil)
		return
	}

	reportService := c.Container.GetService("report").(services.InterfaceReportService)
	reports, err := reportService.GetReportsBySubmitter(userID)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, err.Error(), nil)
		return
	}

	response.Success(c.Ctx, reports)
}

// GetReports lists the moderation queue one page at a time
// @Summary      List all reports
// @Description  Returns reports regardless of status, newest first, paginated
// @Tags         Report
// @Produce      json
// @Param        page query int false "Page number (1-based)"
// @Param        page_size query int false "Page size, at most 100"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Router       /admin/reports [get]
// @Security     BearerAuth
func (c *ReportController) GetReports() {
	var query models.PaginationQuery
	if err := c.Ctx.ShouldBindQuery(&query); err != nil {
		response.ParamError(c.Ctx, "invalid pagination parameters")
		return
	}
	query.Normalize()

	reportService := c.Container.GetService("report").(services.InterfaceReportService)
	reports, total, err := reportService.GetReports(query)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, err.Error(), nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"reports": reports,
		"pagination": models.PaginationResult{
			Total:    total,
			Page:     query.Page,
			PageSize: query.PageSize,
		},
	})
}

// ModerateReport approves or rejects a pending report
// @Summary      Moderate a report
// @Description  Moves a pending report to approved or rejected. Approval publishes a verified struggle in the same transaction. A report that has already been reviewed yields a conflict.
// @Tags         Report
// @Accept       json
// @Produce      json
// @Param        id path int true "Report ID"
// @Param        request body ModerateReportRequest true "Target status"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /admin/reports/{id} [put]
// @Security     BearerAuth
func (c *ReportController) ModerateReport() {
	reviewerID, ok := middleware.CurrentUserID(c.Ctx)
	if !ok {
		response.Fail(c.Ctx, code.ErrTokenInvalid, nil)
		return
	}

	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "invalid report id")
		return
	}

	var req ModerateReportRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters", nil)
		return
	}

	target := models.ReportStatus(req.Status)
	if target != models.ReportStatusApproved && target != models.ReportStatusRejected {
		response.ParamError(c.Ctx, "status must be approved or rejected")
		return
	}

	reportService := c.Container.GetService("report").(services.InterfaceReportService)
	report, err := reportService.ModerateReport(uint(id), target, reviewerID)
	if err != nil {
		if errors.Is(err, services.ErrReportAlreadyReviewed) {
			response.Fail(c.Ctx, code.ErrReportAlreadyReviewed, nil)
			return
		}
		if err.Error() == "report does not exist" {
			response.Fail(c.Ctx, code.ErrReportNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, err.Error(), nil)
		return
	}

	middleware.FlushCache()
	logger.Info("report %d moderated to %s by admin %d", report.ID, report.Status, reviewerID)
	response.Success(c.Ctx, report)
}

// HandleReportFunc returns a Gin handler for report requests
func HandleReportFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewReportController(ctx, container)

		switch method {
		case "submitReport":
			controller.SubmitReport()
		case "getMyReports":
			controller.GetMyReports()
		case "getReports":
			controller.GetReports()
		case "moderateReport":
			controller.ModerateReport()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "nestegg/internal/errors"
	"nestegg/internal/pagination"
	"nestegg/internal/services"
	"nestegg/internal/uuid"
)

// AuditHandler serves the acting user's audit trail.
type AuditHandler struct {
	auditService services.AuditServicer
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(auditService services.AuditServicer) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// GetHistory handles listing the user's audit entries.
// @Summary     Audit history
// @Description Mutations performed by the authenticated user, newest first
// @Tags        audit
// @Produce     json
// @Security    BearerAuth
// @Param       resource_type query string false "weekly_budget, main_budget, payment or category"
// @Param       resource_id   query string false "Resource ID"
// @Param       since         query string false "Only entries on or after this date (YYYY-MM-DD)"
// @Param       page          query int    false "Page number (default 1)"
// @Param       page_size     query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.AuditLog] "Audit entries"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /v1/audit [get]
func (h *AuditHandler) GetHistory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter := services.AuditFilter{ResourceType: c.Query("resource_type")}
	if v := c.Query("resource_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid resource_id"))
			return
		}
		filter.ResourceID = id
	}
	if filter.Since, err = parseDateQuery(c, "since"); err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.auditService.History(c.Request.Context(), userID, filter, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

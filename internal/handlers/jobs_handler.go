package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "nestegg/internal/errors"
	"nestegg/internal/logger"
	"nestegg/internal/middleware"
	"nestegg/internal/services"
)

// JobsHandler serves the API-key protected maintenance endpoints driven by
// an external scheduler.
type JobsHandler struct {
	paymentService services.PaymentServicer
	reconService   services.ReconciliationServicer
	now            func() time.Time
	log            *zap.SugaredLogger
}

// NewJobsHandler creates a new JobsHandler.
func NewJobsHandler(paymentService services.PaymentServicer, reconService services.ReconciliationServicer) *JobsHandler {
	return &JobsHandler{
		paymentService: paymentService,
		reconService:   reconService,
		now:            time.Now,
		log:            logger.Named("jobs"),
	}
}

// logRun records a finished job with the index of the API key that
// authorised it.
func (h *JobsHandler) logRun(c *gin.Context, job string, keysAndValues ...interface{}) {
	fields := append([]interface{}{"job", job, "key_index", c.GetInt(middleware.JobKeyIndexKey)}, keysAndValues...)
	h.log.Infow("Job finished", fields...)
}

// MarkOverdueRequest optionally pins the reference time of an overdue sweep.
type MarkOverdueRequest struct {
	AsOf *Date `json:"as_of"`
}

// MarkOverdue handles flagging pending payments whose due date has passed.
// @Summary     Mark overdue payments
// @Description Moves pending payments due before today to overdue (job endpoint)
// @Tags        jobs
// @Accept      json
// @Produce     json
// @Param       X-API-Key header   string             true  "Jobs API key"
// @Param       request   body     MarkOverdueRequest false "Reference date"
// @Success     200       {object} map[string]int64   "Payments marked overdue"
// @Failure     401       {object} ErrorResponse      "Invalid API key"
// @Failure     503       {object} ErrorResponse      "Jobs not configured"
// @Router      /jobs/mark-overdue [post]
func (h *JobsHandler) MarkOverdue(c *gin.Context) {
	var req MarkOverdueRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
			return
		}
	}
	asOf := h.now()
	if req.AsOf != nil {
		asOf = req.AsOf.Time
	}

	count, err := h.paymentService.MarkOverdue(c.Request.Context(), asOf)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.logRun(c, "mark_overdue", "as_of", asOf.Format(time.DateOnly), "marked_overdue", count)
	c.JSON(http.StatusOK, gin.H{"marked_overdue": count})
}

// RepairWeeklyBudget handles running the repair pipeline for one budget.
// @Summary     Repair weekly budget (job)
// @Tags        jobs
// @Produce     json
// @Param       X-API-Key header   string                true "Jobs API key"
// @Param       id        path     string                true "Weekly budget ID"
// @Success     200       {object} services.RepairReport "Combined report"
// @Failure     401       {object} ErrorResponse         "Invalid API key"
// @Failure     404       {object} ErrorResponse         "Weekly budget not found"
// @Router      /jobs/weekly-budgets/{id}/repair [post]
func (h *JobsHandler) RepairWeeklyBudget(c *gin.Context) {
	budgetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	report, err := h.reconService.RepairBudget(c.Request.Context(), budgetID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.logRun(c, "repair_weekly_budget", "budget_id", budgetID, "failed_steps", len(report.Errors))
	c.JSON(http.StatusOK, report)
}

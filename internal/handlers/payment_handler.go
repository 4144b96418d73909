package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "nestegg/internal/errors"
	"nestegg/internal/models"
	"nestegg/internal/money"
	"nestegg/internal/pagination"
	"nestegg/internal/services"
)

// PaymentHandler handles payment record requests.
type PaymentHandler struct {
	paymentService services.PaymentServicer
	auditService   services.AuditServicer
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentService services.PaymentServicer, auditService services.AuditServicer) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService, auditService: auditService}
}

// PaymentRequest represents the request payload for creating a payment.
// category_id is taken from the path for budget-scoped creation.
type PaymentRequest struct {
	Name          string                  `json:"name" binding:"required,min=1,max=200"`
	Amount        money.Amount            `json:"amount"`
	CategoryID    string                  `json:"category_id" binding:"omitempty,record_id"`
	DueDate       *Date                   `json:"due_date" binding:"required"`
	Frequency     models.PaymentFrequency `json:"frequency" binding:"omitempty,payment_frequency"`
	Status        models.PaymentStatus    `json:"status" binding:"omitempty,payment_status"`
	PaidByID      *string                 `json:"paid_by_id" binding:"omitempty,max=64"`
	RecurrenceEnd *Date                   `json:"recurrence_end"`
	Notes         string                  `json:"notes" binding:"max=1000"`
}

func (r *PaymentRequest) input() services.PaymentInput {
	return services.PaymentInput{
		Name:          r.Name,
		Amount:        r.Amount,
		CategoryID:    r.CategoryID,
		DueDate:       r.DueDate.Time,
		Frequency:     r.Frequency,
		Status:        r.Status,
		PaidByID:      r.PaidByID,
		RecurrenceEnd: r.RecurrenceEnd.timePtr(),
		Notes:         r.Notes,
	}
}

// UpdatePaymentRequest represents the request payload for updating a payment.
// Omitted fields are left unchanged.
type UpdatePaymentRequest struct {
	Name          *string                  `json:"name" binding:"omitempty,min=1,max=200"`
	Amount        *money.Amount            `json:"amount"`
	CategoryID    *string                  `json:"category_id" binding:"omitempty,record_id"`
	DueDate       *Date                    `json:"due_date"`
	Frequency     *models.PaymentFrequency `json:"frequency" binding:"omitempty,payment_frequency"`
	RecurrenceEnd *Date                    `json:"recurrence_end"`
	Notes         *string                  `json:"notes" binding:"omitempty,max=1000"`
}

func (r *UpdatePaymentRequest) patch() services.PaymentPatch {
	return services.PaymentPatch{
		Name:          r.Name,
		Amount:        r.Amount,
		CategoryID:    r.CategoryID,
		DueDate:       r.DueDate.timePtr(),
		Frequency:     r.Frequency,
		RecurrenceEnd: r.RecurrenceEnd.timePtr(),
		Notes:         r.Notes,
	}
}

// SetStatusRequest represents the request payload for a status transition.
type SetStatusRequest struct {
	Status   models.PaymentStatus `json:"status" binding:"required,payment_status"`
	PaidByID *string              `json:"paid_by" binding:"omitempty,max=64"`
}

// CreatePayment handles the creation of a standalone payment record.
// @Summary     Create a payment
// @Description Create a scheduled or recurring payment record
// @Tags        payments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body PaymentRequest true "Payment details"
// @Success     201 {object} models.PaymentRecord "Payment created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /v1/payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	if req.CategoryID == "" {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "category_id is required"))
		return
	}

	payment, err := h.paymentService.CreatePayment(c.Request.Context(), userID, req.input())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_PAYMENT", "payment", payment.ID, c.ClientIP(),
		map[string]interface{}{"name": payment.Name, "amount": payment.Amount.String()})

	c.JSON(http.StatusCreated, gin.H{"payment": payment})
}

// ListPayments handles listing payments by due date range.
// @Summary     List payments
// @Description List payment records, optionally filtered by due date range, status and category
// @Tags        payments
// @Produce     json
// @Security    BearerAuth
// @Param       from        query string false "Earliest due date (YYYY-MM-DD)"
// @Param       to          query string false "Latest due date (YYYY-MM-DD)"
// @Param       status      query string false "Payment status"
// @Param       category_id query string false "Category ID"
// @Param       page        query int    false "Page number (default 1)"
// @Param       page_size   query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.PaymentRecord] "Paginated payments"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /v1/payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
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

	var filter services.PaymentFilter
	if filter.From, err = parseDateQuery(c, "from"); err != nil {
		respondWithError(c, err)
		return
	}
	if filter.To, err = parseDateQuery(c, "to"); err != nil {
		respondWithError(c, err)
		return
	}
	if v := c.Query("status"); v != "" {
		status := models.PaymentStatus(v)
		if !status.Valid() {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid status filter"))
			return
		}
		filter.Status = &status
	}
	if v := c.Query("category_id"); v != "" {
		filter.CategoryID = &v
	}

	result, err := h.paymentService.ListPayments(c.Request.Context(), userID, filter, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetPayment handles retrieving a payment record.
// @Summary     Get payment by ID
// @Tags        payments
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Payment ID"
// @Success     200 {object} models.PaymentRecord "Payment details"
// @Failure     400 {object} ErrorResponse "Invalid payment ID"
// @Failure     404 {object} ErrorResponse "Payment not found"
// @Router      /v1/payments/{id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	paymentID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	payment, err := h.paymentService.GetPayment(c.Request.Context(), userID, paymentID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"payment": payment})
}

// UpdatePayment handles patching a payment record. Snapshots held by weekly
// budgets are refreshed by reconciliation, not here.
// @Summary     Update payment
// @Tags        payments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string               true "Payment ID"
// @Param       request body UpdatePaymentRequest true "Changed fields"
// @Success     200 {object} models.PaymentRecord "Updated payment"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Payment not found"
// @Router      /v1/payments/{id} [put]
func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	paymentID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	payment, err := h.paymentService.UpdatePayment(c.Request.Context(), userID, paymentID, req.patch())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_PAYMENT", "payment", paymentID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"payment": payment})
}

// DeletePayment handles deleting a payment record.
// @Summary     Delete payment
// @Description Delete a payment. A payment referenced by a weekly budget needs force=true
// @Tags        payments
// @Produce     json
// @Security    BearerAuth
// @Param       id    path  string true  "Payment ID"
// @Param       force query bool   false "Also delete budget snapshots"
// @Success     200 {object} MessageResponse "Payment deleted"
// @Failure     404 {object} ErrorResponse "Payment not found"
// @Failure     409 {object} ErrorResponse "Payment referenced by a budget"
// @Router      /v1/payments/{id} [delete]
func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	paymentID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	force := false
	if v := c.Query("force"); v != "" {
		if force, err = strconv.ParseBool(v); err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "force must be 'true' or 'false'"))
			return
		}
	}

	if err := h.paymentService.DeletePayment(c.Request.Context(), userID, paymentID, force); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_PAYMENT", "payment", paymentID, c.ClientIP(),
		map[string]interface{}{"force": force})

	c.JSON(http.StatusOK, gin.H{"message": "Payment deleted successfully"})
}

// SetStatus handles a payment status transition.
// @Summary     Change payment status
// @Description Move a payment through its lifecycle. Paying a recurring payment schedules the next occurrence
// @Tags        payments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string           true "Payment ID"
// @Param       request body SetStatusRequest true "Target status"
// @Success     200 {object} services.StatusChange "Status change"
// @Failure     400 {object} ErrorResponse "Invalid transition"
// @Failure     404 {object} ErrorResponse "Payment not found"
// @Router      /v1/payments/{id}/status [post]
func (h *PaymentHandler) SetStatus(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	paymentID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	change, err := h.paymentService.SetStatus(c.Request.Context(), userID, paymentID, req.Status, req.PaidByID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if change.Changed {
		h.auditService.Log(userID, "SET_PAYMENT_STATUS", "payment", paymentID, c.ClientIP(),
			map[string]interface{}{"from": change.PreviousStatus, "to": req.Status})
	}

	c.JSON(http.StatusOK, change)
}

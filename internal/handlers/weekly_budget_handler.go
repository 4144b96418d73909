package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "nestegg/internal/errors"
	"nestegg/internal/money"
	"nestegg/internal/pagination"
	"nestegg/internal/services"
)

// WeeklyBudgetHandler handles weekly budget and category ledger requests.
type WeeklyBudgetHandler struct {
	weeklyService services.WeeklyBudgetServicer
	auditService  services.AuditServicer
}

// NewWeeklyBudgetHandler creates a new WeeklyBudgetHandler.
func NewWeeklyBudgetHandler(weeklyService services.WeeklyBudgetServicer, auditService services.AuditServicer) *WeeklyBudgetHandler {
	return &WeeklyBudgetHandler{weeklyService: weeklyService, auditService: auditService}
}

// CategoryAllocationRequest is one category of a new weekly budget.
type CategoryAllocationRequest struct {
	CategoryID string       `json:"category_id" binding:"required,record_id"`
	Allocation money.Amount `json:"allocation"`
}

// CreateWeeklyBudgetRequest represents the request payload for creating a weekly budget.
type CreateWeeklyBudgetRequest struct {
	Name        string                      `json:"name" binding:"max=100"`
	WeekStart   *Date                       `json:"week_start" binding:"required"`
	TotalBudget money.Amount                `json:"total_budget"`
	HouseholdID *string                     `json:"household_id" binding:"omitempty,record_id"`
	Categories  []CategoryAllocationRequest `json:"categories" binding:"omitempty,dive"`
}

// UpdateWeeklyBudgetRequest represents the request payload for updating a
// weekly budget. An empty household_id unshares the budget.
type UpdateWeeklyBudgetRequest struct {
	Name        *string       `json:"name" binding:"omitempty,min=1,max=100"`
	TotalBudget *money.Amount `json:"total_budget"`
	HouseholdID *string       `json:"household_id"`
}

// AddCategoryRequest represents the request payload for adding a category to a budget.
type AddCategoryRequest struct {
	CategoryID string       `json:"category_id" binding:"required,record_id"`
	Allocation money.Amount `json:"allocation"`
}

// AllocationRequest represents the request payload for changing an allocation.
type AllocationRequest struct {
	Allocation *money.Amount `json:"allocation" binding:"required"`
}

// CreateWeeklyBudget handles the creation of a standalone weekly budget.
// @Summary     Create a weekly budget
// @Description Create a weekly budget for the ISO week containing week_start
// @Tags        weekly-budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateWeeklyBudgetRequest true "Weekly budget details"
// @Success     201 {object} services.BudgetResult "Weekly budget created"
// @Failure     400 {object} ErrorResponse "Invalid input or duplicate week"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /v1/weekly-budgets [post]
func (h *WeeklyBudgetHandler) CreateWeeklyBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateWeeklyBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	input := services.CreateWeeklyBudgetInput{
		Name:        req.Name,
		WeekStart:   req.WeekStart.Time,
		TotalBudget: req.TotalBudget,
		HouseholdID: req.HouseholdID,
		Categories:  make([]services.CategoryAllocation, 0, len(req.Categories)),
	}
	for _, cat := range req.Categories {
		input.Categories = append(input.Categories, services.CategoryAllocation{
			CategoryID: cat.CategoryID,
			Allocation: cat.Allocation,
		})
	}

	result, err := h.weeklyService.CreateWeeklyBudget(c.Request.Context(), userID, input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_WEEKLY_BUDGET", "weekly_budget", result.WeeklyBudget.ID, c.ClientIP(),
		map[string]interface{}{"week_start": result.WeeklyBudget.WeekStart, "total_budget": result.WeeklyBudget.TotalBudget.String()})

	c.JSON(http.StatusCreated, result)
}

// ListWeeklyBudgets handles listing weekly budgets.
// @Summary     List weekly budgets
// @Description List weekly budgets owned by or shared with the user, newest week first
// @Tags        weekly-budgets
// @Produce     json
// @Security    BearerAuth
// @Param       from      query string false "Weeks ending on or after (YYYY-MM-DD)"
// @Param       to        query string false "Weeks starting on or before (YYYY-MM-DD)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.WeeklyBudget] "Paginated weekly budgets"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /v1/weekly-budgets [get]
func (h *WeeklyBudgetHandler) ListWeeklyBudgets(c *gin.Context) {
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
	from, err := parseDateQuery(c, "from")
	if err != nil {
		respondWithError(c, err)
		return
	}
	to, err := parseDateQuery(c, "to")
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.weeklyService.ListWeeklyBudgets(c.Request.Context(), userID, from, to, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetWeeklyBudget handles retrieving a weekly budget with its ledger.
// @Summary     Get weekly budget
// @Tags        weekly-budgets
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Weekly budget ID"
// @Success     200 {object} services.BudgetResult "Weekly budget with summary and warnings"
// @Failure     404 {object} ErrorResponse "Weekly budget not found"
// @Router      /v1/weekly-budgets/{id} [get]
func (h *WeeklyBudgetHandler) GetWeeklyBudget(c *gin.Context) {
	userID, budgetID, ok := userAndID(c)
	if !ok {
		return
	}

	result, err := h.weeklyService.GetWeeklyBudget(c.Request.Context(), userID, budgetID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdateWeeklyBudget handles updating a weekly budget.
// @Summary     Update weekly budget
// @Tags        weekly-budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                    true "Weekly budget ID"
// @Param       request body UpdateWeeklyBudgetRequest true "Changed fields"
// @Success     200 {object} services.BudgetResult "Updated weekly budget"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Weekly budget not found"
// @Router      /v1/weekly-budgets/{id} [put]
func (h *WeeklyBudgetHandler) UpdateWeeklyBudget(c *gin.Context) {
	userID, budgetID, ok := userAndID(c)
	if !ok {
		return
	}

	var req UpdateWeeklyBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.weeklyService.UpdateWeeklyBudget(c.Request.Context(), userID, budgetID, services.WeeklyBudgetPatch{
		Name:        req.Name,
		TotalBudget: req.TotalBudget,
		HouseholdID: req.HouseholdID,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_WEEKLY_BUDGET", "weekly_budget", budgetID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, result)
}

// DeleteWeeklyBudget handles deleting a weekly budget with its ledger.
// @Summary     Delete weekly budget
// @Tags        weekly-budgets
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Weekly budget ID"
// @Success     200 {object} MessageResponse "Weekly budget deleted"
// @Failure     404 {object} ErrorResponse "Weekly budget not found"
// @Router      /v1/weekly-budgets/{id} [delete]
func (h *WeeklyBudgetHandler) DeleteWeeklyBudget(c *gin.Context) {
	userID, budgetID, ok := userAndID(c)
	if !ok {
		return
	}

	if err := h.weeklyService.DeleteWeeklyBudget(c.Request.Context(), userID, budgetID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_WEEKLY_BUDGET", "weekly_budget", budgetID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Weekly budget deleted successfully"})
}

// AddCategory handles adding a category ledger entry to a weekly budget.
// @Summary     Add category to weekly budget
// @Tags        weekly-budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string             true "Weekly budget ID"
// @Param       request body AddCategoryRequest true "Category and allocation"
// @Success     201 {object} services.BudgetResult "Updated weekly budget"
// @Failure     400 {object} ErrorResponse "Category already in budget"
// @Failure     404 {object} ErrorResponse "Weekly budget or category not found"
// @Router      /v1/weekly-budgets/{id}/categories [post]
func (h *WeeklyBudgetHandler) AddCategory(c *gin.Context) {
	userID, budgetID, ok := userAndID(c)
	if !ok {
		return
	}

	var req AddCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.weeklyService.AddCategory(c.Request.Context(), userID, budgetID, req.CategoryID, req.Allocation)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "ADD_BUDGET_CATEGORY", "weekly_budget", budgetID, c.ClientIP(),
		map[string]interface{}{"category_id": req.CategoryID, "allocation": req.Allocation.String()})

	c.JSON(http.StatusCreated, result)
}

// UpdateAllocation handles changing a category allocation.
// @Summary     Update category allocation
// @Tags        weekly-budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id         path string            true "Weekly budget ID"
// @Param       categoryId path string            true "Category ID"
// @Param       request    body AllocationRequest true "New allocation"
// @Success     200 {object} services.BudgetResult "Updated weekly budget"
// @Failure     404 {object} ErrorResponse "Category is not part of this budget"
// @Router      /v1/weekly-budgets/{id}/categories/{categoryId} [put]
func (h *WeeklyBudgetHandler) UpdateAllocation(c *gin.Context) {
	userID, budgetID, ok := userAndID(c)
	if !ok {
		return
	}
	categoryID, err := parsePathID(c, "categoryId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.weeklyService.UpdateAllocation(c.Request.Context(), userID, budgetID, categoryID, *req.Allocation)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_BUDGET_ALLOCATION", "weekly_budget", budgetID, c.ClientIP(),
		map[string]interface{}{"category_id": categoryID, "allocation": req.Allocation.String()})

	c.JSON(http.StatusOK, result)
}

// RemoveCategory handles removing a category ledger entry.
// @Summary     Remove category from weekly budget
// @Description Removes the entry, its snapshots and payments created through it
// @Tags        weekly-budgets
// @Produce     json
// @Security    BearerAuth
// @Param       id         path string true "Weekly budget ID"
// @Param       categoryId path string true "Category ID"
// @Success     200 {object} MessageResponse "Category removed"
// @Failure     404 {object} ErrorResponse "Category is not part of this budget"
// @Router      /v1/weekly-budgets/{id}/categories/{categoryId} [delete]
func (h *WeeklyBudgetHandler) RemoveCategory(c *gin.Context) {
	userID, budgetID, ok := userAndID(c)
	if !ok {
		return
	}
	categoryID, err := parsePathID(c, "categoryId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.weeklyService.RemoveCategory(c.Request.Context(), userID, budgetID, categoryID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "REMOVE_BUDGET_CATEGORY", "weekly_budget", budgetID, c.ClientIP(),
		map[string]interface{}{"category_id": categoryID})

	c.JSON(http.StatusOK, gin.H{"message": "Category removed from budget"})
}

// AddPayment handles creating a payment inside a budget category.
// @Summary     Add payment to category
// @Description Creates a payment record and its ledger snapshot in one step
// @Tags        weekly-budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id         path string         true "Weekly budget ID"
// @Param       categoryId path string         true "Category ID"
// @Param       request    body PaymentRequest true "Payment details"
// @Success     201 {object} services.PaymentResult "Payment with snapshot and warnings"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Category is not part of this budget"
// @Router      /v1/weekly-budgets/{id}/categories/{categoryId}/payments [post]
func (h *WeeklyBudgetHandler) AddPayment(c *gin.Context) {
	userID, budgetID, ok := userAndID(c)
	if !ok {
		return
	}
	categoryID, err := parsePathID(c, "categoryId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	input := req.input()
	input.CategoryID = categoryID

	result, err := h.weeklyService.AddPaymentToCategory(c.Request.Context(), userID, budgetID, categoryID, input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_PAYMENT", "payment", result.Payment.ID, c.ClientIP(),
		map[string]interface{}{"weekly_budget_id": budgetID, "category_id": categoryID})

	c.JSON(http.StatusCreated, result)
}

// UpdatePayment handles the budget-scoped payment edit.
// @Summary     Update payment in category
// @Description Patches the payment record and refreshes its snapshot in this budget
// @Tags        weekly-budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id         path string               true "Weekly budget ID"
// @Param       categoryId path string               true "Category ID"
// @Param       paymentId  path string               true "Payment or snapshot ID"
// @Param       request    body UpdatePaymentRequest true "Changed fields"
// @Success     200 {object} services.PaymentResult "Payment with snapshot and warnings"
// @Failure     404 {object} ErrorResponse "Payment is not part of this budget category"
// @Router      /v1/weekly-budgets/{id}/categories/{categoryId}/payments/{paymentId} [put]
func (h *WeeklyBudgetHandler) UpdatePayment(c *gin.Context) {
	userID, budgetID, ok := userAndID(c)
	if !ok {
		return
	}
	categoryID, err := parsePathID(c, "categoryId")
	if err != nil {
		respondWithError(c, err)
		return
	}
	paymentID, err := parsePathID(c, "paymentId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.weeklyService.UpdatePaymentInCategory(c.Request.Context(), userID, budgetID, categoryID, paymentID, req.patch())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_PAYMENT", "payment", result.Payment.ID, c.ClientIP(),
		map[string]interface{}{"weekly_budget_id": budgetID})

	c.JSON(http.StatusOK, result)
}

// RemovePayment handles removing a payment from a budget category.
// @Summary     Remove payment from category
// @Description Removes the snapshot; payments created through this budget are deleted too
// @Tags        weekly-budgets
// @Produce     json
// @Security    BearerAuth
// @Param       id         path string true "Weekly budget ID"
// @Param       categoryId path string true "Category ID"
// @Param       paymentId  path string true "Payment or snapshot ID"
// @Success     200 {object} MessageResponse "Payment removed"
// @Failure     404 {object} ErrorResponse "Payment is not part of this budget category"
// @Router      /v1/weekly-budgets/{id}/categories/{categoryId}/payments/{paymentId} [delete]
func (h *WeeklyBudgetHandler) RemovePayment(c *gin.Context) {
	userID, budgetID, ok := userAndID(c)
	if !ok {
		return
	}
	categoryID, err := parsePathID(c, "categoryId")
	if err != nil {
		respondWithError(c, err)
		return
	}
	paymentID, err := parsePathID(c, "paymentId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.weeklyService.RemovePayment(c.Request.Context(), userID, budgetID, categoryID, paymentID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "REMOVE_BUDGET_PAYMENT", "weekly_budget", budgetID, c.ClientIP(),
		map[string]interface{}{"category_id": categoryID, "payment_id": paymentID})

	c.JSON(http.StatusOK, gin.H{"message": "Payment removed from budget"})
}

// GetPayers handles the per-payer breakdown of a weekly budget.
// @Summary     Paid amounts per payer
// @Tags        weekly-budgets
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Weekly budget ID"
// @Success     200 {array} services.PayerTotal "Totals per payer"
// @Failure     404 {object} ErrorResponse "Weekly budget not found"
// @Router      /v1/weekly-budgets/{id}/payers [get]
func (h *WeeklyBudgetHandler) GetPayers(c *gin.Context) {
	userID, budgetID, ok := userAndID(c)
	if !ok {
		return
	}

	payers, err := h.weeklyService.GetPayers(c.Request.Context(), userID, budgetID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"payers": payers})
}

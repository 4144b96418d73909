package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "nestegg/internal/errors"
	"nestegg/internal/models"
	"nestegg/internal/money"
	"nestegg/internal/pagination"
	"nestegg/internal/services"
)

// MainBudgetHandler handles main budget and week slot requests.
type MainBudgetHandler struct {
	mainService  services.MainBudgetServicer
	auditService services.AuditServicer
}

// NewMainBudgetHandler creates a new MainBudgetHandler.
func NewMainBudgetHandler(mainService services.MainBudgetServicer, auditService services.AuditServicer) *MainBudgetHandler {
	return &MainBudgetHandler{mainService: mainService, auditService: auditService}
}

// CreateMainBudgetRequest represents the request payload for creating a main budget.
type CreateMainBudgetRequest struct {
	Name        string                  `json:"name" binding:"max=100"`
	PeriodType  models.BudgetPeriod     `json:"period_type" binding:"required,budget_period"`
	StartDate   *Date                   `json:"start_date" binding:"required"`
	EndDate     *Date                   `json:"end_date"`
	TotalBudget money.Amount            `json:"total_budget"`
	Status      models.MainBudgetStatus `json:"status" binding:"omitempty,main_budget_status"`
	HouseholdID *string                 `json:"household_id" binding:"omitempty,record_id"`
}

// UpdateMainBudgetRequest represents the request payload for updating a main budget.
type UpdateMainBudgetRequest struct {
	Name        *string                  `json:"name" binding:"omitempty,min=1,max=100"`
	TotalBudget *money.Amount            `json:"total_budget"`
	Status      *models.MainBudgetStatus `json:"status" binding:"omitempty,main_budget_status"`
	EndDate     *Date                    `json:"end_date"`
}

// MaterializeWeekRequest optionally sets the slot allocation of a week being
// materialized for the first time.
type MaterializeWeekRequest struct {
	AllocatedAmount *money.Amount `json:"allocated_amount"`
}

// SlotAllocationRequest represents the request payload for a slot allocation.
type SlotAllocationRequest struct {
	AllocatedAmount *money.Amount `json:"allocated_amount" binding:"required"`
}

// CreateMainBudget handles the creation of a main budget.
// @Summary     Create a main budget
// @Description Create a monthly, quarterly, yearly or custom budget divided into week slots
// @Tags        main-budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateMainBudgetRequest true "Main budget details"
// @Success     201 {object} models.MainBudget "Main budget created"
// @Failure     400 {object} ErrorResponse "Invalid input or period"
// @Router      /v1/main-budgets [post]
func (h *MainBudgetHandler) CreateMainBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateMainBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	budget, err := h.mainService.CreateMainBudget(c.Request.Context(), userID, services.CreateMainBudgetInput{
		Name:        req.Name,
		PeriodType:  req.PeriodType,
		StartDate:   req.StartDate.Time,
		EndDate:     req.EndDate.timePtr(),
		TotalBudget: req.TotalBudget,
		Status:      req.Status,
		HouseholdID: req.HouseholdID,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_MAIN_BUDGET", "main_budget", budget.ID, c.ClientIP(),
		map[string]interface{}{"period_type": budget.PeriodType, "total_budget": budget.TotalBudget.String()})

	c.JSON(http.StatusCreated, gin.H{"main_budget": budget})
}

// ListMainBudgets handles listing main budgets.
// @Summary     List main budgets
// @Tags        main-budgets
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.MainBudget] "Paginated main budgets"
// @Router      /v1/main-budgets [get]
func (h *MainBudgetHandler) ListMainBudgets(c *gin.Context) {
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

	result, err := h.mainService.ListMainBudgets(c.Request.Context(), userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetMainBudget handles retrieving a main budget with its week slots.
// @Summary     Get main budget
// @Tags        main-budgets
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Main budget ID"
// @Success     200 {object} models.MainBudget "Main budget with slots"
// @Failure     404 {object} ErrorResponse "Main budget not found"
// @Router      /v1/main-budgets/{id} [get]
func (h *MainBudgetHandler) GetMainBudget(c *gin.Context) {
	userID, mainID, ok := userAndID(c)
	if !ok {
		return
	}

	budget, err := h.mainService.GetMainBudget(c.Request.Context(), userID, mainID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"main_budget": budget})
}

// UpdateMainBudget handles updating a main budget.
// @Summary     Update main budget
// @Tags        main-budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                  true "Main budget ID"
// @Param       request body UpdateMainBudgetRequest true "Changed fields"
// @Success     200 {object} models.MainBudget "Updated main budget"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Main budget not found"
// @Router      /v1/main-budgets/{id} [put]
func (h *MainBudgetHandler) UpdateMainBudget(c *gin.Context) {
	userID, mainID, ok := userAndID(c)
	if !ok {
		return
	}

	var req UpdateMainBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	budget, err := h.mainService.UpdateMainBudget(c.Request.Context(), userID, mainID, services.MainBudgetPatch{
		Name:        req.Name,
		TotalBudget: req.TotalBudget,
		Status:      req.Status,
		EndDate:     req.EndDate.timePtr(),
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_MAIN_BUDGET", "main_budget", mainID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"main_budget": budget})
}

// DeleteMainBudget handles deleting a main budget and its weekly budgets.
// @Summary     Delete main budget
// @Tags        main-budgets
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Main budget ID"
// @Success     200 {object} MessageResponse "Main budget deleted"
// @Failure     404 {object} ErrorResponse "Main budget not found"
// @Router      /v1/main-budgets/{id} [delete]
func (h *MainBudgetHandler) DeleteMainBudget(c *gin.Context) {
	userID, mainID, ok := userAndID(c)
	if !ok {
		return
	}

	if err := h.mainService.DeleteMainBudget(c.Request.Context(), userID, mainID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_MAIN_BUDGET", "main_budget", mainID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Main budget deleted successfully"})
}

// MaterializeWeek handles materializing a week slot into a weekly budget.
// @Summary     Materialize week
// @Description Creates the weekly budget for week n exactly once; repeated calls return the existing one
// @Tags        main-budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id         path string                 true  "Main budget ID"
// @Param       weekNumber path int                    true  "1-based week number"
// @Param       request    body MaterializeWeekRequest false "Initial slot allocation"
// @Success     200 {object} services.MaterializeResult "Existing week"
// @Success     201 {object} services.MaterializeResult "Week created"
// @Failure     400 {object} ErrorResponse "Week number outside the period"
// @Failure     404 {object} ErrorResponse "Main budget not found"
// @Router      /v1/main-budgets/{id}/weekly/{weekNumber} [post]
func (h *MainBudgetHandler) MaterializeWeek(c *gin.Context) {
	userID, mainID, ok := userAndID(c)
	if !ok {
		return
	}
	weekNumber, err := parseWeekNumber(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req MaterializeWeekRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
			return
		}
	}

	result, err := h.mainService.MaterializeWeek(c.Request.Context(), userID, mainID, weekNumber, req.AllocatedAmount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
		h.auditService.Log(userID, "MATERIALIZE_WEEK", "main_budget", mainID, c.ClientIP(),
			map[string]interface{}{"week_number": weekNumber, "weekly_budget_id": result.WeeklyBudget.ID})
	}
	c.JSON(status, result)
}

// SetSlotAllocation handles changing the allocation of a week slot.
// @Summary     Set week allocation
// @Tags        main-budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id         path string                true "Main budget ID"
// @Param       weekNumber path int                   true "1-based week number"
// @Param       request    body SlotAllocationRequest true "Allocated amount"
// @Success     200 {object} models.WeekSlot "Updated slot"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Main budget not found"
// @Router      /v1/main-budgets/{id}/weekly/{weekNumber}/allocation [put]
func (h *MainBudgetHandler) SetSlotAllocation(c *gin.Context) {
	userID, mainID, ok := userAndID(c)
	if !ok {
		return
	}
	weekNumber, err := parseWeekNumber(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SlotAllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	slot, err := h.mainService.SetSlotAllocation(c.Request.Context(), userID, mainID, weekNumber, *req.AllocatedAmount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "SET_SLOT_ALLOCATION", "main_budget", mainID, c.ClientIP(),
		map[string]interface{}{"week_number": weekNumber, "allocated_amount": req.AllocatedAmount.String()})

	c.JSON(http.StatusOK, gin.H{"slot": slot})
}

// RecalculateTotal handles recomputing a main budget total from its slots.
// @Summary     Recalculate main budget total
// @Description Sums materialized slot allocations and applies the configured recalculation policy
// @Tags        main-budgets
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Main budget ID"
// @Success     200 {object} services.RecalcResult "Recalculation outcome"
// @Failure     404 {object} ErrorResponse "Main budget not found"
// @Router      /v1/main-budgets/{id}/recalculate-total [post]
func (h *MainBudgetHandler) RecalculateTotal(c *gin.Context) {
	userID, mainID, ok := userAndID(c)
	if !ok {
		return
	}

	result, err := h.mainService.RecalculateTotal(c.Request.Context(), userID, mainID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if result.Applied {
		h.auditService.Log(userID, "RECALCULATE_MAIN_BUDGET", "main_budget", mainID, c.ClientIP(),
			map[string]interface{}{"previous_total": result.PreviousTotal.String(), "new_total": result.NewTotal.String()})
	}

	c.JSON(http.StatusOK, result)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nestegg/internal/services"
)

// HouseholdHandler serves the household read model.
type HouseholdHandler struct {
	resolver services.HouseholdResolver
}

// NewHouseholdHandler creates a new HouseholdHandler.
func NewHouseholdHandler(resolver services.HouseholdResolver) *HouseholdHandler {
	return &HouseholdHandler{resolver: resolver}
}

// GetBudgets handles listing every budget shared with a household.
// @Summary     Household budgets
// @Description Shared weekly and main budgets with payer names resolved against the household roster
// @Tags        households
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Household ID"
// @Success     200 {object} services.HouseholdBudgets "Household budgets"
// @Failure     403 {object} ErrorResponse "Not a household member"
// @Failure     404 {object} ErrorResponse "Household not found"
// @Router      /v1/households/{id}/budgets [get]
func (h *HouseholdHandler) GetBudgets(c *gin.Context) {
	userID, householdID, ok := userAndID(c)
	if !ok {
		return
	}

	result, err := h.resolver.HouseholdBudgets(c.Request.Context(), userID, householdID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

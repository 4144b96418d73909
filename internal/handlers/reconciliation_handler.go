package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nestegg/internal/services"
)

// ReconciliationHandler exposes the snapshot repair steps of a weekly budget.
type ReconciliationHandler struct {
	reconService services.ReconciliationServicer
	auditService services.AuditServicer
}

// NewReconciliationHandler creates a new ReconciliationHandler.
func NewReconciliationHandler(reconService services.ReconciliationServicer, auditService services.AuditServicer) *ReconciliationHandler {
	return &ReconciliationHandler{reconService: reconService, auditService: auditService}
}

// SyncCategories handles pulling in-window payments into the ledger.
// @Summary     Sync categories
// @Description Adds missing ledger entries and snapshots for payments due in the budget week and refreshes stale snapshots
// @Tags        reconciliation
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Weekly budget ID"
// @Success     200 {object} services.SyncResult "Sync report"
// @Failure     404 {object} ErrorResponse "Weekly budget not found"
// @Router      /v1/weekly-budgets/{id}/sync-categories [post]
func (h *ReconciliationHandler) SyncCategories(c *gin.Context) {
	userID, budgetID, ok := userAndID(c)
	if !ok {
		return
	}

	result, err := h.reconService.SyncCategories(c.Request.Context(), userID, budgetID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "SYNC_CATEGORIES", "weekly_budget", budgetID, c.ClientIP(),
		map[string]interface{}{"created": result.Created, "updated": result.Updated, "removed": result.Removed})

	c.JSON(http.StatusOK, result)
}

// FixPaymentLinks handles relinking snapshots whose payment is gone.
// @Summary     Fix payment links
// @Tags        reconciliation
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Weekly budget ID"
// @Success     200 {object} services.LinkResult "Relink report"
// @Failure     404 {object} ErrorResponse "Weekly budget not found"
// @Router      /v1/weekly-budgets/{id}/fix-payment-links [post]
func (h *ReconciliationHandler) FixPaymentLinks(c *gin.Context) {
	userID, budgetID, ok := userAndID(c)
	if !ok {
		return
	}

	result, err := h.reconService.FixPaymentLinks(c.Request.Context(), userID, budgetID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "FIX_PAYMENT_LINKS", "weekly_budget", budgetID, c.ClientIP(),
		map[string]interface{}{"fixed": result.Fixed, "unresolved": result.Unresolved})

	c.JSON(http.StatusOK, result)
}

// FixPaidBy handles embedding payer names into snapshots.
// @Summary     Fix paid-by names
// @Tags        reconciliation
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Weekly budget ID"
// @Success     200 {object} services.PaidByResult "Paid-by report"
// @Failure     404 {object} ErrorResponse "Weekly budget not found"
// @Router      /v1/weekly-budgets/{id}/fix-paidby [post]
func (h *ReconciliationHandler) FixPaidBy(c *gin.Context) {
	userID, budgetID, ok := userAndID(c)
	if !ok {
		return
	}

	result, err := h.reconService.FixPaidBy(c.Request.Context(), userID, budgetID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "FIX_PAID_BY", "weekly_budget", budgetID, c.ClientIP(),
		map[string]interface{}{"fixed": result.Fixed, "unresolved": result.Unresolved})

	c.JSON(http.StatusOK, result)
}

// Repair handles running every repair step in order.
// @Summary     Repair weekly budget
// @Description Runs sync-categories, fix-payment-links and fix-paidby; a failing step does not stop later ones
// @Tags        reconciliation
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Weekly budget ID"
// @Success     200 {object} services.RepairReport "Combined report"
// @Failure     404 {object} ErrorResponse "Weekly budget not found"
// @Router      /v1/weekly-budgets/{id}/repair [post]
func (h *ReconciliationHandler) Repair(c *gin.Context) {
	userID, budgetID, ok := userAndID(c)
	if !ok {
		return
	}

	report, err := h.reconService.Repair(c.Request.Context(), userID, budgetID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "REPAIR_WEEKLY_BUDGET", "weekly_budget", budgetID, c.ClientIP(),
		map[string]interface{}{"failed_steps": len(report.Errors)})

	c.JSON(http.StatusOK, report)
}

// CheckPayments handles the read-only drift report.
// @Summary     Diagnose payments
// @Tags        reconciliation
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Weekly budget ID"
// @Success     200 {object} services.Diagnosis "Drift report"
// @Failure     404 {object} ErrorResponse "Weekly budget not found"
// @Router      /v1/weekly-budgets/{id}/check-payments [get]
func (h *ReconciliationHandler) CheckPayments(c *gin.Context) {
	userID, budgetID, ok := userAndID(c)
	if !ok {
		return
	}

	diagnosis, err := h.reconService.DiagnosePayments(c.Request.Context(), userID, budgetID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, diagnosis)
}

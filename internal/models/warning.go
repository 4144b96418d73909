package models

// WarningCode identifies a non-fatal reconciliation diagnostic.
type WarningCode string

const (
	WarningAllocationExceedsBudget WarningCode = "ALLOCATION_EXCEEDS_BUDGET"
	WarningCategoryOverAllocation  WarningCode = "CATEGORY_OVER_ALLOCATION"
	WarningPaymentOutsideWeek      WarningCode = "PAYMENT_OUTSIDE_WEEK"
	WarningOrphanedSnapshot        WarningCode = "ORPHANED_SNAPSHOT"
	WarningAmbiguousLink           WarningCode = "AMBIGUOUS_PAYMENT_LINK"
	WarningUnresolvedPayer         WarningCode = "UNRESOLVED_PAYER"
)

// Warning is returned alongside a successful result. Warnings are never
// raised as errors; real households overspend transiently.
type Warning struct {
	Code       WarningCode `json:"code"`
	Message    string      `json:"message"`
	CategoryID string      `json:"category_id,omitempty"`
	PaymentID  string      `json:"payment_id,omitempty"`
}

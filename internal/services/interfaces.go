package services

import (
	"context"
	"time"

	"nestegg/internal/models"
	"nestegg/internal/money"
	"nestegg/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(ctx context.Context, email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(ctx context.Context, userID, name string, categoryType models.CategoryType, description, icon, color string, parentID *string) (*models.Category, error)
	GetUserCategories(ctx context.Context, userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error)
	GetUserCategoriesByType(ctx context.Context, userID string, categoryType models.CategoryType, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error)
	GetCategoryByID(ctx context.Context, userID, categoryID string) (*models.Category, error)
	UpdateCategory(ctx context.Context, userID, categoryID, name, description, icon, color string, parentID *string) (*models.Category, error)
	DeleteCategory(ctx context.Context, userID, categoryID string) error
}

// PaymentInput holds the fields of a new payment record.
type PaymentInput struct {
	Name          string
	Amount        money.Amount
	CategoryID    string
	DueDate       time.Time
	Frequency     models.PaymentFrequency
	Status        models.PaymentStatus
	PaidByID      *string
	RecurrenceEnd *time.Time
	Notes         string
}

// PaymentPatch holds optional payment changes. Nil fields are left untouched.
// Status changes go through SetStatus.
type PaymentPatch struct {
	Name          *string
	Amount        *money.Amount
	CategoryID    *string
	DueDate       *time.Time
	Frequency     *models.PaymentFrequency
	RecurrenceEnd *time.Time
	Notes         *string
}

// PaymentFilter holds optional filter parameters for listing payments.
type PaymentFilter struct {
	From       *time.Time
	To         *time.Time
	Status     *models.PaymentStatus
	CategoryID *string
}

// StatusChange is the outcome of a payment status transition.
type StatusChange struct {
	Payment        *models.PaymentRecord `json:"payment"`
	PreviousStatus models.PaymentStatus  `json:"previous_status"`
	Changed        bool                  `json:"changed"`
	// NextOccurrence is set when paying a recurring payment scheduled the next one.
	NextOccurrence *models.PaymentRecord `json:"next_occurrence,omitempty"`
}

// PaymentServicer defines the contract for the payment record store.
type PaymentServicer interface {
	CreatePayment(ctx context.Context, userID string, input PaymentInput) (*models.PaymentRecord, error)
	GetPayment(ctx context.Context, userID, paymentID string) (*models.PaymentRecord, error)
	ListPayments(ctx context.Context, userID string, filter PaymentFilter, page pagination.PageRequest) (*pagination.PageResponse[models.PaymentRecord], error)
	UpdatePayment(ctx context.Context, userID, paymentID string, patch PaymentPatch) (*models.PaymentRecord, error)
	SetStatus(ctx context.Context, userID, paymentID string, status models.PaymentStatus, paidBy *string) (*StatusChange, error)
	DeletePayment(ctx context.Context, userID, paymentID string, force bool) error
	MarkOverdue(ctx context.Context, now time.Time) (int64, error)
}

// CategoryAllocation is a category with its allocation inside a weekly budget.
type CategoryAllocation struct {
	CategoryID string
	Allocation money.Amount
}

// CreateWeeklyBudgetInput holds the fields of a new standalone weekly budget.
type CreateWeeklyBudgetInput struct {
	Name        string
	WeekStart   time.Time
	TotalBudget money.Amount
	HouseholdID *string
	Categories  []CategoryAllocation
}

// WeeklyBudgetPatch holds optional weekly budget changes. An empty
// HouseholdID unshares the budget.
type WeeklyBudgetPatch struct {
	Name        *string
	TotalBudget *money.Amount
	HouseholdID *string
}

// BudgetResult is a weekly budget with its derived totals and soft warnings.
type BudgetResult struct {
	WeeklyBudget *models.WeeklyBudget `json:"weekly_budget"`
	Summary      models.BudgetSummary `json:"summary"`
	Warnings     []models.Warning     `json:"warnings"`
}

// PaymentResult is a budget-scoped payment write.
type PaymentResult struct {
	Payment  *models.PaymentRecord   `json:"payment"`
	Snapshot *models.PaymentSnapshot `json:"snapshot"`
	Warnings []models.Warning        `json:"warnings"`
}

// WeeklyBudgetServicer defines the contract for the weekly budget aggregate
// and its category ledger.
type WeeklyBudgetServicer interface {
	CreateWeeklyBudget(ctx context.Context, userID string, input CreateWeeklyBudgetInput) (*BudgetResult, error)
	GetWeeklyBudget(ctx context.Context, userID, budgetID string) (*BudgetResult, error)
	ListWeeklyBudgets(ctx context.Context, userID string, from, to *time.Time, page pagination.PageRequest) (*pagination.PageResponse[models.WeeklyBudget], error)
	UpdateWeeklyBudget(ctx context.Context, userID, budgetID string, patch WeeklyBudgetPatch) (*BudgetResult, error)
	DeleteWeeklyBudget(ctx context.Context, userID, budgetID string) error

	AddCategory(ctx context.Context, userID, budgetID, categoryID string, allocation money.Amount) (*BudgetResult, error)
	UpdateAllocation(ctx context.Context, userID, budgetID, categoryID string, allocation money.Amount) (*BudgetResult, error)
	RemoveCategory(ctx context.Context, userID, budgetID, categoryID string) error

	AddPaymentToCategory(ctx context.Context, userID, budgetID, categoryID string, input PaymentInput) (*PaymentResult, error)
	UpdatePaymentInCategory(ctx context.Context, userID, budgetID, categoryID, paymentID string, patch PaymentPatch) (*PaymentResult, error)
	RemovePayment(ctx context.Context, userID, budgetID, categoryID, paymentID string) error

	GetPayers(ctx context.Context, userID, budgetID string) ([]PayerTotal, error)
}

// CreateMainBudgetInput holds the fields of a new main budget. EndDate is
// only used for custom periods.
type CreateMainBudgetInput struct {
	Name        string
	PeriodType  models.BudgetPeriod
	StartDate   time.Time
	EndDate     *time.Time
	TotalBudget money.Amount
	Status      models.MainBudgetStatus
	HouseholdID *string
}

// MainBudgetPatch holds optional main budget changes.
type MainBudgetPatch struct {
	Name        *string
	TotalBudget *money.Amount
	Status      *models.MainBudgetStatus
	EndDate     *time.Time
}

// MaterializeResult is the slot and weekly budget for a materialized week.
type MaterializeResult struct {
	Slot         *models.WeekSlot     `json:"slot"`
	WeeklyBudget *models.WeeklyBudget `json:"weekly_budget"`
	Created      bool                 `json:"created"`
}

// RecalcResult reports a main budget total recalculation.
type RecalcResult struct {
	Policy        RecalcPolicy `json:"policy"`
	PreviousTotal money.Amount `json:"previous_total"`
	ComputedSum   money.Amount `json:"computed_sum"`
	NewTotal      money.Amount `json:"new_total"`
	Applied       bool         `json:"applied"`
	Reason        string       `json:"reason"`
}

// MainBudgetServicer defines the contract for the main budget aggregate.
type MainBudgetServicer interface {
	CreateMainBudget(ctx context.Context, userID string, input CreateMainBudgetInput) (*models.MainBudget, error)
	GetMainBudget(ctx context.Context, userID, mainBudgetID string) (*models.MainBudget, error)
	ListMainBudgets(ctx context.Context, userID string, page pagination.PageRequest) (*pagination.PageResponse[models.MainBudget], error)
	UpdateMainBudget(ctx context.Context, userID, mainBudgetID string, patch MainBudgetPatch) (*models.MainBudget, error)
	DeleteMainBudget(ctx context.Context, userID, mainBudgetID string) error

	MaterializeWeek(ctx context.Context, userID, mainBudgetID string, weekNumber int, allocated *money.Amount) (*MaterializeResult, error)
	SetSlotAllocation(ctx context.Context, userID, mainBudgetID string, weekNumber int, amount money.Amount) (*models.WeekSlot, error)
	RecalculateTotal(ctx context.Context, userID, mainBudgetID string) (*RecalcResult, error)
}

// SyncResult reports a SyncCategories pass.
type SyncResult struct {
	BudgetID        string           `json:"budget_id"`
	CategoriesAdded int              `json:"categories_added"`
	Created         int              `json:"snapshots_created"`
	Updated         int              `json:"snapshots_updated"`
	Removed         int              `json:"snapshots_removed"`
	Warnings        []models.Warning `json:"warnings"`
}

// LinkResult reports a FixPaymentLinks pass.
type LinkResult struct {
	BudgetID   string           `json:"budget_id"`
	Fixed      int              `json:"fixed"`
	Removed    int              `json:"removed"`
	Unresolved int              `json:"unresolved"`
	Warnings   []models.Warning `json:"warnings"`
}

// PaidByResult reports a FixPaidBy pass.
type PaidByResult struct {
	BudgetID   string           `json:"budget_id"`
	Fixed      int              `json:"fixed"`
	Unresolved int              `json:"unresolved"`
	Warnings   []models.Warning `json:"warnings"`
}

// Diagnosis is the read-only drift report for a weekly budget.
type Diagnosis struct {
	BudgetID            string `json:"budget_id"`
	PaymentsInWindow    int    `json:"payments_in_window"`
	RepresentedInLedger int    `json:"represented_in_ledger"`
	MissingFromLedger   int    `json:"missing_from_ledger"`
	OrphanedSnapshots   int    `json:"orphaned_snapshots"`
	StaleSnapshots      int    `json:"stale_snapshots"`
	ResolvablePayers    int    `json:"resolvable_payers"`
	UnresolvedPayers    int    `json:"unresolved_payers"`
	NeedsRepair         bool   `json:"needs_repair"`
}

// RepairReport combines the results of a full repair pipeline run. A failed
// step leaves its result nil and records the error under its name.
type RepairReport struct {
	BudgetID string            `json:"budget_id"`
	Sync     *SyncResult       `json:"sync,omitempty"`
	Links    *LinkResult       `json:"links,omitempty"`
	PaidBy   *PaidByResult     `json:"paid_by,omitempty"`
	Errors   map[string]string `json:"errors,omitempty"`
}

// ReconciliationServicer defines the contract for snapshot drift detection
// and repair.
type ReconciliationServicer interface {
	SyncCategories(ctx context.Context, userID, budgetID string) (*SyncResult, error)
	FixPaymentLinks(ctx context.Context, userID, budgetID string) (*LinkResult, error)
	FixPaidBy(ctx context.Context, userID, budgetID string) (*PaidByResult, error)
	DiagnosePayments(ctx context.Context, userID, budgetID string) (*Diagnosis, error)
	Repair(ctx context.Context, userID, budgetID string) (*RepairReport, error)
	// RepairBudget runs the repair pipeline without an acting user. It backs
	// the job endpoint.
	RepairBudget(ctx context.Context, budgetID string) (*RepairReport, error)
}

// PayerTotal is the amount paid by one resolved payer.
type PayerTotal struct {
	Payer models.Payer `json:"payer"`
	Total money.Amount `json:"total"`
	Count int          `json:"count"`
}

// SharedWeeklyBudget is a household weekly budget with resolved payer names.
type SharedWeeklyBudget struct {
	WeeklyBudget *models.WeeklyBudget `json:"weekly_budget"`
	Summary      models.BudgetSummary `json:"summary"`
	Payers       []PayerTotal         `json:"payers"`
}

// HouseholdBudgets is the household read model.
type HouseholdBudgets struct {
	HouseholdID   string               `json:"household_id"`
	Members       []models.Payer       `json:"members"`
	WeeklyBudgets []SharedWeeklyBudget `json:"weekly_budgets"`
	MainBudgets   []models.MainBudget  `json:"main_budgets"`
}

// HouseholdResolver resolves "paid by" references against a household roster.
type HouseholdResolver interface {
	Roster(ctx context.Context, householdID string) (*models.Roster, error)
	RosterForBudget(ctx context.Context, budget *models.WeeklyBudget) (*models.Roster, error)
	Resolve(ctx context.Context, householdID string, ref models.PayerRef) models.Payer
	SumByPayer(ctx context.Context, budget *models.WeeklyBudget) ([]PayerTotal, error)
	HouseholdBudgets(ctx context.Context, userID, householdID string) (*HouseholdBudgets, error)
}

// AuditFilter narrows an audit history listing.
type AuditFilter struct {
	ResourceType string
	ResourceID   string
	Since        *time.Time
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
	History(ctx context.Context, userID string, filter AuditFilter, page pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error)
}

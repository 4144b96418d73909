package models

import (
	"fmt"
	"time"

	"nestegg/internal/money"
)

// WeeklyBudget is a Monday-aligned 7-day budget holding one ledger entry per
// category. It is either standalone or materialized from a MainBudget slot.
type WeeklyBudget struct {
	Base
	UserID       string       `gorm:"type:uuid;not null;index" json:"user_id"`
	HouseholdID  *string      `gorm:"type:uuid;index" json:"household_id,omitempty"`
	Name         string       `json:"name"`
	WeekStart    time.Time    `gorm:"not null;index" json:"week_start"`
	WeekEnd      time.Time    `gorm:"not null" json:"week_end"`
	TotalBudget  money.Amount `gorm:"type:bigint;not null;default:0" json:"total_budget"`
	MainBudgetID *string      `gorm:"type:uuid;index" json:"main_budget_id,omitempty"`
	WeekNumber   *int         `json:"week_number,omitempty"`
	DedupKey     string       `gorm:"not null;uniqueIndex" json:"-"`

	// Relationships
	Entries []CategoryLedgerEntry `gorm:"foreignKey:WeeklyBudgetID" json:"categories"`
}

// StandaloneDedupKey identifies a user's own budget for a week.
func StandaloneDedupKey(userID string, weekStart time.Time) string {
	return fmt.Sprintf("owner:%s:%s", userID, MondayOf(weekStart).Format(time.DateOnly))
}

// SlotDedupKey identifies the budget materialized for a main budget week.
func SlotDedupKey(mainBudgetID string, weekNumber int) string {
	return fmt.Sprintf("main:%s:%d", mainBudgetID, weekNumber)
}

// Contains reports whether d falls inside the budget's week.
func (b *WeeklyBudget) Contains(d time.Time) bool {
	return WithinDays(d, b.WeekStart, b.WeekEnd)
}

// Entry returns the ledger entry for categoryID.
func (b *WeeklyBudget) Entry(categoryID string) (*CategoryLedgerEntry, bool) {
	for i := range b.Entries {
		if b.Entries[i].CategoryID == categoryID {
			return &b.Entries[i], true
		}
	}
	return nil, false
}

// CategorySummary holds derived totals for one ledger entry.
type CategorySummary struct {
	CategoryID   string       `json:"category_id"`
	Allocation   money.Amount `json:"allocation"`
	Scheduled    money.Amount `json:"scheduled"`
	Spent        money.Amount `json:"spent"`
	Remaining    money.Amount `json:"remaining"`
	PaymentCount int          `json:"payment_count"`
}

// BudgetSummary holds the derived totals of a weekly budget.
type BudgetSummary struct {
	TotalBudget    money.Amount      `json:"total_budget"`
	TotalAllocated money.Amount      `json:"total_allocated"`
	TotalScheduled money.Amount      `json:"total_scheduled"`
	TotalSpent     money.Amount      `json:"total_spent"`
	Remaining      money.Amount      `json:"remaining"`
	Categories     []CategorySummary `json:"categories"`
}

// Summarize recomputes every derived total from the snapshots. Cancelled
// payments are excluded from all sums.
func (b *WeeklyBudget) Summarize() BudgetSummary {
	summary := BudgetSummary{
		TotalBudget: b.TotalBudget,
		Categories:  make([]CategorySummary, 0, len(b.Entries)),
	}
	for i := range b.Entries {
		entry := &b.Entries[i]
		scheduled, spent := entry.Scheduled(), entry.Spent()
		summary.TotalAllocated += entry.Allocation
		summary.TotalScheduled += scheduled
		summary.TotalSpent += spent
		summary.Categories = append(summary.Categories, CategorySummary{
			CategoryID:   entry.CategoryID,
			Allocation:   entry.Allocation,
			Scheduled:    scheduled,
			Spent:        spent,
			Remaining:    entry.Allocation - spent,
			PaymentCount: len(entry.Snapshots),
		})
	}
	summary.Remaining = b.TotalBudget - summary.TotalSpent
	return summary
}

// Warnings reports soft invariant violations: total allocation above the
// budget and categories scheduled above their allocation.
func (b *WeeklyBudget) Warnings() []Warning {
	var warnings []Warning
	summary := b.Summarize()
	if summary.TotalAllocated > b.TotalBudget {
		warnings = append(warnings, Warning{
			Code: WarningAllocationExceedsBudget,
			Message: fmt.Sprintf("allocated %s exceeds total budget %s",
				summary.TotalAllocated, b.TotalBudget),
		})
	}
	for _, c := range summary.Categories {
		if c.Scheduled > c.Allocation {
			warnings = append(warnings, CategoryOverAllocation(c.CategoryID, c.Scheduled, c.Allocation))
		}
	}
	return warnings
}

// CategoryOverAllocation builds the warning for a category scheduled above its allocation.
func CategoryOverAllocation(categoryID string, scheduled, allocation money.Amount) Warning {
	return Warning{
		Code:       WarningCategoryOverAllocation,
		Message:    fmt.Sprintf("scheduled %s exceeds allocation %s", scheduled, allocation),
		CategoryID: categoryID,
	}
}

package models

import (
	"time"

	"nestegg/internal/money"
)

// BudgetPeriod represents the period type of a main budget
type BudgetPeriod string

const (
	BudgetPeriodMonthly   BudgetPeriod = "monthly"
	BudgetPeriodQuarterly BudgetPeriod = "quarterly"
	BudgetPeriodYearly    BudgetPeriod = "yearly"
	BudgetPeriodCustom    BudgetPeriod = "custom"
)

// MainBudgetStatus is the lifecycle state of a main budget.
type MainBudgetStatus string

const (
	MainBudgetStatusDraft     MainBudgetStatus = "draft"
	MainBudgetStatusActive    MainBudgetStatus = "active"
	MainBudgetStatusCompleted MainBudgetStatus = "completed"
	MainBudgetStatusArchived  MainBudgetStatus = "archived"
)

// WeekSlotStatus is the state of a week inside a main budget.
type WeekSlotStatus string

const (
	WeekSlotStatusPlanned   WeekSlotStatus = "planned"
	WeekSlotStatusActive    WeekSlotStatus = "active"
	WeekSlotStatusCompleted WeekSlotStatus = "completed"
)

// MainBudget is a month, quarter, year or custom period made of week slots.
// Slots are created lazily when a week is first materialized.
type MainBudget struct {
	Base
	UserID      string           `gorm:"type:uuid;not null;index" json:"user_id"`
	HouseholdID *string          `gorm:"type:uuid;index" json:"household_id,omitempty"`
	Name        string           `gorm:"not null" json:"name"`
	PeriodType  BudgetPeriod     `gorm:"not null" json:"period_type"`
	StartDate   time.Time        `gorm:"not null" json:"start_date"`
	EndDate     time.Time        `gorm:"not null" json:"end_date"`
	Year        int              `json:"year"`
	Month       *int             `json:"month,omitempty"`
	Quarter     *int             `json:"quarter,omitempty"`
	TotalBudget money.Amount     `gorm:"type:bigint;not null;default:0" json:"total_budget"`
	Status      MainBudgetStatus `gorm:"not null" json:"status"`

	// Relationships
	Slots []WeekSlot `gorm:"foreignKey:MainBudgetID" json:"weeks"`
}

// WeekSlot references one week of a main budget and, once materialized,
// the WeeklyBudget that realises it.
type WeekSlot struct {
	Base
	MainBudgetID    string         `gorm:"type:uuid;not null;uniqueIndex:idx_slot_week" json:"main_budget_id"`
	WeekNumber      int            `gorm:"not null;uniqueIndex:idx_slot_week" json:"week_number"`
	WeeklyBudgetID  *string        `gorm:"type:uuid" json:"weekly_budget_id,omitempty"`
	StartDate       time.Time      `gorm:"not null" json:"start_date"`
	EndDate         time.Time      `gorm:"not null" json:"end_date"`
	AllocatedAmount money.Amount   `gorm:"type:bigint;not null;default:0" json:"allocated_amount"`
	Status          WeekSlotStatus `gorm:"not null" json:"status"`
}

// Materialized reports whether the slot is backed by a WeeklyBudget.
func (s *WeekSlot) Materialized() bool {
	return s.WeeklyBudgetID != nil && *s.WeeklyBudgetID != ""
}

// PeriodBounds computes the calendar period anchored at anchor. For
// custom periods customEnd is required.
func PeriodBounds(period BudgetPeriod, anchor time.Time, customEnd *time.Time) (start, end time.Time, ok bool) {
	anchor = DateOnly(anchor)
	y, m, _ := anchor.Date()
	switch period {
	case BudgetPeriodMonthly:
		start = time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, -1), true
	case BudgetPeriodQuarterly:
		qm := time.Month((int(m)-1)/3*3 + 1)
		start = time.Date(y, qm, 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 3, -1), true
	case BudgetPeriodYearly:
		start = time.Date(y, 1, 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(1, 0, -1), true
	case BudgetPeriodCustom:
		if customEnd == nil || DateOnly(*customEnd).Before(anchor) {
			return time.Time{}, time.Time{}, false
		}
		return anchor, DateOnly(*customEnd), true
	}
	return time.Time{}, time.Time{}, false
}

// WeekCount returns how many Monday-aligned weeks overlap the period.
func (m *MainBudget) WeekCount() int {
	first := MondayOf(m.StartDate)
	days := int(DateOnly(m.EndDate).Sub(first).Hours()/24) + 1
	if days <= 0 {
		return 0
	}
	return (days + 6) / 7
}

// WeekRange returns the Monday..Sunday window of week n (1-based).
func (m *MainBudget) WeekRange(n int) (start, end time.Time, ok bool) {
	if n < 1 || n > m.WeekCount() {
		return time.Time{}, time.Time{}, false
	}
	start = MondayOf(m.StartDate).AddDate(0, 0, 7*(n-1))
	return start, start.AddDate(0, 0, 6), true
}

// Slot returns the slot for week n if it exists.
func (m *MainBudget) Slot(n int) (*WeekSlot, bool) {
	for i := range m.Slots {
		if m.Slots[i].WeekNumber == n {
			return &m.Slots[i], true
		}
	}
	return nil, false
}

package models

import (
	"time"

	"nestegg/internal/money"
)

// PaymentFrequency is how often a scheduled payment repeats.
type PaymentFrequency string

const (
	FrequencyOnce      PaymentFrequency = "once"
	FrequencyWeekly    PaymentFrequency = "weekly"
	FrequencyBiweekly  PaymentFrequency = "biweekly"
	FrequencyMonthly   PaymentFrequency = "monthly"
	FrequencyQuarterly PaymentFrequency = "quarterly"
	FrequencyYearly    PaymentFrequency = "yearly"
)

// Valid reports whether f is a known frequency.
func (f PaymentFrequency) Valid() bool {
	switch f {
	case FrequencyOnce, FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly, FrequencyQuarterly, FrequencyYearly:
		return true
	}
	return false
}

// Recurring reports whether the frequency produces more than one occurrence.
func (f PaymentFrequency) Recurring() bool {
	return f.Valid() && f != FrequencyOnce
}

// Next returns the due date following d. Month based frequencies clamp to
// the last day of the target month, so Jan 31 monthly becomes Feb 28/29.
func (f PaymentFrequency) Next(d time.Time) (time.Time, bool) {
	switch f {
	case FrequencyWeekly:
		return d.AddDate(0, 0, 7), true
	case FrequencyBiweekly:
		return d.AddDate(0, 0, 14), true
	case FrequencyMonthly:
		return addMonthsClamped(d, 1), true
	case FrequencyQuarterly:
		return addMonthsClamped(d, 3), true
	case FrequencyYearly:
		return addMonthsClamped(d, 12), true
	}
	return time.Time{}, false
}

func addMonthsClamped(d time.Time, months int) time.Time {
	y, m, day := d.Date()
	first := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, d.Location())
	last := first.AddDate(0, 1, -1).Day()
	if day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, d.Hour(), d.Minute(), d.Second(), d.Nanosecond(), d.Location())
}

// PaymentStatus is the lifecycle state of a payment.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaying    PaymentStatus = "paying"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusOverdue   PaymentStatus = "overdue"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// paymentTransitions lists the allowed status changes. cancelled is terminal.
var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentStatusPending: {PaymentStatusPaying, PaymentStatusPaid, PaymentStatusOverdue, PaymentStatusCancelled},
	PaymentStatusPaying:  {PaymentStatusPaid, PaymentStatusCancelled},
	PaymentStatusOverdue: {PaymentStatusPaid, PaymentStatusCancelled},
	PaymentStatusPaid:    {PaymentStatusPending, PaymentStatusCancelled},
}

// Valid reports whether s is a known status.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaying, PaymentStatusPaid, PaymentStatusOverdue, PaymentStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether a payment in status s may move to next.
// Staying in the same status is always allowed.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	if s == next {
		return next.Valid()
	}
	for _, allowed := range paymentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Counted reports whether payments in this status contribute to budget sums.
func (s PaymentStatus) Counted() bool {
	return s != PaymentStatusCancelled
}

// PaymentRecord is the canonical scheduled or recurring payment.
type PaymentRecord struct {
	Base
	UserID        string           `gorm:"type:uuid;not null;index" json:"user_id"`
	Name          string           `gorm:"not null" json:"name"`
	Amount        money.Amount     `gorm:"type:bigint;not null" json:"amount"`
	CategoryID    string           `gorm:"type:uuid;not null;index" json:"category_id"`
	DueDate       time.Time        `gorm:"not null;index" json:"due_date"`
	Frequency     PaymentFrequency `gorm:"not null" json:"frequency"`
	Status        PaymentStatus    `gorm:"not null;index" json:"status"`
	PaidDate      *time.Time       `json:"paid_date,omitempty"`
	PaidByID      *string          `gorm:"size:64" json:"paid_by_id,omitempty"`
	SeriesID      *string          `gorm:"type:uuid;index" json:"series_id,omitempty"`
	RecurrenceEnd *time.Time       `json:"recurrence_end,omitempty"`
	Notes         string           `json:"notes,omitempty"`

	// Set only when the payment was created through a weekly budget.
	WeeklyBudgetID   *string `gorm:"type:uuid;index" json:"weekly_budget_id,omitempty"`
	LedgerCategoryID *string `gorm:"type:uuid" json:"ledger_category_id,omitempty"`
}

// CreatedThrough reports whether the payment carries a back-reference to budgetID.
func (p *PaymentRecord) CreatedThrough(budgetID string) bool {
	return p.WeeklyBudgetID != nil && *p.WeeklyBudgetID == budgetID
}

// PayerRef returns the record's paid-by reference as an unresolved ref.
func (p *PaymentRecord) PayerRef() PayerRef {
	if p.PaidByID == nil || *p.PaidByID == "" {
		return PayerRef{}
	}
	return UnresolvedPayer(*p.PaidByID)
}

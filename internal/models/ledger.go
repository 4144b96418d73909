package models

import (
	"time"

	"nestegg/internal/money"
)

// CategoryLedgerEntry binds a category to an allocation inside one weekly
// budget and holds the denormalised payment snapshots for that category.
type CategoryLedgerEntry struct {
	Base
	WeeklyBudgetID string       `gorm:"type:uuid;not null;uniqueIndex:idx_ledger_budget_category" json:"weekly_budget_id"`
	CategoryID     string       `gorm:"type:uuid;not null;uniqueIndex:idx_ledger_budget_category" json:"category_id"`
	Allocation     money.Amount `gorm:"type:bigint;not null;default:0" json:"allocation"`
	Position       int          `gorm:"not null;default:0" json:"position"`

	// Relationships
	Category  *Category         `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Snapshots []PaymentSnapshot `gorm:"foreignKey:LedgerEntryID" json:"payments"`
}

// Scheduled sums every counted snapshot.
func (e *CategoryLedgerEntry) Scheduled() money.Amount {
	var total money.Amount
	for i := range e.Snapshots {
		if e.Snapshots[i].Status.Counted() {
			total += e.Snapshots[i].Amount
		}
	}
	return total
}

// Spent sums paid snapshots.
func (e *CategoryLedgerEntry) Spent() money.Amount {
	var total money.Amount
	for i := range e.Snapshots {
		if e.Snapshots[i].Status == PaymentStatusPaid {
			total += e.Snapshots[i].Amount
		}
	}
	return total
}

// PaymentSnapshot is a point-in-time copy of a PaymentRecord embedded in a
// ledger entry. It may go stale; the reconciliation pipeline refreshes it.
// Snapshots are a cache and are always hard-deleted.
type PaymentSnapshot struct {
	Base
	LedgerEntryID   string        `gorm:"type:uuid;not null;index" json:"ledger_entry_id"`
	WeeklyBudgetID  string        `gorm:"type:uuid;not null;uniqueIndex:idx_snapshot_match" json:"weekly_budget_id"`
	CategoryID      string        `gorm:"type:uuid;not null;uniqueIndex:idx_snapshot_match" json:"category_id"`
	PaymentRecordID *string       `gorm:"type:uuid;uniqueIndex:idx_snapshot_match" json:"payment_record_id"`
	Name            string        `gorm:"not null" json:"name"`
	Amount          money.Amount  `gorm:"type:bigint;not null" json:"amount"`
	ScheduledDate   time.Time     `gorm:"not null" json:"scheduled_date"`
	Status          PaymentStatus `gorm:"not null" json:"status"`
	PaidBy          PayerRef      `gorm:"embedded;embeddedPrefix:paid_by_" json:"paid_by"`
	Orphaned        bool          `gorm:"not null;default:false" json:"orphaned"`
	Position        int           `gorm:"not null;default:0" json:"position"`
}

// RecordID returns the back-referenced record id or "".
func (s *PaymentSnapshot) RecordID() string {
	if s.PaymentRecordID == nil {
		return ""
	}
	return *s.PaymentRecordID
}

// SnapshotOf builds a snapshot of record for a ledger entry.
func SnapshotOf(record *PaymentRecord, entry *CategoryLedgerEntry) PaymentSnapshot {
	id := record.ID
	return PaymentSnapshot{
		LedgerEntryID:   entry.ID,
		WeeklyBudgetID:  entry.WeeklyBudgetID,
		CategoryID:      entry.CategoryID,
		PaymentRecordID: &id,
		Name:            record.Name,
		Amount:          record.Amount,
		ScheduledDate:   DateOnly(record.DueDate),
		Status:          record.Status,
		PaidBy:          record.PayerRef(),
	}
}

// Stale reports whether the snapshot differs from its record in any cached
// field. A resolved payer name is not considered drift.
func (s *PaymentSnapshot) Stale(record *PaymentRecord) bool {
	return s.Name != record.Name ||
		s.Amount != record.Amount ||
		!SameDay(s.ScheduledDate, record.DueDate) ||
		s.Status != record.Status ||
		s.CategoryID != record.CategoryID ||
		s.PaidBy.RawID() != record.PayerRef().RawID()
}

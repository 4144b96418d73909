package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "nestegg/internal/errors"
	"nestegg/internal/models"
	"nestegg/internal/money"
	"nestegg/internal/pagination"
)

// weeklyBudgetService handles the weekly budget aggregate and its ledger.
type weeklyBudgetService struct {
	db       *gorm.DB
	resolver HouseholdResolver
	now      func() time.Time
}

// NewWeeklyBudgetService creates a new WeeklyBudgetServicer.
func NewWeeklyBudgetService(db *gorm.DB, resolver HouseholdResolver) WeeklyBudgetServicer {
	return &weeklyBudgetService{db: db, resolver: resolver, now: time.Now}
}

func budgetResult(budget *models.WeeklyBudget) *BudgetResult {
	return &BudgetResult{
		WeeklyBudget: budget,
		Summary:      budget.Summarize(),
		Warnings:     nonNilWarnings(budget.Warnings()),
	}
}

func nonNilWarnings(w []models.Warning) []models.Warning {
	if w == nil {
		return []models.Warning{}
	}
	return w
}

// requireCategories checks that every category exists and belongs to one of
// the owners.
func requireCategories(db *gorm.DB, categoryIDs, owners []string) error {
	if len(categoryIDs) == 0 {
		return nil
	}
	var count int64
	if err := db.Model(&models.Category{}).
		Where("id IN ? AND user_id IN ?", categoryIDs, owners).
		Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if int(count) != len(categoryIDs) {
		return apperrors.ErrCategoryNotFound
	}
	return nil
}

// CreateWeeklyBudget creates a standalone weekly budget for the ISO week
// containing input.WeekStart.
func (s *weeklyBudgetService) CreateWeeklyBudget(ctx context.Context, userID string, input CreateWeeklyBudgetInput) (*BudgetResult, error) {
	if input.WeekStart.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "week start is required")
	}
	if input.TotalBudget < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidAmount, "total budget cannot be negative")
	}

	seen := make(map[string]bool, len(input.Categories))
	categoryIDs := make([]string, 0, len(input.Categories))
	for _, c := range input.Categories {
		if c.CategoryID == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
		}
		if seen[c.CategoryID] {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "duplicate category "+c.CategoryID)
		}
		if c.Allocation < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidAmount, "allocation cannot be negative")
		}
		seen[c.CategoryID] = true
		categoryIDs = append(categoryIDs, c.CategoryID)
	}

	db := s.db.WithContext(ctx)
	if err := checkHousehold(db, input.HouseholdID, userID); err != nil {
		return nil, err
	}
	owners := []string{userID}
	if input.HouseholdID != nil && *input.HouseholdID != "" {
		ids, err := householdUserIDs(db, *input.HouseholdID)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		owners = appendUnique(owners, ids...)
	} else {
		input.HouseholdID = nil
	}
	if err := requireCategories(db, categoryIDs, owners); err != nil {
		return nil, err
	}

	weekStart, weekEnd := models.WeekWindow(input.WeekStart)
	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = "Week of " + weekStart.Format(time.DateOnly)
	}

	budget := &models.WeeklyBudget{
		UserID:      userID,
		HouseholdID: input.HouseholdID,
		Name:        name,
		WeekStart:   weekStart,
		WeekEnd:     weekEnd,
		TotalBudget: input.TotalBudget,
		DedupKey:    models.StandaloneDedupKey(userID, weekStart),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.WeeklyBudget{}).
			Where("user_id = ? AND week_start >= ? AND week_start < ?", userID, weekStart, weekStart.AddDate(0, 0, 1)).
			Count(&existing).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if existing > 0 {
			return apperrors.ErrDuplicateWeeklyBudget
		}

		// The dedup key makes concurrent creates for the same week collapse
		// into one row.
		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "dedup_key"}},
			DoNothing: true,
		}).Create(budget)
		if result.Error != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrDuplicateWeeklyBudget
		}

		if len(input.Categories) == 0 {
			return nil
		}
		entries := make([]models.CategoryLedgerEntry, 0, len(input.Categories))
		for i, c := range input.Categories {
			entries = append(entries, models.CategoryLedgerEntry{
				WeeklyBudgetID: budget.ID,
				CategoryID:     c.CategoryID,
				Allocation:     c.Allocation,
				Position:       i,
			})
		}
		if err := tx.Create(&entries).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	created, err := loadWeeklyBudget(db, budget.ID)
	if err != nil {
		return nil, err
	}
	return budgetResult(created), nil
}

// GetWeeklyBudget retrieves a weekly budget with its summary and warnings.
func (s *weeklyBudgetService) GetWeeklyBudget(ctx context.Context, userID, budgetID string) (*BudgetResult, error) {
	budget, err := loadAccessibleBudget(s.db.WithContext(ctx), userID, budgetID)
	if err != nil {
		return nil, err
	}
	return budgetResult(budget), nil
}

// ListWeeklyBudgets retrieves the weekly budgets visible to the user, most
// recent week first.
func (s *weeklyBudgetService) ListWeeklyBudgets(ctx context.Context, userID string, from, to *time.Time, page pagination.PageRequest) (*pagination.PageResponse[models.WeeklyBudget], error) {
	db := s.db.WithContext(ctx)

	scope, err := visibleScope(db, userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	base := db.Model(&models.WeeklyBudget{}).Scopes(scope)
	if from != nil {
		base = base.Where("week_end >= ?", models.DateOnly(*from))
	}
	if to != nil {
		base = base.Where("week_start <= ?", models.DateOnly(*to))
	}

	result, err := pagination.Find[models.WeeklyBudget](base, page, "week_start DESC")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}

// UpdateWeeklyBudget updates the name, total, or household of a budget. A
// new total on a materialized week is copied to its week slot.
func (s *weeklyBudgetService) UpdateWeeklyBudget(ctx context.Context, userID, budgetID string, patch WeeklyBudgetPatch) (*BudgetResult, error) {
	db := s.db.WithContext(ctx)
	budget, err := loadAccessibleBudget(db, userID, budgetID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name cannot be empty")
		}
		updates["name"] = name
	}
	if patch.TotalBudget != nil {
		if *patch.TotalBudget < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidAmount, "total budget cannot be negative")
		}
		updates["total_budget"] = *patch.TotalBudget
	}
	if patch.HouseholdID != nil {
		if *patch.HouseholdID == "" {
			updates["household_id"] = nil
		} else {
			if err := checkHousehold(db, patch.HouseholdID, userID); err != nil {
				return nil, err
			}
			updates["household_id"] = *patch.HouseholdID
		}
	}

	if len(updates) > 0 {
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(budget).Updates(updates).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			// A materialized week's slot follows its weekly budget total.
			if patch.TotalBudget != nil && budget.MainBudgetID != nil {
				if err := tx.Model(&models.WeekSlot{}).
					Where("weekly_budget_id = ?", budget.ID).
					Update("allocated_amount", *patch.TotalBudget).Error; err != nil {
					return apperrors.Wrap(apperrors.ErrInternalServer, err)
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	updated, err := loadWeeklyBudget(db, budget.ID)
	if err != nil {
		return nil, err
	}
	return budgetResult(updated), nil
}

// DeleteWeeklyBudget deletes a budget with its ledger and budget-created
// payments, and unlinks it from its week slot.
func (s *weeklyBudgetService) DeleteWeeklyBudget(ctx context.Context, userID, budgetID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		budget, err := loadAccessibleBudget(tx, userID, budgetID)
		if err != nil {
			return err
		}
		return deleteWeeklyBudgetTx(tx, budget.ID)
	})
}

// deleteWeeklyBudgetTx removes a weekly budget and everything it owns.
// Ledger rows are hard-deleted because their unique keys must be reusable.
func deleteWeeklyBudgetTx(tx *gorm.DB, budgetID string) error {
	var createdIDs []string
	if err := tx.Model(&models.PaymentRecord{}).
		Where("weekly_budget_id = ?", budgetID).
		Pluck("id", &createdIDs).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := deletePaymentsWithSnapshots(tx, createdIDs); err != nil {
		return err
	}

	steps := []struct {
		model interface{}
		where string
	}{
		{&models.PaymentSnapshot{}, "weekly_budget_id = ?"},
		{&models.CategoryLedgerEntry{}, "weekly_budget_id = ?"},
		{&models.WeeklyBudget{}, "id = ?"},
	}
	if err := tx.Model(&models.WeekSlot{}).
		Where("weekly_budget_id = ?", budgetID).
		Updates(map[string]interface{}{"weekly_budget_id": nil, "status": models.WeekSlotStatusPlanned}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for _, step := range steps {
		if err := tx.Unscoped().Where(step.where, budgetID).Delete(step.model).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return nil
}

// deletePaymentsWithSnapshots deletes payment records and every snapshot,
// in any budget, that references them.
func deletePaymentsWithSnapshots(tx *gorm.DB, recordIDs []string) error {
	if len(recordIDs) == 0 {
		return nil
	}
	if err := tx.Unscoped().Where("payment_record_id IN ?", recordIDs).Delete(&models.PaymentSnapshot{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := tx.Where("id IN ?", recordIDs).Delete(&models.PaymentRecord{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// AddCategory adds a ledger entry for a category.
func (s *weeklyBudgetService) AddCategory(ctx context.Context, userID, budgetID, categoryID string, allocation money.Amount) (*BudgetResult, error) {
	if allocation < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidAmount, "allocation cannot be negative")
	}
	db := s.db.WithContext(ctx)
	budget, err := loadAccessibleBudget(db, userID, budgetID)
	if err != nil {
		return nil, err
	}
	if _, ok := budget.Entry(categoryID); ok {
		return nil, apperrors.ErrDuplicateLedgerEntry
	}
	owners, err := budgetOwners(db, budget)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := requireCategories(db, []string{categoryID}, owners); err != nil {
		return nil, err
	}

	entry := &models.CategoryLedgerEntry{
		WeeklyBudgetID: budget.ID,
		CategoryID:     categoryID,
		Allocation:     allocation,
		Position:       nextEntryPosition(budget),
	}
	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "weekly_budget_id"}, {Name: "category_id"}},
		DoNothing: true,
	}).Create(entry)
	if result.Error != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.ErrDuplicateLedgerEntry
	}

	updated, err := loadWeeklyBudget(db, budget.ID)
	if err != nil {
		return nil, err
	}
	return budgetResult(updated), nil
}

func nextEntryPosition(budget *models.WeeklyBudget) int {
	next := 0
	for i := range budget.Entries {
		if budget.Entries[i].Position >= next {
			next = budget.Entries[i].Position + 1
		}
	}
	return next
}

func nextSnapshotPosition(entry *models.CategoryLedgerEntry) int {
	next := 0
	for i := range entry.Snapshots {
		if entry.Snapshots[i].Position >= next {
			next = entry.Snapshots[i].Position + 1
		}
	}
	return next
}

// UpdateAllocation changes the allocation of a category.
func (s *weeklyBudgetService) UpdateAllocation(ctx context.Context, userID, budgetID, categoryID string, allocation money.Amount) (*BudgetResult, error) {
	if allocation < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidAmount, "allocation cannot be negative")
	}
	db := s.db.WithContext(ctx)
	budget, err := loadAccessibleBudget(db, userID, budgetID)
	if err != nil {
		return nil, err
	}
	entry, ok := budget.Entry(categoryID)
	if !ok {
		return nil, apperrors.ErrLedgerEntryNotFound
	}
	if err := db.Model(&models.CategoryLedgerEntry{}).
		Where("id = ?", entry.ID).
		Update("allocation", allocation).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	entry.Allocation = allocation
	return budgetResult(budget), nil
}

// RemoveCategory removes a ledger entry with its snapshots. Payments created
// through this budget whose snapshot lives in the entry and that still belong
// to its category are deleted; every other payment is kept.
func (s *weeklyBudgetService) RemoveCategory(ctx context.Context, userID, budgetID, categoryID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		budget, err := loadAccessibleBudget(tx, userID, budgetID)
		if err != nil {
			return err
		}
		entry, ok := budget.Entry(categoryID)
		if !ok {
			return apperrors.ErrLedgerEntryNotFound
		}

		var entryRecordIDs []string
		for i := range entry.Snapshots {
			if id := entry.Snapshots[i].RecordID(); id != "" {
				entryRecordIDs = append(entryRecordIDs, id)
			}
		}
		if len(entryRecordIDs) > 0 {
			var createdIDs []string
			if err := tx.Model(&models.PaymentRecord{}).
				Where("id IN ? AND weekly_budget_id = ? AND category_id = ?", entryRecordIDs, budget.ID, categoryID).
				Pluck("id", &createdIDs).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			if err := deletePaymentsWithSnapshots(tx, createdIDs); err != nil {
				return err
			}
		}
		if err := tx.Unscoped().Where("ledger_entry_id = ?", entry.ID).Delete(&models.PaymentSnapshot{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Unscoped().Delete(&models.CategoryLedgerEntry{}, "id = ?", entry.ID).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// AddPaymentToCategory creates a payment record tagged with this budget and
// category, and appends its snapshot to the ledger entry in the same
// transaction.
func (s *weeklyBudgetService) AddPaymentToCategory(ctx context.Context, userID, budgetID, categoryID string, input PaymentInput) (*PaymentResult, error) {
	input.CategoryID = categoryID
	if err := validatePaymentInput(&input); err != nil {
		return nil, err
	}

	result := &PaymentResult{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		budget, err := loadAccessibleBudget(tx, userID, budgetID)
		if err != nil {
			return err
		}
		entry, ok := budget.Entry(categoryID)
		if !ok {
			return apperrors.ErrLedgerEntryNotFound
		}

		record := newPaymentRecord(userID, input, s.now())
		record.WeeklyBudgetID = &budget.ID
		record.LedgerCategoryID = &categoryID
		if err := tx.Create(record).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		snapshot := models.SnapshotOf(record, entry)
		snapshot.Position = nextSnapshotPosition(entry)
		if err := tx.Create(&snapshot).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		entry.Snapshots = append(entry.Snapshots, snapshot)

		result.Payment = record
		result.Snapshot = &snapshot
		result.Warnings = paymentWarnings(budget, entry, record)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// paymentWarnings reports an entry scheduled above its allocation and a
// payment due outside the budget's week.
func paymentWarnings(budget *models.WeeklyBudget, entry *models.CategoryLedgerEntry, record *models.PaymentRecord) []models.Warning {
	warnings := []models.Warning{}
	if scheduled := entry.Scheduled(); scheduled > entry.Allocation {
		w := models.CategoryOverAllocation(entry.CategoryID, scheduled, entry.Allocation)
		w.PaymentID = record.ID
		warnings = append(warnings, w)
	}
	if !budget.Contains(record.DueDate) {
		warnings = append(warnings, models.Warning{
			Code:       models.WarningPaymentOutsideWeek,
			Message:    fmt.Sprintf("due date %s is outside the week %s to %s", record.DueDate.Format(time.DateOnly), budget.WeekStart.Format(time.DateOnly), budget.WeekEnd.Format(time.DateOnly)),
			CategoryID: entry.CategoryID,
			PaymentID:  record.ID,
		})
	}
	return warnings
}

// findSnapshot locates a snapshot in an entry by snapshot id or record id.
func findSnapshot(entry *models.CategoryLedgerEntry, paymentID string) (*models.PaymentSnapshot, bool) {
	for i := range entry.Snapshots {
		if entry.Snapshots[i].ID == paymentID || entry.Snapshots[i].RecordID() == paymentID {
			return &entry.Snapshots[i], true
		}
	}
	return nil, false
}

// refreshSnapshot copies the record's cached fields into the snapshot. A
// resolved payer name survives when the payer did not change.
func refreshSnapshot(snapshot *models.PaymentSnapshot, record *models.PaymentRecord) {
	snapshot.Name = record.Name
	snapshot.Amount = record.Amount
	snapshot.ScheduledDate = models.DateOnly(record.DueDate)
	snapshot.Status = record.Status
	if snapshot.PaidBy.RawID() != record.PayerRef().RawID() {
		snapshot.PaidBy = record.PayerRef()
	}
	snapshot.Orphaned = false
}

// UpdatePaymentInCategory edits a payment through its budget. The record is
// patched and its snapshot in this budget refreshed; moving it to another
// category moves the snapshot to that category's entry.
func (s *weeklyBudgetService) UpdatePaymentInCategory(ctx context.Context, userID, budgetID, categoryID, paymentID string, patch PaymentPatch) (*PaymentResult, error) {
	result := &PaymentResult{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		budget, err := loadAccessibleBudget(tx, userID, budgetID)
		if err != nil {
			return err
		}
		entry, ok := budget.Entry(categoryID)
		if !ok {
			return apperrors.ErrLedgerEntryNotFound
		}
		snapshot, ok := findSnapshot(entry, paymentID)
		if !ok {
			return apperrors.ErrPaymentSnapshotNotFound
		}
		if snapshot.RecordID() == "" {
			return apperrors.ErrPaymentNotFound
		}

		var record models.PaymentRecord
		if err := tx.Where("id = ?", snapshot.RecordID()).First(&record).Error; err != nil {
			if isNotFound(err) {
				return apperrors.ErrPaymentNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		target := entry
		if patch.CategoryID != nil && *patch.CategoryID != categoryID {
			moved, ok := budget.Entry(*patch.CategoryID)
			if !ok {
				return apperrors.ErrLedgerEntryNotFound
			}
			target = moved
		}
		if err := applyPaymentPatch(tx, &record, patch); err != nil {
			return err
		}
		if record.CreatedThrough(budget.ID) {
			record.LedgerCategoryID = &target.CategoryID
		}
		if err := tx.Save(&record).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		refreshSnapshot(snapshot, &record)
		if target != entry {
			if err := tx.Unscoped().Delete(&models.PaymentSnapshot{}, "id = ?", snapshot.ID).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			moved := models.SnapshotOf(&record, target)
			moved.PaidBy = snapshot.PaidBy
			moved.Position = nextSnapshotPosition(target)
			if err := upsertSnapshot(tx, &moved); err != nil {
				return err
			}
			target.Snapshots = append(target.Snapshots, moved)
			snapshot = &moved
		} else if err := tx.Save(snapshot).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		result.Payment = &record
		result.Snapshot = snapshot
		result.Warnings = paymentWarnings(budget, target, &record)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// upsertSnapshot inserts a snapshot or refreshes the one already stored
// under the same (budget, category, record) key.
func upsertSnapshot(tx *gorm.DB, snapshot *models.PaymentSnapshot) error {
	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "weekly_budget_id"}, {Name: "category_id"}, {Name: "payment_record_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"ledger_entry_id", "name", "amount", "scheduled_date", "status",
			"paid_by_id", "paid_by_name", "orphaned", "updated_at",
		}),
	}).Create(snapshot).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// RemovePayment removes a snapshot from a ledger entry. When the underlying
// record was created through this budget it is deleted too, along with every
// snapshot that still references it.
func (s *weeklyBudgetService) RemovePayment(ctx context.Context, userID, budgetID, categoryID, paymentID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		budget, err := loadAccessibleBudget(tx, userID, budgetID)
		if err != nil {
			return err
		}
		entry, ok := budget.Entry(categoryID)
		if !ok {
			return apperrors.ErrLedgerEntryNotFound
		}
		snapshot, ok := findSnapshot(entry, paymentID)
		if !ok {
			return apperrors.ErrPaymentSnapshotNotFound
		}

		if err := tx.Unscoped().Delete(&models.PaymentSnapshot{}, "id = ?", snapshot.ID).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if snapshot.RecordID() == "" {
			return nil
		}

		var record models.PaymentRecord
		if err := tx.Where("id = ?", snapshot.RecordID()).First(&record).Error; err != nil {
			if isNotFound(err) {
				return nil
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if !record.CreatedThrough(budget.ID) {
			return nil
		}
		return deletePaymentsWithSnapshots(tx, []string{record.ID})
	})
}

// GetPayers returns the paid totals per resolved payer.
func (s *weeklyBudgetService) GetPayers(ctx context.Context, userID, budgetID string) ([]PayerTotal, error) {
	budget, err := loadAccessibleBudget(s.db.WithContext(ctx), userID, budgetID)
	if err != nil {
		return nil, err
	}
	return s.resolver.SumByPayer(ctx, budget)
}

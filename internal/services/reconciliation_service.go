package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "nestegg/internal/errors"
	"nestegg/internal/events"
	"nestegg/internal/logger"
	"nestegg/internal/metrics"
	"nestegg/internal/models"
	"nestegg/internal/money"
)

// reconciliationService detects and repairs drift between payment records
// and the snapshots cached in weekly budget ledgers.
type reconciliationService struct {
	db                *gorm.DB
	resolver          HouseholdResolver
	publisher         events.Publisher
	defaultAllocation money.Amount
}

// NewReconciliationService creates a new ReconciliationServicer. Ledger
// entries created by a sync start with defaultAllocation.
func NewReconciliationService(db *gorm.DB, resolver HouseholdResolver, publisher events.Publisher, defaultAllocation money.Amount) ReconciliationServicer {
	return &reconciliationService{
		db:                db,
		resolver:          resolver,
		publisher:         publisher,
		defaultAllocation: defaultAllocation,
	}
}

// windowRecords returns the payment records of owners due inside the week.
func windowRecords(db *gorm.DB, owners []string, budget *models.WeeklyBudget) ([]models.PaymentRecord, error) {
	var records []models.PaymentRecord
	err := db.
		Where("user_id IN ?", owners).
		Where("due_date >= ? AND due_date < ?", models.DateOnly(budget.WeekStart), models.DateOnly(budget.WeekEnd).AddDate(0, 0, 1)).
		Order("due_date ASC, created_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return records, nil
}

// liveRecords loads the non-deleted records among ids, keyed by id.
func liveRecords(db *gorm.DB, ids []string) (map[string]*models.PaymentRecord, error) {
	live := make(map[string]*models.PaymentRecord, len(ids))
	if len(ids) == 0 {
		return live, nil
	}
	var records []models.PaymentRecord
	if err := db.Where("id IN ?", ids).Find(&records).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for i := range records {
		live[records[i].ID] = &records[i]
	}
	return live, nil
}

// snapshotIndex groups a budget's snapshots by the record they reference.
func snapshotIndex(budget *models.WeeklyBudget) (map[string][]*models.PaymentSnapshot, []string) {
	index := make(map[string][]*models.PaymentSnapshot)
	var ids []string
	for i := range budget.Entries {
		for j := range budget.Entries[i].Snapshots {
			snap := &budget.Entries[i].Snapshots[j]
			id := snap.RecordID()
			if id == "" {
				continue
			}
			if _, ok := index[id]; !ok {
				ids = append(ids, id)
			}
			index[id] = append(index[id], snap)
		}
	}
	return index, ids
}

func outsideWeekWarning(budget *models.WeeklyBudget, record *models.PaymentRecord) models.Warning {
	return models.Warning{
		Code: models.WarningPaymentOutsideWeek,
		Message: fmt.Sprintf("payment %q is due %s, outside the week %s to %s",
			record.Name, record.DueDate.Format(time.DateOnly),
			budget.WeekStart.Format(time.DateOnly), budget.WeekEnd.Format(time.DateOnly)),
		CategoryID: record.CategoryID,
		PaymentID:  record.ID,
	}
}

// SyncCategories makes the ledger reflect every payment record due in the
// budget's week. Missing entries and snapshots are created, stale snapshots
// are refreshed, and snapshots left under a record's old category are
// removed. A record missing from its entry first adopts an unlinked snapshot
// there with the same name, amount, and day; other snapshots without a live
// record are never touched. Cancelled records never gain a snapshot. Running
// it twice changes nothing the second time.
func (s *reconciliationService) SyncCategories(ctx context.Context, userID, budgetID string) (*SyncResult, error) {
	result := &SyncResult{BudgetID: budgetID, Warnings: []models.Warning{}}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		budget, err := loadAccessibleBudget(tx, userID, budgetID)
		if err != nil {
			return err
		}
		owners, err := budgetOwners(tx, budget)
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		inWindow, err := windowRecords(tx, owners, budget)
		if err != nil {
			return err
		}
		index, referenced := snapshotIndex(budget)
		live, err := liveRecords(tx, referenced)
		if err != nil {
			return err
		}

		// In-window records first, then live records referenced from outside
		// the window.
		records := make([]*models.PaymentRecord, 0, len(inWindow)+len(live))
		seen := make(map[string]bool, len(inWindow))
		for i := range inWindow {
			records = append(records, &inWindow[i])
			seen[inWindow[i].ID] = true
		}
		for _, id := range referenced {
			if r, ok := live[id]; ok && !seen[id] {
				records = append(records, r)
				seen[id] = true
			}
		}

		entries := make(map[string]*models.CategoryLedgerEntry, len(budget.Entries))
		nextPos := make(map[string]int, len(budget.Entries))
		unlinked := make(map[string][]*models.PaymentSnapshot)
		for i := range budget.Entries {
			e := &budget.Entries[i]
			entries[e.CategoryID] = e
			nextPos[e.ID] = nextSnapshotPosition(e)
			for j := range e.Snapshots {
				if _, ok := live[e.Snapshots[j].RecordID()]; !ok {
					unlinked[e.ID] = append(unlinked[e.ID], &e.Snapshots[j])
				}
			}
		}

		// adopt re-links the first unlinked snapshot in entry that matches
		// record, so a re-created payment is not counted twice.
		adopt := func(entry *models.CategoryLedgerEntry, record *models.PaymentRecord) (bool, error) {
			candidates := unlinked[entry.ID]
			for i, snap := range candidates {
				if !sameName(snap.Name, record.Name) || snap.Amount != record.Amount || !models.SameDay(snap.ScheduledDate, record.DueDate) {
					continue
				}
				id := record.ID
				snap.PaymentRecordID = &id
				refreshSnapshot(snap, record)
				if err := tx.Save(snap).Error; err != nil {
					return false, apperrors.Wrap(apperrors.ErrInternalServer, err)
				}
				unlinked[entry.ID] = append(candidates[:i:i], candidates[i+1:]...)
				return true, nil
			}
			return false, nil
		}
		entryPos := nextEntryPosition(budget)

		ensureEntry := func(categoryID string) (*models.CategoryLedgerEntry, error) {
			if e, ok := entries[categoryID]; ok {
				return e, nil
			}
			e := &models.CategoryLedgerEntry{
				WeeklyBudgetID: budget.ID,
				CategoryID:     categoryID,
				Allocation:     s.defaultAllocation,
				Position:       entryPos,
			}
			res := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "weekly_budget_id"}, {Name: "category_id"}},
				DoNothing: true,
			}).Create(e)
			if res.Error != nil {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
			}
			if res.RowsAffected == 0 {
				if err := tx.Where("weekly_budget_id = ? AND category_id = ?", budget.ID, categoryID).First(e).Error; err != nil {
					return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
				}
			} else {
				result.CategoriesAdded++
				entryPos++
			}
			entries[categoryID] = e
			return e, nil
		}

		for _, record := range records {
			inside := budget.Contains(record.DueDate)
			snaps := index[record.ID]
			home := false
			for _, snap := range snaps {
				if snap.CategoryID != record.CategoryID {
					if err := tx.Unscoped().Delete(&models.PaymentSnapshot{}, "id = ?", snap.ID).Error; err != nil {
						return apperrors.Wrap(apperrors.ErrInternalServer, err)
					}
					result.Removed++
					continue
				}
				home = true
				if snap.Stale(record) || snap.Orphaned {
					refreshSnapshot(snap, record)
					if err := tx.Save(snap).Error; err != nil {
						return apperrors.Wrap(apperrors.ErrInternalServer, err)
					}
					result.Updated++
				}
			}

			if !home && record.Status != models.PaymentStatusCancelled && (inside || len(snaps) > 0) {
				entry, err := ensureEntry(record.CategoryID)
				if err != nil {
					return err
				}
				adopted, err := adopt(entry, record)
				if err != nil {
					return err
				}
				if adopted {
					result.Updated++
				} else {
					snap := models.SnapshotOf(record, entry)
					snap.Position = nextPos[entry.ID]
					nextPos[entry.ID]++
					if err := upsertSnapshot(tx, &snap); err != nil {
						return err
					}
					result.Created++
				}
				home = true
			}

			if home && record.CreatedThrough(budget.ID) &&
				(record.LedgerCategoryID == nil || *record.LedgerCategoryID != record.CategoryID) {
				if err := tx.Model(&models.PaymentRecord{}).Where("id = ?", record.ID).
					Update("ledger_category_id", record.CategoryID).Error; err != nil {
					return apperrors.Wrap(apperrors.ErrInternalServer, err)
				}
			}

			if home && !inside {
				result.Warnings = append(result.Warnings, outsideWeekWarning(budget, record))
			}
		}

		synced, err := loadWeeklyBudget(tx, budget.ID)
		if err != nil {
			return err
		}
		result.Warnings = append(result.Warnings, synced.Warnings()...)
		return nil
	})

	changes := result.CategoriesAdded + result.Created + result.Updated + result.Removed
	metrics.ObserveReconciliation("sync", changes, err)
	if err != nil {
		return nil, err
	}
	logger.Get().Infow("Synced weekly budget ledger",
		"budget_id", budgetID,
		"categories_added", result.CategoriesAdded,
		"created", result.Created,
		"updated", result.Updated,
		"removed", result.Removed,
	)
	return result, nil
}

func sameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// FixPaymentLinks re-attaches snapshots whose record reference is missing or
// dead. A snapshot is linked only when exactly one unlinked candidate record
// of the same category matches its name, amount, and day. When the only
// match already has a snapshot in that category the dead one is a duplicate
// and is deleted. Anything else is flagged orphaned and reported.
func (s *reconciliationService) FixPaymentLinks(ctx context.Context, userID, budgetID string) (*LinkResult, error) {
	result := &LinkResult{BudgetID: budgetID, Warnings: []models.Warning{}}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		budget, err := loadAccessibleBudget(tx, userID, budgetID)
		if err != nil {
			return err
		}
		_, referenced := snapshotIndex(budget)
		live, err := liveRecords(tx, referenced)
		if err != nil {
			return err
		}

		var targets []*models.PaymentSnapshot
		linked := make(map[string]bool) // categoryID:recordID
		var minDay, maxDay time.Time
		for i := range budget.Entries {
			for j := range budget.Entries[i].Snapshots {
				snap := &budget.Entries[i].Snapshots[j]
				if _, ok := live[snap.RecordID()]; ok {
					linked[snap.CategoryID+":"+snap.RecordID()] = true
					continue
				}
				targets = append(targets, snap)
				day := models.DateOnly(snap.ScheduledDate)
				if minDay.IsZero() || day.Before(minDay) {
					minDay = day
				}
				if day.After(maxDay) {
					maxDay = day
				}
			}
		}
		if len(targets) == 0 {
			return nil
		}

		owners, err := budgetOwners(tx, budget)
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		var candidates []models.PaymentRecord
		if err := tx.
			Where("user_id IN ?", owners).
			Where("due_date >= ? AND due_date < ?", minDay, maxDay.AddDate(0, 0, 1)).
			Find(&candidates).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		for _, snap := range targets {
			var matches []*models.PaymentRecord
			taken := 0
			for i := range candidates {
				c := &candidates[i]
				if c.CategoryID != snap.CategoryID {
					continue
				}
				if !sameName(c.Name, snap.Name) || c.Amount != snap.Amount || !models.SameDay(c.DueDate, snap.ScheduledDate) {
					continue
				}
				if linked[snap.CategoryID+":"+c.ID] {
					taken++
					continue
				}
				matches = append(matches, c)
			}

			switch {
			case len(matches) == 0 && taken == 1:
				if err := tx.Unscoped().Delete(&models.PaymentSnapshot{}, "id = ?", snap.ID).Error; err != nil {
					return apperrors.Wrap(apperrors.ErrInternalServer, err)
				}
				result.Removed++
			case len(matches) == 1:
				id := matches[0].ID
				if err := tx.Model(&models.PaymentSnapshot{}).Where("id = ?", snap.ID).
					Updates(map[string]interface{}{"payment_record_id": id, "orphaned": false}).Error; err != nil {
					return apperrors.Wrap(apperrors.ErrInternalServer, err)
				}
				linked[snap.CategoryID+":"+id] = true
				result.Fixed++
			case len(matches) == 0 && taken == 0:
				if !snap.Orphaned {
					if err := tx.Model(&models.PaymentSnapshot{}).Where("id = ?", snap.ID).
						Update("orphaned", true).Error; err != nil {
						return apperrors.Wrap(apperrors.ErrInternalServer, err)
					}
				}
				result.Unresolved++
				result.Warnings = append(result.Warnings, models.Warning{
					Code:       models.WarningOrphanedSnapshot,
					Message:    fmt.Sprintf("no payment matches %q", snap.Name),
					CategoryID: snap.CategoryID,
					PaymentID:  snap.ID,
				})
			default:
				result.Unresolved++
				result.Warnings = append(result.Warnings, models.Warning{
					Code:       models.WarningAmbiguousLink,
					Message:    fmt.Sprintf("%d payments match %q", len(matches)+taken, snap.Name),
					CategoryID: snap.CategoryID,
					PaymentID:  snap.ID,
				})
			}
		}
		return nil
	})

	metrics.ObserveReconciliation("links", result.Fixed+result.Removed, err)
	if err != nil {
		return nil, err
	}
	logger.Get().Infow("Fixed payment links",
		"budget_id", budgetID,
		"fixed", result.Fixed,
		"removed", result.Removed,
		"unresolved", result.Unresolved,
	)
	return result, nil
}

// FixPaidBy stores display names on paid snapshots whose payer is only an
// id. Ids missing from the roster are reported and left unresolved.
func (s *reconciliationService) FixPaidBy(ctx context.Context, userID, budgetID string) (*PaidByResult, error) {
	result, err := s.fixPaidBy(ctx, userID, budgetID)
	fixed := 0
	if result != nil {
		fixed = result.Fixed
	}
	metrics.ObserveReconciliation("paid_by", fixed, err)
	if err != nil {
		return nil, err
	}
	logger.Get().Infow("Resolved payers",
		"budget_id", budgetID,
		"fixed", result.Fixed,
		"unresolved", result.Unresolved,
	)
	return result, nil
}

func (s *reconciliationService) fixPaidBy(ctx context.Context, userID, budgetID string) (*PaidByResult, error) {
	db := s.db.WithContext(ctx)
	budget, err := loadAccessibleBudget(db, userID, budgetID)
	if err != nil {
		return nil, err
	}
	roster, err := s.resolver.RosterForBudget(ctx, budget)
	if err != nil {
		return nil, err
	}

	result := &PaidByResult{BudgetID: budgetID, Warnings: []models.Warning{}}
	for i := range budget.Entries {
		for _, snap := range budget.Entries[i].Snapshots {
			if snap.Status != models.PaymentStatusPaid || !snap.PaidBy.IsSet() || snap.PaidBy.Name != "" {
				continue
			}
			payer, ok := roster.Lookup(snap.PaidBy.RawID())
			if !ok {
				result.Unresolved++
				result.Warnings = append(result.Warnings, models.Warning{
					Code:       models.WarningUnresolvedPayer,
					Message:    fmt.Sprintf("payer %s is not a member of the household", snap.PaidBy.RawID()),
					CategoryID: snap.CategoryID,
					PaymentID:  snap.ID,
				})
				continue
			}
			if err := db.Model(&models.PaymentSnapshot{}).
				Where("id = ?", snap.ID).
				Update("paid_by_name", payer.Name).Error; err != nil {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			result.Fixed++
		}
	}
	return result, nil
}

// DiagnosePayments reports drift without changing anything.
func (s *reconciliationService) DiagnosePayments(ctx context.Context, userID, budgetID string) (*Diagnosis, error) {
	db := s.db.WithContext(ctx)
	budget, err := loadAccessibleBudget(db, userID, budgetID)
	if err != nil {
		return nil, err
	}
	owners, err := budgetOwners(db, budget)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	inWindow, err := windowRecords(db, owners, budget)
	if err != nil {
		return nil, err
	}
	index, referenced := snapshotIndex(budget)
	live, err := liveRecords(db, referenced)
	if err != nil {
		return nil, err
	}
	roster, err := s.resolver.RosterForBudget(ctx, budget)
	if err != nil {
		return nil, err
	}

	d := &Diagnosis{BudgetID: budget.ID, PaymentsInWindow: len(inWindow)}
	for i := range inWindow {
		record := &inWindow[i]
		snaps := index[record.ID]
		if len(snaps) > 0 {
			d.RepresentedInLedger++
		}
		if record.Status == models.PaymentStatusCancelled {
			continue
		}
		home := false
		for _, snap := range snaps {
			if snap.CategoryID == record.CategoryID {
				home = true
			}
		}
		if !home {
			d.MissingFromLedger++
		}
	}

	for i := range budget.Entries {
		for j := range budget.Entries[i].Snapshots {
			snap := &budget.Entries[i].Snapshots[j]
			record, ok := live[snap.RecordID()]
			switch {
			case !ok:
				d.OrphanedSnapshots++
			case snap.Stale(record):
				d.StaleSnapshots++
			}
			if snap.Status == models.PaymentStatusPaid && snap.PaidBy.IsSet() && snap.PaidBy.Name == "" {
				if _, ok := roster.Lookup(snap.PaidBy.RawID()); ok {
					d.ResolvablePayers++
				} else {
					d.UnresolvedPayers++
				}
			}
		}
	}

	d.NeedsRepair = d.MissingFromLedger > 0 || d.StaleSnapshots > 0 || d.OrphanedSnapshots > 0 || d.ResolvablePayers > 0
	return d, nil
}

// Repair runs sync, link repair, and payer resolution in order. Each step is
// its own unit of work; a failed step is recorded and the rest still run.
func (s *reconciliationService) Repair(ctx context.Context, userID, budgetID string) (*RepairReport, error) {
	budget, err := loadAccessibleBudget(s.db.WithContext(ctx), userID, budgetID)
	if err != nil {
		return nil, err
	}

	report := &RepairReport{BudgetID: budget.ID}
	fail := func(step string, err error) {
		if report.Errors == nil {
			report.Errors = make(map[string]string)
		}
		report.Errors[step] = err.Error()
		logger.Get().Errorw("Repair step failed", "budget_id", budget.ID, "step", step, "error", err)
	}

	if sync, err := s.SyncCategories(ctx, userID, budget.ID); err != nil {
		fail("sync", err)
	} else {
		report.Sync = sync
	}
	if links, err := s.FixPaymentLinks(ctx, userID, budget.ID); err != nil {
		fail("links", err)
	} else {
		report.Links = links
	}
	if paidBy, err := s.FixPaidBy(ctx, userID, budget.ID); err != nil {
		fail("paid_by", err)
	} else {
		report.PaidBy = paidBy
	}

	data := map[string]interface{}{"failed_steps": len(report.Errors)}
	if report.Sync != nil {
		data["snapshots_created"] = report.Sync.Created
		data["snapshots_updated"] = report.Sync.Updated
	}
	if report.Links != nil {
		data["links_fixed"] = report.Links.Fixed
	}
	if report.PaidBy != nil {
		data["payers_fixed"] = report.PaidBy.Fixed
	}
	events.Emit(ctx, s.publisher, events.New(events.TypeReconciliationCompleted, userID, budget.ID, data))
	return report, nil
}

// RepairBudget runs Repair on behalf of the budget's owner.
func (s *reconciliationService) RepairBudget(ctx context.Context, budgetID string) (*RepairReport, error) {
	var budget models.WeeklyBudget
	if err := s.db.WithContext(ctx).Select("id", "user_id").Where("id = ?", budgetID).First(&budget).Error; err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrWeeklyBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return s.Repair(ctx, budget.UserID, budget.ID)
}

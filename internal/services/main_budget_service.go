package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "nestegg/internal/errors"
	"nestegg/internal/events"
	"nestegg/internal/logger"
	"nestegg/internal/metrics"
	"nestegg/internal/models"
	"nestegg/internal/money"
	"nestegg/internal/pagination"
)

// mainBudgetService handles main budgets and the materialization of their
// week slots.
type mainBudgetService struct {
	db        *gorm.DB
	policy    RecalcPolicy
	publisher events.Publisher
	group     singleflight.Group
	now       func() time.Time
}

// NewMainBudgetService creates a new MainBudgetServicer.
func NewMainBudgetService(db *gorm.DB, policy RecalcPolicy, publisher events.Publisher) MainBudgetServicer {
	if policy == "" {
		policy = DefaultRecalcPolicy
	}
	return &mainBudgetService{db: db, policy: policy, publisher: publisher, now: time.Now}
}

func preloadSlots(db *gorm.DB) *gorm.DB {
	return db.Preload("Slots", func(q *gorm.DB) *gorm.DB { return q.Order("week_number ASC") })
}

func loadMainBudget(db *gorm.DB, mainBudgetID string) (*models.MainBudget, error) {
	var budget models.MainBudget
	err := db.
		Scopes(preloadSlots).
		Where("id = ?", mainBudgetID).
		First(&budget).Error
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrMainBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &budget, nil
}

func loadAccessibleMainBudget(db *gorm.DB, userID, mainBudgetID string) (*models.MainBudget, error) {
	budget, err := loadMainBudget(db, mainBudgetID)
	if err != nil {
		return nil, err
	}
	ok, err := canAccess(db, budget.UserID, budget.HouseholdID, userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !ok {
		return nil, apperrors.ErrMainBudgetNotFound
	}
	return budget, nil
}

// periodLabels fills the calendar labels of a main budget from its start.
func periodLabels(budget *models.MainBudget) {
	budget.Year = budget.StartDate.Year()
	budget.Month, budget.Quarter = nil, nil
	switch budget.PeriodType {
	case models.BudgetPeriodMonthly:
		m := int(budget.StartDate.Month())
		budget.Month = &m
	case models.BudgetPeriodQuarterly:
		q := (int(budget.StartDate.Month())-1)/3 + 1
		budget.Quarter = &q
	}
}

func defaultMainBudgetName(period models.BudgetPeriod, start time.Time) string {
	switch period {
	case models.BudgetPeriodMonthly:
		return start.Format("January 2006")
	case models.BudgetPeriodQuarterly:
		return fmt.Sprintf("Q%d %d", (int(start.Month())-1)/3+1, start.Year())
	case models.BudgetPeriodYearly:
		return fmt.Sprintf("%d", start.Year())
	}
	return "Budget from " + start.Format(time.DateOnly)
}

// CreateMainBudget creates a main budget covering the calendar period that
// contains input.StartDate.
func (s *mainBudgetService) CreateMainBudget(ctx context.Context, userID string, input CreateMainBudgetInput) (*models.MainBudget, error) {
	if input.StartDate.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "start date is required")
	}
	if input.TotalBudget < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidAmount, "total budget cannot be negative")
	}
	if input.Status == "" {
		input.Status = models.MainBudgetStatusDraft
	}
	start, end, ok := models.PeriodBounds(input.PeriodType, input.StartDate, input.EndDate)
	if !ok {
		return nil, apperrors.ErrInvalidPeriod
	}

	db := s.db.WithContext(ctx)
	if err := checkHousehold(db, input.HouseholdID, userID); err != nil {
		return nil, err
	}
	if input.HouseholdID != nil && *input.HouseholdID == "" {
		input.HouseholdID = nil
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = defaultMainBudgetName(input.PeriodType, start)
	}
	budget := &models.MainBudget{
		UserID:      userID,
		HouseholdID: input.HouseholdID,
		Name:        name,
		PeriodType:  input.PeriodType,
		StartDate:   start,
		EndDate:     end,
		TotalBudget: input.TotalBudget,
		Status:      input.Status,
	}
	periodLabels(budget)

	if err := db.Create(budget).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	budget.Slots = []models.WeekSlot{}
	return budget, nil
}

// GetMainBudget retrieves a main budget with its slots.
func (s *mainBudgetService) GetMainBudget(ctx context.Context, userID, mainBudgetID string) (*models.MainBudget, error) {
	return loadAccessibleMainBudget(s.db.WithContext(ctx), userID, mainBudgetID)
}

// ListMainBudgets retrieves the main budgets visible to the user.
func (s *mainBudgetService) ListMainBudgets(ctx context.Context, userID string, page pagination.PageRequest) (*pagination.PageResponse[models.MainBudget], error) {
	db := s.db.WithContext(ctx)

	scope, err := visibleScope(db, userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	base := db.Model(&models.MainBudget{}).Scopes(scope)

	result, err := pagination.Find[models.MainBudget](base, page, "start_date DESC", preloadSlots)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}

// UpdateMainBudget updates the name, total, status, or end of a main budget.
// Changing the end is only allowed for custom periods.
func (s *mainBudgetService) UpdateMainBudget(ctx context.Context, userID, mainBudgetID string, patch MainBudgetPatch) (*models.MainBudget, error) {
	db := s.db.WithContext(ctx)
	budget, err := loadAccessibleMainBudget(db, userID, mainBudgetID)
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
	if patch.Status != nil {
		updates["status"] = *patch.Status
	}
	if patch.EndDate != nil {
		if budget.PeriodType != models.BudgetPeriodCustom {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidPeriod, "only custom periods can change their end date")
		}
		_, end, ok := models.PeriodBounds(budget.PeriodType, budget.StartDate, patch.EndDate)
		if !ok {
			return nil, apperrors.ErrInvalidPeriod
		}
		for _, slot := range budget.Slots {
			if slot.StartDate.After(end) {
				return nil, apperrors.WithMessage(apperrors.ErrInvalidPeriod, "end date would drop a materialized week")
			}
		}
		updates["end_date"] = end
	}

	if len(updates) > 0 {
		if err := db.Model(budget).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return loadMainBudget(db, budget.ID)
}

// DeleteMainBudget deletes a main budget, its slots, and every weekly budget
// materialized from it.
func (s *mainBudgetService) DeleteMainBudget(ctx context.Context, userID, mainBudgetID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		budget, err := loadAccessibleMainBudget(tx, userID, mainBudgetID)
		if err != nil {
			return err
		}

		var weeklyIDs []string
		if err := tx.Model(&models.WeeklyBudget{}).
			Where("main_budget_id = ?", budget.ID).
			Pluck("id", &weeklyIDs).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		for _, slot := range budget.Slots {
			if slot.Materialized() {
				weeklyIDs = appendUnique(weeklyIDs, *slot.WeeklyBudgetID)
			}
		}
		for _, id := range weeklyIDs {
			if err := deleteWeeklyBudgetTx(tx, id); err != nil {
				return err
			}
		}

		if err := tx.Unscoped().Where("main_budget_id = ?", budget.ID).Delete(&models.WeekSlot{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Delete(budget).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// slotStatus places a week relative to now.
func slotStatus(start, end, now time.Time) models.WeekSlotStatus {
	switch {
	case models.WithinDays(now, start, end):
		return models.WeekSlotStatusActive
	case models.DateOnly(now).After(end):
		return models.WeekSlotStatusCompleted
	}
	return models.WeekSlotStatusPlanned
}

// MaterializeWeek ensures week n of a main budget is backed by exactly one
// weekly budget. Concurrent callers in this process share one attempt; across
// processes the dedup key guarantees a single row. An already materialized
// week is returned unchanged.
func (s *mainBudgetService) MaterializeWeek(ctx context.Context, userID, mainBudgetID string, weekNumber int, allocated *money.Amount) (*MaterializeResult, error) {
	if allocated != nil && *allocated < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidAmount, "allocated amount cannot be negative")
	}
	budget, err := loadAccessibleMainBudget(s.db.WithContext(ctx), userID, mainBudgetID)
	if err != nil {
		return nil, err
	}
	if _, _, ok := budget.WeekRange(weekNumber); !ok {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidWeekNumber,
			fmt.Sprintf("week number must be between 1 and %d", budget.WeekCount()))
	}

	// The shared attempt outlives the caller that started it; other callers
	// may be waiting on it.
	key := fmt.Sprintf("%s:%d", budget.ID, weekNumber)
	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		return s.materialize(context.WithoutCancel(ctx), budget, weekNumber, allocated)
	})
	if err != nil {
		return nil, err
	}
	shared := v.(*MaterializeResult)
	result := *shared
	return &result, nil
}

func (s *mainBudgetService) materialize(ctx context.Context, budget *models.MainBudget, weekNumber int, allocated *money.Amount) (*MaterializeResult, error) {
	db := s.db.WithContext(ctx)
	start, end, _ := budget.WeekRange(weekNumber)
	dedupKey := models.SlotDedupKey(budget.ID, weekNumber)

	var weeklyID string
	created := false
	err := db.Transaction(func(tx *gorm.DB) error {
		var slot models.WeekSlot
		err := tx.Where("main_budget_id = ? AND week_number = ?", budget.ID, weekNumber).First(&slot).Error
		hasSlot := err == nil
		if err != nil && !isNotFound(err) {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if hasSlot && slot.Materialized() {
			var count int64
			if err := tx.Model(&models.WeeklyBudget{}).Where("id = ?", *slot.WeeklyBudgetID).Count(&count).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			if count > 0 {
				weeklyID = *slot.WeeklyBudgetID
				return nil
			}
		}

		amount := money.Amount(0)
		switch {
		case allocated != nil:
			amount = *allocated
		case hasSlot:
			amount = slot.AllocatedAmount
		}

		n := weekNumber
		weekly := &models.WeeklyBudget{
			UserID:       budget.UserID,
			HouseholdID:  budget.HouseholdID,
			Name:         fmt.Sprintf("%s week %d", budget.Name, weekNumber),
			WeekStart:    start,
			WeekEnd:      end,
			TotalBudget:  amount,
			MainBudgetID: &budget.ID,
			WeekNumber:   &n,
			DedupKey:     dedupKey,
		}
		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "dedup_key"}},
			DoNothing: true,
		}).Create(weekly)
		if result.Error != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
		}
		if result.RowsAffected == 0 {
			var existing models.WeeklyBudget
			if err := tx.Select("id", "total_budget").Where("dedup_key = ?", dedupKey).First(&existing).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			weekly = &existing
		} else {
			created = true
		}
		weeklyID = weekly.ID

		upsert := &models.WeekSlot{
			MainBudgetID:    budget.ID,
			WeekNumber:      weekNumber,
			WeeklyBudgetID:  &weeklyID,
			StartDate:       start,
			EndDate:         end,
			AllocatedAmount: weekly.TotalBudget,
			Status:          slotStatus(start, end, s.now()),
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "main_budget_id"}, {Name: "week_number"}},
			DoUpdates: clause.AssignmentColumns([]string{"weekly_budget_id", "allocated_amount", "status", "updated_at"}),
		}).Create(upsert).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var slot models.WeekSlot
	if err := db.Where("main_budget_id = ? AND week_number = ?", budget.ID, weekNumber).First(&slot).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	weekly, err := loadWeeklyBudget(db, weeklyID)
	if err != nil {
		return nil, err
	}

	metrics.ObserveMaterialization(created)
	if created {
		logger.Get().Infow("Materialized week slot",
			"main_budget_id", budget.ID, "week_number", weekNumber, "weekly_budget_id", weeklyID)
		events.Emit(ctx, s.publisher, events.New(events.TypeWeeklyBudgetMaterialized, budget.UserID, weeklyID, map[string]interface{}{
			"main_budget_id":   budget.ID,
			"week_number":      weekNumber,
			"allocated_amount": weekly.TotalBudget,
		}))
	}
	return &MaterializeResult{Slot: &slot, WeeklyBudget: weekly, Created: created}, nil
}

// SetSlotAllocation sets the allocated amount of week n, creating a planned
// slot when the week has none yet. A materialized week's weekly budget
// follows the new amount.
func (s *mainBudgetService) SetSlotAllocation(ctx context.Context, userID, mainBudgetID string, weekNumber int, amount money.Amount) (*models.WeekSlot, error) {
	if amount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidAmount, "allocated amount cannot be negative")
	}
	db := s.db.WithContext(ctx)
	budget, err := loadAccessibleMainBudget(db, userID, mainBudgetID)
	if err != nil {
		return nil, err
	}
	start, end, ok := budget.WeekRange(weekNumber)
	if !ok {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidWeekNumber,
			fmt.Sprintf("week number must be between 1 and %d", budget.WeekCount()))
	}

	var slot models.WeekSlot
	err = db.Transaction(func(tx *gorm.DB) error {
		upsert := &models.WeekSlot{
			MainBudgetID:    budget.ID,
			WeekNumber:      weekNumber,
			StartDate:       start,
			EndDate:         end,
			AllocatedAmount: amount,
			Status:          models.WeekSlotStatusPlanned,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "main_budget_id"}, {Name: "week_number"}},
			DoUpdates: clause.AssignmentColumns([]string{"allocated_amount", "updated_at"}),
		}).Create(upsert).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Where("main_budget_id = ? AND week_number = ?", budget.ID, weekNumber).First(&slot).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if slot.Materialized() {
			if err := tx.Model(&models.WeeklyBudget{}).
				Where("id = ?", *slot.WeeklyBudgetID).
				Update("total_budget", amount).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

// RecalculateTotal recomputes the main budget total from the allocations of
// its materialized weeks, applying the configured policy.
func (s *mainBudgetService) RecalculateTotal(ctx context.Context, userID, mainBudgetID string) (*RecalcResult, error) {
	db := s.db.WithContext(ctx)
	budget, err := loadAccessibleMainBudget(db, userID, mainBudgetID)
	if err != nil {
		return nil, err
	}

	var sum money.Amount
	materialized := 0
	for _, slot := range budget.Slots {
		if !slot.Materialized() {
			continue
		}
		materialized++
		if slot.AllocatedAmount > 0 {
			sum += slot.AllocatedAmount
		}
	}

	applied, reason := s.policy.decide(budget.TotalBudget, sum, materialized, budget.WeekCount())
	result := &RecalcResult{
		Policy:        s.policy,
		PreviousTotal: budget.TotalBudget,
		ComputedSum:   sum,
		NewTotal:      budget.TotalBudget,
		Applied:       applied,
		Reason:        reason,
	}
	if !applied {
		return result, nil
	}

	if err := db.Model(budget).Update("total_budget", sum).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	result.NewTotal = sum
	return result, nil
}

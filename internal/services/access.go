package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "nestegg/internal/errors"
	"nestegg/internal/models"
)

// isHouseholdMember reports whether userID belongs to the household. The
// creator has no member row and is checked separately.
func isHouseholdMember(db *gorm.DB, householdID, userID string) (bool, error) {
	var household models.Household
	if err := db.Select("id", "created_by_id").Where("id = ?", householdID).First(&household).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	if household.CreatedByID == userID {
		return true, nil
	}

	var count int64
	if err := db.Model(&models.HouseholdMember{}).
		Where("household_id = ? AND user_id = ?", householdID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// householdUserIDs returns the creator and every member of a household.
func householdUserIDs(db *gorm.DB, householdID string) ([]string, error) {
	var household models.Household
	if err := db.Select("id", "created_by_id").Where("id = ?", householdID).First(&household).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var memberIDs []string
	if err := db.Model(&models.HouseholdMember{}).
		Where("household_id = ?", householdID).
		Pluck("user_id", &memberIDs).Error; err != nil {
		return nil, err
	}
	return appendUnique([]string{household.CreatedByID}, memberIDs...), nil
}

// userHouseholdIDs returns the households a user created or belongs to.
func userHouseholdIDs(db *gorm.DB, userID string) ([]string, error) {
	var created []string
	if err := db.Model(&models.Household{}).Where("created_by_id = ?", userID).Pluck("id", &created).Error; err != nil {
		return nil, err
	}
	var joined []string
	if err := db.Model(&models.HouseholdMember{}).Where("user_id = ?", userID).Pluck("household_id", &joined).Error; err != nil {
		return nil, err
	}
	return appendUnique(created, joined...), nil
}

// canAccess reports whether userID may see a resource owned by ownerID and
// optionally shared with a household.
func canAccess(db *gorm.DB, ownerID string, householdID *string, userID string) (bool, error) {
	if ownerID == userID {
		return true, nil
	}
	if householdID == nil || *householdID == "" {
		return false, nil
	}
	return isHouseholdMember(db, *householdID, userID)
}

// budgetOwners returns the users whose payments belong in a weekly budget:
// the owner, plus every household member when the budget is shared.
func budgetOwners(db *gorm.DB, budget *models.WeeklyBudget) ([]string, error) {
	owners := []string{budget.UserID}
	if budget.HouseholdID == nil || *budget.HouseholdID == "" {
		return owners, nil
	}
	ids, err := householdUserIDs(db, *budget.HouseholdID)
	if err != nil {
		return nil, err
	}
	return appendUnique(owners, ids...), nil
}

// checkHousehold verifies that userID may share a resource with householdID.
func checkHousehold(db *gorm.DB, householdID *string, userID string) error {
	if householdID == nil || *householdID == "" {
		return nil
	}
	ok, err := isHouseholdMember(db, *householdID, userID)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !ok {
		return apperrors.ErrHouseholdNotFound
	}
	return nil
}

// visibleScope limits a query to rows owned by userID or shared with one of
// the user's households.
func visibleScope(db *gorm.DB, userID string) (func(*gorm.DB) *gorm.DB, error) {
	householdIDs, err := userHouseholdIDs(db, userID)
	if err != nil {
		return nil, err
	}
	return func(q *gorm.DB) *gorm.DB {
		if len(householdIDs) == 0 {
			return q.Where("user_id = ?", userID)
		}
		return q.Where("(user_id = ? OR household_id IN ?)", userID, householdIDs)
	}, nil
}

// loadWeeklyBudget loads a weekly budget with its ordered ledger entries and
// snapshots.
func loadWeeklyBudget(db *gorm.DB, budgetID string) (*models.WeeklyBudget, error) {
	var budget models.WeeklyBudget
	err := db.
		Preload("Entries", func(q *gorm.DB) *gorm.DB { return q.Order("position ASC, created_at ASC") }).
		Preload("Entries.Category").
		Preload("Entries.Snapshots", func(q *gorm.DB) *gorm.DB { return q.Order("position ASC, created_at ASC") }).
		Where("id = ?", budgetID).
		First(&budget).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWeeklyBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &budget, nil
}

// loadAccessibleBudget loads a weekly budget the user may see. Budgets the
// user has no access to are reported as not found.
func loadAccessibleBudget(db *gorm.DB, userID, budgetID string) (*models.WeeklyBudget, error) {
	budget, err := loadWeeklyBudget(db, budgetID)
	if err != nil {
		return nil, err
	}
	ok, err := canAccess(db, budget.UserID, budget.HouseholdID, userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !ok {
		return nil, apperrors.ErrWeeklyBudgetNotFound
	}
	return budget, nil
}

// loadAccessiblePayment loads a payment the user may see: their own, or one
// created through a weekly budget shared with the user's household.
func loadAccessiblePayment(db *gorm.DB, userID, paymentID string) (*models.PaymentRecord, error) {
	var record models.PaymentRecord
	if err := db.Where("id = ?", paymentID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPaymentNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if record.UserID == userID {
		return &record, nil
	}
	if record.WeeklyBudgetID != nil {
		var budget models.WeeklyBudget
		err := db.Select("id", "user_id", "household_id").Where("id = ?", *record.WeeklyBudgetID).First(&budget).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err == nil {
			ok, err := canAccess(db, budget.UserID, budget.HouseholdID, userID)
			if err != nil {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			if ok {
				return &record, nil
			}
		}
	}
	return nil, apperrors.ErrPaymentNotFound
}

func appendUnique(dst []string, values ...string) []string {
	seen := make(map[string]bool, len(dst)+len(values))
	out := make([]string, 0, len(dst)+len(values))
	for _, list := range [][]string{dst, values} {
		for _, v := range list {
			if v == "" || seen[v] {
				continue
			}
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

package services

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	apperrors "nestegg/internal/errors"
	"nestegg/internal/logger"
	"nestegg/internal/models"
)

// householdResolver builds household rosters and attributes paid snapshots
// to members.
type householdResolver struct {
	db *gorm.DB
}

// NewHouseholdResolver creates a new HouseholdResolver.
func NewHouseholdResolver(db *gorm.DB) HouseholdResolver {
	return &householdResolver{db: db}
}

// Roster returns the creator and members of a household with their display
// names. A member's household display name wins over the user's own name.
func (r *householdResolver) Roster(ctx context.Context, householdID string) (*models.Roster, error) {
	db := r.db.WithContext(ctx)

	var household models.Household
	err := db.Preload("CreatedBy").
		Preload("Members").
		Preload("Members.User").
		Where("id = ?", householdID).
		First(&household).Error
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrHouseholdNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	roster := models.NewRoster(household.ID)
	if household.CreatedBy != nil {
		roster.Add(household.CreatedByID, household.CreatedBy.DisplayName())
	} else {
		roster.Add(household.CreatedByID, models.UnknownPayerName)
	}
	for _, m := range household.Members {
		name := m.DisplayName
		if name == "" && m.User != nil {
			name = m.User.DisplayName()
		}
		if name == "" {
			name = models.UnknownPayerName
		}
		roster.Add(m.UserID, name)
	}
	return roster, nil
}

// RosterForBudget returns the household roster of a shared budget, or a
// roster holding only the owner for a private one.
func (r *householdResolver) RosterForBudget(ctx context.Context, budget *models.WeeklyBudget) (*models.Roster, error) {
	if budget.HouseholdID != nil && *budget.HouseholdID != "" {
		return r.Roster(ctx, *budget.HouseholdID)
	}

	roster := models.NewRoster("")
	var owner models.User
	if err := r.db.WithContext(ctx).Where("id = ?", budget.UserID).First(&owner).Error; err != nil {
		if isNotFound(err) {
			return roster, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	roster.Add(owner.ID, owner.DisplayName())
	return roster, nil
}

// Resolve maps a reference to a payer and never fails. A roster that cannot
// be loaded resolves everything through the fallback.
func (r *householdResolver) Resolve(ctx context.Context, householdID string, ref models.PayerRef) models.Payer {
	roster, err := r.Roster(ctx, householdID)
	if err != nil {
		logger.Get().Warnw("Failed to load household roster",
			"household_id", householdID,
			"error", err,
		)
		roster = nil
	}
	return roster.Resolve(ref)
}

// SumByPayer totals the paid snapshots of a budget per resolved payer.
func (r *householdResolver) SumByPayer(ctx context.Context, budget *models.WeeklyBudget) ([]PayerTotal, error) {
	roster, err := r.RosterForBudget(ctx, budget)
	if err != nil {
		return nil, err
	}
	return sumByPayer(roster, budget), nil
}

// sumByPayer groups paid snapshots by resolved payer, largest total first.
func sumByPayer(roster *models.Roster, budget *models.WeeklyBudget) []PayerTotal {
	index := make(map[string]int)
	totals := []PayerTotal{}
	for i := range budget.Entries {
		for _, snap := range budget.Entries[i].Snapshots {
			if snap.Status != models.PaymentStatusPaid {
				continue
			}
			payer := roster.Resolve(snap.PaidBy)
			pos, ok := index[payer.ID]
			if !ok {
				pos = len(totals)
				index[payer.ID] = pos
				totals = append(totals, PayerTotal{Payer: payer})
			}
			totals[pos].Total += snap.Amount
			totals[pos].Count++
		}
	}
	sort.SliceStable(totals, func(i, j int) bool {
		if totals[i].Total != totals[j].Total {
			return totals[i].Total > totals[j].Total
		}
		return totals[i].Payer.Name < totals[j].Payer.Name
	})
	return totals
}

// HouseholdBudgets returns every budget shared with a household, with payer
// names resolved against its roster.
func (r *householdResolver) HouseholdBudgets(ctx context.Context, userID, householdID string) (*HouseholdBudgets, error) {
	if err := checkHousehold(r.db.WithContext(ctx), &householdID, userID); err != nil {
		return nil, err
	}

	var (
		roster  *models.Roster
		weekly  []models.WeeklyBudget
		mainBud []models.MainBudget
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		roster, err = r.Roster(gctx, householdID)
		return err
	})
	g.Go(func() error {
		err := r.db.WithContext(gctx).
			Preload("Entries", func(q *gorm.DB) *gorm.DB { return q.Order("position ASC, created_at ASC") }).
			Preload("Entries.Snapshots", func(q *gorm.DB) *gorm.DB { return q.Order("position ASC, created_at ASC") }).
			Where("household_id = ?", householdID).
			Order("week_start DESC").
			Find(&weekly).Error
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	g.Go(func() error {
		err := r.db.WithContext(gctx).
			Scopes(preloadSlots).
			Where("household_id = ?", householdID).
			Order("start_date DESC").
			Find(&mainBud).Error
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &HouseholdBudgets{
		HouseholdID:   householdID,
		Members:       make([]models.Payer, 0, roster.Len()),
		WeeklyBudgets: make([]SharedWeeklyBudget, 0, len(weekly)),
		MainBudgets:   mainBud,
	}
	if result.MainBudgets == nil {
		result.MainBudgets = []models.MainBudget{}
	}
	for _, id := range roster.IDs() {
		p, _ := roster.Lookup(id)
		result.Members = append(result.Members, p)
	}
	for i := range weekly {
		budget := &weekly[i]
		result.WeeklyBudgets = append(result.WeeklyBudgets, SharedWeeklyBudget{
			WeeklyBudget: budget,
			Summary:      budget.Summarize(),
			Payers:       sumByPayer(roster, budget),
		})
	}
	return result, nil
}

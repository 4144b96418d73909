package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	apperrors "nestegg/internal/errors"
	"nestegg/internal/middleware"
	"nestegg/internal/models"
	"nestegg/internal/services"
)

func setupJobsRouter(handler *JobsHandler) *gin.Engine {
	r := gin.New()
	r.POST("/jobs/mark-overdue", handler.MarkOverdue)
	r.POST("/jobs/weekly-budgets/:id/repair", handler.RepairWeeklyBudget)
	return r
}

func TestJobsHandler_MarkOverdue(t *testing.T) {
	t.Run("uses the clock without a body", func(t *testing.T) {
		fixed := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
		var captured time.Time
		paySvc := &mockPaymentService{
			markOverdueFn: func(now time.Time) (int64, error) {
				captured = now
				return 4, nil
			},
		}
		handler := NewJobsHandler(paySvc, &mockReconciliationService{})
		handler.now = func() time.Time { return fixed }
		r := setupJobsRouter(handler)

		rec := doRequest(r, "POST", "/jobs/mark-overdue", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if !captured.Equal(fixed) {
			t.Errorf("expected %s, got %s", fixed, captured)
		}
		if n := parseJSON(t, rec)["marked_overdue"]; n != float64(4) {
			t.Errorf("expected 4, got %v", n)
		}
	})

	t.Run("honours as_of", func(t *testing.T) {
		var captured time.Time
		paySvc := &mockPaymentService{
			markOverdueFn: func(now time.Time) (int64, error) {
				captured = now
				return 0, nil
			},
		}
		r := setupJobsRouter(NewJobsHandler(paySvc, &mockReconciliationService{}))

		rec := doRequest(r, "POST", "/jobs/mark-overdue", `{"as_of":"2024-01-15"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if captured.Format(time.DateOnly) != "2024-01-15" {
			t.Errorf("expected 2024-01-15, got %s", captured)
		}
	})
}

func TestJobsHandler_RepairWeeklyBudget(t *testing.T) {
	t.Run("runs the repair without a user", func(t *testing.T) {
		var captured string
		recon := &mockReconciliationService{
			repairBudgetFn: func(budgetID string) (*services.RepairReport, error) {
				captured = budgetID
				return &services.RepairReport{BudgetID: budgetID}, nil
			},
		}
		r := setupJobsRouter(NewJobsHandler(&mockPaymentService{}, recon))

		rec := doRequest(r, "POST", "/jobs/weekly-budgets/"+testBudgetID+"/repair", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if captured != testBudgetID {
			t.Errorf("expected %s, got %s", testBudgetID, captured)
		}
	})

	t.Run("returns 404 for an unknown budget", func(t *testing.T) {
		recon := &mockReconciliationService{
			repairBudgetFn: func(_ string) (*services.RepairReport, error) {
				return nil, apperrors.ErrWeeklyBudgetNotFound
			},
		}
		r := setupJobsRouter(NewJobsHandler(&mockPaymentService{}, recon))

		rec := doRequest(r, "POST", "/jobs/weekly-budgets/"+testBudgetID+"/repair", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestJobsHandler_LogsAuthorisingKey(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	recon := &mockReconciliationService{
		repairBudgetFn: func(budgetID string) (*services.RepairReport, error) {
			return &services.RepairReport{BudgetID: budgetID}, nil
		},
	}
	handler := NewJobsHandler(&mockPaymentService{}, recon)
	handler.log = zap.New(core).Sugar()

	r := gin.New()
	r.POST("/jobs/weekly-budgets/:id/repair",
		middleware.JobsAuthMiddleware([]string{"retiring-key", "current-key"}),
		handler.RepairWeeklyBudget)

	req := httptest.NewRequest(http.MethodPost, "/jobs/weekly-budgets/"+testBudgetID+"/repair", http.NoBody)
	req.Header.Set("X-API-Key", "current-key")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	entries := logs.FilterMessage("Job finished").All()
	if len(entries) != 1 {
		t.Fatalf("expected one job log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["job"] != "repair_weekly_budget" {
		t.Errorf("unexpected job field: %v", fields["job"])
	}
	if fields["key_index"] != int64(1) {
		t.Errorf("expected key_index 1, got %v (%T)", fields["key_index"], fields["key_index"])
	}
	if fields["budget_id"] != testBudgetID {
		t.Errorf("unexpected budget_id: %v", fields["budget_id"])
	}
}

// --- household handler ---

type mockHouseholdResolver struct {
	householdBudgetsFn func(userID, householdID string) (*services.HouseholdBudgets, error)
}

func (m *mockHouseholdResolver) Roster(_ context.Context, householdID string) (*models.Roster, error) {
	return models.NewRoster(householdID), nil
}

func (m *mockHouseholdResolver) RosterForBudget(_ context.Context, _ *models.WeeklyBudget) (*models.Roster, error) {
	return models.NewRoster(""), nil
}

func (m *mockHouseholdResolver) Resolve(_ context.Context, _ string, ref models.PayerRef) models.Payer {
	var roster *models.Roster
	return roster.Resolve(ref)
}

func (m *mockHouseholdResolver) SumByPayer(_ context.Context, _ *models.WeeklyBudget) ([]services.PayerTotal, error) {
	return []services.PayerTotal{}, nil
}

func (m *mockHouseholdResolver) HouseholdBudgets(_ context.Context, userID, householdID string) (*services.HouseholdBudgets, error) {
	if m.householdBudgetsFn != nil {
		return m.householdBudgetsFn(userID, householdID)
	}
	return &services.HouseholdBudgets{HouseholdID: householdID}, nil
}

var _ services.HouseholdResolver = (*mockHouseholdResolver)(nil)

func TestHouseholdHandler_GetBudgets(t *testing.T) {
	setup := func(resolver services.HouseholdResolver) *gin.Engine {
		r := gin.New()
		r.GET("/households/:id/budgets", injectUserID(testUserID), NewHouseholdHandler(resolver).GetBudgets)
		return r
	}

	t.Run("returns members with resolved names", func(t *testing.T) {
		resolver := &mockHouseholdResolver{
			householdBudgetsFn: func(_, householdID string) (*services.HouseholdBudgets, error) {
				return &services.HouseholdBudgets{
					HouseholdID:   householdID,
					Members:       []models.Payer{{ID: testUserID, Name: "Alex", Resolved: true}},
					WeeklyBudgets: []services.SharedWeeklyBudget{},
					MainBudgets:   []models.MainBudget{},
				}, nil
			},
		}

		rec := doRequest(setup(resolver), "GET", "/households/"+testBudgetID+"/budgets", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		members := parseJSON(t, rec)["members"].([]interface{})
		if len(members) != 1 || members[0].(map[string]interface{})["name"] != "Alex" {
			t.Errorf("unexpected members: %v", members)
		}
	})

	t.Run("returns 403 for outsiders", func(t *testing.T) {
		resolver := &mockHouseholdResolver{
			householdBudgetsFn: func(_, _ string) (*services.HouseholdBudgets, error) {
				return nil, apperrors.ErrForbidden
			},
		}

		rec := doRequest(setup(resolver), "GET", "/households/"+testBudgetID+"/budgets", "")

		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
	})
}

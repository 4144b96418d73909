package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "nestegg/internal/errors"
	"nestegg/internal/models"
	"nestegg/internal/money"
	"nestegg/internal/pagination"
	"nestegg/internal/services"
)

// --- mock payment service ---

type mockPaymentService struct {
	createPaymentFn func(userID string, input services.PaymentInput) (*models.PaymentRecord, error)
	getPaymentFn    func(userID, paymentID string) (*models.PaymentRecord, error)
	listPaymentsFn  func(userID string, filter services.PaymentFilter, page pagination.PageRequest) (*pagination.PageResponse[models.PaymentRecord], error)
	updatePaymentFn func(userID, paymentID string, patch services.PaymentPatch) (*models.PaymentRecord, error)
	setStatusFn     func(userID, paymentID string, status models.PaymentStatus, paidBy *string) (*services.StatusChange, error)
	deletePaymentFn func(userID, paymentID string, force bool) error
	markOverdueFn   func(now time.Time) (int64, error)
}

func (m *mockPaymentService) CreatePayment(_ context.Context, userID string, input services.PaymentInput) (*models.PaymentRecord, error) {
	if m.createPaymentFn != nil {
		return m.createPaymentFn(userID, input)
	}
	return &models.PaymentRecord{}, nil
}

func (m *mockPaymentService) GetPayment(_ context.Context, userID, paymentID string) (*models.PaymentRecord, error) {
	if m.getPaymentFn != nil {
		return m.getPaymentFn(userID, paymentID)
	}
	return &models.PaymentRecord{}, nil
}

func (m *mockPaymentService) ListPayments(_ context.Context, userID string, filter services.PaymentFilter, page pagination.PageRequest) (*pagination.PageResponse[models.PaymentRecord], error) {
	if m.listPaymentsFn != nil {
		return m.listPaymentsFn(userID, filter, page)
	}
	resp := pagination.NewPageResponse([]models.PaymentRecord{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockPaymentService) UpdatePayment(_ context.Context, userID, paymentID string, patch services.PaymentPatch) (*models.PaymentRecord, error) {
	if m.updatePaymentFn != nil {
		return m.updatePaymentFn(userID, paymentID, patch)
	}
	return &models.PaymentRecord{}, nil
}

func (m *mockPaymentService) SetStatus(_ context.Context, userID, paymentID string, status models.PaymentStatus, paidBy *string) (*services.StatusChange, error) {
	if m.setStatusFn != nil {
		return m.setStatusFn(userID, paymentID, status, paidBy)
	}
	return &services.StatusChange{Payment: &models.PaymentRecord{}, Changed: true}, nil
}

func (m *mockPaymentService) DeletePayment(_ context.Context, userID, paymentID string, force bool) error {
	if m.deletePaymentFn != nil {
		return m.deletePaymentFn(userID, paymentID, force)
	}
	return nil
}

func (m *mockPaymentService) MarkOverdue(_ context.Context, now time.Time) (int64, error) {
	if m.markOverdueFn != nil {
		return m.markOverdueFn(now)
	}
	return 0, nil
}

var _ services.PaymentServicer = (*mockPaymentService)(nil)

func setupPaymentRouter(handler *PaymentHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.POST("/payments", handler.CreatePayment)
	auth.GET("/payments", handler.ListPayments)
	auth.GET("/payments/:id", handler.GetPayment)
	auth.PUT("/payments/:id", handler.UpdatePayment)
	auth.DELETE("/payments/:id", handler.DeletePayment)
	auth.POST("/payments/:id/status", handler.SetStatus)
	return r
}

func TestPaymentHandler_CreatePayment(t *testing.T) {
	t.Run("returns 201 and parses comma amounts", func(t *testing.T) {
		var captured services.PaymentInput
		paySvc := &mockPaymentService{
			createPaymentFn: func(_ string, input services.PaymentInput) (*models.PaymentRecord, error) {
				captured = input
				return &models.PaymentRecord{Base: models.Base{ID: testPaymentID}, Name: input.Name, Amount: input.Amount}, nil
			},
		}
		audit := &mockAuditService{}
		r := setupPaymentRouter(NewPaymentHandler(paySvc, audit))

		rec := doRequest(r, "POST", "/payments",
			`{"name":"Rent","amount":"850,50","category_id":"`+testCategoryID+`","due_date":"2024-03-04","frequency":"monthly"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if captured.Amount != money.FromMinor(85050) {
			t.Errorf("expected 85050 minor units, got %d", captured.Amount)
		}
		if captured.DueDate.Format(time.DateOnly) != "2024-03-04" {
			t.Errorf("expected due date 2024-03-04, got %s", captured.DueDate)
		}
		if captured.Frequency != models.FrequencyMonthly {
			t.Errorf("expected monthly, got %s", captured.Frequency)
		}
		payment := parseJSON(t, rec)["payment"].(map[string]interface{})
		if payment["amount"] != 850.5 {
			t.Errorf("expected amount 850.5, got %v", payment["amount"])
		}
		if len(audit.actions) != 1 || audit.actions[0] != "CREATE_PAYMENT" {
			t.Errorf("expected CREATE_PAYMENT audit entry, got %v", audit.actions)
		}
	})

	t.Run("returns 400 on missing category", func(t *testing.T) {
		r := setupPaymentRouter(NewPaymentHandler(&mockPaymentService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/payments", `{"name":"Rent","amount":10,"due_date":"2024-03-04"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on missing due date", func(t *testing.T) {
		r := setupPaymentRouter(NewPaymentHandler(&mockPaymentService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/payments", `{"name":"Rent","amount":10,"category_id":"`+testCategoryID+`"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on unknown frequency", func(t *testing.T) {
		r := setupPaymentRouter(NewPaymentHandler(&mockPaymentService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/payments",
			`{"name":"Rent","amount":10,"category_id":"`+testCategoryID+`","due_date":"2024-03-04","frequency":"daily"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("maps service amount errors", func(t *testing.T) {
		paySvc := &mockPaymentService{
			createPaymentFn: func(_ string, _ services.PaymentInput) (*models.PaymentRecord, error) {
				return nil, apperrors.ErrInvalidAmount
			},
		}
		r := setupPaymentRouter(NewPaymentHandler(paySvc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/payments",
			`{"name":"Rent","amount":0,"category_id":"`+testCategoryID+`","due_date":"2024-03-04"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_AMOUNT")
	})
}

func TestPaymentHandler_ListPayments(t *testing.T) {
	t.Run("passes date and status filters", func(t *testing.T) {
		var captured services.PaymentFilter
		paySvc := &mockPaymentService{
			listPaymentsFn: func(_ string, filter services.PaymentFilter, _ pagination.PageRequest) (*pagination.PageResponse[models.PaymentRecord], error) {
				captured = filter
				resp := pagination.NewPageResponse([]models.PaymentRecord{}, 1, 20, 0)
				return &resp, nil
			},
		}
		r := setupPaymentRouter(NewPaymentHandler(paySvc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/payments?from=2024-03-04&to=2024-03-10&status=paid", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if captured.From == nil || captured.From.Format(time.DateOnly) != "2024-03-04" {
			t.Errorf("unexpected from: %v", captured.From)
		}
		if captured.To == nil || captured.To.Format(time.DateOnly) != "2024-03-10" {
			t.Errorf("unexpected to: %v", captured.To)
		}
		if captured.Status == nil || *captured.Status != models.PaymentStatusPaid {
			t.Errorf("unexpected status: %v", captured.Status)
		}
	})

	t.Run("returns 400 on bad date", func(t *testing.T) {
		r := setupPaymentRouter(NewPaymentHandler(&mockPaymentService{}, &mockAuditService{}))

		rec := doRequest(r, "GET", "/payments?from=yesterday", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on bad status", func(t *testing.T) {
		r := setupPaymentRouter(NewPaymentHandler(&mockPaymentService{}, &mockAuditService{}))

		rec := doRequest(r, "GET", "/payments?status=done", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestPaymentHandler_UpdatePayment(t *testing.T) {
	t.Run("passes only the provided fields", func(t *testing.T) {
		var captured services.PaymentPatch
		paySvc := &mockPaymentService{
			updatePaymentFn: func(_, id string, patch services.PaymentPatch) (*models.PaymentRecord, error) {
				captured = patch
				return &models.PaymentRecord{Base: models.Base{ID: id}}, nil
			},
		}
		r := setupPaymentRouter(NewPaymentHandler(paySvc, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/payments/"+testPaymentID, `{"amount":12.5}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if captured.Amount == nil || *captured.Amount != money.FromMinor(1250) {
			t.Errorf("unexpected amount: %v", captured.Amount)
		}
		if captured.Name != nil || captured.DueDate != nil || captured.CategoryID != nil {
			t.Errorf("expected untouched fields to be nil, got %+v", captured)
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		paySvc := &mockPaymentService{
			updatePaymentFn: func(_, _ string, _ services.PaymentPatch) (*models.PaymentRecord, error) {
				return nil, apperrors.ErrPaymentNotFound
			},
		}
		r := setupPaymentRouter(NewPaymentHandler(paySvc, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/payments/"+testPaymentID, `{"name":"Rent"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestPaymentHandler_DeletePayment(t *testing.T) {
	t.Run("returns 409 when referenced", func(t *testing.T) {
		var forced bool
		paySvc := &mockPaymentService{
			deletePaymentFn: func(_, _ string, force bool) error {
				forced = force
				if !force {
					return apperrors.ErrPaymentReferenced
				}
				return nil
			},
		}
		r := setupPaymentRouter(NewPaymentHandler(paySvc, &mockAuditService{}))

		rec := doRequest(r, "DELETE", "/payments/"+testPaymentID, "")
		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "PAYMENT_REFERENCED")

		rec = doRequest(r, "DELETE", "/payments/"+testPaymentID+"?force=true", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 with force, got %d", rec.Code)
		}
		if !forced {
			t.Error("expected force to be passed")
		}
	})

	t.Run("returns 400 on bad force flag", func(t *testing.T) {
		r := setupPaymentRouter(NewPaymentHandler(&mockPaymentService{}, &mockAuditService{}))

		rec := doRequest(r, "DELETE", "/payments/"+testPaymentID+"?force=maybe", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestPaymentHandler_SetStatus(t *testing.T) {
	t.Run("returns the status change", func(t *testing.T) {
		var capturedPaidBy *string
		paySvc := &mockPaymentService{
			setStatusFn: func(_, id string, status models.PaymentStatus, paidBy *string) (*services.StatusChange, error) {
				capturedPaidBy = paidBy
				return &services.StatusChange{
					Payment:        &models.PaymentRecord{Base: models.Base{ID: id}, Status: status},
					PreviousStatus: models.PaymentStatusPending,
					Changed:        true,
				}, nil
			},
		}
		audit := &mockAuditService{}
		r := setupPaymentRouter(NewPaymentHandler(paySvc, audit))

		rec := doRequest(r, "POST", "/payments/"+testPaymentID+"/status", `{"status":"paid","paid_by":"`+testUserID+`"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["previous_status"] != "pending" {
			t.Errorf("expected previous_status pending, got %v", result["previous_status"])
		}
		if capturedPaidBy == nil || *capturedPaidBy != testUserID {
			t.Errorf("unexpected paid_by: %v", capturedPaidBy)
		}
		if len(audit.actions) != 1 || audit.actions[0] != "SET_PAYMENT_STATUS" {
			t.Errorf("expected SET_PAYMENT_STATUS audit entry, got %v", audit.actions)
		}
	})

	t.Run("skips the audit log on a no-op", func(t *testing.T) {
		paySvc := &mockPaymentService{
			setStatusFn: func(_, _ string, status models.PaymentStatus, _ *string) (*services.StatusChange, error) {
				return &services.StatusChange{Payment: &models.PaymentRecord{Status: status}, PreviousStatus: status}, nil
			},
		}
		audit := &mockAuditService{}
		r := setupPaymentRouter(NewPaymentHandler(paySvc, audit))

		rec := doRequest(r, "POST", "/payments/"+testPaymentID+"/status", `{"status":"pending"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if len(audit.actions) != 0 {
			t.Errorf("expected no audit entries, got %v", audit.actions)
		}
	})

	t.Run("returns 400 on invalid transition", func(t *testing.T) {
		paySvc := &mockPaymentService{
			setStatusFn: func(_, _ string, _ models.PaymentStatus, _ *string) (*services.StatusChange, error) {
				return nil, apperrors.ErrInvalidStatusTransition
			},
		}
		r := setupPaymentRouter(NewPaymentHandler(paySvc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/payments/"+testPaymentID+"/status", `{"status":"paying"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_STATUS_TRANSITION")
	})

	t.Run("returns 400 on unknown status", func(t *testing.T) {
		r := setupPaymentRouter(NewPaymentHandler(&mockPaymentService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/payments/"+testPaymentID+"/status", `{"status":"done"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

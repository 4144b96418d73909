package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "nestegg/internal/errors"
	"nestegg/internal/models"
	"nestegg/internal/pagination"
	"nestegg/internal/services"
)

func setupAuditRouter(handler *AuditHandler) *gin.Engine {
	r := gin.New()
	r.GET("/audit", injectUserID(testUserID), handler.GetHistory)
	r.GET("/anonymous/audit", handler.GetHistory)
	return r
}

func TestAuditHandler_GetHistory(t *testing.T) {
	t.Run("passes filters through", func(t *testing.T) {
		var gotFilter services.AuditFilter
		var gotPage pagination.PageRequest
		audit := &mockAuditService{
			historyFn: func(userID string, filter services.AuditFilter, page pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error) {
				if userID != testUserID {
					t.Errorf("unexpected user %q", userID)
				}
				gotFilter, gotPage = filter, page
				entry := models.AuditLog{Action: "MATERIALIZE_WEEK", ResourceType: "main_budget"}
				resp := pagination.NewPageResponse([]models.AuditLog{entry}, 2, 5, 6)
				return &resp, nil
			},
		}
		r := setupAuditRouter(NewAuditHandler(audit))

		path := "/audit?resource_type=weekly_budget&resource_id=" + strings.ToUpper(testBudgetID) + "&since=2026-10-01&page=2&page_size=5"
		rec := doRequest(r, "GET", path, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotFilter.ResourceType != "weekly_budget" || gotFilter.ResourceID != testBudgetID {
			t.Errorf("unexpected filter: %+v", gotFilter)
		}
		if gotFilter.Since == nil || gotFilter.Since.Format("2006-01-02") != "2026-10-01" {
			t.Errorf("since not parsed: %v", gotFilter.Since)
		}
		if gotPage.Page != 2 || gotPage.PageSize != 5 {
			t.Errorf("unexpected page: %+v", gotPage)
		}
		body := parseJSON(t, rec)
		if body["total_pages"] != float64(2) {
			t.Errorf("expected 2 pages, got %v", body["total_pages"])
		}
	})

	t.Run("rejects bad input", func(t *testing.T) {
		audit := &mockAuditService{}
		r := setupAuditRouter(NewAuditHandler(audit))

		for _, path := range []string{
			"/audit?resource_id=nope",
			"/audit?since=yesterday",
			"/audit?page_size=500",
		} {
			rec := doRequest(r, "GET", path, "")
			if rec.Code != http.StatusBadRequest {
				t.Errorf("%s: expected 400, got %d", path, rec.Code)
			}
		}
	})

	t.Run("requires a user", func(t *testing.T) {
		r := setupAuditRouter(NewAuditHandler(&mockAuditService{}))
		rec := doRequest(r, "GET", "/anonymous/audit", "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("maps service errors", func(t *testing.T) {
		audit := &mockAuditService{
			historyFn: func(string, services.AuditFilter, pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error) {
				return nil, apperrors.ErrInternalServer
			},
		}
		rec := doRequest(setupAuditRouter(NewAuditHandler(audit)), "GET", "/audit", "")
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
	})
}

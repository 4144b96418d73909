package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nestegg/internal/models"
	"nestegg/internal/money"
	"nestegg/internal/pagination"
	"nestegg/internal/testutil"
)

func TestAuditHistory(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	audit := NewAuditService(db)

	user := testutil.CreateTestUser(t, db)
	other := testutil.CreateTestUser(t, db)
	budgetID := "0190f3a0-0000-7000-8000-00000000b001"

	audit.Log(user.ID, "CREATE_WEEKLY_BUDGET", "weekly_budget", budgetID, "127.0.0.1",
		map[string]interface{}{"total_budget": money.FromMinor(45050)})
	audit.Log(user.ID, "SYNC_CATEGORIES", "weekly_budget", budgetID, "127.0.0.1", nil)
	audit.Log(user.ID, "CREATE_PAYMENT", "payment", "0190f3a0-0000-7000-8000-00000000c001", "127.0.0.1", nil)
	audit.Log(other.ID, "SYNC_CATEGORIES", "weekly_budget", budgetID, "10.0.0.1", nil)

	t.Run("own_entries_for_resource", func(t *testing.T) {
		page, err := audit.History(ctx, user.ID, AuditFilter{ResourceType: "weekly_budget", ResourceID: budgetID}, pagination.PageRequest{})
		require.NoError(t, err)
		require.Len(t, page.Data, 2)
		assert.EqualValues(t, 2, page.TotalItems)
		for _, entry := range page.Data {
			assert.Equal(t, user.ID, entry.UserID)
		}
	})

	t.Run("amounts_stored_as_decimals", func(t *testing.T) {
		var entry models.AuditLog
		require.NoError(t, db.Where("action = ?", "CREATE_WEEKLY_BUDGET").First(&entry).Error)
		assert.JSONEq(t, `{"total_budget":450.5}`, entry.Changes)

		require.NoError(t, db.Where("action = ? AND user_id = ?", "SYNC_CATEGORIES", user.ID).First(&entry).Error)
		assert.Empty(t, entry.Changes)
	})

	t.Run("since_filter", func(t *testing.T) {
		future := time.Now().Add(time.Hour)
		page, err := audit.History(ctx, user.ID, AuditFilter{Since: &future}, pagination.PageRequest{})
		require.NoError(t, err)
		assert.Empty(t, page.Data)
		assert.NotNil(t, page.Data)
	})

	t.Run("paged", func(t *testing.T) {
		page, err := audit.History(ctx, user.ID, AuditFilter{}, pagination.PageRequest{Page: 1, PageSize: 2})
		require.NoError(t, err)
		assert.Len(t, page.Data, 2)
		assert.EqualValues(t, 3, page.TotalItems)
		assert.Equal(t, 2, page.TotalPages)
	})
}

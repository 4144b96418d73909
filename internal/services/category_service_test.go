package services

import (
	"context"
	"testing"
	"time"

	"nestegg/internal/models"
	"nestegg/internal/money"
	"nestegg/internal/pagination"
	"nestegg/internal/testutil"
)

// missingID is a well-formed id that no fixture ever gets.
const missingID = "0190f3a0-0000-7000-8000-00000000ffff"

func TestCreateCategory(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		cat, err := svc.CreateCategory(context.Background(), user.ID, "Groceries", models.CategoryTypeExpense, "Food shopping", "cart", "#FF0000", nil)
		testutil.AssertNoError(t, err)

		if cat.ID == "" {
			t.Fatal("expected category ID to be assigned")
		}
		if cat.Name != "Groceries" {
			t.Errorf("expected name Groceries, got %s", cat.Name)
		}
		if cat.Type != models.CategoryTypeExpense {
			t.Errorf("expected type expense, got %s", cat.Type)
		}
		if cat.Description != "Food shopping" {
			t.Errorf("expected description 'Food shopping', got %s", cat.Description)
		}
	})

	t.Run("duplicate_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateCategory(context.Background(), user.ID, "Food", models.CategoryTypeExpense, "", "", "", nil)
		testutil.AssertNoError(t, err)

		_, err = svc.CreateCategory(context.Background(), user.ID, "Food", models.CategoryTypeExpense, "", "", "", nil)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("with_parent", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		parent, err := svc.CreateCategory(context.Background(), user.ID, "Food", models.CategoryTypeExpense, "", "", "", nil)
		testutil.AssertNoError(t, err)

		child, err := svc.CreateCategory(context.Background(), user.ID, "Snacks", models.CategoryTypeExpense, "", "", "", &parent.ID)
		testutil.AssertNoError(t, err)

		if child.ParentID == nil || *child.ParentID != parent.ID {
			t.Errorf("expected parent ID %s, got %v", parent.ID, child.ParentID)
		}
	})

	t.Run("invalid_parent", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		nonexistent := missingID
		_, err := svc.CreateCategory(context.Background(), user.ID, "Orphan", models.CategoryTypeExpense, "", "", "", &nonexistent)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})

	t.Run("empty_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateCategory(context.Background(), user.ID, "", models.CategoryTypeExpense, "", "", "", nil)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("empty_type_defaults_to_expense", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		cat, err := svc.CreateCategory(context.Background(), user.ID, "Misc", "", "", "", "", nil)
		testutil.AssertNoError(t, err)
		if cat.Type != models.CategoryTypeExpense {
			t.Errorf("expected type expense, got %s", cat.Type)
		}
	})

	t.Run("duplicate_name_different_users_allowed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)

		_, err := svc.CreateCategory(context.Background(), user1.ID, "Salary", models.CategoryTypeIncome, "", "", "", nil)
		testutil.AssertNoError(t, err)

		// Same name for different user should succeed
		_, err = svc.CreateCategory(context.Background(), user2.ID, "Salary", models.CategoryTypeIncome, "", "", "", nil)
		testutil.AssertNoError(t, err)
	})
}

func TestGetUserCategories(t *testing.T) {
	t.Run("returns_user_categories_only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)

		testutil.CreateTestCategory(t, db, user1.ID, models.CategoryTypeExpense)
		testutil.CreateTestCategory(t, db, user1.ID, models.CategoryTypeIncome)
		testutil.CreateTestCategory(t, db, user2.ID, models.CategoryTypeExpense)

		page := pagination.PageRequest{Page: 1, PageSize: 20}
		result, err := svc.GetUserCategories(context.Background(), user1.ID, page)
		testutil.AssertNoError(t, err)

		if result.TotalItems != 2 {
			t.Errorf("expected 2 categories for user1, got %d", result.TotalItems)
		}
		if len(result.Data) != 2 {
			t.Errorf("expected 2 categories in data, got %d", len(result.Data))
		}
	})

	t.Run("pagination", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		for i := 0; i < 5; i++ {
			testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)
		}

		page := pagination.PageRequest{Page: 1, PageSize: 2}
		result, err := svc.GetUserCategories(context.Background(), user.ID, page)
		testutil.AssertNoError(t, err)

		if result.TotalItems != 5 {
			t.Errorf("expected 5 total items, got %d", result.TotalItems)
		}
		if len(result.Data) != 2 {
			t.Errorf("expected 2 items on page 1, got %d", len(result.Data))
		}
		if result.TotalPages != 3 {
			t.Errorf("expected 3 total pages, got %d", result.TotalPages)
		}
	})
}

func TestGetUserCategoriesByType(t *testing.T) {
	t.Run("filters_correctly", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)
		testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)
		testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeIncome)

		page := pagination.PageRequest{Page: 1, PageSize: 20}
		result, err := svc.GetUserCategoriesByType(context.Background(), user.ID, models.CategoryTypeExpense, page)
		testutil.AssertNoError(t, err)

		if result.TotalItems != 2 {
			t.Errorf("expected 2 expense categories, got %d", result.TotalItems)
		}

		for _, cat := range result.Data {
			if cat.Type != models.CategoryTypeExpense {
				t.Errorf("expected type expense, got %s", cat.Type)
			}
		}
	})
}

func TestGetCategoryByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)
		created := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)

		cat, err := svc.GetCategoryByID(context.Background(), user.ID, created.ID)
		testutil.AssertNoError(t, err)

		if cat.ID != created.ID {
			t.Errorf("expected category ID %s, got %s", created.ID, cat.ID)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.GetCategoryByID(context.Background(), user.ID, missingID)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})

	t.Run("wrong_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user1.ID, models.CategoryTypeExpense)

		_, err := svc.GetCategoryByID(context.Background(), user2.ID, cat.ID)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})
}

func TestUpdateCategory(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)

		updated, err := svc.UpdateCategory(context.Background(), user.ID, cat.ID, "New Name", "New Desc", "star", "#00FF00", nil)
		testutil.AssertNoError(t, err)

		if updated.Name != "New Name" {
			t.Errorf("expected name 'New Name', got %s", updated.Name)
		}
		if updated.Description != "New Desc" {
			t.Errorf("expected description 'New Desc', got %s", updated.Description)
		}
		if updated.Icon != "star" {
			t.Errorf("expected icon 'star', got %s", updated.Icon)
		}
		if updated.Color != "#00FF00" {
			t.Errorf("expected color '#00FF00', got %s", updated.Color)
		}
	})

	t.Run("self_parent", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)

		_, err := svc.UpdateCategory(context.Background(), user.ID, cat.ID, "", "", "", "", &cat.ID)
		testutil.AssertAppError(t, err, "SELF_PARENT_CATEGORY")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.UpdateCategory(context.Background(), user.ID, missingID, "Name", "", "", "", nil)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})

	t.Run("with_valid_parent", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		parent := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)
		child := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)

		updated, err := svc.UpdateCategory(context.Background(), user.ID, child.ID, "", "", "", "", &parent.ID)
		testutil.AssertNoError(t, err)

		if updated.ParentID == nil || *updated.ParentID != parent.ID {
			t.Errorf("expected parent ID %s, got %v", parent.ID, updated.ParentID)
		}
	})
}

func TestUpdateCategory_DetachParent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewCategoryService(db)
	user := testutil.CreateTestUser(t, db)

	parent := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)
	child, err := svc.CreateCategory(context.Background(), user.ID, "Snacks", models.CategoryTypeExpense, "", "", "", &parent.ID)
	testutil.AssertNoError(t, err)

	empty := ""
	updated, err := svc.UpdateCategory(context.Background(), user.ID, child.ID, "", "", "", "", &empty)
	testutil.AssertNoError(t, err)
	if updated.ParentID != nil {
		t.Errorf("expected parent to be detached, got %v", *updated.ParentID)
	}
}

func TestDeleteCategory(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)

		err := svc.DeleteCategory(context.Background(), user.ID, cat.ID)
		testutil.AssertNoError(t, err)

		// Verify soft-deleted (not found via service)
		_, err = svc.GetCategoryByID(context.Background(), user.ID, cat.ID)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")

		// Verify still exists in DB with deleted_at set (soft delete)
		var count int64
		db.Unscoped().Model(&models.Category{}).Where("id = ?", cat.ID).Count(&count)
		if count != 1 {
			t.Errorf("expected soft-deleted record to exist in DB, got count %d", count)
		}
	})

	t.Run("has_children", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		parent := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)
		// Create child directly via DB with parent_id
		child := &models.Category{
			UserID:   user.ID,
			Name:     "Child Category",
			Type:     models.CategoryTypeExpense,
			ParentID: &parent.ID,
		}
		if err := db.Create(child).Error; err != nil {
			t.Fatalf("failed to create child category: %v", err)
		}

		err := svc.DeleteCategory(context.Background(), user.ID, parent.ID)
		testutil.AssertAppError(t, err, "CATEGORY_HAS_CHILDREN")
	})

	t.Run("in_use_by_payment", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)
		testutil.CreateTestPayment(t, db, user.ID, cat.ID, money.FromMajor(20), time.Date(2026, 10, 21, 0, 0, 0, 0, time.UTC))

		err := svc.DeleteCategory(context.Background(), user.ID, cat.ID)
		testutil.AssertAppError(t, err, "CATEGORY_IN_USE")
	})

	t.Run("in_use_by_ledger", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)
		budget := testutil.CreateTestWeeklyBudget(t, db, user.ID, time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), money.FromMajor(100))
		testutil.CreateTestLedgerEntry(t, db, budget.ID, cat.ID, money.FromMajor(40))

		err := svc.DeleteCategory(context.Background(), user.ID, cat.ID)
		testutil.AssertAppError(t, err, "CATEGORY_IN_USE")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		err := svc.DeleteCategory(context.Background(), user.ID, missingID)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})

	t.Run("wrong_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user1.ID, models.CategoryTypeExpense)

		err := svc.DeleteCategory(context.Background(), user2.ID, cat.ID)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})
}

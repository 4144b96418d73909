package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"nestegg/internal/models"
	"nestegg/internal/money"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	return CreateTestUserNamed(t, db, email, "", "")
}

// CreateTestUserNamed creates a user with the given email and name.
func CreateTestUserNamed(t *testing.T, db *gorm.DB, email, firstName, lastName string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:     email,
		Password:  string(hash),
		FirstName: firstName,
		LastName:  lastName,
		Currency:  "EUR",
		IsActive:  true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestHousehold creates a household owned by creatorID.
func CreateTestHousehold(t *testing.T, db *gorm.DB, creatorID string) *models.Household {
	t.Helper()

	household := &models.Household{
		Name:        fmt.Sprintf("Test Household %d", nextID()),
		CreatedByID: creatorID,
	}
	if err := db.Create(household).Error; err != nil {
		t.Fatalf("failed to create test household: %v", err)
	}
	return household
}

// AddTestMember adds a user to a household under a display name.
func AddTestMember(t *testing.T, db *gorm.DB, householdID, userID, displayName string) *models.HouseholdMember {
	t.Helper()

	member := &models.HouseholdMember{
		HouseholdID: householdID,
		UserID:      userID,
		DisplayName: displayName,
		Role:        "member",
	}
	if err := db.Create(member).Error; err != nil {
		t.Fatalf("failed to add test household member: %v", err)
	}
	return member
}

// CreateTestCategory creates a category of the given type.
func CreateTestCategory(t *testing.T, db *gorm.DB, userID string, categoryType models.CategoryType) *models.Category {
	t.Helper()

	category := &models.Category{
		UserID: userID,
		Name:   fmt.Sprintf("Test Category %d", nextID()),
		Type:   categoryType,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestPayment creates a pending one-off payment due on due.
func CreateTestPayment(t *testing.T, db *gorm.DB, userID, categoryID string, amount money.Amount, due time.Time) *models.PaymentRecord {
	t.Helper()

	record := &models.PaymentRecord{
		UserID:     userID,
		Name:       fmt.Sprintf("Test Payment %d", nextID()),
		Amount:     amount,
		CategoryID: categoryID,
		DueDate:    models.DateOnly(due),
		Frequency:  models.FrequencyOnce,
		Status:     models.PaymentStatusPending,
	}
	if err := db.Create(record).Error; err != nil {
		t.Fatalf("failed to create test payment: %v", err)
	}
	return record
}

// CreateTestWeeklyBudget creates a standalone weekly budget for the week
// containing weekOf.
func CreateTestWeeklyBudget(t *testing.T, db *gorm.DB, userID string, weekOf time.Time, total money.Amount) *models.WeeklyBudget {
	t.Helper()

	start, end := models.WeekWindow(weekOf)
	budget := &models.WeeklyBudget{
		UserID:      userID,
		Name:        fmt.Sprintf("Test Week %d", nextID()),
		WeekStart:   start,
		WeekEnd:     end,
		TotalBudget: total,
		DedupKey:    models.StandaloneDedupKey(userID, start),
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test weekly budget: %v", err)
	}
	return budget
}

// CreateTestLedgerEntry adds a category to a weekly budget.
func CreateTestLedgerEntry(t *testing.T, db *gorm.DB, budgetID, categoryID string, allocation money.Amount) *models.CategoryLedgerEntry {
	t.Helper()

	entry := &models.CategoryLedgerEntry{
		WeeklyBudgetID: budgetID,
		CategoryID:     categoryID,
		Allocation:     allocation,
	}
	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create test ledger entry: %v", err)
	}
	return entry
}

// CreateTestSnapshot stores a snapshot of record in entry.
func CreateTestSnapshot(t *testing.T, db *gorm.DB, entry *models.CategoryLedgerEntry, record *models.PaymentRecord) *models.PaymentSnapshot {
	t.Helper()

	snapshot := models.SnapshotOf(record, entry)
	if err := db.Create(&snapshot).Error; err != nil {
		t.Fatalf("failed to create test snapshot: %v", err)
	}
	return &snapshot
}

// CreateTestMainBudget creates an active monthly main budget for the month
// containing monthOf.
func CreateTestMainBudget(t *testing.T, db *gorm.DB, userID string, monthOf time.Time, total money.Amount) *models.MainBudget {
	t.Helper()

	start, end, _ := models.PeriodBounds(models.BudgetPeriodMonthly, monthOf, nil)
	month := int(start.Month())
	budget := &models.MainBudget{
		UserID:      userID,
		Name:        fmt.Sprintf("Test Main Budget %d", nextID()),
		PeriodType:  models.BudgetPeriodMonthly,
		StartDate:   start,
		EndDate:     end,
		Year:        start.Year(),
		Month:       &month,
		TotalBudget: total,
		Status:      models.MainBudgetStatusActive,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test main budget: %v", err)
	}
	return budget
}

package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"kakeibo/internal/models"

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

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestExpense creates an expense with the given amount and date.
func CreateTestExpense(t *testing.T, db *gorm.DB, amount float64, date string) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		Title:    fmt.Sprintf("Test Expense %d", nextID()),
		Amount:   amount,
		Date:     date,
		Category: "misc",
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestDebt creates a debt with the given amount, direction, and status.
func CreateTestDebt(t *testing.T, db *gorm.DB, amount float64, direction models.DebtDirection, status models.DebtStatus) *models.Debt {
	t.Helper()

	debt := &models.Debt{
		Name:      fmt.Sprintf("Counterparty %d", nextID()),
		Amount:    amount,
		Reason:    "lunch",
		Date:      "2026-01-15",
		Status:    status,
		Direction: direction,
	}
	if err := db.Create(debt).Error; err != nil {
		t.Fatalf("failed to create test debt: %v", err)
	}
	return debt
}

// CreateTestLimit creates the limit settings singleton with the given limits.
func CreateTestLimit(t *testing.T, db *gorm.DB, weekly, monthly float64) *models.LimitSettings {
	t.Helper()

	limit := &models.LimitSettings{
		ID:           models.LimitSettingsID,
		WeeklyLimit:  weekly,
		MonthlyLimit: monthly,
	}
	if err := db.Create(limit).Error; err != nil {
		t.Fatalf("failed to create test limit settings: %v", err)
	}
	return limit
}

package services

import (
	"time"

	"kakeibo/internal/models"
	"kakeibo/internal/pagination"
)

// ExpenseWindow selects a calendar-aligned date range when listing expenses.
type ExpenseWindow string

const (
	WindowDay   ExpenseWindow = "day"
	WindowWeek  ExpenseWindow = "week"
	WindowMonth ExpenseWindow = "month"
)

// ExpenseServicer defines the contract for expense-related business logic.
type ExpenseServicer interface {
	CreateExpense(title string, amount float64, date, category string) (*models.Expense, error)
	GetExpenses(page pagination.PageRequest, window *ExpenseWindow) (*pagination.PageResponse[models.Expense], error)
	GetExpenseByID(expenseID string) (*models.Expense, error)
	UpdateExpense(expenseID, title string, amount float64, date, category string) (*models.Expense, error)
	DeleteExpense(expenseID string) error
}

// DebtServicer defines the contract for debt-related business logic.
// Direction is fixed at creation; the only mutable field is the status.
type DebtServicer interface {
	CreateDebt(name string, amount float64, reason, date string, status models.DebtStatus, direction models.DebtDirection) (*models.Debt, error)
	GetDebts(page pagination.PageRequest, status *models.DebtStatus) (*pagination.PageResponse[models.Debt], error)
	GetDebtByID(debtID string) (*models.Debt, error)
	UpdateDebtStatus(debtID string, status models.DebtStatus) (*models.Debt, error)
	DeleteDebt(debtID string) error
}

// LimitServicer defines the contract for the limit settings singleton.
type LimitServicer interface {
	UpsertLimit(weeklyLimit, monthlyLimit float64) (*models.LimitSettings, error)
	GetLimit() (*models.LimitSettings, error)
}

// WarningLevel is the tiered budget warning derived from a spent/limit ratio.
type WarningLevel string

const (
	WarningNone   WarningLevel = "none"
	WarningYellow WarningLevel = "yellow"
	WarningRed    WarningLevel = "red"
)

// Summary is the derived spending report. It is recomputed from persisted
// state on every request and never stored.
type Summary struct {
	TotalToday     float64      `json:"total_today"`
	TotalWeek      float64      `json:"total_week"`
	TotalMonth     float64      `json:"total_month"`
	WeeklyLimit    float64      `json:"weekly_limit"`
	MonthlyLimit   float64      `json:"monthly_limit"`
	RemainingWeek  float64      `json:"remaining_week"`
	RemainingMonth float64      `json:"remaining_month"`
	MoneyGave      float64      `json:"money_gave"`
	MoneyOwe       float64      `json:"money_owe"`
	WeeklyWarning  WarningLevel `json:"weekly_warning"`
	MonthlyWarning WarningLevel `json:"monthly_warning"`
}

// SummaryServicer defines the contract for the summary and budget warning engine.
type SummaryServicer interface {
	GetSummary(now time.Time) (*Summary, error)
}

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, fullName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(userID string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
	StoreRefreshTokenHash(userID, tokenHash string) error
	GetRefreshTokenHash(userID string) (string, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}

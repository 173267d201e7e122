package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "kakeibo/internal/errors"
	"kakeibo/internal/models"
	"kakeibo/internal/pagination"
)

// expenseService handles expense-related business logic.
type expenseService struct {
	db *gorm.DB
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db}
}

// CreateExpense records a new expense.
func (s *expenseService) CreateExpense(title string, amount float64, date, category string) (*models.Expense, error) {
	if title == "" || date == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "title and date are required")
	}
	if amount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
	}

	expense := &models.Expense{
		Title:    title,
		Amount:   amount,
		Date:     date,
		Category: category,
	}

	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return expense, nil
}

// GetExpenses returns a paginated list of expenses, newest date first,
// optionally restricted to the current day, week, or month. The day window
// is an exact date match; week and month are inclusive from their boundary.
func (s *expenseService) GetExpenses(page pagination.PageRequest, window *ExpenseWindow) (*pagination.PageResponse[models.Expense], error) {
	page.Defaults()

	base := s.db.Model(&models.Expense{})
	if window != nil {
		today, weekStart, monthStart := expenseWindows(time.Now())
		switch *window {
		case WindowDay:
			base = base.Where("date = ?", today)
		case WindowWeek:
			base = base.Where("date >= ?", weekStart)
		case WindowMonth:
			base = base.Where("date >= ?", monthStart)
		default:
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "filter must be 'day', 'week' or 'month'")
		}
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC, created_at DESC").
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(expenses, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetExpenseByID returns a single expense by ID.
func (s *expenseService) GetExpenseByID(expenseID string) (*models.Expense, error) {
	var expense models.Expense
	if err := s.db.First(&expense, "id = ?", expenseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}

// UpdateExpense replaces all mutable fields of an expense. The identifier
// and creation timestamp never change.
func (s *expenseService) UpdateExpense(expenseID, title string, amount float64, date, category string) (*models.Expense, error) {
	expense, err := s.GetExpenseByID(expenseID)
	if err != nil {
		return nil, err
	}

	if amount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
	}

	updates := map[string]interface{}{
		"title":    title,
		"amount":   amount,
		"date":     date,
		"category": category,
	}
	if err := s.db.Model(expense).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return expense, nil
}

// DeleteExpense removes an expense permanently.
func (s *expenseService) DeleteExpense(expenseID string) error {
	expense, err := s.GetExpenseByID(expenseID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(expense).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

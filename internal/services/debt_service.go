package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "kakeibo/internal/errors"
	"kakeibo/internal/models"
	"kakeibo/internal/pagination"
)

// debtService handles debt-related business logic.
type debtService struct {
	db *gorm.DB
}

// NewDebtService creates a new DebtServicer.
func NewDebtService(db *gorm.DB) DebtServicer {
	return &debtService{db: db}
}

// CreateDebt records a new debt. An empty status defaults to pending.
func (s *debtService) CreateDebt(name string, amount float64, reason, date string, status models.DebtStatus, direction models.DebtDirection) (*models.Debt, error) {
	if name == "" || date == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name and date are required")
	}
	if amount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
	}
	if direction != models.DebtDirectionGave && direction != models.DebtDirectionOwe {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "direction must be 'gave' or 'owe'")
	}
	if status == "" {
		status = models.DebtStatusPending
	}
	if status != models.DebtStatusPending && status != models.DebtStatusPaid {
		return nil, apperrors.ErrInvalidDebtState
	}

	debt := &models.Debt{
		Name:      name,
		Amount:    amount,
		Reason:    reason,
		Date:      date,
		Status:    status,
		Direction: direction,
	}

	if err := s.db.Create(debt).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return debt, nil
}

// GetDebts returns a paginated list of debts, newest date first, optionally
// filtered by status.
func (s *debtService) GetDebts(page pagination.PageRequest, status *models.DebtStatus) (*pagination.PageResponse[models.Debt], error) {
	page.Defaults()

	base := s.db.Model(&models.Debt{})
	if status != nil {
		base = base.Where("status = ?", *status)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var debts []models.Debt
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC, created_at DESC").
		Find(&debts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(debts, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetDebtByID returns a single debt by ID.
func (s *debtService) GetDebtByID(debtID string) (*models.Debt, error) {
	var debt models.Debt
	if err := s.db.First(&debt, "id = ?", debtID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDebtNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &debt, nil
}

// UpdateDebtStatus sets the status of a debt. This is the only update path;
// the direction and amount are immutable after creation.
func (s *debtService) UpdateDebtStatus(debtID string, status models.DebtStatus) (*models.Debt, error) {
	if status != models.DebtStatusPending && status != models.DebtStatusPaid {
		return nil, apperrors.ErrInvalidDebtState
	}

	debt, err := s.GetDebtByID(debtID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(debt).Update("status", status).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return debt, nil
}

// DeleteDebt removes a debt permanently.
func (s *debtService) DeleteDebt(debtID string) error {
	debt, err := s.GetDebtByID(debtID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(debt).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

package services

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "kakeibo/internal/errors"
	"kakeibo/internal/models"
)

// limitService manages the limit settings singleton.
type limitService struct {
	db *gorm.DB
}

// NewLimitService creates a new LimitServicer.
func NewLimitService(db *gorm.DB) LimitServicer {
	return &limitService{db: db}
}

// UpsertLimit creates or replaces the limit settings. The row is keyed on
// a fixed identifier so at most one ever exists.
func (s *limitService) UpsertLimit(weeklyLimit, monthlyLimit float64) (*models.LimitSettings, error) {
	if weeklyLimit < 0 || monthlyLimit < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "limits must not be negative")
	}

	limit := &models.LimitSettings{
		ID:           models.LimitSettingsID,
		WeeklyLimit:  weeklyLimit,
		MonthlyLimit: monthlyLimit,
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"weekly_limit", "monthly_limit", "updated_at"}),
	}).Create(limit).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return limit, nil
}

// GetLimit returns the limit settings. A missing row is not an error: it
// reads as zero limits, which never produce a warning.
func (s *limitService) GetLimit() (*models.LimitSettings, error) {
	var limit models.LimitSettings
	err := s.db.First(&limit, "id = ?", models.LimitSettingsID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.LimitSettings{ID: models.LimitSettingsID}, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &limit, nil
}

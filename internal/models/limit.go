package models

import "time"

// LimitSettingsID is the fixed primary key of the limit settings singleton.
// Creation upserts on this key so at most one row ever exists.
const LimitSettingsID = "limit_settings"

// LimitSettings holds the configured weekly and monthly spending ceilings.
// Absence of the row is a valid state and is read as both limits being zero.
type LimitSettings struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	WeeklyLimit  float64   `gorm:"not null" json:"weekly_limit"`
	MonthlyLimit float64   `gorm:"not null" json:"monthly_limit"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

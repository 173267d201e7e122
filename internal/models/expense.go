package models

// Expense represents a single spending record. Date is the user-selected
// calendar date as a fixed-width YYYY-MM-DD string, which is what all
// window comparisons run against; CreatedAt is the server-side instant.
type Expense struct {
	Base
	Title    string  `gorm:"not null" json:"title"`
	Amount   float64 `gorm:"not null" json:"amount"`
	Date     string  `gorm:"size:10;not null;index" json:"date"`
	Category string  `json:"category"`
}

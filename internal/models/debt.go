package models

// DebtStatus represents the repayment state of a debt
type DebtStatus string

const (
	DebtStatusPending DebtStatus = "pending"
	DebtStatusPaid    DebtStatus = "paid"
)

// DebtDirection represents which way the money went
type DebtDirection string

const (
	// DebtDirectionGave is money lent out, an asset owed to the user.
	DebtDirectionGave DebtDirection = "gave"
	// DebtDirectionOwe is money borrowed, a liability.
	DebtDirectionOwe DebtDirection = "owe"
)

// Debt represents an informal debt with a counterparty. Direction is
// immutable after creation; the update path only ever touches Status.
type Debt struct {
	Base
	Name      string        `gorm:"not null" json:"name"`
	Amount    float64       `gorm:"not null" json:"amount"`
	Reason    string        `json:"reason"`
	Date      string        `gorm:"size:10;not null;index" json:"date"`
	Status    DebtStatus    `gorm:"not null;default:pending" json:"status"`
	Direction DebtDirection `gorm:"not null" json:"direction"`
}

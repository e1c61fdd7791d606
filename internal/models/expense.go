package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseReason is the category an expense is attributed to.
type ExpenseReason string

const (
	ExpenseReasonMaintenance ExpenseReason = "Maintenance"
	ExpenseReasonUtilities   ExpenseReason = "Utilities"
	ExpenseReasonSupplies    ExpenseReason = "Supplies"
	ExpenseReasonRepair      ExpenseReason = "Repair"
	ExpenseReasonOther       ExpenseReason = "Other"
)

// ExpenseReasons returns every accepted reason in display order.
func ExpenseReasons() []ExpenseReason {
	return []ExpenseReason{
		ExpenseReasonMaintenance,
		ExpenseReasonUtilities,
		ExpenseReasonSupplies,
		ExpenseReasonRepair,
		ExpenseReasonOther,
	}
}

// Valid reports whether r is one of the accepted reasons.
func (r ExpenseReason) Valid() bool {
	switch r {
	case ExpenseReasonMaintenance,
		ExpenseReasonUtilities,
		ExpenseReasonSupplies,
		ExpenseReasonRepair,
		ExpenseReasonOther:
		return true
	}
	return false
}

// Expense is money spent on the property. Rows are never updated in place.
type Expense struct {
	ID     uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Amount decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Reason ExpenseReason   `gorm:"type:varchar(32);not null" json:"reason"`
	Date   time.Time       `gorm:"type:date;not null" json:"date"`
}

// TableName pins the table name used by the SQL migrations.
func (Expense) TableName() string {
	return "expenses"
}

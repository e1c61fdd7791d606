package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/GCF14/JJ-Apartments-Property-Management-System/internal/models"
)

// SummaryFilter holds optional filter parameters for summarising expenses.
// From and To are inclusive calendar dates.
type SummaryFilter struct {
	From   *time.Time
	To     *time.Time
	Reason *models.ExpenseReason
}

// ReasonTotal is the spending attributed to a single reason.
type ReasonTotal struct {
	Reason models.ExpenseReason `json:"reason"`
	Count  int                  `json:"count"`
	Total  decimal.Decimal      `json:"total"`
}

// ExpenseSummary aggregates expenses per reason.
type ExpenseSummary struct {
	Items      []ReasonTotal   `json:"items"`
	Count      int             `json:"count"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

// ExpenseServicer defines the contract for expense-related business logic.
type ExpenseServicer interface {
	ListExpenses(ctx context.Context) ([]models.Expense, error)
	AddExpense(ctx context.Context, expense *models.Expense) (int64, error)
	DeleteExpense(ctx context.Context, id uint) (int64, error)
	SummarizeExpenses(ctx context.Context, filter SummaryFilter) (*ExpenseSummary, error)
	Reasons() []models.ExpenseReason
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]any)
}

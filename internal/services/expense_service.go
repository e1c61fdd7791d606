package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	apperrors "github.com/GCF14/JJ-Apartments-Property-Management-System/internal/errors"
	"github.com/GCF14/JJ-Apartments-Property-Management-System/internal/models"
	"github.com/GCF14/JJ-Apartments-Property-Management-System/internal/store"
)

// expenseService validates expenses before handing them to the store.
// Store errors are returned untouched.
type expenseService struct {
	store store.ExpenseStore
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(s store.ExpenseStore) ExpenseServicer {
	return &expenseService{store: s}
}

// ListExpenses returns every expense ordered by id.
func (s *expenseService) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	return s.store.FindAll(ctx)
}

// AddExpense validates and persists a new expense, assigning its ID.
// The reason is checked before the amount.
func (s *expenseService) AddExpense(ctx context.Context, expense *models.Expense) (int64, error) {
	if err := validateExpense(expense); err != nil {
		return 0, err
	}

	expense.ID = 0
	expense.Date = truncateToDate(expense.Date)

	return s.store.Insert(ctx, expense)
}

// DeleteExpense removes an expense. Deleting a missing id returns 0 rows.
func (s *expenseService) DeleteExpense(ctx context.Context, id uint) (int64, error) {
	return s.store.Delete(ctx, id)
}

// SummarizeExpenses totals expenses per reason within the filter. Every
// reason in scope is reported, including those with no expenses.
func (s *expenseService) SummarizeExpenses(ctx context.Context, filter SummaryFilter) (*ExpenseSummary, error) {
	reasons := models.ExpenseReasons()
	if filter.Reason != nil {
		if !filter.Reason.Valid() {
			return nil, invalidReason(*filter.Reason)
		}
		reasons = []models.ExpenseReason{*filter.Reason}
	}
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "from must not be after to")
	}

	expenses, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	index := make(map[models.ExpenseReason]int, len(reasons))
	summary := &ExpenseSummary{Items: make([]ReasonTotal, len(reasons)), GrandTotal: decimal.Zero}
	for i, r := range reasons {
		index[r] = i
		summary.Items[i] = ReasonTotal{Reason: r, Total: decimal.Zero}
	}

	for _, e := range expenses {
		i, ok := index[e.Reason]
		if !ok || !inRange(e.Date, filter.From, filter.To) {
			continue
		}
		summary.Items[i].Count++
		summary.Items[i].Total = summary.Items[i].Total.Add(e.Amount)
		summary.Count++
		summary.GrandTotal = summary.GrandTotal.Add(e.Amount)
	}

	return summary, nil
}

// Reasons returns the accepted expense reasons in display order.
func (s *expenseService) Reasons() []models.ExpenseReason {
	return models.ExpenseReasons()
}

const amountScale = 2

func validateExpense(expense *models.Expense) error {
	if !expense.Reason.Valid() {
		return invalidReason(expense.Reason)
	}
	// amounts are stored with two decimal places
	if expense.Amount.Round(amountScale).Sign() <= 0 {
		return apperrors.ErrInvalidAmount
	}
	if !expense.Amount.Equal(expense.Amount.Round(amountScale)) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Amount cannot have more than 2 decimal places")
	}
	return nil
}

func invalidReason(r models.ExpenseReason) error {
	return apperrors.WithMessage(apperrors.ErrInvalidReason, "Invalid reason "+string(r))
}

// truncateToDate drops the time of day, keeping the calendar date as written.
func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func inRange(date time.Time, from, to *time.Time) bool {
	day := truncateToDate(date)
	if from != nil && day.Before(truncateToDate(*from)) {
		return false
	}
	if to != nil && day.After(truncateToDate(*to)) {
		return false
	}
	return true
}

package testutil

import (
	"testing"
	"time"

	"github.com/GCF14/JJ-Apartments-Property-Management-System/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Date returns midnight UTC of the given day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// CreateTestExpense inserts an expense directly, bypassing validation.
func CreateTestExpense(t *testing.T, db *gorm.DB, amount string, reason models.ExpenseReason, date time.Time) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		Amount: decimal.RequireFromString(amount),
		Reason: reason,
		Date:   date,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CountExpenses returns the number of rows in the expenses table.
func CountExpenses(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var count int64
	if err := db.Model(&models.Expense{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count expenses: %v", err)
	}
	return count
}

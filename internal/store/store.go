// Package store persists expenses. Implementations return database errors
// exactly as the driver reports them and never validate their input.
package store

import (
	"context"

	"github.com/GCF14/JJ-Apartments-Property-Management-System/internal/models"
)

// ExpenseStore is the data access boundary for the expenses table.
type ExpenseStore interface {
	// FindAll returns every expense ordered by id.
	FindAll(ctx context.Context) ([]models.Expense, error)
	// Insert persists expense, sets its ID and returns the rows affected.
	Insert(ctx context.Context, expense *models.Expense) (int64, error)
	// Delete removes the expense with the given id and returns the rows
	// affected. A missing id yields 0 and no error.
	Delete(ctx context.Context, id uint) (int64, error)
}

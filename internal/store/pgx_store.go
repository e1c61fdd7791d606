package store

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/GCF14/JJ-Apartments-Property-Management-System/internal/models"
)

const (
	selectExpensesSQL = `SELECT id, amount, reason, date FROM expenses ORDER BY id`
	insertExpenseSQL  = `INSERT INTO expenses (amount, reason, date) VALUES ($1, $2, $3) RETURNING id`
	deleteExpenseSQL  = `DELETE FROM expenses WHERE id = $1`
)

// Querier is the subset of pgxpool.Pool, pgx.Conn and pgx.Tx used by the pgx store.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type pgxStore struct {
	q Querier
}

// NewPgxStore creates an ExpenseStore issuing plain SQL through pgx.
func NewPgxStore(q Querier) ExpenseStore {
	return &pgxStore{q: q}
}

func (s *pgxStore) FindAll(ctx context.Context) ([]models.Expense, error) {
	rows, err := s.q.Query(ctx, selectExpensesSQL)
	if err != nil {
		return nil, err
	}

	expenses, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Expense, error) {
		var (
			e  models.Expense
			id int64
		)
		if err := row.Scan(&id, &e.Amount, &e.Reason, &e.Date); err != nil {
			return e, err
		}
		e.ID = uint(id)
		return e, nil
	})
	if err != nil {
		return nil, err
	}
	if expenses == nil {
		expenses = []models.Expense{}
	}
	return expenses, nil
}

func (s *pgxStore) Insert(ctx context.Context, expense *models.Expense) (int64, error) {
	var id int64
	if err := s.q.QueryRow(ctx, insertExpenseSQL, expense.Amount, string(expense.Reason), expense.Date).Scan(&id); err != nil {
		return 0, err
	}
	expense.ID = uint(id)
	return 1, nil
}

func (s *pgxStore) Delete(ctx context.Context, id uint) (int64, error) {
	tag, err := s.q.Exec(ctx, deleteExpenseSQL, int64(id))
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

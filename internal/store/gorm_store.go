package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/GCF14/JJ-Apartments-Property-Management-System/internal/models"
)

type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates an ExpenseStore backed by GORM.
func NewGormStore(db *gorm.DB) ExpenseStore {
	return &gormStore{db: db}
}

func (s *gormStore) FindAll(ctx context.Context) ([]models.Expense, error) {
	expenses := []models.Expense{}
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

func (s *gormStore) Insert(ctx context.Context, expense *models.Expense) (int64, error) {
	result := s.db.WithContext(ctx).Create(expense)
	return result.RowsAffected, result.Error
}

func (s *gormStore) Delete(ctx context.Context, id uint) (int64, error) {
	result := s.db.WithContext(ctx).Delete(&models.Expense{}, id)
	return result.RowsAffected, result.Error
}

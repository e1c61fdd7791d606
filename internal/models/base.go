package models

import (
	"time"

	"github.com/GCF14/JJ-Apartments-Property-Management-System/internal/uuid"

	"gorm.io/gorm"
)

// Base contains common columns for append-only bookkeeping tables
type Base struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}

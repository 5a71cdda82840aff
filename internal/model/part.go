package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Part represents a catalog item available for purchase.
type Part struct {
	ID           uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	UserID       uuid.UUID       `json:"user" gorm:"type:char(36);not null;index"` // creating admin
	Name         string          `json:"name" gorm:"size:255;not null"`
	Brand        string          `json:"brand" gorm:"size:255"`
	Category     string          `json:"category" gorm:"size:100;not null;index"`
	ModelNumber  string          `json:"modelNumber" gorm:"size:100;not null;index"`
	Description  string          `json:"description" gorm:"type:text"`
	Price        decimal.Decimal `json:"price" gorm:"type:decimal(20,2);not null;default:0"`
	CountInStock int             `json:"countInStock" gorm:"not null;default:0"`
	Image        string          `json:"image" gorm:"size:512"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt  `json:"-" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Part) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ShippingAddress is the free-form destination captured with an order.
type ShippingAddress struct {
	Address    string `json:"address" gorm:"size:255;not null"`
	City       string `json:"city" gorm:"size:100;not null"`
	PostalCode string `json:"postalCode" gorm:"size:20;not null"`
	Country    string `json:"country" gorm:"size:100;not null"`
}

// OrderItem is a per-order snapshot of one purchased part. Name, price
// and image are copied from the catalog at order time; later catalog
// edits never alter a placed order.
type OrderItem struct {
	ID      uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	OrderID uuid.UUID       `json:"-" gorm:"type:char(36);not null;index"`
	PartID  uuid.UUID       `json:"part" gorm:"type:char(36);not null;index"`
	Name    string          `json:"name" gorm:"size:255;not null"`
	Qty     int             `json:"qty" gorm:"not null"`
	Price   decimal.Decimal `json:"price" gorm:"type:decimal(20,2);not null"`
	Image   string          `json:"image" gorm:"size:512"`
}

// BeforeCreate sets UUID before creating the record.
func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// Order is an immutable purchase record with payment and delivery
// flags. PaidAt and DeliveredAt are set at most once.
type Order struct {
	ID              uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	UserID          uuid.UUID       `json:"user" gorm:"type:char(36);not null;index"`
	OrderItems      []OrderItem     `json:"orderItems" gorm:"foreignKey:OrderID"`
	ShippingAddress ShippingAddress `json:"shippingAddress" gorm:"embedded;embeddedPrefix:shipping_"`
	PaymentMethod   string          `json:"paymentMethod" gorm:"size:100;not null"`
	ItemsPrice      decimal.Decimal `json:"itemsPrice" gorm:"type:decimal(20,2);not null"`
	TaxPrice        decimal.Decimal `json:"taxPrice" gorm:"type:decimal(20,2);not null;default:0"`
	ShippingPrice   decimal.Decimal `json:"shippingPrice" gorm:"type:decimal(20,2);not null;default:0"`
	TotalPrice      decimal.Decimal `json:"totalPrice" gorm:"type:decimal(20,2);not null"`
	IsPaid          bool            `json:"isPaid" gorm:"not null;default:false;index"`
	PaidAt          *time.Time      `json:"paidAt,omitempty"`
	IsDelivered     bool            `json:"isDelivered" gorm:"not null;default:false;index"`
	DeliveredAt     *time.Time      `json:"deliveredAt,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt  `json:"-" gorm:"index"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

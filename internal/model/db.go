package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID        string `gorm:"primaryKey;size:64;not null"`
	Email     string `gorm:"size:255;uniqueIndex;not null"`
	Name      string `gorm:"size:255"`
	CreatedAt time.Time
}

type Product struct {
	ID    string          `gorm:"primaryKey;size:64;not null"` // product sku
	Name  string          `gorm:"size:255;not null"`
	Price decimal.Decimal `gorm:"type:decimal(12,2);not null"` // unit price in baht
}

type Order struct {
	ID       string      `gorm:"primaryKey;size:64;not null"`
	Customer string      `gorm:"size:255;not null"`
	Status   OrderStatus `gorm:"size:32;index;not null"`

	// FK → users.id, nil for guest checkouts
	UserID *string `gorm:"size:64;index"`
	User   *User

	Items []*OrderItem

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

type OrderItem struct {
	ID uint `gorm:"primaryKey"`
	// FK → orders.id
	OrderID string `gorm:"size:64;index;not null"`
	// FK → products.id
	ProductID string `gorm:"size:64;index;not null"`
	Product   *Product
	Quantity  int32 `gorm:"not null"`
}

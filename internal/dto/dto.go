package dto

import (
	"shop-admin/internal/model"
	"time"

	"github.com/shopspring/decimal"
)

type AdminOrderLine struct {
	ProductName string
	Quantity    int32
	Amount      decimal.Decimal // unit price × quantity
}

type AdminOrderRow struct {
	ID        string
	Customer  string
	UserEmail string // empty when the order has no linked user
	CreatedAt time.Time
	Status    model.OrderStatus
	Lines     []AdminOrderLine
	Total     decimal.Decimal
}

// AdminOrdersPage is everything the admin orders template needs.
type AdminOrdersPage struct {
	Query    string
	Status   string
	Statuses []model.OrderStatus
	Rows     []AdminOrderRow
}

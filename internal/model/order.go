package model

import "strings"

type OrderStatus string

const (
	OrderStatusAwaitingPayment OrderStatus = "รอชำระเงิน"
	OrderStatusPaid            OrderStatus = "ชำระแล้ว"
	OrderStatusShipped         OrderStatus = "จัดส่งแล้ว"
)

// OrderStatuses is the fixed set offered by the admin status selector.
var OrderStatuses = []OrderStatus{
	OrderStatusAwaitingPayment,
	OrderStatusPaid,
	OrderStatusShipped,
}

// OrderFilter narrows the admin order listing. A nil field means "no
// restriction". Unknown statuses are not rejected, they just match nothing.
type OrderFilter struct {
	StatusEquals *OrderStatus
	SearchText   *string
}

// NewOrderFilter builds a filter from raw query-string values.
func NewOrderFilter(status, q string) OrderFilter {
	var f OrderFilter

	if status != "" {
		s := OrderStatus(status)
		f.StatusEquals = &s
	}

	if term := strings.TrimSpace(q); term != "" {
		f.SearchText = &term
	}

	return f
}

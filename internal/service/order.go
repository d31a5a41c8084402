package service

import (
	"context"
	"fmt"
	"shop-admin/internal/dto"
	"shop-admin/internal/model"
	"shop-admin/internal/repository"

	"github.com/shopspring/decimal"
)

type AdminOrderService interface {
	ListOrders(ctx context.Context, filter model.OrderFilter) ([]dto.AdminOrderRow, error)
}

type adminOrderServiceImpl struct {
	orderRepo repository.OrderRepository
}

func NewAdminOrderService(
	orderRepo repository.OrderRepository,
) AdminOrderService {
	return &adminOrderServiceImpl{
		orderRepo: orderRepo,
	}
}

func (s *adminOrderServiceImpl) ListOrders(ctx context.Context, filter model.OrderFilter) ([]dto.AdminOrderRow, error) {
	orders, err := s.orderRepo.FindWithItemsAndProducts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list admin orders: %w", err)
	}

	rows := make([]dto.AdminOrderRow, 0, len(orders))
	for _, order := range orders {
		rows = append(rows, toAdminOrderRow(order))
	}

	return rows, nil
}

func toAdminOrderRow(order *model.Order) dto.AdminOrderRow {
	row := dto.AdminOrderRow{
		ID:        order.ID,
		Customer:  order.Customer,
		CreatedAt: order.CreatedAt,
		Status:    order.Status,
		Lines:     make([]dto.AdminOrderLine, 0, len(order.Items)),
		Total:     decimal.Zero,
	}
	if order.User != nil {
		row.UserEmail = order.User.Email
	}

	for _, item := range order.Items {
		line := dto.AdminOrderLine{Quantity: item.Quantity, Amount: decimal.Zero}
		// a dangling product reference contributes nothing to the total
		if item.Product != nil {
			line.ProductName = item.Product.Name
			line.Amount = item.Product.Price.Mul(decimal.NewFromInt32(item.Quantity))
		}
		row.Lines = append(row.Lines, line)
		row.Total = row.Total.Add(line.Amount)
	}

	return row
}

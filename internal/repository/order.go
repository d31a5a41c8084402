package repository

import (
	"context"
	"fmt"
	"shop-admin/internal/model"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// likeEscape is the ESCAPE character for search patterns. '!' is used instead
// of a backslash because mysql and sqlite disagree on backslash literals.
const likeEscape = "!"

var likeEscaper = strings.NewReplacer(
	likeEscape, likeEscape+likeEscape,
	"%", likeEscape+"%",
	"_", likeEscape+"_",
)

type OrderRepository interface {
	// FindWithItemsAndProducts returns every order matching filter, newest
	// first, with User, Items and Items.Product populated.
	FindWithItemsAndProducts(ctx context.Context, filter model.OrderFilter) ([]*model.Order, error)
	Seed(ctx context.Context) error
}

type orderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepoImpl{
		db: db,
	}
}

func (r *orderRepoImpl) FindWithItemsAndProducts(ctx context.Context, filter model.OrderFilter) ([]*model.Order, error) {
	var orders []*model.Order
	err := r.db.WithContext(ctx).
		Joins("User").
		Preload("Items", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("id")
		}).
		Preload("Items.Product").
		Scopes(OrderFilterScope(filter)).
		Order(clause.OrderByColumn{
			Column: clause.Column{Table: clause.CurrentTable, Name: "created_at"},
			Desc:   true,
		}).
		Find(&orders).Error

	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}

	return orders, nil
}

// OrderFilterScope maps filter to query conditions. It expects the User
// association to be joined so the email clause can reference it.
func OrderFilterScope(filter model.OrderFilter) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if filter.StatusEquals != nil {
			tx = tx.Where(statusEquals(tx, string(*filter.StatusEquals)))
		}

		if filter.SearchText != nil && *filter.SearchText != "" {
			pattern := "%" + likeEscaper.Replace(*filter.SearchText) + "%"
			tx = tx.Where(clause.Or(
				containsFold(clause.Column{Table: clause.CurrentTable, Name: "id"}, pattern),
				containsFold(clause.Column{Table: clause.CurrentTable, Name: "customer"}, pattern),
				// NULL for orders without a user, so the clause never matches them
				containsFold(clause.Column{Table: "User", Name: "email"}, pattern),
			))
		}

		return tx
	}
}

// statusEquals compares byte-wise. mysql columns use a case-insensitive
// collation by default; sqlite already compares with BINARY.
func statusEquals(tx *gorm.DB, status string) clause.Expression {
	column := clause.Column{Table: clause.CurrentTable, Name: "status"}
	if tx.Dialector.Name() == "mysql" {
		return clause.Expr{
			SQL:  "CAST(? AS BINARY) = CAST(? AS BINARY)",
			Vars: []interface{}{column, status},
		}
	}
	return clause.Eq{Column: column, Value: status}
}

// containsFold lowers both sides in SQL so the column and the term are folded
// by the same function. The sqlite client registers a Unicode-aware lower().
func containsFold(column clause.Column, pattern string) clause.Expression {
	return clause.Expr{
		SQL:  "LOWER(?) LIKE LOWER(?) ESCAPE '" + likeEscape + "'",
		Vars: []interface{}{column, pattern},
	}
}

func (r *orderRepoImpl) Seed(ctx context.Context) error {
	adminID := demoAdminUserID
	now := time.Now()

	orders := []*model.Order{
		{
			ID:        "ord_1001",
			Customer:  "สมชาย ใจดี",
			Status:    model.OrderStatusAwaitingPayment,
			CreatedAt: now.Add(-48 * time.Hour),
		},
		{
			ID:        "ord_1002",
			Customer:  "Suda Wong",
			Status:    model.OrderStatusPaid,
			UserID:    &adminID,
			CreatedAt: now.Add(-24 * time.Hour),
		},
		{
			ID:        "ord_1003",
			Customer:  "Anan Srisuk",
			Status:    model.OrderStatusShipped,
			CreatedAt: now.Add(-2 * time.Hour),
		},
	}

	items := []*model.OrderItem{
		{OrderID: "ord_1001", ProductID: "tee_white", Quantity: 2},
		{OrderID: "ord_1002", ProductID: "mug_logo", Quantity: 1},
		{OrderID: "ord_1002", ProductID: "tee_white", Quantity: 3},
		{OrderID: "ord_1003", ProductID: "tote_bag", Quantity: 4},
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&orders)
		if result.Error != nil {
			return result.Error
		}
		// orders already present means items were seeded with them
		if result.RowsAffected == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}

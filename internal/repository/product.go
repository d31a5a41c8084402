package repository

import (
	"context"
	"shop-admin/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository interface {
	Seed(ctx context.Context) error
}

type productRepoImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepoImpl{
		db: db,
	}
}

func (r *productRepoImpl) Seed(ctx context.Context) error {
	products := []model.Product{
		{ID: "tee_white", Name: "เสื้อยืดสีขาว", Price: decimal.RequireFromString("250")},
		{ID: "mug_logo", Name: "แก้วมัคโลโก้", Price: decimal.RequireFromString("189.50")},
		{ID: "tote_bag", Name: "Tote bag", Price: decimal.RequireFromString("99")},
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&products).Error
}

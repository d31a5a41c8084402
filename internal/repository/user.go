package repository

import (
	"context"
	"shop-admin/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const demoAdminUserID = "usr_admin"

type UserRepository interface {
	Seed(ctx context.Context, adminEmail string) error
}

type userRepoImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepoImpl{
		db: db,
	}
}

// Seed creates the demo user that owns the seeded paid order.
func (r *userRepoImpl) Seed(ctx context.Context, adminEmail string) error {
	user := model.User{ID: demoAdminUserID, Email: adminEmail, Name: "Shop Admin"}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&user).Error
}

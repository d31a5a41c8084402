package main

import (
	"context"
	"shop-admin/internal/repository"

	"gorm.io/gorm"
)

// seedDemoData fills an empty database for local runs. The first admin email
// becomes the demo user so the email search has something to match.
func seedDemoData(ctx context.Context, db *gorm.DB, adminEmails []string) error {
	adminEmail := "admin@shop.co"
	if len(adminEmails) > 0 {
		adminEmail = adminEmails[0]
	}

	if err := repository.NewUserRepository(db).Seed(ctx, adminEmail); err != nil {
		return err
	}
	if err := repository.NewProductRepository(db).Seed(ctx); err != nil {
		return err
	}
	return repository.NewOrderRepository(db).Seed(ctx)
}

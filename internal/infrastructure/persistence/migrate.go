package persistence

import (
	"errors"

	"github.com/salon/backend/internal/domain/catalog"
	"github.com/salon/backend/internal/domain/credit"
	"github.com/salon/backend/internal/domain/finance"
	"github.com/salon/backend/internal/domain/identity"
	"github.com/salon/backend/internal/domain/partner"
	"github.com/salon/backend/internal/domain/sales"
	"github.com/salon/backend/internal/domain/scheduling"
	"gorm.io/gorm"
)

// Migrate creates or updates the database schema for all entities
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&catalog.Category{},
		&catalog.Product{},
		&partner.Client{},
		&partner.Staff{},
		&sales.Sale{},
		&sales.SaleItem{},
		&credit.Credit{},
		&credit.Payment{},
		&finance.Expense{},
		&finance.PettyCashMovement{},
		&scheduling.Appointment{},
		&identity.User{},
	)
}

// SeedAdminUser creates the initial admin account if no user exists yet
func SeedAdminUser(db *gorm.DB, username, password string) error {
	var count int64
	if err := db.Model(&identity.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if username == "" || password == "" {
		return errors.New("initial admin username and password must not be empty")
	}

	admin, err := identity.NewUser(username, password, "Administrator", identity.UserRoleAdmin)
	if err != nil {
		return err
	}
	return db.Create(admin).Error
}

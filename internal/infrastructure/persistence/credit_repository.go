package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/salon/backend/internal/domain/credit"
	"github.com/salon/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormCreditRepository implements credit.Repository using GORM
type GormCreditRepository struct {
	db *gorm.DB
}

// NewGormCreditRepository creates a new GormCreditRepository
func NewGormCreditRepository(db *gorm.DB) *GormCreditRepository {
	return &GormCreditRepository{db: db}
}

// FindByID loads a credit with its payments
func (r *GormCreditRepository) FindByID(ctx context.Context, id uuid.UUID) (*credit.Credit, error) {
	var c credit.Credit
	if err := r.db.WithContext(ctx).
		Preload("Payments").
		First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// FindAll loads credits with their payments, applying the filter
func (r *GormCreditRepository) FindAll(ctx context.Context, filter shared.Filter) ([]credit.Credit, error) {
	var credits []credit.Credit
	query := applyFilter(r.db.WithContext(ctx).Model(&credit.Credit{}).Preload("Payments"), filter)

	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		query = query.Where("client_name LIKE ? OR product_name LIKE ?", search, search)
	}

	if err := query.Find(&credits).Error; err != nil {
		return nil, err
	}
	return credits, nil
}

// FindByStatus loads credits in the given status
func (r *GormCreditRepository) FindByStatus(ctx context.Context, status credit.CreditStatus) ([]credit.Credit, error) {
	var credits []credit.Credit
	if err := r.db.WithContext(ctx).
		Preload("Payments").
		Where("status = ?", status).
		Order("due_date ASC").
		Find(&credits).Error; err != nil {
		return nil, err
	}
	return credits, nil
}

// Count counts credits matching the filter
func (r *GormCreditRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applyCountFilter(r.db.WithContext(ctx).Model(&credit.Credit{}), filter)

	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		query = query.Where("client_name LIKE ? OR product_name LIKE ?", search, search)
	}

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save persists the credit and all its payments
func (r *GormCreditRepository) Save(ctx context.Context, c *credit.Credit) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Payments").Save(c).Error; err != nil {
			return err
		}
		for i := range c.Payments {
			if err := tx.Save(&c.Payments[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes the credit and cascades to its payments
func (r *GormCreditRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("credit_id = ?", id).Delete(&credit.Payment{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&credit.Credit{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

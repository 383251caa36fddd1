package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/salon/backend/internal/domain/sales"
	"github.com/salon/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormSaleRepository implements sales.Repository using GORM
type GormSaleRepository struct {
	db *gorm.DB
}

// NewGormSaleRepository creates a new GormSaleRepository
func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

// FindByID finds a sale by its ID, loading its items
func (r *GormSaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Sale, error) {
	var sale sales.Sale
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&sale, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &sale, nil
}

// FindAll finds sales with filtering and pagination
func (r *GormSaleRepository) FindAll(ctx context.Context, filter shared.Filter) ([]sales.Sale, error) {
	var saleList []sales.Sale
	query := applyFilter(r.db.WithContext(ctx).Model(&sales.Sale{}).Preload("Items"), filter)

	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		query = query.Where("client_name LIKE ? OR staff_name LIKE ?", search, search)
	}

	if err := query.Find(&saleList).Error; err != nil {
		return nil, err
	}
	return saleList, nil
}

// FindByStaff finds every sale belonging to a staff member
func (r *GormSaleRepository) FindByStaff(ctx context.Context, staffID uuid.UUID) ([]sales.Sale, error) {
	var saleList []sales.Sale
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("staff_id = ?", staffID).
		Order("created_at DESC").
		Find(&saleList).Error; err != nil {
		return nil, err
	}
	return saleList, nil
}

// FindCompletedByStaff finds a staff member's completed sales
func (r *GormSaleRepository) FindCompletedByStaff(ctx context.Context, staffID uuid.UUID) ([]sales.Sale, error) {
	var saleList []sales.Sale
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("staff_id = ? AND status = ?", staffID, sales.SaleStatusCompleted).
		Order("created_at DESC").
		Find(&saleList).Error; err != nil {
		return nil, err
	}
	return saleList, nil
}

// Count counts sales matching the filter
func (r *GormSaleRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applyCountFilter(r.db.WithContext(ctx).Model(&sales.Sale{}), filter)

	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		query = query.Where("client_name LIKE ? OR staff_name LIKE ?", search, search)
	}

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save persists the sale header and all its items
func (r *GormSaleRepository) Save(ctx context.Context, sale *sales.Sale) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Save(sale).Error; err != nil {
			return err
		}
		for i := range sale.Items {
			if err := tx.Save(&sale.Items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

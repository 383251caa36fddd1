package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/salon/backend/internal/domain/catalog"
	"github.com/salon/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormCategoryRepository implements catalog.CategoryRepository using GORM
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GormCategoryRepository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

func (r *GormCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	var category catalog.Category
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *GormCategoryRepository) FindByName(ctx context.Context, name string) (*catalog.Category, error) {
	var category catalog.Category
	if err := r.db.WithContext(ctx).First(&category, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *GormCategoryRepository) FindAll(ctx context.Context) ([]catalog.Category, error) {
	var categories []catalog.Category
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *GormCategoryRepository) Save(ctx context.Context, category *catalog.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *GormCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Category{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

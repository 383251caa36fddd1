package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/salon/backend/internal/domain/finance"
	"github.com/salon/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormExpenseRepository implements finance.ExpenseRepository using GORM
type GormExpenseRepository struct {
	db *gorm.DB
}

// NewGormExpenseRepository creates a new GormExpenseRepository
func NewGormExpenseRepository(db *gorm.DB) *GormExpenseRepository {
	return &GormExpenseRepository{db: db}
}

func (r *GormExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Expense, error) {
	var expense finance.Expense
	if err := r.db.WithContext(ctx).First(&expense, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &expense, nil
}

func (r *GormExpenseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]finance.Expense, error) {
	var expenses []finance.Expense
	query := applyFilter(r.db.WithContext(ctx).Model(&finance.Expense{}), filter)

	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		query = query.Where("category LIKE ? OR description LIKE ?", search, search)
	}

	if err := query.Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

// FindByDateRange loads expenses with date in [from, to]
func (r *GormExpenseRepository) FindByDateRange(ctx context.Context, from, to time.Time) ([]finance.Expense, error) {
	var expenses []finance.Expense
	if err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", from, to).
		Order("date DESC").
		Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *GormExpenseRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applyCountFilter(r.db.WithContext(ctx).Model(&finance.Expense{}), filter)

	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		query = query.Where("category LIKE ? OR description LIKE ?", search, search)
	}

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormExpenseRepository) Save(ctx context.Context, expense *finance.Expense) error {
	return r.db.WithContext(ctx).Save(expense).Error
}

func (r *GormExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&finance.Expense{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GormPettyCashRepository implements finance.PettyCashRepository using GORM
type GormPettyCashRepository struct {
	db *gorm.DB
}

// NewGormPettyCashRepository creates a new GormPettyCashRepository
func NewGormPettyCashRepository(db *gorm.DB) *GormPettyCashRepository {
	return &GormPettyCashRepository{db: db}
}

func (r *GormPettyCashRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.PettyCashMovement, error) {
	var movement finance.PettyCashMovement
	if err := r.db.WithContext(ctx).First(&movement, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &movement, nil
}

func (r *GormPettyCashRepository) FindAll(ctx context.Context, filter shared.Filter) ([]finance.PettyCashMovement, error) {
	var movements []finance.PettyCashMovement
	query := applyFilter(r.db.WithContext(ctx).Model(&finance.PettyCashMovement{}), filter)

	if filter.Search != "" {
		query = query.Where("description LIKE ?", "%"+filter.Search+"%")
	}

	if err := query.Find(&movements).Error; err != nil {
		return nil, err
	}
	return movements, nil
}

func (r *GormPettyCashRepository) FindByDateRange(ctx context.Context, from, to time.Time) ([]finance.PettyCashMovement, error) {
	var movements []finance.PettyCashMovement
	if err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", from, to).
		Order("date DESC").
		Find(&movements).Error; err != nil {
		return nil, err
	}
	return movements, nil
}

func (r *GormPettyCashRepository) Save(ctx context.Context, movement *finance.PettyCashMovement) error {
	return r.db.WithContext(ctx).Save(movement).Error
}

func (r *GormPettyCashRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&finance.PettyCashMovement{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteAll clears the movement history (drawer reset)
func (r *GormPettyCashRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&finance.PettyCashMovement{}).Error
}

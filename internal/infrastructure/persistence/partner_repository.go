package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/salon/backend/internal/domain/partner"
	"github.com/salon/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormClientRepository implements partner.ClientRepository using GORM
type GormClientRepository struct {
	db *gorm.DB
}

// NewGormClientRepository creates a new GormClientRepository
func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

func (r *GormClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Client, error) {
	var client partner.Client
	if err := r.db.WithContext(ctx).First(&client, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &client, nil
}

func (r *GormClientRepository) FindByCode(ctx context.Context, code string) (*partner.Client, error) {
	var client partner.Client
	if err := r.db.WithContext(ctx).First(&client, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &client, nil
}

func (r *GormClientRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Client, error) {
	var clients []partner.Client
	query := applyFilter(r.db.WithContext(ctx).Model(&partner.Client{}), filter)

	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR code LIKE ? OR phone LIKE ?", search, search, search)
	}

	if err := query.Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *GormClientRepository) Save(ctx context.Context, client *partner.Client) error {
	return r.db.WithContext(ctx).Save(client).Error
}

func (r *GormClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&partner.Client{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GormStaffRepository implements partner.StaffRepository using GORM
type GormStaffRepository struct {
	db *gorm.DB
}

// NewGormStaffRepository creates a new GormStaffRepository
func NewGormStaffRepository(db *gorm.DB) *GormStaffRepository {
	return &GormStaffRepository{db: db}
}

func (r *GormStaffRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Staff, error) {
	var staff partner.Staff
	if err := r.db.WithContext(ctx).First(&staff, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &staff, nil
}

func (r *GormStaffRepository) FindByCode(ctx context.Context, code string) (*partner.Staff, error) {
	var staff partner.Staff
	if err := r.db.WithContext(ctx).First(&staff, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &staff, nil
}

func (r *GormStaffRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Staff, error) {
	var staffList []partner.Staff
	query := applyFilter(r.db.WithContext(ctx).Model(&partner.Staff{}), filter)

	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR code LIKE ?", search, search)
	}

	if err := query.Find(&staffList).Error; err != nil {
		return nil, err
	}
	return staffList, nil
}

func (r *GormStaffRepository) Save(ctx context.Context, staff *partner.Staff) error {
	return r.db.WithContext(ctx).Save(staff).Error
}

func (r *GormStaffRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&partner.Staff{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

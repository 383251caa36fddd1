package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/salon/backend/internal/domain/scheduling"
	"github.com/salon/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormAppointmentRepository implements scheduling.Repository using GORM
type GormAppointmentRepository struct {
	db *gorm.DB
}

// NewGormAppointmentRepository creates a new GormAppointmentRepository
func NewGormAppointmentRepository(db *gorm.DB) *GormAppointmentRepository {
	return &GormAppointmentRepository{db: db}
}

func (r *GormAppointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*scheduling.Appointment, error) {
	var appointment scheduling.Appointment
	if err := r.db.WithContext(ctx).First(&appointment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *GormAppointmentRepository) FindAll(ctx context.Context, filter shared.Filter) ([]scheduling.Appointment, error) {
	var appointments []scheduling.Appointment
	query := applyFilter(r.db.WithContext(ctx).Model(&scheduling.Appointment{}), filter)

	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		query = query.Where("client_name LIKE ? OR service LIKE ?", search, search)
	}

	if err := query.Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

// FindByDateRange loads appointments scheduled within [from, to]
func (r *GormAppointmentRepository) FindByDateRange(ctx context.Context, from, to time.Time) ([]scheduling.Appointment, error) {
	var appointments []scheduling.Appointment
	if err := r.db.WithContext(ctx).
		Where("scheduled_at >= ? AND scheduled_at <= ?", from, to).
		Order("scheduled_at ASC").
		Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *GormAppointmentRepository) FindByStaff(ctx context.Context, staffID uuid.UUID) ([]scheduling.Appointment, error) {
	var appointments []scheduling.Appointment
	if err := r.db.WithContext(ctx).
		Where("staff_id = ?", staffID).
		Order("scheduled_at ASC").
		Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *GormAppointmentRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applyCountFilter(r.db.WithContext(ctx).Model(&scheduling.Appointment{}), filter)

	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		query = query.Where("client_name LIKE ? OR service LIKE ?", search, search)
	}

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormAppointmentRepository) Save(ctx context.Context, appointment *scheduling.Appointment) error {
	return r.db.WithContext(ctx).Save(appointment).Error
}

func (r *GormAppointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&scheduling.Appointment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

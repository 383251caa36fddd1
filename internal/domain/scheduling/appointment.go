package scheduling

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/salon/backend/internal/domain/shared"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "SCHEDULED"
	AppointmentStatusCompleted AppointmentStatus = "COMPLETED"
	AppointmentStatusCancelled AppointmentStatus = "CANCELLED"
)

// IsValid checks if the status is a valid AppointmentStatus
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of AppointmentStatus
func (s AppointmentStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if a transition to the target status is allowed
func (s AppointmentStatus) CanTransitionTo(target AppointmentStatus) bool {
	if s != AppointmentStatusScheduled {
		return false
	}
	return target == AppointmentStatusCompleted || target == AppointmentStatusCancelled
}

// Appointment represents a scheduled salon visit
type Appointment struct {
	shared.BaseEntity
	ClientName  string            `gorm:"size:200;not null"`
	ClientPhone string            `gorm:"size:30"`
	StaffID     uuid.UUID         `gorm:"type:uuid;not null;index"`
	StaffName   string            `gorm:"size:200;not null"`
	Service     string            `gorm:"size:200;not null"`
	ScheduledAt time.Time         `gorm:"not null;index"`
	Status      AppointmentStatus `gorm:"size:20;not null;index"`
	Notes       string            `gorm:"size:500"`
}

// TableName returns the table name for GORM
func (Appointment) TableName() string {
	return "appointments"
}

// NewAppointment schedules a new appointment
func NewAppointment(clientName, clientPhone string, staffID uuid.UUID, staffName, service string, scheduledAt time.Time) (*Appointment, error) {
	if clientName == "" {
		return nil, shared.NewDomainError("INVALID_CLIENT_NAME", "Client name cannot be empty")
	}
	if staffID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_STAFF", "Staff ID cannot be empty")
	}
	if service == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Service cannot be empty")
	}
	if scheduledAt.IsZero() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Scheduled time is required")
	}

	return &Appointment{
		BaseEntity:  shared.NewBaseEntity(),
		ClientName:  clientName,
		ClientPhone: clientPhone,
		StaffID:     staffID,
		StaffName:   staffName,
		Service:     service,
		ScheduledAt: scheduledAt,
		Status:      AppointmentStatusScheduled,
	}, nil
}

// Reschedule moves the appointment to a new time
func (a *Appointment) Reschedule(scheduledAt time.Time) error {
	if a.Status != AppointmentStatusScheduled {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot reschedule appointment in %s status", a.Status))
	}
	if scheduledAt.IsZero() {
		return shared.NewDomainError("VALIDATION_ERROR", "Scheduled time is required")
	}
	a.ScheduledAt = scheduledAt
	a.UpdatedAt = time.Now()
	return nil
}

// Complete marks the appointment as completed
func (a *Appointment) Complete() error {
	return a.transitionTo(AppointmentStatusCompleted)
}

// Cancel marks the appointment as cancelled
func (a *Appointment) Cancel() error {
	return a.transitionTo(AppointmentStatusCancelled)
}

func (a *Appointment) transitionTo(target AppointmentStatus) error {
	if !a.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot transition appointment from %s to %s", a.Status, target))
	}
	a.Status = target
	a.UpdatedAt = time.Now()
	return nil
}

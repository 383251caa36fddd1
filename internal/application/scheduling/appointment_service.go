package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/salon/backend/internal/domain/partner"
	"github.com/salon/backend/internal/domain/scheduling"
	"github.com/salon/backend/internal/domain/shared"
)

// CreateAppointmentRequest represents a request to book an appointment
type CreateAppointmentRequest struct {
	ClientName  string    `json:"client_name" binding:"required,min=1,max=200"`
	ClientPhone string    `json:"client_phone" binding:"max=30"`
	StaffID     uuid.UUID `json:"staff_id" binding:"required"`
	Service     string    `json:"service" binding:"required,min=1,max=200"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
	Notes       string    `json:"notes" binding:"max=500"`
}

// RescheduleRequest represents a request to move an appointment
type RescheduleRequest struct {
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
}

// AppointmentResponse represents an appointment in API responses
type AppointmentResponse struct {
	ID          uuid.UUID `json:"id"`
	ClientName  string    `json:"client_name"`
	ClientPhone string    `json:"client_phone,omitempty"`
	StaffID     uuid.UUID `json:"staff_id"`
	StaffName   string    `json:"staff_name"`
	Service     string    `json:"service"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToAppointmentResponse converts an Appointment to a response DTO
func ToAppointmentResponse(a *scheduling.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:          a.ID,
		ClientName:  a.ClientName,
		ClientPhone: a.ClientPhone,
		StaffID:     a.StaffID,
		StaffName:   a.StaffName,
		Service:     a.Service,
		ScheduledAt: a.ScheduledAt,
		Status:      a.Status.String(),
		Notes:       a.Notes,
		CreatedAt:   a.CreatedAt,
	}
}

// AppointmentService handles appointment scheduling
type AppointmentService struct {
	appointmentRepo scheduling.Repository
	staffRepo       partner.StaffRepository
}

// NewAppointmentService creates a new AppointmentService
func NewAppointmentService(appointmentRepo scheduling.Repository, staffRepo partner.StaffRepository) *AppointmentService {
	return &AppointmentService{
		appointmentRepo: appointmentRepo,
		staffRepo:       staffRepo,
	}
}

// Create books an appointment with the staff member
func (s *AppointmentService) Create(ctx context.Context, req CreateAppointmentRequest) (*AppointmentResponse, error) {
	staff, err := s.staffRepo.FindByID(ctx, req.StaffID)
	if err != nil {
		return nil, err
	}

	appointment, err := scheduling.NewAppointment(req.ClientName, req.ClientPhone,
		staff.ID, staff.Name, req.Service, req.ScheduledAt)
	if err != nil {
		return nil, err
	}
	appointment.Notes = req.Notes

	if err := s.appointmentRepo.Save(ctx, appointment); err != nil {
		return nil, err
	}

	response := ToAppointmentResponse(appointment)
	return &response, nil
}

// GetByID retrieves an appointment by ID
func (s *AppointmentService) GetByID(ctx context.Context, id uuid.UUID) (*AppointmentResponse, error) {
	appointment, err := s.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToAppointmentResponse(appointment)
	return &response, nil
}

// List retrieves appointments in a date window, or all when unbounded
func (s *AppointmentService) List(ctx context.Context, from, to time.Time) ([]AppointmentResponse, error) {
	var (
		appointments []scheduling.Appointment
		err          error
	)
	if from.IsZero() && to.IsZero() {
		appointments, err = s.appointmentRepo.FindAll(ctx, shared.Filter{})
	} else {
		appointments, err = s.appointmentRepo.FindByDateRange(ctx, from, to)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = ToAppointmentResponse(&appointments[i])
	}
	return responses, nil
}

// Reschedule moves an appointment to a new time
func (s *AppointmentService) Reschedule(ctx context.Context, id uuid.UUID, req RescheduleRequest) (*AppointmentResponse, error) {
	appointment, err := s.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := appointment.Reschedule(req.ScheduledAt); err != nil {
		return nil, err
	}

	if err := s.appointmentRepo.Save(ctx, appointment); err != nil {
		return nil, err
	}

	response := ToAppointmentResponse(appointment)
	return &response, nil
}

// Complete marks an appointment as completed
func (s *AppointmentService) Complete(ctx context.Context, id uuid.UUID) (*AppointmentResponse, error) {
	return s.transition(ctx, id, (*scheduling.Appointment).Complete)
}

// Cancel marks an appointment as cancelled
func (s *AppointmentService) Cancel(ctx context.Context, id uuid.UUID) (*AppointmentResponse, error) {
	return s.transition(ctx, id, (*scheduling.Appointment).Cancel)
}

func (s *AppointmentService) transition(ctx context.Context, id uuid.UUID, fn func(*scheduling.Appointment) error) (*AppointmentResponse, error) {
	appointment, err := s.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := fn(appointment); err != nil {
		return nil, err
	}

	if err := s.appointmentRepo.Save(ctx, appointment); err != nil {
		return nil, err
	}

	response := ToAppointmentResponse(appointment)
	return &response, nil
}

// Delete removes an appointment record
func (s *AppointmentService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.appointmentRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.appointmentRepo.Delete(ctx, id)
}

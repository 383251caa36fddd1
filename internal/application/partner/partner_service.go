package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/salon/backend/internal/domain/partner"
	"github.com/salon/backend/internal/domain/shared"
)

// ClientService handles client registry operations
type ClientService struct {
	clientRepo partner.ClientRepository
}

// NewClientService creates a new ClientService
func NewClientService(clientRepo partner.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

// Create registers a new client
func (s *ClientService) Create(ctx context.Context, req CreateClientRequest) (*ClientResponse, error) {
	if existing, err := s.clientRepo.FindByCode(ctx, req.Code); err == nil && existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A client with this code already exists")
	}

	client, err := partner.NewClient(req.Code, req.Name, req.Phone)
	if err != nil {
		return nil, err
	}
	if req.Email != "" {
		client.Email = req.Email
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// GetByID retrieves a client by ID
func (s *ClientService) GetByID(ctx context.Context, id uuid.UUID) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToClientResponse(client)
	return &response, nil
}

// List retrieves clients with pagination
func (s *ClientService) List(ctx context.Context, filter shared.Filter) ([]ClientResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	clients, err := s.clientRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]ClientResponse, len(clients))
	for i := range clients {
		responses[i] = ToClientResponse(&clients[i])
	}
	return responses, nil
}

// Update modifies client details
func (s *ClientService) Update(ctx context.Context, id uuid.UUID, req UpdateClientRequest) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := client.Update(req.Name, req.Phone, req.Email, client.Notes); err != nil {
		return nil, err
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// Delete removes a client
func (s *ClientService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.clientRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.clientRepo.Delete(ctx, id)
}

// StaffService handles staff registry operations
type StaffService struct {
	staffRepo partner.StaffRepository
}

// NewStaffService creates a new StaffService
func NewStaffService(staffRepo partner.StaffRepository) *StaffService {
	return &StaffService{staffRepo: staffRepo}
}

// Create registers a new staff member
func (s *StaffService) Create(ctx context.Context, req CreateStaffRequest) (*StaffResponse, error) {
	if existing, err := s.staffRepo.FindByCode(ctx, req.Code); err == nil && existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A staff member with this code already exists")
	}

	staff, err := partner.NewStaff(req.Code, req.Name, req.Phone)
	if err != nil {
		return nil, err
	}

	if err := s.staffRepo.Save(ctx, staff); err != nil {
		return nil, err
	}

	response := ToStaffResponse(staff)
	return &response, nil
}

// GetByID retrieves a staff member by ID
func (s *StaffService) GetByID(ctx context.Context, id uuid.UUID) (*StaffResponse, error) {
	staff, err := s.staffRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToStaffResponse(staff)
	return &response, nil
}

// List retrieves staff members with pagination
func (s *StaffService) List(ctx context.Context, filter shared.Filter) ([]StaffResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	staffList, err := s.staffRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]StaffResponse, len(staffList))
	for i := range staffList {
		responses[i] = ToStaffResponse(&staffList[i])
	}
	return responses, nil
}

// Update modifies staff details
func (s *StaffService) Update(ctx context.Context, id uuid.UUID, req UpdateStaffRequest) (*StaffResponse, error) {
	staff, err := s.staffRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := staff.Update(req.Name, req.Phone); err != nil {
		return nil, err
	}

	if err := s.staffRepo.Save(ctx, staff); err != nil {
		return nil, err
	}

	response := ToStaffResponse(staff)
	return &response, nil
}

// Delete removes a staff member
func (s *StaffService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.staffRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.staffRepo.Delete(ctx, id)
}

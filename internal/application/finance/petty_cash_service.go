package finance

import (
	"context"

	"github.com/google/uuid"
	"github.com/salon/backend/internal/domain/finance"
	"github.com/salon/backend/internal/domain/shared"
	"github.com/salon/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// PettyCashService handles cash-drawer movements. The drawer balance is
// derived from the movement history; an expense that would overdraw the
// drawer is rejected.
type PettyCashService struct {
	movementRepo finance.PettyCashRepository
}

// NewPettyCashService creates a new PettyCashService
func NewPettyCashService(movementRepo finance.PettyCashRepository) *PettyCashService {
	return &PettyCashService{movementRepo: movementRepo}
}

// AddMovement records an income or expense movement
func (s *PettyCashService) AddMovement(ctx context.Context, req CreateMovementRequest) (*MovementResponse, error) {
	movementType := finance.MovementType(req.Type)
	movement, err := finance.NewPettyCashMovement(req.Date, movementType,
		valueobject.NewMoneyMXN(req.Amount), req.Description)
	if err != nil {
		return nil, err
	}

	if movementType == finance.MovementTypeExpense {
		balance, err := s.balance(ctx)
		if err != nil {
			return nil, err
		}
		if req.Amount.GreaterThan(balance) {
			return nil, shared.NewDomainError("INSUFFICIENT_FUNDS", "Movement would overdraw the petty cash drawer")
		}
	}

	if err := s.movementRepo.Save(ctx, movement); err != nil {
		return nil, err
	}

	response := ToMovementResponse(movement)
	return &response, nil
}

// Status returns the drawer balance with its full movement history
func (s *PettyCashService) Status(ctx context.Context) (*PettyCashStatus, error) {
	movements, err := s.movementRepo.FindAll(ctx, shared.Filter{})
	if err != nil {
		return nil, err
	}

	status := &PettyCashStatus{
		Movements: make([]MovementResponse, len(movements)),
	}
	for i := range movements {
		m := &movements[i]
		status.Movements[i] = ToMovementResponse(m)
		if m.Type == finance.MovementTypeIncome {
			status.TotalIncome = status.TotalIncome.Add(m.Amount)
		} else {
			status.TotalExpense = status.TotalExpense.Add(m.Amount)
		}
	}
	status.Balance = finance.PettyCashBalance(movements)

	return status, nil
}

// DeleteMovement removes a movement. Removing an income that other
// expenses already consumed would leave the history overdrawn, so that
// is rejected.
func (s *PettyCashService) DeleteMovement(ctx context.Context, id uuid.UUID) error {
	movement, err := s.movementRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if movement.Type == finance.MovementTypeIncome {
		balance, err := s.balance(ctx)
		if err != nil {
			return err
		}
		if balance.Sub(movement.Amount).LessThan(decimal.Zero) {
			return shared.NewDomainError("INSUFFICIENT_FUNDS", "Removing this income would overdraw the petty cash drawer")
		}
	}

	return s.movementRepo.Delete(ctx, id)
}

// Clear wipes the movement history, resetting the drawer to zero
func (s *PettyCashService) Clear(ctx context.Context) error {
	return s.movementRepo.DeleteAll(ctx)
}

func (s *PettyCashService) balance(ctx context.Context) (decimal.Decimal, error) {
	movements, err := s.movementRepo.FindAll(ctx, shared.Filter{})
	if err != nil {
		return decimal.Zero, err
	}
	return finance.PettyCashBalance(movements), nil
}

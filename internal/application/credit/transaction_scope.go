package credit

import (
	"context"

	"github.com/salon/backend/internal/domain/credit"
)

// TransactionScope provides transactional access to the credit ledger.
// A payment insert and the stored balance update must land together, so
// every mutation runs inside a scope.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to credit-ledger repositories
// sharing the same underlying database transaction.
type TransactionalRepositories interface {
	// CreditRepo returns the credit repository scoped to the current transaction
	CreditRepo() credit.Repository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. Useful for tests.
type NoOpTransactionScope struct {
	creditRepo credit.Repository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repository.
func NewNoOpTransactionScope(creditRepo credit.Repository) *NoOpTransactionScope {
	return &NoOpTransactionScope{creditRepo: creditRepo}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// CreditRepo returns the credit repository.
func (s *NoOpTransactionScope) CreditRepo() credit.Repository {
	return s.creditRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)

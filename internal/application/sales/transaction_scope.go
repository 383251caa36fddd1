package sales

import (
	"context"

	"github.com/salon/backend/internal/domain/catalog"
	"github.com/salon/backend/internal/domain/sales"
)

// TransactionScope provides transactional access to the repositories the
// sales engine mutates together. Everything executed within a scope is
// committed or rolled back as one unit: a sale header is never persisted
// without its stock decrements, and vice versa.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to sales-engine repositories
// sharing the same underlying database transaction.
type TransactionalRepositories interface {
	// SaleRepo returns the sale repository scoped to the current transaction
	SaleRepo() sales.Repository
	// ProductRepo returns the product repository scoped to the current transaction
	ProductRepo() catalog.ProductRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. Useful for tests.
type NoOpTransactionScope struct {
	saleRepo    sales.Repository
	productRepo catalog.ProductRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(saleRepo sales.Repository, productRepo catalog.ProductRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		saleRepo:    saleRepo,
		productRepo: productRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// SaleRepo returns the sale repository.
func (s *NoOpTransactionScope) SaleRepo() sales.Repository {
	return s.saleRepo
}

// ProductRepo returns the product repository.
func (s *NoOpTransactionScope) ProductRepo() catalog.ProductRepository {
	return s.productRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)

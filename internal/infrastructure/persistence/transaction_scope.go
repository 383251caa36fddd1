package persistence

import (
	"context"

	"github.com/salon/backend/internal/application/credit"
	"github.com/salon/backend/internal/application/sales"
	"github.com/salon/backend/internal/domain/catalog"
	creditdomain "github.com/salon/backend/internal/domain/credit"
	salesdomain "github.com/salon/backend/internal/domain/sales"
	"gorm.io/gorm"
)

// GormSalesTransactionScope implements sales.TransactionScope over a
// database transaction. Repositories handed to the callback share the
// transaction, so the sale header, its items and the stock decrements
// commit or roll back together.
type GormSalesTransactionScope struct {
	db *gorm.DB
}

// NewGormSalesTransactionScope creates a new GormSalesTransactionScope
func NewGormSalesTransactionScope(db *gorm.DB) *GormSalesTransactionScope {
	return &GormSalesTransactionScope{db: db}
}

// Execute runs fn inside a database transaction
func (s *GormSalesTransactionScope) Execute(ctx context.Context, fn func(repos sales.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormSalesRepositories{tx: tx})
	})
}

type gormSalesRepositories struct {
	tx *gorm.DB
}

func (r *gormSalesRepositories) SaleRepo() salesdomain.Repository {
	return NewGormSaleRepository(r.tx)
}

func (r *gormSalesRepositories) ProductRepo() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

var _ sales.TransactionScope = (*GormSalesTransactionScope)(nil)
var _ sales.TransactionalRepositories = (*gormSalesRepositories)(nil)

// GormCreditTransactionScope implements credit.TransactionScope over a
// database transaction, so a payment insert and the balance update on
// its credit land atomically.
type GormCreditTransactionScope struct {
	db *gorm.DB
}

// NewGormCreditTransactionScope creates a new GormCreditTransactionScope
func NewGormCreditTransactionScope(db *gorm.DB) *GormCreditTransactionScope {
	return &GormCreditTransactionScope{db: db}
}

// Execute runs fn inside a database transaction
func (s *GormCreditTransactionScope) Execute(ctx context.Context, fn func(repos credit.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormCreditRepositories{tx: tx})
	})
}

type gormCreditRepositories struct {
	tx *gorm.DB
}

func (r *gormCreditRepositories) CreditRepo() creditdomain.Repository {
	return NewGormCreditRepository(r.tx)
}

var _ credit.TransactionScope = (*GormCreditTransactionScope)(nil)
var _ credit.TransactionalRepositories = (*gormCreditRepositories)(nil)

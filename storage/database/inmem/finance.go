package inmemdb

import (
	"context"

	"github.com/trezcool/masomo/core/finance"
)

type financeRepository struct {
	db *DB
}

func NewFinanceRepository(db *DB) finance.Repository {
	return &financeRepository{db: db}
}

func (repo *financeRepository) QueryAllTransactions(_ context.Context) ([]finance.Transaction, error) {
	return repo.db.transactions.all(), nil
}

func (repo *financeRepository) GetTransactionByID(_ context.Context, id string) (finance.Transaction, error) {
	if rec, ok := repo.db.transactions.get(id); ok {
		return rec, nil
	}
	return finance.Transaction{}, finance.ErrTransactionNotFound
}

func (repo *financeRepository) QueryAllBudgets(_ context.Context) ([]finance.Budget, error) {
	return repo.db.budgets.all(), nil
}

func (repo *financeRepository) GetBudgetByID(_ context.Context, id string) (finance.Budget, error) {
	if rec, ok := repo.db.budgets.get(id); ok {
		return rec, nil
	}
	return finance.Budget{}, finance.ErrBudgetNotFound
}

func (repo *financeRepository) QueryAllInvoices(_ context.Context) ([]finance.Invoice, error) {
	return repo.db.invoices.all(), nil
}

func (repo *financeRepository) GetInvoiceByID(_ context.Context, id string) (finance.Invoice, error) {
	if rec, ok := repo.db.invoices.get(id); ok {
		return rec, nil
	}
	return finance.Invoice{}, finance.ErrInvoiceNotFound
}

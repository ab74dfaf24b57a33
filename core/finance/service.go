package finance

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/masomo/core"
	"github.com/trezcool/masomo/core/collection"
)

var (
	ErrTransactionNotFound = core.NewNotFoundError("transaction")
	ErrBudgetNotFound      = core.NewNotFoundError("budget")
	ErrInvoiceNotFound     = core.NewNotFoundError("invoice")
)

type (
	Repository interface {
		QueryAllTransactions(ctx context.Context) ([]Transaction, error)
		GetTransactionByID(ctx context.Context, id string) (Transaction, error)
		QueryAllBudgets(ctx context.Context) ([]Budget, error)
		GetBudgetByID(ctx context.Context, id string) (Budget, error)
		QueryAllInvoices(ctx context.Context) ([]Invoice, error)
		GetInvoiceByID(ctx context.Context, id string) (Invoice, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) QueryTransactions(ctx context.Context, filter TransactionFilter) ([]Transaction, error) {
	txs, err := svc.repo.QueryAllTransactions(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying transactions")
	}
	return Transactions.Apply(txs, filter.Query())
}

func (svc *Service) GetTransactionByID(ctx context.Context, id string) (Transaction, error) {
	return svc.repo.GetTransactionByID(ctx, id)
}

func (svc *Service) QueryBudgets(ctx context.Context, filter BudgetFilter) ([]Budget, error) {
	budgets, err := svc.repo.QueryAllBudgets(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying budgets")
	}
	return Budgets.Apply(budgets, filter.Query())
}

func (svc *Service) GetBudgetByID(ctx context.Context, id string) (Budget, error) {
	return svc.repo.GetBudgetByID(ctx, id)
}

func (svc *Service) QueryInvoices(ctx context.Context, filter InvoiceFilter) ([]Invoice, error) {
	invoices, err := svc.repo.QueryAllInvoices(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying invoices")
	}
	return Invoices.Apply(invoices, filter.Query())
}

func (svc *Service) GetInvoiceByID(ctx context.Context, id string) (Invoice, error) {
	return svc.repo.GetInvoiceByID(ctx, id)
}

func (svc *Service) Stats(ctx context.Context) (Stats, error) {
	txs, err := svc.repo.QueryAllTransactions(ctx)
	if err != nil {
		return Stats{}, errors.Wrap(err, "querying transactions")
	}
	budgets, err := svc.repo.QueryAllBudgets(ctx)
	if err != nil {
		return Stats{}, errors.Wrap(err, "querying budgets")
	}
	invoices, err := svc.repo.QueryAllInvoices(ctx)
	if err != nil {
		return Stats{}, errors.Wrap(err, "querying invoices")
	}

	amount := func(tx Transaction) float64 { return tx.Amount }
	income := collection.SumWhere(txs, func(tx Transaction) bool { return tx.Type == TypeIncome }, amount)
	expense := collection.SumWhere(txs, func(tx Transaction) bool { return tx.Type == TypeExpense }, amount)

	allocated := collection.Sum(budgets, func(b Budget) float64 { return b.Allocated })
	spent := collection.Sum(budgets, func(b Budget) float64 { return b.Spent })

	invoiced := collection.Sum(invoices, func(inv Invoice) float64 { return inv.Amount })
	collected := collection.Sum(invoices, func(inv Invoice) float64 { return inv.Paid })

	return Stats{
		Transactions:      collection.Count(txs),
		TotalIncome:       income,
		TotalExpense:      expense,
		NetIncome:         income - expense,
		PendingAmount:     collection.SumWhere(txs, func(tx Transaction) bool { return tx.Status == StatusPending }, amount),
		BudgetAllocated:   allocated,
		BudgetSpent:       spent,
		BudgetUtilization: collection.Percent(spent, allocated),
		Invoiced:          invoiced,
		Collected:         collected,
		Outstanding:       invoiced - collected,
		OverdueInvoices:   collection.CountWhere(invoices, func(inv Invoice) bool { return inv.Status == InvoiceOverdue }),
		CollectionRate:    collection.Percent(collected, invoiced),
	}, nil
}

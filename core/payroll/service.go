package payroll

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/masomo/core"
	"github.com/trezcool/masomo/core/collection"
)

var ErrNotFound = core.NewNotFoundError("payroll record")

type (
	Repository interface {
		QueryAllPayroll(ctx context.Context) ([]Record, error)
		GetPayrollByID(ctx context.Context, id string) (Record, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Query(ctx context.Context, filter QueryFilter) ([]Record, error) {
	recs, err := svc.repo.QueryAllPayroll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying payroll")
	}
	return Collection.Apply(recs, filter.Query())
}

func (svc *Service) GetByID(ctx context.Context, id string) (Record, error) {
	return svc.repo.GetPayrollByID(ctx, id)
}

func (svc *Service) Stats(ctx context.Context) (Stats, error) {
	recs, err := svc.repo.QueryAllPayroll(ctx)
	if err != nil {
		return Stats{}, errors.Wrap(err, "querying payroll")
	}

	return Stats{
		Records:         collection.Count(recs),
		TotalGross:      collection.Sum(recs, Record.Gross),
		TotalDeductions: collection.Sum(recs, Record.Deductions),
		TotalNet:        collection.Sum(recs, Record.Net),
		AverageNet:      collection.RoundNull(collection.Mean(recs, Record.Net), 2),
		HighestNet:      collection.Max(recs, Record.Net),
		LowestNet:       collection.Min(recs, Record.Net),
		Paid:            collection.CountWhere(recs, func(r Record) bool { return r.Status == StatusPaid }),
		PendingAmount:   collection.SumWhere(recs, func(r Record) bool { return r.Status != StatusPaid }, Record.Net),
	}, nil
}

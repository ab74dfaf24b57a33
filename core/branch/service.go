package branch

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/masomo/core"
	"github.com/trezcool/masomo/core/collection"
)

var ErrNotFound = core.NewNotFoundError("branch")

type (
	Repository interface {
		QueryAllBranches(ctx context.Context) ([]Branch, error)
		GetBranchByID(ctx context.Context, id string) (Branch, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Query(ctx context.Context, filter QueryFilter) ([]Branch, error) {
	branches, err := svc.repo.QueryAllBranches(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying branches")
	}
	return Collection.Apply(branches, filter.Query())
}

func (svc *Service) GetByID(ctx context.Context, id string) (Branch, error) {
	return svc.repo.GetBranchByID(ctx, id)
}

func (svc *Service) Stats(ctx context.Context) (Stats, error) {
	branches, err := svc.repo.QueryAllBranches(ctx)
	if err != nil {
		return Stats{}, errors.Wrap(err, "querying branches")
	}

	students := collection.Sum(branches, func(b Branch) float64 { return float64(b.Students) })
	teachers := collection.Sum(branches, func(b Branch) float64 { return float64(b.Teachers) })
	capacity := collection.Sum(branches, func(b Branch) float64 { return float64(b.Capacity) })

	return Stats{
		Branches:            collection.Count(branches),
		Active:              collection.CountWhere(branches, func(b Branch) bool { return b.Status == StatusActive }),
		Students:            int(students),
		Teachers:            int(teachers),
		Capacity:            int(capacity),
		Utilization:         collection.Percent(students, capacity),
		StudentTeacherRatio: collection.Ratio(students, teachers),
	}, nil
}

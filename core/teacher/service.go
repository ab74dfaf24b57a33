package teacher

import (
	"context"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/masomo/core"
	"github.com/trezcool/masomo/core/collection"
)

var ErrNotFound = core.NewNotFoundError("teacher")

type (
	Repository interface {
		QueryAllTeachers(ctx context.Context) ([]Teacher, error)
		GetTeacherByID(ctx context.Context, id string) (Teacher, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Query(ctx context.Context, filter QueryFilter) ([]Teacher, error) {
	teachers, err := svc.repo.QueryAllTeachers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying teachers")
	}
	return Collection.Apply(teachers, filter.Query())
}

func (svc *Service) GetByID(ctx context.Context, id string) (Teacher, error) {
	return svc.repo.GetTeacherByID(ctx, id)
}

func (svc *Service) Stats(ctx context.Context) (Stats, error) {
	teachers, err := svc.repo.QueryAllTeachers(ctx)
	if err != nil {
		return Stats{}, errors.Wrap(err, "querying teachers")
	}

	departments := make(map[string]struct{})
	for _, t := range teachers {
		departments[t.Department] = struct{}{}
	}

	return Stats{
		Total:              collection.Count(teachers),
		Active:             collection.CountWhere(teachers, func(t Teacher) bool { return t.Status == StatusActive }),
		OnLeave:            collection.CountWhere(teachers, func(t Teacher) bool { return t.Status == StatusOnLeave }),
		Departments:        len(departments),
		AverageExperience:  collection.RoundNull(collection.Mean(teachers, func(t Teacher) float64 { return float64(t.Experience) }), 1),
		AverageRating:      collection.RoundNull(collection.Average(teachers, func(t Teacher) null.Float64 { return t.Rating }), 1),
		TotalMonthlySalary: collection.Sum(teachers, func(t Teacher) float64 { return t.Salary }),
	}, nil
}

package course

import (
	"context"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/masomo/core"
	"github.com/trezcool/masomo/core/collection"
)

var ErrNotFound = core.NewNotFoundError("course")

type (
	Repository interface {
		QueryAllCourses(ctx context.Context) ([]Course, error)
		GetCourseByID(ctx context.Context, id string) (Course, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Query(ctx context.Context, filter QueryFilter) ([]Course, error) {
	courses, err := svc.repo.QueryAllCourses(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying courses")
	}
	return Collection.Apply(courses, filter.Query())
}

func (svc *Service) GetByID(ctx context.Context, id string) (Course, error) {
	return svc.repo.GetCourseByID(ctx, id)
}

func (svc *Service) Stats(ctx context.Context) (Stats, error) {
	courses, err := svc.repo.QueryAllCourses(ctx)
	if err != nil {
		return Stats{}, errors.Wrap(err, "querying courses")
	}

	enrolled := collection.Sum(courses, func(c Course) float64 { return float64(c.Enrolled) })
	capacity := collection.Sum(courses, func(c Course) float64 { return float64(c.Capacity) })

	return Stats{
		Total:         collection.Count(courses),
		Active:        collection.CountWhere(courses, func(c Course) bool { return c.Status == StatusActive }),
		TotalEnrolled: int(enrolled),
		TotalCapacity: int(capacity),
		Occupancy:     collection.Percent(enrolled, capacity),
		AverageRating: collection.RoundNull(collection.Average(courses, func(c Course) null.Float64 { return c.Rating }), 1),
		TotalCredits:  int(collection.Sum(courses, func(c Course) float64 { return float64(c.Credits) })),
	}, nil
}

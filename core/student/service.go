package student

import (
	"context"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/masomo/core"
	"github.com/trezcool/masomo/core/collection"
)

var ErrNotFound = core.NewNotFoundError("student")

type (
	Repository interface {
		QueryAllStudents(ctx context.Context) ([]Student, error)
		GetStudentByID(ctx context.Context, id string) (Student, error)
	}

	// Service serves the students screen. It is the only paginated screen.
	Service struct {
		repo     Repository
		pageSize int
	}
)

func NewService(repo Repository, pageSize int) *Service {
	return &Service{repo: repo, pageSize: pageSize}
}

func (svc *Service) PageSize() int {
	return svc.pageSize
}

// Filter returns every student matching the filter, ignoring pagination.
func (svc *Service) Filter(ctx context.Context, filter QueryFilter) ([]Student, error) {
	students, err := svc.repo.QueryAllStudents(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying students")
	}
	return Collection.Apply(students, filter.Query())
}

// Query returns the requested page of the students matching the filter.
func (svc *Service) Query(ctx context.Context, filter QueryFilter) (collection.Page[Student], error) {
	students, err := svc.Filter(ctx, filter)
	if err != nil {
		return collection.Page[Student]{}, err
	}
	return collection.Paginate(students, filter.Page, svc.pageSize), nil
}

func (svc *Service) GetByID(ctx context.Context, id string) (Student, error) {
	return svc.repo.GetStudentByID(ctx, id)
}

func (svc *Service) Stats(ctx context.Context) (Stats, error) {
	students, err := svc.repo.QueryAllStudents(ctx)
	if err != nil {
		return Stats{}, errors.Wrap(err, "querying students")
	}

	byGrade := make(map[string]int, len(Grades))
	for _, s := range students {
		byGrade[s.Grade]++
	}
	total := collection.Sum(students, func(s Student) float64 { return s.TotalFees })
	paid := collection.Sum(students, func(s Student) float64 { return s.PaidFees })

	return Stats{
		Total:             collection.Count(students),
		Active:            collection.CountWhere(students, func(s Student) bool { return s.Status == StatusActive }),
		Graduated:         collection.CountWhere(students, func(s Student) bool { return s.Status == StatusGraduated }),
		ByGrade:           byGrade,
		AverageGPA:        collection.RoundNull(collection.Average(students, func(s Student) null.Float64 { return s.GPA }), 2),
		AverageAttendance: collection.RoundNull(collection.Mean(students, func(s Student) float64 { return s.Attendance }), 1),
		TotalFees:         total,
		CollectedFees:     paid,
		OutstandingFees:   total - paid,
		FeeCollectionRate: collection.Percent(paid, total),
	}, nil
}

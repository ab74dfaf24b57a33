package analytics

import (
	"context"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/masomo/core"
	"github.com/trezcool/masomo/core/collection"
)

var ErrNotFound = core.NewNotFoundError("metric")

type (
	Repository interface {
		QueryAllMetrics(ctx context.Context) ([]Metric, error)
		GetMetricByID(ctx context.Context, id string) (Metric, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Query(ctx context.Context, filter QueryFilter) ([]Metric, error) {
	metrics, err := svc.repo.QueryAllMetrics(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying metrics")
	}
	return Collection.Apply(metrics, filter.Query())
}

func (svc *Service) GetByID(ctx context.Context, id string) (Metric, error) {
	return svc.repo.GetMetricByID(ctx, id)
}

func (svc *Service) Stats(ctx context.Context) (Stats, error) {
	metrics, err := svc.repo.QueryAllMetrics(ctx)
	if err != nil {
		return Stats{}, errors.Wrap(err, "querying metrics")
	}

	byCategory := make(map[string][]Metric)
	for _, m := range metrics {
		byCategory[m.Category] = append(byCategory[m.Category], m)
	}
	averages := make(map[string]null.Float64, len(byCategory))
	for cat, ms := range byCategory {
		averages[cat] = collection.RoundNull(collection.Mean(ms, func(m Metric) float64 { return m.Value }), 1)
	}

	targeted := collection.CountWhere(metrics, func(m Metric) bool { return m.Target.Valid })
	onTarget := collection.CountWhere(metrics, Metric.OnTarget)

	return Stats{
		Metrics:           collection.Count(metrics),
		Targeted:          targeted,
		OnTarget:          onTarget,
		TargetAttainment:  collection.Percent(float64(onTarget), float64(targeted)),
		AverageByCategory: averages,
	}, nil
}

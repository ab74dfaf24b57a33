package inmemdb

import (
	"context"

	"github.com/trezcool/masomo/core/analytics"
)

type analyticsRepository struct {
	db *DB
}

func NewAnalyticsRepository(db *DB) analytics.Repository {
	return &analyticsRepository{db: db}
}

func (repo *analyticsRepository) QueryAllMetrics(_ context.Context) ([]analytics.Metric, error) {
	return repo.db.metrics.all(), nil
}

func (repo *analyticsRepository) GetMetricByID(_ context.Context, id string) (analytics.Metric, error) {
	if rec, ok := repo.db.metrics.get(id); ok {
		return rec, nil
	}
	return analytics.Metric{}, analytics.ErrNotFound
}

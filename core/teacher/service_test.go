package teacher_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/masomo/core/teacher"
	"github.com/trezcool/masomo/storage/database/inmem"
	"github.com/trezcool/masomo/tests"
)

func newService(t *testing.T) *teacher.Service {
	db := testutil.OpenDB(t)
	return teacher.NewService(inmemdb.NewTeacherRepository(db))
}

func TestService_Query(t *testing.T) {
	svc := newService(t)

	tests := []struct {
		name    string
		filter  teacher.QueryFilter
		wantIDs []string
	}{
		{name: "department", filter: teacher.QueryFilter{Department: "Science"}, wantIDs: []string{"2", "4"}},
		{name: "subject search", filter: teacher.QueryFilter{Search: "biology"}, wantIDs: []string{"4"}},
		{name: "on leave", filter: teacher.QueryFilter{Status: teacher.StatusOnLeave}, wantIDs: []string{"3"}},
		{name: "rating ordering puts unrated first", filter: teacher.QueryFilter{Ordering: "rating"}, wantIDs: []string{"3", "5", "4", "2", "1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			teachers, err := svc.Query(context.Background(), tt.filter)
			require.NoError(t, err)
			got := make([]string, len(teachers))
			for i, tchr := range teachers {
				got[i] = tchr.ID
			}
			assert.Equal(t, tt.wantIDs, got)
		})
	}
}

func TestService_Stats(t *testing.T) {
	stats, err := newService(t).Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, teacher.Stats{
		Total:              5,
		Active:             3,
		OnLeave:            1,
		Departments:        4,
		AverageExperience:  null.Float64From(8.6),
		AverageRating:      null.Float64From(4.4),
		TotalMonthlySalary: 26700,
	}, stats)
}

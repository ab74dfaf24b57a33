package branch_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/masomo/core/branch"
	"github.com/trezcool/masomo/storage/database/inmem"
	"github.com/trezcool/masomo/tests"
)

func newService(t *testing.T) *branch.Service {
	db := testutil.OpenDB(t)
	return branch.NewService(inmemdb.NewBranchRepository(db))
}

func TestService_Query(t *testing.T) {
	svc := newService(t)

	tests := []struct {
		name    string
		filter  branch.QueryFilter
		wantIDs []string
	}{
		{name: "nested city filter", filter: branch.QueryFilter{City: "Riverside"}, wantIDs: []string{"2"}},
		{name: "city search", filter: branch.QueryFilter{Search: "hillview"}, wantIDs: []string{"3"}},
		{name: "active", filter: branch.QueryFilter{Status: branch.StatusActive}, wantIDs: []string{"1", "2"}},
		{name: "fullest first", filter: branch.QueryFilter{Ordering: "-utilization"}, wantIDs: []string{"1", "2", "3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			branches, err := svc.Query(context.Background(), tt.filter)
			require.NoError(t, err)
			got := make([]string, len(branches))
			for i, b := range branches {
				got[i] = b.ID
			}
			assert.Equal(t, tt.wantIDs, got)
		})
	}
}

func TestService_Stats(t *testing.T) {
	stats, err := newService(t).Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, branch.Stats{
		Branches:            3,
		Active:              2,
		Students:            1650,
		Teachers:            110,
		Capacity:            2500,
		Utilization:         null.Float64From(66),
		StudentTeacherRatio: null.Float64From(15),
	}, stats)
}

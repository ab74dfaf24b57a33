package transport_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/masomo/core/transport"
	"github.com/trezcool/masomo/storage/database/inmem"
	"github.com/trezcool/masomo/tests"
)

func newService(t *testing.T) *transport.Service {
	db := testutil.OpenDB(t)
	return transport.NewService(inmemdb.NewTransportRepository(db))
}

func TestService_queries(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	buses, err := svc.QueryVehicles(ctx, transport.VehicleFilter{Type: transport.VehicleBus, Ordering: "-capacity"})
	require.NoError(t, err)
	require.Len(t, buses, 2)
	assert.Equal(t, "BUS-002", buses[0].Registration)

	// the van has no driver: an unset field never matches a search
	byDriver, err := svc.QueryVehicles(ctx, transport.VehicleFilter{Search: "santos"})
	require.NoError(t, err)
	require.Len(t, byDriver, 1)
	assert.Equal(t, "2", byDriver[0].ID)

	byStop, err := svc.QueryRoutes(ctx, transport.RouteFilter{Search: "cedar"})
	require.NoError(t, err)
	require.Len(t, byStop, 1)
	assert.Equal(t, "RT-E", byStop[0].Code)

	onLeave, err := svc.QueryDrivers(ctx, transport.DriverFilter{Status: transport.StatusOnLeave})
	require.NoError(t, err)
	require.Len(t, onLeave, 1)
	assert.False(t, onLeave[0].Rating.Valid)

	_, err = svc.GetRouteByID(ctx, "7")
	assert.Equal(t, transport.ErrRouteNotFound, err)
}

func TestService_Stats(t *testing.T) {
	stats, err := newService(t).Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Fleet)
	assert.Equal(t, 2, stats.ActiveVehicles)
	assert.Equal(t, 114, stats.Seats)
	assert.Equal(t, 80, stats.StudentsCarried)
	assert.Equal(t, null.Float64From(70.2), stats.SeatUtilization)
	assert.Equal(t, 3, stats.Routes)
	assert.InDelta(t, 52.8, stats.TotalDistanceKm, 1e-9)
	assert.Equal(t, 3, stats.Drivers)
	assert.Equal(t, null.Float64From(4.7), stats.AverageDriverRating)
}

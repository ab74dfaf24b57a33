package transport

import (
	"context"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/masomo/core"
	"github.com/trezcool/masomo/core/collection"
)

var (
	ErrVehicleNotFound = core.NewNotFoundError("vehicle")
	ErrRouteNotFound   = core.NewNotFoundError("route")
	ErrDriverNotFound  = core.NewNotFoundError("driver")
)

type (
	Repository interface {
		QueryAllVehicles(ctx context.Context) ([]Vehicle, error)
		GetVehicleByID(ctx context.Context, id string) (Vehicle, error)
		QueryAllRoutes(ctx context.Context) ([]Route, error)
		GetRouteByID(ctx context.Context, id string) (Route, error)
		QueryAllDrivers(ctx context.Context) ([]Driver, error)
		GetDriverByID(ctx context.Context, id string) (Driver, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) QueryVehicles(ctx context.Context, filter VehicleFilter) ([]Vehicle, error) {
	vehicles, err := svc.repo.QueryAllVehicles(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying vehicles")
	}
	return Vehicles.Apply(vehicles, filter.Query())
}

func (svc *Service) GetVehicleByID(ctx context.Context, id string) (Vehicle, error) {
	return svc.repo.GetVehicleByID(ctx, id)
}

func (svc *Service) QueryRoutes(ctx context.Context, filter RouteFilter) ([]Route, error) {
	routes, err := svc.repo.QueryAllRoutes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying routes")
	}
	return Routes.Apply(routes, filter.Query())
}

func (svc *Service) GetRouteByID(ctx context.Context, id string) (Route, error) {
	return svc.repo.GetRouteByID(ctx, id)
}

func (svc *Service) QueryDrivers(ctx context.Context, filter DriverFilter) ([]Driver, error) {
	drivers, err := svc.repo.QueryAllDrivers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying drivers")
	}
	return Drivers.Apply(drivers, filter.Query())
}

func (svc *Service) GetDriverByID(ctx context.Context, id string) (Driver, error) {
	return svc.repo.GetDriverByID(ctx, id)
}

func (svc *Service) Stats(ctx context.Context) (Stats, error) {
	vehicles, err := svc.repo.QueryAllVehicles(ctx)
	if err != nil {
		return Stats{}, errors.Wrap(err, "querying vehicles")
	}
	routes, err := svc.repo.QueryAllRoutes(ctx)
	if err != nil {
		return Stats{}, errors.Wrap(err, "querying routes")
	}
	drivers, err := svc.repo.QueryAllDrivers(ctx)
	if err != nil {
		return Stats{}, errors.Wrap(err, "querying drivers")
	}

	seats := collection.Sum(vehicles, func(v Vehicle) float64 { return float64(v.Capacity) })
	carried := collection.Sum(vehicles, func(v Vehicle) float64 { return float64(v.Students) })

	return Stats{
		Fleet:               collection.Count(vehicles),
		ActiveVehicles:      collection.CountWhere(vehicles, func(v Vehicle) bool { return v.Status == StatusActive }),
		Seats:               int(seats),
		StudentsCarried:     int(carried),
		SeatUtilization:     collection.Percent(carried, seats),
		Routes:              collection.Count(routes),
		TotalDistanceKm:     collection.Sum(routes, func(r Route) float64 { return r.DistanceKm }),
		Drivers:             collection.Count(drivers),
		AverageDriverRating: collection.RoundNull(collection.Average(drivers, func(d Driver) null.Float64 { return d.Rating }), 1),
	}, nil
}

package inmemdb

import (
	"context"

	"github.com/trezcool/masomo/core/transport"
)

type transportRepository struct {
	db *DB
}

func NewTransportRepository(db *DB) transport.Repository {
	return &transportRepository{db: db}
}

func (repo *transportRepository) QueryAllVehicles(_ context.Context) ([]transport.Vehicle, error) {
	return repo.db.vehicles.all(), nil
}

func (repo *transportRepository) GetVehicleByID(_ context.Context, id string) (transport.Vehicle, error) {
	if rec, ok := repo.db.vehicles.get(id); ok {
		return rec, nil
	}
	return transport.Vehicle{}, transport.ErrVehicleNotFound
}

func (repo *transportRepository) QueryAllRoutes(_ context.Context) ([]transport.Route, error) {
	return repo.db.routes.all(), nil
}

func (repo *transportRepository) GetRouteByID(_ context.Context, id string) (transport.Route, error) {
	if rec, ok := repo.db.routes.get(id); ok {
		return rec, nil
	}
	return transport.Route{}, transport.ErrRouteNotFound
}

func (repo *transportRepository) QueryAllDrivers(_ context.Context) ([]transport.Driver, error) {
	return repo.db.drivers.all(), nil
}

func (repo *transportRepository) GetDriverByID(_ context.Context, id string) (transport.Driver, error) {
	if rec, ok := repo.db.drivers.get(id); ok {
		return rec, nil
	}
	return transport.Driver{}, transport.ErrDriverNotFound
}

package inmemdb

import (
	"context"

	"github.com/trezcool/masomo/core/payroll"
)

type payrollRepository struct {
	db *DB
}

func NewPayrollRepository(db *DB) payroll.Repository {
	return &payrollRepository{db: db}
}

func (repo *payrollRepository) QueryAllPayroll(_ context.Context) ([]payroll.Record, error) {
	return repo.db.payroll.all(), nil
}

func (repo *payrollRepository) GetPayrollByID(_ context.Context, id string) (payroll.Record, error) {
	if rec, ok := repo.db.payroll.get(id); ok {
		return rec, nil
	}
	return payroll.Record{}, payroll.ErrNotFound
}

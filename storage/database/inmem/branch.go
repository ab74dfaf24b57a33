package inmemdb

import (
	"context"

	"github.com/trezcool/masomo/core/branch"
)

type branchRepository struct {
	db *DB
}

func NewBranchRepository(db *DB) branch.Repository {
	return &branchRepository{db: db}
}

func (repo *branchRepository) QueryAllBranches(_ context.Context) ([]branch.Branch, error) {
	return repo.db.branches.all(), nil
}

func (repo *branchRepository) GetBranchByID(_ context.Context, id string) (branch.Branch, error) {
	if rec, ok := repo.db.branches.get(id); ok {
		return rec, nil
	}
	return branch.Branch{}, branch.ErrNotFound
}

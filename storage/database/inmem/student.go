package inmemdb

import (
	"context"

	"github.com/trezcool/masomo/core/student"
)

type studentRepository struct {
	db *DB
}

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{db: db}
}

func (repo *studentRepository) QueryAllStudents(_ context.Context) ([]student.Student, error) {
	return repo.db.students.all(), nil
}

func (repo *studentRepository) GetStudentByID(_ context.Context, id string) (student.Student, error) {
	if rec, ok := repo.db.students.get(id); ok {
		return rec, nil
	}
	return student.Student{}, student.ErrNotFound
}

package inmemdb

import (
	"context"

	"github.com/trezcool/masomo/core/teacher"
)

type teacherRepository struct {
	db *DB
}

func NewTeacherRepository(db *DB) teacher.Repository {
	return &teacherRepository{db: db}
}

func (repo *teacherRepository) QueryAllTeachers(_ context.Context) ([]teacher.Teacher, error) {
	return repo.db.teachers.all(), nil
}

func (repo *teacherRepository) GetTeacherByID(_ context.Context, id string) (teacher.Teacher, error) {
	if rec, ok := repo.db.teachers.get(id); ok {
		return rec, nil
	}
	return teacher.Teacher{}, teacher.ErrNotFound
}

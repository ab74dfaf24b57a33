package inmemdb

import (
	"context"

	"github.com/trezcool/masomo/core/course"
)

type courseRepository struct {
	db *DB
}

func NewCourseRepository(db *DB) course.Repository {
	return &courseRepository{db: db}
}

func (repo *courseRepository) QueryAllCourses(_ context.Context) ([]course.Course, error) {
	return repo.db.courses.all(), nil
}

func (repo *courseRepository) GetCourseByID(_ context.Context, id string) (course.Course, error) {
	if rec, ok := repo.db.courses.get(id); ok {
		return rec, nil
	}
	return course.Course{}, course.ErrNotFound
}

package inmemdb

import (
	"context"

	"github.com/trezcool/masomo/core/library"
)

type libraryRepository struct {
	db *DB
}

func NewLibraryRepository(db *DB) library.Repository {
	return &libraryRepository{db: db}
}

func (repo *libraryRepository) QueryAllBooks(_ context.Context) ([]library.Book, error) {
	return repo.db.books.all(), nil
}

func (repo *libraryRepository) GetBookByID(_ context.Context, id string) (library.Book, error) {
	if rec, ok := repo.db.books.get(id); ok {
		return rec, nil
	}
	return library.Book{}, library.ErrBookNotFound
}

func (repo *libraryRepository) QueryAllBorrowings(_ context.Context) ([]library.Borrowing, error) {
	return repo.db.borrowings.all(), nil
}

func (repo *libraryRepository) GetBorrowingByID(_ context.Context, id string) (library.Borrowing, error) {
	if rec, ok := repo.db.borrowings.get(id); ok {
		return rec, nil
	}
	return library.Borrowing{}, library.ErrBorrowingNotFound
}

package library

import (
	"context"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/masomo/core"
	"github.com/trezcool/masomo/core/collection"
)

var (
	ErrBookNotFound      = core.NewNotFoundError("book")
	ErrBorrowingNotFound = core.NewNotFoundError("borrowing")
)

type (
	Repository interface {
		QueryAllBooks(ctx context.Context) ([]Book, error)
		GetBookByID(ctx context.Context, id string) (Book, error)
		QueryAllBorrowings(ctx context.Context) ([]Borrowing, error)
		GetBorrowingByID(ctx context.Context, id string) (Borrowing, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) QueryBooks(ctx context.Context, filter BookFilter) ([]Book, error) {
	books, err := svc.repo.QueryAllBooks(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying books")
	}
	return Books.Apply(books, filter.Query())
}

func (svc *Service) GetBookByID(ctx context.Context, id string) (Book, error) {
	return svc.repo.GetBookByID(ctx, id)
}

func (svc *Service) QueryBorrowings(ctx context.Context, filter BorrowingFilter) ([]Borrowing, error) {
	borrowings, err := svc.repo.QueryAllBorrowings(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying borrowings")
	}
	return Borrowings.Apply(borrowings, filter.Query())
}

func (svc *Service) GetBorrowingByID(ctx context.Context, id string) (Borrowing, error) {
	return svc.repo.GetBorrowingByID(ctx, id)
}

func (svc *Service) Stats(ctx context.Context) (Stats, error) {
	books, err := svc.repo.QueryAllBooks(ctx)
	if err != nil {
		return Stats{}, errors.Wrap(err, "querying books")
	}
	borrowings, err := svc.repo.QueryAllBorrowings(ctx)
	if err != nil {
		return Stats{}, errors.Wrap(err, "querying borrowings")
	}

	return Stats{
		Titles:        collection.Count(books),
		Copies:        int(collection.Sum(books, func(b Book) float64 { return float64(b.Copies) })),
		Available:     int(collection.Sum(books, func(b Book) float64 { return float64(b.Available) })),
		Borrowed:      int(collection.Sum(books, func(b Book) float64 { return float64(b.Borrowed()) })),
		Overdue:       collection.CountWhere(borrowings, func(br Borrowing) bool { return br.Status == BorrowingOverdue }),
		TotalFines:    collection.Sum(borrowings, func(br Borrowing) float64 { return br.Fine }),
		AverageRating: collection.RoundNull(collection.Average(books, func(b Book) null.Float64 { return b.Rating }), 1),
	}, nil
}

package library_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/masomo/core/library"
	"github.com/trezcool/masomo/storage/database/inmem"
	"github.com/trezcool/masomo/tests"
)

func newService(t *testing.T) *library.Service {
	db := testutil.OpenDB(t)
	return library.NewService(inmemdb.NewLibraryRepository(db))
}

func TestService_QueryBooks(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	fiction, err := svc.QueryBooks(ctx, library.BookFilter{Category: "Fiction", Ordering: "title"})
	require.NoError(t, err)
	require.Len(t, fiction, 2)
	assert.Equal(t, "Things Fall Apart", fiction[0].Title)
	assert.Equal(t, "To Kill a Mockingbird", fiction[1].Title)

	byIsbn, err := svc.QueryBooks(ctx, library.BookFilter{Search: "0553380163"})
	require.NoError(t, err)
	require.Len(t, byIsbn, 1)
	assert.Equal(t, 2, byIsbn[0].Borrowed())
}

func TestService_QueryBorrowings(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	overdue, err := svc.QueryBorrowings(ctx, library.BorrowingFilter{Status: library.BorrowingOverdue, Ordering: "-fine"})
	require.NoError(t, err)
	require.Len(t, overdue, 2)
	assert.Equal(t, "2", overdue[0].ID)
	assert.Equal(t, "4", overdue[1].ID)

	br, err := svc.GetBorrowingByID(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, null.StringFrom("2024-01-15"), br.ReturnDate)

	_, err = svc.GetBookByID(ctx, "404")
	assert.Equal(t, library.ErrBookNotFound, err)
}

func TestService_Stats(t *testing.T) {
	stats, err := newService(t).Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, library.Stats{
		Titles:        4,
		Copies:        18,
		Available:     10,
		Borrowed:      8,
		Overdue:       2,
		TotalFines:    20,
		AverageRating: null.Float64From(4.6),
	}, stats)
}

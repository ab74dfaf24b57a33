package inmemdb

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/masomo/core/student"
	"github.com/trezcool/masomo/core/user"
)

func TestOpen(t *testing.T) {
	db, err := Open()
	require.NoError(t, err)

	tests := []struct {
		name string
		got  int
		want int
	}{
		{name: "students", got: len(db.students.all()), want: 8},
		{name: "teachers", got: len(db.teachers.all()), want: 5},
		{name: "courses", got: len(db.courses.all()), want: 5},
		{name: "transactions", got: len(db.transactions.all()), want: 10},
		{name: "budgets", got: len(db.budgets.all()), want: 4},
		{name: "invoices", got: len(db.invoices.all()), want: 4},
		{name: "books", got: len(db.books.all()), want: 4},
		{name: "borrowings", got: len(db.borrowings.all()), want: 4},
		{name: "payroll", got: len(db.payroll.all()), want: 4},
		{name: "branches", got: len(db.branches.all()), want: 3},
		{name: "vehicles", got: len(db.vehicles.all()), want: 3},
		{name: "routes", got: len(db.routes.all()), want: 3},
		{name: "drivers", got: len(db.drivers.all()), want: 3},
		{name: "metrics", got: len(db.metrics.all()), want: 4},
		{name: "users", got: len(db.users.all()), want: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestOpen_optionalFields(t *testing.T) {
	db, err := Open()
	require.NoError(t, err)

	emma, ok := db.students.get("1")
	require.True(t, ok)
	assert.Equal(t, null.StringFrom("emma.johnson@school.edu"), emma.Email)
	assert.Equal(t, null.Float64From(3.8), emma.GPA)

	noah, ok := db.students.get("5")
	require.True(t, ok)
	assert.False(t, noah.Email.Valid)
	assert.False(t, noah.GPA.Valid)

	hill, ok := db.branches.get("3")
	require.True(t, ok)
	assert.Equal(t, "Hillview", hill.Address.City)
	assert.Equal(t, null.StringFrom("62790"), hill.Address.PostalCode)

	admin, ok := db.users.get("1")
	require.True(t, ok)
	assert.Equal(t, "dark", admin.Preferences.Theme)
	assert.NoError(t, admin.CheckPassword("masomo-admin"))
}

func TestLoad(t *testing.T) {
	fsys := make(fstest.MapFS)
	for _, name := range []string{
		"teachers", "courses", "transactions", "budgets", "invoices", "books", "borrowings",
		"payroll", "branches", "vehicles", "routes", "drivers", "metrics", "users",
	} {
		fsys[name+".yaml"] = &fstest.MapFile{Data: []byte("[]")}
	}

	_, err := Load(fsys)
	assert.Error(t, err, "students.yaml is missing")

	fsys["students.yaml"] = &fstest.MapFile{Data: []byte(`
- {id: "1", name: First}
- {id: "1", name: Duplicate}
- {id: "2", name: Second}
`)}
	db, err := Load(fsys)
	require.NoError(t, err)

	repo := NewStudentRepository(db)
	all, err := repo.QueryAllStudents(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 3)

	first, err := repo.GetStudentByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "First", first.Name)

	_, err = repo.GetStudentByID(context.Background(), "42")
	assert.Equal(t, student.ErrNotFound, err)

	fsys["users.yaml"] = &fstest.MapFile{Data: []byte("{not: a list}")}
	_, err = Load(fsys)
	assert.Error(t, err)
}

func TestTable_returnsCopies(t *testing.T) {
	db, err := Open()
	require.NoError(t, err)
	repo := NewStudentRepository(db)
	ctx := context.Background()

	students, err := repo.QueryAllStudents(ctx)
	require.NoError(t, err)
	students[0].Name = "Changed"

	again, err := repo.QueryAllStudents(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Emma Johnson", again[0].Name)
}

func TestUserRepository_GetUserByUsernameOrEmail(t *testing.T) {
	db, err := Open()
	require.NoError(t, err)
	repo := NewUserRepository(db)
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		wantID   string
		wantErr  error
	}{
		{name: "username", username: "principal", wantID: "2"},
		{name: "email", username: "s.mitchell@school.edu", wantID: "3"},
		{name: "mixed case", username: "Admin", wantID: "1"},
		{name: "unknown", username: "ghost", wantErr: user.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usr, err := repo.GetUserByUsernameOrEmail(ctx, tt.username)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, usr.ID)
		})
	}
}

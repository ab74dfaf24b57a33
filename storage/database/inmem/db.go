// Package inmemdb serves the school datasets from YAML fixtures loaded in memory.
package inmemdb

import (
	"embed"
	"io/fs"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/trezcool/masomo/core/analytics"
	"github.com/trezcool/masomo/core/branch"
	"github.com/trezcool/masomo/core/course"
	"github.com/trezcool/masomo/core/finance"
	"github.com/trezcool/masomo/core/library"
	"github.com/trezcool/masomo/core/payroll"
	"github.com/trezcool/masomo/core/student"
	"github.com/trezcool/masomo/core/teacher"
	"github.com/trezcool/masomo/core/transport"
	"github.com/trezcool/masomo/core/user"
)

//go:embed fixtures/*.yaml
var fixtures embed.FS

type DB struct {
	students     *table[student.Student]
	teachers     *table[teacher.Teacher]
	courses      *table[course.Course]
	transactions *table[finance.Transaction]
	budgets      *table[finance.Budget]
	invoices     *table[finance.Invoice]
	books        *table[library.Book]
	borrowings   *table[library.Borrowing]
	payroll      *table[payroll.Record]
	branches     *table[branch.Branch]
	vehicles     *table[transport.Vehicle]
	routes       *table[transport.Route]
	drivers      *table[transport.Driver]
	metrics      *table[analytics.Metric]
	users        *table[user.User]
}

// Open loads the embedded fixtures.
func Open() (*DB, error) {
	fsys, err := fs.Sub(fixtures, "fixtures")
	if err != nil {
		return nil, errors.Wrap(err, "opening fixtures")
	}
	return Load(fsys)
}

// Load reads one <collection>.yaml file per collection from fsys. A missing file is an error.
func Load(fsys fs.FS) (*DB, error) {
	db := new(DB)
	var err error

	if db.students, err = load(fsys, "students.yaml", student.Collection.ID); err != nil {
		return nil, err
	}
	if db.teachers, err = load(fsys, "teachers.yaml", teacher.Collection.ID); err != nil {
		return nil, err
	}
	if db.courses, err = load(fsys, "courses.yaml", course.Collection.ID); err != nil {
		return nil, err
	}
	if db.transactions, err = load(fsys, "transactions.yaml", finance.Transactions.ID); err != nil {
		return nil, err
	}
	if db.budgets, err = load(fsys, "budgets.yaml", finance.Budgets.ID); err != nil {
		return nil, err
	}
	if db.invoices, err = load(fsys, "invoices.yaml", finance.Invoices.ID); err != nil {
		return nil, err
	}
	if db.books, err = load(fsys, "books.yaml", library.Books.ID); err != nil {
		return nil, err
	}
	if db.borrowings, err = load(fsys, "borrowings.yaml", library.Borrowings.ID); err != nil {
		return nil, err
	}
	if db.payroll, err = load(fsys, "payroll.yaml", payroll.Collection.ID); err != nil {
		return nil, err
	}
	if db.branches, err = load(fsys, "branches.yaml", branch.Collection.ID); err != nil {
		return nil, err
	}
	if db.vehicles, err = load(fsys, "vehicles.yaml", transport.Vehicles.ID); err != nil {
		return nil, err
	}
	if db.routes, err = load(fsys, "routes.yaml", transport.Routes.ID); err != nil {
		return nil, err
	}
	if db.drivers, err = load(fsys, "drivers.yaml", transport.Drivers.ID); err != nil {
		return nil, err
	}
	if db.metrics, err = load(fsys, "metrics.yaml", analytics.Collection.ID); err != nil {
		return nil, err
	}
	if db.users, err = load(fsys, "users.yaml", user.Collection.ID); err != nil {
		return nil, err
	}
	return db, nil
}

func load[T any](fsys fs.FS, name string, id func(T) string) (*table[T], error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	var rows []T
	if err = yaml.Unmarshal(data, &rows); err != nil {
		return nil, errors.Wrapf(err, "decoding %s", name)
	}
	return newTable(rows, id), nil
}

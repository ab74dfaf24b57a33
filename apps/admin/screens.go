package main

import (
	"context"
	"sort"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"

	"github.com/trezcool/masomo/core"
	"github.com/trezcool/masomo/core/analytics"
	"github.com/trezcool/masomo/core/branch"
	"github.com/trezcool/masomo/core/collection"
	"github.com/trezcool/masomo/core/course"
	"github.com/trezcool/masomo/core/finance"
	"github.com/trezcool/masomo/core/library"
	"github.com/trezcool/masomo/core/payroll"
	"github.com/trezcool/masomo/core/student"
	"github.com/trezcool/masomo/core/teacher"
	"github.com/trezcool/masomo/core/transport"
	"github.com/trezcool/masomo/core/user"
	"github.com/trezcool/masomo/storage/database/inmem"
)

var errUnknownScreen = errors.New("unknown screen")

// browser is a collection.View with its record type erased.
type browser interface {
	Title() string
	Reset()
	SetSearch(search string)
	SetFilter(name, value string) error
	SetPage(page int)
	NextPage()
	PrevPage()
	Position() (page, pages, total int)
	Select(id string) error
	Close()
	Sheet() collection.Sheet
	Detail() (collection.Sheet, bool)
}

// listingFilter is a screen's QueryFilter, filled from command line values instead of a query string.
type listingFilter[F any] interface {
	*F
	Clean()
	Query() collection.Query
}

// queryBinder turns command line search, ordering and filters into a cleaned, validated collection.Query.
type queryBinder func(search, ordering string, filters map[string]string) (collection.Query, error)

func newQueryBinder[F any, PF listingFilter[F]](validate *validator.Validate, translator ut.Translator) queryBinder {
	return func(search, ordering string, filters map[string]string) (collection.Query, error) {
		params := make(map[string]interface{}, len(filters)+2)
		for name, value := range filters {
			params[name] = value
		}
		params["search"] = search
		params["ordering"] = ordering

		var filter F
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{TagName: "query", Result: PF(&filter)})
		if err != nil {
			return collection.Query{}, errors.Wrap(err, "creating filter decoder")
		}
		if err := dec.Decode(params); err != nil {
			return collection.Query{}, errors.Wrap(err, "decoding filters")
		}

		PF(&filter).Clean()
		if err := validate.Struct(PF(&filter)); err != nil {
			return collection.Query{}, translateErr(err, translator)
		}
		return PF(&filter).Query(), nil
	}
}

// translateErr turns validator errors into a core.ValidationError carrying the translated messages.
func translateErr(err error, translator ut.Translator) error {
	vErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	flds := make([]core.FieldError, 0, len(vErrs))
	for _, vErr := range vErrs {
		flds = append(flds, core.FieldError{Field: vErr.Field(), Error: vErr.Translate(translator)})
	}
	return core.NewValidationError(nil, flds...)
}

// boundView is a collection.View whose console filters go through the screen's queryBinder.
type boundView[T any] struct {
	*collection.View[T]
	cfg  *collection.Config[T]
	bind queryBinder
}

func (v boundView[T]) SetFilter(name, value string) error {
	if _, ok := v.cfg.Filters[name]; !ok {
		return v.View.SetFilter(name, value) // reports the unknown filter
	}
	q, err := v.bind("", "", map[string]string{name: value})
	if err != nil {
		return err
	}
	return v.View.SetFilter(name, q.Filters[name])
}

// screen is one collection of the dataset as the CLI sees it.
type screen struct {
	sheet func(ctx context.Context, search, ordering string, filters map[string]string) (collection.Sheet, error)
	view  func(ctx context.Context, pageSize int) (browser, error)
	stats func(ctx context.Context) (interface{}, error)
}

func newScreen[T any, S any](
	title string,
	cfg *collection.Config[T],
	bind queryBinder,
	all func(context.Context) ([]T, error),
	stats func(context.Context) (S, error),
) screen {
	return screen{
		sheet: func(ctx context.Context, search, ordering string, filters map[string]string) (collection.Sheet, error) {
			if err := cfg.Validate(collection.Query{Filters: filters}); err != nil {
				return collection.Sheet{}, err
			}
			q, err := bind(search, ordering, filters)
			if err != nil {
				return collection.Sheet{}, err
			}
			recs, err := all(ctx)
			if err != nil {
				return collection.Sheet{}, errors.Wrapf(err, "querying %s", title)
			}
			recs, err = cfg.Apply(recs, q)
			if err != nil {
				return collection.Sheet{}, err
			}
			return collection.NewSheet(title, cfg, recs), nil
		},
		view: func(ctx context.Context, pageSize int) (browser, error) {
			recs, err := all(ctx)
			if err != nil {
				return nil, errors.Wrapf(err, "querying %s", title)
			}
			return boundView[T]{View: collection.NewView(title, cfg, recs, pageSize), cfg: cfg, bind: bind}, nil
		},
		stats: func(ctx context.Context) (interface{}, error) {
			return stats(ctx)
		},
	}
}

func newScreens(db *inmemdb.DB, pageSize int, validate *validator.Validate, translator ut.Translator) map[string]screen {
	analyticsRepo := inmemdb.NewAnalyticsRepository(db)
	branchRepo := inmemdb.NewBranchRepository(db)
	courseRepo := inmemdb.NewCourseRepository(db)
	financeRepo := inmemdb.NewFinanceRepository(db)
	libraryRepo := inmemdb.NewLibraryRepository(db)
	payrollRepo := inmemdb.NewPayrollRepository(db)
	studentRepo := inmemdb.NewStudentRepository(db)
	teacherRepo := inmemdb.NewTeacherRepository(db)
	transportRepo := inmemdb.NewTransportRepository(db)
	usrRepo := inmemdb.NewUserRepository(db)

	financeSvc := finance.NewService(financeRepo)
	librarySvc := library.NewService(libraryRepo)
	transportSvc := transport.NewService(transportRepo)

	return map[string]screen{
		"students": newScreen("Students", &student.Collection,
			newQueryBinder[student.QueryFilter](validate, translator),
			studentRepo.QueryAllStudents, student.NewService(studentRepo, pageSize).Stats),
		"teachers": newScreen("Teachers", &teacher.Collection,
			newQueryBinder[teacher.QueryFilter](validate, translator),
			teacherRepo.QueryAllTeachers, teacher.NewService(teacherRepo).Stats),
		"courses": newScreen("Courses", &course.Collection,
			newQueryBinder[course.QueryFilter](validate, translator),
			courseRepo.QueryAllCourses, course.NewService(courseRepo).Stats),
		"transactions": newScreen("Transactions", &finance.Transactions,
			newQueryBinder[finance.TransactionFilter](validate, translator),
			financeRepo.QueryAllTransactions, financeSvc.Stats),
		"budgets": newScreen("Budgets", &finance.Budgets,
			newQueryBinder[finance.BudgetFilter](validate, translator),
			financeRepo.QueryAllBudgets, financeSvc.Stats),
		"invoices": newScreen("Invoices", &finance.Invoices,
			newQueryBinder[finance.InvoiceFilter](validate, translator),
			financeRepo.QueryAllInvoices, financeSvc.Stats),
		"books": newScreen("Books", &library.Books,
			newQueryBinder[library.BookFilter](validate, translator),
			libraryRepo.QueryAllBooks, librarySvc.Stats),
		"borrowings": newScreen("Borrowings", &library.Borrowings,
			newQueryBinder[library.BorrowingFilter](validate, translator),
			libraryRepo.QueryAllBorrowings, librarySvc.Stats),
		"payroll": newScreen("Payroll", &payroll.Collection,
			newQueryBinder[payroll.QueryFilter](validate, translator),
			payrollRepo.QueryAllPayroll, payroll.NewService(payrollRepo).Stats),
		"branches": newScreen("Branches", &branch.Collection,
			newQueryBinder[branch.QueryFilter](validate, translator),
			branchRepo.QueryAllBranches, branch.NewService(branchRepo).Stats),
		"vehicles": newScreen("Vehicles", &transport.Vehicles,
			newQueryBinder[transport.VehicleFilter](validate, translator),
			transportRepo.QueryAllVehicles, transportSvc.Stats),
		"routes": newScreen("Routes", &transport.Routes,
			newQueryBinder[transport.RouteFilter](validate, translator),
			transportRepo.QueryAllRoutes, transportSvc.Stats),
		"drivers": newScreen("Drivers", &transport.Drivers,
			newQueryBinder[transport.DriverFilter](validate, translator),
			transportRepo.QueryAllDrivers, transportSvc.Stats),
		"metrics": newScreen("Metrics", &analytics.Collection,
			newQueryBinder[analytics.QueryFilter](validate, translator),
			analyticsRepo.QueryAllMetrics, analytics.NewService(analyticsRepo).Stats),
		"users": newScreen("Users", &user.Collection,
			newQueryBinder[user.QueryFilter](validate, translator),
			usrRepo.QueryAllUsers, user.NewService(usrRepo).Stats),
	}
}

func screenNames(screens map[string]screen) []string {
	names := make([]string, 0, len(screens))
	for name := range screens {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

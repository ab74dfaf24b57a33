package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/go-playground/validator/v10"

	echoapi "github.com/trezcool/masomo/apps/api/echo"
	"github.com/trezcool/masomo/core"
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
	logsvc "github.com/trezcool/masomo/services/logger"
	"github.com/trezcool/masomo/storage/database/inmem"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	defer logger.Flush()

	// set up DB
	db, err := inmemdb.Open()
	if err != nil {
		logger.Fatal(fmt.Sprintf("loading dataset: %v", err), err)
	}

	// set up services
	analyticsSvc := analytics.NewService(inmemdb.NewAnalyticsRepository(db))
	branchSvc := branch.NewService(inmemdb.NewBranchRepository(db))
	courseSvc := course.NewService(inmemdb.NewCourseRepository(db))
	financeSvc := finance.NewService(inmemdb.NewFinanceRepository(db))
	librarySvc := library.NewService(inmemdb.NewLibraryRepository(db))
	payrollSvc := payroll.NewService(inmemdb.NewPayrollRepository(db))
	studentSvc := student.NewService(inmemdb.NewStudentRepository(db), conf.Listing.PageSize)
	teacherSvc := teacher.NewService(inmemdb.NewTeacherRepository(db))
	transportSvc := transport.NewService(inmemdb.NewTransportRepository(db))
	usrSvc := user.NewService(inmemdb.NewUserRepository(db))

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	// Expose important info under /debug/vars.
	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:         conf,
			Logger:       logger,
			Validate:     validate,
			Translator:   translator,
			AnalyticsSvc: analyticsSvc,
			BranchSvc:    branchSvc,
			CourseSvc:    courseSvc,
			FinanceSvc:   financeSvc,
			LibrarySvc:   librarySvc,
			PayrollSvc:   payrollSvc,
			StudentSvc:   studentSvc,
			TeacherSvc:   teacherSvc,
			TransportSvc: transportSvc,
			UserSvc:      usrSvc,
		},
	)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

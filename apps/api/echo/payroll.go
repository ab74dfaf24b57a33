package echoapi

import (
	"github.com/labstack/echo/v4"

	"github.com/trezcool/masomo/core/payroll"
	"github.com/trezcool/masomo/core/user"
)

// payroll is restricted to the owner and finance admins
func registerPayrollAPI(g *echo.Group, s *Server) {
	svc := s.deps.PayrollSvc
	api := newCollectionAPI("Payroll", &payroll.Collection, s.deps.Validate, svc.Query, svc.GetByID)

	g.Use(adminMiddleware(user.RoleAdminOwner, user.RoleAdminFinance))
	g.GET("", api.list)
	g.GET("/stats", statsHandler(svc.Stats))
	g.GET("/export", api.export)
	g.GET("/:id", api.retrieve)
}

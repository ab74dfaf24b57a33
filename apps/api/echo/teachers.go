package echoapi

import (
	"github.com/labstack/echo/v4"

	"github.com/trezcool/masomo/core/teacher"
)

func registerTeacherAPI(g *echo.Group, s *Server) {
	svc := s.deps.TeacherSvc
	api := newCollectionAPI("Teachers", &teacher.Collection, s.deps.Validate, svc.Query, svc.GetByID)

	g.GET("", api.list)
	g.GET("/stats", statsHandler(svc.Stats))
	g.GET("/export", api.export)
	g.GET("/:id", api.retrieve)
}

package echoapi

import (
	"github.com/labstack/echo/v4"

	"github.com/trezcool/masomo/core/course"
)

func registerCourseAPI(g *echo.Group, s *Server) {
	svc := s.deps.CourseSvc
	api := newCollectionAPI("Courses", &course.Collection, s.deps.Validate, svc.Query, svc.GetByID)

	g.GET("", api.list)
	g.GET("/stats", statsHandler(svc.Stats))
	g.GET("/export", api.export)
	g.GET("/:id", api.retrieve)
}

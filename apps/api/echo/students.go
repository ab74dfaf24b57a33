package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/masomo/core/student"
)

type studentApi struct {
	*collectionAPI[student.Student, student.QueryFilter, *student.QueryFilter]
	svc *student.Service
}

func registerStudentAPI(g *echo.Group, s *Server) {
	svc := s.deps.StudentSvc
	api := studentApi{
		collectionAPI: newCollectionAPI[student.Student, student.QueryFilter, *student.QueryFilter](
			"Students", &student.Collection, s.deps.Validate, svc.Filter, svc.GetByID,
		),
		svc: svc,
	}

	g.GET("", api.queryPage)
	g.GET("/stats", statsHandler(svc.Stats))
	g.GET("/export", api.export)
	g.GET("/:id", api.retrieve)
}

// queryPage returns the requested page of students. The page is clamped to the filtered results.
func (api *studentApi) queryPage(ctx echo.Context) error {
	filter, err := bindFilter[student.QueryFilter](ctx, api.validate)
	if err != nil {
		return err
	}
	page, err := api.svc.Query(ctx.Request().Context(), filter)
	if err != nil {
		return errors.Wrap(err, "querying students")
	}
	if page.Items == nil {
		page.Items = []student.Student{}
	}
	return ctx.JSON(http.StatusOK, page)
}

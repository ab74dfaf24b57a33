package echoapi

import (
	"github.com/labstack/echo/v4"

	"github.com/trezcool/masomo/core/library"
)

func registerLibraryAPI(g *echo.Group, s *Server) {
	svc := s.deps.LibrarySvc
	books := newCollectionAPI("Books", &library.Books, s.deps.Validate, svc.QueryBooks, svc.GetBookByID)
	borrowings := newCollectionAPI("Borrowings", &library.Borrowings, s.deps.Validate, svc.QueryBorrowings, svc.GetBorrowingByID)

	g.GET("/stats", statsHandler(svc.Stats))

	bg := g.Group("/books")
	bg.GET("", books.list)
	bg.GET("/export", books.export)
	bg.GET("/:id", books.retrieve)

	brg := g.Group("/borrowings")
	brg.GET("", borrowings.list)
	brg.GET("/export", borrowings.export)
	brg.GET("/:id", borrowings.retrieve)
}

package echoapi

import (
	"github.com/labstack/echo/v4"

	"github.com/trezcool/masomo/core/transport"
)

func registerTransportAPI(g *echo.Group, s *Server) {
	svc := s.deps.TransportSvc
	vehicles := newCollectionAPI("Vehicles", &transport.Vehicles, s.deps.Validate, svc.QueryVehicles, svc.GetVehicleByID)
	routes := newCollectionAPI("Routes", &transport.Routes, s.deps.Validate, svc.QueryRoutes, svc.GetRouteByID)
	drivers := newCollectionAPI("Drivers", &transport.Drivers, s.deps.Validate, svc.QueryDrivers, svc.GetDriverByID)

	g.GET("/stats", statsHandler(svc.Stats))

	vg := g.Group("/vehicles")
	vg.GET("", vehicles.list)
	vg.GET("/export", vehicles.export)
	vg.GET("/:id", vehicles.retrieve)

	rg := g.Group("/routes")
	rg.GET("", routes.list)
	rg.GET("/export", routes.export)
	rg.GET("/:id", routes.retrieve)

	dg := g.Group("/drivers")
	dg.GET("", drivers.list)
	dg.GET("/export", drivers.export)
	dg.GET("/:id", drivers.retrieve)
}

package transport

import (
	"strings"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/masomo/core"
	"github.com/trezcool/masomo/core/collection"
)

// Vehicle types
const (
	VehicleBus     = "bus"
	VehicleMinibus = "minibus"
	VehicleVan     = "van"
)

// Statuses
const (
	StatusActive      = "active"
	StatusMaintenance = "maintenance"
	StatusInactive    = "inactive"
	StatusOnLeave     = "on-leave"
)

type Vehicle struct {
	ID               string       `json:"id" yaml:"id"`
	Registration     string       `json:"registration" yaml:"registration"`
	Type             string       `json:"type" yaml:"type"`
	Model            string       `json:"model" yaml:"model"`
	Year             int          `json:"year" yaml:"year"`
	Capacity         int          `json:"capacity" yaml:"capacity"`
	Driver           null.String  `json:"driver" yaml:"driver"`
	Route            null.String  `json:"route" yaml:"route"`
	Students         int          `json:"students" yaml:"students"`
	LastService      string       `json:"last_service" yaml:"last_service"`
	InsuranceExpiry  string       `json:"insurance_expiry" yaml:"insurance_expiry"`
	Status           string       `json:"status" yaml:"status"`
	Mileage          int          `json:"mileage" yaml:"mileage"`
	FuelEfficiencyKm null.Float64 `json:"fuel_efficiency_km" yaml:"fuel_efficiency_km"`
}

// Occupancy is the number of students carried as a percentage of seats.
func (v Vehicle) Occupancy() null.Float64 {
	return collection.Percent(float64(v.Students), float64(v.Capacity))
}

type Route struct {
	ID         string      `json:"id" yaml:"id"`
	Code       string      `json:"code" yaml:"code"`
	Name       string      `json:"name" yaml:"name"`
	Stops      []string    `json:"stops" yaml:"stops"`
	DistanceKm float64     `json:"distance_km" yaml:"distance_km"`
	Duration   string      `json:"duration" yaml:"duration"`
	Vehicle    null.String `json:"vehicle" yaml:"vehicle"`
	Students   int         `json:"students" yaml:"students"`
	Morning    string      `json:"morning" yaml:"morning"`
	Afternoon  string      `json:"afternoon" yaml:"afternoon"`
	Status     string      `json:"status" yaml:"status"`
}

type Driver struct {
	ID            string       `json:"id" yaml:"id"`
	Name          string       `json:"name" yaml:"name"`
	License       string       `json:"license" yaml:"license"`
	LicenseExpiry string       `json:"license_expiry" yaml:"license_expiry"`
	Phone         string       `json:"phone" yaml:"phone"`
	Experience    int          `json:"experience" yaml:"experience"`
	Vehicle       null.String  `json:"vehicle" yaml:"vehicle"`
	Status        string       `json:"status" yaml:"status"`
	Rating        null.Float64 `json:"rating" yaml:"rating"`
}

type VehicleFilter struct {
	Search   string `query:"search"`
	Type     string `query:"type" validate:"omitempty,oneof=all bus minibus van"`
	Status   string `query:"status" validate:"omitempty,oneof=all active maintenance inactive"`
	Ordering string `query:"ordering"`
}

func (qf *VehicleFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Type = core.CleanString(qf.Type, true /* lower */)
	qf.Status = core.CleanString(qf.Status, true /* lower */)
}

func (qf VehicleFilter) Query() collection.Query {
	return collection.Query{
		Search: qf.Search,
		Filters: map[string]string{
			"type":   qf.Type,
			"status": qf.Status,
		},
		Ordering: collection.ParseOrdering(qf.Ordering),
	}
}

type RouteFilter struct {
	Search   string `query:"search"`
	Status   string `query:"status" validate:"omitempty,oneof=all active inactive"`
	Ordering string `query:"ordering"`
}

func (qf *RouteFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Status = core.CleanString(qf.Status, true /* lower */)
}

func (qf RouteFilter) Query() collection.Query {
	return collection.Query{
		Search:   qf.Search,
		Filters:  map[string]string{"status": qf.Status},
		Ordering: collection.ParseOrdering(qf.Ordering),
	}
}

type DriverFilter struct {
	Search   string `query:"search"`
	Status   string `query:"status" validate:"omitempty,oneof=all active on-leave inactive"`
	Ordering string `query:"ordering"`
}

func (qf *DriverFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Status = core.CleanString(qf.Status, true /* lower */)
}

func (qf DriverFilter) Query() collection.Query {
	return collection.Query{
		Search:   qf.Search,
		Filters:  map[string]string{"status": qf.Status},
		Ordering: collection.ParseOrdering(qf.Ordering),
	}
}

var Vehicles = collection.Config[Vehicle]{
	ID: func(v Vehicle) string { return v.ID },
	Search: []collection.Field[Vehicle]{
		func(v Vehicle) null.String { return collection.Str(v.Registration) },
		func(v Vehicle) null.String { return collection.Str(v.Model) },
		func(v Vehicle) null.String { return v.Driver },
	},
	Filters: map[string]collection.Field[Vehicle]{
		"type":   func(v Vehicle) null.String { return collection.Str(v.Type) },
		"status": func(v Vehicle) null.String { return collection.Str(v.Status) },
	},
	Orderings: map[string]collection.Less[Vehicle]{
		"registration": collection.ByString(func(v Vehicle) null.String { return collection.Str(v.Registration) }),
		"capacity":     collection.ByNumber(func(v Vehicle) float64 { return float64(v.Capacity) }),
		"mileage":      collection.ByNumber(func(v Vehicle) float64 { return float64(v.Mileage) }),
		"occupancy":    collection.ByOptionalNumber(Vehicle.Occupancy),
	},
	Columns: []collection.Column[Vehicle]{
		{Header: "ID", Value: func(v Vehicle) interface{} { return v.ID }},
		{Header: "Registration", Value: func(v Vehicle) interface{} { return v.Registration }},
		{Header: "Type", Value: func(v Vehicle) interface{} { return v.Type }},
		{Header: "Model", Value: func(v Vehicle) interface{} { return v.Model }},
		{Header: "Capacity", Value: func(v Vehicle) interface{} { return v.Capacity }},
		{Header: "Students", Value: func(v Vehicle) interface{} { return v.Students }},
		{Header: "Driver", Value: func(v Vehicle) interface{} { return v.Driver }},
		{Header: "Route", Value: func(v Vehicle) interface{} { return v.Route }},
		{Header: "Mileage", Value: func(v Vehicle) interface{} { return v.Mileage }},
		{Header: "Status", Value: func(v Vehicle) interface{} { return v.Status }},
	},
}

var Routes = collection.Config[Route]{
	ID: func(r Route) string { return r.ID },
	Search: []collection.Field[Route]{
		func(r Route) null.String { return collection.Str(r.Name) },
		func(r Route) null.String { return collection.Str(r.Code) },
		func(r Route) null.String { return collection.Str(strings.Join(r.Stops, " ")) },
	},
	Filters: map[string]collection.Field[Route]{
		"status": func(r Route) null.String { return collection.Str(r.Status) },
	},
	Orderings: map[string]collection.Less[Route]{
		"name":     collection.ByString(func(r Route) null.String { return collection.Str(r.Name) }),
		"distance": collection.ByNumber(func(r Route) float64 { return r.DistanceKm }),
		"students": collection.ByNumber(func(r Route) float64 { return float64(r.Students) }),
	},
	Columns: []collection.Column[Route]{
		{Header: "ID", Value: func(r Route) interface{} { return r.ID }},
		{Header: "Code", Value: func(r Route) interface{} { return r.Code }},
		{Header: "Name", Value: func(r Route) interface{} { return r.Name }},
		{Header: "Stops", Value: func(r Route) interface{} { return r.Stops }},
		{Header: "Distance (km)", Value: func(r Route) interface{} { return r.DistanceKm }},
		{Header: "Duration", Value: func(r Route) interface{} { return r.Duration }},
		{Header: "Vehicle", Value: func(r Route) interface{} { return r.Vehicle }},
		{Header: "Students", Value: func(r Route) interface{} { return r.Students }},
		{Header: "Status", Value: func(r Route) interface{} { return r.Status }},
	},
}

var Drivers = collection.Config[Driver]{
	ID: func(d Driver) string { return d.ID },
	Search: []collection.Field[Driver]{
		func(d Driver) null.String { return collection.Str(d.Name) },
		func(d Driver) null.String { return collection.Str(d.License) },
		func(d Driver) null.String { return collection.Str(d.Phone) },
	},
	Filters: map[string]collection.Field[Driver]{
		"status": func(d Driver) null.String { return collection.Str(d.Status) },
	},
	Orderings: map[string]collection.Less[Driver]{
		"name":       collection.ByString(func(d Driver) null.String { return collection.Str(d.Name) }),
		"experience": collection.ByNumber(func(d Driver) float64 { return float64(d.Experience) }),
		"rating":     collection.ByOptionalNumber(func(d Driver) null.Float64 { return d.Rating }),
	},
	Columns: []collection.Column[Driver]{
		{Header: "ID", Value: func(d Driver) interface{} { return d.ID }},
		{Header: "Name", Value: func(d Driver) interface{} { return d.Name }},
		{Header: "License", Value: func(d Driver) interface{} { return d.License }},
		{Header: "License Expiry", Value: func(d Driver) interface{} { return d.LicenseExpiry }},
		{Header: "Phone", Value: func(d Driver) interface{} { return d.Phone }},
		{Header: "Experience", Value: func(d Driver) interface{} { return d.Experience }},
		{Header: "Vehicle", Value: func(d Driver) interface{} { return d.Vehicle }},
		{Header: "Rating", Value: func(d Driver) interface{} { return d.Rating }},
		{Header: "Status", Value: func(d Driver) interface{} { return d.Status }},
	},
}

type Stats struct {
	Fleet               int          `json:"fleet"`
	ActiveVehicles      int          `json:"active_vehicles"`
	Seats               int          `json:"seats"`
	StudentsCarried     int          `json:"students_carried"`
	SeatUtilization     null.Float64 `json:"seat_utilization"`
	Routes              int          `json:"routes"`
	TotalDistanceKm     float64      `json:"total_distance_km"`
	Drivers             int          `json:"drivers"`
	AverageDriverRating null.Float64 `json:"average_driver_rating"`
}

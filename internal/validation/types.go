package validation

// FlightStatusQuery is the query string of GET /api/GetFlightStatus.
type FlightStatusQuery struct {
	FlightNumber  string `form:"flightNumber" validate:"required"`                // provider ident, e.g. UAL123
	DepartureTime string `form:"departureTime" validate:"required,departuretime"` // YYYY-MM-DDTHH:mm:ss
}

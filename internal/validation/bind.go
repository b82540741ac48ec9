package validation

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
)

// MissingParamsMessage is returned when flightNumber or departureTime is absent.
const MissingParamsMessage = "Please pass flightNumber and date values in the query string"

// InvalidDepartureTimeFormat is the fmt pattern for a departureTime that does not parse.
const InvalidDepartureTimeFormat = "Invalid departureTime '%s', expected YYYY-MM-DDTHH:mm:ss"

// BindFlightStatusQuery binds the query string into out and runs validation.
// If validation fails, it writes a plain-text 400 and returns an error for the handler to short-circuit.
func BindFlightStatusQuery(c *gin.Context, out *FlightStatusQuery, v *validatorv10.Validate) error {
	if err := c.ShouldBindQuery(out); err != nil {
		c.String(http.StatusBadRequest, MissingParamsMessage)
		return err
	}

	if err := v.Struct(out); err != nil {
		c.String(http.StatusBadRequest, messageFor(err, out))
		return err
	}
	return nil
}

func messageFor(err error, q *FlightStatusQuery) string {
	var ve validatorv10.ValidationErrors
	if !errors.As(err, &ve) {
		return MissingParamsMessage
	}
	for _, fe := range ve {
		if fe.Tag() == "required" {
			return MissingParamsMessage
		}
	}
	return fmt.Sprintf(InvalidDepartureTimeFormat, q.DepartureTime)
}

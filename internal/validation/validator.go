package validation

import (
	"fmt"

	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/imrishuroy/flight-refund-status/internal/flightaware"
)

// New returns a validator with the departuretime rule registered.
func New() *validatorv10.Validate {
	v := validatorv10.New()

	// departuretime accepts values whose first 19 characters read as YYYY-MM-DDTHH:mm:ss.
	if err := v.RegisterValidation("departuretime", validDepartureTime); err != nil {
		panic(fmt.Sprintf("register departuretime validation: %v", err))
	}

	return v
}

func validDepartureTime(fl validatorv10.FieldLevel) bool {
	return flightaware.ValidDepartureTime(fl.Field().String())
}

package flightaware

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrInvalidDepartureTime is returned when a departure time does not follow YYYY-MM-DDTHH:mm:ss.
var ErrInvalidDepartureTime = errors.New("invalid departure time")

// departureTimeLen is the number of significant characters in a departure time value.
const departureTimeLen = 19

// FlightID builds the FlightXML2 ident "<flightNumber>@<epoch>" for a scheduled departure.
//
// departureTime is read as a wall-clock time in host, using the zone rules in force on the
// departure date. A nil host falls back to a fixed zone at hostOffset. hostOffset is the host's
// current UTC offset; when it is zero, utcCorrection is subtracted so the epoch lines up with
// the local time the caller meant.
func FlightID(flightNumber, departureTime string, host *time.Location, hostOffset, utcCorrection time.Duration) (string, error) {
	parts, err := splitDepartureTime(departureTime)
	if err != nil {
		return "", err
	}

	if host == nil {
		host = time.FixedZone("host", int(hostOffset/time.Second))
	}
	epoch := time.Date(parts[0], time.Month(parts[1]), parts[2], parts[3], parts[4], parts[5], 0, host).Unix()
	if hostOffset == 0 {
		epoch -= int64(utcCorrection / time.Second)
	}

	return flightNumber + "@" + strconv.FormatInt(epoch, 10), nil
}

// ValidDepartureTime reports whether value carries a parseable YYYY-MM-DDTHH:mm:ss prefix.
func ValidDepartureTime(value string) bool {
	_, err := splitDepartureTime(value)
	return err == nil
}

func splitDepartureTime(value string) ([6]int, error) {
	var out [6]int
	if len(value) < departureTimeLen {
		return out, fmt.Errorf("%w: %q is shorter than %d characters", ErrInvalidDepartureTime, value, departureTimeLen)
	}

	// year, month, day, hour, minute, second
	spans := [6][2]int{{0, 4}, {5, 7}, {8, 10}, {11, 13}, {14, 16}, {17, 19}}
	for i, s := range spans {
		n, err := strconv.Atoi(value[s[0]:s[1]])
		if err != nil {
			return out, fmt.Errorf("%w: %q: %v", ErrInvalidDepartureTime, value, err)
		}
		out[i] = n
	}
	return out, nil
}

package refund

import (
	"strconv"
	"time"
)

// displayLayout is ISO-8601 with milliseconds and the trailing zone marker dropped.
const displayLayout = "2006-01-02T15:04:05.000"

// Evaluate maps provider timings to a status and refund amount.
// displayOffset is the UTC offset used to render timestamps as local wall-clock times.
func Evaluate(flight FlightInfo, displayOffset time.Duration) Decision {
	d := Decision{
		ID:                     flight.Ident + "@" + strconv.FormatInt(flight.FiledDepartureTime, 10),
		ScheduledDepartureTime: render(flight.FiledDepartureTime, displayOffset),
		Refund:                 RefundNone,
	}
	if flight.ActualDepartureTime > 0 {
		s := render(flight.ActualDepartureTime, displayOffset)
		d.ActualDepartureTime = &s
	}
	if flight.ActualArrivalTime > 0 {
		s := render(flight.ActualArrivalTime, displayOffset)
		d.ActualArrivalTime = &s
	}
	if flight.ActualDepartureTime > 0 && flight.FiledDepartureTime > 0 &&
		flight.ActualDepartureTime > flight.FiledDepartureTime {
		delay := (flight.ActualDepartureTime - flight.FiledDepartureTime) / 60
		d.DelayInMinutes = &delay
	}

	switch {
	case flight.ActualDepartureTime == 0:
		d.FlightStatus = StatusScheduled
	case flight.ActualDepartureTime == departureCancelled:
		d.FlightStatus = StatusCancelled
		d.Refund = RefundCancelled
	case d.DelayInMinutes != nil && *d.DelayInMinutes > longDelayMinutes:
		d.FlightStatus = StatusDelayed
		d.Refund = RefundLongDelay
	case d.DelayInMinutes != nil && *d.DelayInMinutes > shortDelayMinutes:
		d.FlightStatus = StatusDelayed
		d.Refund = RefundShortDelay
	case d.DelayInMinutes != nil:
		d.FlightStatus = StatusOnTime
	case flight.ActualDepartureTime > 0:
		// departed at or ahead of the filed time
		d.FlightStatus = StatusOnTime
	}
	return d
}

func render(epoch int64, offset time.Duration) string {
	return time.Unix(epoch, 0).Add(offset).UTC().Format(displayLayout)
}

package refund

// Status values reported in a Decision.
const (
	StatusScheduled = "scheduled"
	StatusCancelled = "cancelled"
	StatusDelayed   = "delayed"
	StatusOnTime    = "on time"
)

// Refund amounts, in whole monetary units.
const (
	RefundCancelled    = 300
	RefundLongDelay    = 200
	RefundShortDelay   = 100
	RefundNone         = 0
	longDelayMinutes   = 60
	shortDelayMinutes  = 30
	departureCancelled = -1
)

// FlightInfo is the subset of provider flight data the rules need. Times are epoch seconds (UTC).
type FlightInfo struct {
	Ident               string
	FiledDepartureTime  int64
	ActualDepartureTime int64 // 0 = not departed, -1 = cancelled
	ActualArrivalTime   int64 // <= 0 = not arrived
}

// Decision is the refund determination returned to callers.
type Decision struct {
	ID                     string  `json:"id"`
	FlightStatus           string  `json:"flightStatus"`
	ScheduledDepartureTime string  `json:"scheduledDepartureTime"`
	ActualDepartureTime    *string `json:"actualDepartureTime"`
	ActualArrivalTime      *string `json:"actualArrivalTime"`
	DelayInMinutes         *int64  `json:"delayInMinutes"`
	Refund                 int     `json:"refund"`
}

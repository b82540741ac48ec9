package flightaware

import "github.com/imrishuroy/flight-refund-status/internal/refund"

// FlightInfoExResponse is the FlightXML2 FlightInfoEx envelope.
type FlightInfoExResponse struct {
	FlightInfoExResult struct {
		NextOffset int      `json:"next_offset"`
		Flights    []Flight `json:"flights"`
	} `json:"FlightInfoExResult"`
}

// Flight mirrors FlightXML2's FlightExStruct. Times are epoch seconds.
type Flight struct {
	FaFlightID           string `json:"faFlightID"`
	Ident                string `json:"ident"`
	AircraftType         string `json:"aircrafttype"`
	FiledETE             string `json:"filed_ete"`
	FiledTime            int64  `json:"filed_time"`
	FiledDepartureTime   int64  `json:"filed_departuretime"`
	FiledAirspeedKts     int    `json:"filed_airspeed_kts"`
	FiledAirspeedMach    string `json:"filed_airspeed_mach"`
	FiledAltitude        int    `json:"filed_altitude"`
	Route                string `json:"route"`
	ActualDepartureTime  int64  `json:"actualdeparturetime"`
	EstimatedArrivalTime int64  `json:"estimatedarrivaltime"`
	ActualArrivalTime    int64  `json:"actualarrivaltime"`
	Diverted             string `json:"diverted"`
	Origin               string `json:"origin"`
	Destination          string `json:"destination"`
	OriginName           string `json:"originName"`
	OriginCity           string `json:"originCity"`
	DestinationName      string `json:"destinationName"`
	DestinationCity      string `json:"destinationCity"`
}

// FlightInfo converts the provider record to the refund rules input.
func (f Flight) FlightInfo() refund.FlightInfo {
	return refund.FlightInfo{
		Ident:               f.Ident,
		FiledDepartureTime:  f.FiledDepartureTime,
		ActualDepartureTime: f.ActualDepartureTime,
		ActualArrivalTime:   f.ActualArrivalTime,
	}
}

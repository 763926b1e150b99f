package response

import "flight-booking/internal/data/entity"

type FlightResponse struct {
	ID          string  `json:"id"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Date        string  `json:"date"`
	Price       float64 `json:"price"`
	Seats       int     `json:"seats"`
}

func FlightToResponse(flight *entity.Flight) FlightResponse {
	return FlightResponse{
		ID:          flight.ID.String(),
		Origin:      flight.Origin,
		Destination: flight.Destination,
		Date:        flight.Date.Format("2006-01-02"),
		Price:       flight.Price,
		Seats:       flight.Seats,
	}
}

func FlightsToResponse(flights []*entity.Flight) []FlightResponse {
	responses := make([]FlightResponse, len(flights))
	for i, flight := range flights {
		responses[i] = FlightToResponse(flight)
	}
	return responses
}

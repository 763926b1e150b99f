package wire

import (
	"flight-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireFlight(r chi.Router, flightHandler *adaptor.FlightHandler) {
	// GET /api/flights - list flights, optional origin/destination filter
	r.Get("/api/flights", flightHandler.GetFlights)

	// POST /api/flights - add a flight (admin)
	r.Post("/api/flights", flightHandler.CreateFlight)

	// DELETE /api/flights/{id} - remove a flight (admin)
	r.Delete("/api/flights/{id}", flightHandler.DeleteFlight)
}

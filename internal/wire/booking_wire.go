package wire

import (
	"flight-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	// POST /api/book - book a seat on a flight
	r.Post("/api/book", bookingHandler.BookFlight)

	// GET /api/bookings/{email} - booking history for a traveler
	r.Get("/api/bookings/{email}", bookingHandler.GetBookingsByEmail)
}

package repository

import (
	"flight-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Flight  FlightRepository
	Booking BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Flight:  NewFlightRepository(db, log),
		Booking: NewBookingRepository(db, log),
	}
}

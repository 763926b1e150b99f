package usecase

import (
	"flight-booking/internal/data/repository"
	"flight-booking/internal/notifier"

	"go.uber.org/zap"
)

type Service struct {
	Flight  FlightService
	Booking BookingService
}

func NewService(repo *repository.Repository, cache FlightCache, n notifier.Notifier, log *zap.Logger) *Service {
	return &Service{
		Flight:  NewFlightService(repo, cache, log),
		Booking: NewBookingService(repo, cache, n, log),
	}
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"flight-booking/internal/data/entity"
	"flight-booking/internal/data/repository"
	"flight-booking/internal/dto/request"
	"flight-booking/internal/dto/response"
	"flight-booking/internal/notifier"
	"flight-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	BookFlight(ctx context.Context, req *request.BookingRequest) (*response.BookingResponse, error)
	GetBookingsByEmail(ctx context.Context, email string) ([]response.BookingDetailResponse, error)
}

type bookingService struct {
	repo     *repository.Repository
	cache    FlightCache
	notifier notifier.Notifier
	log      *zap.Logger
}

func NewBookingService(repo *repository.Repository, cache FlightCache, n notifier.Notifier, log *zap.Logger) BookingService {
	return &bookingService{
		repo:     repo,
		cache:    cache,
		notifier: n,
		log:      log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) BookFlight(ctx context.Context, req *request.BookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Book flight validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", utils.ErrValidation, utils.FormatValidationErrors(errs))
	}

	flightID, err := uuid.Parse(req.FlightID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid flight id", utils.ErrValidation)
	}

	booking := &entity.Booking{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		FlightID:      flightID,
		PassengerName: req.PassengerName,
		Email:         req.Email,
	}

	// Seat decrement and ledger append happen in one transaction; the
	// conditional update keeps seats from ever going negative under
	// concurrent bookings.
	if err := s.repo.Booking.CreateWithSeatHold(ctx, booking); err != nil {
		switch {
		case errors.Is(err, repository.ErrNoRows):
			return nil, utils.ErrFlightNotFound
		case errors.Is(err, repository.ErrNoSeats):
			return nil, utils.ErrSoldOut
		default:
			s.log.Error("Failed to book flight",
				zap.Error(err),
				zap.String("flight_id", req.FlightID),
			)
			return nil, fmt.Errorf("%w: book flight", utils.ErrStorage)
		}
	}

	s.invalidateCache(ctx)

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("flight_id", req.FlightID),
		zap.String("email", req.Email),
	)

	// Confirmation is best-effort; a lookup failure here only costs the
	// email, never the committed booking.
	flight, err := s.repo.Flight.FindByID(ctx, flightID)
	if err != nil {
		s.log.Warn("Failed to load flight for notification",
			zap.Error(err),
			zap.String("flight_id", req.FlightID),
		)
	}
	s.notifier.NotifyBooking(booking, flight)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetBookingsByEmail(ctx context.Context, email string) ([]response.BookingDetailResponse, error) {
	details, err := s.repo.Booking.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to get bookings by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("%w: get bookings", utils.ErrStorage)
	}

	return response.BookingDetailsToResponse(details), nil
}

func (s *bookingService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateFlights(ctx); err != nil {
		s.log.Warn("Flight cache invalidation failed", zap.Error(err))
	}
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"flight-booking/internal/data/entity"
	"flight-booking/internal/data/repository"
	"flight-booking/internal/dto/request"
	"flight-booking/internal/dto/response"
	"flight-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FlightService interface {
	GetFlights(ctx context.Context, origin, destination string) ([]response.FlightResponse, error)
	CreateFlight(ctx context.Context, req *request.FlightRequest) (*response.FlightResponse, error)
	DeleteFlight(ctx context.Context, flightID string) error
}

// FlightCache caches the catalog list. A nil cache disables caching.
type FlightCache interface {
	GetFlights(ctx context.Context) ([]*entity.Flight, error)
	SetFlights(ctx context.Context, flights []*entity.Flight) error
	InvalidateFlights(ctx context.Context) error
}

type flightService struct {
	repo  *repository.Repository
	cache FlightCache
	log   *zap.Logger
}

func NewFlightService(repo *repository.Repository, cache FlightCache, log *zap.Logger) FlightService {
	return &flightService{
		repo:  repo,
		cache: cache,
		log:   log.With(zap.String("service", "flight")),
	}
}

func (s *flightService) GetFlights(ctx context.Context, origin, destination string) ([]response.FlightResponse, error) {
	flights, err := s.listFlights(ctx)
	if err != nil {
		s.log.Error("Failed to get flights", zap.Error(err))
		return nil, fmt.Errorf("%w: get flights", utils.ErrStorage)
	}

	filtered := filterFlights(flights, origin, destination)

	s.log.Debug("Flights retrieved",
		zap.Int("total", len(flights)),
		zap.Int("matched", len(filtered)),
		zap.String("origin", origin),
		zap.String("destination", destination),
	)

	return response.FlightsToResponse(filtered), nil
}

// listFlights is cache-aside: serve from redis when warm, fall back to
// the database and repopulate.
func (s *flightService) listFlights(ctx context.Context) ([]*entity.Flight, error) {
	if s.cache != nil {
		cached, err := s.cache.GetFlights(ctx)
		if err != nil {
			s.log.Warn("Flight cache read failed", zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.Flight.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetFlights(ctx, flights); err != nil {
			s.log.Warn("Flight cache write failed", zap.Error(err))
		}
	}

	return flights, nil
}

// filterFlights applies case-insensitive substring matching on origin
// and destination. Empty terms match everything.
func filterFlights(flights []*entity.Flight, origin, destination string) []*entity.Flight {
	if origin == "" && destination == "" {
		return flights
	}

	origin = strings.ToLower(origin)
	destination = strings.ToLower(destination)

	matched := make([]*entity.Flight, 0, len(flights))
	for _, flight := range flights {
		if !strings.Contains(strings.ToLower(flight.Origin), origin) {
			continue
		}
		if !strings.Contains(strings.ToLower(flight.Destination), destination) {
			continue
		}
		matched = append(matched, flight)
	}
	return matched
}

func (s *flightService) CreateFlight(ctx context.Context, req *request.FlightRequest) (*response.FlightResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create flight validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", utils.ErrValidation, utils.FormatValidationErrors(errs))
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date: %v", utils.ErrValidation, err)
	}

	now := time.Now()
	flight := &entity.Flight{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Origin:      req.Origin,
		Destination: req.Destination,
		Date:        date,
		Price:       *req.Price,
		Seats:       *req.Seats,
	}

	if err := s.repo.Flight.Create(ctx, flight); err != nil {
		s.log.Error("Failed to create flight", zap.Error(err))
		return nil, fmt.Errorf("%w: create flight", utils.ErrStorage)
	}

	s.invalidateCache(ctx)

	s.log.Info("Flight created",
		zap.String("flight_id", flight.ID.String()),
		zap.String("origin", flight.Origin),
		zap.String("destination", flight.Destination),
		zap.Int("seats", flight.Seats),
	)

	resp := response.FlightToResponse(flight)
	return &resp, nil
}

func (s *flightService) DeleteFlight(ctx context.Context, flightID string) error {
	id, err := uuid.Parse(flightID)
	if err != nil {
		return fmt.Errorf("%w: invalid flight id", utils.ErrValidation)
	}

	if err := s.repo.Flight.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return utils.ErrFlightNotFound
		}
		s.log.Error("Failed to delete flight",
			zap.Error(err),
			zap.String("flight_id", flightID),
		)
		return fmt.Errorf("%w: delete flight", utils.ErrStorage)
	}

	s.invalidateCache(ctx)

	return nil
}

func (s *flightService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateFlights(ctx); err != nil {
		s.log.Warn("Flight cache invalidation failed", zap.Error(err))
	}
}

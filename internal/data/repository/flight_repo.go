package repository

import (
	"context"
	"errors"
	"fmt"

	"flight-booking/internal/data/entity"
	"flight-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type FlightRepository interface {
	Create(ctx context.Context, flight *entity.Flight) error
	FindAll(ctx context.Context) ([]*entity.Flight, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Flight, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type flightRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFlightRepository(db database.PgxIface, log *zap.Logger) FlightRepository {
	return &flightRepository{
		db:  db,
		log: log.With(zap.String("repository", "flight")),
	}
}

func (r *flightRepository) Create(ctx context.Context, flight *entity.Flight) error {
	query := `
		INSERT INTO flights (id, origin, destination, date, price, seats, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		flight.ID,
		flight.Origin,
		flight.Destination,
		flight.Date,
		flight.Price,
		flight.Seats,
		flight.CreatedAt,
		flight.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create flight",
			zap.Error(err),
			zap.String("origin", flight.Origin),
			zap.String("destination", flight.Destination),
		)
		return fmt.Errorf("create flight: %w", err)
	}

	return nil
}

func (r *flightRepository) FindAll(ctx context.Context) ([]*entity.Flight, error) {
	query := `
		SELECT id, origin, destination, date, price, seats, created_at, updated_at
		FROM flights
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all flights", zap.Error(err))
		return nil, fmt.Errorf("find flights: %w", err)
	}
	defer rows.Close()

	flights := make([]*entity.Flight, 0)
	for rows.Next() {
		var flight entity.Flight
		err := rows.Scan(
			&flight.ID,
			&flight.Origin,
			&flight.Destination,
			&flight.Date,
			&flight.Price,
			&flight.Seats,
			&flight.CreatedAt,
			&flight.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan flight row", zap.Error(err))
			return nil, fmt.Errorf("scan flight: %w", err)
		}
		flights = append(flights, &flight)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate flights: %w", err)
	}

	return flights, nil
}

func (r *flightRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Flight, error) {
	query := `
		SELECT id, origin, destination, date, price, seats, created_at, updated_at
		FROM flights
		WHERE id = $1
	`

	var flight entity.Flight
	err := r.db.QueryRow(ctx, query, id).Scan(
		&flight.ID,
		&flight.Origin,
		&flight.Destination,
		&flight.Date,
		&flight.Price,
		&flight.Seats,
		&flight.CreatedAt,
		&flight.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find flight by ID",
			zap.Error(err),
			zap.String("flight_id", id.String()),
		)
		return nil, fmt.Errorf("find flight %s: %w", id.String(), err)
	}

	return &flight, nil
}

func (r *flightRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM flights WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete flight",
			zap.Error(err),
			zap.String("flight_id", id.String()),
		)
		return fmt.Errorf("delete flight %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNoRows
	}

	r.log.Info("Flight deleted", zap.String("flight_id", id.String()))
	return nil
}

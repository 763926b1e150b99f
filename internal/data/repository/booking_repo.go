package repository

import (
	"context"
	"fmt"

	"flight-booking/internal/data/entity"
	"flight-booking/pkg/database"

	"go.uber.org/zap"
)

type BookingRepository interface {
	// CreateWithSeatHold atomically decrements the flight's seat
	// counter and appends the booking in one transaction. Returns
	// ErrNoSeats when the flight has no seats left and ErrNoRows when
	// the flight does not exist.
	CreateWithSeatHold(ctx context.Context, booking *entity.Booking) error
	FindByEmail(ctx context.Context, email string) ([]*entity.BookingDetail, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) CreateWithSeatHold(ctx context.Context, booking *entity.Booking) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin booking transaction", zap.Error(err))
		return fmt.Errorf("begin booking tx: %w", err)
	}
	defer tx.Rollback(ctx)

	// Conditional decrement closes the race window: two concurrent
	// bookings of the last seat can never both match seats > 0.
	result, err := tx.Exec(ctx, `
		UPDATE flights SET seats = seats - 1, updated_at = NOW()
		WHERE id = $1 AND seats > 0
	`, booking.FlightID)
	if err != nil {
		r.log.Error("Failed to decrement seats",
			zap.Error(err),
			zap.String("flight_id", booking.FlightID.String()),
		)
		return fmt.Errorf("decrement seats: %w", err)
	}

	if result.RowsAffected() == 0 {
		// Distinguish sold out from missing flight
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM flights WHERE id = $1)`, booking.FlightID).Scan(&exists); err != nil {
			return fmt.Errorf("check flight existence: %w", err)
		}
		if !exists {
			return ErrNoRows
		}
		return ErrNoSeats
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO bookings (id, flight_id, passenger_name, email, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`,
		booking.ID,
		booking.FlightID,
		booking.PassengerName,
		booking.Email,
		booking.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to insert booking",
			zap.Error(err),
			zap.String("flight_id", booking.FlightID.String()),
		)
		return fmt.Errorf("insert booking: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit booking transaction", zap.Error(err))
		return fmt.Errorf("commit booking tx: %w", err)
	}

	return nil
}

func (r *bookingRepository) FindByEmail(ctx context.Context, email string) ([]*entity.BookingDetail, error) {
	// LEFT JOIN keeps bookings whose flight was deleted; their flight
	// columns come back NULL.
	query := `
		SELECT b.id, b.passenger_name, b.created_at,
		       f.origin, f.destination, f.date, f.price
		FROM bookings b
		LEFT JOIN flights f ON b.flight_id = f.id
		WHERE b.email = $1
		ORDER BY b.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		r.log.Error("Failed to find bookings by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find bookings by email: %w", err)
	}
	defer rows.Close()

	details := make([]*entity.BookingDetail, 0)
	for rows.Next() {
		var detail entity.BookingDetail
		err := rows.Scan(
			&detail.BookingID,
			&detail.PassengerName,
			&detail.BookingDate,
			&detail.Origin,
			&detail.Destination,
			&detail.FlightDate,
			&detail.Price,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		details = append(details, &detail)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate bookings: %w", err)
	}

	return details, nil
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// Booking is an append-only ledger entry. Rows are never updated or
// deleted, and they survive deletion of the referenced flight.
type Booking struct {
	BaseSimple
	FlightID      uuid.UUID `db:"flight_id"`
	PassengerName string    `db:"passenger_name"`
	Email         string    `db:"email"`
}

// BookingDate is when the ledger entry was appended.
func (b *Booking) BookingDate() time.Time {
	return b.CreatedAt
}

// BookingDetail is a query-time join of a booking with its flight.
// Flight fields are pointers because the flight may have been deleted
// after the booking was made; they serialize as null in that case.
type BookingDetail struct {
	BookingID     uuid.UUID  `db:"booking_id"`
	PassengerName string     `db:"passenger_name"`
	BookingDate   time.Time  `db:"booking_date"`
	Origin        *string    `db:"origin"`
	Destination   *string    `db:"destination"`
	FlightDate    *time.Time `db:"flight_date"`
	Price         *float64   `db:"price"`
}

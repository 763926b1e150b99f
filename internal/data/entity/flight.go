package entity

import "time"

// Flight is a catalog row. Seats is the live availability counter and
// is only ever decremented through the booking transaction.
type Flight struct {
	Base
	Origin      string    `db:"origin"`
	Destination string    `db:"destination"`
	Date        time.Time `db:"date"`
	Price       float64   `db:"price"`
	Seats       int       `db:"seats"`
}

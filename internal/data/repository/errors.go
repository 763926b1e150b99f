package repository

import "errors"

// Storage-level sentinels. The service layer translates these into the
// user-facing error taxonomy.
var (
	// ErrNoRows means the targeted row does not exist.
	ErrNoRows = errors.New("no rows affected")

	// ErrNoSeats means the conditional seat decrement matched no row
	// because the counter is already at zero.
	ErrNoSeats = errors.New("no seats available")
)

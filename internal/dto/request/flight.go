package request

// FlightRequest is the admin create payload. Price and Seats are
// pointers so a legitimate zero survives the required check while a
// missing field still fails it.
type FlightRequest struct {
	Origin      string   `json:"origin" validate:"required"`
	Destination string   `json:"destination" validate:"required"`
	Date        string   `json:"date" validate:"required,datetime=2006-01-02"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Seats       *int     `json:"seats" validate:"required,gte=0"`
}

package request

type BookingRequest struct {
	FlightID      string `json:"flight_id" validate:"required,uuid"`
	PassengerName string `json:"passenger_name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
}

package response

import (
	"time"

	"flight-booking/internal/data/entity"
)

type BookingResponse struct {
	BookingID     string `json:"booking_id"`
	FlightID      string `json:"flight_id"`
	PassengerName string `json:"passenger_name"`
	Email         string `json:"email"`
	BookingDate   string `json:"booking_date"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		BookingID:     booking.ID.String(),
		FlightID:      booking.FlightID.String(),
		PassengerName: booking.PassengerName,
		Email:         booking.Email,
		BookingDate:   booking.BookingDate().Format(time.RFC3339),
	}
}

// BookingDetailResponse is a ledger entry joined with live flight data.
// Flight fields are null when the flight has been deleted since booking.
type BookingDetailResponse struct {
	BookingID     string   `json:"booking_id"`
	PassengerName string   `json:"passenger_name"`
	BookingDate   string   `json:"booking_date"`
	Origin        *string  `json:"origin"`
	Destination   *string  `json:"destination"`
	FlightDate    *string  `json:"flight_date"`
	Price         *float64 `json:"price"`
}

func BookingDetailToResponse(detail *entity.BookingDetail) BookingDetailResponse {
	resp := BookingDetailResponse{
		BookingID:     detail.BookingID.String(),
		PassengerName: detail.PassengerName,
		BookingDate:   detail.BookingDate.Format(time.RFC3339),
		Origin:        detail.Origin,
		Destination:   detail.Destination,
		Price:         detail.Price,
	}
	if detail.FlightDate != nil {
		formatted := detail.FlightDate.Format("2006-01-02")
		resp.FlightDate = &formatted
	}
	return resp
}

func BookingDetailsToResponse(details []*entity.BookingDetail) []BookingDetailResponse {
	responses := make([]BookingDetailResponse, len(details))
	for i, detail := range details {
		responses[i] = BookingDetailToResponse(detail)
	}
	return responses
}

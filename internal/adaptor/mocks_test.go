package adaptor

import (
	"context"

	"flight-booking/internal/dto/request"
	"flight-booking/internal/dto/response"

	"github.com/stretchr/testify/mock"
)

type MockFlightService struct {
	mock.Mock
}

func (m *MockFlightService) GetFlights(ctx context.Context, origin, destination string) ([]response.FlightResponse, error) {
	args := m.Called(ctx, origin, destination)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.FlightResponse), args.Error(1)
}

func (m *MockFlightService) CreateFlight(ctx context.Context, req *request.FlightRequest) (*response.FlightResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.FlightResponse), args.Error(1)
}

func (m *MockFlightService) DeleteFlight(ctx context.Context, flightID string) error {
	args := m.Called(ctx, flightID)
	return args.Error(0)
}

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) BookFlight(ctx context.Context, req *request.BookingRequest) (*response.BookingResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.BookingResponse), args.Error(1)
}

func (m *MockBookingService) GetBookingsByEmail(ctx context.Context, email string) ([]response.BookingDetailResponse, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.BookingDetailResponse), args.Error(1)
}

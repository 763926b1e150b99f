package usecase

import (
	"context"

	"flight-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) Create(ctx context.Context, flight *entity.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightRepository) FindAll(ctx context.Context) ([]*entity.Flight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Flight), args.Error(1)
}

func (m *MockFlightRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Flight), args.Error(1)
}

func (m *MockFlightRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) CreateWithSeatHold(ctx context.Context, booking *entity.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) FindByEmail(ctx context.Context, email string) ([]*entity.BookingDetail, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.BookingDetail), args.Error(1)
}

type MockFlightCache struct {
	mock.Mock
}

func (m *MockFlightCache) GetFlights(ctx context.Context) ([]*entity.Flight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Flight), args.Error(1)
}

func (m *MockFlightCache) SetFlights(ctx context.Context, flights []*entity.Flight) error {
	args := m.Called(ctx, flights)
	return args.Error(0)
}

func (m *MockFlightCache) InvalidateFlights(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyBooking(booking *entity.Booking, flight *entity.Flight) {
	m.Called(booking, flight)
}

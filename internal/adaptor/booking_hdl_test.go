package adaptor

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"flight-booking/internal/dto/response"
	"flight-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func bookingRouter(service *MockBookingService) *chi.Mux {
	handler := NewBookingHandler(service, zap.NewNop())
	router := chi.NewRouter()
	router.Post("/api/book", handler.BookFlight)
	router.Get("/api/bookings/{email}", handler.GetBookingsByEmail)
	return router
}

func bookingBody(flightID string) string {
	return `{"flight_id":"` + flightID + `","passenger_name":"Ada Lovelace","email":"ada@example.com"}`
}

func TestBookingHandler_BookFlight(t *testing.T) {
	flightID := uuid.New().String()

	t.Run("confirmed", func(t *testing.T) {
		booked := &response.BookingResponse{
			BookingID:     uuid.New().String(),
			FlightID:      flightID,
			PassengerName: "Ada Lovelace",
			Email:         "ada@example.com",
			BookingDate:   time.Now().Format(time.RFC3339),
		}
		mockService := &MockBookingService{}
		mockService.On("BookFlight", mock.Anything, mock.AnythingOfType("*request.BookingRequest")).Return(booked, nil).Once()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/book", strings.NewReader(bookingBody(flightID)))
		bookingRouter(mockService).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		resp := decodeResponse(t, rec)
		assert.True(t, resp.Status)
		assert.Equal(t, "Booking confirmed!", resp.Message)
		mockService.AssertExpectations(t)
	})

	t.Run("sold out maps to conflict", func(t *testing.T) {
		mockService := &MockBookingService{}
		mockService.On("BookFlight", mock.Anything, mock.Anything).Return(nil, utils.ErrSoldOut).Once()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/book", strings.NewReader(bookingBody(flightID)))
		bookingRouter(mockService).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		resp := decodeResponse(t, rec)
		assert.False(t, resp.Status)
	})

	t.Run("unknown flight maps to not found", func(t *testing.T) {
		mockService := &MockBookingService{}
		mockService.On("BookFlight", mock.Anything, mock.Anything).Return(nil, utils.ErrFlightNotFound).Once()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/book", strings.NewReader(bookingBody(flightID)))
		bookingRouter(mockService).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		mockService := &MockBookingService{}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/book", strings.NewReader("{not json"))
		bookingRouter(mockService).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "BookFlight")
	})
}

func TestBookingHandler_GetBookingsByEmail(t *testing.T) {
	t.Run("returns bookings", func(t *testing.T) {
		origin := "New York"
		bookings := []response.BookingDetailResponse{
			{BookingID: uuid.New().String(), PassengerName: "Ada Lovelace", BookingDate: time.Now().Format(time.RFC3339), Origin: &origin},
		}
		mockService := &MockBookingService{}
		mockService.On("GetBookingsByEmail", mock.Anything, "ada@example.com").Return(bookings, nil).Once()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/bookings/ada@example.com", nil)
		bookingRouter(mockService).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		resp := decodeResponse(t, rec)
		assert.True(t, resp.Status)
		mockService.AssertExpectations(t)
	})

	t.Run("no bookings is still ok", func(t *testing.T) {
		mockService := &MockBookingService{}
		mockService.On("GetBookingsByEmail", mock.Anything, "nobody@example.com").Return([]response.BookingDetailResponse{}, nil).Once()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/bookings/nobody@example.com", nil)
		bookingRouter(mockService).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("storage error", func(t *testing.T) {
		mockService := &MockBookingService{}
		mockService.On("GetBookingsByEmail", mock.Anything, "ada@example.com").Return(nil, utils.ErrStorage).Once()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/bookings/ada@example.com", nil)
		bookingRouter(mockService).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		resp := decodeResponse(t, rec)
		assert.Equal(t, "Internal server error", resp.Message)
	})
}

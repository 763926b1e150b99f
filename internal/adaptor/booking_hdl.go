package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"flight-booking/internal/dto/request"
	"flight-booking/internal/usecase"
	"flight-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// BookFlight handles POST /api/book
func (h *BookingHandler) BookFlight(w http.ResponseWriter, r *http.Request) {
	var req request.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.BookFlight(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "book flight")
		return
	}

	utils.ResponseCreated(w, "Booking confirmed!", booking)
}

// GetBookingsByEmail handles GET /api/bookings/{email}
func (h *BookingHandler) GetBookingsByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" {
		utils.ResponseBadRequest(w, "Email is required", nil)
		return
	}

	bookings, err := h.service.GetBookingsByEmail(r.Context(), email)
	if err != nil {
		h.handleServiceError(w, err, "get bookings by email")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// handleServiceError maps service errors to HTTP statuses. Sold out and
// not found stay distinguishable for the client.
func (h *BookingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, utils.ErrValidation):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, utils.ErrFlightNotFound):
		h.log.Warn(operation+" failed - flight not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, utils.ErrSoldOut):
		h.log.Warn(operation+" failed - flight full", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

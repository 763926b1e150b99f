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

type FlightHandler struct {
	service usecase.FlightService
	log     *zap.Logger
}

func NewFlightHandler(service usecase.FlightService, log *zap.Logger) *FlightHandler {
	return &FlightHandler{
		service: service,
		log:     log.With(zap.String("handler", "flight")),
	}
}

// GetFlights handles GET /api/flights?origin=&destination=
func (h *FlightHandler) GetFlights(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	flights, err := h.service.GetFlights(r.Context(), query.Get("origin"), query.Get("destination"))
	if err != nil {
		h.handleServiceError(w, err, "get flights")
		return
	}

	utils.ResponseSuccess(w, "success", flights)
}

// CreateFlight handles POST /api/flights
func (h *FlightHandler) CreateFlight(w http.ResponseWriter, r *http.Request) {
	var req request.FlightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	flight, err := h.service.CreateFlight(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create flight")
		return
	}

	utils.ResponseCreated(w, "Flight added successfully", flight)
}

// DeleteFlight handles DELETE /api/flights/{id}
func (h *FlightHandler) DeleteFlight(w http.ResponseWriter, r *http.Request) {
	flightID := chi.URLParam(r, "id")
	if flightID == "" {
		utils.ResponseBadRequest(w, "Flight ID is required", nil)
		return
	}

	if err := h.service.DeleteFlight(r.Context(), flightID); err != nil {
		h.handleServiceError(w, err, "delete flight")
		return
	}

	utils.ResponseSuccess(w, "Flight deleted", nil)
}

// handleServiceError maps service errors to HTTP statuses
func (h *FlightHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, utils.ErrValidation):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, utils.ErrFlightNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

package adaptor

import (
	"encoding/json"
	"net/http"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RentalHandler struct {
	service usecase.RentalService
	log     *zap.Logger
}

func NewRentalHandler(service usecase.RentalService, log *zap.Logger) *RentalHandler {
	return &RentalHandler{
		service: service,
		log:     log.With(zap.String("handler", "rental")),
	}
}

// CreateWalkIn handles POST /api/rentals/walk-in (staff)
func (h *RentalHandler) CreateWalkIn(w http.ResponseWriter, r *http.Request) {
	var req request.CreateWalkInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	rental, err := h.service.CreateWalkIn(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create walk-in rental")
		return
	}

	utils.ResponseCreated(w, "Walk-in rental created", rental)
}

// GetRental handles GET /api/rentals/{id} (staff)
func (h *RentalHandler) GetRental(w http.ResponseWriter, r *http.Request) {
	rental, err := h.service.GetRental(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get rental")
		return
	}

	utils.ResponseSuccess(w, "success", rental)
}

// GetMyRentals handles GET /api/rentals (protected)
func (h *RentalHandler) GetMyRentals(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	rentals, err := h.service.GetCustomerRentals(r.Context(), userID.String(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list rentals")
		return
	}

	utils.ResponseSuccess(w, "success", rentals)
}

// CheckOutRental handles POST /api/rentals/{id}/check-out (staff)
func (h *RentalHandler) CheckOutRental(w http.ResponseWriter, r *http.Request) {
	var req request.CheckOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.CheckOutRental(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "check out rental")
		return
	}

	utils.ResponseSuccess(w, "Rental closed", result)
}

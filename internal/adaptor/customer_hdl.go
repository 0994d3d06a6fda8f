package adaptor

import (
	"net/http"

	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CustomerHandler struct {
	service usecase.CustomerService
	log     *zap.Logger
}

func NewCustomerHandler(service usecase.CustomerService, log *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: service,
		log:     log.With(zap.String("handler", "customer")),
	}
}

// GetProfile handles GET /api/profile (protected)
func (h *CustomerHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	profile, err := h.service.GetProfile(r.Context(), userID.String())
	if err != nil {
		handleServiceError(w, h.log, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, "success", profile)
}

// RecomputeStats handles POST /api/admin/customers/{id}/recompute-stats (admin)
func (h *CustomerHandler) RecomputeStats(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "id")

	profile, err := h.service.RecomputeStats(r.Context(), customerID)
	if err != nil {
		handleServiceError(w, h.log, err, "recompute customer stats")
		return
	}

	utils.ResponseSuccess(w, "Customer stats recomputed", profile)
}

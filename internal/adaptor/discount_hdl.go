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

type DiscountHandler struct {
	service usecase.DiscountService
	log     *zap.Logger
}

func NewDiscountHandler(service usecase.DiscountService, log *zap.Logger) *DiscountHandler {
	return &DiscountHandler{
		service: service,
		log:     log.With(zap.String("handler", "discount")),
	}
}

// CreateDiscount handles POST /api/admin/discounts (admin)
func (h *DiscountHandler) CreateDiscount(w http.ResponseWriter, r *http.Request) {
	var req request.CreateDiscountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	discount, err := h.service.CreateDiscount(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create discount")
		return
	}

	utils.ResponseCreated(w, "Discount code created", discount)
}

// GetDiscounts handles GET /api/admin/discounts (admin)
func (h *DiscountHandler) GetDiscounts(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	discounts, err := h.service.GetDiscounts(r.Context(), activeOnly)
	if err != nil {
		handleServiceError(w, h.log, err, "list discounts")
		return
	}

	utils.ResponseSuccess(w, "success", discounts)
}

// ValidateDiscount handles POST /api/discounts/validate (protected)
func (h *DiscountHandler) ValidateDiscount(w http.ResponseWriter, r *http.Request) {
	var req request.ValidateDiscountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.ValidateDiscount(r.Context(), req.Code)
	if err != nil {
		handleServiceError(w, h.log, err, "validate discount")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

// DeactivateDiscount handles DELETE /api/admin/discounts/{id} (admin)
func (h *DiscountHandler) DeactivateDiscount(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeactivateDiscount(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "deactivate discount")
		return
	}

	utils.ResponseSuccess(w, "Discount code deactivated", nil)
}

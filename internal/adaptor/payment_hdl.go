package adaptor

import (
	"encoding/json"
	"net"
	"net/http"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// GetRentalPayments handles GET /api/rentals/{id}/payments (staff)
func (h *PaymentHandler) GetRentalPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.service.GetRentalPayments(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "list rental payments")
		return
	}

	utils.ResponseSuccess(w, "success", payments)
}

// BuildPaymentURL handles POST /api/payments/url (protected)
func (h *PaymentHandler) BuildPaymentURL(w http.ResponseWriter, r *http.Request) {
	var req request.PaymentURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.BuildPaymentURL(r.Context(), &req, clientIP(r))
	if err != nil {
		handleServiceError(w, h.log, err, "build payment url")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// VNPayCallback handles GET /api/payments/vnpay/callback (public).
// VNPay redirects the payer's browser here with signed query parameters.
func (h *PaymentHandler) VNPayCallback(w http.ResponseWriter, r *http.Request) {
	txnRef, success, err := h.service.HandleGatewayCallback(r.Context(), r.URL.Query())
	if err != nil {
		handleServiceError(w, h.log, err, "process payment callback")
		return
	}

	if !success {
		utils.ResponseSuccess(w, "Payment was not completed", map[string]any{
			"transaction_id": txnRef,
			"paid":           false,
		})
		return
	}

	utils.ResponseSuccess(w, "Payment confirmed", map[string]any{
		"transaction_id": txnRef,
		"paid":           true,
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

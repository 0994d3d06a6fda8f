package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePayment(
	r chi.Router,
	paymentHandler *adaptor.PaymentHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// The gateway redirects the payer's browser here; authenticity comes
	// from the HMAC signature over the query string, not a session.
	r.Get("/api/payments/vnpay/callback", paymentHandler.VNPayCallback)

	r.With(middleware.AuthSession(repo.Session, repo.User, log)).
		Post("/api/payments/url", paymentHandler.BuildPaymentURL)
}

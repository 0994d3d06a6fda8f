package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type PaymentResponse struct {
	ID            string               `json:"id"`
	RentalID      string               `json:"rental_id"`
	CustomerID    string               `json:"customer_id"`
	Amount        float64              `json:"amount"`
	Method        entity.PaymentMethod `json:"payment_method"`
	Paid          bool                 `json:"paid"`
	PaidAt        *time.Time           `json:"paid_at,omitempty"`
	TransactionID string               `json:"transaction_id"`
	CreatedAt     time.Time            `json:"created_at"`
}

type PaymentURLResponse struct {
	PaymentID string `json:"payment_id"`
	URL       string `json:"url"`
}

// Helper converters
func PaymentToResponse(payment *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            payment.ID.String(),
		RentalID:      payment.RentalID.String(),
		CustomerID:    payment.CustomerID.String(),
		Amount:        payment.Amount,
		Method:        payment.Method,
		Paid:          payment.Paid,
		PaidAt:        payment.PaidAt,
		TransactionID: payment.TransactionID,
		CreatedAt:     payment.CreatedAt,
	}
}

package request

// PaymentURLRequest asks the gateway adapter for a redirect URL to pay
// an existing unpaid payment.
type PaymentURLRequest struct {
	PaymentID string `json:"payment_id" validate:"required,uuid4"`
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodVNPay  PaymentMethod = "vnpay"
	PaymentMethodStripe PaymentMethod = "stripe"
)

// Gateway reports whether completion happens asynchronously through a
// payment-provider callback rather than at checkout time.
func (m PaymentMethod) Gateway() bool {
	return m == PaymentMethodVNPay || m == PaymentMethodStripe
}

// Payment invariant: PaidAt is set exactly when Paid is true, and once
// set it is never changed.
type Payment struct {
	Base
	RentalID       uuid.UUID     `db:"rental_id"`
	CustomerID     uuid.UUID     `db:"customer_id"`
	Amount         float64       `db:"amount"`
	Method         PaymentMethod `db:"payment_method"`
	Paid           bool          `db:"status"`
	PaidAt         *time.Time    `db:"paid_at"`
	TransactionID  string        `db:"transaction_id"`
	DiscountCodeID *uuid.UUID    `db:"discount_code_id"`
}

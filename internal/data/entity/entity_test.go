package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDiscountCodeValid(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	maxUses := 5

	base := DiscountCode{
		Code:               "SUMMER10",
		DiscountPercentage: 10,
		ValidFrom:          now.AddDate(0, -1, 0),
		ValidTo:            now.AddDate(0, 1, 0),
		MaxUses:            &maxUses,
		UsedCount:          0,
		IsActive:           true,
	}

	t.Run("inside window", func(t *testing.T) {
		code := base
		assert.True(t, code.Valid(now))
	})

	t.Run("inactive", func(t *testing.T) {
		code := base
		code.IsActive = false
		assert.False(t, code.Valid(now))
	})

	t.Run("not yet valid", func(t *testing.T) {
		code := base
		code.ValidFrom = now.AddDate(0, 0, 1)
		assert.False(t, code.Valid(now))
	})

	t.Run("expired", func(t *testing.T) {
		code := base
		code.ValidTo = now.AddDate(0, 0, -1)
		assert.False(t, code.Valid(now))
	})

	t.Run("used up", func(t *testing.T) {
		code := base
		code.UsedCount = maxUses
		assert.False(t, code.Valid(now))
	})

	t.Run("unlimited uses", func(t *testing.T) {
		code := base
		code.MaxUses = nil
		code.UsedCount = 10_000
		assert.True(t, code.Valid(now))
	})
}

func TestBookingStatus(t *testing.T) {
	active := []BookingStatus{BookingStatusPending, BookingStatusConfirmed, BookingStatusCheckedIn}
	terminal := []BookingStatus{BookingStatusCheckedOut, BookingStatusCancelled, BookingStatusNoShow}

	for _, s := range active {
		assert.True(t, s.Active(), string(s))
		assert.False(t, s.Terminal(), string(s))
	}
	for _, s := range terminal {
		assert.False(t, s.Active(), string(s))
		assert.True(t, s.Terminal(), string(s))
	}
}

func TestPaymentMethodGateway(t *testing.T) {
	assert.False(t, PaymentMethodCash.Gateway())
	assert.True(t, PaymentMethodVNPay.Gateway())
	assert.True(t, PaymentMethodStripe.Gateway())
}

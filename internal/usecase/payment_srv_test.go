package usecase

import (
	"context"
	"testing"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newGatewayPaymentFixture(discountID *uuid.UUID) (*paymentService, *entity.Payment, *stubPaymentRepo, *stubDiscountRepo, *stubUserRepo) {
	payment := &entity.Payment{
		Base:           entity.Base{ID: uuid.New()},
		RentalID:       uuid.New(),
		CustomerID:     uuid.New(),
		Amount:         1_125_000,
		Method:         entity.PaymentMethodVNPay,
		TransactionID:  "PAY-20260310-120000-000001",
		DiscountCodeID: discountID,
	}

	payments := &stubPaymentRepo{
		payments: map[uuid.UUID]*entity.Payment{payment.ID: payment},
		byTxnRef: map[string]*entity.Payment{payment.TransactionID: payment},
	}
	discounts := &stubDiscountRepo{codes: map[uuid.UUID]*entity.DiscountCode{}}
	users := &stubUserRepo{}

	svc := &paymentService{
		repo: &repository.Repository{Payment: payments, Discount: discounts, User: users},
		log:  zap.NewNop(),
	}
	return svc, payment, payments, discounts, users
}

func TestConfirmGatewayPaymentFailureReturnsDiscountOnce(t *testing.T) {
	codeID := uuid.New()
	svc, payment, _, discounts, _ := newGatewayPaymentFixture(&codeID)
	discounts.codes[codeID] = &entity.DiscountCode{
		Base:      entity.Base{ID: codeID},
		Code:      "SPRING10",
		UsedCount: 3,
	}

	// The provider may deliver the same failure notification more than
	// once. Only the first delivery returns the consumed use.
	for i := 0; i < 3; i++ {
		require.NoError(t, svc.ConfirmGatewayPayment(context.Background(), payment.TransactionID, false))
	}

	assert.Equal(t, 1, discounts.decrements)
	assert.Equal(t, 2, discounts.codes[codeID].UsedCount)
	assert.Nil(t, payment.DiscountCodeID)
	assert.False(t, payment.Paid)
}

func TestConfirmGatewayPaymentFailureAfterSuccessKeepsUse(t *testing.T) {
	codeID := uuid.New()
	svc, payment, _, discounts, _ := newGatewayPaymentFixture(&codeID)
	discounts.codes[codeID] = &entity.DiscountCode{
		Base:      entity.Base{ID: codeID},
		Code:      "SPRING10",
		UsedCount: 3,
	}

	require.NoError(t, svc.ConfirmGatewayPayment(context.Background(), payment.TransactionID, true))
	require.NoError(t, svc.ConfirmGatewayPayment(context.Background(), payment.TransactionID, false))

	// A stray failure callback after the payment completed must not
	// touch the code: its use was legitimately consumed.
	assert.Equal(t, 0, discounts.decrements)
	assert.Equal(t, 3, discounts.codes[codeID].UsedCount)
	assert.True(t, payment.Paid)
	assert.NotNil(t, payment.DiscountCodeID)
}

func TestConfirmGatewayPaymentSuccessReplayIgnored(t *testing.T) {
	svc, payment, _, _, users := newGatewayPaymentFixture(nil)

	require.NoError(t, svc.ConfirmGatewayPayment(context.Background(), payment.TransactionID, true))
	require.NotNil(t, payment.PaidAt)
	firstPaidAt := *payment.PaidAt

	time.Sleep(time.Millisecond)
	require.NoError(t, svc.ConfirmGatewayPayment(context.Background(), payment.TransactionID, true))

	assert.True(t, payment.Paid)
	assert.Equal(t, firstPaidAt, *payment.PaidAt)
	assert.Equal(t, 1, users.statsCalls)
}

func TestConfirmGatewayPaymentUnknownTransaction(t *testing.T) {
	svc, _, _, _, _ := newGatewayPaymentFixture(nil)

	err := svc.ConfirmGatewayPayment(context.Background(), "PAY-nope", true)
	assert.ErrorIs(t, err, ErrNotFound)
}

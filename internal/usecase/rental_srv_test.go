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
)

func newSettlementFixture(t *testing.T) (*repository.Repository, *entity.RoomRental, *stubRentalRepo, *stubRoomRepo, *stubPaymentRepo, *stubDiscountRepo) {
	t.Helper()

	rentalID := uuid.New()
	rw := room("101", 2, 500_000, 10)
	roomID := rw.ID

	rentals := &stubRentalRepo{
		open:    map[uuid.UUID]bool{rentalID: true},
		roomIDs: map[uuid.UUID][]uuid.UUID{rentalID: {roomID}},
	}
	rooms := &stubRoomRepo{
		statuses: map[uuid.UUID]entity.RoomStatus{roomID: entity.RoomStatusOccupied},
		rooms:    []*entity.RoomWithType{rw},
	}
	payments := &stubPaymentRepo{payments: map[uuid.UUID]*entity.Payment{}}
	discounts := &stubDiscountRepo{codes: map[uuid.UUID]*entity.DiscountCode{}}

	rental := &entity.RoomRental{
		Base:        entity.Base{ID: rentalID},
		CustomerID:  uuid.New(),
		CheckInDate: time.Now().Add(-26 * time.Hour),
		GuestCount:  2,
	}

	repo := &repository.Repository{
		Rental:   rentals,
		Room:     rooms,
		Payment:  payments,
		Discount: discounts,
	}
	return repo, rental, rentals, rooms, payments, discounts
}

func TestSettleRentalCreatesOnePayment(t *testing.T) {
	repo, rental, _, rooms, payments, _ := newSettlementFixture(t)
	now := time.Now()
	roomID := rooms.rooms[0].ID

	st, err := settleRental(context.Background(), repo, rental, entity.PaymentMethodCash, nil, now)
	require.NoError(t, err)

	require.Len(t, payments.created, 1)
	assert.True(t, payments.created[0].Paid)
	assert.NotNil(t, rental.ActualCheckOut)
	assert.Equal(t, entity.RoomStatusAvailable, rooms.statuses[roomID])
	assert.Equal(t, st.Payment.Amount, rental.TotalPrice)

	// A replayed check-out of the now-closed rental settles nothing.
	_, err = settleRental(context.Background(), repo, rental, entity.PaymentMethodCash, nil, now)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Len(t, payments.created, 1)
}

func TestSettleRentalConcurrentCloseLosesCleanly(t *testing.T) {
	repo, rental, rentals, _, payments, _ := newSettlementFixture(t)
	now := time.Now()

	// Another transaction closed the rental between our read and the
	// guarded close. The stale in-memory copy still looks open.
	rentals.open[rental.ID] = false

	_, err := settleRental(context.Background(), repo, rental, entity.PaymentMethodCash, nil, now)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Empty(t, payments.created)
}

func TestSettleRentalExhaustedDiscountBlocksCheckout(t *testing.T) {
	repo, rental, rentals, _, payments, discounts := newSettlementFixture(t)
	now := time.Now()

	maxUses := 5
	codeID := uuid.New()
	discounts.codes[codeID] = &entity.DiscountCode{
		Base:               entity.Base{ID: codeID},
		Code:               "SUMMER20",
		DiscountPercentage: 20,
		ValidFrom:          now.Add(-time.Hour),
		ValidTo:            now.Add(time.Hour),
		MaxUses:            &maxUses,
		UsedCount:          5,
		IsActive:           true,
	}

	_, err := settleRental(context.Background(), repo, rental, entity.PaymentMethodCash, &codeID, now)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, payments.created)
	assert.True(t, rentals.open[rental.ID], "an invalid discount must not close the rental")
}

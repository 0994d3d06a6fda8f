package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOnly(t *testing.T) {
	hanoi, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	require.NoError(t, err)

	t.Run("truncates to local midnight", func(t *testing.T) {
		ts := time.Date(2026, 3, 10, 15, 42, 7, 0, hanoi)
		got := dateOnly(ts, hanoi)

		assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, hanoi), got)
	})

	t.Run("UTC evening is already tomorrow in UTC+7", func(t *testing.T) {
		// 2026-03-10 20:00 UTC is 2026-03-11 03:00 in Ho Chi Minh City.
		ts := time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC)
		got := dateOnly(ts, hanoi)

		assert.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, hanoi), got)
	})

	t.Run("same instant, same date regardless of source zone", func(t *testing.T) {
		instant := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

		assert.Equal(t,
			dateOnly(instant, hanoi),
			dateOnly(instant.In(time.FixedZone("x", -5*3600)), hanoi),
		)
	})
}

func TestRentalCheckOut(t *testing.T) {
	hanoi, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	require.NoError(t, err)

	scheduled := time.Date(2026, 3, 12, 0, 0, 0, 0, hanoi)

	t.Run("on-time arrival keeps the booked check-out", func(t *testing.T) {
		now := time.Date(2026, 3, 10, 14, 0, 0, 0, hanoi)

		assert.Equal(t, scheduled, rentalCheckOut(now, scheduled, hanoi))
	})

	t.Run("arrival on the check-out date extends to next midnight", func(t *testing.T) {
		now := time.Date(2026, 3, 12, 1, 30, 0, 0, hanoi)
		got := rentalCheckOut(now, scheduled, hanoi)

		assert.Equal(t, time.Date(2026, 3, 13, 0, 0, 0, 0, hanoi), got)
		assert.True(t, now.Before(got), "rental check-out must lie after its check-in")
	})

	t.Run("arrival past the check-out date extends to next midnight", func(t *testing.T) {
		now := time.Date(2026, 3, 13, 22, 15, 0, 0, hanoi)
		got := rentalCheckOut(now, scheduled, hanoi)

		assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, hanoi), got)
		assert.True(t, now.Before(got))
	})
}

package usecase

import (
	"errors"
	"testing"
	"time"

	"hotel-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func room(number string, maxGuests int, basePrice, surchargePct float64) *entity.RoomWithType {
	return &entity.RoomWithType{
		Room: entity.Room{
			Base:       entity.Base{ID: uuid.New()},
			RoomNumber: number,
		},
		BasePrice:      basePrice,
		MaxGuests:      maxGuests,
		ExtraSurcharge: surchargePct,
	}
}

func TestStayDays(t *testing.T) {
	base := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		checkOut time.Time
		want     int
	}{
		{"same day", base.Add(4 * time.Hour), 1},
		{"under 24 hours", base.Add(23 * time.Hour), 1},
		{"exactly 24 hours", base.Add(24 * time.Hour), 1},
		{"two nights", base.AddDate(0, 0, 2), 2},
		{"two nights and change", base.AddDate(0, 0, 2).Add(6 * time.Hour), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StayDays(base, tt.checkOut))
		})
	}
}

func TestAllocateGuests(t *testing.T) {
	t.Run("fills larger room first, remainder round-robin", func(t *testing.T) {
		rooms := []*entity.RoomWithType{
			room("101", 2, 500_000, 25),
			room("102", 3, 800_000, 25),
		}

		// 7 guests: room 102 fills to 3, room 101 to 2, then one extra
		// each starting with the larger room.
		got := AllocateGuests(rooms, 7)
		assert.Equal(t, []int{3, 4}, got)
	})

	t.Run("capacity ties keep input order", func(t *testing.T) {
		rooms := []*entity.RoomWithType{
			room("201", 2, 500_000, 25),
			room("202", 2, 600_000, 25),
			room("203", 2, 700_000, 25),
		}

		got := AllocateGuests(rooms, 7)
		assert.Equal(t, []int{3, 2, 2}, got)
	})

	t.Run("deterministic", func(t *testing.T) {
		rooms := []*entity.RoomWithType{
			room("301", 3, 500_000, 25),
			room("302", 2, 500_000, 25),
			room("303", 3, 500_000, 25),
		}

		first := AllocateGuests(rooms, 10)
		for i := 0; i < 50; i++ {
			assert.Equal(t, first, AllocateGuests(rooms, 10))
		}
	})

	t.Run("fewer guests than rooms", func(t *testing.T) {
		rooms := []*entity.RoomWithType{
			room("401", 2, 500_000, 25),
			room("402", 4, 500_000, 25),
		}

		got := AllocateGuests(rooms, 1)
		assert.Equal(t, []int{0, 1}, got)
	})
}

func TestCalculatePrice(t *testing.T) {
	checkIn := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 2)

	t.Run("surcharge for excess guests", func(t *testing.T) {
		rooms := []*entity.RoomWithType{room("101", 2, 500_000, 25)}

		result, err := CalculatePrice(rooms, checkIn, checkOut, 3, 0)
		require.NoError(t, err)

		// 500000*2 nights + 500000*25%*1 excess*2 nights
		assert.Equal(t, 2, result.Days)
		assert.Equal(t, 1_250_000.0, result.Total)
		assert.Equal(t, 250_000.0, result.Rooms[0].Surcharge)
	})

	t.Run("discount applied once on the total", func(t *testing.T) {
		rooms := []*entity.RoomWithType{room("101", 2, 500_000, 25)}

		result, err := CalculatePrice(rooms, checkIn, checkOut, 3, 10)
		require.NoError(t, err)

		assert.Equal(t, 1_125_000.0, result.Total)
		assert.Equal(t, 125_000.0, result.Discount)
	})

	t.Run("no surcharge within capacity", func(t *testing.T) {
		rooms := []*entity.RoomWithType{room("101", 2, 500_000, 25)}

		result, err := CalculatePrice(rooms, checkIn, checkOut, 2, 0)
		require.NoError(t, err)

		assert.Equal(t, 1_000_000.0, result.Total)
		assert.Zero(t, result.Rooms[0].Surcharge)
	})

	t.Run("guest ceiling", func(t *testing.T) {
		rooms := []*entity.RoomWithType{
			room("101", 2, 500_000, 25),
			room("102", 3, 800_000, 25),
		}
		// Combined capacity 5, ceiling floor(5*1.5) = 7.

		_, err := CalculatePrice(rooms, checkIn, checkOut, 7, 0)
		assert.NoError(t, err)

		_, err = CalculatePrice(rooms, checkIn, checkOut, 8, 0)
		assert.ErrorIs(t, err, ErrCapacity)
	})

	t.Run("per-room surcharge uses each room's own rate", func(t *testing.T) {
		rooms := []*entity.RoomWithType{
			room("101", 2, 500_000, 25),
			room("102", 3, 800_000, 10),
		}

		result, err := CalculatePrice(rooms, checkIn, checkOut, 7, 0)
		require.NoError(t, err)

		// Allocation: room 101 gets 3, room 102 gets 4.
		assert.Equal(t, 3, result.Rooms[0].Guests)
		assert.Equal(t, 4, result.Rooms[1].Guests)
		assert.Equal(t, 500_000*0.25*1*2, result.Rooms[0].Surcharge)
		assert.Equal(t, 800_000*0.10*1*2, result.Rooms[1].Surcharge)
	})

	t.Run("rejects bad input", func(t *testing.T) {
		rooms := []*entity.RoomWithType{room("101", 2, 500_000, 25)}

		_, err := CalculatePrice(nil, checkIn, checkOut, 1, 0)
		assert.ErrorIs(t, err, ErrValidation)

		_, err = CalculatePrice(rooms, checkIn, checkOut, 0, 0)
		assert.ErrorIs(t, err, ErrValidation)

		_, err = CalculatePrice(rooms, checkOut, checkIn, 1, 0)
		assert.ErrorIs(t, err, ErrValidation)

		_, err = CalculatePrice(rooms, checkIn, checkOut, 1, 101)
		assert.ErrorIs(t, err, ErrValidation)

		_, err = CalculatePrice(rooms, checkIn, checkOut, 1, -1)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("validation errors are not capacity errors", func(t *testing.T) {
		_, err := CalculatePrice(nil, checkIn, checkOut, 1, 0)
		assert.False(t, errors.Is(err, ErrCapacity))
	})
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.13, round2(1.125))
	assert.Equal(t, 1.12, round2(1.124))
	assert.Equal(t, 100.0, round2(100))
}

package usecase

import (
	"fmt"
	"math"
	"sort"
	"time"

	"hotel-booking/internal/data/entity"

	"github.com/google/uuid"
)

// RoomPrice is the per-room line of a price breakdown.
type RoomPrice struct {
	RoomID     uuid.UUID `json:"room_id"`
	RoomNumber string    `json:"room_number"`
	Guests     int       `json:"guests"`
	BasePrice  float64   `json:"base_price"`
	Surcharge  float64   `json:"surcharge"`
	Subtotal   float64   `json:"subtotal"`
}

// PriceResult is the outcome of a price computation. Rooms keeps the
// caller's original room order so the breakdown lines up with the request.
type PriceResult struct {
	Days     int         `json:"days"`
	Subtotal float64     `json:"subtotal"`
	Discount float64     `json:"discount"`
	Total    float64     `json:"total"`
	Rooms    []RoomPrice `json:"rooms"`
}

// StayDays converts a stay interval into billable days. Stays shorter
// than 24 hours still bill as one day.
func StayDays(checkIn, checkOut time.Time) int {
	days := int(checkOut.Sub(checkIn).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}

// TotalCapacity sums max_guests over the rooms.
func TotalCapacity(rooms []*entity.RoomWithType) int {
	var capacity int
	for _, room := range rooms {
		capacity += room.MaxGuests
	}
	return capacity
}

// GuestCeiling is the hard cap on guest count for a set of rooms:
// floor(1.5 times the combined capacity). Anything above it is abuse,
// not a surcharge case.
func GuestCeiling(rooms []*entity.RoomWithType) int {
	return TotalCapacity(rooms) * 3 / 2
}

// AllocateGuests distributes guests across rooms. Rooms are considered
// in capacity-descending order (ties keep the original order); each room
// is filled to its own max_guests first, then any remainder is spread
// round-robin, one extra guest per room per pass, in the same order.
// The returned slice is aligned with the input slice, and the same input
// always yields the same allocation.
func AllocateGuests(rooms []*entity.RoomWithType, guests int) []int {
	allocation := make([]int, len(rooms))
	if len(rooms) == 0 || guests <= 0 {
		return allocation
	}

	order := make([]int, len(rooms))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return rooms[order[a]].MaxGuests > rooms[order[b]].MaxGuests
	})

	remaining := guests
	for _, idx := range order {
		if remaining == 0 {
			break
		}
		take := rooms[idx].MaxGuests
		if take > remaining {
			take = remaining
		}
		allocation[idx] = take
		remaining -= take
	}

	for remaining > 0 {
		for _, idx := range order {
			if remaining == 0 {
				break
			}
			allocation[idx]++
			remaining--
		}
	}

	return allocation
}

// CalculatePrice prices a stay. Pure: no I/O, deterministic for identical
// inputs, including the per-room allocation order. discountPct is the
// percentage of an already-validated discount code, or zero.
func CalculatePrice(rooms []*entity.RoomWithType, checkIn, checkOut time.Time, guests int, discountPct float64) (*PriceResult, error) {
	if len(rooms) == 0 {
		return nil, fmt.Errorf("%w: no rooms to price", ErrValidation)
	}
	if guests < 1 {
		return nil, fmt.Errorf("%w: guest count must be at least 1, got %d", ErrValidation, guests)
	}
	if !checkIn.Before(checkOut) {
		return nil, fmt.Errorf("%w: check-in %s is not before check-out %s",
			ErrValidation, checkIn.Format("2006-01-02"), checkOut.Format("2006-01-02"))
	}
	if discountPct < 0 || discountPct > 100 {
		return nil, fmt.Errorf("%w: discount percentage %.2f out of range", ErrValidation, discountPct)
	}

	if ceiling := GuestCeiling(rooms); guests > ceiling {
		return nil, fmt.Errorf("%w: %d guests over the limit of %d for %d room(s)",
			ErrCapacity, guests, ceiling, len(rooms))
	}

	days := StayDays(checkIn, checkOut)
	allocation := AllocateGuests(rooms, guests)

	result := &PriceResult{
		Days:  days,
		Rooms: make([]RoomPrice, len(rooms)),
	}

	for i, room := range rooms {
		base := room.BasePrice * float64(days)
		var surcharge float64
		if excess := allocation[i] - room.MaxGuests; excess > 0 {
			surcharge = room.BasePrice * (room.ExtraSurcharge / 100) * float64(excess) * float64(days)
		}

		result.Rooms[i] = RoomPrice{
			RoomID:     room.ID,
			RoomNumber: room.RoomNumber,
			Guests:     allocation[i],
			BasePrice:  base,
			Surcharge:  surcharge,
			Subtotal:   base + surcharge,
		}
		result.Subtotal += base + surcharge
	}

	result.Discount = result.Subtotal * (discountPct / 100)
	result.Total = round2(result.Subtotal - result.Discount)

	return result, nil
}

// round2 rounds half up to two decimal places.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

package usecase

import (
	"testing"

	"hotel-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
)

func TestTierFor(t *testing.T) {
	tests := []struct {
		name     string
		bookings int
		spent    float64
		want     entity.CustomerType
	}{
		{"fresh account", 0, 0, entity.CustomerNew},
		{"below regular", 2, 1_000_000, entity.CustomerNew},
		{"regular on bookings", 3, 0, entity.CustomerRegular},
		{"vip on bookings", 10, 0, entity.CustomerVIP},
		{"vip on spend alone", 1, 20_000_000, entity.CustomerVIP},
		{"just under vip spend", 3, 19_999_999, entity.CustomerRegular},
		{"super vip on bookings", 20, 0, entity.CustomerSuperVIP},
		{"super vip on spend alone", 1, 50_000_000, entity.CustomerSuperVIP},
		{"big spender few stays", 5, 60_000_000, entity.CustomerSuperVIP},
		{"frequent but cheap", 25, 100, entity.CustomerSuperVIP},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tierFor(tt.bookings, tt.spent))
		})
	}
}

func TestTierForStable(t *testing.T) {
	// Recomputing with unchanged inputs must not move the tier.
	for i := 0; i < 10; i++ {
		assert.Equal(t, entity.CustomerVIP, tierFor(12, 5_000_000))
	}
}

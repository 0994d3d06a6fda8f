package entity

import (
	"time"
)

type DiscountCode struct {
	Base
	Code               string    `db:"code"`
	DiscountPercentage float64   `db:"discount_percentage"`
	ValidFrom          time.Time `db:"valid_from"`
	ValidTo            time.Time `db:"valid_to"`
	MaxUses            *int      `db:"max_uses"`
	UsedCount          int       `db:"used_count"`
	IsActive           bool      `db:"is_active"`
}

// Valid reports whether the code can be applied at the given time:
// active, inside the validity window and not used up.
func (d *DiscountCode) Valid(now time.Time) bool {
	if !d.IsActive {
		return false
	}
	if now.Before(d.ValidFrom) || now.After(d.ValidTo) {
		return false
	}
	if d.MaxUses != nil && d.UsedCount >= *d.MaxUses {
		return false
	}
	return true
}

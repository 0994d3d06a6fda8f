package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type DiscountResponse struct {
	ID                 string    `json:"id"`
	Code               string    `json:"code"`
	DiscountPercentage float64   `json:"discount_percentage"`
	ValidFrom          time.Time `json:"valid_from"`
	ValidTo            time.Time `json:"valid_to"`
	MaxUses            *int      `json:"max_uses,omitempty"`
	UsedCount          int       `json:"used_count"`
	IsActive           bool      `json:"is_active"`
}

type DiscountValidationResponse struct {
	Code               string  `json:"code"`
	Valid              bool    `json:"valid"`
	DiscountPercentage float64 `json:"discount_percentage,omitempty"`
}

// Helper converters
func DiscountToResponse(code *entity.DiscountCode) DiscountResponse {
	return DiscountResponse{
		ID:                 code.ID.String(),
		Code:               code.Code,
		DiscountPercentage: code.DiscountPercentage,
		ValidFrom:          code.ValidFrom,
		ValidTo:            code.ValidTo,
		MaxUses:            code.MaxUses,
		UsedCount:          code.UsedCount,
		IsActive:           code.IsActive,
	}
}

package request

type CreateDiscountRequest struct {
	Code               string  `json:"code" validate:"required,min=3,max=50"`
	DiscountPercentage float64 `json:"discount_percentage" validate:"required,gt=0,lte=100"`
	ValidFrom          string  `json:"valid_from" validate:"required"`
	ValidTo            string  `json:"valid_to" validate:"required"`
	MaxUses            *int    `json:"max_uses,omitempty" validate:"omitempty,min=1"`
}

type ValidateDiscountRequest struct {
	Code string `json:"code" validate:"required"`
}

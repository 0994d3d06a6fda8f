package request

type CreateBookingRequest struct {
	RoomIDs  []string `json:"room_ids" validate:"required,min=1,dive,uuid4"`
	CheckIn  string   `json:"check_in_date" validate:"required"`
	CheckOut string   `json:"check_out_date" validate:"required"`
	// Dates are RFC 3339 timestamps.
	GuestCount      int     `json:"guest_count" validate:"required,min=1"`
	DiscountCode    *string `json:"discount_code,omitempty"`
	SpecialRequests *string `json:"special_requests,omitempty"`
}

type CheckInRequest struct {
	ActualGuestCount int `json:"actual_guest_count" validate:"required,min=1"`
}

type CheckOutRequest struct {
	PaymentMethod  string  `json:"payment_method" validate:"required,oneof=cash vnpay stripe"`
	DiscountCodeID *string `json:"discount_code_id,omitempty" validate:"omitempty,uuid4"`
}

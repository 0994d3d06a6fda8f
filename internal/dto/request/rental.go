package request

// CreateWalkInRequest is a staff-created rental for a guest with no
// prior booking.
type CreateWalkInRequest struct {
	CustomerID string   `json:"customer_id" validate:"required,uuid4"`
	RoomIDs    []string `json:"room_ids" validate:"required,min=1,dive,uuid4"`
	CheckOut   string   `json:"check_out_date" validate:"required"`
	GuestCount int      `json:"guest_count" validate:"required,min=1"`
}

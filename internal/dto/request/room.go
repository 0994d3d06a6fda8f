package request

type CreateRoomTypeRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Description *string `json:"description,omitempty"`
	BasePrice   float64 `json:"base_price" validate:"required,gt=0"`
	MaxGuests   int     `json:"max_guests" validate:"required,min=1"`
	// Percentage of base price charged per extra guest per day.
	ExtraGuestSurcharge float64 `json:"extra_guest_surcharge" validate:"gte=0,lte=100"`
	Amenities           *string `json:"amenities,omitempty"`
}

type CreateRoomRequest struct {
	RoomNumber string `json:"room_number" validate:"required,min=1,max=10"`
	RoomTypeID string `json:"room_type_id" validate:"required,uuid4"`
}

type ListRoomsRequest struct {
	PaginatedRequest
	Status     string  `json:"status" validate:"omitempty,oneof=available booked occupied"`
	RoomTypeID *string `json:"room_type_id,omitempty" validate:"omitempty,uuid4"`
}

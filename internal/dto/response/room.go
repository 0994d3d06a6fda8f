package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type RoomTypeResponse struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Description         *string `json:"description,omitempty"`
	BasePrice           float64 `json:"base_price"`
	MaxGuests           int     `json:"max_guests"`
	ExtraGuestSurcharge float64 `json:"extra_guest_surcharge"`
	Amenities           *string `json:"amenities,omitempty"`
}

type RoomResponse struct {
	ID         string            `json:"id"`
	RoomNumber string            `json:"room_number"`
	RoomTypeID string            `json:"room_type_id"`
	RoomType   string            `json:"room_type,omitempty"`
	BasePrice  float64           `json:"base_price,omitempty"`
	MaxGuests  int               `json:"max_guests,omitempty"`
	Status     entity.RoomStatus `json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
}

// Helper converters
func RoomTypeToResponse(rt *entity.RoomType) RoomTypeResponse {
	return RoomTypeResponse{
		ID:                  rt.ID.String(),
		Name:                rt.Name,
		Description:         rt.Description,
		BasePrice:           rt.BasePrice,
		MaxGuests:           rt.MaxGuests,
		ExtraGuestSurcharge: rt.ExtraGuestSurcharge,
		Amenities:           rt.Amenities,
	}
}

func RoomToResponse(room *entity.Room) RoomResponse {
	return RoomResponse{
		ID:         room.ID.String(),
		RoomNumber: room.RoomNumber,
		RoomTypeID: room.RoomTypeID.String(),
		Status:     room.Status,
		CreatedAt:  room.CreatedAt,
	}
}

func RoomWithTypeToResponse(room *entity.RoomWithType) RoomResponse {
	resp := RoomToResponse(&room.Room)
	resp.RoomType = room.RoomTypeName
	resp.BasePrice = room.BasePrice
	resp.MaxGuests = room.MaxGuests
	return resp
}

package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type RentalResponse struct {
	ID             string     `json:"id"`
	BookingID      *string    `json:"booking_id,omitempty"`
	CustomerID     string     `json:"customer_id"`
	RoomIDs        []string   `json:"room_ids,omitempty"`
	CheckInDate    time.Time  `json:"check_in_date"`
	CheckOutDate   time.Time  `json:"check_out_date"`
	ActualCheckOut *time.Time `json:"actual_check_out,omitempty"`
	GuestCount     int        `json:"guest_count"`
	TotalPrice     float64    `json:"total_price"`
	CreatedAt      time.Time  `json:"created_at"`
}

// Helper converters
func RentalToResponse(rental *entity.RoomRental, roomIDs []string) RentalResponse {
	resp := RentalResponse{
		ID:             rental.ID.String(),
		CustomerID:     rental.CustomerID.String(),
		RoomIDs:        roomIDs,
		CheckInDate:    rental.CheckInDate,
		CheckOutDate:   rental.CheckOutDate,
		ActualCheckOut: rental.ActualCheckOut,
		GuestCount:     rental.GuestCount,
		TotalPrice:     rental.TotalPrice,
		CreatedAt:      rental.CreatedAt,
	}

	if rental.BookingID != nil {
		id := rental.BookingID.String()
		resp.BookingID = &id
	}

	return resp
}

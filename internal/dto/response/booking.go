package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type BookingResponse struct {
	ID              string               `json:"id"`
	CustomerID      string               `json:"customer_id"`
	RoomIDs         []string             `json:"room_ids,omitempty"`
	Rooms           []RoomResponse       `json:"rooms,omitempty"`
	CheckInDate     time.Time            `json:"check_in_date"`
	CheckOutDate    time.Time            `json:"check_out_date"`
	GuestCount      int                  `json:"guest_count"`
	TotalPrice      float64              `json:"total_price"`
	Status          entity.BookingStatus `json:"status"`
	SpecialRequests *string              `json:"special_requests,omitempty"`
	ShareToken      string               `json:"share_token"`
	QRCodeURL       *string              `json:"qr_code_url,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
}

type CheckInResponse struct {
	Booking BookingResponse `json:"booking"`
	Rental  RentalResponse  `json:"rental"`
}

type CheckOutResponse struct {
	Rental  RentalResponse  `json:"rental"`
	Payment PaymentResponse `json:"payment"`
}

// Helper converters
func BookingToResponse(booking *entity.Booking, roomIDs []string) BookingResponse {
	return BookingResponse{
		ID:              booking.ID.String(),
		CustomerID:      booking.CustomerID.String(),
		RoomIDs:         roomIDs,
		CheckInDate:     booking.CheckInDate,
		CheckOutDate:    booking.CheckOutDate,
		GuestCount:      booking.GuestCount,
		TotalPrice:      booking.TotalPrice,
		Status:          booking.Status,
		SpecialRequests: booking.SpecialRequests,
		ShareToken:      booking.ShareToken.String(),
		QRCodeURL:       booking.QRCodeURL,
		CreatedAt:       booking.CreatedAt,
	}
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// RoomRental is the occupancy record created at check-in. Walk-ins have
// no booking reference. TotalPrice holds the quoted price until checkout
// replaces it with the final computed one.
type RoomRental struct {
	Base
	BookingID      *uuid.UUID `db:"booking_id"`
	CustomerID     uuid.UUID  `db:"customer_id"`
	CheckInDate    time.Time  `db:"check_in_date"`
	CheckOutDate   time.Time  `db:"check_out_date"`
	ActualCheckOut *time.Time `db:"actual_check_out"`
	TotalPrice     float64    `db:"total_price"`
	GuestCount     int        `db:"guest_count"`
}

// Open reports whether the rental is still occupying its rooms.
func (r *RoomRental) Open() bool {
	return r.ActualCheckOut == nil
}

// RentalRoom is a row of the rental<->room join table. IsOpen mirrors the
// parent rental's open state so a partial unique index can enforce at most
// one open rental per room.
type RentalRoom struct {
	BaseSimple
	RentalID uuid.UUID `db:"rental_id"`
	RoomID   uuid.UUID `db:"room_id"`
	IsOpen   bool      `db:"is_open"`
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusCheckedIn  BookingStatus = "checked_in"
	BookingStatusCheckedOut BookingStatus = "checked_out"
	BookingStatusCancelled  BookingStatus = "cancelled"
	BookingStatusNoShow     BookingStatus = "no_show"
)

// Active reports whether the booking still holds its rooms for the
// overlap check (pending, confirmed or checked in).
func (s BookingStatus) Active() bool {
	return s == BookingStatusPending || s == BookingStatusConfirmed || s == BookingStatusCheckedIn
}

// Terminal reports whether no further transition is allowed.
func (s BookingStatus) Terminal() bool {
	return s == BookingStatusCheckedOut || s == BookingStatusCancelled || s == BookingStatusNoShow
}

type Booking struct {
	Base
	CustomerID      uuid.UUID     `db:"customer_id"`
	CheckInDate     time.Time     `db:"check_in_date"`
	CheckOutDate    time.Time     `db:"check_out_date"`
	TotalPrice      float64       `db:"total_price"`
	GuestCount      int           `db:"guest_count"`
	Status          BookingStatus `db:"status"`
	SpecialRequests *string       `db:"special_requests"`
	// ShareToken is the externally shareable identifier embedded in the
	// QR code used for check-in.
	ShareToken uuid.UUID `db:"share_token"`
	QRCodeURL  *string   `db:"qr_code_url"`
}

// BookingRoom is a row of the booking<->room join table.
type BookingRoom struct {
	BaseSimple
	BookingID uuid.UUID `db:"booking_id"`
	RoomID    uuid.UUID `db:"room_id"`
}

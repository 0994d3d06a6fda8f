package entity

import (
	"github.com/google/uuid"
)

type RoomStatus string

const (
	RoomStatusAvailable RoomStatus = "available"
	RoomStatusBooked    RoomStatus = "booked"
	RoomStatusOccupied  RoomStatus = "occupied"
)

// Room.Status is owned by the room status rules in the usecase layer;
// handlers never write it directly.
type Room struct {
	Base
	RoomNumber string     `db:"room_number"`
	RoomTypeID uuid.UUID  `db:"room_type_id"`
	Status     RoomStatus `db:"status"`
}

// RoomWithType joins a room with its pricing attributes. This is the
// shape the pricing engine works on.
type RoomWithType struct {
	Room
	RoomTypeName   string  `db:"room_type_name"`
	BasePrice      float64 `db:"base_price"`
	MaxGuests      int     `db:"max_guests"`
	ExtraSurcharge float64 `db:"extra_guest_surcharge"`
}

package entity

type RoomType struct {
	Base
	Name        string  `db:"name"`
	Description *string `db:"description"`
	BasePrice   float64 `db:"base_price"`
	MaxGuests   int     `db:"max_guests"`
	// Percentage of base price charged per guest above MaxGuests, per day.
	ExtraGuestSurcharge float64 `db:"extra_guest_surcharge"`
	Amenities           *string `db:"amenities"`
}

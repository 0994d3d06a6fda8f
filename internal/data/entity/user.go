package entity

type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleOwner    UserRole = "owner"
	RoleStaff    UserRole = "staff"
	RoleCustomer UserRole = "customer"
)

type CustomerType string

const (
	CustomerNew      CustomerType = "new"
	CustomerRegular  CustomerType = "regular"
	CustomerVIP      CustomerType = "vip"
	CustomerSuperVIP CustomerType = "super_vip"
)

type User struct {
	Base
	Username     string       `db:"username"`
	Email        string       `db:"email"`
	PasswordHash string       `db:"password"`
	FullName     string       `db:"full_name"`
	Phone        *string      `db:"phone"`
	IDCard       *string      `db:"id_card"`
	Address      *string      `db:"address"`
	Role         UserRole     `db:"role"`
	IsActive     bool         `db:"is_active"`
	CustomerType CustomerType `db:"customer_type"`

	// Denormalized lifetime stats, recomputed by the customer service.
	TotalBookings int     `db:"total_bookings"`
	TotalSpent    float64 `db:"total_spent"`
}

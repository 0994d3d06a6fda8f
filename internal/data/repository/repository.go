package repository

import (
	"hotel-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	User         UserRepository
	Session      SessionRepository
	RoomType     RoomTypeRepository
	Room         RoomRepository
	Booking      BookingRepository
	Rental       RentalRepository
	Payment      PaymentRepository
	Discount     DiscountRepository
	Notification NotificationRepository

	db  database.PgxIface
	log *zap.Logger
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:         NewUserRepository(db, log),
		Session:      NewSessionRepository(db, log),
		RoomType:     NewRoomTypeRepository(db, log),
		Room:         NewRoomRepository(db, log),
		Booking:      NewBookingRepository(db, log),
		Rental:       NewRentalRepository(db, log),
		Payment:      NewPaymentRepository(db, log),
		Discount:     NewDiscountRepository(db, log),
		Notification: NewNotificationRepository(db, log),

		db:  db,
		log: log,
	}
}

// WithTx rebinds every repository to the given transaction. Services use
// this to make a whole state transition atomic.
func (r *Repository) WithTx(tx pgx.Tx) *Repository {
	return NewRepository(database.WrapTx(tx), r.log)
}

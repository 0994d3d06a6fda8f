package usecase

import (
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/gateway"
	"hotel-booking/pkg/database"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth         AuthService
	Customer     CustomerService
	Room         RoomService
	Booking      BookingService
	Rental       RentalService
	Payment      PaymentService
	Discount     DiscountService
	Notification NotificationService
	Task         TaskService
}

func NewService(db database.PgxIface, repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	notifs := NewNotificationSender(repo, log)
	vnpay := gateway.NewVNPay(config.VNPay, config.Hotel.Location(), log)
	qr := gateway.NewQRGenerator()

	return &Service{
		Auth:         NewAuthService(repo, config, log),
		Customer:     NewCustomerService(repo, log),
		Room:         NewRoomService(repo, log),
		Booking:      NewBookingService(db, repo, config, notifs, qr, log),
		Rental:       NewRentalService(db, repo, notifs, log),
		Payment:      NewPaymentService(repo, vnpay, log),
		Discount:     NewDiscountService(repo, log),
		Notification: NewNotificationService(repo, log),
		Task:         NewTaskService(db, repo, config, notifs, log),
	}
}

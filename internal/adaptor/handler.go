package adaptor

import (
	"hotel-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth         *AuthHandler
	Customer     *CustomerHandler
	Room         *RoomHandler
	Booking      *BookingHandler
	Rental       *RentalHandler
	Payment      *PaymentHandler
	Discount     *DiscountHandler
	Notification *NotificationHandler
	Task         *TaskHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(service.Auth, log),
		Customer:     NewCustomerHandler(service.Customer, log),
		Room:         NewRoomHandler(service.Room, log),
		Booking:      NewBookingHandler(service.Booking, log),
		Rental:       NewRentalHandler(service.Rental, log),
		Payment:      NewPaymentHandler(service.Payment, log),
		Discount:     NewDiscountHandler(service.Discount, log),
		Notification: NewNotificationHandler(service.Notification, log),
		Task:         NewTaskHandler(service.Task, log),
	}
}

package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRental(
	r chi.Router,
	rentalHandler *adaptor.RentalHandler,
	paymentHandler *adaptor.PaymentHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Route("/api/rentals", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Get("/", rentalHandler.GetMyRentals)

		r.With(middleware.RequirePermission(middleware.PermCheckIn, log)).
			Post("/walk-in", rentalHandler.CreateWalkIn)
		r.With(middleware.RequirePermission(middleware.PermAccessAllRentals, log)).
			Get("/{id}", rentalHandler.GetRental)
		r.With(middleware.RequirePermission(middleware.PermCheckOut, log)).
			Post("/{id}/check-out", rentalHandler.CheckOutRental)
		r.With(middleware.RequirePermission(middleware.PermAccessAllPayments, log)).
			Get("/{id}/payments", paymentHandler.GetRentalPayments)
	})
}

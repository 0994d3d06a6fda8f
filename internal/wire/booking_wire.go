package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Share links carry an unguessable token, no session needed.
	r.Get("/api/bookings/shared/{token}", bookingHandler.GetBookingByShareToken)

	r.Route("/api/bookings", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.With(middleware.RequirePermission(middleware.PermCreateBooking, log)).
			Post("/", bookingHandler.CreateBooking)
		r.Get("/", bookingHandler.GetMyBookings)
		r.Get("/{id}", bookingHandler.GetBooking)
		r.Post("/{id}/cancel", bookingHandler.CancelBooking)

		r.With(middleware.RequirePermission(middleware.PermConfirmBooking, log)).
			Post("/{id}/confirm", bookingHandler.ConfirmBooking)
		r.With(middleware.RequirePermission(middleware.PermCheckIn, log)).
			Post("/{id}/check-in", bookingHandler.CheckIn)
		r.With(middleware.RequirePermission(middleware.PermCheckOut, log)).
			Post("/{id}/check-out", bookingHandler.CheckOut)
	})
}

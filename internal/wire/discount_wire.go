package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireDiscount(
	r chi.Router,
	discountHandler *adaptor.DiscountHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.With(middleware.AuthSession(repo.Session, repo.User, log)).
		Post("/api/discounts/validate", discountHandler.ValidateDiscount)

	r.Route("/api/admin/discounts", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.RequirePermission(middleware.PermCreateDiscountCode, log))

		r.Post("/", discountHandler.CreateDiscount)
		r.Get("/", discountHandler.GetDiscounts)
		r.Delete("/{id}", discountHandler.DeactivateDiscount)
	})
}

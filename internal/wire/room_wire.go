package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRoom(
	r chi.Router,
	roomHandler *adaptor.RoomHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Room inventory is public so guests can browse before registering.
	r.Get("/api/room-types", roomHandler.GetRoomTypes)
	r.Get("/api/rooms", roomHandler.GetRooms)
	r.Get("/api/rooms/{id}", roomHandler.GetRoom)

	r.Route("/api/admin/room-types", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.RequirePermission(middleware.PermModifyRoomType, log))

		r.Post("/", roomHandler.CreateRoomType)
	})

	r.Route("/api/admin/rooms", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.RequirePermission(middleware.PermManageRooms, log))

		r.Post("/", roomHandler.CreateRoom)
	})
}

package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTask(
	r chi.Router,
	taskHandler *adaptor.TaskHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.With(middleware.APIKey(config.Task.APIKey, log)).
		Post("/api/tasks/room-status", taskHandler.RunRoomStatusSweep)
}

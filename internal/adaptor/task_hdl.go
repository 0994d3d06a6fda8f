package adaptor

import (
	"net/http"

	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type TaskHandler struct {
	service usecase.TaskService
	log     *zap.Logger
}

func NewTaskHandler(service usecase.TaskService, log *zap.Logger) *TaskHandler {
	return &TaskHandler{
		service: service,
		log:     log.With(zap.String("handler", "task")),
	}
}

// RunRoomStatusSweep handles POST /api/tasks/room-status (API key).
// Meant to be invoked by an external scheduler. The sweep tolerates
// partial failure, so a 200 with a non-empty errors list is possible.
func (h *TaskHandler) RunRoomStatusSweep(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.RunReconciliation(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "run room status sweep")
		return
	}

	utils.ResponseSuccess(w, "Sweep completed", report)
}

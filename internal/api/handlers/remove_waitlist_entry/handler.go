package remove_waitlist_entry

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DayCenterService/internal/api/handlers"
	waitlistService "github.com/m04kA/SMC-DayCenterService/internal/service/waitlist"
)

const (
	msgInvalidEntryID = "некорректный ID записи листа ожидания"
	msgNotFound       = "запись листа ожидания не найдена"
)

type Handler struct {
	service WaitlistService
	logger  Logger
}

func NewHandler(service WaitlistService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/waitlist/{entryId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем entryId из URL
	vars := mux.Vars(r)
	entryIDStr := vars["entryId"]

	entryID, err := strconv.ParseInt(entryIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /waitlist/{id} - Invalid entry ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEntryID)
		return
	}

	if err := h.service.Remove(r.Context(), entryID); err != nil {
		switch {
		case errors.Is(err, waitlistService.ErrEntryNotFound):
			h.logger.Warn("DELETE /waitlist/{id} - Entry not found: entry_id=%d", entryID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, waitlistService.ErrInvalidInput):
			h.logger.Warn("DELETE /waitlist/{id} - Invalid input: entry_id=%d", entryID)
			handlers.RespondBadRequest(w, msgInvalidEntryID)

		default:
			h.logger.Error("DELETE /waitlist/{id} - Failed to remove entry: entry_id=%d, error=%v",
				entryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /waitlist/{id} - Entry removed successfully: entry_id=%d", entryID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

package get_blocked_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DayCenterService/internal/api/handlers"
	blockedSlots "github.com/m04kA/SMC-DayCenterService/internal/service/blockedslots"
	"github.com/m04kA/SMC-DayCenterService/internal/service/blockedslots/models"
)

const (
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidFilter = "некорректные параметры фильтрации"
)

type Handler struct {
	service BlockedSlotService
	dates   DateParser
	logger  Logger
}

func NewHandler(service BlockedSlotService, dates DateParser, logger Logger) *Handler {
	return &Handler{
		service: service,
		dates:   dates,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/{date}/blocked-slots
// Query params: serviceType (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем date из URL
	vars := mux.Vars(r)
	dateStr := vars["date"]

	// Календарный день организации, а не полночь UTC
	date, err := h.dates.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /schedule/{date}/blocked-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &models.GetBlockedSlotsRequest{Date: date}
	if serviceType := r.URL.Query().Get("serviceType"); serviceType != "" {
		req.ServiceType = &serviceType
	}

	result, err := h.service.GetBlockedSlots(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, blockedSlots.ErrInvalidInput):
			h.logger.Warn("GET /schedule/{date}/blocked-slots - Invalid filter: date=%s, error=%v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /schedule/{date}/blocked-slots - Failed to get blocks: date=%s, error=%v",
				dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule/{date}/blocked-slots - Blocks retrieved successfully: date=%s, count=%d",
		dateStr, len(result.BlockedSlots))
	handlers.RespondJSON(w, http.StatusOK, result)
}

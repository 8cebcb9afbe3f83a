package block_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DayCenterService/internal/api/handlers"
	"github.com/m04kA/SMC-DayCenterService/internal/api/middleware"
	blockedSlots "github.com/m04kA/SMC-DayCenterService/internal/service/blockedslots"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingActor       = "отсутствует ID сотрудника"
	msgAlreadyBlocked     = "слот уже заблокирован"
	msgInvalidSlot        = "время начала не входит в расписание услуги"
	msgClosedDay          = "центр закрыт в выбранную дату"
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

// Handle POST /api/v1/blocked-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BlockSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /blocked-slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Получаем ID сотрудника из контекста (через middleware Auth)
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /blocked-slots - Missing actor ID")
		handlers.RespondUnauthorized(w, msgMissingActor)
		return
	}

	// Календарный день организации, а не полночь UTC
	date, err := h.dates.ParseDate(req.Date)
	if err != nil {
		h.logger.Warn("POST /blocked-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Block(r.Context(), req.ToServiceRequest(actorID, date))
	if err != nil {
		switch {
		case errors.Is(err, blockedSlots.ErrAlreadyBlocked):
			h.logger.Warn("POST /blocked-slots - Already blocked: date=%s, service=%s, start=%s",
				req.Date, req.ServiceType, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyBlocked)

		case errors.Is(err, blockedSlots.ErrInvalidSlot):
			h.logger.Warn("POST /blocked-slots - Invalid slot: date=%s, service=%s, start=%s",
				req.Date, req.ServiceType, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, blockedSlots.ErrClosedDay):
			h.logger.Warn("POST /blocked-slots - Closed day: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgClosedDay)

		case errors.Is(err, blockedSlots.ErrInvalidInput):
			h.logger.Warn("POST /blocked-slots - Invalid input: error=%v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /blocked-slots - Failed to block slot: date=%s, service=%s, error=%v",
				req.Date, req.ServiceType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /blocked-slots - Slot blocked successfully: block_id=%d, date=%s, service=%s, start=%s",
		result.ID, req.Date, req.ServiceType, req.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

package join_waitlist

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DayCenterService/internal/api/handlers"
	waitlistService "github.com/m04kA/SMC-DayCenterService/internal/service/waitlist"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgSlotsAvailable     = "есть свободные слоты, оформите бронирование"
	msgClosedDay          = "центр закрыт в выбранную дату"
)

type Handler struct {
	service WaitlistService
	dates   DateParser
	logger  Logger
}

func NewHandler(service WaitlistService, dates DateParser, logger Logger) *Handler {
	return &Handler{
		service: service,
		dates:   dates,
		logger:  logger,
	}
}

// Handle POST /api/v1/waitlist
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req JoinWaitlistRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /waitlist - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Календарный день организации, а не полночь UTC
	date, err := h.dates.ParseDate(req.Date)
	if err != nil {
		h.logger.Warn("POST /waitlist - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Join(r.Context(), req.ToServiceRequest(date))
	if err != nil {
		switch {
		case errors.Is(err, waitlistService.ErrSlotsAvailable):
			h.logger.Warn("POST /waitlist - Free slots available: guest_id=%d, date=%s, service=%s",
				req.GuestID, req.Date, req.ServiceType)
			handlers.RespondError(w, http.StatusConflict, msgSlotsAvailable)

		case errors.Is(err, waitlistService.ErrClosedDay):
			h.logger.Warn("POST /waitlist - Closed day: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgClosedDay)

		case errors.Is(err, waitlistService.ErrInvalidInput):
			h.logger.Warn("POST /waitlist - Invalid input: guest_id=%d, error=%v", req.GuestID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /waitlist - Failed to join waitlist: guest_id=%d, error=%v",
				req.GuestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /waitlist - Guest waitlisted: entry_id=%d, guest_id=%d", result.ID, req.GuestID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

package get_waitlist

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DayCenterService/internal/api/handlers"
	waitlistService "github.com/m04kA/SMC-DayCenterService/internal/service/waitlist"
	"github.com/m04kA/SMC-DayCenterService/internal/service/waitlist/models"
)

const (
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidFilter = "некорректные параметры фильтрации"
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

// Handle GET /api/v1/schedule/{date}/waitlist
// Query params: serviceType (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем date из URL
	vars := mux.Vars(r)
	dateStr := vars["date"]

	// Календарный день организации, а не полночь UTC
	date, err := h.dates.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /schedule/{date}/waitlist - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &models.GetWaitlistRequest{Date: date}
	if serviceType := r.URL.Query().Get("serviceType"); serviceType != "" {
		req.ServiceType = &serviceType
	}

	result, err := h.service.GetWaitlist(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, waitlistService.ErrInvalidInput):
			h.logger.Warn("GET /schedule/{date}/waitlist - Invalid filter: date=%s, error=%v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /schedule/{date}/waitlist - Failed to get waitlist: date=%s, error=%v",
				dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule/{date}/waitlist - Waitlist retrieved successfully: date=%s, count=%d",
		dateStr, len(result.Entries))
	handlers.RespondJSON(w, http.StatusOK, result)
}

package get_day_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DayCenterService/internal/api/handlers"
	"github.com/m04kA/SMC-DayCenterService/internal/service/bookings"
	"github.com/m04kA/SMC-DayCenterService/internal/service/bookings/models"
)

const (
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidFilter = "некорректные параметры фильтрации"
)

type Handler struct {
	service BookingService
	dates   DateParser
	logger  Logger
}

func NewHandler(service BookingService, dates DateParser, logger Logger) *Handler {
	return &Handler{
		service: service,
		dates:   dates,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/{date}/bookings
// Query params: serviceType (optional), status (optional),
// includeInactive (optional, true|false)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем date из URL
	vars := mux.Vars(r)
	dateStr := vars["date"]

	// Календарный день организации, а не полночь UTC
	date, err := h.dates.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /schedule/{date}/bookings - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Опциональные фильтры
	req := &models.GetDayBookingsRequest{Date: date}

	if serviceType := r.URL.Query().Get("serviceType"); serviceType != "" {
		req.ServiceType = &serviceType
	}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}
	if r.URL.Query().Get("includeInactive") == "true" {
		req.IncludeInactive = true
	}

	result, err := h.service.GetDayBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /schedule/{date}/bookings - Invalid filter: date=%s, error=%v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /schedule/{date}/bookings - Failed to get bookings: date=%s, error=%v",
				dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule/{date}/bookings - Bookings retrieved successfully: date=%s, count=%d",
		dateStr, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}

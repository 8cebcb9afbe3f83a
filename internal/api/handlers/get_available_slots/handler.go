package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DayCenterService/internal/api/handlers"
	"github.com/m04kA/SMC-DayCenterService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-DayCenterService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate        = "дата обязательна"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingServiceType = "услуга обязательна"
	msgInvalidParams      = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	dates   DateParser
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, dates DateParser, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		dates:   dates,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slots
// Query params: date (required, YYYY-MM-DD), serviceType (required),
// modality (optional, по умолчанию onsite)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Извлекаем serviceType из query параметров
	serviceType := r.URL.Query().Get("serviceType")
	if serviceType == "" {
		h.logger.Warn("GET /available-slots - Missing service type")
		handlers.RespondBadRequest(w, msgMissingServiceType)
		return
	}

	// Модальность опциональна, по умолчанию onsite
	modality := r.URL.Query().Get("modality")
	if modality == "" {
		modality = string(domain.ModalityOnsite)
	}

	// Парсим дату как календарный день организации, а не полночь UTC:
	// иначе запрос уедет на предыдущий локальный день
	date, err := h.dates.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	useCaseReq := ToUseCaseRequest(date, serviceType, modality)

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid params: date=%s, service=%s, modality=%s",
				dateStr, serviceType, modality)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /available-slots - Failed to get slots: date=%s, service=%s, error=%v",
				dateStr, serviceType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /available-slots - Slots retrieved successfully: date=%s, service=%s, slots_count=%d",
		dateStr, serviceType, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}

package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DayCenterService/internal/api/handlers"
	"github.com/m04kA/SMC-DayCenterService/internal/api/middleware"
	allocateBooking "github.com/m04kA/SMC-DayCenterService/internal/usecase/allocate_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingActor       = "отсутствует ID сотрудника"
	msgGuestNotFound      = "гость не найден"
	msgInvalidModality    = "некорректная модальность для выбранной услуги"
	msgClosedDay          = "центр закрыт в выбранную дату"
	msgInvalidSlot        = "время начала не входит в расписание услуги"
	msgSlotBlocked        = "слот заблокирован оператором"
	msgSlotFull           = "слот заполнен"
	msgPastDateWrite      = "запись на прошедшую дату доступна только администратору"
	msgInvalidStatus      = "некорректный начальный статус бронирования"
	msgConflict           = "конфликт одновременных запросов, повторите попытку"
)

type Handler struct {
	useCase AllocateBookingUseCase
	dates   DateParser
	logger  Logger
}

func NewHandler(useCase AllocateBookingUseCase, dates DateParser, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		dates:   dates,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Получаем ID и роль сотрудника из контекста (через middleware Auth)
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing actor ID")
		handlers.RespondUnauthorized(w, msgMissingActor)
		return
	}
	actorRole, _ := middleware.GetUserRole(r.Context())

	// Парсим дату как календарный день организации, а не полночь UTC:
	// иначе live бронирование на сегодня отклоняется как прошедшая дата
	date, err := h.dates.ParseDate(req.Date)
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом времени слота)
	useCaseReq, err := req.ToUseCaseRequest(actorID, actorRole, date)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, allocateBooking.ErrGuestNotFound):
			h.logger.Warn("POST /bookings - Guest not found: guest_id=%d", req.GuestID)
			handlers.RespondNotFound(w, msgGuestNotFound)

		case errors.Is(err, allocateBooking.ErrInvalidModality):
			h.logger.Warn("POST /bookings - Invalid modality: guest_id=%d, service=%s, modality=%s",
				req.GuestID, req.ServiceType, req.Modality)
			handlers.RespondBadRequest(w, msgInvalidModality)

		case errors.Is(err, allocateBooking.ErrClosedDay):
			h.logger.Warn("POST /bookings - Closed day: guest_id=%d, date=%s", req.GuestID, req.Date)
			handlers.RespondBadRequest(w, msgClosedDay)

		case errors.Is(err, allocateBooking.ErrInvalidSlot):
			h.logger.Warn("POST /bookings - Invalid slot: guest_id=%d, date=%s", req.GuestID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, allocateBooking.ErrSlotBlocked):
			h.logger.Warn("POST /bookings - Slot blocked: guest_id=%d, date=%s", req.GuestID, req.Date)
			handlers.RespondError(w, http.StatusConflict, msgSlotBlocked)

		case errors.Is(err, allocateBooking.ErrSlotFull):
			h.logger.Warn("POST /bookings - Slot full: guest_id=%d, date=%s", req.GuestID, req.Date)
			handlers.RespondError(w, http.StatusConflict, msgSlotFull)

		case errors.Is(err, allocateBooking.ErrPastDateWrite):
			h.logger.Warn("POST /bookings - Past date write denied: guest_id=%d, date=%s, actor_id=%d",
				req.GuestID, req.Date, actorID)
			handlers.RespondForbidden(w, msgPastDateWrite)

		case errors.Is(err, allocateBooking.ErrInvalidStatus):
			h.logger.Warn("POST /bookings - Invalid requested status: guest_id=%d", req.GuestID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, allocateBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: guest_id=%d, error=%v", req.GuestID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, allocateBooking.ErrConflict):
			h.logger.Warn("POST /bookings - Allocation conflict: guest_id=%d, date=%s", req.GuestID, req.Date)
			handlers.RespondError(w, http.StatusConflict, msgConflict)

		default:
			h.logger.Error("POST /bookings - Failed to allocate booking: guest_id=%d, error=%v",
				req.GuestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	if result.Outcome == allocateBooking.OutcomeConfirmed {
		h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, guest_id=%d",
			result.Booking.ID, req.GuestID)
	} else {
		h.logger.Info("POST /bookings - Guest waitlisted: entry_id=%d, guest_id=%d",
			result.Waitlist.ID, req.GuestID)
	}
	handlers.RespondJSON(w, http.StatusCreated, response)
}

package rebook_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DayCenterService/internal/api/handlers"
	"github.com/m04kA/SMC-DayCenterService/internal/api/middleware"
	rebookBooking "github.com/m04kA/SMC-DayCenterService/internal/usecase/rebook_booking"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgMissingActor     = "отсутствует ID сотрудника"
	msgNotFound         = "бронирование не найдено"
	msgNotRebookable    = "бронирование не допускает повторного размещения"
	msgPastDateWrite    = "повторное размещение на прошедшую дату доступно только администратору"
	msgClosedDay        = "центр закрыт в дату бронирования"
	msgConflict         = "конфликт одновременных запросов, повторите попытку"
)

type Handler struct {
	useCase RebookBookingUseCase
	logger  Logger
}

func NewHandler(useCase RebookBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/rebook
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем bookingId из URL
	vars := mux.Vars(r)
	bookingIDStr := vars["bookingId"]

	bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/rebook - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	// Получаем ID и роль сотрудника из контекста (через middleware Auth)
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/{id}/rebook - Missing actor ID")
		handlers.RespondUnauthorized(w, msgMissingActor)
		return
	}
	actorRole, _ := middleware.GetUserRole(r.Context())

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &rebookBooking.Request{
		BookingID: bookingID,
		ActorID:   actorID,
		ActorRole: actorRole,
	})
	if err != nil {
		switch {
		case errors.Is(err, rebookBooking.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/rebook - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rebookBooking.ErrNotRebookable):
			h.logger.Warn("POST /bookings/{id}/rebook - Not rebookable: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgNotRebookable)

		case errors.Is(err, rebookBooking.ErrPastDateWrite):
			h.logger.Warn("POST /bookings/{id}/rebook - Past date rebook denied: booking_id=%d, actor_id=%d",
				bookingID, actorID)
			handlers.RespondForbidden(w, msgPastDateWrite)

		case errors.Is(err, rebookBooking.ErrClosedDay):
			h.logger.Warn("POST /bookings/{id}/rebook - Closed day: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgClosedDay)

		case errors.Is(err, rebookBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/rebook - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		case errors.Is(err, rebookBooking.ErrConflict):
			h.logger.Warn("POST /bookings/{id}/rebook - Rebook conflict: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgConflict)

		default:
			h.logger.Error("POST /bookings/{id}/rebook - Failed to rebook: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	if result.Outcome == rebookBooking.OutcomeRebooked {
		h.logger.Info("POST /bookings/{id}/rebook - Booking rebooked successfully: booking_id=%d, actor_id=%d",
			bookingID, actorID)
	} else {
		h.logger.Info("POST /bookings/{id}/rebook - Guest waitlisted: booking_id=%d, entry_id=%d",
			bookingID, result.Waitlist.ID)
	}
	handlers.RespondJSON(w, http.StatusOK, response)
}

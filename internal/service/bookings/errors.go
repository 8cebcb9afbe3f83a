package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidTransition возвращается, когда машина состояний не
	// допускает запрошенного перехода
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrRebookRequired возвращается при попытке вернуть отмененное или
	// no_show бронирование в booked прямой сменой статуса: возврат в
	// booked проходит только через rebook с повторным выбором слота
	ErrRebookRequired = errors.New("transition requires rebooking")

	// ErrPastDateWrite возвращается, когда не-администратор меняет
	// бронирование на дату, отличную от текущего дня
	ErrPastDateWrite = errors.New("writes to past dates require admin role")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

package waitlist

import "errors"

var (
	// ErrEntryNotFound возвращается, когда запись листа ожидания не найдена
	ErrEntryNotFound = errors.New("waitlist entry not found")

	// ErrSlotsAvailable возвращается при попытке встать в лист ожидания,
	// когда в каталоге еще есть свободный незаблокированный слот
	ErrSlotsAvailable = errors.New("free slots are still available")

	// ErrClosedDay возвращается, когда на запрошенную дату центр закрыт
	ErrClosedDay = errors.New("center is closed on this date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

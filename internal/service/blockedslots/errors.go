package blockedslots

import "errors"

var (
	// ErrBlockNotFound возвращается, когда блокировка не найдена
	ErrBlockNotFound = errors.New("block not found")

	// ErrAlreadyBlocked возвращается при повторной блокировке того же слота
	ErrAlreadyBlocked = errors.New("slot already blocked")

	// ErrInvalidSlot возвращается, когда время начала не входит в каталог
	// слотов услуги на указанную дату
	ErrInvalidSlot = errors.New("start time is not a catalog slot")

	// ErrClosedDay возвращается, когда центр закрыт в указанную дату
	ErrClosedDay = errors.New("center is closed on this date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

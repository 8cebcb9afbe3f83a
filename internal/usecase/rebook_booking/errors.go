package rebook_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("rebook_booking: booking not found")

	// ErrNotRebookable возвращается, когда статус бронирования не допускает
	// повторного размещения (rebook возможен только из cancelled и no_show)
	ErrNotRebookable = errors.New("rebook_booking: booking is not rebookable")

	// ErrPastDateWrite возвращается, когда не-администратор пытается
	// перебронировать запись на дату, отличную от текущего дня
	ErrPastDateWrite = errors.New("rebook_booking: live rebooking is restricted to the current day")

	// ErrClosedDay возвращается, когда на дату бронирования каталог пуст
	ErrClosedDay = errors.New("rebook_booking: center is closed on this date")

	// ErrConflict возвращается при неразрешенной гонке за вместимость
	ErrConflict = errors.New("rebook_booking: concurrent capacity conflict")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("rebook_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("rebook_booking: internal error")
)

package guestdirectory

import "errors"

var (
	// ErrGuestNotFound возвращается, когда гость не найден в каталоге
	ErrGuestNotFound = errors.New("guest not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("guestdirectory client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("guestdirectory client: invalid response")
)

package blockedslot

import "errors"

var (
	// ErrBlockNotFound возвращается, когда блокировка слота не найдена
	ErrBlockNotFound = errors.New("blockedslot.repository: block not found")

	// ErrAlreadyBlocked возвращается при повторной блокировке того же слота
	ErrAlreadyBlocked = errors.New("blockedslot.repository: slot already blocked")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("blockedslot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("blockedslot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("blockedslot.repository: failed to scan row")
)

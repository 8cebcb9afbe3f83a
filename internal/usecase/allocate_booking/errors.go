package allocate_booking

import "errors"

var (
	// ErrGuestNotFound возвращается, когда гость не найден в GuestDirectory
	ErrGuestNotFound = errors.New("allocate_booking: guest not found")

	// ErrInvalidModality возвращается при недопустимой комбинации услуги
	// и модальности (offsite поддерживается только для laundry)
	ErrInvalidModality = errors.New("allocate_booking: invalid service/modality combination")

	// ErrClosedDay возвращается, когда на запрошенную дату центр закрыт
	// и каталог слотов пуст
	ErrClosedDay = errors.New("allocate_booking: center is closed on this date")

	// ErrInvalidSlot возвращается, когда явно выбранный слот отсутствует
	// в каталоге для этой услуги и даты
	ErrInvalidSlot = errors.New("allocate_booking: slot is not in the catalog")

	// ErrSlotBlocked возвращается, когда явно выбранный слот заблокирован
	ErrSlotBlocked = errors.New("allocate_booking: slot is blocked")

	// ErrSlotFull возвращается, когда явно выбранный слот заполнен
	ErrSlotFull = errors.New("allocate_booking: slot is full")

	// ErrPastDateWrite возвращается, когда не-администратор пытается
	// создать бронирование на дату, отличную от текущего календарного дня
	ErrPastDateWrite = errors.New("allocate_booking: live bookings are restricted to the current day")

	// ErrInvalidStatus возвращается при недопустимом начальном статусе
	// (запрашивать статус напрямую может только backfill)
	ErrInvalidStatus = errors.New("allocate_booking: invalid requested status")

	// ErrConflict возвращается, когда конкурентная гонка за вместимость
	// не разрешилась за отведенное число повторов
	ErrConflict = errors.New("allocate_booking: concurrent capacity conflict")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("allocate_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("allocate_booking: internal error")
)

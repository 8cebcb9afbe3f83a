package guestdirectory

// Guest модель гостя из GuestDirectory
// Ядру бронирования нужен только идентификатор и признак активности -
// демографические данные гостя остаются в GuestDirectory
type Guest struct {
	ID     int64 `json:"id"`
	Active bool  `json:"active"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

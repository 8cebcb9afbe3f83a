package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-DayCenterService/internal/domain"
	"github.com/m04kA/SMC-DayCenterService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date        time.Time          // Дата для получения слотов (без времени)
	ServiceType domain.ServiceType // Услуга: shower | laundry
	Modality    domain.Modality    // Модальность (offsite не имеет слотов)
}

// Response модель ответа со списком слотов дня
type Response struct {
	Date        time.Time          // Дата, на которую запрашивались слоты
	ServiceType domain.ServiceType // Услуга
	Slots       []Slot             // Список слотов с занятостью
}

// Slot модель временного слота с занятостью
type Slot struct {
	StartTime       types.TimeString // Время начала слота (например, "07:30")
	DurationMinutes int              // Длительность слота в минутах
	Occupancy       int              // Количество активных бронирований
	Capacity        int              // Вместимость слота
	Blocked         bool             // Слот заблокирован оператором
}

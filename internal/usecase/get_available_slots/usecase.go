package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-DayCenterService/internal/domain"
)

// UseCase use case получения слотов дня с занятостью и блокировками
type UseCase struct {
	bookingRepo   BookingRepository
	blockRegistry BlockRegistry
	clock         Clock
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	blockRegistry BlockRegistry,
	clock Clock,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		blockRegistry: blockRegistry,
		clock:         clock,
		logger:        logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s, service=%s, modality=%s",
		req.Date.Format(domain.DateFormat), req.ServiceType, req.Modality)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Нормализуем дату до календарного дня организации
	date := uc.clock.CalendarDateOf(req.Date)

	// 3. Offsite не привязан к слотам - возвращаем пустой список
	if req.Modality == domain.ModalityOffsite {
		return &Response{Date: date, ServiceType: req.ServiceType, Slots: []Slot{}}, nil
	}

	// 4. Генерируем каталог слотов (пустой для закрытого дня)
	catalog := domain.GenerateSlots(req.ServiceType, date)
	if len(catalog) == 0 {
		uc.logger.Info("GetAvailableSlots: center closed on %s", date.Format(domain.DateFormat))
		return &Response{Date: date, ServiceType: req.ServiceType, Slots: []Slot{}}, nil
	}

	// 5. Получаем активные бронирования дня
	filter := domain.DayBookingsFilter{
		Date:            date,
		ServiceType:     &req.ServiceType,
		IncludeInactive: false, // Только статусы, занимающие вместимость
	}

	bookings, err := uc.bookingRepo.GetByDate(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Получаем блокировки дня
	blocked, err := uc.blockRegistry.GetBlockedStartTimes(ctx, date, req.ServiceType)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get blocked slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocked slots: %v", ErrInternal, err)
	}

	// 7. Аннотируем каждый слот занятостью, вместимостью и блокировкой
	capacity := domain.CapacityFor(req.ServiceType, domain.ModalityOnsite)
	slots := make([]Slot, len(catalog))

	for i, slot := range catalog {
		_, isBlocked := blocked[slot.StartTime]

		slots[i] = Slot{
			StartTime:       slot.StartTime,
			DurationMinutes: slot.DurationMinutes,
			Occupancy:       domain.Occupancy(bookings, slot.StartTime),
			Capacity:        capacity,
			Blocked:         isBlocked,
		}
	}

	uc.logger.Info("GetAvailableSlots: %d slots for service=%s, date=%s",
		len(slots), req.ServiceType, date.Format(domain.DateFormat))

	return &Response{
		Date:        date,
		ServiceType: req.ServiceType,
		Slots:       slots,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.ServiceType != domain.ServiceShower && req.ServiceType != domain.ServiceLaundry {
		return fmt.Errorf("%w: unknown service type %q", ErrInvalidInput, req.ServiceType)
	}

	if req.Modality != domain.ModalityOnsite && req.Modality != domain.ModalityOffsite {
		return fmt.Errorf("%w: unknown modality %q", ErrInvalidInput, req.Modality)
	}

	return nil
}

package allocate_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-DayCenterService/internal/domain"
	guestClient "github.com/m04kA/SMC-DayCenterService/internal/integrations/guestdirectory"
	"github.com/m04kA/SMC-DayCenterService/pkg/txmanager"
)

// allocationMaxAttempts число повторов сериализуемой транзакции при
// конфликте конкурентной аллокации, прежде чем вернуть ErrConflict
const allocationMaxAttempts = 3

// UseCase use case аллокации бронирования (Allocator)
// Выбор слота и запись бронирования выполняются как одна атомарная
// операция: проверка занятости и вставка идут в сериализуемой транзакции
type UseCase struct {
	bookingRepo   BookingRepository
	waitlistRepo  WaitlistRepository
	blockRegistry BlockRegistry
	guestClient   GuestDirectoryClient
	txManager     TransactionManager
	clock         Clock
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	waitlistRepo WaitlistRepository,
	blockRegistry BlockRegistry,
	guestClient GuestDirectoryClient,
	txManager TransactionManager,
	clock Clock,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		waitlistRepo:  waitlistRepo,
		blockRegistry: blockRegistry,
		guestClient:   guestClient,
		txManager:     txManager,
		clock:         clock,
		logger:        logger,
	}
}

// Execute выполняет use case аллокации бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AllocateBooking: guest=%d, date=%s, service=%s, modality=%s, actor=%d role=%s",
		req.GuestID, req.Date.Format(domain.DateFormat), req.ServiceType, req.Modality, req.ActorID, req.ActorRole)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AllocateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Нормализуем дату до календарного дня организации
	date := uc.clock.CalendarDateOf(req.Date)
	today := uc.clock.Today()

	// 3. Классифицируем поток: live или административный backfill
	isBackfill, err := classifyFlow(req.ActorRole, date, today)
	if err != nil {
		uc.logger.Warn("AllocateBooking: flow classification failed: %v", err)
		return nil, err
	}

	// 4. Определяем начальный статус (backfill может сразу записать done)
	initialStatus, err := validateRequestedStatus(req.RequestedStatus, isBackfill)
	if err != nil {
		uc.logger.Warn("AllocateBooking: status validation failed: %v", err)
		return nil, err
	}

	// 5. Проверяем существование гостя
	guest, err := uc.guestClient.GetGuest(ctx, req.GuestID)
	if err != nil {
		if errors.Is(err, guestClient.ErrGuestNotFound) {
			uc.logger.Warn("AllocateBooking: guest id=%d not found", req.GuestID)
			return nil, ErrGuestNotFound
		}
		uc.logger.Error("AllocateBooking: failed to get guest id=%d: %v", req.GuestID, err)
		return nil, fmt.Errorf("%w: failed to get guest: %v", ErrInternal, err)
	}
	if !guest.Active {
		uc.logger.Warn("AllocateBooking: guest id=%d is inactive", req.GuestID)
		return nil, fmt.Errorf("%w: guest is inactive", ErrGuestNotFound)
	}

	// 6. Offsite laundry не привязан к слотам и не ограничен вместимостью
	if req.Modality == domain.ModalityOffsite {
		return uc.allocateOffsite(ctx, req, date, initialStatus, isBackfill)
	}

	// 7. Генерируем каталог слотов
	catalog := domain.GenerateSlots(req.ServiceType, date)
	if len(catalog) == 0 {
		uc.logger.Warn("AllocateBooking: center closed on %s", date.Format(domain.DateFormat))
		return nil, ErrClosedDay
	}

	// 8. Выбор слота и вставка в сериализуемой транзакции
	// Проверка занятости и запись - классическая гонка check-then-act,
	// поэтому конфликты сериализации повторяются ограниченное число раз
	var result *Response

	for attempt := 1; attempt <= allocationMaxAttempts; attempt++ {
		err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
			resp, txErr := uc.allocateOnsite(txCtx, req, date, catalog, initialStatus, isBackfill)
			if txErr != nil {
				return txErr
			}
			result = resp
			return nil
		})

		if err == nil {
			break
		}

		if txmanager.IsSerializationFailure(err) {
			uc.logger.Warn("AllocateBooking: serialization conflict, attempt %d/%d: %v",
				attempt, allocationMaxAttempts, err)
			continue
		}

		// Ошибки запроса не повторяются
		return nil, err
	}

	if err != nil {
		uc.logger.Error("AllocateBooking: capacity conflict not resolved after %d attempts: %v",
			allocationMaxAttempts, err)
		return nil, fmt.Errorf("%w: %v", ErrConflict, err)
	}

	switch result.Outcome {
	case OutcomeConfirmed:
		uc.logger.Info("AllocateBooking: booking id=%d confirmed, slot=%s, status=%s",
			result.Booking.ID, startTimeForLog(result), result.Booking.Status)
	case OutcomeWaitlisted:
		uc.logger.Info("AllocateBooking: no slots available, guest=%d waitlisted, entry id=%d",
			req.GuestID, result.Waitlist.ID)
	}

	return result, nil
}

// allocateOnsite выполняет выбор слота и запись внутри транзакции
func (uc *UseCase) allocateOnsite(
	txCtx context.Context,
	req *Request,
	date time.Time,
	catalog []domain.ServiceSlot,
	initialStatus domain.BookingStatus,
	isBackfill bool,
) (*Response, error) {
	// Снимок активных бронирований дня с блокировкой FOR UPDATE
	filter := domain.DayBookingsFilter{
		Date:            date,
		ServiceType:     &req.ServiceType,
		IncludeInactive: false, // Только статусы, занимающие вместимость
	}

	bookings, err := uc.bookingRepo.GetByDate(txCtx, filter)
	if err != nil {
		uc.logger.Error("AllocateBooking: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	blocked, err := uc.blockRegistry.GetBlockedStartTimes(txCtx, date, req.ServiceType)
	if err != nil {
		uc.logger.Error("AllocateBooking: failed to get blocked slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocked slots: %v", ErrInternal, err)
	}

	var chosen domain.ServiceSlot

	if req.ExplicitSlot != nil {
		// Явный выбор слота: blocked/full проверяются только для live,
		// членство в каталоге - всегда
		chosen, err = checkExplicitSlot(catalog, *req.ExplicitSlot, bookings, blocked, req.ServiceType, isBackfill)
		if err != nil {
			uc.logger.Warn("AllocateBooking: explicit slot %s rejected: %v", *req.ExplicitSlot, err)
			return nil, err
		}
	} else {
		slot, found := firstFit(catalog, bookings, blocked, req.ServiceType, isBackfill)
		if !found {
			// Свободных слотов нет: ожидаемый исход live потока,
			// а не ошибка - создаем запись листа ожидания
			entry := &domain.WaitlistEntry{
				GuestID:     req.GuestID,
				Date:        date,
				ServiceType: req.ServiceType,
			}

			created, wlErr := uc.waitlistRepo.Create(txCtx, entry)
			if wlErr != nil {
				uc.logger.Error("AllocateBooking: failed to create waitlist entry: %v", wlErr)
				return nil, fmt.Errorf("%w: failed to create waitlist entry: %v", ErrInternal, wlErr)
			}

			return fromDomainWaitlistEntry(created), nil
		}
		chosen = slot
	}

	startTime := chosen.StartTime

	booking := &domain.Booking{
		GuestID:     req.GuestID,
		Date:        date,
		ServiceType: req.ServiceType,
		Modality:    domain.ModalityOnsite,
		StartTime:   &startTime,
		Status:      initialStatus,
		Notes:       req.Notes,
		CreatedBy:   req.ActorID,
		UpdatedBy:   req.ActorID,
	}

	created, err := uc.bookingRepo.Create(txCtx, booking)
	if err != nil {
		uc.logger.Error("AllocateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	return fromDomainBooking(created, isBackfill), nil
}

// allocateOffsite создает бронирование без слота (offsite laundry)
// Вместимость не проверяется - модальность не ограничена, поэтому
// сериализуемая транзакция не требуется
func (uc *UseCase) allocateOffsite(
	ctx context.Context,
	req *Request,
	date time.Time,
	initialStatus domain.BookingStatus,
	isBackfill bool,
) (*Response, error) {
	booking := &domain.Booking{
		GuestID:     req.GuestID,
		Date:        date,
		ServiceType: req.ServiceType,
		Modality:    domain.ModalityOffsite,
		StartTime:   nil,
		Status:      initialStatus,
		BagNumber:   req.BagNumber,
		Notes:       req.Notes,
		CreatedBy:   req.ActorID,
		UpdatedBy:   req.ActorID,
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("AllocateBooking: failed to create offsite booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create offsite booking: %v", ErrInternal, err)
	}

	uc.logger.Info("AllocateBooking: offsite booking id=%d confirmed, status=%s", created.ID, created.Status)

	return fromDomainBooking(created, isBackfill), nil
}

func startTimeForLog(resp *Response) string {
	if resp.Booking != nil && resp.Booking.StartTime != nil {
		return resp.Booking.StartTime.String()
	}
	return "-"
}

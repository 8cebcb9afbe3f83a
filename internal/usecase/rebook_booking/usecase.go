package rebook_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DayCenterService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-DayCenterService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-DayCenterService/pkg/txmanager"
	"github.com/m04kA/SMC-DayCenterService/pkg/types"
)

// rebookMaxAttempts число повторов сериализуемой транзакции при конфликте
const rebookMaxAttempts = 3

// UseCase use case повторного размещения прошедшего через cancel/no_show
// бронирования. Это запрос на бронирование, а не сырая смена статуса:
// выбор слота выполняется заново по текущей занятости, запись сохраняет
// свой ID (дубликат не создается).
type UseCase struct {
	bookingRepo   BookingRepository
	waitlistRepo  WaitlistRepository
	blockRegistry BlockRegistry
	txManager     TransactionManager
	clock         Clock
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepository BookingRepository,
	waitlistRepo WaitlistRepository,
	blockRegistry BlockRegistry,
	txManager TransactionManager,
	clock Clock,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepository,
		waitlistRepo:  waitlistRepo,
		blockRegistry: blockRegistry,
		txManager:     txManager,
		clock:         clock,
		logger:        logger,
	}
}

// Execute выполняет use case повторного размещения
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RebookBooking: booking=%d, actor=%d role=%s", req.BookingID, req.ActorID, req.ActorRole)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RebookBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Повторное размещение в сериализуемой транзакции с повторами
	var result *Response
	var err error

	for attempt := 1; attempt <= rebookMaxAttempts; attempt++ {
		err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
			resp, txErr := uc.rebook(txCtx, req)
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
			uc.logger.Warn("RebookBooking: serialization conflict, attempt %d/%d: %v",
				attempt, rebookMaxAttempts, err)
			continue
		}

		return nil, err
	}

	if err != nil {
		uc.logger.Error("RebookBooking: capacity conflict not resolved after %d attempts: %v",
			rebookMaxAttempts, err)
		return nil, fmt.Errorf("%w: %v", ErrConflict, err)
	}

	switch result.Outcome {
	case OutcomeRebooked:
		uc.logger.Info("RebookBooking: booking id=%d rebooked, slot=%s",
			result.Booking.ID, startTimeForLog(result.Booking.StartTime))
	case OutcomeWaitlisted:
		uc.logger.Info("RebookBooking: no slots available, guest=%d waitlisted, entry id=%d",
			result.Waitlist.GuestID, result.Waitlist.ID)
	}

	return result, nil
}

// rebook выполняет выбор слота и обновление записи внутри транзакции
func (uc *UseCase) rebook(txCtx context.Context, req *Request) (*Response, error) {
	// Читаем бронирование с блокировкой строки
	booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("RebookBooking: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("RebookBooking: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// Машина состояний: booked достижим повторно только из cancelled/no_show
	if !domain.CanTransition(booking.Status, domain.StatusBooked) || !booking.IsRebookable() {
		uc.logger.Warn("RebookBooking: booking id=%d not rebookable, status=%s", booking.ID, booking.Status)
		return nil, fmt.Errorf("%w: status=%s", ErrNotRebookable, booking.Status)
	}

	// Live rebook только на текущий день; администратору доступен
	// backfill-поток с пропуском проверок блокировок и вместимости.
	// Дата из БД приходит как полночь UTC, поэтому сравниваем
	// календарные дни по формату, а не моменты времени.
	isBackfill := false
	if booking.Date.Format(domain.DateFormat) != uc.clock.Today().Format(domain.DateFormat) {
		if req.ActorRole != domain.RoleAdmin {
			uc.logger.Warn("RebookBooking: past-date rebook denied for role=%s, booking id=%d",
				req.ActorRole, booking.ID)
			return nil, ErrPastDateWrite
		}
		isBackfill = true
	}

	prevSlot := booking.StartTime

	// Offsite не привязан к слоту - просто возвращаем запись в booked
	if booking.Modality == domain.ModalityOffsite {
		if err := uc.bookingRepo.UpdateSlotAndStatus(txCtx, booking.ID, nil, domain.StatusBooked, req.ActorID); err != nil {
			uc.logger.Error("RebookBooking: failed to update offsite booking id=%d: %v", booking.ID, err)
			return nil, fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}
		return rebookedResponse(booking, nil, prevSlot), nil
	}

	catalog := domain.GenerateSlots(booking.ServiceType, booking.Date)
	if len(catalog) == 0 {
		return nil, ErrClosedDay
	}

	// Снимок занятости: запись в cancelled/no_show сама вместимость
	// не занимает, самоподсчет исключен
	filter := domain.DayBookingsFilter{
		Date:            booking.Date,
		ServiceType:     &booking.ServiceType,
		IncludeInactive: false,
	}

	bookings, err := uc.bookingRepo.GetByDate(txCtx, filter)
	if err != nil {
		uc.logger.Error("RebookBooking: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	blocked, err := uc.blockRegistry.GetBlockedStartTimes(txCtx, booking.Date, booking.ServiceType)
	if err != nil {
		uc.logger.Error("RebookBooking: failed to get blocked slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocked slots: %v", ErrInternal, err)
	}

	// Выбор слота: исходный слот имеет приоритет, иначе первый свободный
	startTime, found := selectSlot(catalog, bookings, blocked, booking, isBackfill)
	if !found {
		// Свободных слотов нет: бронирование остается в прежнем статусе,
		// гость попадает в лист ожидания
		entry := &domain.WaitlistEntry{
			GuestID:     booking.GuestID,
			Date:        booking.Date,
			ServiceType: booking.ServiceType,
		}

		created, wlErr := uc.waitlistRepo.Create(txCtx, entry)
		if wlErr != nil {
			uc.logger.Error("RebookBooking: failed to create waitlist entry: %v", wlErr)
			return nil, fmt.Errorf("%w: failed to create waitlist entry: %v", ErrInternal, wlErr)
		}

		return &Response{
			Outcome: OutcomeWaitlisted,
			Waitlist: &WaitlistResult{
				ID:          created.ID,
				GuestID:     created.GuestID,
				Date:        created.Date,
				ServiceType: created.ServiceType,
				CreatedAt:   created.CreatedAt,
			},
		}, nil
	}

	if err := uc.bookingRepo.UpdateSlotAndStatus(txCtx, booking.ID, &startTime, domain.StatusBooked, req.ActorID); err != nil {
		uc.logger.Error("RebookBooking: failed to update booking id=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
	}

	return rebookedResponse(booking, &startTime, prevSlot), nil
}

// selectSlot выбирает слот для повторного размещения
// Исходный слот сохраняется, если он все еще доступен (или поток backfill);
// иначе детерминированный first-fit по каталогу
func selectSlot(
	catalog []domain.ServiceSlot,
	bookings []*domain.Booking,
	blocked map[types.TimeString]struct{},
	booking *domain.Booking,
	isBackfill bool,
) (types.TimeString, bool) {
	if booking.StartTime != nil {
		if _, ok := domain.FindSlot(catalog, *booking.StartTime); ok {
			if isBackfill {
				return *booking.StartTime, true
			}
			_, isBlocked := blocked[*booking.StartTime]
			if !isBlocked && !domain.IsSlotFull(bookings, *booking.StartTime, booking.ServiceType, domain.ModalityOnsite) {
				return *booking.StartTime, true
			}
		}
	}

	for _, slot := range catalog {
		if isBackfill {
			return slot.StartTime, true
		}
		if _, isBlocked := blocked[slot.StartTime]; isBlocked {
			continue
		}
		if domain.IsSlotFull(bookings, slot.StartTime, booking.ServiceType, domain.ModalityOnsite) {
			continue
		}
		return slot.StartTime, true
	}

	return "", false
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.ActorID <= 0 {
		return fmt.Errorf("%w: actorID must be positive", ErrInvalidInput)
	}

	if req.ActorRole != domain.RoleOperator && req.ActorRole != domain.RoleAdmin {
		return fmt.Errorf("%w: unknown actor role %q", ErrInvalidInput, req.ActorRole)
	}

	return nil
}

func rebookedResponse(booking *domain.Booking, startTime, prevSlot *types.TimeString) *Response {
	return &Response{
		Outcome: OutcomeRebooked,
		Booking: &BookingResult{
			ID:          booking.ID,
			GuestID:     booking.GuestID,
			Date:        booking.Date,
			ServiceType: booking.ServiceType,
			Modality:    booking.Modality,
			StartTime:   startTime,
			Status:      domain.StatusBooked,
			PrevSlot:    prevSlot,
		},
	}
}

func startTimeForLog(startTime *types.TimeString) string {
	if startTime != nil {
		return startTime.String()
	}
	return "-"
}

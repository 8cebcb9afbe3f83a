package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DayCenterService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-DayCenterService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-DayCenterService/internal/service/bookings/models"
)

// Service сервис для чтения бронирований и смены их статусов
// Выбор слота здесь не выполняется: создание проходит через allocate,
// возврат в booked из cancelled/no_show - через rebook
type Service struct {
	bookingRepo BookingRepository
	clock       Clock
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	clock Clock,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		clock:       clock,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetGuestBookings получает историю бронирований гостя
// Опционально фильтрует по статусу
func (s *Service) GetGuestBookings(ctx context.Context, req *models.GetGuestBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetGuestBookings: fetching bookings for guest=%d, status=%v", req.GuestID, req.Status)

	if req.GuestID <= 0 {
		return nil, fmt.Errorf("%w: guestID must be positive", ErrInvalidInput)
	}

	// Конвертируем статус из строки в domain.BookingStatus
	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetGuestBookings: invalid status=%s for guest=%d", *req.Status, req.GuestID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByGuestID(ctx, req.GuestID, domainStatus)
	if err != nil {
		s.logger.Error("GetGuestBookings: repository error for guest=%d: %v", req.GuestID, err)
		return nil, fmt.Errorf("%w: GetGuestBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetGuestBookings: successfully fetched %d bookings for guest=%d", len(bookings), req.GuestID)
	return models.FromDomainBookingList(bookings), nil
}

// GetDayBookings получает бронирования на календарный день с фильтрацией
// по услуге и статусу (дневной журнал оператора)
//
// Примеры использования:
// - Все активные бронирования дня: GetDayBookings(ctx, &GetDayBookingsRequest{Date: date})
// - Только душ: указать ServiceType = "shower"
// - Только лист ожидания: указать Status = "waiting"
// - Включая отмененные и no_show: IncludeInactive = true
func (s *Service) GetDayBookings(ctx context.Context, req *models.GetDayBookingsRequest) (*models.BookingListResponse, error) {
	// Логируем запрос с деталями фильтрации
	logMsg := fmt.Sprintf("GetDayBookings: fetching bookings for date=%s", req.Date.Format(domain.DateFormat))
	if req.ServiceType != nil {
		logMsg += fmt.Sprintf(", service=%s", *req.ServiceType)
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetDayBookings: invalid filter for date=%s: %v", req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByDate(ctx, filter)
	if err != nil {
		s.logger.Error("GetDayBookings: repository error for date=%s: %v", req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetDayBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetDayBookings: successfully fetched %d bookings for date=%s",
		len(bookings), req.Date.Format(domain.DateFormat))
	return models.FromDomainBookingList(bookings), nil
}

// Transition меняет статус бронирования по машине состояний
// Возврат в booked из cancelled/no_show отклоняется с ErrRebookRequired:
// такой переход - это запрос на бронирование и проходит через rebook
func (s *Service) Transition(ctx context.Context, bookingID int64, req *models.TransitionRequest) (*models.BookingResponse, error) {
	s.logger.Info("Transition: booking id=%d to status=%s by actor=%d role=%s",
		bookingID, req.Status, req.ActorID, req.ActorRole)

	if bookingID <= 0 || req.ActorID <= 0 {
		return nil, fmt.Errorf("%w: bookingID and actorID must be positive", ErrInvalidInput)
	}

	role, err := models.ToDomainActorRole(req.ActorRole)
	if err != nil {
		s.logger.Warn("Transition: invalid role=%s", req.ActorRole)
		return nil, fmt.Errorf("%w: invalid actor role", ErrInvalidInput)
	}

	// Валидируем и конвертируем статус
	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("Transition: invalid status=%s for booking id=%d", req.Status, bookingID)
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}

	// Получаем бронирование
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Transition: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Transition: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Transition - repository error: %v", ErrInternal, err)
	}

	// Смена статуса на прошедшую дату доступна только администратору
	// (backfill). Дата из БД приходит как полночь UTC, сравниваем
	// календарные дни по формату
	if booking.Date.Format(domain.DateFormat) != s.clock.Today().Format(domain.DateFormat) && role != domain.RoleAdmin {
		s.logger.Warn("Transition: past-date write denied for role=%s, booking id=%d", role, bookingID)
		return nil, ErrPastDateWrite
	}

	// Возврат в booked из прошедшего статуса - только через rebook
	if domain.RequiresReallocation(booking.Status, newStatus) {
		s.logger.Warn("Transition: booking id=%d requires rebook for %s -> %s",
			bookingID, booking.Status, newStatus)
		return nil, fmt.Errorf("%w: %s -> %s", ErrRebookRequired, booking.Status, newStatus)
	}

	// Машина состояний
	if !domain.CanTransition(booking.Status, newStatus) {
		s.logger.Warn("Transition: invalid transition %s -> %s for booking id=%d",
			booking.Status, newStatus, bookingID)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, newStatus)
	}

	// Обновляем статус
	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus, req.ActorID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Transition: booking id=%d not found during update", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Transition: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Transition - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Transition: successfully updated booking id=%d to status=%s", bookingID, newStatus)

	booking.Status = newStatus
	booking.UpdatedBy = req.ActorID
	return models.FromDomainBooking(booking), nil
}

package waitlist

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DayCenterService/internal/domain"
	waitlistRepo "github.com/m04kA/SMC-DayCenterService/internal/infra/storage/waitlist"
	"github.com/m04kA/SMC-DayCenterService/internal/service/waitlist/models"
)

// Service сервис для работы с листом ожидания
// Записи создаются потоками allocate и rebook или напрямую через Join;
// сервис отдает лист дня в порядке поступления и снимает записи, когда
// гость обслужен или ушел
type Service struct {
	waitlistRepo WaitlistRepository
	bookingRepo  BookingRepository
	blocks       BlockRegistry
	logger       Logger
}

// NewService создает новый экземпляр сервиса листа ожидания
func NewService(
	waitlistRepo WaitlistRepository,
	bookingRepo BookingRepository,
	blocks BlockRegistry,
	logger Logger,
) *Service {
	return &Service{
		waitlistRepo: waitlistRepo,
		bookingRepo:  bookingRepo,
		blocks:       blocks,
		logger:       logger,
	}
}

// Join ставит гостя в лист ожидания напрямую
// Лист ожидания существует только когда свободных слотов нет: при наличии
// свободного незаблокированного слота запрос отклоняется - гостя следует
// бронировать, а не ставить в очередь
func (s *Service) Join(ctx context.Context, req *models.JoinWaitlistRequest) (*models.WaitlistEntryResponse, error) {
	s.logger.Info("Join: guest=%d, date=%s, service=%s",
		req.GuestID, req.Date.Format(domain.DateFormat), req.ServiceType)

	if req.GuestID <= 0 {
		return nil, fmt.Errorf("%w: guestID must be positive", ErrInvalidInput)
	}

	entry, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Join: invalid request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	catalog := domain.GenerateSlots(entry.ServiceType, entry.Date)
	if len(catalog) == 0 {
		s.logger.Warn("Join: center is closed on date=%s", req.Date.Format(domain.DateFormat))
		return nil, ErrClosedDay
	}

	// Снимок занятости и блокировок дня
	filter := domain.DayBookingsFilter{
		Date:            entry.Date,
		ServiceType:     &entry.ServiceType,
		IncludeInactive: false,
	}

	bookings, err := s.bookingRepo.GetByDate(ctx, filter)
	if err != nil {
		s.logger.Error("Join: failed to get bookings for date=%s: %v", req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: Join - repository error: %v", ErrInternal, err)
	}

	blocked, err := s.blocks.GetBlockedStartTimes(ctx, entry.Date, entry.ServiceType)
	if err != nil {
		s.logger.Error("Join: failed to get blocked slots for date=%s: %v", req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: Join - repository error: %v", ErrInternal, err)
	}

	for _, slot := range catalog {
		if _, isBlocked := blocked[slot.StartTime]; isBlocked {
			continue
		}
		if domain.IsSlotFull(bookings, slot.StartTime, entry.ServiceType, domain.ModalityOnsite) {
			continue
		}
		s.logger.Warn("Join: free slot %s still available for date=%s, service=%s",
			slot.StartTime, req.Date.Format(domain.DateFormat), req.ServiceType)
		return nil, fmt.Errorf("%w: %s", ErrSlotsAvailable, slot.StartTime)
	}

	created, err := s.waitlistRepo.Create(ctx, entry)
	if err != nil {
		s.logger.Error("Join: failed to create entry for guest=%d: %v", req.GuestID, err)
		return nil, fmt.Errorf("%w: Join - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Join: successfully created waitlist entry id=%d for guest=%d", created.ID, req.GuestID)
	return models.FromDomainEntry(created), nil
}

// GetWaitlist получает лист ожидания на календарный день (FIFO)
// Опционально фильтрует по услуге
func (s *Service) GetWaitlist(ctx context.Context, req *models.GetWaitlistRequest) (*models.WaitlistResponse, error) {
	s.logger.Info("GetWaitlist: fetching entries for date=%s, service=%v",
		req.Date.Format(domain.DateFormat), req.ServiceType)

	var serviceType *domain.ServiceType
	if req.ServiceType != nil {
		st, err := models.ToDomainServiceType(*req.ServiceType)
		if err != nil {
			s.logger.Warn("GetWaitlist: invalid service type=%s", *req.ServiceType)
			return nil, fmt.Errorf("%w: invalid service type", ErrInvalidInput)
		}
		serviceType = &st
	}

	entries, err := s.waitlistRepo.GetByDate(ctx, req.Date, serviceType)
	if err != nil {
		s.logger.Error("GetWaitlist: repository error for date=%s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetWaitlist - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetWaitlist: successfully fetched %d entries for date=%s",
		len(entries), req.Date.Format(domain.DateFormat))
	return models.FromDomainEntryList(entries), nil
}

// Remove снимает запись с листа ожидания
func (s *Service) Remove(ctx context.Context, id int64) error {
	s.logger.Info("Remove: removing waitlist entry id=%d", id)

	if id <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	if err := s.waitlistRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, waitlistRepo.ErrEntryNotFound) {
			s.logger.Warn("Remove: waitlist entry id=%d not found", id)
			return ErrEntryNotFound
		}
		s.logger.Error("Remove: repository error for entry id=%d: %v", id, err)
		return fmt.Errorf("%w: Remove - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Remove: successfully removed waitlist entry id=%d", id)
	return nil
}

package blockedslots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DayCenterService/internal/domain"
	blockRepo "github.com/m04kA/SMC-DayCenterService/internal/infra/storage/blockedslot"
	"github.com/m04kA/SMC-DayCenterService/internal/service/blockedslots/models"
)

// Service сервис для управления блокировками слотов
// Блокировка запрещает новые бронирования в слот; уже существующие
// бронирования остаются действительными и сохраняют занятость
type Service struct {
	blockRepo BlockedSlotRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса блокировок
func NewService(
	blockRepo BlockedSlotRepository,
	logger Logger,
) *Service {
	return &Service{
		blockRepo: blockRepo,
		logger:    logger,
	}
}

// Block блокирует слот каталога на дату
// Время начала обязано быть членом каталога услуги на эту дату
func (s *Service) Block(ctx context.Context, req *models.BlockSlotRequest) (*models.BlockedSlotResponse, error) {
	s.logger.Info("Block: blocking slot date=%s, service=%s, start=%s by actor=%d",
		req.Date.Format(domain.DateFormat), req.ServiceType, req.StartTime, req.ActorID)

	// 1. Валидация входных данных
	if req.ActorID <= 0 {
		return nil, fmt.Errorf("%w: actorID must be positive", ErrInvalidInput)
	}

	if len(req.Reason) > domain.MaxBlockReasonLength {
		return nil, fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxBlockReasonLength)
	}

	block, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Block: invalid request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Проверка членства в каталоге слотов
	catalog := domain.GenerateSlots(block.ServiceType, block.Date)
	if len(catalog) == 0 {
		s.logger.Warn("Block: center is closed on date=%s", req.Date.Format(domain.DateFormat))
		return nil, ErrClosedDay
	}

	if _, ok := domain.FindSlot(catalog, block.StartTime); !ok {
		s.logger.Warn("Block: start=%s is not a catalog slot for service=%s on date=%s",
			req.StartTime, req.ServiceType, req.Date.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: %s", ErrInvalidSlot, req.StartTime)
	}

	// 3. Создаем блокировку
	created, err := s.blockRepo.Create(ctx, block)
	if err != nil {
		if errors.Is(err, blockRepo.ErrAlreadyBlocked) {
			s.logger.Warn("Block: slot date=%s, service=%s, start=%s already blocked",
				req.Date.Format(domain.DateFormat), req.ServiceType, req.StartTime)
			return nil, ErrAlreadyBlocked
		}
		s.logger.Error("Block: repository error: %v", err)
		return nil, fmt.Errorf("%w: Block - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Block: successfully created block id=%d", created.ID)
	return models.FromDomainBlockedSlot(created), nil
}

// Unblock снимает блокировку слота
func (s *Service) Unblock(ctx context.Context, id int64) error {
	s.logger.Info("Unblock: removing block id=%d", id)

	if id <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	if err := s.blockRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, blockRepo.ErrBlockNotFound) {
			s.logger.Warn("Unblock: block id=%d not found", id)
			return ErrBlockNotFound
		}
		s.logger.Error("Unblock: repository error for block id=%d: %v", id, err)
		return fmt.Errorf("%w: Unblock - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Unblock: successfully removed block id=%d", id)
	return nil
}

// GetBlockedSlots получает блокировки на календарный день
// Опционально фильтрует по услуге
func (s *Service) GetBlockedSlots(ctx context.Context, req *models.GetBlockedSlotsRequest) (*models.BlockedSlotListResponse, error) {
	s.logger.Info("GetBlockedSlots: fetching blocks for date=%s, service=%v",
		req.Date.Format(domain.DateFormat), req.ServiceType)

	var serviceType *domain.ServiceType
	if req.ServiceType != nil {
		st, err := models.ToDomainServiceType(*req.ServiceType)
		if err != nil {
			s.logger.Warn("GetBlockedSlots: invalid service type=%s", *req.ServiceType)
			return nil, fmt.Errorf("%w: invalid service type", ErrInvalidInput)
		}
		serviceType = &st
	}

	blocks, err := s.blockRepo.GetByDate(ctx, req.Date, serviceType)
	if err != nil {
		s.logger.Error("GetBlockedSlots: repository error for date=%s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetBlockedSlots - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetBlockedSlots: successfully fetched %d blocks for date=%s",
		len(blocks), req.Date.Format(domain.DateFormat))
	return models.FromDomainBlockedSlotList(blocks), nil
}

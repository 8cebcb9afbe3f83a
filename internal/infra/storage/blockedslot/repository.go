package blockedslot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-DayCenterService/internal/domain"
	"github.com/m04kA/SMC-DayCenterService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DayCenterService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-DayCenterService/pkg/types"
)

// Repository репозиторий для работы с блокировками слотов (BlockRegistry)
// Ядро аллокатора читает его только через GetBlockedStartTimes; CRUD
// операции используются административным сервисом
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает блокировку слота
// Повторная блокировка того же (дата, услуга, слот) возвращает ErrAlreadyBlocked
func (r *Repository) Create(ctx context.Context, block *domain.BlockedSlot) (*domain.BlockedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocked_slots").
		Columns(
			"block_date",
			"service_type",
			"start_time",
			"reason",
			"created_by",
		).
		Values(
			block.Date,
			block.ServiceType,
			block.StartTime,
			block.Reason,
			block.CreatedBy,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&block.ID,
		&createdAt,
	)

	if err != nil {
		// 23505 unique_violation - слот уже заблокирован
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrAlreadyBlocked
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	block.CreatedAt = createdAt.Time

	return block, nil
}

// Delete снимает блокировку слота
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlockNotFound
	}

	return nil
}

// GetByDate получает блокировки на календарный день
// Опционально фильтрует по услуге
func (r *Repository) GetByDate(ctx context.Context, date time.Time, serviceType *domain.ServiceType) ([]*domain.BlockedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"block_date",
		"service_type",
		"start_time",
		"reason",
		"created_by",
		"created_at",
	).
		From("blocked_slots").
		Where(squirrel.Eq{"block_date": date}).
		OrderBy("service_type ASC, start_time ASC")

	if serviceType != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"service_type": *serviceType})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blocks := make([]*domain.BlockedSlot, 0)
	for rows.Next() {
		var block domain.BlockedSlot
		var createdAt sql.NullTime

		if err := rows.Scan(
			&block.ID,
			&block.Date,
			&block.ServiceType,
			&block.StartTime,
			&block.Reason,
			&block.CreatedBy,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("%w: GetByDate - scan row: %v", ErrScanRow, err)
		}

		block.CreatedAt = createdAt.Time
		blocks = append(blocks, &block)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByDate - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}

// GetBlockedStartTimes получает множество заблокированных времен начала
// на день и услугу - используется аллокатором при переборе каталога,
// чтобы не делать запрос на каждый слот
func (r *Repository) GetBlockedStartTimes(ctx context.Context, date time.Time, serviceType domain.ServiceType) (map[types.TimeString]struct{}, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("start_time").
		From("blocked_slots").
		Where(squirrel.Eq{
			"block_date":   date,
			"service_type": serviceType,
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBlockedStartTimes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBlockedStartTimes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blocked := make(map[types.TimeString]struct{})
	for rows.Next() {
		var startTime types.TimeString
		if err := rows.Scan(&startTime); err != nil {
			return nil, fmt.Errorf("%w: GetBlockedStartTimes - scan row: %v", ErrScanRow, err)
		}
		blocked[startTime] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBlockedStartTimes - rows error: %v", ErrScanRow, err)
	}

	return blocked, nil
}

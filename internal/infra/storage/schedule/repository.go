package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m0rzhov/PTS-TimetableService/internal/domain"
	"github.com/m0rzhov/PTS-TimetableService/pkg/dbmetrics"
	"github.com/m0rzhov/PTS-TimetableService/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL для нарушения уникального ограничения
const uniqueViolation = "23505"

// Repository репозиторий для работы с расписанием дней
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает расписание на дату
// Дата уникальна: при повторном создании возвращается ErrScheduleExists
func (r *Repository) Create(ctx context.Context, day *domain.ScheduleDay) (*domain.ScheduleDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("schedule_days").
		Columns(
			"date",
			"is_holiday",
			"opening_time",
			"closing_time",
			"max_capacity",
		).
		Values(
			day.Date,
			day.IsHoliday,
			day.OpeningTime,
			day.ClosingTime,
			day.MaxCapacity,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&day.ID, &createdAt)

	if isUniqueViolation(err) {
		return nil, ErrScheduleExists
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	day.CreatedAt = createdAt.Time

	return day, nil
}

// GetByDate получает расписание на указанную дату
// Отсутствие записи означает, что расписание на дату не определено
func (r *Repository) GetByDate(ctx context.Context, date time.Time) (*domain.ScheduleDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"date",
		"is_holiday",
		"opening_time",
		"closing_time",
		"max_capacity",
		"created_at",
	).
		From("schedule_days").
		Where(squirrel.Eq{"date": date}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %w", ErrBuildQuery, err)
	}

	var day domain.ScheduleDay
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&day.ID,
		&day.Date,
		&day.IsHoliday,
		&day.OpeningTime,
		&day.ClosingTime,
		&day.MaxCapacity,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - scan schedule day: %w", ErrScanRow, err)
	}

	day.CreatedAt = createdAt.Time

	return &day, nil
}

// ExistsByDate проверяет, определено ли расписание на дату
func (r *Repository) ExistsByDate(ctx context.Context, date time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("schedule_days").
		Where(squirrel.Eq{"date": date}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsByDate - build select query: %w", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsByDate - scan: %w", ErrScanRow, err)
	}

	return true, nil
}

// isUniqueViolation проверяет, что ошибка вызвана нарушением unique constraint
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

package timeslot

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m0rzhov/PTS-TimetableService/internal/domain"
	"github.com/m0rzhov/PTS-TimetableService/pkg/dbmetrics"
	"github.com/m0rzhov/PTS-TimetableService/pkg/psqlbuilder"
	"github.com/m0rzhov/PTS-TimetableService/pkg/types"
)

// Repository репозиторий для работы со счётчиками занятости слотов
// Составной ключ строки: (schedule_date, hour)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByDate получает счётчики занятости на дату в порядке возрастания часа
// Часы, на которые никто не записывался, строк не имеют (занятость 0)
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"schedule_date",
		"hour",
		"booked_count",
	).
		From("time_slots").
		Where(squirrel.Eq{"schedule_date": date}).
		OrderBy("hour ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// EnsureRow создает нулевую строку занятости для слота, если её ещё нет
// Вызывается перед IncrementIfCapacity, чтобы условному UPDATE было что обновлять
func (r *Repository) EnsureRow(ctx context.Context, date time.Time, hour types.TimeString) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("time_slots").
		Columns("schedule_date", "hour", "booked_count").
		Values(date, hour, 0).
		Suffix("ON CONFLICT (schedule_date, hour) DO NOTHING").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: EnsureRow - build insert query: %w", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: EnsureRow - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

// IncrementIfCapacity атомарно увеличивает счётчик занятости слота на 1,
// только если текущее значение строго меньше maxCapacity
// Возвращает число обновлённых строк: 0 означает, что мест нет
//
// Условие booked_count < max_capacity вычисляется самой БД в одном UPDATE —
// это единственный механизм защиты от гонки за последнее место:
// два конкурентных запроса не могут оба пройти условие
func (r *Repository) IncrementIfCapacity(ctx context.Context, date time.Time, hour types.TimeString, maxCapacity int) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("time_slots").
		Set("booked_count", squirrel.Expr("booked_count + 1")).
		Where(squirrel.Eq{"schedule_date": date, "hour": hour}).
		Where(squirrel.Lt{"booked_count": maxCapacity}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: IncrementIfCapacity - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: IncrementIfCapacity - execute update: %w", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: IncrementIfCapacity - get rows affected: %w", ErrExecQuery, err)
	}

	return affected, nil
}

// Decrement атомарно уменьшает счётчик занятости слота на 1,
// только если текущее значение больше нуля (счётчик не уходит в минус)
func (r *Repository) Decrement(ctx context.Context, date time.Time, hour types.TimeString) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("time_slots").
		Set("booked_count", squirrel.Expr("booked_count - 1")).
		Where(squirrel.Eq{"schedule_date": date, "hour": hour}).
		Where(squirrel.Gt{"booked_count": 0}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: Decrement - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: Decrement - execute update: %w", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: Decrement - get rows affected: %w", ErrExecQuery, err)
	}

	return affected, nil
}

// scanSlots сканирует результаты запроса в слайс слотов
func (r *Repository) scanSlots(rows *sql.Rows) ([]*domain.TimeSlot, error) {
	slots := make([]*domain.TimeSlot, 0)

	for rows.Next() {
		var slot domain.TimeSlot

		err := rows.Scan(
			&slot.ScheduleDate,
			&slot.Hour,
			&slot.BookedCount,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %w", ErrScanRow, err)
		}

		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %w", ErrScanRow, err)
	}

	return slots, nil
}

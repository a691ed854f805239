package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m0rzhov/PTS-TimetableService/internal/domain"
	"github.com/m0rzhov/PTS-TimetableService/pkg/dbmetrics"
	"github.com/m0rzhov/PTS-TimetableService/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL для нарушения уникального ограничения
const uniqueViolation = "23505"

// Repository репозиторий для работы с записями клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись со статусом active
// Идентификатор генерируется здесь, если не задан вызывающей стороной
// Нарушение частичного уникального индекса (client_id, schedule_date)
// WHERE status='active' транслируется в ErrDuplicateBooking
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if appt.ID == uuid.Nil {
		appt.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"id",
			"client_id",
			"schedule_date",
			"start_time",
			"duration_hours",
			"status",
		).
		Values(
			appt.ID,
			appt.ClientID,
			appt.ScheduleDate,
			appt.StartTime,
			appt.DurationHours,
			appt.Status,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)

	if isUniqueViolation(err) {
		return nil, ErrDuplicateBooking
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time

	return appt, nil
}

// GetByIDAndClient получает запись по идентификатору и клиенту
// Чужой идентификатор и несуществующий идентификатор неразличимы:
// оба возвращают ErrAppointmentNotFound
func (r *Repository) GetByIDAndClient(ctx context.Context, id uuid.UUID, clientID int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"client_id",
		"schedule_date",
		"start_time",
		"duration_hours",
		"status",
		"created_at",
	).
		From("appointments").
		Where(squirrel.Eq{"id": id, "client_id": clientID})

	// Внутри транзакции блокируем строку: отмена меняет статус и счётчик слота
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDAndClient - build select query: %w", ErrBuildQuery, err)
	}

	return r.scanAppointment(executor.QueryRowContext(ctx, query, args...))
}

// FindActiveByClientAndDate ищет активную запись клиента на дату
// Внутри транзакции строка блокируется (FOR UPDATE), чтобы два конкурентных
// бронирования не прошли проверку "нет активной записи" одновременно
func (r *Repository) FindActiveByClientAndDate(ctx context.Context, clientID int64, date time.Time) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"client_id",
		"schedule_date",
		"start_time",
		"duration_hours",
		"status",
		"created_at",
	).
		From("appointments").
		Where(squirrel.Eq{
			"client_id":     clientID,
			"schedule_date": date,
			"status":        domain.StatusActive,
		})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveByClientAndDate - build select query: %w", ErrBuildQuery, err)
	}

	return r.scanAppointment(executor.QueryRowContext(ctx, query, args...))
}

// UpdateStatus обновляет статус записи
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// scanAppointment сканирует одну запись из строки результата
func (r *Repository) scanAppointment(row *sql.Row) (*domain.Appointment, error) {
	var appt domain.Appointment
	var createdAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.ClientID,
		&appt.ScheduleDate,
		&appt.StartTime,
		&appt.DurationHours,
		&appt.Status,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanAppointment - scan row: %w", ErrScanRow, err)
	}

	appt.CreatedAt = createdAt.Time

	return &appt, nil
}

// isUniqueViolation проверяет, что ошибка вызвана нарушением unique constraint
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

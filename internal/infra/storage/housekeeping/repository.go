package housekeeping

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
	"github.com/m04kA/HMS-FrontdeskService/pkg/dbmetrics"
	"github.com/m04kA/HMS-FrontdeskService/pkg/psqlbuilder"
)

// taskColumns колонки задач с JOIN на номер
var taskColumns = []string{
	"t.id",
	"t.room_id",
	"r.number",
	"t.task_type",
	"t.status",
	"t.assigned_to",
	"t.notes",
	"t.scheduled_for",
	"t.created_at",
	"t.updated_at",
}

// Repository репозиторий для работы с задачами уборки
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория задач уборки
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает задачу
func (r *Repository) Create(ctx context.Context, t *domain.HousekeepingTask) (*domain.HousekeepingTask, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("housekeeping_tasks").
		Columns("room_id", "task_type", "status", "assigned_to", "notes", "scheduled_for").
		Values(t.RoomID, t.TaskType, t.Status, t.AssignedTo, t.Notes, t.ScheduledFor).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&t.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return t, nil
}

// ListWithFilter получает страницу задач с фильтрацией и общим количеством
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.HousekeepingFilter) ([]*domain.HousekeepingTask, int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	applyFilter := func(b squirrel.SelectBuilder) squirrel.SelectBuilder {
		if filter.RoomID != nil {
			b = b.Where(squirrel.Eq{"t.room_id": *filter.RoomID})
		}
		if filter.Status != nil {
			b = b.Where(squirrel.Eq{"t.status": *filter.Status})
		}
		if filter.AssignedTo != nil {
			b = b.Where(squirrel.Eq{"t.assigned_to": *filter.AssignedTo})
		}
		return b
	}

	countQuery, countArgs, err := applyFilter(psqlbuilder.Select("COUNT(*)").From("housekeeping_tasks t")).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: ListWithFilter - build count query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := executor.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: ListWithFilter - scan count: %v", ErrScanRow, err)
	}

	selectBuilder := applyFilter(
		psqlbuilder.Select(taskColumns...).
			From("housekeeping_tasks t").
			Join("rooms r ON r.id = t.room_id"),
	).OrderBy("t.scheduled_for ASC, t.id ASC")

	if filter.Limit > 0 {
		selectBuilder = selectBuilder.
			Limit(uint64(filter.Limit)).
			Offset(uint64((filter.Page - 1) * filter.Limit))
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tasks := make([]*domain.HousekeepingTask, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: ListWithFilter - scan row: %v", ErrScanRow, err)
		}
		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: ListWithFilter - rows error: %v", ErrScanRow, err)
	}

	return tasks, total, nil
}

// UpdateStatus обновляет статус задачи
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.HousekeepingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("housekeeping_tasks").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTaskNotFound
	}

	return nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTask(row rowScanner) (*domain.HousekeepingTask, error) {
	var (
		t                    domain.HousekeepingTask
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&t.ID,
		&t.RoomID,
		&t.RoomNumber,
		&t.TaskType,
		&t.Status,
		&t.AssignedTo,
		&t.Notes,
		&t.ScheduledFor,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return &t, nil
}

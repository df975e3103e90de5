package room

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
	"github.com/m04kA/HMS-FrontdeskService/pkg/dbmetrics"
	"github.com/m04kA/HMS-FrontdeskService/pkg/psqlbuilder"
)

// roomColumns колонки номеров с JOIN на категорию
var roomColumns = []string{
	"r.id",
	"r.number",
	"r.room_type_id",
	"r.branch_id",
	"r.floor",
	"r.status",
	"r.daily_rate",
	"r.capacity",
	"rt.name",
}

// Repository репозиторий для работы с номерным фондом
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория номеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает номер по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(roomColumns...).
		From("rooms r").
		Join("room_types rt ON rt.id = r.room_type_id").
		Where(squirrel.Eq{"r.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	room, err := scanRoom(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan room: %v", ErrScanRow, err)
	}

	return room, nil
}

// ListWithFilter получает страницу номеров с фильтрацией и общим количеством
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.RoomsFilter) ([]*domain.Room, int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	applyFilter := func(b squirrel.SelectBuilder) squirrel.SelectBuilder {
		if filter.BranchID != nil {
			b = b.Where(squirrel.Eq{"r.branch_id": *filter.BranchID})
		}
		if filter.RoomTypeID != nil {
			b = b.Where(squirrel.Eq{"r.room_type_id": *filter.RoomTypeID})
		}
		if filter.Status != nil {
			b = b.Where(squirrel.Eq{"r.status": *filter.Status})
		}
		return b
	}

	countQuery, countArgs, err := applyFilter(psqlbuilder.Select("COUNT(*)").From("rooms r")).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: ListWithFilter - build count query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := executor.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: ListWithFilter - scan count: %v", ErrScanRow, err)
	}

	selectBuilder := applyFilter(
		psqlbuilder.Select(roomColumns...).
			From("rooms r").
			Join("room_types rt ON rt.id = r.room_type_id"),
	).OrderBy("r.number ASC")

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

	rooms, err := scanRooms(rows)
	if err != nil {
		return nil, 0, err
	}

	return rooms, total, nil
}

// ListAvailableByType получает свободные номера указанной категории
// Используется при конвертации индивидуальной заявки и в мастере заселения
func (r *Repository) ListAvailableByType(ctx context.Context, roomTypeID int64, branchID *int64) ([]*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(roomColumns...).
		From("rooms r").
		Join("room_types rt ON rt.id = r.room_type_id").
		Where(squirrel.Eq{"r.room_type_id": roomTypeID}).
		Where(squirrel.Eq{"r.status": domain.RoomAvailable}).
		OrderBy("r.number ASC")

	if branchID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"r.branch_id": *branchID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailableByType - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailableByType - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanRooms(rows)
}

// UpdateStatus обновляет статус номера
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.RoomStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rooms").
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
		return ErrRoomNotFound
	}

	return nil
}

// GetType получает категорию номера по ID
func (r *Repository) GetType(ctx context.Context, id int64) (*domain.RoomType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "daily_rate", "capacity").
		From("room_types").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetType - build select query: %v", ErrBuildQuery, err)
	}

	var t domain.RoomType
	err = executor.QueryRowContext(ctx, query, args...).Scan(&t.ID, &t.Name, &t.DailyRate, &t.Capacity)
	if err == sql.ErrNoRows {
		return nil, ErrRoomTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetType - scan room type: %v", ErrScanRow, err)
	}

	return &t, nil
}

// ListTypes получает все категории номеров
func (r *Repository) ListTypes(ctx context.Context) ([]*domain.RoomType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "daily_rate", "capacity").
		From("room_types").
		OrderBy("daily_rate ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListTypes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListTypes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	types := make([]*domain.RoomType, 0)
	for rows.Next() {
		var t domain.RoomType
		if err := rows.Scan(&t.ID, &t.Name, &t.DailyRate, &t.Capacity); err != nil {
			return nil, fmt.Errorf("%w: ListTypes - scan row: %v", ErrScanRow, err)
		}
		types = append(types, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListTypes - rows error: %v", ErrScanRow, err)
	}

	return types, nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRoom(row rowScanner) (*domain.Room, error) {
	var r domain.Room
	err := row.Scan(
		&r.ID,
		&r.Number,
		&r.RoomTypeID,
		&r.BranchID,
		&r.Floor,
		&r.Status,
		&r.DailyRate,
		&r.Capacity,
		&r.RoomTypeName,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func scanRooms(rows *sql.Rows) ([]*domain.Room, error) {
	rooms := make([]*domain.Room, 0)

	for rows.Next() {
		r, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRooms - scan row: %v", ErrScanRow, err)
		}
		rooms = append(rooms, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRooms - rows error: %v", ErrScanRow, err)
	}

	return rooms, nil
}

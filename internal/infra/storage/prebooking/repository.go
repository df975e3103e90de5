package prebooking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
	"github.com/m04kA/HMS-FrontdeskService/pkg/dbmetrics"
	"github.com/m04kA/HMS-FrontdeskService/pkg/psqlbuilder"
)

// preBookingColumns колонки заявок с JOIN на гостей и категорию номера
var preBookingColumns = []string{
	"p.id",
	"p.reference_code",
	"p.customer_id",
	"p.guest_id",
	"p.branch_id",
	"p.room_type_id",
	"p.number_of_rooms",
	"p.check_in_date",
	"p.check_out_date",
	"p.adults",
	"p.children",
	"p.status",
	"p.notes",
	"g.first_name || ' ' || g.last_name",
	"c.first_name || ' ' || c.last_name",
	"rt.name",
	"p.created_at",
	"p.updated_at",
}

// Repository репозиторий для работы с заявками на бронирование
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает заявку
func (r *Repository) Create(ctx context.Context, p *domain.PreBooking) (*domain.PreBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("pre_bookings").
		Columns(
			"reference_code",
			"customer_id",
			"guest_id",
			"branch_id",
			"room_type_id",
			"number_of_rooms",
			"check_in_date",
			"check_out_date",
			"adults",
			"children",
			"status",
			"notes",
		).
		Values(
			p.ReferenceCode,
			p.CustomerID,
			p.GuestID,
			p.BranchID,
			p.RoomTypeID,
			p.NumberOfRooms,
			p.CheckInDate,
			p.CheckOutDate,
			p.Adults,
			p.Children,
			p.Status,
			p.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return p, nil
}

// GetByID получает заявку по ID
// В транзакции блокирует строку через FOR UPDATE OF p, чтобы конвертация
// одной заявки не выполнялась двумя операторами одновременно
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.PreBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(preBookingColumns...).
		From("pre_bookings p").
		Join("guests g ON g.id = p.guest_id").
		Join("guests c ON c.id = p.customer_id").
		Join("room_types rt ON rt.id = p.room_type_id").
		Where(squirrel.Eq{"p.id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF p")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	p, err := scanPreBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPreBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan pre-booking: %v", ErrScanRow, err)
	}

	return p, nil
}

// ListWithFilter получает страницу заявок с фильтрацией и общим количеством
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.PreBookingsFilter) ([]*domain.PreBooking, int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	applyFilter := func(b squirrel.SelectBuilder) squirrel.SelectBuilder {
		if filter.BranchID != nil {
			b = b.Where(squirrel.Eq{"p.branch_id": *filter.BranchID})
		}
		if filter.RoomTypeID != nil {
			b = b.Where(squirrel.Eq{"p.room_type_id": *filter.RoomTypeID})
		}
		if filter.Status != nil {
			b = b.Where(squirrel.Eq{"p.status": *filter.Status})
		}
		if filter.StartDate != nil {
			b = b.Where(squirrel.GtOrEq{"p.check_in_date": *filter.StartDate})
		}
		if filter.EndDate != nil {
			b = b.Where(squirrel.LtOrEq{"p.check_in_date": *filter.EndDate})
		}
		return b
	}

	countQuery, countArgs, err := applyFilter(psqlbuilder.Select("COUNT(*)").From("pre_bookings p")).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: ListWithFilter - build count query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := executor.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: ListWithFilter - scan count: %v", ErrScanRow, err)
	}

	selectBuilder := applyFilter(
		psqlbuilder.Select(preBookingColumns...).
			From("pre_bookings p").
			Join("guests g ON g.id = p.guest_id").
			Join("guests c ON c.id = p.customer_id").
			Join("room_types rt ON rt.id = p.room_type_id"),
	).OrderBy("p.check_in_date ASC, p.id ASC")

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

	preBookings := make([]*domain.PreBooking, 0)
	for rows.Next() {
		p, err := scanPreBooking(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: ListWithFilter - scan row: %v", ErrScanRow, err)
		}
		preBookings = append(preBookings, p)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: ListWithFilter - rows error: %v", ErrScanRow, err)
	}

	return preBookings, total, nil
}

// MarkConverted переводит заявку в статус converted
// Условие status = pending в WHERE гарантирует конвертацию не более одного раза
func (r *Repository) MarkConverted(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("pre_bookings").
		Set("status", domain.PreBookingConverted).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": domain.PreBookingPending}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkConverted - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkConverted - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkConverted - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAlreadyConverted
	}

	return nil
}

// Cancel переводит заявку в статус cancelled
func (r *Repository) Cancel(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("pre_bookings").
		Set("status", domain.PreBookingCancelled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": domain.PreBookingPending}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAlreadyConverted
	}

	return nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPreBooking(row rowScanner) (*domain.PreBooking, error) {
	var (
		p                    domain.PreBooking
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&p.ID,
		&p.ReferenceCode,
		&p.CustomerID,
		&p.GuestID,
		&p.BranchID,
		&p.RoomTypeID,
		&p.NumberOfRooms,
		&p.CheckInDate,
		&p.CheckOutDate,
		&p.Adults,
		&p.Children,
		&p.Status,
		&p.Notes,
		&p.GuestName,
		&p.CustomerName,
		&p.RoomTypeName,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}

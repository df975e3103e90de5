package serviceusage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
	"github.com/m04kA/HMS-FrontdeskService/pkg/dbmetrics"
	"github.com/m04kA/HMS-FrontdeskService/pkg/psqlbuilder"
)

var usageColumns = []string{
	"id",
	"booking_id",
	"service_name",
	"department",
	"quantity",
	"amount",
	"used_at",
	"created_at",
}

// Repository репозиторий для работы с оказанными услугами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись об оказанной услуге
func (r *Repository) Create(ctx context.Context, u *domain.ServiceUsage) (*domain.ServiceUsage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("service_usage").
		Columns("booking_id", "service_name", "department", "quantity", "amount", "used_at").
		Values(u.BookingID, u.ServiceName, u.Department, u.Quantity, u.Amount, u.UsedAt).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&u.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	u.CreatedAt = createdAt.Time

	return u, nil
}

// ListByBooking получает все услуги, начисленные на бронирование
func (r *Repository) ListByBooking(ctx context.Context, bookingID int64) ([]*domain.ServiceUsage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(usageColumns...).
		From("service_usage").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("used_at ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanUsages(rows)
}

// ListWithFilter получает страницу услуг с фильтрацией и общим количеством
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.ServiceUsageFilter) ([]*domain.ServiceUsage, int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	applyFilter := func(b squirrel.SelectBuilder) squirrel.SelectBuilder {
		if filter.BookingID != nil {
			b = b.Where(squirrel.Eq{"booking_id": *filter.BookingID})
		}
		if filter.Department != nil {
			b = b.Where(squirrel.Eq{"department": *filter.Department})
		}
		return b
	}

	countQuery, countArgs, err := applyFilter(psqlbuilder.Select("COUNT(*)").From("service_usage")).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: ListWithFilter - build count query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := executor.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: ListWithFilter - scan count: %v", ErrScanRow, err)
	}

	selectBuilder := applyFilter(
		psqlbuilder.Select(usageColumns...).From("service_usage"),
	).OrderBy("used_at DESC, id DESC")

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

	usages, err := scanUsages(rows)
	if err != nil {
		return nil, 0, err
	}

	return usages, total, nil
}

// SumByBooking возвращает сумму услуг, начисленных на бронирование
func (r *Repository) SumByBooking(ctx context.Context, bookingID int64) (decimal.Decimal, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(amount), 0)").
		From("service_usage").
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()

	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: SumByBooking - build select query: %v", ErrBuildQuery, err)
	}

	var sum decimal.Decimal
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("%w: SumByBooking - scan sum: %v", ErrScanRow, err)
	}

	return sum, nil
}

func scanUsages(rows *sql.Rows) ([]*domain.ServiceUsage, error) {
	usages := make([]*domain.ServiceUsage, 0)

	for rows.Next() {
		var (
			u         domain.ServiceUsage
			createdAt sql.NullTime
		)
		err := rows.Scan(
			&u.ID,
			&u.BookingID,
			&u.ServiceName,
			&u.Department,
			&u.Quantity,
			&u.Amount,
			&u.UsedAt,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanUsages - scan row: %v", ErrScanRow, err)
		}
		u.CreatedAt = createdAt.Time
		usages = append(usages, &u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanUsages - rows error: %v", ErrScanRow, err)
	}

	return usages, nil
}

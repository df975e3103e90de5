package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
	"github.com/m04kA/HMS-FrontdeskService/pkg/dbmetrics"
	"github.com/m04kA/HMS-FrontdeskService/pkg/psqlbuilder"
)

// bookingColumns полный набор колонок таблицы bookings
var bookingColumns = []string{
	"id",
	"reference_code",
	"customer_id",
	"guest_id",
	"branch_id",
	"room_id",
	"room_type_id",
	"room_quantity",
	"is_group_booking",
	"check_in_date",
	"check_out_date",
	"nights",
	"adults",
	"children",
	"status",
	"total_amount",
	"advance_payment",
	"payments_total",
	"adjustments_total",
	"balance_due",
	"special_requests",
	"alerts",
	"loyalty_id",
	"group_block_id",
	"guest_name",
	"customer_name",
	"room_number",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"reference_code",
			"customer_id",
			"guest_id",
			"branch_id",
			"room_id",
			"room_type_id",
			"room_quantity",
			"is_group_booking",
			"check_in_date",
			"check_out_date",
			"nights",
			"adults",
			"children",
			"status",
			"total_amount",
			"advance_payment",
			"payments_total",
			"adjustments_total",
			"special_requests",
			"alerts",
			"loyalty_id",
			"group_block_id",
			"guest_name",
			"customer_name",
			"room_number",
		).
		Values(
			b.ReferenceCode,
			b.CustomerID,
			b.GuestID,
			b.BranchID,
			b.RoomID,
			b.RoomTypeID,
			b.RoomQuantity,
			b.IsGroupBooking,
			b.CheckInDate,
			b.CheckOutDate,
			b.Nights,
			b.Adults,
			b.Children,
			b.Status,
			b.TotalAmount,
			b.AdvancePayment,
			b.PaymentsTotal,
			b.AdjustmentsTotal,
			b.Meta.SpecialRequests,
			b.Meta.Alerts,
			b.Meta.LoyaltyID,
			b.Meta.GroupBlockID,
			b.GuestName,
			b.CustomerName,
			b.RoomNumber,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	// Внутри транзакции блокируем строку: заселение и выезд меняют
	// бронирование в несколько шагов
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// ListWithFilter получает страницу бронирований с фильтрацией
// Возвращает бронирования и общее количество строк под фильтром
// Фильтры: филиал, тип номера, статус, период дат заезда
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	applyFilter := func(b squirrel.SelectBuilder) squirrel.SelectBuilder {
		if filter.BranchID != nil {
			b = b.Where(squirrel.Eq{"branch_id": *filter.BranchID})
		}
		if filter.RoomTypeID != nil {
			b = b.Where(squirrel.Eq{"room_type_id": *filter.RoomTypeID})
		}
		if filter.Status != nil {
			b = b.Where(squirrel.Eq{"status": *filter.Status})
		}
		if filter.StartDate != nil {
			b = b.Where(squirrel.GtOrEq{"check_in_date": *filter.StartDate})
		}
		if filter.EndDate != nil {
			b = b.Where(squirrel.LtOrEq{"check_in_date": *filter.EndDate})
		}
		return b
	}

	countQuery, countArgs, err := applyFilter(psqlbuilder.Select("COUNT(*)").From("bookings")).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: ListWithFilter - build count query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := executor.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: ListWithFilter - scan count: %v", ErrScanRow, err)
	}

	selectBuilder := applyFilter(psqlbuilder.Select(bookingColumns...).From("bookings")).
		OrderBy("check_in_date DESC, id DESC")

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

	bookings, err := scanBookings(rows)
	if err != nil {
		return nil, 0, err
	}

	return bookings, total, nil
}

// ListOverlapping получает активные бронирования, пересекающие период дат
// Используется для матрицы доступности номеров
func (r *Repository) ListOverlapping(ctx context.Context, start, end time.Time, branchID *int64) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Lt{"check_in_date": end}).
		Where(squirrel.Gt{"check_out_date": start}).
		Where(squirrel.Eq{"status": statusStrings(domain.ActiveBookingStatuses)}).
		OrderBy("check_in_date ASC")

	if branchID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"branch_id": *branchID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetRoomConflicts получает активные бронирования номера, пересекающие период
// excludeBookingID исключает собственное бронирование из проверки
func (r *Repository) GetRoomConflicts(ctx context.Context, roomID int64, start, end time.Time, excludeBookingID *int64) ([]domain.RoomConflict, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"room_id",
		"id",
		"reference_code",
		"guest_name",
		"check_in_date",
		"check_out_date",
		"status",
	).
		From("bookings").
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.Lt{"check_in_date": end}).
		Where(squirrel.Gt{"check_out_date": start}).
		Where(squirrel.Eq{"status": statusStrings(domain.ActiveBookingStatuses)}).
		OrderBy("check_in_date ASC")

	if excludeBookingID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *excludeBookingID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetRoomConflicts - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRoomConflicts - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	conflicts := make([]domain.RoomConflict, 0)
	for rows.Next() {
		var c domain.RoomConflict
		if err := rows.Scan(
			&c.RoomID,
			&c.BookingID,
			&c.ReferenceCode,
			&c.GuestName,
			&c.CheckInDate,
			&c.CheckOutDate,
			&c.Status,
		); err != nil {
			return nil, fmt.Errorf("%w: GetRoomConflicts - scan row: %v", ErrScanRow, err)
		}
		conflicts = append(conflicts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetRoomConflicts - rows error: %v", ErrScanRow, err)
	}

	return conflicts, nil
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "UpdateStatus", query, args)
}

// Cancel отменяет бронирование с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "Cancel", query, args)
}

// AssignRoom назначает номер бронированию (с денормализацией номера комнаты)
func (r *Repository) AssignRoom(ctx context.Context, id int64, roomID int64, roomNumber string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("room_id", roomID).
		Set("room_number", roomNumber).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AssignRoom - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "AssignRoom", query, args)
}

// ApplyCheckout фиксирует выезд: доначисления прибавляются к total_amount,
// финальный платеж - к payments_total, статус переводится в checked_out
// Вызывается только внутри транзакции usecase выезда
func (r *Repository) ApplyCheckout(ctx context.Context, id int64, chargesTotal, finalPayment decimal.Decimal) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("total_amount", squirrel.Expr("total_amount + ?", chargesTotal)).
		Set("payments_total", squirrel.Expr("payments_total + ?", finalPayment)).
		Set("status", domain.StatusCheckedOut).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ApplyCheckout - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "ApplyCheckout", query, args)
}

// execExpectingRow выполняет запрос и требует ровно одну затронутую строку
func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, op string, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку в бронирование
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b                    domain.Booking
		balanceDue           decimal.NullDecimal
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&b.ID,
		&b.ReferenceCode,
		&b.CustomerID,
		&b.GuestID,
		&b.BranchID,
		&b.RoomID,
		&b.RoomTypeID,
		&b.RoomQuantity,
		&b.IsGroupBooking,
		&b.CheckInDate,
		&b.CheckOutDate,
		&b.Nights,
		&b.Adults,
		&b.Children,
		&b.Status,
		&b.TotalAmount,
		&b.AdvancePayment,
		&b.PaymentsTotal,
		&b.AdjustmentsTotal,
		&balanceDue,
		&b.Meta.SpecialRequests,
		&b.Meta.Alerts,
		&b.Meta.LoyaltyID,
		&b.Meta.GroupBlockID,
		&b.GuestName,
		&b.CustomerName,
		&b.RoomNumber,
		&b.CancellationReason,
		&b.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if balanceDue.Valid {
		b.BalanceDue = &balanceDue.Decimal
	}
	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// statusStrings конвертирует статусы в строки для squirrel.Eq
func statusStrings(statuses []domain.BookingStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

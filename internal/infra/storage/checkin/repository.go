package checkin

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
	"github.com/m04kA/HMS-FrontdeskService/pkg/dbmetrics"
	"github.com/m04kA/HMS-FrontdeskService/pkg/psqlbuilder"
)

var sessionColumns = []string{
	"id",
	"booking_id",
	"step",
	"id_type",
	"id_number",
	"id_verified",
	"deposit_confirmed",
	"assigned_room_id",
	"terms_accepted",
	"signature_ref",
	"privacy_accepted",
	"notes",
	"completed_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с сессиями и записями заселения
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заселения
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateSession создает сессию мастера заселения для бронирования
// Уникальный индекс по booking_id не дает открыть две сессии на одно бронирование
func (r *Repository) CreateSession(ctx context.Context, s *domain.CheckInSession) (*domain.CheckInSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("check_in_sessions").
		Columns("booking_id", "step").
		Values(s.BookingID, int(s.Step)).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateSession - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: CreateSession - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// GetSessionByBookingID получает сессию заселения по ID бронирования
// В транзакции блокирует строку через FOR UPDATE
func (r *Repository) GetSessionByBookingID(ctx context.Context, bookingID int64) (*domain.CheckInSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(sessionColumns...).
		From("check_in_sessions").
		Where(squirrel.Eq{"booking_id": bookingID})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetSessionByBookingID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanSession(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSessionByBookingID - scan session: %v", ErrScanRow, err)
	}

	return s, nil
}

// UpdateSession сохраняет шаг и данные шагов сессии
// Завершенные сессии не изменяются
func (r *Repository) UpdateSession(ctx context.Context, s *domain.CheckInSession) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("check_in_sessions").
		Set("step", int(s.Step)).
		Set("id_type", s.IDType).
		Set("id_number", s.IDNumber).
		Set("id_verified", s.IDVerified).
		Set("deposit_confirmed", s.DepositConfirmed).
		Set("assigned_room_id", s.AssignedRoomID).
		Set("terms_accepted", s.TermsAccepted).
		Set("signature_ref", s.SignatureRef).
		Set("privacy_accepted", s.PrivacyAccepted).
		Set("notes", s.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": s.ID}).
		Where(squirrel.Eq{"completed_at": nil}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateSession - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateSession - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateSession - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSessionCompleted
	}

	return nil
}

// CompleteSession помечает сессию завершенной
func (r *Repository) CompleteSession(ctx context.Context, id int64, completedAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("check_in_sessions").
		Set("completed_at", completedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"completed_at": nil}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: CompleteSession - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: CompleteSession - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: CompleteSession - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSessionCompleted
	}

	return nil
}

// CreateRecord создает итоговую запись о заселении
func (r *Repository) CreateRecord(ctx context.Context, rec *domain.CheckInRecord) (*domain.CheckInRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("check_in_records").
		Columns(
			"booking_id",
			"id_type",
			"id_number",
			"signature_ref",
			"room_assignment_notes",
			"checked_in_at",
		).
		Values(
			rec.BookingID,
			rec.IDType,
			rec.IDNumber,
			rec.SignatureRef,
			rec.RoomAssignmentNotes,
			rec.CheckedInAt,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateRecord - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&rec.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: CreateRecord - execute insert: %v", ErrExecQuery, err)
	}

	rec.CreatedAt = createdAt.Time

	return rec, nil
}

// GetRecordByBookingID получает запись о заселении по ID бронирования
func (r *Repository) GetRecordByBookingID(ctx context.Context, bookingID int64) (*domain.CheckInRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"booking_id",
		"id_type",
		"id_number",
		"signature_ref",
		"room_assignment_notes",
		"checked_in_at",
		"created_at",
	).
		From("check_in_records").
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetRecordByBookingID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		rec       domain.CheckInRecord
		createdAt sql.NullTime
	)
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rec.ID,
		&rec.BookingID,
		&rec.IDType,
		&rec.IDNumber,
		&rec.SignatureRef,
		&rec.RoomAssignmentNotes,
		&rec.CheckedInAt,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetRecordByBookingID - scan record: %v", ErrScanRow, err)
	}

	rec.CreatedAt = createdAt.Time

	return &rec, nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSession(row rowScanner) (*domain.CheckInSession, error) {
	var (
		s                    domain.CheckInSession
		step                 int
		completedAt          sql.NullTime
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&s.ID,
		&s.BookingID,
		&step,
		&s.IDType,
		&s.IDNumber,
		&s.IDVerified,
		&s.DepositConfirmed,
		&s.AssignedRoomID,
		&s.TermsAccepted,
		&s.SignatureRef,
		&s.PrivacyAccepted,
		&s.Notes,
		&completedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.Step = domain.CheckInStep(step)
	if completedAt.Valid {
		s.CompletedAt = &completedAt.Time
	}
	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

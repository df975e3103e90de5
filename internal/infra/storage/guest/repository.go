package guest

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
	"github.com/m04kA/HMS-FrontdeskService/pkg/dbmetrics"
	"github.com/m04kA/HMS-FrontdeskService/pkg/psqlbuilder"
)

var guestColumns = []string{
	"id",
	"first_name",
	"last_name",
	"email",
	"phone",
	"nationality",
	"document_type",
	"document_number",
	"address",
	"notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с гостями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория гостей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает гостя
func (r *Repository) Create(ctx context.Context, g *domain.Guest) (*domain.Guest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("guests").
		Columns(
			"first_name",
			"last_name",
			"email",
			"phone",
			"nationality",
			"document_type",
			"document_number",
			"address",
			"notes",
		).
		Values(
			g.FirstName,
			g.LastName,
			g.Email,
			g.Phone,
			g.Nationality,
			g.DocumentType,
			g.DocumentNumber,
			g.Address,
			g.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&g.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	g.CreatedAt = createdAt.Time
	g.UpdatedAt = updatedAt.Time

	return g, nil
}

// GetByID получает гостя по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Guest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(guestColumns...).
		From("guests").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	g, err := scanGuest(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrGuestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan guest: %v", ErrScanRow, err)
	}

	return g, nil
}

// List получает страницу гостей с общим количеством
func (r *Repository) List(ctx context.Context, filter domain.GuestsFilter) ([]*domain.Guest, int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	countQuery, countArgs, err := psqlbuilder.Select("COUNT(*)").From("guests").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - build count query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := executor.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: List - scan count: %v", ErrScanRow, err)
	}

	selectBuilder := psqlbuilder.Select(guestColumns...).
		From("guests").
		OrderBy("last_name ASC, first_name ASC")

	if filter.Limit > 0 {
		selectBuilder = selectBuilder.
			Limit(uint64(filter.Limit)).
			Offset(uint64((filter.Page - 1) * filter.Limit))
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	guests := make([]*domain.Guest, 0)
	for rows.Next() {
		g, err := scanGuest(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		guests = append(guests, g)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return guests, total, nil
}

// Update обновляет данные гостя
func (r *Repository) Update(ctx context.Context, g *domain.Guest) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("guests").
		Set("first_name", g.FirstName).
		Set("last_name", g.LastName).
		Set("email", g.Email).
		Set("phone", g.Phone).
		Set("nationality", g.Nationality).
		Set("document_type", g.DocumentType).
		Set("document_number", g.DocumentNumber).
		Set("address", g.Address).
		Set("notes", g.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": g.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrGuestNotFound
	}

	return nil
}

// Delete удаляет гостя (физическое удаление)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("guests").
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
		return ErrGuestNotFound
	}

	return nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanGuest(row rowScanner) (*domain.Guest, error) {
	var (
		g                    domain.Guest
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&g.ID,
		&g.FirstName,
		&g.LastName,
		&g.Email,
		&g.Phone,
		&g.Nationality,
		&g.DocumentType,
		&g.DocumentNumber,
		&g.Address,
		&g.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	g.CreatedAt = createdAt.Time
	g.UpdatedAt = updatedAt.Time

	return &g, nil
}

package checkin

import (
	"context"
	"database/sql"
)

// DBExecutor интерфейс для работы с БД (поддерживает *sql.DB, *sql.Tx и обёртку метрик)
type DBExecutor interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

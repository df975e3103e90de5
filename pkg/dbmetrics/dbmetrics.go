package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/m04kA/HMS-FrontdeskService/pkg/metrics"
)

// Executor общий интерфейс для *sql.DB, *sql.Tx и обёрток с метриками
type Executor interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

type txContextKey struct{}

// WithTx кладет активную транзакцию в контекст
// Репозитории подхватывают её через GetExecutor
func WithTx(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

// TxFromContext извлекает транзакцию из контекста (nil, если её нет)
func TxFromContext(ctx context.Context) *sql.Tx {
	tx, _ := ctx.Value(txContextKey{}).(*sql.Tx)
	return tx
}

// IsInTransaction сообщает, выполняется ли запрос внутри транзакции
func IsInTransaction(ctx context.Context) bool {
	return TxFromContext(ctx) != nil
}

// GetExecutor возвращает транзакцию из контекста, если она есть,
// иначе переданный по умолчанию executor
func GetExecutor(ctx context.Context, def Executor) Executor {
	if tx := TxFromContext(ctx); tx != nil {
		return tx
	}
	return def
}

// DB обёртка над *sql.DB, которая пишет метрики длительности запросов
// и периодически публикует состояние connection pool
type DB struct {
	db        *sql.DB
	collector *metrics.Metrics
}

const defaultPoolPollInterval = 15 * time.Second

// WrapWithDefault оборачивает db и запускает фоновый сбор статистики пула
// Сбор останавливается закрытием stopCh
func WrapWithDefault(db *sql.DB, collector *metrics.Metrics, dbName string, stopCh <-chan struct{}) *DB {
	wrapped := &DB{db: db, collector: collector}

	go func() {
		ticker := time.NewTicker(defaultPoolPollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				stats := db.Stats()
				collector.SetDBPoolStats(dbName, stats.OpenConnections, stats.Idle, stats.InUse)
			}
		}
	}()

	return wrapped
}

// QueryRowContext проксирует запрос с замером длительности
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.collector.ObserveDBQuery("query_row", time.Since(start))
	return row
}

// QueryContext проксирует запрос с замером длительности
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.collector.ObserveDBQuery("query", time.Since(start))
	return rows, err
}

// ExecContext проксирует запрос с замером длительности
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.collector.ObserveDBQuery("exec", time.Since(start))
	return res, err
}

// BeginTx открывает транзакцию на нижележащем *sql.DB
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
	return d.db.BeginTx(ctx, opts)
}

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
)

// Options параметры подключения к хранилищу
type Options struct {
	Dialect         psqlbuilder.Dialect
	DSN             string // postgres
	SQLitePath      string // sqlite
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Open открывает пул соединений выбранного драйвера и проверяет соединение
func Open(ctx context.Context, opts Options) (*sql.DB, error) {
	var (
		db  *sql.DB
		err error
	)

	switch opts.Dialect {
	case psqlbuilder.Postgres:
		db, err = sql.Open("postgres", opts.DSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		db.SetMaxOpenConns(opts.MaxOpenConns)
		db.SetMaxIdleConns(opts.MaxIdleConns)
		db.SetConnMaxLifetime(opts.ConnMaxLifetime)
	case psqlbuilder.SQLite:
		dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", opts.SQLitePath)
		db, err = sql.Open("sqlite", dsn)
		if err != nil {
			return nil, fmt.Errorf("open sqlite %s: %w", opts.SQLitePath, err)
		}
		// sqlite допускает одного писателя
		db.SetMaxOpenConns(1)
	default:
		return nil, fmt.Errorf("unsupported storage dialect %q", opts.Dialect)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", opts.Dialect, err)
	}
	return db, nil
}

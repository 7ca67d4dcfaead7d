package migration

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
)

//go:embed sql
var files embed.FS

var (
	// ErrReadMigrations возвращается, когда не удалось прочитать встроенные миграции
	ErrReadMigrations = errors.New("migration: failed to read migrations")

	// ErrApply возвращается при ошибке применения миграции
	ErrApply = errors.New("migration: failed to apply migration")
)

// Migration одна версия схемы
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Runner применяет встроенные миграции для выбранного диалекта
type Runner struct {
	db        dbmetrics.DBExecutor
	txManager TransactionManager
	dialect   psqlbuilder.Dialect
	logger    Logger
}

// NewRunner создает раннер миграций
func NewRunner(db dbmetrics.DBExecutor, txManager TransactionManager, dialect psqlbuilder.Dialect, logger Logger) *Runner {
	return &Runner{db: db, txManager: txManager, dialect: dialect, logger: logger}
}

// Migrations список миграций диалекта, отсортированный по версии
func (r *Runner) Migrations() ([]Migration, error) {
	dir := path.Join("sql", string(r.dialect))
	entries, err := fs.ReadDir(files, dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadMigrations, err)
	}

	migrations := make([]Migration, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		base := strings.TrimSuffix(e.Name(), ".sql")
		num, name, ok := strings.Cut(base, "_")
		if !ok {
			return nil, fmt.Errorf("%w: bad file name %s", ErrReadMigrations, e.Name())
		}
		version, err := strconv.Atoi(num)
		if err != nil {
			return nil, fmt.Errorf("%w: bad version in %s", ErrReadMigrations, e.Name())
		}
		body, err := fs.ReadFile(files, path.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadMigrations, err)
		}
		migrations = append(migrations, Migration{Version: version, Name: name, SQL: string(body)})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})
	return migrations, nil
}

// CurrentVersion последняя примененная версия, 0 для пустой базы
func (r *Runner) CurrentVersion(ctx context.Context) (int, error) {
	if err := r.ensureVersionTable(ctx); err != nil {
		return 0, err
	}

	query, args, err := psqlbuilder.Builder(r.dialect).
		Select("COALESCE(MAX(version), 0)").
		From("schema_migrations").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: build version query: %v", ErrApply, err)
	}

	var version int
	if err := dbmetrics.GetExecutor(ctx, r.db).QueryRowContext(ctx, query, args...).Scan(&version); err != nil {
		return 0, fmt.Errorf("%w: read version: %v", ErrApply, err)
	}
	return version, nil
}

// Apply применяет все миграции новее текущей версии, каждую в своей транзакции.
// Возвращает количество примененных миграций.
func (r *Runner) Apply(ctx context.Context) (int, error) {
	migrations, err := r.Migrations()
	if err != nil {
		return 0, err
	}
	current, err := r.CurrentVersion(ctx)
	if err != nil {
		return 0, err
	}

	applied := 0
	for _, m := range migrations {
		if m.Version <= current {
			continue
		}

		err := r.txManager.Do(ctx, func(txCtx context.Context) error {
			executor := dbmetrics.GetExecutor(txCtx, r.db)
			if _, err := executor.ExecContext(txCtx, m.SQL); err != nil {
				return fmt.Errorf("%w: %03d_%s: %v", ErrApply, m.Version, m.Name, err)
			}

			query, args, err := psqlbuilder.Builder(r.dialect).
				Insert("schema_migrations").
				Columns("version", "name").
				Values(m.Version, m.Name).
				ToSql()
			if err != nil {
				return fmt.Errorf("%w: build insert: %v", ErrApply, err)
			}
			if _, err := executor.ExecContext(txCtx, query, args...); err != nil {
				return fmt.Errorf("%w: record version %d: %v", ErrApply, m.Version, err)
			}
			return nil
		})
		if err != nil {
			return applied, err
		}

		r.logger.Info("Migration applied: %03d_%s (%s)", m.Version, m.Name, r.dialect)
		applied++
	}

	return applied, nil
}

func (r *Runner) ensureVersionTable(ctx context.Context) error {
	_, err := dbmetrics.GetExecutor(ctx, r.db).ExecContext(ctx,
		`CREATE TABLE IF NOT EXISTS schema_migrations (version INTEGER PRIMARY KEY, name TEXT NOT NULL)`)
	if err != nil {
		return fmt.Errorf("%w: create schema_migrations: %v", ErrApply, err)
	}
	return nil
}

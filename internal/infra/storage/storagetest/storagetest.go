// Package storagetest поднимает sqlite базу со схемой для тестов репозиториев.
package storagetest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/m04kA/SMC-SchedulingService/internal/infra/storage"
	"github.com/m04kA/SMC-SchedulingService/internal/infra/storage/migration"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-SchedulingService/pkg/txmanager"
)

// OpenSQLite создает базу во временной директории теста и применяет миграции
func OpenSQLite(t testing.TB) *dbmetrics.DB {
	t.Helper()

	ctx := context.Background()
	raw, err := storage.Open(ctx, storage.Options{
		Dialect:    psqlbuilder.SQLite,
		SQLitePath: filepath.Join(t.TempDir(), "scheduling.db"),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = raw.Close() })

	db := dbmetrics.Wrap(raw, nil)
	runner := migration.NewRunner(db, txmanager.NewTransactionManager(db), psqlbuilder.SQLite, logger.NewNop())
	if _, err := runner.Apply(ctx); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	return db
}

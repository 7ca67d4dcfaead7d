// Package bootstrap собирает хранилище и каталог из конфигурации для сервера и slotctl.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/config"
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/infra/storage"
	bookingRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/booking"
	evaluationRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/evaluation"
	"github.com/m04kA/SMC-SchedulingService/internal/infra/storage/migration"
	"github.com/m04kA/SMC-SchedulingService/internal/service/catalog"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/metrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-SchedulingService/pkg/txmanager"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Storage открытое хранилище с репозиториями
type Storage struct {
	DB          *dbmetrics.DB
	Dialect     psqlbuilder.Dialect
	TxManager   *txmanager.TransactionManager
	Bookings    *bookingRepo.Repository
	Evaluations *evaluationRepo.Repository

	raw  *sql.DB
	stop chan struct{}
}

// OpenStorage подключается к хранилищу из [storage]/[database].
// Если m != nil, запросы и пул соединений попадают в метрики.
func OpenStorage(ctx context.Context, cfg *config.Config, m *metrics.Metrics, log Logger) (*Storage, error) {
	dialect := cfg.Dialect()

	raw, err := storage.Open(ctx, storage.Options{
		Dialect:         dialect,
		DSN:             cfg.Database.DSN(),
		SQLitePath:      cfg.Storage.SQLitePath,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return nil, err
	}

	switch dialect {
	case psqlbuilder.SQLite:
		log.Info("Connected to sqlite (path=%s)", cfg.Storage.SQLitePath)
	default:
		log.Info("Connected to postgres (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	}

	stop := make(chan struct{})
	db := dbmetrics.WrapWithDefault(raw, m, string(dialect), stop)

	return &Storage{
		DB:          db,
		Dialect:     dialect,
		TxManager:   txmanager.NewTransactionManager(db),
		Bookings:    bookingRepo.NewRepository(db, dialect),
		Evaluations: evaluationRepo.NewRepository(db, dialect),
		raw:         raw,
		stop:        stop,
	}, nil
}

// Migrate применяет недостающие миграции схемы
func (s *Storage) Migrate(ctx context.Context, log Logger) (int, error) {
	runner := migration.NewRunner(s.DB, s.TxManager, s.Dialect, log)
	applied, err := runner.Apply(ctx)
	if err != nil {
		return 0, fmt.Errorf("migrate: %w", err)
	}
	return applied, nil
}

// Close останавливает сбор статистики пула и закрывает соединения
func (s *Storage) Close() error {
	close(s.stop)
	return s.raw.Close()
}

// NewCatalog каталог услуг, товаров и рабочих часов из конфигурации
func NewCatalog(cfg *config.Config, log Logger) *catalog.Service {
	services := make([]domain.Service, 0, len(cfg.Services))
	for _, s := range cfg.Services {
		services = append(services, s.ToDomain())
	}
	products := make([]domain.Product, 0, len(cfg.Products))
	for _, p := range cfg.Products {
		products = append(products, p.ToDomain())
	}

	return catalog.NewService(
		catalog.Business{
			Name:         cfg.Business.Name,
			Tagline:      cfg.Business.Tagline,
			ContactPhone: cfg.Business.ContactPhone,
			ContactEmail: cfg.Business.ContactEmail,
		},
		cfg.WorkingHours.ToDomain(),
		services,
		products,
		log,
	)
}

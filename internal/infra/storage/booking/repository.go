package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
)

var columns = []string{
	"id",
	"service_id",
	"name",
	"phone",
	"date_time",
	"duration_minutes",
	"series_id",
	"session_index",
	"total_sessions",
	"created_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db      DBExecutor
	builder squirrel.StatementBuilderType
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor, dialect psqlbuilder.Dialect) *Repository {
	return &Repository{db: db, builder: psqlbuilder.Builder(dialect)}
}

// Create сохраняет бронирование, присваивая ему ID и время создания.
// Если в контексте передана активная транзакция, использует её.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	saved := *booking
	saved.ID = uuid.NewString()
	saved.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)

	query, args, err := r.builder.Insert("bookings").
		Columns(columns...).
		Values(
			saved.ID,
			saved.ServiceID,
			saved.Name,
			saved.Phone,
			saved.DateTime.UTC(),
			saved.DurationMinutes,
			saved.SeriesID,
			saved.SessionIndex,
			saved.TotalSessions,
			saved.CreatedAt,
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return &saved, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.builder.Select(columns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - scan: %v", ErrScanRow, err)
	}

	return booking, nil
}

// ListBySeries возвращает сеансы серии по порядку sessionIndex
func (r *Repository) ListBySeries(ctx context.Context, seriesID string) ([]*domain.Booking, error) {
	query, args, err := r.builder.Select(columns...).
		From("bookings").
		Where(squirrel.Eq{"series_id": seriesID}).
		OrderBy("session_index ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBySeries - build select query: %v", ErrBuildQuery, err)
	}

	return r.list(ctx, "ListBySeries", query, args)
}

// ListByRange возвращает бронирования, начинающиеся в [from, to)
func (r *Repository) ListByRange(ctx context.Context, from, to time.Time) ([]*domain.Booking, error) {
	query, args, err := r.builder.Select(columns...).
		From("bookings").
		Where(squirrel.GtOrEq{"date_time": from.UTC()}).
		Where(squirrel.Lt{"date_time": to.UTC()}).
		OrderBy("date_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByRange - build select query: %v", ErrBuildQuery, err)
	}

	return r.list(ctx, "ListByRange", query, args)
}

func (r *Repository) list(ctx context.Context, op, query string, args []interface{}) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute select: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan: %v", ErrScanRow, op, err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows: %v", ErrScanRow, op, err)
	}

	return bookings, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row scanner) (*domain.Booking, error) {
	var (
		b             domain.Booking
		seriesID      sql.NullString
		sessionIndex  sql.NullInt64
		totalSessions sql.NullInt64
	)

	err := row.Scan(
		&b.ID,
		&b.ServiceID,
		&b.Name,
		&b.Phone,
		&b.DateTime,
		&b.DurationMinutes,
		&seriesID,
		&sessionIndex,
		&totalSessions,
		&b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if seriesID.Valid {
		b.SeriesID = &seriesID.String
	}
	if sessionIndex.Valid {
		v := int(sessionIndex.Int64)
		b.SessionIndex = &v
	}
	if totalSessions.Valid {
		v := int(totalSessions.Int64)
		b.TotalSessions = &v
	}

	return &b, nil
}

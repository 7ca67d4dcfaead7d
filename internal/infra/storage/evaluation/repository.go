package evaluation

import (
	"context"
	"database/sql"
	"encoding/json"
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
	"evaluation_type",
	"date_time",
	"duration_minutes",
	"images",
	"created_at",
}

// Repository репозиторий заявок на оценку
type Repository struct {
	db      DBExecutor
	builder squirrel.StatementBuilderType
}

// NewRepository создает новый экземпляр репозитория оценок
func NewRepository(db DBExecutor, dialect psqlbuilder.Dialect) *Repository {
	return &Repository{db: db, builder: psqlbuilder.Builder(dialect)}
}

// Create сохраняет заявку на оценку
func (r *Repository) Create(ctx context.Context, evaluation *domain.Evaluation) (*domain.Evaluation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	saved := *evaluation
	saved.ID = uuid.NewString()
	saved.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	if saved.Images == nil {
		saved.Images = []string{}
	}

	images, err := json.Marshal(saved.Images)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodeImages, err)
	}

	var dateTime *time.Time
	if saved.DateTime != nil {
		utc := saved.DateTime.UTC()
		dateTime = &utc
	}

	query, args, err := r.builder.Insert("evaluations").
		Columns(columns...).
		Values(
			saved.ID,
			saved.ServiceID,
			saved.Name,
			saved.Phone,
			string(saved.Type),
			dateTime,
			saved.DurationMinutes,
			string(images),
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

// GetByID получает заявку на оценку по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Evaluation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.builder.Select(columns...).
		From("evaluations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	ev, err := scanEvaluation(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEvaluationNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - scan: %v", ErrScanRow, err)
	}

	return ev, nil
}

// ListPresencialByRange возвращает очные оценки, начинающиеся в [from, to)
func (r *Repository) ListPresencialByRange(ctx context.Context, from, to time.Time) ([]*domain.Evaluation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.builder.Select(columns...).
		From("evaluations").
		Where(squirrel.Eq{"evaluation_type": string(domain.EvaluationPresencial)}).
		Where(squirrel.GtOrEq{"date_time": from.UTC()}).
		Where(squirrel.Lt{"date_time": to.UTC()}).
		OrderBy("date_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListPresencialByRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListPresencialByRange - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	evaluations := make([]*domain.Evaluation, 0)
	for rows.Next() {
		ev, err := scanEvaluation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListPresencialByRange - scan: %v", ErrScanRow, err)
		}
		evaluations = append(evaluations, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListPresencialByRange - rows: %v", ErrScanRow, err)
	}

	return evaluations, nil
}

// FindByCustomer последняя заявка клиента на оценку услуги
func (r *Repository) FindByCustomer(ctx context.Context, serviceID, phone string) (*domain.Evaluation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.builder.Select(columns...).
		From("evaluations").
		Where(squirrel.Eq{"service_id": serviceID, "phone": phone}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindByCustomer - build select query: %v", ErrBuildQuery, err)
	}

	ev, err := scanEvaluation(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEvaluationNotFound
		}
		return nil, fmt.Errorf("%w: FindByCustomer - scan: %v", ErrScanRow, err)
	}

	return ev, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanEvaluation(row scanner) (*domain.Evaluation, error) {
	var (
		ev       domain.Evaluation
		evType   string
		dateTime sql.NullTime
		images   string
	)

	err := row.Scan(
		&ev.ID,
		&ev.ServiceID,
		&ev.Name,
		&ev.Phone,
		&evType,
		&dateTime,
		&ev.DurationMinutes,
		&images,
		&ev.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	ev.Type = domain.EvaluationType(evType)
	if dateTime.Valid {
		ev.DateTime = &dateTime.Time
	}
	if err := json.Unmarshal([]byte(images), &ev.Images); err != nil {
		return nil, fmt.Errorf("decode images: %w", err)
	}

	return &ev, nil
}

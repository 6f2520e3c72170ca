// Package postgres implements the parcel store on PostgreSQL through
// database/sql and the pgx driver.
//
// Every statement runs inside a circuit breaker and its own client span:
//
//	Circuit Breaker → OTEL Span → SQL
//
// Breaker rejections and connection failures surface as domain.ErrUnavailable
// so the API layer can answer 502 instead of a generic 500.
package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/parcel-service/internal/domain"
	"github.com/jsamuelsen11/parcel-service/internal/domain/parcel"
	"github.com/jsamuelsen11/parcel-service/internal/platform/config"
	"github.com/jsamuelsen11/parcel-service/internal/platform/logging"
	"github.com/jsamuelsen11/parcel-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/parcel-service/internal/ports"
)

var (
	_ ports.ParcelRepository = (*Repository)(nil)
	_ ports.HealthChecker    = (*Repository)(nil)
)

const (
	checkerName = "postgres"
	dbSystem    = "postgresql"
	tracerName  = "storage/postgres"
)

const (
	insertParcelSQL = `
	INSERT INTO parcels (
		sender_name,
		receiver_name,
		parcel_description,
		received_date,
		status,
		contact_number
	)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id;
	`

	upsertParcelSQL = `
	INSERT INTO parcels (
		id,
		sender_name,
		receiver_name,
		parcel_description,
		received_date,
		status,
		contact_number
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (id) DO UPDATE SET
		sender_name = EXCLUDED.sender_name,
		receiver_name = EXCLUDED.receiver_name,
		parcel_description = EXCLUDED.parcel_description,
		received_date = EXCLUDED.received_date,
		status = EXCLUDED.status,
		contact_number = EXCLUDED.contact_number;
	`

	selectParcelColumns = `
	SELECT
		id,
		sender_name,
		receiver_name,
		parcel_description,
		received_date,
		status,
		contact_number
	FROM parcels
	`

	deleteParcelSQL = `DELETE FROM parcels WHERE id = $1;`
)

// Repository is the PostgreSQL-backed parcel store.
type Repository struct {
	db      *sql.DB
	breaker *gobreaker.CircuitBreaker[struct{}]
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New wraps db in a repository guarded by a circuit breaker built from cfg.
// If metrics is nil, metric recording is skipped.
func New(db *sql.DB, cfg config.CircuitBreakerConfig, metrics *telemetry.Metrics, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = logging.Discard()
	}

	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        checkerName,
		MaxRequests: toUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		// Caller cancellations say nothing about database health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Repository{
		db:      db,
		breaker: cb,
		metrics: metrics,
		logger:  logger,
	}
}

// Save inserts p when its ID is zero and returns it with the generated ID.
// Otherwise the row with p's ID is written, inserting it if absent.
func (r *Repository) Save(ctx context.Context, p *parcel.Parcel) (*parcel.Parcel, error) {
	saved := p.Clone()

	err := r.run(ctx, "save", func(ctx context.Context) error {
		if saved.ID == 0 {
			return r.db.QueryRowContext(ctx, insertParcelSQL,
				saved.SenderName,
				saved.ReceiverName,
				saved.ParcelDescription,
				saved.ReceivedDate.Time(),
				string(saved.Status),
				nullString(saved.ContactNumber),
			).Scan(&saved.ID)
		}

		_, err := r.db.ExecContext(ctx, upsertParcelSQL,
			saved.ID,
			saved.SenderName,
			saved.ReceiverName,
			saved.ParcelDescription,
			saved.ReceivedDate.Time(),
			string(saved.Status),
			nullString(saved.ContactNumber),
		)
		return err
	})
	if err != nil {
		return nil, err
	}

	return saved, nil
}

// FindByID returns the parcel with the given ID. A missing row is reported
// through found, not as an error.
func (r *Repository) FindByID(ctx context.Context, id int64) (*parcel.Parcel, bool, error) {
	var (
		p     *parcel.Parcel
		found bool
	)

	err := r.run(ctx, "find_by_id", func(ctx context.Context) error {
		row := r.db.QueryRowContext(ctx, selectParcelColumns+"WHERE id = $1;", id)

		scanned, err := scanParcel(row)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}

		p, found = scanned, true
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	return p, found, nil
}

// FindAll returns every parcel ordered by ID.
func (r *Repository) FindAll(ctx context.Context) ([]parcel.Parcel, error) {
	parcels := make([]parcel.Parcel, 0)

	err := r.run(ctx, "find_all", func(ctx context.Context) error {
		rows, err := r.db.QueryContext(ctx, selectParcelColumns+"ORDER BY id;")
		if err != nil {
			return fmt.Errorf("query parcels table: %w", err)
		}
		defer func() { _ = rows.Close() }()

		for rows.Next() {
			p, err := scanParcel(rows)
			if err != nil {
				return fmt.Errorf("scan row: %w", err)
			}
			parcels = append(parcels, *p)
		}

		if err := rows.Err(); err != nil {
			return fmt.Errorf("row iteration: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return parcels, nil
}

// Delete removes the row with p's ID. Deleting a missing row is not an error.
func (r *Repository) Delete(ctx context.Context, p *parcel.Parcel) error {
	return r.run(ctx, "delete", func(ctx context.Context) error {
		_, err := r.db.ExecContext(ctx, deleteParcelSQL, p.ID)
		return err
	})
}

// Name implements ports.HealthChecker.
func (r *Repository) Name() string {
	return checkerName
}

// HealthCheck reports an open breaker without touching the database and
// otherwise pings it. A half-open breaker is reported as degraded.
func (r *Repository) HealthCheck(ctx context.Context) error {
	switch state := r.breaker.State(); state {
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", checkerName)
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", checkerName)
	case gobreaker.StateClosed:
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", checkerName, state)
	}

	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%s: ping: %w", checkerName, err)
	}
	return nil
}

// run executes fn through the breaker inside a client span and records
// metrics outside the breaker so rejections are counted too.
func (r *Repository) run(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	start := time.Now()

	_, err := r.breaker.Execute(func() (struct{}, error) {
		spanCtx, span := startSpan(ctx, op)
		defer span.End()

		err := fn(spanCtx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return struct{}{}, err
	})

	r.recordMetrics(ctx, op, start, err)

	if err != nil {
		return classify(op, err)
	}
	return nil
}

func startSpan(ctx context.Context, op string) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer(tracerName)

	return tracer.Start(ctx, "parcels."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String(string(telemetry.AttrDBSystem), dbSystem),
			attribute.String(string(telemetry.AttrDBOperation), op),
			attribute.String("db.sql.table", "parcels"),
		),
	)
}

// recordMetrics is safe to call with nil metrics.
func (r *Repository) recordMetrics(ctx context.Context, op string, start time.Time, err error) {
	if r.metrics == nil {
		return
	}

	result := "success"
	switch {
	case isBreakerRejection(err):
		result = "circuit_open"
	case err != nil:
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrDBSystem.String(dbSystem),
		telemetry.AttrDBOperation.String(op),
		telemetry.AttrResult.String(result),
	)

	r.metrics.DBOperationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	r.metrics.DBOperationTotal.Add(ctx, 1, attrs)
}

// classify wraps err with the operation name and tags breaker rejections and
// connection failures with domain.ErrUnavailable.
func classify(op string, err error) error {
	if isBreakerRejection(err) || isConnectionError(err) {
		return fmt.Errorf("postgres %s: %w: %w", op, domain.ErrUnavailable, err)
	}
	return fmt.Errorf("postgres %s: %w", op, err)
}

func isBreakerRejection(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

func isConnectionError(err error) bool {
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanParcel(row rowScanner) (*parcel.Parcel, error) {
	var (
		p            parcel.Parcel
		receivedDate time.Time
		status       string
		contact      sql.NullString
	)

	if err := row.Scan(
		&p.ID,
		&p.SenderName,
		&p.ReceiverName,
		&p.ParcelDescription,
		&receivedDate,
		&status,
		&contact,
	); err != nil {
		return nil, err
	}

	p.ReceivedDate = parcel.DateOf(receivedDate)
	p.Status = parcel.Status(status)
	if contact.Valid {
		v := contact.String
		p.ContactNumber = &v
	}

	return &p, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// toUint32 clamps v into the uint32 range. Negative values become zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"VibeFinance/internal/domain/models"
	domrepo "VibeFinance/internal/domain/repository"
	"VibeFinance/pkg/logger"
)

// Execer is satisfied by *sql.DB.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// LookupsSchema returns the DDL for the lookups table.
func LookupsSchema(table string) []string {
	return []string{fmt.Sprintf(`
        CREATE TABLE IF NOT EXISTS %s (
            id          String,
            at          DateTime64(3, 'UTC'),
            session_id  String,
            source      LowCardinality(String),
            symbol      LowCardinality(String),
            period      LowCardinality(String),
            outcome     LowCardinality(String),
            price       Nullable(Float64),
            error       String,
            duration_ms UInt32
        )
        ENGINE = MergeTree
        PARTITION BY toYYYYMM(at)
        ORDER BY (symbol, at)
        TTL toDateTime(at) + INTERVAL 90 DAY
    `, table)}
}

// ClickHouseJournal inserts one row per lookup.
type ClickHouseJournal struct {
	db     Execer
	table  string
	closer func() error
	l      *logger.Logger
}

var _ domrepo.Journal = (*ClickHouseJournal)(nil)

// NewClickHouseJournal writes to table through db. closer releases the
// connection and may be nil.
func NewClickHouseJournal(db Execer, table string, closer func() error, l *logger.Logger) *ClickHouseJournal {
	if l == nil {
		l = logger.Nop()
	}
	return &ClickHouseJournal{db: db, table: table, closer: closer, l: l}
}

func (j *ClickHouseJournal) Record(ctx context.Context, ev *models.LookupEvent) error {
	start := time.Now()
	q := fmt.Sprintf(
		"INSERT INTO %s (id, at, session_id, source, symbol, period, outcome, price, error, duration_ms) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		j.table,
	)
	_, err := j.db.ExecContext(ctx, q,
		ev.ID,
		ev.At,
		ev.SessionID,
		ev.Source,
		ev.Symbol,
		ev.Period,
		string(ev.Outcome),
		ev.Price,
		ev.Error,
		uint32(ev.DurationMs),
	)
	if err != nil {
		j.l.Error("clickhouse insert lookup error",
			logger.String("table", j.table),
			logger.String("symbol", ev.Symbol),
			logger.Error(err),
		)
		return fmt.Errorf("insert lookup: %w", err)
	}
	j.l.Debug("clickhouse insert lookup ok",
		logger.String("table", j.table),
		logger.String("symbol", ev.Symbol),
		logger.Duration("duration_ms", time.Since(start)),
	)
	return nil
}

func (j *ClickHouseJournal) Close() error {
	if j.closer == nil {
		return nil
	}
	return j.closer()
}

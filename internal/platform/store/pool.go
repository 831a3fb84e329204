package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"mastoshim/internal/platform/logger"
	"mastoshim/internal/platform/metrics"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	defaultConnectRetries = 20
	defaultPingTimeout    = 3 * time.Second
)

var newPool = pgxpool.NewWithConfig

type labelKey struct{}

// Label names the statements run with ctx in metrics and logs
func Label(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, labelKey{}, name)
}

func labelOf(ctx context.Context) string {
	if s, _ := ctx.Value(labelKey{}).(string); s != "" {
		return s
	}
	return "unlabeled"
}

// observer records every statement; it is shared by the pool and its transactions
type observer struct {
	log    logger.Logger
	logSQL bool
	slow   time.Duration
}

func (o observer) done(ctx context.Context, sql string, start time.Time, err error) {
	elapsed := time.Since(start)
	label := labelOf(ctx)
	outcome := "ok"
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		outcome = "error"
	}
	metrics.ObservePlatformQuery(label, outcome, elapsed)

	slow := o.slow > 0 && elapsed >= o.slow
	if !slow && !o.logSQL {
		return
	}
	evt := o.log.Debug()
	if slow {
		evt = o.log.Warn()
	}
	evt.Str("query", label).
		Dur("elapsed", elapsed).
		Bool("slow", slow).
		Str("sql", compact(sql)).
		Err(err).
		Msg("pg query")
}

// compact folds whitespace runs so multi line SQL logs on one line
func compact(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// pool is the pgxpool backed TxRunner
type pool struct {
	p   *pgxpool.Pool
	obs observer
}

func openPool(ctx context.Context, cfg Config, log logger.Logger) (*pool, error) {
	pc, err := pgxpool.ParseConfig(cfg.PG.URL)
	if err != nil {
		return nil, err
	}
	if cfg.PG.MaxConns > 0 {
		pc.MaxConns = cfg.PG.MaxConns
	}
	if cfg.AppName != "" {
		pc.ConnConfig.RuntimeParams["application_name"] = cfg.AppName
	}
	pp, err := newPool(ctx, pc)
	if err != nil {
		return nil, err
	}
	p := &pool{p: pp, obs: observer{
		log:    log,
		logSQL: cfg.PG.LogSQL,
		slow:   time.Duration(cfg.PG.SlowQueryMs) * time.Millisecond,
	}}
	if err := p.waitReady(ctx, cfg.PG); err != nil {
		pp.Close()
		return nil, err
	}
	return p, nil
}

// waitReady pings with exponential backoff until the database answers
func (p *pool) waitReady(ctx context.Context, cfg PGConfig) error {
	retries := cfg.ConnectRetries
	if retries <= 0 {
		retries = defaultConnectRetries
	}
	pingTimeout := cfg.PingTimeout
	if pingTimeout <= 0 {
		pingTimeout = defaultPingTimeout
	}

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = 150 * time.Millisecond
	eb.MaxInterval = 2 * time.Second
	eb.MaxElapsedTime = 0
	policy := backoff.WithContext(backoff.WithMaxRetries(eb, uint64(retries-1)), ctx)

	attempts := 0
	err := backoff.RetryNotify(func() error {
		attempts++
		pctx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		return p.p.Ping(pctx)
	}, policy, func(err error, wait time.Duration) {
		p.obs.log.Debug().Err(err).Int("attempt", attempts).Dur("retry_in", wait).Msg("postgres not ready")
	})
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("postgres ping failed after %d attempts: %w", attempts, err)
	}
	return nil
}

func (p *pool) Ping(ctx context.Context) error { return p.p.Ping(ctx) }

func (p *pool) Close() error { p.p.Close(); return nil }

func (p *pool) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	return execOn(ctx, p.p, p.obs, sql, args)
}

func (p *pool) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	return queryOn(ctx, p.p, p.obs, sql, args)
}

func (p *pool) QueryRow(ctx context.Context, sql string, args ...any) Row {
	return queryRowOn(ctx, p.p, p.obs, sql, args)
}

// Tx runs fn in a transaction; ReadOnly contexts get a read only repeatable read snapshot
func (p *pool) Tx(ctx context.Context, fn func(q RowQuerier) error) error {
	opts := pgx.TxOptions{}
	if isReadOnly(ctx) {
		opts.AccessMode = pgx.ReadOnly
		opts.IsoLevel = pgx.RepeatableRead
	}
	tx, err := p.p.BeginTx(ctx, opts)
	if err != nil {
		return err
	}
	if err := fn(txq{tx: tx, obs: p.obs}); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

type txq struct {
	tx  pgx.Tx
	obs observer
}

func (t txq) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	return execOn(ctx, t.tx, t.obs, sql, args)
}

func (t txq) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	return queryOn(ctx, t.tx, t.obs, sql, args)
}

func (t txq) QueryRow(ctx context.Context, sql string, args ...any) Row {
	return queryRowOn(ctx, t.tx, t.obs, sql, args)
}

// pgxQuerier is what pgxpool.Pool and pgx.Tx have in common
type pgxQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func execOn(ctx context.Context, q pgxQuerier, obs observer, sql string, args []any) (CommandTag, error) {
	start := time.Now()
	ct, err := q.Exec(ctx, sql, args...)
	obs.done(ctx, sql, start, err)
	return ct, err
}

func queryOn(ctx context.Context, q pgxQuerier, obs observer, sql string, args []any) (Rows, error) {
	start := time.Now()
	rs, err := q.Query(ctx, sql, args...)
	obs.done(ctx, sql, start, err)
	if err != nil {
		return nil, err
	}
	return rs, nil
}

func queryRowOn(ctx context.Context, q pgxQuerier, obs observer, sql string, args []any) Row {
	start := time.Now()
	return observedRow{r: q.QueryRow(ctx, sql, args...), after: func(err error) {
		obs.done(ctx, sql, start, err)
	}}
}

// observedRow reports once Scan has run, since pgx defers errors to Scan
type observedRow struct {
	r     pgx.Row
	after func(error)
}

func (x observedRow) Scan(dst ...any) error {
	err := x.r.Scan(dst...)
	x.after(err)
	return err
}

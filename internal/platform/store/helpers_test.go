package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type fakeRows struct {
	data [][]any
	i    int
	err  error

	closed bool
}

func (r *fakeRows) Next() bool {
	if r.i >= len(r.data) {
		return false
	}
	r.i++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.data[r.i-1]
	if len(dest) != len(row) {
		return fmt.Errorf("scan: %d dest for %d columns", len(dest), len(row))
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = row[i].(string)
		case *int:
			*p = row[i].(int)
		case *bool:
			*p = row[i].(bool)
		default:
			return fmt.Errorf("scan: unsupported %T", d)
		}
	}
	return nil
}

func (r *fakeRows) Err() error { return r.err }
func (r *fakeRows) Close()     { r.closed = true }

type fakeDB struct {
	rows     *fakeRows
	queryErr error
	readOnly bool
	txCalls  int
}

func (f *fakeDB) Exec(context.Context, string, ...any) (CommandTag, error) { return nil, nil }

func (f *fakeDB) Query(context.Context, string, ...any) (Rows, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.rows, nil
}

func (f *fakeDB) QueryRow(context.Context, string, ...any) Row {
	if f.queryErr != nil {
		return errRow{f.queryErr}
	}
	f.rows.i = 0
	f.rows.Next()
	return f.rows
}

func (f *fakeDB) Tx(ctx context.Context, fn func(q RowQuerier) error) error {
	f.txCalls++
	f.readOnly = isReadOnly(ctx)
	return fn(f)
}

type errRow struct{ err error }

func (e errRow) Scan(...any) error { return e.err }

func TestScalar(t *testing.T) {
	t.Parallel()

	db := &fakeDB{rows: &fakeRows{data: [][]any{{42}}}}
	n, err := Scalar[int](context.Background(), db, "select 42")
	if err != nil || n != 42 {
		t.Fatalf("Scalar got %d, %v", n, err)
	}

	boom := errors.New("boom")
	db = &fakeDB{queryErr: boom}
	if n, err := Scalar[int](context.Background(), db, "select 1"); !errors.Is(err, boom) || n != 0 {
		t.Fatalf("Scalar error path got %d, %v", n, err)
	}
}

func TestMany_ScansEveryRowAndCloses(t *testing.T) {
	t.Parallel()

	rows := &fakeRows{data: [][]any{{"a"}, {"b"}, {"c"}}}
	got, err := Many(context.Background(), &fakeDB{rows: rows}, func(r Row) (string, error) {
		var s string
		err := r.Scan(&s)
		return s, err
	}, "select id")
	if err != nil {
		t.Fatalf("Many: %v", err)
	}
	if len(got) != 3 || got[0] != "a" || got[2] != "c" {
		t.Fatalf("Many got %v", got)
	}
	if !rows.closed {
		t.Fatal("rows not closed")
	}
}

func TestMany_PropagatesRowsErr(t *testing.T) {
	t.Parallel()

	boom := errors.New("conn reset")
	rows := &fakeRows{data: [][]any{{"a"}}, err: boom}
	_, err := Many(context.Background(), &fakeDB{rows: rows}, func(r Row) (string, error) {
		var s string
		return s, r.Scan(&s)
	}, "select id")
	if !errors.Is(err, boom) {
		t.Fatalf("want rows error, got %v", err)
	}
}

func TestCounts_GroupsByID(t *testing.T) {
	t.Parallel()

	rows := &fakeRows{data: [][]any{{"u1", 3}, {"u2", 0}}}
	got, err := Counts(context.Background(), &fakeDB{rows: rows}, "select user_id, count(*)")
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	if got["u1"] != 3 || len(got) != 2 {
		t.Fatalf("Counts got %v", got)
	}
	if _, ok := got["u3"]; ok {
		t.Fatal("absent id should stay absent")
	}
}

func TestRunReadOnly_MarksTransaction(t *testing.T) {
	t.Parallel()

	db := &fakeDB{rows: &fakeRows{}}
	var seen bool
	err := RunReadOnly(context.Background(), db, func(ctx context.Context, q RowQuerier) error {
		seen = isReadOnly(ctx)
		return nil
	})
	if err != nil {
		t.Fatalf("RunReadOnly: %v", err)
	}
	if db.txCalls != 1 || !db.readOnly || !seen {
		t.Fatalf("tx=%d readOnly=%v seen=%v", db.txCalls, db.readOnly, seen)
	}
}

func TestLabel(t *testing.T) {
	t.Parallel()

	if got := labelOf(context.Background()); got != "unlabeled" {
		t.Fatalf("default label %q", got)
	}
	if got := labelOf(Label(context.Background(), "post_counts")); got != "post_counts" {
		t.Fatalf("label %q", got)
	}
}

func TestCompact(t *testing.T) {
	t.Parallel()

	in := "SELECT id\n\t FROM pointers_pointer\r\n  WHERE id = $1 "
	if got := compact(in); got != "SELECT id FROM pointers_pointer WHERE id = $1" {
		t.Fatalf("compact got %q", got)
	}
}

func TestObserver_DoesNotPanicWithoutLogging(t *testing.T) {
	t.Parallel()

	o := observer{log: zerolog.Nop(), slow: time.Hour}
	o.done(Label(context.Background(), "test"), "select 1", time.Now(), nil)
	o = observer{log: zerolog.Nop(), logSQL: true, slow: time.Nanosecond}
	o.done(context.Background(), "select 1", time.Now().Add(-time.Second), errors.New("x"))
}

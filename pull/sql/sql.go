// Package sql adapts database/sql result sets to the pull contract.
// A row set is just another concrete producer: the core never learns
// it is talking to a database.
package sql

import (
	"context"
	"database/sql"
)

// Scanner converts the current row into a value.
type Scanner[T any] func(*sql.Rows) (T, error)

// Rows walks a *sql.Rows result set as a producer. Pull iteration has
// no error channel, so scan and cursor errors park in Err: Next
// returns false at the first failure and the caller checks Err after
// the drain, the database/sql idiom.
//
// Draining to exhaustion closes the underlying result set; Close is
// only needed when abandoning the rows early.
type Rows[T any] struct {
	rows   *sql.Rows
	scan   Scanner[T]
	err    error
	closed bool
}

// Next implements the producer contract over the row cursor.
func (r *Rows[T]) Next() (T, bool) {
	var zero T
	if r.closed {
		return zero, false
	}
	if !r.rows.Next() {
		r.err = r.rows.Err()
		r.release()
		return zero, false
	}
	v, err := r.scan(r.rows)
	if err != nil {
		r.err = err
		r.release()
		return zero, false
	}
	return v, true
}

// Err returns the first error encountered while walking or scanning
// the rows, or nil after a clean drain.
func (r *Rows[T]) Err() error {
	return r.err
}

// Close releases the underlying result set. It is safe to call after
// exhaustion, and it is a no-op the second time.
func (r *Rows[T]) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return r.rows.Close()
}

func (r *Rows[T]) release() {
	if r.closed {
		return
	}
	r.closed = true
	if cerr := r.rows.Close(); cerr != nil && r.err == nil {
		r.err = cerr
	}
}

// Query executes the query and returns a producer over its rows. The
// scanner is called once per row to convert it to the output type.
func Query[T any](ctx context.Context, db *sql.DB, query string, scan Scanner[T], args ...any) (*Rows[T], error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return &Rows[T]{rows: rows, scan: scan}, nil
}

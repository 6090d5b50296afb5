package repository

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"talent-match/internal/database"

	"github.com/jackc/pgx/v5"
)

// fakeQuerier serves canned rows. Values must match the Scan targets'
// element types exactly; nil zeroes the target.
type fakeQuerier struct {
	row     []any
	rowErr  error
	rows    [][]any
	queries []string
	args    [][]any
}

func (f *fakeQuerier) Exec(_ context.Context, query string, args ...any) (int64, error) {
	f.queries = append(f.queries, query)
	f.args = append(f.args, args)
	return 0, nil
}

func (f *fakeQuerier) Query(_ context.Context, query string, args ...any) (database.Rows, error) {
	f.queries = append(f.queries, query)
	f.args = append(f.args, args)
	return &fakeRows{data: f.rows, pos: -1}, nil
}

func (f *fakeQuerier) QueryRow(_ context.Context, query string, args ...any) database.Row {
	f.queries = append(f.queries, query)
	f.args = append(f.args, args)
	if f.rowErr != nil {
		return fakeRow{err: f.rowErr}
	}
	if f.row == nil {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{vals: f.row}
}

type fakeRow struct {
	vals []any
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assign(r.vals, dest)
}

type fakeRows struct {
	data [][]any
	pos  int
}

func (r *fakeRows) Close()     {}
func (r *fakeRows) Err() error { return nil }
func (r *fakeRows) Next() bool {
	r.pos++
	return r.pos < len(r.data)
}
func (r *fakeRows) Scan(dest ...any) error { return assign(r.data[r.pos], dest) }

func assign(vals []any, dest []any) error {
	if len(vals) != len(dest) {
		return fmt.Errorf("scan: %d values into %d targets", len(vals), len(dest))
	}
	for i, d := range dest {
		target := reflect.ValueOf(d).Elem()
		if vals[i] == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}
		v := reflect.ValueOf(vals[i])
		if !v.Type().AssignableTo(target.Type()) {
			return errors.New("scan: type mismatch at column " + fmt.Sprint(i))
		}
		target.Set(v)
	}
	return nil
}

//go:build unit || e2e

package dbtest

import (
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Row is a pgx.Row that copies fixed values into Scan destinations.
type Row struct {
	Values []any
	Err    error
}

func NewRow(values ...any) *Row {
	return &Row{Values: values}
}

func ErrRow(err error) *Row {
	return &Row{Err: err}
}

func (r *Row) Scan(dest ...any) error {
	if r.Err != nil {
		return r.Err
	}
	return assign(r.Values, dest)
}

// Rows is a pgx.Rows over fixed records.
type Rows struct {
	Records [][]any
	Failure error
	pos     int
}

func NewRows(records ...[]any) *Rows {
	return &Rows{Records: records}
}

func (r *Rows) Close()                                       {}
func (r *Rows) Err() error                                   { return r.Failure }
func (r *Rows) CommandTag() pgconn.CommandTag                { return pgconn.NewCommandTag("SELECT") }
func (r *Rows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *Rows) RawValues() [][]byte                          { return nil }
func (r *Rows) Conn() *pgx.Conn                              { return nil }

func (r *Rows) Next() bool {
	if r.Failure != nil || r.pos >= len(r.Records) {
		return false
	}
	r.pos++
	return true
}

func (r *Rows) Scan(dest ...any) error {
	return assign(r.Records[r.pos-1], dest)
}

func (r *Rows) Values() ([]any, error) {
	return r.Records[r.pos-1], nil
}

func assign(values, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("scan: %d values for %d destinations", len(values), len(dest))
	}
	for i, d := range dest {
		target := reflect.ValueOf(d).Elem()
		if values[i] == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}
		target.Set(reflect.ValueOf(values[i]))
	}
	return nil
}

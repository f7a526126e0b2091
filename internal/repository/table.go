package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/deppfellow/go-crudkit/internal/database"
	"github.com/deppfellow/go-crudkit/internal/sqlerr"
	"github.com/georgysavva/scany/v2/pgxscan"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Field is one column/value pair of an insert or update.
type Field struct {
	Column string
	Value  any
}

// Fields keeps columns in the order given so generated SQL is stable.
type Fields []Field

func (f Fields) columns() []string {
	cols := make([]string, len(f))
	for i, field := range f {
		cols[i] = field.Column
	}
	return cols
}

func (f Fields) values() []any {
	vals := make([]any, len(f))
	for i, field := range f {
		vals[i] = field.Value
	}
	return vals
}

// Table is a gateway to one table whose rows scan into T.
//
// The table must have an integer primary key named "id". Columns lists
// what SELECT and RETURNING read back, matching T's `db` tags.
type Table[T any] struct {
	name    string
	columns []string
}

// NewTable describes table name with the given readable columns.
func NewTable[T any](name string, columns ...string) Table[T] {
	return Table[T]{name: name, columns: columns}
}

func (t Table[T]) returning() string {
	return "RETURNING " + strings.Join(t.columns, ", ")
}

// Insert writes one row and returns it as stored.
func (t Table[T]) Insert(ctx context.Context, db database.Querier, fields Fields) (T, error) {
	var record T

	query, args, err := psql.Insert(t.name).
		Columns(fields.columns()...).
		Values(fields.values()...).
		Suffix(t.returning()).
		ToSql()
	if err != nil {
		return record, fmt.Errorf("building insert query: %w", err)
	}

	if err := pgxscan.Get(ctx, db, &record, query, args...); err != nil {
		return record, sqlerr.Wrap(t.name, err)
	}
	return record, nil
}

// All returns every row ordered by id.
func (t Table[T]) All(ctx context.Context, db database.Querier) ([]T, error) {
	query, args, err := psql.Select(t.columns...).
		From(t.name).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}

	var records []T
	if err := pgxscan.Select(ctx, db, &records, query, args...); err != nil {
		return nil, sqlerr.Wrap(t.name, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// Get returns the row with the given id or a sqlerr not-found error.
func (t Table[T]) Get(ctx context.Context, db database.Querier, id int32) (T, error) {
	var record T

	query, args, err := psql.Select(t.columns...).
		From(t.name).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return record, fmt.Errorf("building select query: %w", err)
	}

	if err := pgxscan.Get(ctx, db, &record, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return record, sqlerr.NotFound(t.name, id)
		}
		return record, sqlerr.Wrap(t.name, err)
	}
	return record, nil
}

// Update sets fields on the row with the given id, always bumping
// updated_at, and returns the row after the change.
func (t Table[T]) Update(ctx context.Context, db database.Querier, id int32, fields Fields) (T, error) {
	var record T

	builder := psql.Update(t.name)
	for _, field := range fields {
		builder = builder.Set(field.Column, field.Value)
	}

	query, args, err := builder.
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix(t.returning()).
		ToSql()
	if err != nil {
		return record, fmt.Errorf("building update query: %w", err)
	}

	if err := pgxscan.Get(ctx, db, &record, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return record, sqlerr.NotFound(t.name, id)
		}
		return record, sqlerr.Wrap(t.name, err)
	}
	return record, nil
}

// Delete removes the row with the given id. A missing row is a not-found
// error, so deleting twice fails the second time.
func (t Table[T]) Delete(ctx context.Context, db database.Querier, id int32) error {
	query, args, err := psql.Delete(t.name).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("building delete query: %w", err)
	}

	tag, err := db.Exec(ctx, query, args...)
	if err != nil {
		return sqlerr.Wrap(t.name, err)
	}
	if tag.RowsAffected() == 0 {
		return sqlerr.NotFound(t.name, id)
	}
	return nil
}

// Count returns the number of rows in the table.
func (t Table[T]) Count(ctx context.Context, db database.Querier) (int64, error) {
	query, args, err := psql.Select("COUNT(*)").
		From(t.name).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("building count query: %w", err)
	}

	var count int64
	if err := db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, sqlerr.Wrap(t.name, err)
	}
	return count, nil
}

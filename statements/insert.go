// Package statements provides the INSERT statement builder.
//
// An InsertQuery collects field/value pairs for the column list and,
// optionally, for an ON DUPLICATE KEY UPDATE clause, then renders the final
// MySQL statement text. Values classify per the values package: nils,
// booleans, and numerics inline as literals; everything else binds as a
// named @placeholder collected on the builder for the execution layer.
package statements

import (
	"fmt"

	"github.com/radtek/insertq/fields"
	"github.com/radtek/insertq/values"
)

// InsertQuery builds a MySQL INSERT statement, optionally upgraded to an
// upsert via ON DUPLICATE KEY UPDATE. Fields keep their first registration
// position on overwrite. Not safe for concurrent use; build one statement
// per goroutine.
type InsertQuery struct {
	statementContext
	inserts *fields.Map[string]
	updates *fields.Map[string]
}

// New creates an InsertQuery targeting database.table. A blank identifier
// puts the builder into an error state surfaced by Err and the render
// methods; the returned builder always supports chaining.
func New(database, table string) *InsertQuery {
	return &InsertQuery{
		statementContext: newStatementContext(database, table),
		inserts:          fields.NewMap[string](),
		updates:          fields.NewMap[string](),
	}
}

// SetInsert registers field with value in the column list.
func (q *InsertQuery) SetInsert(field string, value any) *InsertQuery {
	return q.setInsert(true, field, value, false)
}

// SetInsertIf registers field only when condition is true. A false
// condition is a pure no-op: no validation, no mutation.
func (q *InsertQuery) SetInsertIf(condition bool, field string, value any) *InsertQuery {
	return q.setInsert(condition, field, value, false)
}

// SetInsertUpdate registers field in the column list and propagates the
// same value to the ON DUPLICATE KEY UPDATE clause under its own
// update-context placeholder.
func (q *InsertQuery) SetInsertUpdate(field string, value any) *InsertQuery {
	return q.setInsert(true, field, value, true)
}

// SetInsertUpdateIf is SetInsertUpdate gated on condition.
func (q *InsertQuery) SetInsertUpdateIf(condition bool, field string, value any) *InsertQuery {
	return q.setInsert(condition, field, value, true)
}

// SetUpdate registers field in the ON DUPLICATE KEY UPDATE clause.
func (q *InsertQuery) SetUpdate(field string, value any) *InsertQuery {
	return q.setUpdate(true, field, value)
}

// SetUpdateIf is SetUpdate gated on condition.
func (q *InsertQuery) SetUpdateIf(condition bool, field string, value any) *InsertQuery {
	return q.setUpdate(condition, field, value)
}

func (q *InsertQuery) setInsert(condition bool, field string, value any, propagate bool) *InsertQuery {
	if !condition || q.err != nil {
		return q
	}
	if blank(field) {
		q.fail(fmt.Errorf("%w: field name is empty", ErrInvalidArgument))
		return q
	}
	expr, param := values.Render(values.Insert, field, value)
	if param != nil {
		q.bind(*param)
	}
	q.inserts.Set(field, expr)
	if propagate {
		return q.setUpdate(true, field, value)
	}
	return q
}

func (q *InsertQuery) setUpdate(condition bool, field string, value any) *InsertQuery {
	if !condition || q.err != nil {
		return q
	}
	if blank(field) {
		q.fail(fmt.Errorf("%w: field name is empty", ErrInvalidArgument))
		return q
	}
	expr, param := values.Render(values.Update, field, value)
	if param != nil {
		q.bind(*param)
	}
	q.updates.Set(field, expr)
	return q
}

// Database returns the target database name.
func (q *InsertQuery) Database() string { return q.database }

// Table returns the target table name.
func (q *InsertQuery) Table() string { return q.table }

// InsertColumns returns the column-list field names in registration order.
func (q *InsertQuery) InsertColumns() []string { return q.inserts.Fields() }

// InsertExprs returns the rendered column-list expressions, index-aligned
// with InsertColumns.
func (q *InsertQuery) InsertExprs() []string { return q.inserts.Values() }

// UpdateColumns returns the ON DUPLICATE KEY UPDATE field names in
// registration order.
func (q *InsertQuery) UpdateColumns() []string { return q.updates.Fields() }

// UpdateExprs returns the rendered update expressions, index-aligned with
// UpdateColumns.
func (q *InsertQuery) UpdateExprs() []string { return q.updates.Values() }

// Err returns the sticky builder error, if any. After the first failure all
// further mutations are no-ops and the render methods return the same error.
func (q *InsertQuery) Err() error { return q.err }

// Params returns a copy of the parameter bindings, keyed by placeholder
// name exactly as it appears in the rendered text (including the @ prefix).
func (q *InsertQuery) Params() map[string]any {
	out := make(map[string]any, q.params.Len())
	for _, e := range q.params.Entries() {
		out[e.Field] = e.Value
	}
	return out
}

// Parameters returns the bindings in emission order.
func (q *InsertQuery) Parameters() []values.Parameter {
	out := make([]values.Parameter, 0, q.params.Len())
	for _, e := range q.params.Entries() {
		out = append(out, values.Parameter{Name: e.Field, Value: e.Value})
	}
	return out
}

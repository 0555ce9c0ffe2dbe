package statements

import "strings"

// Statement bundles rendered SQL with its parameter bindings for handoff to
// the execution layer. Params may carry bindings the text no longer
// references; the execution layer ignores those.
type Statement struct {
	SQL    string
	Params map[string]any
}

// SQL renders the statement text:
//
//	INSERT INTO <database>.<table> (<col>, ...) VALUES (<expr>, ...)
//	ON DUPLICATE KEY UPDATE <col> = <expr>, ...
//
// The update clause is appended on a new line only when update fields are
// registered. Rendering never mutates the builder and may be repeated.
func (q *InsertQuery) SQL() (string, error) {
	if q.err != nil {
		return "", q.err
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(q.database)
	sb.WriteString(".")
	sb.WriteString(q.table)
	sb.WriteString(" (")
	sb.WriteString(strings.Join(q.inserts.Fields(), ", "))
	sb.WriteString(") VALUES (")
	sb.WriteString(strings.Join(q.inserts.Values(), ", "))
	sb.WriteString(")")

	if q.updates.Len() > 0 {
		sb.WriteString("\nON DUPLICATE KEY UPDATE ")
		assignments := make([]string, 0, q.updates.Len())
		for _, e := range q.updates.Entries() {
			assignments = append(assignments, e.Field+" = "+e.Value)
		}
		sb.WriteString(strings.Join(assignments, ", "))
	}

	return sb.String(), nil
}

// Statement renders the SQL and bundles it with the current bindings.
func (q *InsertQuery) Statement() (Statement, error) {
	sql, err := q.SQL()
	if err != nil {
		return Statement{}, err
	}
	return Statement{SQL: sql, Params: q.Params()}, nil
}

// String implements fmt.Stringer for logs and debugging. An errored builder
// renders as the error text.
func (q *InsertQuery) String() string {
	sql, err := q.SQL()
	if err != nil {
		return err.Error()
	}
	return sql
}

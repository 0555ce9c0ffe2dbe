package statements

import (
	"errors"
	"fmt"
	"strings"

	"github.com/radtek/insertq/fields"
	"github.com/radtek/insertq/values"
)

// ErrInvalidArgument reports a blank database, table, or field identifier.
// Match with errors.Is; the wrapped message names the offending argument.
var ErrInvalidArgument = errors.New("insertq: invalid argument")

// statementContext is the shared base for statement builders. It holds the
// target identifiers, the accumulated parameter bindings, and the sticky
// error that freezes the builder after the first failure.
type statementContext struct {
	database string
	table    string
	params   *fields.Map[any]
	err      error
}

func newStatementContext(database, table string) statementContext {
	ctx := statementContext{
		database: database,
		table:    table,
		params:   fields.NewMap[any](),
	}
	if blank(database) {
		ctx.fail(fmt.Errorf("%w: database name is empty", ErrInvalidArgument))
	} else if blank(table) {
		ctx.fail(fmt.Errorf("%w: table name is empty", ErrInvalidArgument))
	}
	return ctx
}

// fail records err unless an earlier failure already froze the builder.
func (c *statementContext) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

// bind stores a parameter under its placeholder name, replacing any earlier
// binding with the same name. Bindings under other names are never removed;
// a binding orphaned by re-registration simply goes unreferenced.
func (c *statementContext) bind(p values.Parameter) {
	c.params.Set(p.Name, p.Value)
}

// blank reports whether s is empty or whitespace-only.
func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

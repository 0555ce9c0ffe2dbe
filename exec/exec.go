// Package exec runs built statements against database/sql connections.
//
// The builder renders named @placeholders, but the MySQL wire protocol
// takes positional ? markers, so execution expands the statement first:
// every placeholder becomes ? and its bound value joins the argument list
// in first-occurrence order.
package exec

import (
	"context"
	"database/sql"
	"errors"

	"github.com/radtek/insertq/statements"
)

// Execer is the subset of *sql.DB, *sql.Tx, and *sql.Conn needed to run a
// statement.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Config bounds placeholder expansion. Zero values disable the respective
// check.
type Config struct {
	// MaxParams caps the number of placeholders in one statement.
	MaxParams int
	// MaxNameLen caps the length of a placeholder name (without the @).
	MaxNameLen int
}

// DefaultConfig returns the MySQL limits: 65535 placeholders per statement
// and 64-character names.
func DefaultConfig() Config {
	return Config{MaxParams: 65535, MaxNameLen: 64}
}

var (
	// ErrParamMissing reports a placeholder with no binding under its name.
	ErrParamMissing = errors.New("insertq: parameter missing")
	// ErrTooManyParams reports a statement exceeding Config.MaxParams.
	ErrTooManyParams = errors.New("insertq: too many parameters")
	// ErrParamNameTooLong reports a placeholder name exceeding Config.MaxNameLen.
	ErrParamNameTooLong = errors.New("insertq: parameter name too long")
)

// Exec expands stmt with the default config and runs it on e.
func Exec(ctx context.Context, e Execer, stmt statements.Statement) (sql.Result, error) {
	return ExecConfig(ctx, e, stmt, DefaultConfig())
}

// ExecConfig expands stmt with cfg and runs it on e.
func ExecConfig(ctx context.Context, e Execer, stmt statements.Statement, cfg Config) (sql.Result, error) {
	query, args, err := Expand(stmt.SQL, stmt.Params, cfg)
	if err != nil {
		return nil, err
	}
	return e.ExecContext(ctx, query, args...)
}

// Package insertq builds parameterized MySQL INSERT statements, optionally
// upgraded to upserts via ON DUPLICATE KEY UPDATE.
//
// This package re-exports commonly used types and functions from subpackages
// for convenience. Advanced users can import subpackages directly:
//   - github.com/radtek/insertq/statements (statement builder)
//   - github.com/radtek/insertq/values (value classification, placeholders)
//   - github.com/radtek/insertq/fields (ordered field maps)
//   - github.com/radtek/insertq/exec (execution against database/sql)
package insertq

import (
	"context"
	"database/sql"

	"github.com/radtek/insertq/exec"
	"github.com/radtek/insertq/statements"
	"github.com/radtek/insertq/values"
)

// --- Builder Types ---

// InsertQuery builds a MySQL INSERT / upsert statement.
type InsertQuery = statements.InsertQuery

// Statement bundles rendered SQL with its parameter bindings.
type Statement = statements.Statement

// Parameter is a placeholder name bound to its original value.
type Parameter = values.Parameter

// New creates an InsertQuery targeting database.table.
func New(database, table string) *InsertQuery {
	return statements.New(database, table)
}

// --- Execution ---

// Execer is the subset of *sql.DB, *sql.Tx, and *sql.Conn needed to run a
// statement.
type Execer = exec.Execer

// Config bounds placeholder expansion during execution.
type Config = exec.Config

// DefaultConfig returns the MySQL expansion limits.
func DefaultConfig() Config {
	return exec.DefaultConfig()
}

// Exec expands stmt's @placeholders to ? markers and runs it on e.
func Exec(ctx context.Context, e Execer, stmt Statement) (sql.Result, error) {
	return exec.Exec(ctx, e, stmt)
}

// Expand rewrites @name placeholders to ? and returns driver args in
// first-occurrence order.
func Expand(query string, params map[string]any, cfg Config) (string, []any, error) {
	return exec.Expand(query, params, cfg)
}

// --- Errors ---

// ErrInvalidArgument reports a blank database, table, or field identifier.
var ErrInvalidArgument = statements.ErrInvalidArgument

// ErrParamMissing reports a placeholder with no binding under its name.
var ErrParamMissing = exec.ErrParamMissing

// ErrTooManyParams reports a statement exceeding Config.MaxParams.
var ErrTooManyParams = exec.ErrTooManyParams

// ErrParamNameTooLong reports a placeholder name exceeding Config.MaxNameLen.
var ErrParamNameTooLong = exec.ErrParamNameTooLong

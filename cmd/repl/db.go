package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/go-sql-driver/mysql"
)

type schemaCache struct {
	targets []string            // qualified db.table names
	columns map[string][]string // db.table -> column names
}

type dbConn struct {
	db     *sql.DB
	dsn    string
	schema schemaCache
}

func connect(dsn string) (*dbConn, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	conn := &dbConn{db: db, dsn: dsn}
	conn.schema.columns = make(map[string][]string)
	if err := conn.loadSchema(); err != nil {
		// Non-fatal: schema introspection is best-effort for autocomplete.
		fmt.Fprintf(os.Stderr, "  Note: schema introspection failed: %v\n", err)
	}
	return conn, nil
}

func (c *dbConn) close() error {
	return c.db.Close()
}

// execStatement runs an INSERT (or any non-query statement) and formats the
// driver's result summary.
func (c *dbConn) execStatement(sqlStr string, args []any) (string, error) {
	res, err := c.db.ExecContext(context.Background(), sqlStr, args...)
	if err != nil {
		return "", fmt.Errorf("exec: %w", err)
	}
	return formatResult(res), nil
}

// formatResult summarises rows affected and, when the driver reports one,
// the last insert id. MySQL reports 2 affected rows for an upsert that took
// the UPDATE arm.
func formatResult(res sql.Result) string {
	var b strings.Builder

	affected, err := res.RowsAffected()
	if err != nil {
		b.WriteString("OK\n")
		return b.String()
	}
	if affected == 1 {
		b.WriteString("(1 row affected)\n")
	} else {
		fmt.Fprintf(&b, "(%d rows affected)\n", affected)
	}

	if id, err := res.LastInsertId(); err == nil && id > 0 {
		fmt.Fprintf(&b, "(last insert id %d)\n", id)
	}
	return b.String()
}

func (c *dbConn) loadSchema() error {
	const query = `SELECT table_schema, table_name FROM information_schema.tables
		WHERE table_schema NOT IN ('mysql', 'information_schema', 'performance_schema', 'sys')
		ORDER BY table_schema, table_name`

	rows, err := c.db.Query(query)
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()

	var targets []string
	for rows.Next() {
		var schema, name string
		if err := rows.Scan(&schema, &name); err != nil {
			return err
		}
		targets = append(targets, schema+"."+name)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	c.schema.targets = targets
	return nil
}

func (c *dbConn) schemaTargets() []string {
	return c.schema.targets
}

// schemaColumns returns the column names for a qualified db.table target,
// caching per target.
func (c *dbConn) schemaColumns(target string) []string {
	if cols, ok := c.schema.columns[target]; ok {
		return cols
	}
	database, table, err := parseTarget(target)
	if err != nil {
		return nil
	}
	const query = `SELECT column_name FROM information_schema.columns
		WHERE table_schema = ? AND table_name = ? ORDER BY ordinal_position`
	cols, err := c.queryStringColumn(query, database, table)
	if err != nil {
		return nil
	}
	c.schema.columns[target] = cols
	return cols
}

func (c *dbConn) queryStringColumn(query string, params ...any) ([]string, error) {
	rows, err := c.db.Query(query, params...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var result []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

// sanitizeDSN masks the password in a MySQL DSN (user:pass@tcp(host)/db).
func sanitizeDSN(dsn string) string {
	if atIdx := strings.Index(dsn, "@"); atIdx > 0 {
		userPass := dsn[:atIdx]
		if colonIdx := strings.Index(userPass, ":"); colonIdx >= 0 {
			return userPass[:colonIdx+1] + "****" + dsn[atIdx:]
		}
	}
	return dsn
}

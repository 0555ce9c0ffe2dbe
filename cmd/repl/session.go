package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ergochat/readline"

	"github.com/radtek/insertq/exec"
	"github.com/radtek/insertq/statements"
	"github.com/radtek/insertq/values"
)

var errNoStatement = errors.New("no statement defined (use 'into <db>.<table>' first)")

// Session holds the REPL state: the statement under construction, the
// database connection, and the command registry.
type Session struct {
	q        *statements.InsertQuery // nil until 'into'
	commands []commandEntry          // command registry (sorted by prefix length desc)
	conn     *dbConn                 // nil when disconnected
	lastDSN  string                  // remembers the previous DSN for reconnect
	rl       *readline.Instance
	out      io.Writer // destination for REPL output (default os.Stdout)
}

// NewSession creates an empty session.
func NewSession(rl *readline.Instance) *Session {
	s := &Session{
		rl:  rl,
		out: os.Stdout,
	}
	s.initCommands()
	return s
}

// statement renders the current statement, surfacing any builder error.
func (s *Session) statement() (statements.Statement, error) {
	if s.q == nil {
		return statements.Statement{}, errNoStatement
	}
	if err := s.q.Err(); err != nil {
		return statements.Statement{}, err
	}
	return s.q.Statement()
}

// Execute parses and runs a single REPL command.
func (s *Session) Execute(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	lower := strings.ToLower(line)

	for _, cmd := range s.commands {
		if strings.HasSuffix(cmd.prefix, " ") {
			if strings.HasPrefix(lower, cmd.prefix) {
				return cmd.handler(line[len(cmd.prefix):])
			}
		} else {
			if lower == cmd.prefix {
				return cmd.handler("")
			}
		}
	}

	word := strings.Fields(line)[0]
	return fmt.Errorf("unknown command: %s (type 'help' for commands)", word)
}

// --- Command handlers ---

func (s *Session) cmdInto(args string) error {
	database, table, err := parseTarget(strings.TrimSpace(args))
	if err != nil {
		return err
	}
	q := statements.New(database, table)
	if err := q.Err(); err != nil {
		return err
	}
	s.q = q
	_, _ = fmt.Fprintf(s.out, "  INSERT INTO %s.%s\n", database, table)
	return nil
}

func (s *Session) cmdSet(args string) error {
	if s.q == nil {
		return errNoStatement
	}
	field, value, condition, err := parseAssignment(args)
	if err != nil {
		return err
	}
	s.q.SetInsertIf(condition, field, value)
	if err := s.q.Err(); err != nil {
		return err
	}
	if !condition {
		_, _ = fmt.Fprintf(s.out, "  set %s skipped (condition false)\n", field)
		return nil
	}
	expr, _ := values.Render(values.Insert, field, value)
	_, _ = fmt.Fprintf(s.out, "  set %s = %s\n", field, expr)
	return nil
}

func (s *Session) cmdUpsert(args string) error {
	if s.q == nil {
		return errNoStatement
	}
	field, value, condition, err := parseAssignment(args)
	if err != nil {
		return err
	}
	s.q.SetInsertUpdateIf(condition, field, value)
	if err := s.q.Err(); err != nil {
		return err
	}
	if !condition {
		_, _ = fmt.Fprintf(s.out, "  upsert %s skipped (condition false)\n", field)
		return nil
	}
	insExpr, _ := values.Render(values.Insert, field, value)
	updExpr, _ := values.Render(values.Update, field, value)
	_, _ = fmt.Fprintf(s.out, "  upsert %s = %s (update %s)\n", field, insExpr, updExpr)
	return nil
}

func (s *Session) cmdUpdate(args string) error {
	if s.q == nil {
		return errNoStatement
	}
	field, value, condition, err := parseAssignment(args)
	if err != nil {
		return err
	}
	s.q.SetUpdateIf(condition, field, value)
	if err := s.q.Err(); err != nil {
		return err
	}
	if !condition {
		_, _ = fmt.Fprintf(s.out, "  update %s skipped (condition false)\n", field)
		return nil
	}
	expr, _ := values.Render(values.Update, field, value)
	_, _ = fmt.Fprintf(s.out, "  update %s = %s\n", field, expr)
	return nil
}

func (s *Session) cmdSQL() error {
	stmt, err := s.statement()
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(s.out, "  %s;\n", indentContinuation(stmt.SQL))
	return nil
}

// cmdFields displays a summary of the statement under construction,
// showing the target and each registered column with its rendered
// expression.
func (s *Session) cmdFields() error {
	if s.q == nil {
		return errNoStatement
	}

	_, _ = fmt.Fprintf(s.out, "  Target: %s.%s\n", s.q.Database(), s.q.Table())
	cols, exprs := s.q.InsertColumns(), s.q.InsertExprs()
	for i, col := range cols {
		_, _ = fmt.Fprintf(s.out, "  INSERT[%d]: %s = %s\n", i, col, exprs[i])
	}
	cols, exprs = s.q.UpdateColumns(), s.q.UpdateExprs()
	for i, col := range cols {
		_, _ = fmt.Fprintf(s.out, "  UPDATE[%d]: %s = %s\n", i, col, exprs[i])
	}
	if n := len(s.q.Parameters()); n > 0 {
		_, _ = fmt.Fprintf(s.out, "  Params: %d bound\n", n)
	}
	if s.conn != nil {
		_, _ = fmt.Fprintf(s.out, "  Connected: %s\n", sanitizeDSN(s.conn.dsn))
	}
	return nil
}

func (s *Session) cmdParams() error {
	if s.q == nil {
		return errNoStatement
	}
	params := s.q.Parameters()
	if len(params) == 0 {
		_, _ = fmt.Fprintln(s.out, "  No parameters bound")
		return nil
	}
	for _, p := range params {
		_, _ = fmt.Fprintf(s.out, "  %s = %v\n", p.Name, p.Value)
	}
	return nil
}

// cmdExpand shows the driver-ready form of the statement: ? placeholders
// plus the positional argument list.
func (s *Session) cmdExpand() error {
	stmt, err := s.statement()
	if err != nil {
		return err
	}
	query, args, err := exec.Expand(stmt.SQL, stmt.Params, exec.DefaultConfig())
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(s.out, "  %s;\n", indentContinuation(query))
	if len(args) > 0 {
		_, _ = fmt.Fprintf(s.out, "  Args: %v\n", args)
	}
	return nil
}

func (s *Session) cmdConnect(args string) error {
	dsn := strings.TrimSpace(args)

	if s.conn != nil {
		return fmt.Errorf("already connected to %s (use 'disconnect' first)", sanitizeDSN(s.conn.dsn))
	}

	// Direct DSN provided — connect immediately.
	if dsn != "" {
		return s.connectWithDSN(dsn)
	}

	// Interactive: offer reconnect if we have a previous DSN, otherwise wizard.
	if s.lastDSN != "" {
		choice := prompt(s.rl, fmt.Sprintf("Reconnect to %s? (y/n/setup)", sanitizeDSN(s.lastDSN)), "y")
		switch strings.ToLower(choice) {
		case "y", "yes":
			return s.connectWithDSN(s.lastDSN)
		case "s", "setup":
			return s.connectViaWizard()
		default:
			_, _ = fmt.Fprintln(s.out, "  Connect cancelled")
			return nil
		}
	}

	return s.connectViaWizard()
}

func (s *Session) connectWithDSN(dsn string) error {
	conn, err := connect(dsn)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	s.conn = conn
	s.lastDSN = dsn
	_, _ = fmt.Fprintf(s.out, "  Connected to %s\n", sanitizeDSN(dsn))
	return nil
}

func (s *Session) connectViaWizard() error {
	dsn := buildMySQLDSN(s.rl)
	if dsn == "" {
		_, _ = fmt.Fprintln(s.out, "  No connection configured")
		return nil
	}

	_, _ = fmt.Fprintf(s.out, "  DSN: %s\n", sanitizeDSN(dsn))
	return s.connectWithDSN(dsn)
}

func (s *Session) cmdDisconnect() error {
	if s.conn == nil {
		return errors.New("not connected")
	}
	dsn := sanitizeDSN(s.conn.dsn)
	if err := s.conn.close(); err != nil {
		return fmt.Errorf("disconnect: %w", err)
	}
	s.conn = nil
	_, _ = fmt.Fprintf(s.out, "  Disconnected from %s\n", dsn)
	return nil
}

// cmdExec expands the current statement to driver form and executes it
// against the connected database.
func (s *Session) cmdExec() error {
	if s.conn == nil {
		return errors.New("not connected (use 'connect <dsn>' first)")
	}

	stmt, err := s.statement()
	if err != nil {
		return err
	}
	query, args, err := exec.Expand(stmt.SQL, stmt.Params, exec.DefaultConfig())
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(s.out, "  %s;\n", indentContinuation(query))
	if len(args) > 0 {
		_, _ = fmt.Fprintf(s.out, "  Args: %v\n", args)
	}

	result, err := s.conn.execStatement(query, args)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprint(s.out, result)
	return nil
}

func (s *Session) cmdReset() error {
	s.q = nil
	_, _ = fmt.Fprintln(s.out, "  Statement cleared")
	return nil
}

func (s *Session) cmdHelp() {
	_, _ = fmt.Fprintln(s.out, `
  Statement Building:
    into <db>.<table>         Start an INSERT statement
    set <field> <value>       Register a column in the insert list
    upsert <field> <value>    Register for insert and ON DUPLICATE KEY UPDATE
    update <field> <value>    Register for the update clause only
    ... if <true|false>       Gate any registration on a condition

  Value syntax:
    'text'                    Bound as a named @parameter
    42, 1.5                   Inlined as quoted numeric literals ('42')
    true / false              Inlined as 1 / 0
    null                      Inlined as NULL

  Output:
    sql                       Show the statement (alias: tosql)
    fields                    Show registered columns and expressions
    params                    Show named parameter bindings
    expand                    Show driver-ready SQL with ? placeholders
    exec                      Execute against the connected DB (alias: run)

  Connection:
    connect [dsn]             Connect (provide DSN, reconnect, or setup wizard)
    disconnect                Close database connection

  Session:
    reset                     Discard the current statement
    help                      Show this help
    exit / quit               Exit the REPL

  DSN format:
    mysql:    user:pass@tcp(host:3306)/dbname

  Examples:
    into db.t
    upsert userName 'alice'
    set active true
    set note null if false
    sql
    params
    expand
    connect root:secret@tcp(localhost:3306)/db
    exec

  Readline:
    Tab             Auto-complete commands, db.table targets, columns
    Up/Down         Navigate command history
    Ctrl+A/E        Move to start/end of line
    Ctrl+R          Reverse history search
    Ctrl+C          Cancel current line`)
}

// indentContinuation keeps multi-line SQL aligned with the two-space
// output gutter.
func indentContinuation(sql string) string {
	return strings.ReplaceAll(sql, "\n", "\n  ")
}

package exec

import (
	"context"
	"database/sql"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"

	"github.com/radtek/insertq/internal/testutil"
	"github.com/radtek/insertq/statements"
)

func newMockDB(t testing.TB) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	return db, mock
}

// execCatcher records the query and args forwarded to the driver.
type execCatcher struct {
	lastQuery string
	lastArgs  []any
}

type dummyResult struct{ id, rows int64 }

func (d dummyResult) LastInsertId() (int64, error) { return d.id, nil }
func (d dummyResult) RowsAffected() (int64, error) { return d.rows, nil }

func (e *execCatcher) ExecContext(_ context.Context, query string, args ...any) (sql.Result, error) {
	e.lastQuery = query
	e.lastArgs = append([]any(nil), args...)
	return dummyResult{id: 1, rows: int64(len(args))}, nil
}

// --- Forwarding ---

func TestExecForwardsExpandedQueryAndArgs(t *testing.T) {
	t.Parallel()
	stmt, err := statements.New("mydb", "users").
		SetInsert("id", 5).
		SetInsertUpdate("userName", "alice").
		Statement()
	testutil.AssertNoError(t, err)

	ec := &execCatcher{}
	res, err := Exec(context.Background(), ec, stmt)
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, ec.lastQuery,
		"INSERT INTO mydb.users (id, userName) VALUES ('5', ?)\n"+
			"ON DUPLICATE KEY UPDATE userName = ?")
	if len(ec.lastArgs) != 2 {
		t.Fatalf("expected 2 args forwarded, got %v", ec.lastArgs)
	}
	if ec.lastArgs[0] != "alice" || ec.lastArgs[1] != "alice" {
		t.Errorf("expected both args to be %q, got %v", "alice", ec.lastArgs)
	}
	rows, err := res.RowsAffected()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, rows, int64(2))
}

func TestExecLiteralOnlyStatement(t *testing.T) {
	t.Parallel()
	stmt, err := statements.New("db", "t").SetInsert("active", true).Statement()
	testutil.AssertNoError(t, err)

	ec := &execCatcher{}
	_, err = Exec(context.Background(), ec, stmt)
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, ec.lastQuery, "INSERT INTO db.t (active) VALUES (1)")
	testutil.AssertEqual(t, len(ec.lastArgs), 0)
}

// --- Driver-level round trip ---

func TestExecAgainstMockDriver(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	defer db.Close()

	mock.ExpectExec(".*").
		WithArgs("alice").
		WillReturnResult(sqlmock.NewResult(7, 1))

	stmt, err := statements.New("db", "users").SetInsert("name", "alice").Statement()
	testutil.AssertNoError(t, err)

	res, err := Exec(context.Background(), db, stmt)
	testutil.AssertNoError(t, err)

	id, err := res.LastInsertId()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, id, int64(7))

	testutil.AssertNoError(t, mock.ExpectationsWereMet())
}

func TestExecWithinTransaction(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(".*").
		WithArgs("bob").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	testutil.AssertNoError(t, err)

	stmt, err := statements.New("db", "users").SetInsert("name", "bob").Statement()
	testutil.AssertNoError(t, err)

	// *sql.Tx satisfies Execer.
	_, err = Exec(context.Background(), tx, stmt)
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, tx.Commit())

	testutil.AssertNoError(t, mock.ExpectationsWereMet())
}

// --- Expansion failures ---

func TestExecStopsOnExpansionFailure(t *testing.T) {
	t.Parallel()
	ec := &execCatcher{}
	stmt := statements.Statement{SQL: "VALUES (@missing)", Params: nil}

	_, err := Exec(context.Background(), ec, stmt)
	testutil.AssertErrorIs(t, err, ErrParamMissing)
	if ec.lastQuery != "" {
		t.Errorf("expected no driver call after expansion failure, got %q", ec.lastQuery)
	}
}

func TestExecConfigEnforcesLimits(t *testing.T) {
	t.Parallel()
	stmt, err := statements.New("db", "t").
		SetInsert("a", "x").
		SetInsert("b", "y").
		Statement()
	testutil.AssertNoError(t, err)

	ec := &execCatcher{}
	_, err = ExecConfig(context.Background(), ec, stmt, Config{MaxParams: 1})
	testutil.AssertErrorIs(t, err, ErrTooManyParams)
}

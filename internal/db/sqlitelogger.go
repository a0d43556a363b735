package db

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"log/slog"

	sqlite3 "github.com/mattn/go-sqlite3"
)

// NewLoggingConnector returns a connector for go-sqlite3 whose connections
// log every statement at debug level as an "sql" record with op, sql and
// args. Use it with sql.OpenDB. A nil logger means slog.Default().
func NewLoggingConnector(dsn string, logger *slog.Logger) (driver.Connector, error) {
	if dsn == "" {
		return nil, errors.New("sqlite connector: empty dsn")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &loggingConnector{dsn: dsn, logger: logger}, nil
}

type loggingConnector struct {
	dsn    string
	logger *slog.Logger
	driver sqlite3.SQLiteDriver
}

func (c *loggingConnector) Driver() driver.Driver {
	return &c.driver
}

func (c *loggingConnector) Connect(_ context.Context) (driver.Conn, error) {
	conn, err := c.driver.Open(c.dsn)
	if err != nil {
		return nil, err
	}
	sc, ok := conn.(*sqlite3.SQLiteConn)
	if !ok {
		_ = conn.Close()
		return nil, fmt.Errorf("sqlite connector: unexpected connection type %T", conn)
	}
	c.logger.Debug("sqlite connection opened", "dsn", c.dsn)
	return &loggingConn{SQLiteConn: sc, logger: c.logger}, nil
}

// loggingConn intercepts the statement paths database/sql takes on a
// go-sqlite3 connection; transactions, ping and close pass straight through.
// Conn-level exec keeps multi-statement scripts working, since a prepared
// statement only runs the first statement of a script.
type loggingConn struct {
	*sqlite3.SQLiteConn
	logger *slog.Logger
}

func (c *loggingConn) ExecContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	logStatement(c.logger, "exec", query, args)
	return c.SQLiteConn.ExecContext(ctx, query, args)
}

func (c *loggingConn) QueryContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	logStatement(c.logger, "query", query, args)
	return c.SQLiteConn.QueryContext(ctx, query, args)
}

func (c *loggingConn) Prepare(query string) (driver.Stmt, error) {
	return c.PrepareContext(context.Background(), query)
}

func (c *loggingConn) PrepareContext(ctx context.Context, query string) (driver.Stmt, error) {
	stmt, err := c.SQLiteConn.PrepareContext(ctx, query)
	if err != nil {
		return nil, err
	}
	return &loggingStmt{SQLiteStmt: stmt.(*sqlite3.SQLiteStmt), query: query, logger: c.logger}, nil
}

type loggingStmt struct {
	*sqlite3.SQLiteStmt
	query  string
	logger *slog.Logger
}

func (s *loggingStmt) ExecContext(ctx context.Context, args []driver.NamedValue) (driver.Result, error) {
	logStatement(s.logger, "exec", s.query, args)
	return s.SQLiteStmt.ExecContext(ctx, args)
}

func (s *loggingStmt) QueryContext(ctx context.Context, args []driver.NamedValue) (driver.Rows, error) {
	logStatement(s.logger, "query", s.query, args)
	return s.SQLiteStmt.QueryContext(ctx, args)
}

func logStatement(logger *slog.Logger, op, query string, args []driver.NamedValue) {
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	logger.Debug("sql", "op", op, "sql", query, "args", statementArgs(args))
}

// statementArgs renders bound values for the log; named parameters keep
// their name as "name=value".
func statementArgs(args []driver.NamedValue) []string {
	out := make([]string, len(args))
	for i, a := range args {
		v := formatArg(a.Value)
		if a.Name != "" {
			v = a.Name + "=" + v
		}
		out[i] = v
	}
	return out
}

func formatArg(v any) string {
	switch t := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(t)
	default:
		return fmt.Sprint(t)
	}
}

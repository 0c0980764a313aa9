package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

type QueryI interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// ConnectorI yields the query handle lazily so the database is only dialled
// when a quiz is first read or written.
type ConnectorI interface {
	Query(ctx context.Context) (QueryI, error)
}

type SQLXConnector interface {
	Conn(ctx context.Context) (*sqlx.DB, error)
}

type sqlxConn struct {
	conn SQLXConnector
}

func FromSQLX(conn SQLXConnector) ConnectorI {
	return sqlxConn{conn: conn}
}

func (s sqlxConn) Query(ctx context.Context) (QueryI, error) {
	db, err := s.conn.Conn(ctx)
	if err != nil {
		return nil, err
	}
	return db, nil
}

type Repository struct {
	*QuizR
}

func NewRepository(conn ConnectorI) Repository {
	return Repository{
		QuizR: NewQuizRepository(conn),
	}
}

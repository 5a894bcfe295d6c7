package postgres

import (
	"context"
	"database/sql"
)

// sqlQuerier adapts *sql.DB to DB so the source can be tested without a driver.
type sqlQuerier struct {
	db *sql.DB
}

func NewSQLDB(db *sql.DB) DB {
	return &sqlQuerier{db: db}
}

func (q *sqlQuerier) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

var _ RowScanner = (*sql.Rows)(nil)

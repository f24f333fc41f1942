package postgres

import (
	"database/sql"

	"github.com/jackc/pgx/v5/pgtype"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// textArray returns a sql.Scanner that decodes a text[] column into dst.
// A pgtype.Map caches scan plans and is not safe for concurrent use, so each
// scanner gets its own.
func textArray(dst *[]string) sql.Scanner {
	return pgtype.NewMap().SQLScanner(dst)
}

// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces defined in the internal/store package.
// It handles query execution and data mapping between domain entities and
// database records. Connections go through database/sql with the pgx stdlib
// driver; array columns are scanned with a pgtype.Map.
//
// The schema lives in the migrations subpackage and is applied with goose.
package postgres

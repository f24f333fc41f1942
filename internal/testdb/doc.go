// Package testdb provides utilities specifically for database testing.
//
// Integration tests call Open, which skips the test unless DATABASE_URL (or
// SHOP_TEST_DB_URL) points at a PostgreSQL instance, applies the embedded
// goose migrations and returns a connection. WithTx runs a test body inside a
// transaction that is always rolled back, so tests never see each other's rows.
package testdb

// Package mocks provides centralized test doubles for the store and auth
// interfaces.
//
// Two styles are offered. UserStore is a testify/mock mock driven by
// expectations. ProductStore is an in-memory fake that behaves like the
// PostgreSQL store closely enough for service tests: it enforces the unique
// title and slug, orders by insertion, and rolls back on a failed
// transaction. Its *Err fields inject failures.
//
// Usage:
//
//	products := mocks.NewProductStore()
//	products.SaveErr = errors.New("connection reset")
//
//	svc, _ := service.NewProductService(products, logger)
package mocks

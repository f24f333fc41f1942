// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the application's core logic, allowing business rules to remain
// independent of specific database technologies or persistence details.
//
// RunInTransaction is the unit of work: stores obtained through WithTx
// inside it share one transaction that is committed or rolled back as a whole.
package store

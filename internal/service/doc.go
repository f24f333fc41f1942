// Package service contains the application use cases of the shop: product
// catalog writes and reads, user registration and login, and the catalog
// seed.
//
// Services receive their stores through constructor injection and never
// depend on a concrete database. Product writes that touch more than one
// table run through ProductRepository.InTransaction, which commits or rolls
// back as a unit and always releases the transaction.
//
// Storage failures are translated in one place (translateStoreError):
// uniqueness violations become an OperationError of kind
// ErrDuplicateResource, not-found and validation errors pass through, and
// everything else becomes ErrInternal. The API layer maps these kinds to
// status codes.
package service

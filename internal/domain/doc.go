// Package domain contains the core business entities of the shop: users
// with their roles, and products with their ordered images.
//
// Entities validate themselves; every validation failure wraps ErrValidation.
// The package has no knowledge of storage or transport.
package domain

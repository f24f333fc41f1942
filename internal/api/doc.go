// Package api implements the HTTP surface of the shop: authentication,
// the product catalog, seeding and health checks.
//
// Handlers decode and validate request DTOs, call into the service layer and
// translate errors in one place (HandleAPIError), so status codes and client
// messages stay consistent across endpoints. Client messages never carry
// internal details; the full error is logged with credentials redacted.
package api

// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured JSON logging
// with configurable log levels. Request-scoped loggers travel in the context so
// that trace IDs attached by the HTTP middleware reach the store layer.
package logger

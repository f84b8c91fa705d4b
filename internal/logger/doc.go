// Package logger provides a small wrapper around zap to offer:
//   - a global sugared logger writing console-encoded entries to stderr,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level parsing and a per-logger level override option.
//
// Standard output belongs to the command result, so nothing here ever writes there.
// Callers pass a context and extract the logger from it.
package logger

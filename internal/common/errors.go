package common

import (
	"errors"
	"fmt"
)

// Error taxonomy for the intake pipeline and record store. Callers match with
// errors.Is; the HTTP layer maps each class to a status code.
var (
	// ErrUnsupportedFormat — unrecognized file extension; terminal, pick another file.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrFileRead — local read or delegated text-extraction failure.
	ErrFileRead = errors.New("file read failed")
	// ErrServiceUnavailable — missing or invalid extraction credentials;
	// terminal until configuration is fixed, never auto-retried.
	ErrServiceUnavailable = errors.New("extraction service unavailable")
	// ErrSchemaViolation — extraction response did not conform to the schema.
	ErrSchemaViolation = errors.New("extraction response violates schema")
	// ErrNetwork — transport failure; the only class eligible for operator retry.
	ErrNetwork = errors.New("network failure")
	// ErrNotFound — store operation referencing an unknown id.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidInput — malformed request data.
	ErrInvalidInput = errors.New("invalid input")
	// ErrScanInFlight — a scan was requested while one is already running.
	ErrScanInFlight = errors.New("scan already in flight")
	// ErrNoDocument — scan requested before any file was selected.
	ErrNoDocument = errors.New("no document selected")
	// ErrSuperseded — the session was replaced by a newer file selection
	// while this operation was in flight; its result was discarded.
	ErrSuperseded = errors.New("session superseded by a newer selection")
)

// WrapError annotates err with a message, preserving the error class for errors.Is.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

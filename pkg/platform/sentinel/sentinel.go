package sentinel

import "errors"

// Sentinel errors for store facts. The in-memory stores return these
// (optionally wrapped) so services can translate them into domain errors.
//
// These represent factual states about records, not validation failures:
// - ErrNotFound: record does not exist in store
// - ErrConflict: record with the same key already exists
//
// For validation errors (bad input, malformed fields), use pkg/domain-errors
// directly.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

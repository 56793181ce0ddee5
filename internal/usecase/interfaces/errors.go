package interfaces

import "errors"

// Storage-level outcomes every persistence adapter maps its native errors to.
var (
	// ErrDuplicate is a violated uniqueness rule (email, session token,
	// one quotation per request and vendor).
	ErrDuplicate = errors.New("duplicate record")
	// ErrConditionFailed is a conditional write whose guard no longer holds,
	// e.g. a status that moved underneath the caller.
	ErrConditionFailed = errors.New("write condition failed")
	// ErrParentNotFound is a write that references a missing parent row.
	ErrParentNotFound = errors.New("parent record not found")
)

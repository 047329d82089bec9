package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Blind box errors
	ErrMsgUnknownCollectionType = "unknown collection type"
	ErrMsgInvalidSlot           = "invalid reward slot"

	// Configuration errors
	ErrMsgInvalidConfiguration = "invalid configuration"

	// Database/System errors
	ErrMsgStorage = "storage error"

	// Stats errors
	ErrMsgInvalidStat = "invalid stat"

	// Permission errors
	ErrMsgPermissionDenied = "permission denied"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Blind box errors
	ErrUnknownCollectionType = errors.New(ErrMsgUnknownCollectionType)
	ErrInvalidSlot           = errors.New(ErrMsgInvalidSlot)

	// Configuration errors. Fatal at startup.
	ErrInvalidConfiguration = errors.New(ErrMsgInvalidConfiguration)

	// Storage errors wrap the underlying driver error.
	ErrStorage = errors.New(ErrMsgStorage)

	// Stats errors
	ErrInvalidStat = errors.New(ErrMsgInvalidStat)

	// Permission errors
	ErrPermissionDenied = errors.New(ErrMsgPermissionDenied)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

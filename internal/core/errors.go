package core

import "errors"

// Exported variables.
var (
	// ErrAmbiguousReturn is returned when a return value is configured on an
	// expectation that already has a custom implementation.
	ErrAmbiguousReturn = errors.New("ambiguous return: expectation already has an implementation")
	// ErrMissingCallback is returned by Invoke when yields are configured but the
	// caller passed no callback to yield to.
	ErrMissingCallback = errors.New("asked to yield but no callback was passed")
	// ErrRaised is the generic failure AndRaise surfaces when given a nil error.
	ErrRaised = errors.New("stubbed failure")
)

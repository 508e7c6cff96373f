package core

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// Option configures an Expectation at construction.
type Option func(*Expectation)

// Options combines several options into one.
func Options(opts ...Option) Option {
	return func(e *Expectation) {
		for _, opt := range opts {
			if opt == nil {
				continue
			}

			opt(e)
		}
	}
}

// WithExpectedCount sets how many calls verification should expect.
func WithExpectedCount(n int) Option {
	return func(e *Expectation) {
		e.Times(n)
	}
}

// WithImplementation installs a custom implementation up front, as
// WithArguments would.
func WithImplementation(impl Implementation) Option {
	return func(e *Expectation) {
		e.impl = impl
	}
}

// WithOrdering stores an opaque handle for an external call sequencer.
func WithOrdering(token OrderingToken) Option {
	return func(e *Expectation) {
		e.ordering = token
	}
}

// WithOrigin overrides the captured provenance of the expectation.
func WithOrigin(origin string) Option {
	return func(e *Expectation) {
		e.origin = origin
	}
}

// WithReporter traces every invocation through t.Logf.
func WithReporter(t TestReporter) Option {
	return func(e *Expectation) {
		e.reporter = t
	}
}

// OrderingToken is an opaque handle to an external sequencing collaborator.
// Expectations store it and hand it back; they never act on it.
type OrderingToken any

// TestReporter is the minimal interface impstub needs from test frameworks.
// *testing.T satisfies it.
type TestReporter interface {
	Helper()
	Logf(format string, args ...any)
}

// CallerOrigin returns "file:line" for the frame skip levels above its caller.
func CallerOrigin(skip int) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "unknown"
	}

	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}

// Package impstub provides the expectation engine of a test-double library.
// An Expectation describes one intercepted method: the arguments it accepts,
// how it reacts when called, and how many times it was called.
//
// This is the public API entry point. Implementation lives in internal/core.
package impstub

import (
	"github.com/toejough/impstub/internal/core"
)

// Exported constants.
const (
	KindAny       = core.KindAny
	KindExact     = core.KindExact
	KindPredicate = core.KindPredicate
)

// Exported variables.
var (
	// ErrAmbiguousReturn is returned when a return value is configured on an
	// expectation that already has a custom implementation.
	ErrAmbiguousReturn = core.ErrAmbiguousReturn
	// ErrMissingCallback is returned by Invoke when yields are configured but no
	// callback was passed.
	ErrMissingCallback = core.ErrMissingCallback
	// ErrRaised is the generic failure AndRaise surfaces for a nil error.
	ErrRaised = core.ErrRaised
)

// ArgumentMatcher decides whether actual call arguments satisfy an expectation.
type ArgumentMatcher = core.ArgumentMatcher

// AnyArgs returns a matcher that accepts every argument list.
func AnyArgs() ArgumentMatcher {
	return core.AnyArgs()
}

// ArgsMatch returns a matcher that feeds the whole argument list to a
// gomega-compatible matcher.
func ArgsMatch(matcher Matcher) ArgumentMatcher {
	return core.ArgsMatch(matcher)
}

// ArgsSatisfy returns a matcher that accepts an argument list iff predicate
// returns true for it.
func ArgsSatisfy(predicate func([]any) bool) ArgumentMatcher {
	return core.ArgsSatisfy(predicate)
}

// Callback is the function the code under test passed to the intercepted method.
type Callback = core.Callback

// Catch runs fn and intercepts a thrown Signal carrying tag.
func Catch(tag any, fn func()) bool {
	return core.Catch(tag, fn)
}

// ExactArgs returns a matcher that accepts exactly the given argument list.
func ExactArgs(expected ...any) ArgumentMatcher {
	return core.ExactArgs(expected...)
}

// Expectation is a configured rule for one intercepted method.
type Expectation = core.Expectation

// NewExpectation creates an expectation for method that accepts any arguments
// and expects one call.
func NewExpectation(method string, opts ...Option) *Expectation {
	return core.NewExpectation(method, withCallerOrigin(opts)...)
}

// Implementation replaces the canned return value with custom behavior.
type Implementation = core.Implementation

// Matcher defines the interface for flexible value matching.
type Matcher = core.Matcher

// MatcherKind tags the strategy of an ArgumentMatcher.
type MatcherKind = core.MatcherKind

// MatchValue checks if actual matches expected.
func MatchValue(actual, expected any) (bool, string) {
	return core.MatchValue(actual, expected)
}

// NegativeExpectation asserts that a method is never called.
type NegativeExpectation = core.NegativeExpectation

// NewNegativeExpectation creates a prohibition on method.
func NewNegativeExpectation(method string, opts ...Option) *NegativeExpectation {
	return core.NewNegativeExpectation(method, withCallerOrigin(opts)...)
}

// Option configures an Expectation at construction.
type Option = core.Option

// WithExpectedCount sets how many calls verification should expect.
func WithExpectedCount(n int) Option {
	return core.WithExpectedCount(n)
}

// WithImplementation installs a custom implementation up front.
func WithImplementation(impl Implementation) Option {
	return core.WithImplementation(impl)
}

// WithOrdering stores an opaque handle for an external call sequencer.
func WithOrdering(token OrderingToken) Option {
	return core.WithOrdering(token)
}

// WithOrigin overrides the captured provenance of the expectation.
func WithOrigin(origin string) Option {
	return core.WithOrigin(origin)
}

// WithReporter traces every invocation through t.Logf.
func WithReporter(t TestReporter) Option {
	return core.WithReporter(t)
}

// OrderingToken is an opaque handle to an external sequencing collaborator.
type OrderingToken = core.OrderingToken

// ReturnFunc computes a return value from the actual arguments.
type ReturnFunc = core.ReturnFunc

// Signal is a non-error control transfer carrying an opaque tag.
type Signal = core.Signal

// Throw unwinds the stack with a Signal carrying tag.
func Throw(tag any) {
	core.Throw(tag)
}

// Stub is the surface a double consumes to route calls to expectations.
type Stub = core.Stub

// TestReporter is the minimal interface impstub needs from test frameworks.
type TestReporter = core.TestReporter

// withCallerOrigin records the facade caller as origin; explicit options
// still win because they are applied afterwards.
func withCallerOrigin(opts []Option) []Option {
	return append([]Option{core.WithOrigin(core.CallerOrigin(2))}, opts...)
}

// Package core provides the internal implementation of impstub's expectation
// engine: argument matching, stubbed behaviors and call accounting for a single
// intercepted method.
package core

import (
	"fmt"
)

// Callback is the function the code under test would have passed to the
// intercepted method. Yielded tuples are replayed into it.
type Callback func(args ...any)

// Expectation is a configured rule for one intercepted method: the arguments
// it accepts, how it reacts when called, and how often it has been called.
type Expectation struct {
	method   string
	matcher  ArgumentMatcher
	impl     Implementation
	returns  ReturnFunc
	raise    error
	signal   *Signal
	yields   [][]any
	expected int
	actual   int
	origin   string
	ordering OrderingToken
	reporter TestReporter
	negative bool
}

// NewExpectation creates an expectation for method that accepts any arguments
// and expects to be called once. The caller's file:line is recorded as its
// origin unless WithOrigin is given.
func NewExpectation(method string, opts ...Option) *Expectation {
	exp := &Expectation{
		method:   method,
		matcher:  AnyArgs(),
		expected: 1,
		origin:   CallerOrigin(1),
	}

	Options(opts...)(exp)

	return exp
}

// ActualCount returns how many times the expectation has been invoked.
func (e *Expectation) ActualCount() int {
	return e.actual
}

// AndRaise makes every invocation fail with err. A nil err stands for the
// generic ErrRaised. A raised error wins over a thrown signal.
func (e *Expectation) AndRaise(err error) {
	if err == nil {
		err = ErrRaised
	}

	e.raise = err
}

// AndReturn sets the value the expectation returns. If value is a function of
// the ReturnFunc shape it is called on every invocation with the actual
// arguments, followed by the caller's callback when one was passed. Any other
// value is returned as is.
//
// It fails with ErrAmbiguousReturn when a custom implementation is set.
func (e *Expectation) AndReturn(value any) error {
	switch fn := value.(type) {
	case ReturnFunc:
		return e.AndReturnFunc(fn)
	case Implementation:
		return e.AndReturnFunc(ReturnFunc(fn))
	case func(...any) any:
		return e.AndReturnFunc(fn)
	default:
		return e.AndReturnFunc(func(...any) any { return value })
	}
}

// AndReturnFunc sets fn as the producer of the return value. A nil fn clears
// the producer.
//
// It fails with ErrAmbiguousReturn when a custom implementation is set.
func (e *Expectation) AndReturnFunc(fn ReturnFunc) error {
	if e.impl != nil {
		return fmt.Errorf("%w: %s", ErrAmbiguousReturn, e.method)
	}

	e.returns = fn

	return nil
}

// AndThrow makes every invocation throw a Signal carrying tag, unless an
// error is also configured. A nil tag clears the signal.
func (e *Expectation) AndThrow(tag any) {
	if tag == nil {
		e.signal = nil

		return
	}

	e.signal = &Signal{Tag: tag}
}

// AndYield appends one tuple to replay into the caller's callback. Each call
// adds another tuple; all of them are replayed, in order, on every invocation.
func (e *Expectation) AndYield(args ...any) *Expectation {
	e.yields = append(e.yields, args)

	return e
}

// ExpectedCount returns the number of calls verification should expect.
func (e *Expectation) ExpectedCount() int {
	return e.expected
}

// Invoke runs the configured behavior for one call and counts it. The count
// goes up exactly once per Invoke, whether it returns a value, returns an
// error, throws a Signal, or the custom implementation panics.
//
// Precedence: a raised error, then a thrown signal, then the custom
// implementation or yields, and finally the return producer, whose result
// replaces whatever the earlier step produced.
func (e *Expectation) Invoke(args []any, callback Callback) (result any, err error) {
	defer func() { e.actual++ }()

	if e.reporter != nil {
		e.reporter.Helper()
		e.reporter.Logf("call to %s: %d/%d", e.method, e.actual+1, e.expected)
	}

	if e.raise != nil {
		return nil, e.raise
	}

	if e.signal != nil {
		Throw(e.signal.Tag)
	}

	result, err = e.provisional(args, callback)
	if err != nil {
		return nil, err
	}

	if e.returns != nil {
		return e.returns(withCallback(args, callback)...), nil
	}

	return result, nil
}

// Matcher returns the argument matcher in use.
func (e *Expectation) Matcher() ArgumentMatcher {
	return e.matcher
}

// Matches reports whether a call to method with args is accepted.
func (e *Expectation) Matches(method string, args []any) bool {
	return e.method == method && e.matcher.Matches(args)
}

// MatchesNameButNotArgs reports whether method is the expected one while args
// are rejected. Proxies use it to tell "wrong arguments" apart from "no stub".
func (e *Expectation) MatchesNameButNotArgs(method string, args []any) bool {
	return e.method == method && !e.matcher.Matches(args)
}

// Method returns the name of the intercepted method.
func (e *Expectation) Method() string {
	return e.method
}

// NegativeExpectationFor reports whether the expectation prohibits calls to
// method, regardless of arguments. Only expectations built by
// NewNegativeExpectation prohibit anything.
func (e *Expectation) NegativeExpectationFor(method string) bool {
	return e.negative && e.method == method
}

// Ordering returns the token handed to WithOrdering, if any.
func (e *Expectation) Ordering() OrderingToken {
	return e.ordering
}

// Origin returns the file:line where the expectation was declared.
func (e *Expectation) Origin() string {
	return e.origin
}

// Satisfied reports whether the actual call count equals the expected one.
func (e *Expectation) Satisfied() bool {
	return e.actual == e.expected
}

// Times sets the number of calls verification should expect.
// Panics if n is negative.
func (e *Expectation) Times(n int) *Expectation {
	if n < 0 {
		panic(fmt.Sprintf("impstub.Times: negative call count %d for %s", n, e.method))
	}

	e.expected = n

	return e
}

// WithArgs accepts exactly the given argument list.
func (e *Expectation) WithArgs(values ...any) *Expectation {
	return e.WithArguments(ExactArgs(values...), nil)
}

// WithArguments sets the argument matcher. A non-nil impl replaces any custom
// implementation set before.
func (e *Expectation) WithArguments(matcher ArgumentMatcher, impl Implementation) *Expectation {
	if impl != nil {
		e.impl = impl
	}

	e.matcher = matcher

	return e
}

// provisional computes the result of the implementation or yield step.
func (e *Expectation) provisional(args []any, callback Callback) (any, error) {
	switch {
	case e.impl != nil:
		return e.impl(args...), nil
	case len(e.yields) > 0:
		if callback == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingCallback, e.method)
		}

		for _, tuple := range e.yields {
			callback(tuple...)
		}

		return nil, nil //nolint:nilnil // yielding produces no value
	default:
		return nil, nil //nolint:nilnil // nothing configured produces no value
	}
}

// Implementation replaces the canned return value with custom behavior. It
// receives the actual arguments of the call.
type Implementation func(args ...any) any

// ReturnFunc computes an expectation's return value from the actual arguments,
// with the caller's callback appended when one was passed.
type ReturnFunc func(args ...any) any

// Stub is the surface a double consumes to route calls to expectations.
type Stub interface {
	Invoke(args []any, callback Callback) (any, error)
	Matches(method string, args []any) bool
	MatchesNameButNotArgs(method string, args []any) bool
	Method() string
	NegativeExpectationFor(method string) bool
}

// withCallback returns a copy of args with callback appended when non-nil.
func withCallback(args []any, callback Callback) []any {
	out := make([]any, 0, len(args)+1)
	out = append(out, args...)

	if callback != nil {
		out = append(out, callback)
	}

	return out
}

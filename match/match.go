// Package match provides argument matchers for impstub expectations.
// This package is designed to be dot-imported alongside gomega matchers:
//
//	import (
//	    . "github.com/onsi/gomega"
//	    . "github.com/toejough/impstub/match"
//	)
//
//	exp.WithArguments(That(ConsistOf("a", "b")), nil)
//
// Every matcher here judges the argument list as a whole.
package match

import (
	"errors"
	"fmt"

	"github.com/toejough/impstub"
)

var (
	errNoPredicate  = errors.New("no predicate")
	errTypeMismatch = errors.New("type mismatch")
)

// Any accepts every argument list.
//
//nolint:gochecknoglobals // Intentional exported constant-like value
var Any = impstub.AnyArgs()

// Exactly accepts exactly the given argument list.
func Exactly(values ...any) impstub.ArgumentMatcher {
	return impstub.ExactArgs(values...)
}

// SatisfyArgs returns a matcher that uses a predicate over the argument list.
// The predicate should return nil if the arguments match, or an error
// describing the mismatch if they do not. A nil predicate never matches.
//
// Example:
//
//	exp.WithArguments(SatisfyArgs(func(args []any) error {
//	    if len(args) != 2 { return fmt.Errorf("expected 2 args, got %d", len(args)) }
//	    return nil
//	}), nil)
func SatisfyArgs(predicate func(args []any) error) impstub.ArgumentMatcher {
	return That(&satisfyMatcher{predicate: predicate})
}

// That returns a matcher that hands the argument list, as a []any, to a
// gomega-compatible matcher.
func That(matcher impstub.Matcher) impstub.ArgumentMatcher {
	return impstub.ArgsMatch(matcher)
}

type satisfyMatcher struct {
	predicate func([]any) error
	lastErr   error
}

func (m *satisfyMatcher) FailureMessage(actual any) string {
	if m.lastErr != nil {
		return fmt.Sprintf("args %v do not satisfy predicate: %v", actual, m.lastErr)
	}

	return fmt.Sprintf("args %v do not satisfy predicate", actual)
}

func (m *satisfyMatcher) Match(actual any) (bool, error) {
	args, ok := actual.([]any)
	if !ok {
		return false, fmt.Errorf("%w: expected []any, got %T", errTypeMismatch, actual)
	}

	if m.predicate == nil {
		m.lastErr = errNoPredicate

		return false, nil
	}

	m.lastErr = m.predicate(args)

	return m.lastErr == nil, nil
}

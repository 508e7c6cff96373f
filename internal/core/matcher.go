package core

import (
	"fmt"
	"reflect"
)

// Argument matcher kinds.
const (
	KindAny MatcherKind = iota
	KindExact
	KindPredicate
)

// ArgumentMatcher decides whether the actual arguments of a call satisfy an
// expectation. The zero value matches any arguments.
type ArgumentMatcher struct {
	kind      MatcherKind
	expected  []any
	predicate func([]any) bool
}

// AnyArgs returns a matcher that accepts every argument list.
func AnyArgs() ArgumentMatcher {
	return ArgumentMatcher{kind: KindAny}
}

// ArgsMatch returns a predicate matcher that feeds the whole argument list to
// matcher. Gomega matchers satisfy Matcher, so ConsistOf, HaveLen and friends
// can be used directly. A matcher error counts as a mismatch.
func ArgsMatch(matcher Matcher) ArgumentMatcher {
	return ArgsSatisfy(func(actual []any) bool {
		ok, _ := MatchValue(actual, matcher)

		return ok
	})
}

// ArgsSatisfy returns a matcher that accepts an argument list iff predicate
// returns true for it. A nil predicate never matches.
func ArgsSatisfy(predicate func([]any) bool) ArgumentMatcher {
	return ArgumentMatcher{kind: KindPredicate, predicate: predicate}
}

// ExactArgs returns a matcher that accepts exactly the given argument list:
// same length, and each position reflect.DeepEqual to the expected value.
// Values are not coerced, so int(1) does not match float64(1).
func ExactArgs(expected ...any) ArgumentMatcher {
	return ArgumentMatcher{kind: KindExact, expected: expected}
}

// Expected returns the expected argument list of an exact matcher, or nil.
func (m ArgumentMatcher) Expected() []any {
	if m.kind != KindExact {
		return nil
	}

	return append([]any(nil), m.expected...)
}

// Kind reports which matching strategy m uses.
func (m ArgumentMatcher) Kind() MatcherKind {
	return m.kind
}

// Matches reports whether actual satisfies m.
func (m ArgumentMatcher) Matches(actual []any) bool {
	switch m.kind {
	case KindAny:
		return true
	case KindExact:
		if len(actual) != len(m.expected) {
			return false
		}

		for i, expected := range m.expected {
			if !reflect.DeepEqual(actual[i], expected) {
				return false
			}
		}

		return true
	case KindPredicate:
		return m.predicate != nil && m.predicate(actual)
	default:
		return false
	}
}

// String describes what the matcher accepts.
func (m ArgumentMatcher) String() string {
	switch m.kind {
	case KindAny:
		return "any args"
	case KindExact:
		return fmt.Sprintf("args %#v", m.expected)
	default:
		return "args satisfying predicate"
	}
}

// Matcher defines the interface for flexible value matching.
// Compatible with gomega.GomegaMatcher via duck typing - any type
// implementing Match and FailureMessage will work.
type Matcher interface {
	Match(actual any) (success bool, err error)
	FailureMessage(actual any) string
}

// MatcherKind tags the strategy of an ArgumentMatcher.
type MatcherKind int

func (k MatcherKind) String() string {
	switch k {
	case KindAny:
		return "Any"
	case KindExact:
		return "Exact"
	case KindPredicate:
		return "Predicate"
	default:
		return fmt.Sprintf("MatcherKind(%d)", int(k))
	}
}

// MatchValue checks if actual matches expected.
// If expected implements the Matcher interface, uses its Match method.
// Otherwise, uses reflect.DeepEqual for comparison.
// Returns (success, errorMessage). If success is true, errorMessage is empty.
func MatchValue(actual, expected any) (bool, string) {
	if matcher, ok := expected.(Matcher); ok {
		success, err := matcher.Match(actual)
		if err != nil {
			return false, err.Error()
		}

		if !success {
			return false, matcher.FailureMessage(actual)
		}

		return true, ""
	}

	if reflect.DeepEqual(actual, expected) {
		return true, ""
	}

	return false, fmt.Sprintf("expected %v, got %v", expected, actual)
}

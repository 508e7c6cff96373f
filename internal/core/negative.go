package core

// NegativeExpectation asserts that a method is never called. It behaves like
// an Expectation whose expected count defaults to zero. The prohibition lives
// on the embedded Expectation, so fluent calls such as WithArgs keep it.
type NegativeExpectation struct {
	*Expectation
}

// NewNegativeExpectation creates a prohibition on method. WithExpectedCount
// still overrides the zero default.
func NewNegativeExpectation(method string, opts ...Option) *NegativeExpectation {
	exp := NewExpectation(method, WithOrigin(CallerOrigin(1)), WithExpectedCount(0))
	exp.negative = true
	Options(opts...)(exp)

	return &NegativeExpectation{Expectation: exp}
}

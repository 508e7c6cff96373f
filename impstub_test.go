package impstub_test

import (
	"errors"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import intentional for Gomega matcher DSL

	"github.com/toejough/impstub"
)

func TestFacade_OriginIsCaller(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	exp := impstub.NewExpectation("foo")
	neg := impstub.NewNegativeExpectation("foo")

	g.Expect(exp.Origin()).To(HavePrefix("impstub_test.go:"))
	g.Expect(neg.Origin()).To(HavePrefix("impstub_test.go:"))
	g.Expect(impstub.NewExpectation("foo", impstub.WithOrigin("x.go:1")).Origin()).To(Equal("x.go:1"))
}

func TestFacade_Options(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	exp := impstub.NewExpectation("foo",
		impstub.WithExpectedCount(2),
		impstub.WithOrdering("seq-1"),
		impstub.WithReporter(t),
		impstub.WithImplementation(func(args ...any) any { return len(args) }),
	)

	result, err := exp.Invoke([]any{1, 2, 3}, nil)

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(result).To(Equal(3))
	g.Expect(exp.ExpectedCount()).To(Equal(2))
	g.Expect(exp.Ordering()).To(Equal(impstub.OrderingToken("seq-1")))
	g.Expect(exp.AndReturn(1)).To(MatchError(impstub.ErrAmbiguousReturn))
}

func TestFacade_Matchers(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(impstub.AnyArgs().Kind()).To(Equal(impstub.KindAny))
	g.Expect(impstub.ExactArgs(1).Kind()).To(Equal(impstub.KindExact))
	g.Expect(impstub.ArgsSatisfy(func([]any) bool { return true }).Kind()).To(Equal(impstub.KindPredicate))
	g.Expect(impstub.ArgsMatch(HaveLen(1)).Matches([]any{"x"})).To(BeTrue())

	ok, msg := impstub.MatchValue(1, 1)
	g.Expect(ok).To(BeTrue())
	g.Expect(msg).To(BeEmpty())
}

func TestFacade_Signals(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	exp := impstub.NewExpectation("walk")
	exp.AndThrow("stop")

	caught := impstub.Catch("stop", func() {
		_, _ = exp.Invoke(nil, nil)
	})

	g.Expect(caught).To(BeTrue())
	g.Expect(exp.ActualCount()).To(Equal(1))
	g.Expect(impstub.Catch("stop", func() { impstub.Throw("stop") })).To(BeTrue())

	exp.AndRaise(nil)

	_, err := exp.Invoke(nil, nil)
	g.Expect(errors.Is(err, impstub.ErrRaised)).To(BeTrue())

	yielding := impstub.NewExpectation("each").AndYield(1)

	_, err = yielding.Invoke(nil, nil)
	g.Expect(err).To(MatchError(impstub.ErrMissingCallback))
}

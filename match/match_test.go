package match_test

import (
	"errors"
	"fmt"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import intentional for Gomega matcher DSL
	"pgregory.net/rapid"

	"github.com/toejough/impstub"
	. "github.com/toejough/impstub/match" //nolint:revive // Dot import mirrors intended usage
)

func TestAny(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(Any.Kind()).To(Equal(impstub.KindAny))

	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 5).Draw(rt, "n")

		if !Any.Matches(make([]any, n)) {
			rt.Fatalf("Any should match %d args", n)
		}
	})
}

func TestExactly(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	exp := impstub.NewExpectation("Put").WithArguments(Exactly("k", 1), nil)

	g.Expect(exp.Matches("Put", []any{"k", 1})).To(BeTrue())
	g.Expect(exp.Matches("Put", []any{"k", 2})).To(BeFalse())
}

func TestSatisfyArgs(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	twoArgs := SatisfyArgs(func(args []any) error {
		if len(args) != 2 {
			return fmt.Errorf("expected 2 args, got %d", len(args))
		}

		return nil
	})

	g.Expect(twoArgs.Kind()).To(Equal(impstub.KindPredicate))
	g.Expect(twoArgs.Matches([]any{1, 2})).To(BeTrue())
	g.Expect(twoArgs.Matches([]any{1})).To(BeFalse())
	g.Expect(twoArgs.Matches(nil)).To(BeFalse())
}

func TestSatisfyArgs_NilPredicateNeverMatches(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	m := SatisfyArgs(nil)

	g.Expect(func() { m.Matches(nil) }).NotTo(Panic())
	g.Expect(m.Matches([]any{1})).To(BeFalse())
	g.Expect(m.Matches(nil)).To(Equal(impstub.ArgsSatisfy(nil).Matches(nil)))
}

func TestThat_GomegaMatchers(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	exp := impstub.NewExpectation("Tag").WithArguments(That(ContainElement("urgent")), nil)

	g.Expect(exp.Matches("Tag", []any{"low", "urgent"})).To(BeTrue())
	g.Expect(exp.MatchesNameButNotArgs("Tag", []any{"low"})).To(BeTrue())

	combined := That(And(HaveLen(2), HaveEach(BeAssignableToTypeOf(0))))

	g.Expect(combined.Matches([]any{1, 2})).To(BeTrue())
	g.Expect(combined.Matches([]any{1, "2"})).To(BeFalse())
}

func TestThat_CustomMatcherFailureIsMismatch(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(That(failingMatcher{}).Matches([]any{1})).To(BeFalse())
}

type failingMatcher struct{}

func (failingMatcher) FailureMessage(any) string { return "never" }

func (failingMatcher) Match(any) (bool, error) { return false, errors.New("cannot match") }

package isograph

import "fmt"

// branchBudget tracks the trial-branching allowance across one top-level
// call to AreIsomorphicDecision, shared by reference across the whole
// recursion so nested branches draw from the same pool (§4.1 step 6,
// Options.MaxBranches).
type branchBudget struct {
	remaining int
}

// newBranchBudget resolves n (already Options.branchBudget's resolved
// value: a concrete count, or 0 when branching is disabled) into a
// budget. There is no "unlimited" state here — Options.branchBudget
// always hands back a finite number.
func newBranchBudget(n int) *branchBudget {
	if n < 0 {
		n = 0
	}
	return &branchBudget{remaining: n}
}

func (b *branchBudget) take() bool {
	if b.remaining <= 0 {
		return false
	}
	b.remaining--
	return true
}

// AreIsomorphic reports whether g1 and g2 are isomorphic: g2 can be
// obtained from g1 by a bijective renaming of blank nodes that preserves
// every edge (spec §4.2). It treats trial-branching budget exhaustion as
// "not isomorphic"; use AreIsomorphicDecision to distinguish that case.
func AreIsomorphic(g1, g2 Graph, opts ...Options) bool {
	ok, err := AreIsomorphicDecision(g1, g2, opts...)
	if err != nil {
		return false
	}
	return ok
}

// AreIsomorphicDecision is AreIsomorphic but reports budget exhaustion as
// a *LabelingError instead of folding it into a false result.
func AreIsomorphicDecision(g1, g2 Graph, opts ...Options) (bool, error) {
	o := normalizeOptions(opts)

	// §4.2 step 1: size short-circuit (NewGraph already dedups, so Len is
	// the distinct-triple count on both sides).
	if g1.Len() != g2.Len() {
		return false, nil
	}

	// §4.2 step 2: constant-triple multiset short-circuit. Any constant
	// triple present in one graph and absent from the other rules out
	// isomorphism regardless of how the anonymous nodes are labeled.
	if !sameTripleMultiset(g1.constantTriples(), g2.constantTriples()) {
		return false, nil
	}

	ls1, ls2 := newLabelState(g1), newLabelState(g2)
	ls1.refineToFixedPoint()
	ls2.refineToFixedPoint()

	if groundedTriplesEqual(g1, ls1, g2, ls2) {
		return true, nil
	}
	if ls1.allGrounded() && ls2.allGrounded() {
		// Both fully grounded but their grounded-triple multisets differ:
		// a genuine structural mismatch, not a tie to break.
		return false, nil
	}

	budget := newBranchBudget(o.branchBudget(tieSize(ls1, ls2)))
	ok, exhausted := tryBreakTies(g1, ls1, g2, ls2, budget)
	if exhausted {
		return false, newBudgetExceeded()
	}
	return ok, nil
}

func groundedTriplesEqual(g1 Graph, ls1 *labelState, g2 Graph, ls2 *labelState) bool {
	_, gt1 := ls1.groundedSetAndTriples(g1)
	_, gt2 := ls2.groundedSetAndTriples(g2)
	return sameTripleMultiset(gt1, gt2)
}

func tieSize(ls1, ls2 *labelState) int {
	n := 0
	for _, g := range ls1.grounded {
		if !g {
			n++
		}
	}
	m := 0
	for _, g := range ls2.grounded {
		if !g {
			m++
		}
	}
	if n > m {
		return n
	}
	return m
}

// tryBreakTies implements §4.1 step 6: pick the smallest tied equivalence
// class in g1, find a same-size tied class in g2, and speculatively ground
// one candidate pair at a time to a shared distinguishing signature,
// resuming refinement in both graphs and checking for a full match. It
// backtracks to the next candidate pair on failure and recurses when the
// forced grounding reveals a further tie. The second return value reports
// whether the branch budget ran out before a decision was reached.
func tryBreakTies(g1 Graph, ls1 *labelState, g2 Graph, ls2 *labelState, budget *branchBudget) (bool, bool) {
	classesA := ls1.tiedClasses()
	classesB := ls2.tiedClasses()
	classA := smallestClass(classesA)
	if classA == nil {
		return false, false
	}
	var classB []int
	for _, c := range classesB {
		if len(c) == len(classA) {
			classB = c
			break
		}
	}
	if classB == nil {
		return false, false
	}

	trial := 0
	for _, a := range classA {
		for _, b := range classB {
			if !budget.take() {
				return false, true
			}
			trial++
			nonce := hashString(fmt.Sprintf("trial:%d:%d", a, b^trial<<32))

			b1 := ls1.forceGround(a, nonce)
			b2 := ls2.forceGround(b, nonce)
			b1.refineToFixedPoint()
			b2.refineToFixedPoint()

			if groundedTriplesEqual(g1, b1, g2, b2) {
				return true, false
			}
			if b1.allGrounded() && b2.allGrounded() {
				continue // fully resolved, still unequal: this pairing is wrong
			}
			if ok, exhausted := tryBreakTies(g1, b1, g2, b2, budget); ok {
				return true, false
			} else if exhausted {
				return false, true
			}
		}
	}
	return false, false
}

func smallestClass(classes [][]int) []int {
	var best []int
	for _, c := range classes {
		if best == nil || len(c) < len(best) {
			best = c
		}
	}
	return best
}

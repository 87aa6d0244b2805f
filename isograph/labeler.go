package isograph

import "sort"

// GroundedSet maps each anonymous node's within-graph key (see anonKey) to
// the Signature the labeler converged on for it.
type GroundedSet map[string]Signature

// GroundedTriple is a Triple in which every anonymous position has been
// replaced by its grounded signature. Grounded triples compare equal
// exactly when the underlying structure is equal, so two graphs are
// isomorphic iff their grounded-triple multisets match.
type GroundedTriple = Triple

// groundedTerm stands in for an anonymous node once the labeler has
// assigned it a Signature. From here on it behaves as a constant: two
// groundedTerms are equal exactly when their signatures are equal.
type groundedTerm struct{ sig Signature }

func (g groundedTerm) Kind() TermKind    { return TermBlankNode }
func (g groundedTerm) String() string    { return constKey(g) }
func (g groundedTerm) IsAnonymous() bool { return false }
func (g groundedTerm) Equal(o Term) bool {
	other, ok := o.(groundedTerm)
	return ok && other.sig == g.sig
}

// incidentTriple pairs a triple with the role ('S', 'P', or 'O') the node
// under consideration plays in it. A node occupying two positions of the
// same triple (e.g. a self-loop) contributes one incidentTriple per
// occurrence.
type incidentTriple struct {
	triple Triple
	role   byte
}

// labelState is the mutable working set of one run of the §4.1 refinement
// loop over a single graph. It is cheap to clone, which is what lets the
// trial-branching step of §4.1.6 explore and backtrack.
type labelState struct {
	nodeIdx  map[string]int
	nodes    []string
	inc      [][]incidentTriple
	sig      []Signature
	grounded []bool
}

func newLabelState(g Graph) *labelState {
	nodes := g.anonNodes()
	nodeIdx := make(map[string]int, len(nodes))
	for i, k := range nodes {
		nodeIdx[k] = i
	}
	inc := make([][]incidentTriple, len(nodes))
	for _, t := range g.anonTriples() {
		for _, pos := range [3]struct {
			term Term
			role byte
		}{{t.S, 'S'}, {t.P, 'P'}, {t.O, 'O'}} {
			if !pos.term.IsAnonymous() {
				continue
			}
			i := nodeIdx[anonKey(pos.term)]
			inc[i] = append(inc[i], incidentTriple{triple: t, role: pos.role})
		}
	}
	sig := make([]Signature, len(nodes))
	for i := range sig {
		sig[i] = sentinelSignature
	}
	return &labelState{
		nodeIdx:  nodeIdx,
		nodes:    nodes,
		inc:      inc,
		sig:      sig,
		grounded: make([]bool, len(nodes)),
	}
}

func (ls *labelState) clone() *labelState {
	sig := make([]Signature, len(ls.sig))
	copy(sig, ls.sig)
	grounded := make([]bool, len(ls.grounded))
	copy(grounded, ls.grounded)
	return &labelState{
		nodeIdx:  ls.nodeIdx, // shared, read-only after construction
		nodes:    ls.nodes,
		inc:      ls.inc,
		sig:      sig,
		grounded: grounded,
	}
}

// sigOf returns the signature-of a term under the state's current round:
// its live Signature if anonymous and still tracked by this state, or the
// hash of its constant identity otherwise.
func (ls *labelState) sigOf(t Term) Signature {
	if t.IsAnonymous() {
		if i, ok := ls.nodeIdx[anonKey(t)]; ok {
			return ls.sig[i]
		}
	}
	return hashString(constKey(t))
}

// refineRound runs one pass of §4.1 step 3 over every ungrounded node,
// then grounds every node whose new signature is unique among the
// still-ungrounded set (step 4). It reports whether any node was newly
// grounded, which callers use to detect the step-5 fixed point.
func (ls *labelState) refineRound() bool {
	next := make([]Signature, len(ls.nodes))
	for i := range ls.nodes {
		if ls.grounded[i] {
			next[i] = ls.sig[i]
			continue
		}
		hashes := make([]uint64, len(ls.inc[i]))
		for j, it := range ls.inc[i] {
			hashes[j] = tupleHash(it.role, ls.sigOf(it.triple.S), ls.sigOf(it.triple.P), ls.sigOf(it.triple.O))
		}
		next[i] = combineSorted(hashes, ls.sig[i])
	}
	ls.sig = next
	return ls.groundUniqueSignatures()
}

func (ls *labelState) groundUniqueSignatures() bool {
	counts := make(map[Signature]int)
	for i, g := range ls.grounded {
		if !g {
			counts[ls.sig[i]]++
		}
	}
	groundedAny := false
	for i, g := range ls.grounded {
		if !g && counts[ls.sig[i]] == 1 {
			ls.grounded[i] = true
			groundedAny = true
		}
	}
	return groundedAny
}

func (ls *labelState) allGrounded() bool {
	for _, g := range ls.grounded {
		if !g {
			return false
		}
	}
	return true
}

// refineToFixedPoint repeats refineRound (§4.1 steps 3-4) until either
// every node is grounded or a round grounds nothing new — the step-5
// fixed point, reached only when the remaining ungrounded nodes are
// genuinely tied by structural symmetry. It returns the number of rounds
// run, which the test suite uses as a regression guard against
// pathological round counts on non-adversarial graphs (spec.md §8).
func (ls *labelState) refineToFixedPoint() int {
	rounds := 0
	for {
		if ls.allGrounded() {
			return rounds
		}
		rounds++
		if !ls.refineRound() {
			return rounds
		}
	}
}

// forceGround returns a clone of ls with node i grounded to sig, for the
// speculative try-and-verify branch of §4.1 step 6.
func (ls *labelState) forceGround(i int, sig Signature) *labelState {
	c := ls.clone()
	c.sig[i] = sig
	c.grounded[i] = true
	return c
}

// tiedClasses groups the still-ungrounded nodes by signature, in
// ascending signature order. Every class has at least two members: a
// singleton would have been grounded by groundUniqueSignatures already.
func (ls *labelState) tiedClasses() [][]int {
	groups := make(map[Signature][]int)
	for i, g := range ls.grounded {
		if !g {
			groups[ls.sig[i]] = append(groups[ls.sig[i]], i)
		}
	}
	sigs := make([]Signature, 0, len(groups))
	for s := range groups {
		sigs = append(sigs, s)
	}
	sort.Slice(sigs, func(i, j int) bool { return sigs[i] < sigs[j] })
	out := make([][]int, 0, len(sigs))
	for _, s := range sigs {
		out = append(out, groups[s])
	}
	return out
}

// groundedSetAndTriples materializes ls's current signatures as a
// GroundedSet and rewrites g's triples through it, for comparison or for
// returning from Label.
func (ls *labelState) groundedSetAndTriples(g Graph) (GroundedSet, []GroundedTriple) {
	set := make(GroundedSet, len(ls.nodes))
	for i, k := range ls.nodes {
		set[k] = ls.sig[i]
	}
	out := make([]GroundedTriple, 0, g.Len())
	for _, t := range g.Triples() {
		out = append(out, Triple{S: groundIfAnon(t.S, set), P: groundIfAnon(t.P, set), O: groundIfAnon(t.O, set)})
	}
	return set, out
}

func groundIfAnon(t Term, set GroundedSet) Term {
	if !t.IsAnonymous() {
		return t
	}
	return groundedTerm{sig: set[anonKey(t)]}
}

// Label computes a canonical signature for every anonymous node of g by
// running the §4.1 refinement loop to its fixed point. It does not attempt
// the cross-graph trial-branching of §4.1 step 6 — that requires a second
// graph to pair candidates against and is AreIsomorphic's job. Nodes left
// tied by symmetry within g alone share a signature in the result; that is
// still a sound basis for the multiset comparison AreIsomorphic performs.
func Label(g Graph) (GroundedSet, []GroundedTriple) {
	ls := newLabelState(g)
	ls.refineToFixedPoint()
	return ls.groundedSetAndTriples(g)
}

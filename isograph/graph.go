package isograph

import "sort"

// Graph is a finite, deduplicated multiset of Triples. The zero value is an
// empty graph. Use NewGraph to construct one from possibly-duplicate input.
type Graph struct {
	triples []Triple
}

// NewGraph builds a Graph from triples, removing duplicates (triples equal
// under Triple.Equal). Invariant after construction: no two triples in the
// result are equal.
func NewGraph(triples ...Triple) Graph {
	keys := make(map[string]struct{}, len(triples))
	out := make([]Triple, 0, len(triples))
	for _, t := range triples {
		k := tripleSortKey(t)
		if _, seen := keys[k]; seen {
			continue
		}
		keys[k] = struct{}{}
		out = append(out, t)
	}
	return Graph{triples: out}
}

// Len returns the number of distinct triples in the graph.
func (g Graph) Len() int { return len(g.triples) }

// Equal reports literal multiset equality: the same triples, with the
// same blank node labels, regardless of order. This is strictly stronger
// than AreIsomorphic, which also accepts a bijective blank-node renaming.
func (g Graph) Equal(o Graph) bool {
	return sameTripleMultiset(g.triples, o.triples)
}

// Triples returns the graph's triples. The slice must not be mutated.
func (g Graph) Triples() []Triple { return g.triples }

// tripleSortKey renders a triple to a string that is a function of its
// content only — used for dedup and for sorting into a canonical order
// before hashing, never exposed outside the package.
func tripleSortKey(t Triple) string {
	return termSortKey(t.S) + "\x01" + termSortKey(t.P) + "\x01" + termSortKey(t.O)
}

func termSortKey(t Term) string {
	if t.IsAnonymous() {
		return anonKey(t)
	}
	return constKey(t)
}

// sortedTriples returns a copy of ts sorted by tripleSortKey, giving a
// deterministic order independent of input order or map iteration.
func sortedTriples(ts []Triple) []Triple {
	out := make([]Triple, len(ts))
	copy(out, ts)
	sort.Slice(out, func(i, j int) bool { return tripleSortKey(out[i]) < tripleSortKey(out[j]) })
	return out
}

// constantTriples returns the triples of g with no anonymous position.
func (g Graph) constantTriples() []Triple {
	var out []Triple
	for _, t := range g.triples {
		if !t.S.IsAnonymous() && !t.P.IsAnonymous() && !t.O.IsAnonymous() {
			out = append(out, t)
		}
	}
	return out
}

// anonTriples returns the triples of g with at least one anonymous position.
func (g Graph) anonTriples() []Triple {
	var out []Triple
	for _, t := range g.triples {
		if t.S.IsAnonymous() || t.P.IsAnonymous() || t.O.IsAnonymous() {
			out = append(out, t)
		}
	}
	return out
}

// anonNodes returns the distinct anonymous node keys of g, sorted for
// determinism, alongside a stable index assignment (position in the
// returned slice).
func (g Graph) anonNodes() []string {
	seen := make(map[string]struct{})
	for _, t := range g.triples {
		for _, term := range [3]Term{t.S, t.P, t.O} {
			if term.IsAnonymous() {
				seen[anonKey(term)] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// sameTripleMultiset reports whether a and b contain the same triples with
// the same multiplicities, regardless of order. Used both for the
// constant-triple short-circuit of §4.2 step 2 and, after grounding, for
// comparing grounded-triple multisets.
func sameTripleMultiset(a, b []Triple) bool {
	if len(a) != len(b) {
		return false
	}
	sa, sb := sortedTriples(a), sortedTriples(b)
	for i := range sa {
		if !sa[i].Equal(sb[i]) {
			return false
		}
	}
	return true
}

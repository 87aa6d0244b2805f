// Package isograph decides structural equivalence of RDF graphs: whether
// one graph can be obtained from another by a bijective renaming of blank
// nodes (and, via the query subpackage, variables) that preserves every
// edge.
//
// The decision procedure is iterative signature hashing with grounding,
// after Carroll (HPL-2001-293): anonymous nodes are assigned canonical
// labels from their structural neighborhood, refined to a fixed point,
// with recursive try-and-verify branching only where symmetry leaves a
// tie.
//
// Example:
//
//	g1 := isograph.NewGraph(
//		isograph.Triple{S: isograph.IRI{Value: "http://ex/s"}, P: isograph.IRI{Value: "http://ex/p"}, O: isograph.BlankNode{ID: "b1"}},
//	)
//	g2 := isograph.NewGraph(
//		isograph.Triple{S: isograph.IRI{Value: "http://ex/s"}, P: isograph.IRI{Value: "http://ex/p"}, O: isograph.BlankNode{ID: "other"}},
//	)
//	isograph.AreIsomorphic(g1, g2) // true
package isograph

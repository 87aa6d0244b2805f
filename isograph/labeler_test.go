package isograph

import (
	"fmt"
	"testing"
)

// chainGraph builds an n-node path s -p-> b0 -p-> b1 -p-> ... -p-> bn-1,
// with no symmetry, for the round-count regression guard below.
func chainGraph(n int) Graph {
	var triples []Triple
	prev := Term(IRI{Value: "s"})
	for i := 0; i < n; i++ {
		b := BlankNode{ID: fmt.Sprintf("b%d", i)}
		triples = append(triples, Triple{S: prev, P: IRI{Value: "p"}, O: b})
		prev = b
	}
	return NewGraph(triples...)
}

func TestLabelRoundCountRegressionGuard(t *testing.T) {
	// Non-adversarial graphs should reach a fixed point well within n
	// rounds; this is a regression guard against an accidental blow-up in
	// the refinement loop, not a tight bound (spec.md §8).
	for _, n := range []int{1, 5, 20, 50} {
		ls := newLabelState(chainGraph(n))
		rounds := ls.refineToFixedPoint()
		if !ls.allGrounded() {
			t.Fatalf("n=%d: expected a fully acyclic chain to fully ground", n)
		}
		if rounds > n+1 {
			t.Fatalf("n=%d: expected <= n+1 rounds, got %d", n, rounds)
		}
	}
}

func TestLabelGroundsAcyclicGraphFully(t *testing.T) {
	// s -p-> _:b1 -q-> "leaf"; no symmetry, so every anonymous node should
	// ground without needing trial-branching.
	g := NewGraph(
		Triple{S: IRI{Value: "s"}, P: IRI{Value: "p"}, O: BlankNode{ID: "b1"}},
		Triple{S: BlankNode{ID: "b1"}, P: IRI{Value: "q"}, O: Literal{Lexical: "leaf"}},
	)
	set, triples := Label(g)
	if len(set) != 1 {
		t.Fatalf("expected one anonymous node labeled, got %d", len(set))
	}
	if len(triples) != 2 {
		t.Fatalf("expected 2 grounded triples, got %d", len(triples))
	}
	ls := newLabelState(g)
	ls.refineToFixedPoint()
	if !ls.allGrounded() {
		t.Fatal("expected every anonymous node to ground without trial-branching")
	}
}

func TestLabelIsDeterministicAcrossBlankNodeNames(t *testing.T) {
	g1 := NewGraph(
		Triple{S: IRI{Value: "s"}, P: IRI{Value: "p"}, O: BlankNode{ID: "x"}},
		Triple{S: BlankNode{ID: "x"}, P: IRI{Value: "q"}, O: Literal{Lexical: "leaf"}},
	)
	g2 := NewGraph(
		Triple{S: IRI{Value: "s"}, P: IRI{Value: "p"}, O: BlankNode{ID: "renamed"}},
		Triple{S: BlankNode{ID: "renamed"}, P: IRI{Value: "q"}, O: Literal{Lexical: "leaf"}},
	)
	_, t1 := Label(g1)
	_, t2 := Label(g2)
	if !sameTripleMultiset(t1, t2) {
		t.Fatal("expected identical grounded-triple multisets regardless of blank node naming")
	}
}

func TestTieSurvivesWithinSingleGraphLabelAlone(t *testing.T) {
	// Two blank nodes with identical incident structure are genuinely
	// symmetric; Label alone (no second graph to pair against) cannot
	// break the tie and is not expected to.
	g := NewGraph(
		Triple{S: IRI{Value: "s"}, P: IRI{Value: "p"}, O: BlankNode{ID: "a"}},
		Triple{S: IRI{Value: "s"}, P: IRI{Value: "p"}, O: BlankNode{ID: "b"}},
	)
	set, _ := Label(g)
	if len(set) != 2 {
		t.Fatalf("expected 2 anonymous nodes, got %d", len(set))
	}
	var sigs []Signature
	for _, s := range set {
		sigs = append(sigs, s)
	}
	if sigs[0] != sigs[1] {
		t.Fatal("expected the two symmetric nodes to share a signature")
	}
}

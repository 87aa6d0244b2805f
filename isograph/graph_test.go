package isograph

import "testing"

func TestNewGraphDedups(t *testing.T) {
	t1 := Triple{S: IRI{Value: "s"}, P: IRI{Value: "p"}, O: IRI{Value: "o"}}
	g := NewGraph(t1, t1, t1)
	if g.Len() != 1 {
		t.Fatalf("expected dedup to 1 triple, got %d", g.Len())
	}
}

func TestAnonNodesDistinctAndSorted(t *testing.T) {
	g := NewGraph(
		Triple{S: BlankNode{ID: "b2"}, P: IRI{Value: "p"}, O: IRI{Value: "o"}},
		Triple{S: BlankNode{ID: "b1"}, P: IRI{Value: "p"}, O: BlankNode{ID: "b2"}},
	)
	nodes := g.anonNodes()
	if len(nodes) != 2 {
		t.Fatalf("expected 2 distinct anonymous nodes, got %d", len(nodes))
	}
	for i := 1; i < len(nodes); i++ {
		if nodes[i-1] >= nodes[i] {
			t.Fatalf("expected sorted anonymous node keys, got %v", nodes)
		}
	}
}

func TestConstantAndAnonTriplePartition(t *testing.T) {
	cTriple := Triple{S: IRI{Value: "s"}, P: IRI{Value: "p"}, O: IRI{Value: "o"}}
	aTriple := Triple{S: BlankNode{ID: "b"}, P: IRI{Value: "p"}, O: IRI{Value: "o"}}
	g := NewGraph(cTriple, aTriple)

	c := g.constantTriples()
	if len(c) != 1 || !c[0].Equal(cTriple) {
		t.Fatalf("expected exactly the constant triple, got %v", c)
	}
	a := g.anonTriples()
	if len(a) != 1 || !a[0].Equal(aTriple) {
		t.Fatalf("expected exactly the anonymous triple, got %v", a)
	}
}

func TestGraphEqualIsStricterThanIsomorphism(t *testing.T) {
	g1 := NewGraph(Triple{S: IRI{Value: "s"}, P: IRI{Value: "p"}, O: BlankNode{ID: "a"}})
	g2 := NewGraph(Triple{S: IRI{Value: "s"}, P: IRI{Value: "p"}, O: BlankNode{ID: "b"}})
	if g1.Equal(g2) {
		t.Fatal("expected different blank node labels to break literal equality")
	}
	if !AreIsomorphic(g1, g2) {
		t.Fatal("expected different blank node labels to still be isomorphic")
	}
	if !g1.Equal(g1) {
		t.Fatal("expected a graph to equal itself")
	}
}

func TestSameTripleMultisetOrderInsensitive(t *testing.T) {
	a := []Triple{
		{S: IRI{Value: "1"}, P: IRI{Value: "p"}, O: IRI{Value: "o"}},
		{S: IRI{Value: "2"}, P: IRI{Value: "p"}, O: IRI{Value: "o"}},
	}
	b := []Triple{a[1], a[0]}
	if !sameTripleMultiset(a, b) {
		t.Fatal("expected multisets equal regardless of order")
	}
	c := []Triple{a[0]}
	if sameTripleMultiset(a, c) {
		t.Fatal("expected multisets of different size to differ")
	}
}

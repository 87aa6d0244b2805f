package query

import "testing"

func TestExtractSparqlProjectionAndBGP(t *testing.T) {
	q, err := Extract(`SELECT ?s ?p ?o WHERE { ?s ?p ?o . }`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Language != SPARQL {
		t.Fatalf("expected SPARQL, got %s", q.Language)
	}
	if len(q.Projection) != 3 {
		t.Fatalf("expected 3 projected variables, got %d", len(q.Projection))
	}
	if q.BGP.Len() != 1 {
		t.Fatalf("expected 1 BGP triple, got %d", q.BGP.Len())
	}
}

func TestExtractStarProjection(t *testing.T) {
	q, err := Extract(`SELECT * WHERE { ?s ?p ?o . }`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !q.Star {
		t.Fatal("expected Star projection")
	}
}

func TestExtractDistinct(t *testing.T) {
	q, err := Extract(`SELECT DISTINCT ?s WHERE { ?s a ?t . }`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !q.Distinct {
		t.Fatal("expected Distinct to be set")
	}
}

func TestExtractAShorthandExpandsToRdfType(t *testing.T) {
	q, err := Extract(`SELECT ?s ?t WHERE { ?s a ?t . }`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	triples := q.BGP.Triples()
	if len(triples) != 1 {
		t.Fatalf("expected 1 triple, got %d", len(triples))
	}
	if triples[0].P.String() != rdfType {
		t.Fatalf("expected 'a' to expand to rdf:type, got %s", triples[0].P.String())
	}
}

func TestExtractPrefixExpansion(t *testing.T) {
	q, err := Extract(`PREFIX ex: <http://example.org/> SELECT ?s WHERE { ?s ex:knows ex:alice . }`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tr := q.BGP.Triples()[0]
	if tr.P.String() != "http://example.org/knows" {
		t.Fatalf("expected expanded predicate IRI, got %s", tr.P.String())
	}
	if tr.O.String() != "http://example.org/alice" {
		t.Fatalf("expected expanded object IRI, got %s", tr.O.String())
	}
}

func TestExtractLiteralWithLangAndDatatype(t *testing.T) {
	q, err := Extract(`SELECT ?s WHERE { ?s <http://ex/p> "hi"@en . ?s <http://ex/q> "1"^^<http://ex/int> . }`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.BGP.Len() != 2 {
		t.Fatalf("expected 2 triples, got %d", q.BGP.Len())
	}
}

func TestExtractRSPQLWindow(t *testing.T) {
	q, err := Extract(`SELECT ?s WHERE { ?s ?p ?o . } FROM NAMED WINDOW :w1 ON :stream1 RANGE PT10S STEP PT5S`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(q.Windows) != 1 {
		t.Fatalf("expected 1 window, got %d", len(q.Windows))
	}
	if q.Windows[0].Range != "PT10S" || q.Windows[0].Step != "PT5S" {
		t.Fatalf("unexpected window bounds: %+v", q.Windows[0])
	}
}

func TestExtractJanusQLWindow(t *testing.T) {
	q, err := Extract(`SELECT ?s WHERE { ?s ?p ?o . } FROM JANUS STREAM :stream1 OFFSET 5 START t1 END t2`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(q.Windows) != 1 {
		t.Fatalf("expected 1 window, got %d", len(q.Windows))
	}
	w := q.Windows[0]
	if w.Offset != "5" || w.Start != "t1" || w.End != "t2" {
		t.Fatalf("unexpected window bounds: %+v", w)
	}
}

func TestExtractUnbalancedBraces(t *testing.T) {
	_, err := Extract(`SELECT ?s WHERE { ?s ?p ?o .`)
	pe, ok := err.(*ParseError)
	if !ok || pe.Reason != UnbalancedBraces {
		t.Fatalf("expected UnbalancedBraces, got %v", err)
	}
}

func TestExtractMalformedTriple(t *testing.T) {
	_, err := Extract(`SELECT ?s WHERE { ?s ?p . }`)
	pe, ok := err.(*ParseError)
	if !ok || pe.Reason != MalformedTriple {
		t.Fatalf("expected MalformedTriple, got %v", err)
	}
}

func TestExtractEmptyBGP(t *testing.T) {
	_, err := Extract(`SELECT ?s WHERE {  }`)
	pe, ok := err.(*ParseError)
	if !ok || pe.Reason != EmptyBGP {
		t.Fatalf("expected EmptyBGP, got %v", err)
	}
}

func TestExtractCommentsStripped(t *testing.T) {
	q, err := Extract("SELECT ?s WHERE { # a comment\n ?s ?p ?o . }")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.BGP.Len() != 1 {
		t.Fatalf("expected comment to be stripped, got %d triples", q.BGP.Len())
	}
}

package query

import "github.com/rdfkit/isograph/isograph"

// Language identifies the surface syntax a query was written in.
type Language string

const (
	SPARQL  Language = "SPARQL"
	RSPQL   Language = "RSP_QL"
	JanusQL Language = "JanusQL"
)

// Window describes a streaming window clause. RSP-QL populates StreamIRI,
// Range, and Step; JanusQL populates StreamIRI, Offset, Start, and End.
// The unused fields for a given language are left at their zero value.
// All bound fields are compared verbatim, as strings — §9's Open Question
// on duration normalization is resolved in favor of the literal-string
// policy, so "PT10S" and "PT00010S" compare unequal.
type Window struct {
	Name      string
	StreamIRI string

	// RSP-QL fields.
	Range string
	Step  string

	// JanusQL fields.
	Offset string
	Start  string
	End    string
}

// Query is the result of dissecting a query's textual surface syntax: a
// language tag, a projection, a Basic Graph Pattern (whose anonymous nodes
// are isograph.Variable for ?name tokens and isograph.BlankNode for _:name
// tokens), and the stream/window parameters found in any FROM clause.
type Query struct {
	Language Language

	// Projection is the ordered SELECT list, or nil for "*".
	Projection []string
	Star       bool
	Distinct   bool
	Reduced    bool

	BGP     isograph.Graph
	Streams []string
	Windows []Window
}

// Package query dissects the surface syntax of SPARQL, RSP-QL, and JanusQL
// query text far enough to compare two queries for equivalence: it detects
// the language, extracts the projection list and Basic Graph Pattern, and
// recovers stream/window parameters. It is not a parser for any of these
// languages — only the slice of grammar the comparison needs.
package query

import (
	"errors"
	"fmt"
)

// ParseErrorReason identifies why a query's text could not be dissected.
type ParseErrorReason string

const (
	// UnbalancedBraces means the WHERE clause's '{' / '}' do not match.
	UnbalancedBraces ParseErrorReason = "UNBALANCED_BRACES"
	// EmptyBGP means a WHERE body contained no triple patterns.
	EmptyBGP ParseErrorReason = "EMPTY_BGP"
	// MalformedTriple means a '.'-terminated segment did not resolve to
	// exactly three tokens, or that the WHERE body holds more triple
	// patterns than ExtractOptions.MaxTripleCount allows.
	MalformedTriple ParseErrorReason = "MALFORMED_TRIPLE"
	// UnknownWindowClause means a window-bearing FROM clause matched
	// neither the RSP-QL nor the JanusQL surface form.
	UnknownWindowClause ParseErrorReason = "UNKNOWN_WINDOW_CLAUSE"
	// UnknownLanguage means none of the three languages' distinguishing
	// keywords were found (the language-detection error of §4.4 step 4).
	UnknownLanguage ParseErrorReason = "UNKNOWN_LANGUAGE"
)

var (
	errUnbalancedBraces    = errors.New("query: unbalanced braces in WHERE clause")
	errEmptyBGP            = errors.New("query: WHERE clause has no triple patterns")
	errMalformedTriple     = errors.New("query: triple pattern does not have exactly three tokens")
	errUnknownWindowClause = errors.New("query: FROM clause matches neither RSP-QL nor JanusQL window syntax")
	errUnknownLanguage     = errors.New("query: could not classify query language")
)

// ParseError reports a dissection failure with the input excerpt that
// triggered it, mirroring the teacher's ParseError (statement + position).
type ParseError struct {
	Reason ParseErrorReason
	Excerpt string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Excerpt == "" {
		return fmt.Sprintf("query: %s", e.Err)
	}
	return fmt.Sprintf("query: %s: %q", e.Err, e.Excerpt)
}

func (e *ParseError) Unwrap() error { return e.Err }

func newParseError(reason ParseErrorReason, err error, excerpt string) *ParseError {
	return &ParseError{Reason: reason, Excerpt: excerpt, Err: err}
}

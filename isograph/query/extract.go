package query

import (
	"regexp"
	"strings"

	"github.com/rdfkit/isograph/isograph"
)

// rdfType is the IRI `a` expands to as a predicate shorthand, per
// original_source/src/isomorphism/core.rs::extract_bgp_from_where.
const rdfType = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"

var (
	commentRe = regexp.MustCompile(`#[^\n]*`)
	prefixRe  = regexp.MustCompile(`(?i)PREFIX\s+(\w*):\s*<([^>]*)>`)
	selectRe  = regexp.MustCompile(`(?is)SELECT\s+(DISTINCT\s+|REDUCED\s+)?(\*\s*|(?:\?\w+\s*)+)WHERE`)
	whereKwRe = regexp.MustCompile(`(?i)WHERE`)

	rspWindowRe = regexp.MustCompile(
		`(?is)FROM\s+NAMED\s+WINDOW\s+(\S+)\s+ON\s+(\S+)(?:\s+RANGE\s+(\S+)\s+STEP\s+(\S+))?`)
	janusWindowRe = regexp.MustCompile(
		`(?is)FROM\s+JANUS\s+STREAM\s+(\S+)(?:\s+OFFSET\s+(\S+))?(?:\s+START\s+(\S+))?(?:\s+END\s+(\S+))?`)
)

// stripComments removes everything from a '#' to end of line, per §4.3.
func stripComments(text string) string {
	return commentRe.ReplaceAllString(text, "")
}

// prefixMap collects PREFIX declarations for local-token expansion.
func prefixMap(text string) map[string]string {
	m := make(map[string]string)
	for _, match := range prefixRe.FindAllStringSubmatch(text, -1) {
		m[match[1]] = match[2]
	}
	return m
}

// resolveIRIToken expands a `p:local` token using prefixes, mirroring
// sparql_parser.rs's unwrap_iri. Unresolvable prefixed tokens and already-
// bracketed <iri> tokens are returned verbatim (full resolution is out of
// scope).
func resolveIRIToken(token string, prefixes map[string]string) string {
	if strings.HasPrefix(token, "<") && strings.HasSuffix(token, ">") {
		return strings.TrimSuffix(strings.TrimPrefix(token, "<"), ">")
	}
	if idx := strings.Index(token, ":"); idx >= 0 && !strings.HasPrefix(token, "_:") {
		prefix, local := token[:idx], token[idx+1:]
		if base, ok := prefixes[prefix]; ok {
			return base + local
		}
	}
	return token
}

// parseNode classifies one token per §3's four Term variants.
func parseNode(token string, prefixes map[string]string) isograph.Term {
	switch {
	case token == "a":
		return isograph.IRI{Value: rdfType}
	case strings.HasPrefix(token, "?"):
		return isograph.Variable{Name: strings.TrimPrefix(token, "?")}
	case strings.HasPrefix(token, "_:"):
		return isograph.BlankNode{ID: strings.TrimPrefix(token, "_:")}
	case strings.HasPrefix(token, `"`):
		return parseLiteral(token, prefixes)
	default:
		return isograph.IRI{Value: resolveIRIToken(token, prefixes)}
	}
}

// parseLiteral splits a quoted token into its lexical form and optional
// @lang or ^^datatype suffix.
func parseLiteral(token string, prefixes map[string]string) isograph.Literal {
	end := closingQuote(token)
	if end < 0 {
		return isograph.Literal{Lexical: strings.Trim(token, `"`)}
	}
	lexical := unescapeLexical(token[1:end])
	rest := token[end+1:]
	switch {
	case strings.HasPrefix(rest, "@"):
		return isograph.Literal{Lexical: lexical, Lang: strings.TrimPrefix(rest, "@")}
	case strings.HasPrefix(rest, "^^"):
		dt := resolveIRIToken(strings.TrimPrefix(rest, "^^"), prefixes)
		return isograph.Literal{Lexical: lexical, Datatype: isograph.IRI{Value: dt}}
	default:
		return isograph.Literal{Lexical: lexical}
	}
}

func closingQuote(token string) int {
	for i := 1; i < len(token); i++ {
		if token[i] == '\\' {
			i++
			continue
		}
		if token[i] == '"' {
			return i
		}
	}
	return -1
}

func unescapeLexical(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, `\"`, `"`), `\\`, `\`)
}

// splitOutsideQuotesAndAngles splits s on sep, ignoring occurrences inside
// "..." or <...> spans, so a literal or IRI containing the separator is
// never mistaken for a boundary.
func splitOutsideQuotesAndAngles(s string, sep byte) []string {
	var out []string
	var cur strings.Builder
	inQuote, inAngle := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' && inQuote:
			cur.WriteByte(c)
			if i+1 < len(s) {
				i++
				cur.WriteByte(s[i])
			}
			continue
		case c == '"':
			inQuote = !inQuote
		case c == '<' && !inQuote:
			inAngle = true
		case c == '>' && !inQuote:
			inAngle = false
		}
		if c == sep && !inQuote && !inAngle {
			out = append(out, cur.String())
			cur.Reset()
			continue
		}
		cur.WriteByte(c)
	}
	if strings.TrimSpace(cur.String()) != "" {
		out = append(out, cur.String())
	}
	return out
}

// tokenize splits a triple pattern segment into whitespace-separated
// tokens, respecting quoted and bracketed spans.
func tokenize(segment string) []string {
	var out []string
	var cur strings.Builder
	inQuote, inAngle := false, false
	flush := func() {
		if cur.Len() > 0 {
			out = append(out, cur.String())
			cur.Reset()
		}
	}
	for i := 0; i < len(segment); i++ {
		c := segment[i]
		switch {
		case c == '\\' && inQuote:
			cur.WriteByte(c)
			if i+1 < len(segment) {
				i++
				cur.WriteByte(segment[i])
			}
			continue
		case c == '"':
			inQuote = !inQuote
		case c == '<' && !inQuote:
			inAngle = true
		case c == '>' && !inQuote:
			inAngle = false
		}
		if (c == ' ' || c == '\t' || c == '\n' || c == '\r') && !inQuote && !inAngle {
			flush()
			continue
		}
		cur.WriteByte(c)
	}
	flush()
	return out
}

// extractWhereBody returns the text between the first balanced '{' … '}'
// pair following the WHERE keyword.
func extractWhereBody(text string) (string, error) {
	loc := whereKwRe.FindStringIndex(text)
	if loc == nil {
		return "", newParseError(EmptyBGP, errEmptyBGP, excerpt(text))
	}
	rest := text[loc[1]:]
	start := strings.IndexByte(rest, '{')
	if start < 0 {
		return "", newParseError(UnbalancedBraces, errUnbalancedBraces, excerpt(rest))
	}
	depth := 0
	for i := start; i < len(rest); i++ {
		switch rest[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return rest[start+1 : i], nil
			}
		}
	}
	return "", newParseError(UnbalancedBraces, errUnbalancedBraces, excerpt(rest))
}

// parseProjection extracts the SELECT list (or "*") and the
// DISTINCT/REDUCED modifiers, per §4.3 and the DISTINCT/REDUCED
// supplement from sparql_parser.rs::ParsedSparqlQuery.
func parseProjection(text string) (projection []string, star, distinct, reduced bool, err error) {
	m := selectRe.FindStringSubmatch(text)
	if m == nil {
		return nil, false, false, false, newParseError(EmptyBGP, errEmptyBGP, excerpt(text))
	}
	switch strings.ToUpper(strings.TrimSpace(m[1])) {
	case "DISTINCT":
		distinct = true
	case "REDUCED":
		reduced = true
	}
	body := strings.TrimSpace(m[2])
	if body == "*" {
		return nil, true, distinct, reduced, nil
	}
	for _, tok := range strings.Fields(body) {
		projection = append(projection, strings.TrimPrefix(tok, "?"))
	}
	return projection, false, distinct, reduced, nil
}

// parseBGP splits a WHERE body into '.'-terminated triple patterns and
// resolves each into an isograph.Triple, enforcing opts.MaxTripleCount.
func parseBGP(body string, prefixes map[string]string, opts ExtractOptions) ([]isograph.Triple, error) {
	segments := splitOutsideQuotesAndAngles(body, '.')
	var triples []isograph.Triple
	for _, seg := range segments {
		if strings.TrimSpace(seg) == "" {
			continue
		}
		if opts.MaxTripleCount > 0 && len(triples) >= opts.MaxTripleCount {
			return nil, newParseError(MalformedTriple, errMalformedTriple, "triple count exceeds MaxTripleCount")
		}
		toks := tokenize(seg)
		if len(toks) != 3 {
			return nil, newParseError(MalformedTriple, errMalformedTriple, excerpt(seg))
		}
		triples = append(triples, isograph.Triple{
			S: parseNode(toks[0], prefixes),
			P: parseNode(toks[1], prefixes),
			O: parseNode(toks[2], prefixes),
		})
	}
	if len(triples) == 0 {
		return nil, newParseError(EmptyBGP, errEmptyBGP, excerpt(body))
	}
	return triples, nil
}

// parseWindows recovers RSP-QL or JanusQL window/stream clauses from the
// full query text, per §4.3's FROM NAMED WINDOW / FROM JANUS STREAM forms.
func parseWindows(text string, lang Language, prefixes map[string]string) ([]Window, []string, error) {
	var windows []Window
	streamSet := make(map[string]struct{})

	switch lang {
	case RSPQL:
		matches := rspWindowRe.FindAllStringSubmatch(text, -1)
		if matches == nil {
			return nil, nil, newParseError(UnknownWindowClause, errUnknownWindowClause, excerpt(text))
		}
		for _, m := range matches {
			stream := resolveIRIToken(m[2], prefixes)
			streamSet[stream] = struct{}{}
			windows = append(windows, Window{
				Name:      resolveIRIToken(m[1], prefixes),
				StreamIRI: stream,
				Range:     m[3],
				Step:      m[4],
			})
		}
	case JanusQL:
		matches := janusWindowRe.FindAllStringSubmatch(text, -1)
		if matches == nil {
			return nil, nil, newParseError(UnknownWindowClause, errUnknownWindowClause, excerpt(text))
		}
		for _, m := range matches {
			stream := resolveIRIToken(m[1], prefixes)
			streamSet[stream] = struct{}{}
			windows = append(windows, Window{
				StreamIRI: stream,
				Offset:    m[2],
				Start:     m[3],
				End:       m[4],
			})
		}
	}

	streams := make([]string, 0, len(streamSet))
	for s := range streamSet {
		streams = append(streams, s)
	}
	return windows, streams, nil
}

// Extract dissects text into a Query per §4.3. It is not a full parser:
// it recovers only the projection, the BGP, and stream/window parameters.
func Extract(text string, opts ...ExtractOptions) (Query, error) {
	o := normalizeExtractOptions(opts)
	clean := stripComments(text)

	lang, err := DetectLanguage(clean)
	if err != nil {
		return Query{}, err
	}

	prefixes := prefixMap(clean)

	projection, star, distinct, reduced, err := parseProjection(clean)
	if err != nil {
		return Query{}, err
	}

	body, err := extractWhereBody(clean)
	if err != nil {
		return Query{}, err
	}
	triples, err := parseBGP(body, prefixes, o)
	if err != nil {
		return Query{}, err
	}

	var windows []Window
	var streams []string
	if lang == RSPQL || lang == JanusQL {
		windows, streams, err = parseWindows(clean, lang, prefixes)
		if err != nil {
			return Query{}, err
		}
	}

	return Query{
		Language:   lang,
		Projection: projection,
		Star:       star,
		Distinct:   distinct,
		Reduced:    reduced,
		BGP:        isograph.NewGraph(triples...),
		Streams:    streams,
		Windows:    windows,
	}, nil
}

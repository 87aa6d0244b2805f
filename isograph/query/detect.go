package query

import "regexp"

// Recognizers are compiled once at package init, per §9 "Regex reuse" and
// the teacher's style of building reusable, state-free configuration once
// rather than inside the hot path.
var (
	janusKeywordRe = regexp.MustCompile(`(?is)FROM\s+JANUS\s+STREAM|\b(OFFSET|START|END)\b`)
	rspqlKeywordRe = regexp.MustCompile(`(?is)FROM\s+NAMED\s+WINDOW|RANGE\s+\S+\s+STEP\s+\S+`)
	sparqlShapeRe  = regexp.MustCompile(`(?is)SELECT.*WHERE`)
)

// DetectLanguage classifies text by the presence of distinguishing
// keywords, in the priority order of §4.4: JanusQL keywords beat RSP-QL
// keywords beat a bare SELECT...WHERE shape. Returns a *ParseError with
// reason UnknownLanguage if none match.
func DetectLanguage(text string) (Language, error) {
	clean := stripComments(text)
	switch {
	case janusKeywordRe.MatchString(clean):
		return JanusQL, nil
	case rspqlKeywordRe.MatchString(clean):
		return RSPQL, nil
	case sparqlShapeRe.MatchString(clean):
		return SPARQL, nil
	default:
		return "", newParseError(UnknownLanguage, errUnknownLanguage, excerpt(clean))
	}
}

func excerpt(s string) string {
	const maxLen = 60
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "…"
}

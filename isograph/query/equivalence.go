package query

import (
	"fmt"
	"sort"

	"github.com/rdfkit/isograph/isograph"
)

// ComparisonReport is the field-by-field verdict produced by Compare,
// mirroring original_source/src/isomorphism/api.rs::QueryComparisonResult.
type ComparisonReport struct {
	SameLanguage        bool
	SameProjectionArity bool
	SameStreams         bool
	SameWindows         bool
	SameBGP             bool
	Overall             bool
}

// String summarizes the report, adapted from QueryComparisonResult::summary().
func (r ComparisonReport) String() string {
	if r.Overall {
		return "queries are equivalent"
	}
	var reasons []string
	if !r.SameLanguage {
		reasons = append(reasons, "language differs")
	}
	if !r.SameProjectionArity {
		reasons = append(reasons, "projection arity differs")
	}
	if !r.SameStreams {
		reasons = append(reasons, "stream set differs")
	}
	if !r.SameWindows {
		reasons = append(reasons, "window parameters differ")
	}
	if !r.SameBGP {
		reasons = append(reasons, "basic graph pattern is not isomorphic")
	}
	return fmt.Sprintf("queries are not equivalent: %v", reasons)
}

// IsQueryIsomorphic implements §4.5: two query texts are equivalent iff
// their languages match, their non-BGP parameters match, and their BGPs
// are graph-isomorphic.
func IsQueryIsomorphic(text1, text2 string) (bool, error) {
	report, err := Compare(text1, text2)
	if err != nil {
		return false, err
	}
	return report.Overall, nil
}

// Compare dissects both query texts and reports equivalence field by
// field, per §4.5's `compare(q1, q2) → report`.
func Compare(text1, text2 string) (ComparisonReport, error) {
	q1, err := Extract(text1)
	if err != nil {
		return ComparisonReport{}, err
	}
	q2, err := Extract(text2)
	if err != nil {
		return ComparisonReport{}, err
	}

	report := ComparisonReport{
		SameLanguage:        q1.Language == q2.Language,
		SameProjectionArity: sameProjectionArity(q1, q2),
		SameStreams:         sameStreamSet(q1.Streams, q2.Streams),
		SameWindows:         sameWindowMultiset(q1.Windows, q2.Windows),
		SameBGP:             isograph.AreIsomorphic(q1.BGP, q2.BGP),
	}
	report.Overall = report.SameLanguage && report.SameProjectionArity &&
		report.SameStreams && report.SameWindows && report.SameBGP
	return report, nil
}

func sameProjectionArity(q1, q2 Query) bool {
	if q1.Star != q2.Star {
		return false
	}
	if q1.Star {
		return true
	}
	return len(q1.Projection) == len(q2.Projection)
}

func sameStreamSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	sa, sb := sortedCopy(a), sortedCopy(b)
	for i := range sa {
		if sa[i] != sb[i] {
			return false
		}
	}
	return true
}

func sortedCopy(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	sort.Strings(out)
	return out
}

// sameWindowMultiset compares window descriptors field-wise, as literal
// strings — no semantic duration normalization, per §9's Open Question
// resolution.
func sameWindowMultiset(a, b []Window) bool {
	if len(a) != len(b) {
		return false
	}
	sa, sb := sortedWindows(a), sortedWindows(b)
	for i := range sa {
		if sa[i] != sb[i] {
			return false
		}
	}
	return true
}

func sortedWindows(ws []Window) []Window {
	out := make([]Window, len(ws))
	copy(out, ws)
	sort.Slice(out, func(i, j int) bool { return windowKey(out[i]) < windowKey(out[j]) })
	return out
}

func windowKey(w Window) string {
	return w.StreamIRI + "\x00" + w.Range + "\x00" + w.Step + "\x00" + w.Offset + "\x00" + w.Start + "\x00" + w.End
}

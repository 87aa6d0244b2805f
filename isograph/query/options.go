package query

// ExtractOptions configures Extract. The zero value is valid;
// MaxTripleCount of zero means unbounded.
type ExtractOptions struct {
	// MaxTripleCount bounds the number of '.'-terminated triple patterns
	// a WHERE body may contain, guarding against a pathologically large
	// body the way the teacher's decoder guards against oversized input.
	MaxTripleCount int
}

func normalizeExtractOptions(opts []ExtractOptions) ExtractOptions {
	if len(opts) == 0 {
		return ExtractOptions{}
	}
	return opts[0]
}

package isograph

import (
	"encoding/binary"
	"hash/fnv"
	"sort"
)

// Signature is a structural-neighborhood hash assigned to an anonymous
// node during canonical labeling (spec §3's "Signature"). Two anonymous
// nodes may carry the same Signature only by genuine structural
// indistinguishability or by hash collision; the decider's trial-branching
// step exists to tell the two apart.
type Signature uint64

// sentinelSignature is S0 from §4.1 step 2: every anonymous node starts
// here, before any round of refinement has run.
const sentinelSignature Signature = 0x9e3779b97f4a7c15

func hashBytes(b []byte) Signature {
	h := fnv.New64a()
	h.Write(b)
	return Signature(h.Sum64())
}

func hashString(s string) Signature {
	return hashBytes([]byte(s))
}

// tupleHash encodes one incident triple's contribution to a node's
// signature: its role in the triple (S/P/O) plus the current
// signature-of each position, per §4.1 step 3. Role-tagging is what keeps
// this hash non-commutative over S/P/O, as Design Notes §9 requires.
func tupleHash(role byte, sigS, sigP, sigO Signature) uint64 {
	buf := make([]byte, 25)
	buf[0] = role
	binary.LittleEndian.PutUint64(buf[1:9], uint64(sigS))
	binary.LittleEndian.PutUint64(buf[9:17], uint64(sigP))
	binary.LittleEndian.PutUint64(buf[17:25], uint64(sigO))
	return uint64(hashBytes(buf))
}

// combineSorted folds a node's per-triple tuple hashes into its new
// signature. Sorting before folding makes the combination commutative
// over the (unordered) set of incident triples, per §4.1 step 3 and
// Design Notes §9 ("Hash commutativity").
func combineSorted(tupleHashes []uint64, prev Signature) Signature {
	sorted := make([]uint64, len(tupleHashes))
	copy(sorted, tupleHashes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	buf := make([]byte, 8+8*len(sorted))
	binary.LittleEndian.PutUint64(buf[:8], uint64(prev))
	for i, v := range sorted {
		binary.LittleEndian.PutUint64(buf[8+8*i:16+8*i], v)
	}
	return hashBytes(buf)
}

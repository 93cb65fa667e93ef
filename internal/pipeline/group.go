package pipeline

import "github.com/vulnticket/vulnticket/internal/types"

// Group is one ticket group: the contiguous run of sorted records sharing an
// identical (synopsis, severity) pair. Records keep the stable sort order
// from FilterRank.
type Group struct {
	Synopsis string
	VPR      string
	Records  []types.Record
}

// Partition splits a FilterRank-sorted sequence into contiguous groups,
// emitting a new group whenever the (synopsis, VPR) key changes. This is a
// single linear pass, not a hash grouping: it relies on the sort-order
// invariant from FilterRank. Severities the rank map does not know still key
// on their raw string, so two different unrecognized severities never merge
// even though they sort adjacently.
func Partition(sorted []types.Record) []Group {
	var groups []Group
	for _, r := range sorted {
		n := len(groups)
		if n == 0 || groups[n-1].Synopsis != r.Synopsis || groups[n-1].VPR != r.VPR {
			groups = append(groups, Group{Synopsis: r.Synopsis, VPR: r.VPR})
			n++
		}
		groups[n-1].Records = append(groups[n-1].Records, r)
	}
	return groups
}

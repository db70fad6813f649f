package host

import (
	"sort"

	"sizecheck/internal/ast"
)

// RangeSet is a sorted, deduplicated set of source ranges: the concrete
// type behind spec.md's opaque rangesOf and the witnesses attached to a
// failing loop in a Verdict.
type RangeSet struct {
	ranges []ast.Position
}

// NewRangeSet builds a RangeSet from zero or more positions, sorting and
// deduplicating them immediately.
func NewRangeSet(positions ...ast.Position) RangeSet {
	rs := RangeSet{ranges: append([]ast.Position(nil), positions...)}
	rs.normalize()
	return rs
}

// Union merges two RangeSets, deduplicating positions that appear in both.
func (rs RangeSet) Union(other RangeSet) RangeSet {
	merged := make([]ast.Position, 0, len(rs.ranges)+len(other.ranges))
	merged = append(merged, rs.ranges...)
	merged = append(merged, other.ranges...)
	out := RangeSet{ranges: merged}
	out.normalize()
	return out
}

// Positions returns the set's members in sorted order.
func (rs RangeSet) Positions() []ast.Position {
	return append([]ast.Position(nil), rs.ranges...)
}

// Empty reports whether the set has no members.
func (rs RangeSet) Empty() bool { return len(rs.ranges) == 0 }

func (rs *RangeSet) normalize() {
	sort.Slice(rs.ranges, func(i, j int) bool {
		a, b := rs.ranges[i], rs.ranges[j]
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		return a.Offset < b.Offset
	})
	out := rs.ranges[:0]
	for i, r := range rs.ranges {
		if i == 0 || r != rs.ranges[i-1] {
			out = append(out, r)
		}
	}
	rs.ranges = out
}

package graph

import (
	"sort"
	"strconv"
	"strings"
)

// VertexSet is an ordered, duplicate-free sequence of vertex indices kept
// in strictly ascending order. Every VertexSet handed to or returned from
// a package in this module satisfies that invariant; every constructor
// and mutator below preserves it.
//
// VertexSet is used by value: Insert and Union return a new VertexSet
// rather than mutating the receiver in place, so a set already held by a
// caller (e.g. as a memo key) is never perturbed by a later operation.
type VertexSet []int

// NewVertexSet builds a canonical VertexSet from arbitrary input,
// sorting and deduplicating it. Complexity: O(n log n).
func NewVertexSet(vs ...int) VertexSet {
	out := append(VertexSet{}, vs...)
	sort.Ints(out)
	out = dedupeSorted(out)

	return out
}

func dedupeSorted(s VertexSet) VertexSet {
	if len(s) == 0 {
		return s
	}
	out := s[:1]
	for _, v := range s[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}

	return out
}

// Contains reports whether x is a member of s. Complexity: O(log |s|).
func (s VertexSet) Contains(x int) bool {
	i := sort.SearchInts(s, x)

	return i < len(s) && s[i] == x
}

// Insert returns a new VertexSet containing every element of s plus x,
// still sorted and duplicate-free. If x is already present, s's contents
// are copied unchanged. Complexity: O(|s|).
func (s VertexSet) Insert(x int) VertexSet {
	i := sort.SearchInts(s, x)
	if i < len(s) && s[i] == x {
		out := make(VertexSet, len(s))
		copy(out, s)

		return out
	}

	out := make(VertexSet, 0, len(s)+1)
	out = append(out, s[:i]...)
	out = append(out, x)
	out = append(out, s[i:]...)

	return out
}

// Union returns a new VertexSet containing every element of s and other,
// sorted and duplicate-free. Complexity: O(|s|+|other|).
func (s VertexSet) Union(other VertexSet) VertexSet {
	merged := make(VertexSet, 0, len(s)+len(other))
	merged = append(merged, s...)
	merged = append(merged, other...)
	sort.Ints(merged)

	return dedupeSorted(merged)
}

// Equal reports whether s and other hold the same elements. Because both
// are canonical (sorted, duplicate-free), this is a simple element-wise
// comparison. Complexity: O(|s|).
func (s VertexSet) Equal(other VertexSet) bool {
	if len(s) != len(other) {
		return false
	}
	for i, v := range s {
		if other[i] != v {
			return false
		}
	}

	return true
}

// Key returns a canonical string encoding of s suitable for use as a map
// key; two equal VertexSets always produce the same Key.
// Complexity: O(|s|).
func (s VertexSet) Key() string {
	var b strings.Builder
	for i, v := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}

	return b.String()
}

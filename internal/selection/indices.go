package selection

import (
	"slices"
	"sort"
)

// Indices is a sorted set of selected data indices.
type Indices []int

// NewIndices builds a sorted, de-duplicated set from ids.
func NewIndices(ids ...int) Indices {
	if len(ids) == 0 {
		return nil
	}
	out := make(Indices, len(ids))
	copy(out, ids)
	sort.Ints(out)
	return slices.Compact(out)
}

// Len returns the number of indices.
func (s Indices) Len() int {
	return len(s)
}

// Contains returns true if i is in the set.
func (s Indices) Contains(i int) bool {
	_, found := slices.BinarySearch(s, i)
	return found
}

// Clone returns a copy of the set.
func (s Indices) Clone() Indices {
	if s == nil {
		return nil
	}
	return slices.Clone(s)
}

// Equal returns true if both sets hold the same indices.
func (s Indices) Equal(other Indices) bool {
	return slices.Equal(s, other)
}

// Combine merges hits into s according to mode and returns the result.
// Neither input is modified.
func (s Indices) Combine(mode Mode, hits Indices) Indices {
	switch mode {
	case ModeAppend:
		return s.union(hits)
	case ModeIntersect:
		return s.intersect(hits)
	case ModeSubtract:
		return s.subtract(hits)
	default:
		return hits.Clone()
	}
}

func (s Indices) union(o Indices) Indices {
	out := make(Indices, 0, len(s)+len(o))
	i, j := 0, 0
	for i < len(s) && j < len(o) {
		switch {
		case s[i] < o[j]:
			out = append(out, s[i])
			i++
		case s[i] > o[j]:
			out = append(out, o[j])
			j++
		default:
			out = append(out, s[i])
			i++
			j++
		}
	}
	out = append(out, s[i:]...)
	out = append(out, o[j:]...)
	return nilIfEmpty(out)
}

func (s Indices) intersect(o Indices) Indices {
	var out Indices
	i, j := 0, 0
	for i < len(s) && j < len(o) {
		switch {
		case s[i] < o[j]:
			i++
		case s[i] > o[j]:
			j++
		default:
			out = append(out, s[i])
			i++
			j++
		}
	}
	return out
}

func (s Indices) subtract(o Indices) Indices {
	var out Indices
	j := 0
	for _, v := range s {
		for j < len(o) && o[j] < v {
			j++
		}
		if j < len(o) && o[j] == v {
			continue
		}
		out = append(out, v)
	}
	return out
}

func nilIfEmpty(s Indices) Indices {
	if len(s) == 0 {
		return nil
	}
	return s
}

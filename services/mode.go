package services

import "golang.org/x/exp/constraints"

// Counted is a distinct value with its number of occurrences.
type Counted[T comparable] struct {
	Value T
	Count int
}

// CountValues counts occurrences of each distinct value. The result is
// ordered by first appearance in values.
func CountValues[T comparable](values []T) []Counted[T] {
	index := make(map[T]int)
	var counts []Counted[T]
	for _, v := range values {
		if i, seen := index[v]; seen {
			counts[i].Count++
			continue
		}
		index[v] = len(counts)
		counts = append(counts, Counted[T]{Value: v, Count: 1})
	}
	return counts
}

// Mode returns the most frequent value. On a tie the value that appears
// first in values wins.
func Mode[T comparable](values []T) (T, error) {
	var best Counted[T]
	if len(values) == 0 {
		return best.Value, ErrNoValues
	}

	for _, c := range CountValues(values) {
		if c.Count > best.Count {
			best = c
		}
	}
	return best.Value, nil
}

// MinMax returns the smallest and largest value.
func MinMax[T constraints.Ordered](values []T) (T, T, error) {
	var lo, hi T
	if len(values) == 0 {
		return lo, hi, ErrNoValues
	}

	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi, nil
}

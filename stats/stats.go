// stats/stats.go

// Package stats computes the derived aggregates behind the summary cards and
// chart datasets: counts, sums, group-by distributions and top-N rankings.
// Everything is a cheap pure function over the currently loaded list,
// recomputed per render; at page-sized inputs there is nothing to cache.
package stats

import "sort"

// Count returns how many items satisfy pred.
func Count[T any](items []T, pred func(T) bool) int {
	n := 0
	for _, item := range items {
		if pred(item) {
			n++
		}
	}
	return n
}

// SumBy totals value over all items.
func SumBy[T any](items []T, value func(T) float64) float64 {
	var total float64
	for _, item := range items {
		total += value(item)
	}
	return total
}

// GroupCount builds a key -> occurrence-count distribution.
func GroupCount[T any](items []T, key func(T) string) map[string]int {
	groups := make(map[string]int)
	for _, item := range items {
		groups[key(item)]++
	}
	return groups
}

// GroupSum builds a key -> sum distribution.
func GroupSum[T any](items []T, key func(T) string, value func(T) float64) map[string]float64 {
	groups := make(map[string]float64)
	for _, item := range items {
		groups[key(item)] += value(item)
	}
	return groups
}

// TopN returns the n items with the highest value, descending. Ties keep the
// original list order.
func TopN[T any](items []T, n int, value func(T) float64) []T {
	ranked := append([]T(nil), items...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return value(ranked[i]) > value(ranked[j])
	})
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

// SortedKeys returns the keys of a distribution in lexical order, for stable
// chart axes.
func SortedKeys[V any](groups map[string]V) []string {
	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

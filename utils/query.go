package utils

import (
	"sort"
	"strings"
)

// FilterBySearch returns the items whose searchable fields contain term,
// case-insensitively. An empty term returns the input unchanged.
func FilterBySearch[T any](items []T, term string, fields func(T) []string) []T {
	if term == "" {
		return items
	}
	needle := strings.ToLower(term)
	out := make([]T, 0, len(items))
	for _, item := range items {
		for _, field := range fields(item) {
			if strings.Contains(strings.ToLower(field), needle) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// SortByKey stable-sorts a copy of items with the given ordering. Ties keep
// their original relative order. ascending=false reverses the comparison,
// not the slice, so ties stay stable either way.
func SortByKey[T any](items []T, less func(a, b T) bool, ascending bool) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		if ascending {
			return less(out[i], out[j])
		}
		return less(out[j], out[i])
	})
	return out
}

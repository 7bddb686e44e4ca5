package utils

import "strings"

// ContainsFold reports whether any candidate contains term, ignoring case.
func ContainsFold(term string, candidates ...string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, candidate := range candidates {
		if strings.Contains(strings.ToLower(candidate), term) {
			return true
		}
	}
	return false
}

// FilterSlice keeps the items for which keep returns true.
func FilterSlice[T any](items []T, keep func(T) bool) []T {
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

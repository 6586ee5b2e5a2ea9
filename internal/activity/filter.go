// Package activity filters, normalizes, and aggregates raw GitHub payloads
// into per-repository activity.
package activity

import "github.com/dsablic/ghrecap/internal/window"

// FilterByDateRange keeps items whose date (the YYYY-MM-DD prefix of
// dateOf's result) falls within the window, inclusive on both ends.
// Dates compare lexicographically, which matches chronological order for
// this format. Filtering an already-filtered slice is a no-op.
func FilterByDateRange[T any](items []T, w window.Window, dateOf func(T) string) []T {
	var kept []T
	for _, item := range items {
		day := dateOf(item)
		if len(day) > 10 {
			day = day[:10]
		}
		if day >= w.Start && day <= w.End {
			kept = append(kept, item)
		}
	}
	return kept
}

// FilterByActor keeps items whose actor login matches username exactly.
// The match is case-sensitive; order is preserved.
func FilterByActor[T any](items []T, username string, actorOf func(T) string) []T {
	var kept []T
	for _, item := range items {
		if actorOf(item) == username {
			kept = append(kept, item)
		}
	}
	return kept
}

// internal/activity/discover.go
package activity

import (
	"context"
	"sort"
	"time"

	"github.com/dsablic/ghrecap/internal/github"
)

// EventLister is the subset of the GitHub client the discoverer needs.
type EventLister interface {
	UserEvents(ctx context.Context, username string) []github.Event
}

// DiscoverActiveRepos scans the user's recent public event feed and
// returns the distinct repositories touched since the cutoff, sorted by
// name.
//
// The cutoff approximates a month as 30 days. Only the platform's first
// page of events is scanned, so very active users see a shorter effective
// window than lookbackMonths suggests.
func DiscoverActiveRepos(ctx context.Context, client EventLister, username string, lookbackMonths int) []string {
	cutoff := time.Now().AddDate(0, 0, -lookbackMonths*30)

	seen := make(map[string]struct{})
	for _, event := range client.UserEvents(ctx, username) {
		created, err := time.Parse(time.RFC3339, event.CreatedAt)
		if err != nil || created.Before(cutoff) {
			continue
		}
		seen[event.Repo.Name] = struct{}{}
	}

	repos := make([]string, 0, len(seen))
	for name := range seen {
		repos = append(repos, name)
	}
	sort.Strings(repos)
	return repos
}

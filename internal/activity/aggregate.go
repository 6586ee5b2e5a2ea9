// internal/activity/aggregate.go
package activity

import (
	"context"
	"fmt"
	"strings"

	"github.com/dsablic/ghrecap/internal/github"
	"github.com/dsablic/ghrecap/internal/model"
	"github.com/dsablic/ghrecap/internal/window"
)

// Fetcher is the subset of the GitHub client the aggregator needs.
type Fetcher interface {
	ListCommits(ctx context.Context, owner, repo string, w window.Window) []github.Commit
	ListPullRequests(ctx context.Context, owner, repo string) []github.PullRequest
	ListReviews(ctx context.Context, owner, repo string, number int) []github.Review
	ListIssues(ctx context.Context, owner, repo string) []github.Issue
}

// Aggregator assembles one repository's activity for a time window.
type Aggregator struct {
	client Fetcher
}

// NewAggregator creates an Aggregator backed by the given client.
func NewAggregator(client Fetcher) *Aggregator {
	return &Aggregator{client: client}
}

// ParseRepoFullName splits an "owner/repo" full name.
func ParseRepoFullName(fullName string) (owner, repo string, err error) {
	owner, repo, ok := strings.Cut(fullName, "/")
	if !ok || owner == "" || repo == "" {
		return "", "", fmt.Errorf("invalid repository name %q, expected owner/repo", fullName)
	}
	return owner, repo, nil
}

// Aggregate fetches and normalizes the user's commits, pull requests,
// reviews, and issues for one repository within the window.
//
// The client's fetches are fail-soft, so a failed call surfaces as an
// empty collection rather than an error: a run that cannot fetch reviews
// for one PR still reports everything else. An error here means the
// repository itself could not be processed, letting the batch loop skip it
// and continue with the rest.
func (a *Aggregator) Aggregate(ctx context.Context, fullName, username string, w window.Window) (model.RepositoryActivity, error) {
	owner, repo, err := ParseRepoFullName(fullName)
	if err != nil {
		return model.RepositoryActivity{}, fmt.Errorf("aggregate %s: %w", fullName, err)
	}

	var activity model.RepositoryActivity

	// The commits listing is already scoped to the window by the query
	// bounds; author identity is not cross-checked.
	for _, c := range a.client.ListCommits(ctx, owner, repo, w) {
		activity.Commits = append(activity.Commits, NormalizeCommit(c))
	}

	prs := a.client.ListPullRequests(ctx, owner, repo)
	prs = FilterByDateRange(prs, w, func(pr github.PullRequest) string { return pr.CreatedAt })
	prs = FilterByActor(prs, username, func(pr github.PullRequest) string { return pr.User.Login })

	activity.Reviews = make(map[int][]model.Review)
	for _, pr := range prs {
		activity.PullRequests = append(activity.PullRequests, NormalizePullRequest(pr))

		reviews := FilterByActor(a.client.ListReviews(ctx, owner, repo, pr.Number), username,
			func(r github.Review) string { return r.User.Login })
		// Sparse map: PRs with no matching review contribute no entry.
		for _, r := range reviews {
			activity.Reviews[pr.Number] = append(activity.Reviews[pr.Number], NormalizeReview(r))
		}
	}

	issues := a.client.ListIssues(ctx, owner, repo)
	issues = FilterByDateRange(issues, w, func(i github.Issue) string { return i.CreatedAt })
	issues = FilterByActor(issues, username, func(i github.Issue) string { return i.User.Login })
	for _, issue := range issues {
		if issue.PullRequest != nil {
			// The issues endpoint lists pull requests too; those are
			// modeled separately.
			continue
		}
		activity.Issues = append(activity.Issues, NormalizeIssue(issue))
	}

	return activity, nil
}

// internal/activity/normalize.go
package activity

import (
	"github.com/dsablic/ghrecap/internal/github"
	"github.com/dsablic/ghrecap/internal/model"
)

// NormalizeCommit keeps the message and author date of a raw commit.
func NormalizeCommit(c github.Commit) model.Commit {
	return model.Commit{
		Message: c.Commit.Message,
		Date:    c.Commit.Author.Date,
	}
}

// NormalizePullRequest maps a raw pull request to its normalized shape.
// An absent body stays empty here; the renderer substitutes a placeholder.
func NormalizePullRequest(pr github.PullRequest) model.PullRequest {
	return model.PullRequest{
		Number:      pr.Number,
		Title:       pr.Title,
		State:       pr.State,
		CreatedAt:   pr.CreatedAt,
		Description: pr.Body,
		Labels:      labelNames(pr.Labels),
		Assignees:   logins(pr.Assignees),
	}
}

// NormalizeIssue maps a raw issue to its normalized shape.
func NormalizeIssue(issue github.Issue) model.Issue {
	return model.Issue{
		Title:       issue.Title,
		State:       issue.State,
		CreatedAt:   issue.CreatedAt,
		Description: issue.Body,
		Labels:      labelNames(issue.Labels),
		Assignees:   logins(issue.Assignees),
	}
}

// NormalizeReview keeps the state and body of a raw review.
func NormalizeReview(r github.Review) model.Review {
	return model.Review{
		State: r.State,
		Body:  r.Body,
	}
}

func labelNames(labels []github.Label) []string {
	var names []string
	for _, l := range labels {
		names = append(names, l.Name)
	}
	return names
}

func logins(actors []github.Actor) []string {
	var names []string
	for _, a := range actors {
		names = append(names, a.Login)
	}
	return names
}

// Package github is a minimal client for the GitHub REST API covering the
// five resource kinds the recap pipeline reads.
//
// All list operations are fail-soft: a non-200 response or transport error
// is logged and degrades that call's result to an empty collection, so one
// failed fetch never aborts a whole aggregation. Only the identity lookup
// propagates failure, since nothing downstream works without a username.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/dsablic/ghrecap/internal/window"
)

const apiBase = "https://api.github.com"

// Client performs authenticated requests against the GitHub API.
type Client struct {
	token   string
	baseURL string
	client  *http.Client
	logf    func(format string, args ...any)
}

// New creates a new Client. If baseURL is empty, the default GitHub API
// endpoint is used.
func New(token string, baseURL string, client *http.Client) *Client {
	if baseURL == "" {
		baseURL = apiBase
	}
	if client == nil {
		client = &http.Client{}
	}
	return &Client{
		token:   token,
		baseURL: baseURL,
		client:  client,
		logf: func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		},
	}
}

// SetLogf overrides where fail-soft diagnostics are written.
func (c *Client) SetLogf(logf func(format string, args ...any)) {
	c.logf = logf
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "token "+c.token)
	req.Header.Set("Accept", "application/vnd.github.v3+json")
}

// AuthenticatedUser fetches the identity behind the configured token.
func (c *Client) AuthenticatedUser(ctx context.Context) (User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/user", nil)
	if err != nil {
		return User{}, err
	}
	c.setHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return User{}, fmt.Errorf("github user API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return User{}, fmt.Errorf("github user API returned status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return User{}, fmt.Errorf("decode github user: %w", err)
	}
	return user, nil
}

// UserEvents fetches the most recent page of a user's public event feed.
func (c *Client) UserEvents(ctx context.Context, username string) []Event {
	var events []Event
	c.getList(ctx, fmt.Sprintf("%s/users/%s/events", c.baseURL, username),
		"events for "+username, &events)
	return events
}

// ListCommits fetches commits within the window's full-day bounds.
func (c *Client) ListCommits(ctx context.Context, owner, repo string, w window.Window) []Commit {
	params := url.Values{}
	params.Set("since", w.Since())
	params.Set("until", w.Until())

	var commits []Commit
	c.getList(ctx, fmt.Sprintf("%s/repos/%s/%s/commits?%s", c.baseURL, owner, repo, params.Encode()),
		"commits", &commits)
	return commits
}

// ListPullRequests fetches the most recently updated pull requests in any
// state. The result is unfiltered; window and author filtering is the
// caller's responsibility. Only the first page is fetched.
func (c *Client) ListPullRequests(ctx context.Context, owner, repo string) []PullRequest {
	var prs []PullRequest
	c.getList(ctx, fmt.Sprintf("%s/repos/%s/%s/pulls?state=all&sort=updated&direction=desc",
		c.baseURL, owner, repo), "PRs", &prs)
	return prs
}

// ListReviews fetches all reviews on one pull request.
func (c *Client) ListReviews(ctx context.Context, owner, repo string, number int) []Review {
	var reviews []Review
	c.getList(ctx, fmt.Sprintf("%s/repos/%s/%s/pulls/%d/reviews", c.baseURL, owner, repo, number),
		fmt.Sprintf("reviews for PR %d", number), &reviews)
	return reviews
}

// ListIssues fetches the most recently created issues in any state,
// unfiltered, first page only. Entries that are really pull requests are
// included as-is; callers decide what to do with them.
func (c *Client) ListIssues(ctx context.Context, owner, repo string) []Issue {
	var issues []Issue
	c.getList(ctx, fmt.Sprintf("%s/repos/%s/%s/issues?state=all&sort=created&direction=desc",
		c.baseURL, owner, repo), "issues", &issues)
	return issues
}

// getList performs a GET and decodes a JSON array into out. Any failure is
// logged and leaves out untouched.
func (c *Client) getList(ctx context.Context, reqURL, what string, out any) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logf("Error fetching %s: %v", what, err)
		return
	}
	c.setHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		c.logf("Error fetching %s: %v", what, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logf("Error fetching %s: %d, %s", what, resp.StatusCode, strings.TrimSpace(string(body)))
		return
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logf("Error decoding %s: %v", what, err)
	}
}

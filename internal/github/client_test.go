// internal/github/client_test.go
package github_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dsablic/ghrecap/internal/github"
	"github.com/dsablic/ghrecap/internal/window"
)

func TestAuthenticatedUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/user" {
			t.Errorf("expected path /user, got %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "token test-token" {
			t.Errorf("expected token auth header, got %q", got)
		}
		if got := r.Header.Get("Accept"); got != "application/vnd.github.v3+json" {
			t.Errorf("unexpected accept header %q", got)
		}
		json.NewEncoder(w).Encode(map[string]any{"login": "test_user"})
	}))
	defer server.Close()

	client := github.New("test-token", server.URL, nil)
	user, err := client.AuthenticatedUser(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Login != "test_user" {
		t.Errorf("expected test_user, got %q", user.Login)
	}
}

func TestAuthenticatedUserFailureIsFatal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Bad credentials", http.StatusUnauthorized)
	}))
	defer server.Close()

	client := github.New("bad-token", server.URL, nil)
	if _, err := client.AuthenticatedUser(context.Background()); err == nil {
		t.Fatal("expected error for non-200 identity lookup")
	}
}

func TestListCommitsQueryBounds(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/test_owner/test_repo/commits" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("since") != "2025-03-01T00:00:00Z" {
			t.Errorf("unexpected since %q", q.Get("since"))
		}
		if q.Get("until") != "2025-03-10T23:59:59Z" {
			t.Errorf("unexpected until %q", q.Get("until"))
		}
		fmt.Fprint(w, `[{"sha":"abc123","commit":{"message":"Test commit","author":{"name":"Test","date":"2025-03-01T12:00:00Z"}}}]`)
	}))
	defer server.Close()

	client := github.New("test-token", server.URL, nil)
	commits := client.ListCommits(context.Background(), "test_owner", "test_repo",
		window.Window{Start: "2025-03-01", End: "2025-03-10"})

	if len(commits) != 1 {
		t.Fatalf("expected 1 commit, got %d", len(commits))
	}
	if commits[0].Commit.Message != "Test commit" {
		t.Errorf("unexpected message %q", commits[0].Commit.Message)
	}
	if commits[0].Commit.Author.Date != "2025-03-01T12:00:00Z" {
		t.Errorf("unexpected date %q", commits[0].Commit.Author.Date)
	}
}

func TestListCommitsFailSoft(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Forbidden", http.StatusForbidden)
	}))
	defer server.Close()

	var logged []string
	client := github.New("test-token", server.URL, nil)
	client.SetLogf(func(format string, args ...any) {
		logged = append(logged, fmt.Sprintf(format, args...))
	})

	commits := client.ListCommits(context.Background(), "test_owner", "test_repo",
		window.Window{Start: "2025-03-01", End: "2025-03-10"})

	if len(commits) != 0 {
		t.Fatalf("expected empty result on 403, got %d commits", len(commits))
	}
	if len(logged) != 1 || !strings.Contains(logged[0], "403") {
		t.Errorf("expected the status code to be logged, got %v", logged)
	}
}

func TestListPullRequestsParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/o/r/pulls" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("state") != "all" || q.Get("sort") != "updated" || q.Get("direction") != "desc" {
			t.Errorf("unexpected query %q", r.URL.RawQuery)
		}
		fmt.Fprint(w, `[{"number":7,"title":"Add thing","state":"open","created_at":"2025-03-02T09:00:00Z","body":"","user":{"login":"test_user"}}]`)
	}))
	defer server.Close()

	client := github.New("test-token", server.URL, nil)
	prs := client.ListPullRequests(context.Background(), "o", "r")
	if len(prs) != 1 || prs[0].Number != 7 || prs[0].User.Login != "test_user" {
		t.Fatalf("unexpected result %+v", prs)
	}
}

func TestListReviewsPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/o/r/pulls/7/reviews" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		fmt.Fprint(w, `[{"state":"APPROVED","body":"LGTM","user":{"login":"test_user"}}]`)
	}))
	defer server.Close()

	client := github.New("test-token", server.URL, nil)
	reviews := client.ListReviews(context.Background(), "o", "r", 7)
	if len(reviews) != 1 || reviews[0].State != "APPROVED" {
		t.Fatalf("unexpected result %+v", reviews)
	}
}

func TestListIssuesMarksPullRequests(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("state") != "all" || q.Get("sort") != "created" || q.Get("direction") != "desc" {
			t.Errorf("unexpected query %q", r.URL.RawQuery)
		}
		fmt.Fprint(w, `[
			{"number":1,"title":"Real issue","state":"open","created_at":"2025-03-02T09:00:00Z","user":{"login":"test_user"}},
			{"number":2,"title":"Actually a PR","state":"open","created_at":"2025-03-03T09:00:00Z","user":{"login":"test_user"},"pull_request":{"url":"https://example.test/pulls/2"}}
		]`)
	}))
	defer server.Close()

	client := github.New("test-token", server.URL, nil)
	issues := client.ListIssues(context.Background(), "o", "r")
	if len(issues) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(issues))
	}
	if issues[0].PullRequest != nil {
		t.Error("plain issue should have a nil pull_request stub")
	}
	if issues[1].PullRequest == nil {
		t.Error("PR-backed entry should have a non-nil pull_request stub")
	}
}

func TestTransportFailureFailSoft(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	var logged []string
	client := github.New("test-token", server.URL, nil)
	client.SetLogf(func(format string, args ...any) {
		logged = append(logged, fmt.Sprintf(format, args...))
	})

	if events := client.UserEvents(context.Background(), "test_user"); len(events) != 0 {
		t.Fatalf("expected empty result on transport failure, got %d", len(events))
	}
	if len(logged) != 1 {
		t.Errorf("expected the failure to be logged, got %v", logged)
	}
}

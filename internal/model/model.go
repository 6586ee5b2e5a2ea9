// internal/model/model.go
package model

// Commit is a normalized commit. Only the message and author date survive
// normalization; the rest of the API payload is dropped.
type Commit struct {
	Message string `json:"message"`
	Date    string `json:"date"`
}

// PullRequest is a normalized pull request authored by the user.
type PullRequest struct {
	Number      int      `json:"number"`
	Title       string   `json:"title"`
	State       string   `json:"state"`
	CreatedAt   string   `json:"created_at"`
	Description string   `json:"description,omitempty"`
	Labels      []string `json:"labels,omitempty"`
	Assignees   []string `json:"assignees,omitempty"`
}

// Issue is a normalized issue authored by the user. Issues and pull
// requests share a numbering space on GitHub but are kept as distinct
// entities here; an issue's number is never used for correlation.
type Issue struct {
	Title       string   `json:"title"`
	State       string   `json:"state"`
	CreatedAt   string   `json:"created_at"`
	Description string   `json:"description,omitempty"`
	Labels      []string `json:"labels,omitempty"`
	Assignees   []string `json:"assignees,omitempty"`
}

// Review is one review round the user performed on a pull request.
type Review struct {
	State string `json:"state"`
	Body  string `json:"body,omitempty"`
}

// RepositoryActivity aggregates one repository's activity within one time
// window. Reviews is keyed by pull request number; pull requests with no
// matching review have no entry at all.
type RepositoryActivity struct {
	Commits      []Commit         `json:"commits"`
	PullRequests []PullRequest    `json:"pull_requests"`
	Reviews      map[int][]Review `json:"reviews"`
	Issues       []Issue          `json:"issues"`
}

// RepoActivity pairs a repository full name (owner/repo) with its activity.
type RepoActivity struct {
	Name string `json:"repository"`
	RepositoryActivity
}

// Report is the top-level result. Repositories preserves the user's
// selection order.
type Report struct {
	GeneratedAt  string         `json:"generated_at"`
	Username     string         `json:"username"`
	Start        string         `json:"start"`
	End          string         `json:"end"`
	Repositories []RepoActivity `json:"repositories"`
}

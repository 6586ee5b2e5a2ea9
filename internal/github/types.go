// internal/github/types.go
package github

// User is the authenticated user's identity.
type User struct {
	Login string `json:"login"`
}

// Actor is the login of whoever authored or performed something.
type Actor struct {
	Login string `json:"login"`
}

// Label is a repository label attached to a pull request or issue.
type Label struct {
	Name string `json:"name"`
}

// Event is one entry of a user's public event feed.
type Event struct {
	Type      string `json:"type"`
	CreatedAt string `json:"created_at"`
	Repo      struct {
		Name string `json:"name"`
	} `json:"repo"`
}

// Commit mirrors the commits list payload.
type Commit struct {
	SHA    string `json:"sha"`
	Commit struct {
		Message string `json:"message"`
		Author  struct {
			Name string `json:"name"`
			Date string `json:"date"`
		} `json:"author"`
	} `json:"commit"`
}

// PullRequest mirrors the pulls list payload.
type PullRequest struct {
	Number    int     `json:"number"`
	Title     string  `json:"title"`
	State     string  `json:"state"`
	CreatedAt string  `json:"created_at"`
	Body      string  `json:"body"`
	User      Actor   `json:"user"`
	Labels    []Label `json:"labels"`
	Assignees []Actor `json:"assignees"`
}

// Issue mirrors the issues list payload. The issues endpoint also returns
// pull requests; those carry a non-nil PullRequest stub.
type Issue struct {
	Number      int     `json:"number"`
	Title       string  `json:"title"`
	State       string  `json:"state"`
	CreatedAt   string  `json:"created_at"`
	Body        string  `json:"body"`
	User        Actor   `json:"user"`
	Labels      []Label `json:"labels"`
	Assignees   []Actor `json:"assignees"`
	PullRequest *struct {
		URL string `json:"url"`
	} `json:"pull_request"`
}

// Review mirrors the pull request reviews payload.
type Review struct {
	State       string `json:"state"`
	Body        string `json:"body"`
	User        Actor  `json:"user"`
	SubmittedAt string `json:"submitted_at"`
}

// Package summarize polishes a rendered activity report into prose via a
// local Ollama instance. A failure here is recoverable: the markdown
// report has already been written by the time summarization runs.
package summarize

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

const defaultBaseURL = "http://localhost:11434"

// DefaultModel is the Ollama model used when none is configured.
const DefaultModel = "llama3.1:latest"

// Client talks to Ollama's generate endpoint.
type Client struct {
	baseURL string
	model   string
	client  *http.Client
}

// New creates a new Client. Empty baseURL and model fall back to the local
// Ollama defaults.
func New(baseURL, model string, client *http.Client) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	if client == nil {
		client = &http.Client{}
	}
	return &Client{
		baseURL: baseURL,
		model:   model,
		client:  client,
	}
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// Summarize sends the markdown report content to Ollama and returns the
// generated summary.
func (c *Client) Summarize(ctx context.Context, content string) (string, error) {
	payload, err := json.Marshal(generateRequest{
		Model:  c.model,
		Prompt: buildPrompt(content),
		Stream: false,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate",
		bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("connect to Ollama: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("ollama API returned status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var gen generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gen); err != nil {
		return "", fmt.Errorf("decode ollama response: %w", err)
	}
	if gen.Response == "" {
		return "No summary generated.", nil
	}
	return gen.Response, nil
}

// ReadReport loads a previously written markdown report.
func ReadReport(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read report: %w", err)
	}
	return string(data), nil
}

func buildPrompt(content string) string {
	var b strings.Builder

	b.WriteString(`Format the following GitHub activity report.
Organize the contributions into sections for PRs, commits, issues, and reviews.
For each section, include links to relevant PRs or issues along with brief descriptions.
You do not need to include the dates, but try to take the descriptions provided and expand on it in the report.

Follow this structure:

PRs (count): Repository Name
- [Link to PR] <= Description
- [Link to PR] <= Description

Commits (count): Repository Name
- [Link to Commit] <= Description
- [Link to Commit] <= Description

Issues (count):
- [Link to Issue] <= Description
- [Link to Issue] <= Description

Reviews (count): Repository Name
- Reviewed PR #X: Description
- Reviewed PR #Y: Description

Here is the GitHub activity data:
`)
	b.WriteString(content)
	b.WriteString("\n")

	return b.String()
}

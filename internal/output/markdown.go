// internal/output/markdown.go
package output

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/dsablic/ghrecap/internal/model"
)

// WriteMarkdown writes the activity report as GitHub-flavored markdown to w.
// Repositories appear in selection order; each gets four fixed sections
// with a placeholder line when a collection is empty.
func WriteMarkdown(w io.Writer, report model.Report) error {
	fmt.Fprintf(w, "# GitHub Activity Summary\n\n")

	for _, repo := range report.Repositories {
		fmt.Fprintf(w, "## Repository: %s\n\n", repo.Name)

		fmt.Fprintf(w, "### Commits\n")
		if len(repo.Commits) > 0 {
			for _, c := range repo.Commits {
				fmt.Fprintf(w, "- **Message**: %s\n", c.Message)
				fmt.Fprintf(w, "  - **Date**: %s\n", c.Date)
			}
		} else {
			fmt.Fprintf(w, "- No commits found.\n")
		}
		fmt.Fprintln(w)

		fmt.Fprintf(w, "### Pull Requests\n")
		if len(repo.PullRequests) > 0 {
			for _, pr := range repo.PullRequests {
				fmt.Fprintf(w, "- **Title**: %s\n", pr.Title)
				fmt.Fprintf(w, "  - **State**: %s\n", pr.State)
				fmt.Fprintf(w, "  - **Created At**: %s\n", pr.CreatedAt)
				fmt.Fprintf(w, "  - **Description**: %s\n", orPlaceholder(pr.Description, "No description provided."))
				if len(pr.Labels) > 0 {
					fmt.Fprintf(w, "  - **Labels**: %s\n", strings.Join(pr.Labels, ", "))
				}
				if len(pr.Assignees) > 0 {
					fmt.Fprintf(w, "  - **Assignees**: %s\n", strings.Join(pr.Assignees, ", "))
				}
			}
		} else {
			fmt.Fprintf(w, "- No pull requests found.\n")
		}
		fmt.Fprintln(w)

		fmt.Fprintf(w, "### Reviews I Performed\n")
		if len(repo.Reviews) > 0 {
			for _, number := range sortedPRNumbers(repo.Reviews) {
				for _, review := range repo.Reviews[number] {
					fmt.Fprintf(w, "- **PR #%d**\n", number)
					fmt.Fprintf(w, "  - **State**: %s\n", review.State)
					fmt.Fprintf(w, "  - **Body**: %s\n", orPlaceholder(review.Body, "No review comments provided."))
				}
			}
		} else {
			fmt.Fprintf(w, "- No reviews performed.\n")
		}
		fmt.Fprintln(w)

		fmt.Fprintf(w, "### Issues\n")
		if len(repo.Issues) > 0 {
			for _, issue := range repo.Issues {
				fmt.Fprintf(w, "- **Title**: %s\n", issue.Title)
				fmt.Fprintf(w, "  - **State**: %s\n", issue.State)
				fmt.Fprintf(w, "  - **Created At**: %s\n", issue.CreatedAt)
				fmt.Fprintf(w, "  - **Description**: %s\n", orPlaceholder(issue.Description, "No description provided."))
				if len(issue.Labels) > 0 {
					fmt.Fprintf(w, "  - **Labels**: %s\n", strings.Join(issue.Labels, ", "))
				}
				if len(issue.Assignees) > 0 {
					fmt.Fprintf(w, "  - **Assignees**: %s\n", strings.Join(issue.Assignees, ", "))
				}
			}
		} else {
			fmt.Fprintf(w, "- No issues found.\n")
		}
		fmt.Fprintln(w)
	}

	return nil
}

// Save renders the report to path as UTF-8 markdown.
func Save(path string, report model.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteMarkdown(f, report); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func orPlaceholder(s, placeholder string) string {
	if s == "" {
		return placeholder
	}
	return s
}

// sortedPRNumbers keeps the review sections deterministic.
func sortedPRNumbers(reviews map[int][]model.Review) []int {
	numbers := make([]int, 0, len(reviews))
	for n := range reviews {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)
	return numbers
}

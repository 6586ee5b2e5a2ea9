// internal/ui/select.go
package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
)

// ErrInvalidSelection is returned when a selection token is not a number.
var ErrInvalidSelection = errors.New("Invalid input. Please enter comma-separated numbers.")

// ParseSelection parses a comma-separated list of 1-based indices.
// Any non-numeric token is an error; indices outside [1, n] are silently
// dropped.
func ParseSelection(input string, n int) ([]int, error) {
	var indices []int
	for _, part := range strings.Split(input, ",") {
		idx, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, ErrInvalidSelection
		}
		if idx < 1 || idx > n {
			continue
		}
		indices = append(indices, idx)
	}
	return indices, nil
}

// SelectRepos asks the user which repositories to aggregate. On a TTY it
// shows a multi-select form; otherwise it lists the repositories on out
// and reads a comma-separated index selection from in.
func SelectRepos(repos []string, in io.Reader, out io.Writer) ([]string, error) {
	if IsTTY() {
		return selectWithForm(repos)
	}
	return PromptSelect(repos, in, out)
}

func selectWithForm(repos []string) ([]string, error) {
	var selected []string
	form := huh.NewForm(huh.NewGroup(
		huh.NewMultiSelect[string]().
			Title("Select the repositories you want to fetch").
			Options(huh.NewOptions(repos...)...).
			Value(&selected),
	))
	if err := form.Run(); err != nil {
		return nil, err
	}
	return selected, nil
}

// PromptSelect is the plain-text selection path used when stderr is not a
// terminal.
func PromptSelect(repos []string, in io.Reader, out io.Writer) ([]string, error) {
	for i, name := range repos {
		fmt.Fprintf(out, "%d. %s\n", i+1, name)
	}
	fmt.Fprint(out, "Enter the numbers of the repositories you want to fetch (comma-separated): ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return nil, err
	}

	indices, err := ParseSelection(strings.TrimSpace(line), len(repos))
	if err != nil {
		return nil, err
	}

	var selected []string
	for _, idx := range indices {
		selected = append(selected, repos[idx-1])
	}
	return selected, nil
}

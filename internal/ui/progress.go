// Package ui handles repository selection and progress display for the
// aggregation loop.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

// IsTTY returns true if stderr is a terminal.
func IsTTY() bool {
	return term.IsTerminal(os.Stderr.Fd())
}

// --- Plain text fallback ---

// PlainProgress prints progress messages to a callback function.
// Used when stderr is not a TTY (e.g., piped output).
type PlainProgress struct {
	print func(string)
}

// NewPlainProgress creates a new PlainProgress with the given print callback.
func NewPlainProgress(print func(string)) *PlainProgress {
	return &PlainProgress{print: print}
}

// Update prints a progress message for a completed repository.
func (p *PlainProgress) Update(completed, total int, repoName string) {
	p.print(fmt.Sprintf("[%d/%d] Aggregated %s", completed, total, repoName))
}

// Done prints a completion message.
func (p *PlainProgress) Done(total int) {
	p.print(fmt.Sprintf("Done! Aggregated %d repositories.", total))
}

// --- TUI progress ---

// ProgressMsg is sent to the bubbletea program when a repository is done.
type ProgressMsg struct {
	Completed int
	Total     int
	RepoName  string
}

// DoneMsg is sent to the bubbletea program when all repositories are done.
type DoneMsg struct{}

type progressModel struct {
	progress  progress.Model
	completed int
	total     int
	repoName  string
	done      bool
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func newProgressModel(total int) progressModel {
	return progressModel{
		progress: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(50),
			progress.WithoutPercentage(),
		),
		total: total,
	}
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.progress.Width = msg.Width - 10
		if m.progress.Width > 60 {
			m.progress.Width = 60
		}
	case ProgressMsg:
		m.completed = msg.Completed
		m.total = msg.Total
		m.repoName = msg.RepoName
		pct := float64(m.completed) / float64(m.total)
		return m, m.progress.SetPercent(pct)
	case DoneMsg:
		m.done = true
		return m, tea.Quit
	case progress.FrameMsg:
		pm, cmd := m.progress.Update(msg)
		m.progress = pm.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m progressModel) View() string {
	if m.done {
		return fmt.Sprintf("\n  %s\n\n",
			titleStyle.Render(fmt.Sprintf("Done! Aggregated %d repositories.", m.total)))
	}

	pad := strings.Repeat(" ", 2)
	counter := infoStyle.Render(fmt.Sprintf("%d/%d", m.completed, m.total))
	desc := m.repoName
	if desc == "" {
		desc = "Starting..."
	}

	return "\n" +
		pad + titleStyle.Render("Fetching repository activity") + "\n" +
		pad + m.progress.View() + "  " + counter + "\n" +
		pad + infoStyle.Render(desc) + "\n\n"
}

// TUIProgress drives a bubbletea progress program on stderr so markdown on
// stdout stays clean.
type TUIProgress struct {
	program  *tea.Program
	finished chan struct{}
}

// NewTUIProgress starts the progress program in the background.
func NewTUIProgress(total int) *TUIProgress {
	p := tea.NewProgram(newProgressModel(total), tea.WithOutput(os.Stderr))
	t := &TUIProgress{program: p, finished: make(chan struct{})}
	go func() {
		_, _ = p.Run()
		close(t.finished)
	}()
	return t
}

// Update reports one completed repository.
func (t *TUIProgress) Update(completed, total int, repoName string) {
	t.program.Send(ProgressMsg{Completed: completed, Total: total, RepoName: repoName})
}

// Done stops the program and waits for it to release the terminal.
func (t *TUIProgress) Done(total int) {
	t.program.Send(DoneMsg{})
	<-t.finished
}

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dsablic/ghrecap/internal/activity"
	"github.com/dsablic/ghrecap/internal/auth"
	"github.com/dsablic/ghrecap/internal/github"
	"github.com/dsablic/ghrecap/internal/model"
	"github.com/dsablic/ghrecap/internal/output"
	"github.com/dsablic/ghrecap/internal/summarize"
	"github.com/dsablic/ghrecap/internal/ui"
	"github.com/dsablic/ghrecap/internal/window"
)

const defaultOutput = "github_activity_summary.md"

func main() {
	root := &cobra.Command{
		Use:   "ghrecap",
		Short: "Summarize your recent GitHub activity as a markdown report",
	}

	root.AddCommand(newRecapCmd())
	root.AddCommand(newSummarizeCmd())
	root.AddCommand(newAuthCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRecapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recap",
		Short: "Aggregate your activity across repositories into a markdown report",
		RunE:  runRecap,
	}
	cmd.Flags().String("start", "", "Start date (YYYY-MM-DD), defaults to the previous Sunday")
	cmd.Flags().String("end", "", "End date (YYYY-MM-DD), defaults to start plus six days")
	cmd.Flags().String("output", defaultOutput, "Markdown file to write")
	cmd.Flags().String("select", "", "Comma-separated repository numbers, skipping the interactive prompt")
	cmd.Flags().Int("lookback-months", 6, "How far back to scan the event feed for active repositories")
	cmd.Flags().Bool("summarize", false, "Polish the report into prose with a local Ollama instance")
	cmd.Flags().String("model", summarize.DefaultModel, "Ollama model to use with --summarize")
	cmd.Flags().String("ollama-url", "", "Ollama base URL (default http://localhost:11434)")
	return cmd
}

func runRecap(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	flags := cmd.Flags()

	start, _ := flags.GetString("start")
	end, _ := flags.GetString("end")
	outputPath, _ := flags.GetString("output")
	selectFlag, _ := flags.GetString("select")
	lookback, _ := flags.GetInt("lookback-months")
	doSummarize, _ := flags.GetBool("summarize")
	modelName, _ := flags.GetString("model")
	ollamaURL, _ := flags.GetString("ollama-url")

	w, err := window.Resolve(start, end)
	if err != nil {
		return err
	}

	store := auth.NewFileStore(auth.DefaultStorePath())
	token, err := store.ResolveToken()
	if err != nil {
		return err
	}

	client := github.New(token, "", nil)

	user, err := client.AuthenticatedUser(ctx)
	if err != nil {
		return fmt.Errorf("fetch user info: %w", err)
	}

	repos := activity.DiscoverActiveRepos(ctx, client, user.Login, lookback)
	if len(repos) == 0 {
		return fmt.Errorf("no active repositories found in the past %d months", lookback)
	}

	selected, err := selectRepos(repos, selectFlag, lookback)
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		return errors.New("No valid repositories selected.")
	}

	fmt.Fprintf(os.Stderr, "Fetching GitHub activity from %s to %s...\n", w.Start, w.End)

	report := model.Report{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Username:    user.Login,
		Start:       w.Start,
		End:         w.End,
	}

	agg := activity.NewAggregator(client)
	prog := progressFor(len(selected))
	for i, name := range selected {
		act, err := agg.Aggregate(ctx, name, user.Login, w)
		if err != nil {
			// One repository's failure must not abort the batch.
			fmt.Fprintf(os.Stderr, "Failed to fetch activity for %s: %v\n", name, err)
			continue
		}
		report.Repositories = append(report.Repositories, model.RepoActivity{
			Name:               name,
			RepositoryActivity: act,
		})
		prog.Update(i+1, len(selected), name)
	}
	prog.Done(len(selected))

	if err := output.Save(outputPath, report); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "\nGitHub activity summary saved as %q.\n", outputPath)

	if doSummarize {
		if err := summarizeReport(ctx, outputPath, modelName, ollamaURL); err != nil {
			// Recoverable: the report file is already on disk.
			fmt.Fprintf(os.Stderr, "Summarization failed: %v\n", err)
		}
	}
	return nil
}

func selectRepos(repos []string, selectFlag string, lookback int) ([]string, error) {
	if selectFlag != "" {
		indices, err := ui.ParseSelection(selectFlag, len(repos))
		if err != nil {
			return nil, err
		}
		var selected []string
		for _, idx := range indices {
			selected = append(selected, repos[idx-1])
		}
		return selected, nil
	}

	fmt.Fprintf(os.Stderr, "Repositories where you've been active in the past %d months:\n", lookback)
	return ui.SelectRepos(repos, os.Stdin, os.Stderr)
}

type progressReporter interface {
	Update(completed, total int, repoName string)
	Done(total int)
}

func progressFor(total int) progressReporter {
	if ui.IsTTY() {
		return ui.NewTUIProgress(total)
	}
	return ui.NewPlainProgress(func(msg string) {
		fmt.Fprintln(os.Stderr, msg)
	})
}

func newSummarizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Polish an existing activity report into prose with Ollama",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, _ := cmd.Flags().GetString("input")
			modelName, _ := cmd.Flags().GetString("model")
			ollamaURL, _ := cmd.Flags().GetString("ollama-url")
			return summarizeReport(cmd.Context(), input, modelName, ollamaURL)
		},
	}
	cmd.Flags().String("input", defaultOutput, "Markdown report to summarize")
	cmd.Flags().String("model", summarize.DefaultModel, "Ollama model to use")
	cmd.Flags().String("ollama-url", "", "Ollama base URL (default http://localhost:11434)")
	return cmd
}

func summarizeReport(ctx context.Context, path, modelName, baseURL string) error {
	content, err := summarize.ReadReport(path)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr, "Generating weekly summary with Ollama...")
	client := summarize.New(baseURL, modelName, nil)
	text, err := client.Summarize(ctx, content)
	if err != nil {
		return err
	}
	fmt.Println(text)
	return nil
}

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage authentication",
	}

	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Store a GitHub token for later runs",
		RunE:  runAuthLogin,
	}
	loginCmd.Flags().String("token", "", "Token to store (prompted for when omitted)")

	cmd.AddCommand(loginCmd)
	return cmd
}

func runAuthLogin(cmd *cobra.Command, args []string) error {
	token, _ := cmd.Flags().GetString("token")
	if token == "" {
		fmt.Fprint(os.Stderr, "GitHub token: ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return fmt.Errorf("read token: %w", err)
		}
		token = strings.TrimSpace(string(raw))
	}
	if token == "" {
		return errors.New("no token provided")
	}

	client := github.New(token, "", nil)
	user, err := client.AuthenticatedUser(cmd.Context())
	if err != nil {
		return fmt.Errorf("token verification failed: %w", err)
	}

	store := auth.NewFileStore(auth.DefaultStorePath())
	if err := store.Save(auth.Credentials{Token: token, Username: user.Login}); err != nil {
		return fmt.Errorf("save credentials: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Authenticated as %s.\n", user.Login)
	return nil
}

package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/maravedi/jules-actions/cmd/jules-action/internal"
	"github.com/maravedi/jules-actions/internal/config"
	"github.com/maravedi/jules-actions/internal/github"
	"github.com/maravedi/jules-actions/internal/jules"
	"github.com/maravedi/jules-actions/internal/planner"
	"github.com/maravedi/jules-actions/internal/types"
	"github.com/maravedi/jules-actions/internal/util"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate an implementation plan for the triggering issue or PR",
	Long: `Run a Jules planning session for the issue or pull request named in
the GitHub event payload and post the result back as a comment.

This is the command the action invokes when someone comments
"@jules plan". The session prompt is assembled from the issue title,
body, and the triggering comment. If Jules produces no plan within the
polling budget, a progress summary or a pending notice is posted
instead; the step still succeeds.`,
	Args: cobra.NoArgs,
	RunE: runPlan,
}

var (
	planEventFile string
	planDryRun    bool
)

func init() {
	planCmd.Flags().StringVar(&planEventFile, "event-file", "", "Path to the event payload (default: $GITHUB_EVENT_PATH)")
	planCmd.Flags().BoolVar(&planDryRun, "dry-run", false, "Print the comment instead of posting it")
}

func runPlan(cmd *cobra.Command, args []string) error {
	flags, err := ParseGlobalFlags(cmd)
	if err != nil {
		return err
	}

	cfg, err := loadActionConfig(flags)
	if err != nil {
		return err
	}

	runID := types.NewRunID()
	logger := newRunLogger(cmd, flags, cfg, runID)
	formatter := internal.NewFormatter(outputFormat(flags), cmd.OutOrStdout())

	opts := planOptions{
		eventFile: planEventFile,
		dryRun:    planDryRun,
	}
	return executePlan(cmd.Context(), cfg, logger, runID, opts, formatter)
}

// planOptions carries the per-invocation switches for executePlan.
type planOptions struct {
	eventFile string
	dryRun    bool
}

func executePlan(ctx context.Context, cfg *config.Config, logger *slog.Logger, runID types.RunID, opts planOptions, formatter internal.Formatter) error {
	eventPath := opts.eventFile
	if eventPath == "" {
		eventPath = cfg.GitHub.EventPath
	}
	eventPath, err := util.ExpandPath(eventPath)
	if err != nil {
		return err
	}

	event, err := github.LoadEvent(eventPath)
	if err != nil {
		return err
	}

	owner, repo, err := cfg.GitHub.OwnerRepo()
	if err != nil {
		return err
	}

	julesClient, err := jules.NewClient(cfg.Jules, logger, runID)
	if err != nil {
		return err
	}

	// Build the comment client up front: a missing token must not cost a
	// planning session.
	var ghClient *github.Client
	if !opts.dryRun {
		ghClient, err = github.NewClient(cfg.GitHub, logger, runID)
		if err != nil {
			return err
		}
	}

	pctx := planner.Context{
		Number:  event.Issue.Number,
		Title:   event.Issue.Title,
		Body:    event.Issue.Body,
		Comment: event.Comment.Body,
		IsPR:    event.IsPullRequest(),
		Author:  event.Author(),
	}

	logger.Info("planning run started",
		"repository", cfg.GitHub.Repository,
		"issue", pctx.Number,
		"is_pr", pctx.IsPR,
		"author", pctx.Author)

	p := planner.New(julesClient, owner, repo, cfg.Planner, logger)
	comment := p.GeneratePlan(ctx, pctx)

	if opts.dryRun {
		return formatter.PrintMarkdown(comment)
	}

	if err := ghClient.PostIssueComment(ctx, event.Issue.Number, comment); err != nil {
		return err
	}

	return formatter.PrintSuccess(fmt.Sprintf("posted plan comment to %s#%d", cfg.GitHub.Repository, event.Issue.Number))
}

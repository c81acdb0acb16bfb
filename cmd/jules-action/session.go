package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maravedi/jules-actions/cmd/jules-action/internal"
	"github.com/maravedi/jules-actions/internal/jules"
	"github.com/maravedi/jules-actions/internal/types"
)

var sessionCmd = &cobra.Command{
	Use:   "session <id>",
	Short: "Show a Jules session and its recent activity",
	Long: `Fetch a session by id and list its activity feed.

Useful for inspecting what a planning run did after the fact, for
example when a run posted the pending notice and you want to know
whether a plan eventually appeared.`,
	Args: cobra.ExactArgs(1),
	RunE: runSession,
}

func runSession(cmd *cobra.Command, args []string) error {
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

	client, err := jules.NewClient(cfg.Jules, logger, runID)
	if err != nil {
		return err
	}

	sessionID := args[0]
	session, err := client.GetSession(cmd.Context(), sessionID)
	if err != nil {
		return err
	}

	activities, err := client.ListActivities(cmd.Context(), sessionID)
	if err != nil {
		return err
	}

	formatter := internal.NewFormatter(outputFormat(flags), cmd.OutOrStdout())

	if flags.GetOutputFormat() == FormatJSON {
		return formatter.PrintJSON(map[string]interface{}{
			"session":    session,
			"activities": activities,
		})
	}

	cmd.Printf("Session: %s\n", session.ID)
	if session.Title != "" {
		cmd.Printf("Title:   %s\n", session.Title)
	}
	cmd.Println()

	headers := []string{"Kind", "Detail"}
	rows := make([][]string, 0, len(activities))
	for _, activity := range activities {
		rows = append(rows, []string{activity.Kind(), activityDetail(activity)})
	}

	return formatter.PrintTable(headers, rows)
}

// activityDetail summarizes one activity for the table view.
func activityDetail(activity jules.Activity) string {
	switch {
	case activity.PlanGenerated != nil:
		return fmt.Sprintf("%d steps", len(activity.PlanGenerated.Plan.Steps))
	case activity.ProgressUpdated != nil:
		return activity.ProgressUpdated.Title
	case activity.SessionCompleted != nil:
		return "session completed"
	default:
		return ""
	}
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/maravedi/jules-actions/cmd/jules-action/internal"
	"github.com/maravedi/jules-actions/internal/jules"
	"github.com/maravedi/jules-actions/internal/types"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List repositories connected to Jules",
	Long: `List the sources the Jules account can plan against.

A repository must appear here before "@jules plan" works on it. Connect
repositories at https://jules.google.com.`,
	Args: cobra.NoArgs,
	RunE: runSources,
}

func runSources(cmd *cobra.Command, args []string) error {
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

	sources, err := client.ListSources(cmd.Context())
	if err != nil {
		return err
	}

	formatter := internal.NewFormatter(outputFormat(flags), cmd.OutOrStdout())

	headers := []string{"Name", "Owner", "Repo"}
	rows := make([][]string, 0, len(sources))
	for _, source := range sources {
		rows = append(rows, []string{
			source.Name,
			source.GitHubRepo.Owner,
			source.GitHubRepo.Repo,
		})
	}

	return formatter.PrintTable(headers, rows)
}

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/maravedi/jules-actions/cmd/jules-action/internal"
	"github.com/maravedi/jules-actions/internal/config"
	"github.com/maravedi/jules-actions/internal/observability"
	"github.com/maravedi/jules-actions/internal/types"
	"github.com/maravedi/jules-actions/internal/util"
)

var rootCmd = &cobra.Command{
	Use:   "jules-action",
	Short: "Drive Jules planning sessions from GitHub issue comments",
	Long: `jules-action turns "@jules plan" comments on issues and pull requests
into Jules planning sessions, then posts the generated plan back to the
conversation as a comment.

It is built to run inside a GitHub Actions workflow, reading credentials
and the triggering event from the environment the runner provides, but
every command also works from a normal shell.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with signal handling
func Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return rootCmd.ExecuteContext(ctx)
}

func init() {
	RegisterGlobalFlags(rootCmd)

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(sourcesCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
}

// loadActionConfig resolves the config file from the --config flag or the
// checked-in default and layers the environment on top.
func loadActionConfig(flags *GlobalFlags) (*config.Config, error) {
	path, err := util.ExpandPath(flags.ConfigFile)
	if err != nil {
		return nil, err
	}
	if path == "" {
		path = config.DefaultConfigPath()
	}

	loader := config.NewConfigLoader(config.NewValidator())
	return loader.LoadWithDefaults(path)
}

// newRunLogger builds the structured logger for one invocation. Logs go
// to stderr so stdout stays clean for command output, which matters when
// a workflow captures it.
func newRunLogger(cmd *cobra.Command, flags *GlobalFlags, cfg *config.Config, runID types.RunID) *slog.Logger {
	level := cfg.Logging.Level
	if flags.IsVerbose() {
		level = "debug"
	}
	if flags.IsQuiet() {
		level = "error"
	}
	return observability.NewLogger(cmd.ErrOrStderr(), level, cfg.Logging.Format, runID)
}

// outputFormat converts the flag value into the formatter's enum.
func outputFormat(flags *GlobalFlags) internal.OutputFormat {
	if flags.GetOutputFormat() == FormatJSON {
		return internal.FormatJSON
	}
	return internal.FormatText
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println("jules-action v0.1.0")
	},
}

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for jules-action.

To load completions:

Bash:

  $ source <(jules-action completion bash)

Zsh:

  $ jules-action completion zsh > "${fpath[1]}/_jules-action"

Fish:

  $ jules-action completion fish | source

PowerShell:

  PS> jules-action completion powershell | Out-String | Invoke-Expression
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		switch args[0] {
		case "bash":
			_ = cmd.Root().GenBashCompletion(os.Stdout)
		case "zsh":
			_ = cmd.Root().GenZshCompletion(os.Stdout)
		case "fish":
			_ = cmd.Root().GenFishCompletion(os.Stdout, true)
		case "powershell":
			_ = cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
		}
	},
}

// Package superlink assembles the command tree for the superlink CLI.
// Running the bare command starts the interactive TUI; subcommands cover the
// non-interactive workflows.
package superlink

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/superlink/cmd/superlink/commands/genconfig"
	"github.com/arthur-debert/superlink/cmd/superlink/commands/install"
	"github.com/arthur-debert/superlink/cmd/superlink/commands/show"
	"github.com/arthur-debert/superlink/cmd/superlink/commands/status"
	"github.com/arthur-debert/superlink/cmd/superlink/commands/uninstall"
	"github.com/arthur-debert/superlink/internal/cli"
	"github.com/arthur-debert/superlink/internal/tui"
	"github.com/arthur-debert/superlink/internal/version"
	"github.com/arthur-debert/superlink/pkg/logging"
)

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "superlink",
		Short: MsgShort,
		Long:  MsgLong,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := cli.NewEnv()
			if err != nil {
				return err
			}
			return tui.Run(env.FS, env.Paths.SourceRoot(), env.Paths.ClaudeDir())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(
		status.NewCommand(),
		install.NewCommand(),
		uninstall.NewCommand(),
		show.NewCommand(),
		genconfig.NewCommand(),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "superlink version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}

package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// Tagline is the one-line description shown in --help.
const Tagline = "A simple system monitoring tool"

// NewRootCmd builds the command tree. A fresh tree per call keeps flag state
// from leaking between runs.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "system-monitor",
		Short: Tagline,
		Long: Tagline + `.

Periodically samples CPU, memory, swap and disk usage on this machine and
prints them as text with color-coded progress bars.

Examples:
  system-monitor
  system-monitor --interval 5
  system-monitor --once --no-color
  SYSMON_FORMAT=json system-monitor --once`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return monitorCommand(cmd, flags)
		},
	}

	addRootFlags(cmd, flags)
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Run executes the CLI with args and returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprint(stderr, formatError(err))
		return 1
	}
	return 0
}

// Execute runs the CLI against the process arguments and exits.
func Execute() {
	os.Exit(Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// formatError makes sure every error ends in exactly one newline. Structured
// errors already do; cobra's flag errors don't.
func formatError(err error) string {
	msg := err.Error()
	if len(msg) == 0 || msg[len(msg)-1] != '\n' {
		msg += "\n"
	}
	return msg
}

package cli

import (
	"errors"
	"fmt"

	"github.com/ryantking/faultdemo/internal/exitcode"
	"github.com/spf13/cobra"
)

// ErrUsage indicates the command line could not be understood.
var ErrUsage = errors.New("usage error")

// Execute runs the CLI application.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd creates the root command. Without a subcommand it runs every
// demonstration case and prints one line per case.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "faultdemo",
		Short: "Trigger and catch a fixed set of runtime failures",
		Long: `Trigger and catch a fixed set of runtime failures.

Each case raises one failure kind, catches it and prints
"<kind> caught: <message>". Nothing touches real files or databases.`,
		Args:          usageArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAll(cmd.OutOrStdout(), formatText)
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	cmd.AddCommand(
		NewRunCmd(),
		NewListCmd(),
		NewVersionCmd(),
	)

	return cmd
}

func usageError(err error) error {
	return exitcode.New(exitcode.ExitUsage, fmt.Errorf("%w: %w", ErrUsage, err))
}

// usageArgs marks argument validation failures as usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return usageError(err)
		}
		return nil
	}
}

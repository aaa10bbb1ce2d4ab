package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/ryantking/faultdemo/internal/demo"
	"github.com/ryantking/faultdemo/internal/exitcode"
	"github.com/ryantking/faultdemo/internal/failure"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// NewRunCmd creates the run command.
func NewRunCmd() *cobra.Command {
	var (
		format string
		kind   string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the demonstration cases",
		Long: `Run every demonstration case in order, or a single case with --kind.
Use --format json or --format yaml for structured output.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			if kind == "" {
				return runAll(cmd.OutOrStdout(), format)
			}

			k, err := failure.ParseKind(kind)
			if err != nil {
				return runError(err)
			}
			return runOne(cmd.OutOrStdout(), format, k)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "Output format: text, json or yaml")
	cmd.Flags().StringVarP(&kind, "kind", "k", "", "Run only the case raising this kind (see 'faultdemo list')")

	return cmd
}

func validateFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatYAML:
		return nil
	default:
		return usageError(fmt.Errorf("unknown format %q (want text, json or yaml)", format))
	}
}

// runAll runs the full catalog. Text lines are written as each case completes.
func runAll(w io.Writer, format string) error {
	report, err := newRunner(w, format).Run()
	if err != nil {
		return runError(err)
	}
	if format == formatText {
		return nil
	}
	return encode(w, format, report)
}

func runOne(w io.Writer, format string, kind failure.Kind) error {
	res, err := newRunner(w, format).RunCase(kind)
	if err != nil {
		return runError(err)
	}
	if format == formatText {
		return nil
	}
	return encode(w, format, demo.Report{Results: []demo.Result{res}})
}

func newRunner(w io.Writer, format string) *demo.Runner {
	if format == formatText {
		return demo.NewRunner(demo.WithOutput(w))
	}
	return demo.NewRunner()
}

func encode(w io.Writer, format string, report demo.Report) error {
	var err error
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(report)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(report); err == nil {
			err = enc.Close()
		}
	}
	if err != nil {
		return exitcode.New(exitcode.ExitIOErr, fmt.Errorf("failed to encode report: %w", err))
	}
	return nil
}

func runError(err error) error {
	switch {
	case errors.Is(err, demo.ErrWrite):
		return exitcode.New(exitcode.ExitIOErr, err)
	case errors.Is(err, demo.ErrNoCase), failure.IsUnknownKind(err):
		return usageError(err)
	case failure.IsEscaped(err), failure.IsNoFailure(err):
		return exitcode.New(exitcode.ExitSoftware, fmt.Errorf("demonstration defect: %w", err))
	default:
		return exitcode.New(exitcode.ExitSoftware, err)
	}
}

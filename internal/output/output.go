// Package output writes diagnostics and tables for the CLI.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/cli/go-gh/v2/pkg/tableprinter"
	"github.com/cli/go-gh/v2/pkg/term"
	"github.com/fatih/color"
)

const defaultWidth = 80

var (
	stderr   io.Writer = color.Error
	stdout   io.Writer = os.Stdout
	errLabel           = color.New(color.FgRed, color.Bold)

	terminalOutput = func() bool { return term.FromEnv().IsTerminalOutput() }
)

// Error prints err to stderr.
func Error(err error) {
	Errorf("%v", err)
}

// Errorf prints a formatted error message to stderr.
func Errorf(format string, args ...any) {
	errLabel.Fprint(stderr, "Error:")
	fmt.Fprintf(stderr, " "+format+"\n", args...)
}

// Table renders rows under header. Columns are aligned when w is stdout
// attached to a terminal and tab separated otherwise.
func Table(w io.Writer, header []string, rows [][]string) error {
	isTTY := w == stdout && terminalOutput()

	width := defaultWidth
	if isTTY {
		if cols, _, err := term.FromEnv().Size(); err == nil && cols > 0 {
			width = cols
		}
	}

	tp := tableprinter.New(w, isTTY, width)
	tp.AddHeader(header)
	for _, row := range rows {
		for _, field := range row {
			tp.AddField(field)
		}
		tp.EndRow()
	}
	return tp.Render()
}

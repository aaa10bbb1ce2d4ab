package demo

import (
	"errors"
	"fmt"
	"io"

	"github.com/ryantking/faultdemo/internal/failure"
)

// Sentinel errors for demo package.
var (
	// ErrWrite indicates a caught line could not be written.
	ErrWrite = errors.New("failed to write demonstration output")

	// ErrMessageMismatch indicates an authored failure carried the wrong message.
	ErrMessageMismatch = errors.New("failure message does not match")

	// ErrNoCase indicates no case raises the requested kind.
	ErrNoCase = errors.New("no case for failure kind")
)

// Result is the outcome of one caught case.
type Result struct {
	Index    int          `json:"index" yaml:"index"`
	Kind     failure.Kind `json:"kind" yaml:"kind"`
	CaughtBy failure.Kind `json:"caught_by" yaml:"caught_by"`
	Message  string       `json:"message" yaml:"message"`
	Line     string       `json:"line" yaml:"line"`
}

// Report holds the results of a run in execution order.
type Report struct {
	Results []Result `json:"results" yaml:"results"`
}

// lines returns the printed line of every result.
func (r Report) lines() []string {
	lines := make([]string, 0, len(r.Results))
	for _, res := range r.Results {
		lines = append(lines, res.Line)
	}
	return lines
}

// Runner executes cases one after another.
type Runner struct {
	out   io.Writer
	cases []Case
}

// Option configures a Runner.
type Option func(*Runner)

// WithOutput sets where caught lines are written. Defaults to io.Discard.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		r.out = w
	}
}

// WithCases replaces the catalog.
func WithCases(cases []Case) Option {
	return func(r *Runner) {
		r.cases = cases
	}
}

// NewRunner creates a Runner over Catalog().
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		out:   io.Discard,
		cases: Catalog(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes every case in order. It stops at the first case whose
// failure is not caught; results for the cases before it are returned.
func (r *Runner) Run() (Report, error) {
	var report Report
	for i, c := range r.cases {
		res, err := r.execute(i+1, c)
		if err != nil {
			return report, err
		}
		report.Results = append(report.Results, res)
	}
	return report, nil
}

// RunCase executes the first case raising kind.
func (r *Runner) RunCase(kind failure.Kind) (Result, error) {
	for i, c := range r.cases {
		if c.Kind == kind {
			return r.execute(i+1, c)
		}
	}
	return Result{}, fmt.Errorf("%w: %s", ErrNoCase, kind)
}

func (r *Runner) execute(index int, c Case) (Result, error) {
	err := failure.Capture(c.Trigger)
	if err == nil {
		return Result{}, fmt.Errorf("case %d (%s): %w", index, c.Kind, failure.ErrNoFailure)
	}

	caught, ok := failure.Catch(err, c.Catches...)
	if !ok {
		return Result{}, fmt.Errorf("case %d (%s): %w: %s: %v", index, c.Kind, failure.ErrEscaped, failure.KindOf(err), err)
	}

	var f *failure.Failure
	failure.AsFailure(err, &f)

	message := f.Message
	if c.Expected != "" && message != c.Expected {
		return Result{}, fmt.Errorf("case %d (%s): %w: got %q, want %q", index, c.Kind, ErrMessageMismatch, message, c.Expected)
	}

	res := Result{
		Index:    index,
		Kind:     f.Kind,
		CaughtBy: caught,
		Message:  message,
		Line:     fmt.Sprintf("%s caught: %s", caught.Label(), message),
	}
	if _, err := fmt.Fprintln(r.out, res.Line); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return res, nil
}

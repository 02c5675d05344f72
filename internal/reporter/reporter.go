// Package reporter prints the human-facing run narration. It is purely
// observational; nothing in the seeder branches on what was printed.
package reporter

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Reporter writes tagged progress lines. The zero writer defaults to stdout.
type Reporter struct {
	out io.Writer

	stepTag    string
	successTag string
	errorTag   string
}

func New(out io.Writer) *Reporter {
	if out == nil {
		out = os.Stdout
	}
	return &Reporter{
		out:        out,
		stepTag:    color.CyanString("[MESSAGE]"),
		successTag: color.GreenString("[DONE]"),
		errorTag:   color.RedString("[ERROR]"),
	}
}

// Step announces that a step is starting.
func (r *Reporter) Step(format string, args ...interface{}) {
	fmt.Fprintf(r.out, "%s %s\n", r.stepTag, fmt.Sprintf(format, args...))
}

// Success reports a completed step or record.
func (r *Reporter) Success(format string, args ...interface{}) {
	fmt.Fprintf(r.out, "%s %s\n", r.successTag, fmt.Sprintf(format, args...))
}

// Error reports a failure. The run continues; only the caller decides flow.
func (r *Reporter) Error(format string, args ...interface{}) {
	fmt.Fprintf(r.out, "%s %s\n", r.errorTag, fmt.Sprintf(format, args...))
}

// Plain writes an untagged line, used for the closing summary.
func (r *Reporter) Plain(format string, args ...interface{}) {
	fmt.Fprintf(r.out, "%s\n", fmt.Sprintf(format, args...))
}

// Package output renders the user-facing action report: what was
// performed, what would be performed under dry-run, and what failed.
// Reporting has no effect on planning or execution outcomes.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/filemap/pkg/types"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
)

// Reporter writes a plain-text action report, bolding the verbs when
// the output is a terminal.
type Reporter struct {
	out   io.Writer
	color bool
}

// NewReporter creates a reporter for the given writer. Styling is only
// applied when the writer is a terminal.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out, color: isTerminal(out)}
}

// Report prints one line per action result.
func (r *Reporter) Report(results []types.ActionResult) {
	for _, result := range results {
		fmt.Fprintf(r.out, "%s %s -> %s\n",
			r.verb(result), result.Action.Source, result.Action.Dest)
		if result.Err != nil {
			fmt.Fprintf(r.out, "  %v\n", result.Err)
		}
	}
}

// Summary prints a closing count line.
func (r *Reporter) Summary(results []types.ActionResult, dryRun bool) {
	performed := 0
	for _, result := range results {
		if result.Status == types.StatusDone {
			performed++
		}
	}
	if dryRun {
		fmt.Fprintf(r.out, "%d action(s) planned, none performed (dry run)\n", len(results))
		return
	}
	fmt.Fprintf(r.out, "%d of %d action(s) performed\n", performed, len(results))
}

func (r *Reporter) verb(result types.ActionResult) string {
	var verb string
	switch result.Status {
	case types.StatusSkipped:
		if result.Action.Kind == types.KindMove {
			verb = "would move"
		} else {
			verb = "would copy"
		}
	case types.StatusFailed:
		verb = "failed"
	default:
		if result.Action.Kind == types.KindMove {
			verb = "moved"
		} else {
			verb = "copied"
		}
	}
	return r.bold(verb)
}

// bold returns the string formatted as bold using pterm
func (r *Reporter) bold(s string) string {
	if !r.color {
		return s
	}
	return pterm.Bold.Sprint(s)
}

func isTerminal(out io.Writer) bool {
	file, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

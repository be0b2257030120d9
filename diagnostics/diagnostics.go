// Package diagnostics implements the interpreter's single error-reporting
// convention: every lexical, parse, and runtime problem is a diagnostic
// written to a designated stream, never a panic or a returned error that
// aborts the pipeline. This mirrors the teacher interpreter's colored
// Fprintf-based error reporting (go-mix/main/main.go's redColor calls),
// generalized into one small shared type so the lexer, parser, and
// evaluator don't each reinvent the formatting rule.
package diagnostics

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Reporter writes diagnostics to a stream in red. Whether color codes are
// emitted is decided globally by the color library: plain text when
// standard output is not a terminal (or NO_COLOR is set, or TERM=dumb),
// regardless of which stream the diagnostics go to.
type Reporter struct {
	w     io.Writer
	red   *color.Color
	count int
}

// New creates a Reporter that writes to w.
func New(w io.Writer) *Reporter {
	return &Reporter{w: w, red: color.New(color.FgRed)}
}

// Report writes one diagnostic line. A non-negative line number produces
// "Error (line <N>): <message>"; a negative line number produces
// "Error: <message>". Both forms always end in a single newline.
func (r *Reporter) Report(message string, line int) {
	r.count++
	if line >= 0 {
		r.red.Fprintf(r.w, "Error (line %d): %s\n", line, message)
		return
	}
	r.red.Fprintf(r.w, "Error: %s\n", message)
}

// Reportf is a convenience wrapper combining Report with fmt.Sprintf.
func (r *Reporter) Reportf(line int, format string, args ...interface{}) {
	r.Report(fmt.Sprintf(format, args...), line)
}

// Count returns how many diagnostics have been reported so far.
func (r *Reporter) Count() int {
	return r.count
}

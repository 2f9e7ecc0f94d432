// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/careers-check/internal/report"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// stateSymbol maps a terminal position state to a one-character marker.
func stateSymbol(state report.State) string {
	switch state {
	case report.StateFilled:
		return "✓"
	case report.StateSkippedRemoved:
		return "-"
	case report.StateFailed:
		return "✗"
	}
	return "?"
}

// PrintRunSummary outputs a human-readable summary of a finished run.
func (p *Printer) PrintRunSummary(rep *report.Report) {
	if rep == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Run:        %s\n", rep.RunID))
	sb.WriteString(fmt.Sprintf("Department: %s\n", rep.Department))
	sb.WriteString("\n")

	for _, pos := range rep.Positions {
		sb.WriteString(fmt.Sprintf("%s %s", stateSymbol(pos.State), pos.Title))
		if pos.Reason != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", pos.Reason))
		}
		sb.WriteString("\n")
	}
	if len(rep.Positions) == 0 {
		sb.WriteString("No positions in snapshot\n")
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Filled: %d  Skipped: %d  Failed: %d\n",
		rep.Totals.Filled, rep.Totals.Skipped, rep.Totals.Failed))
	sb.WriteString(fmt.Sprintf("Submissions observed: %d", len(rep.Submissions)))

	p.printBox("Run Summary", sb.String())
}

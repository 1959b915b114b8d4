// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/admissions-parser/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 8
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

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintUpdates outputs the extracted field values in taxonomy order.
func (p *Printer) PrintUpdates(data *types.ParsedApplicationData) {
	if data == nil || len(data.Updates) == 0 {
		return
	}

	var sb strings.Builder
	for _, field := range types.AllFields() {
		value, ok := data.Updates[field]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("%-24s %s\n", field.Label()+":", value))
	}

	p.printBox("EXTRACTED FIELDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMisc outputs the deduplicated highlight notes.
func (p *Printer) PrintMisc(data *types.ParsedApplicationData) {
	if data == nil || len(data.Misc) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d highlight notes:\n\n", len(data.Misc)))

	count := min(len(data.Misc), maxItemsToShow)
	for i := 0; i < count; i++ {
		note := data.Misc[i]
		if len(note) > boxWidth-10 {
			note = note[:boxWidth-13] + "..."
		}
		sb.WriteString(fmt.Sprintf("  • %s\n", note))
	}
	if len(data.Misc) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(data.Misc)-maxItemsToShow))
	}

	p.printBox("HIGHLIGHTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDiagnostics outputs the phase-tagged trace of the run.
func (p *Printer) PrintDiagnostics(data *types.ParsedApplicationData) {
	if data == nil || len(data.Diagnostics) == 0 {
		return
	}

	var sb strings.Builder
	for _, d := range data.Diagnostics {
		sb.WriteString(fmt.Sprintf("[%-9s] %s\n", d.Phase, d.Message))
	}

	p.printBox("DIAGNOSTICS", strings.TrimSuffix(sb.String(), "\n"))
}

// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/gabriel/crewdocs/internal/reconcile"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
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

// PrintVerdict outputs one requirement's screening result with match details.
func (p *Printer) PrintVerdict(requirementName string, v reconcile.Verdict) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Status:     %s\n", v.Status))
	sb.WriteString(fmt.Sprintf("Match:      %s\n", v.MatchType))
	sb.WriteString(fmt.Sprintf("Similarity: %.0f%%\n", v.SimilarityScore*100))
	sb.WriteString(fmt.Sprintf("Validity:   %s", v.ValidityStatus))
	if v.ValidityDate != nil {
		sb.WriteString(fmt.Sprintf(" (until %s)", *v.ValidityDate))
	}
	sb.WriteString("\n")
	if v.DocumentID != nil {
		sb.WriteString(fmt.Sprintf("Document:   %s\n", v.DocumentID))
	}
	sb.WriteString("\n")
	for _, obs := range strings.Split(v.Observations, " | ") {
		sb.WriteString(fmt.Sprintf("  • %s\n", obs))
	}

	p.printBox(requirementName, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSummary outputs the aggregate adherence for a comparison run.
func (p *Printer) PrintSummary(summary reconcile.Summary) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Requirements: %d\n", summary.Total))
	sb.WriteString(fmt.Sprintf("Satisfied:    %d\n", summary.Satisfied))
	sb.WriteString(fmt.Sprintf("Partial:      %d\n", summary.Partial))
	sb.WriteString(fmt.Sprintf("Pending:      %d\n", summary.Pending))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Adherence:    %d%%", summary.AdherencePercent))

	p.printBox("COMPARISON SUMMARY", sb.String())
}

// PrintPendingRequirements lists requirements that found no document, the
// items a reviewer chases first.
func (p *Printer) PrintPendingRequirements(names []string, verdicts []reconcile.Verdict) {
	var pending []string
	for i, v := range verdicts {
		if v.Status == reconcile.StatusPending && i < len(names) {
			pending = append(pending, names[i])
		}
	}
	if len(pending) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(pending), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", pending[i]))
	}
	if len(pending) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(pending)-maxItemsToShow))
	}

	p.printBox("MISSING DOCUMENTS", strings.TrimSuffix(sb.String(), "\n"))
}

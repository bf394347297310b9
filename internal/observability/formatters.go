// Package observability provides the process logger and formatted report
// output for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/NiloferMubeen/Resume-Builder-app/internal/ats"
	"github.com/NiloferMubeen/Resume-Builder-app/internal/resume"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
	// scoreBarWidth is the number of cells in a score bar
	scoreBarWidth = 20
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
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "..."
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-3]) + "..."
}

func scoreBar(score int) string {
	filled := score * scoreBarWidth / ats.MaxScore
	return strings.Repeat("█", filled) + strings.Repeat("░", scoreBarWidth-filled)
}

// PrintATSReport outputs the overall score, the category breakdown and the
// recommendations of an ATS report.
func (p *Printer) PrintATSReport(report *ats.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:  %3d  %s\n", report.OverallScore, scoreBar(report.OverallScore)))
	sb.WriteString("\n")

	for _, entry := range report.Breakdown {
		sb.WriteString(fmt.Sprintf("%-22s %3d\n", entry.Category, entry.Score))
		sb.WriteString(fmt.Sprintf("  %s\n", entry.Description))
	}

	if len(report.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		for i, rec := range report.Recommendations {
			// Multi-line items are shown on one line
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, strings.Join(strings.Fields(rec), " ")))
		}
	}

	p.printBox("ATS COMPATIBILITY REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResumeRecord outputs a human-readable summary of a parsed resume.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintResumeRecord(record resume.Record) {
	if record.IsEmpty() {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "⚠ NO RESUME FIELDS EXTRACTED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	for _, m := range record.Object {
		switch v := m.Value.(type) {
		case resume.List:
			sb.WriteString(fmt.Sprintf("%s (%d):\n", m.Key, len(v)))
			count := min(len(v), maxItemsToShow)
			for i := 0; i < count; i++ {
				sb.WriteString(fmt.Sprintf("  • %s\n", summarize(v[i])))
			}
			if len(v) > maxItemsToShow {
				sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(v)-maxItemsToShow))
			}
		default:
			sb.WriteString(fmt.Sprintf("%s: %s\n", m.Key, summarize(v)))
		}
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// summarize renders a value on a single line. Objects show their first
// scalar fields joined with " | ".
func summarize(v resume.Value) string {
	switch t := v.(type) {
	case resume.String:
		return strings.Join(strings.Fields(string(t)), " ")
	case resume.Number:
		return string(t)
	case resume.Bool:
		return fmt.Sprint(bool(t))
	case resume.Object:
		parts := make([]string, 0, len(t))
		for _, m := range t {
			switch m.Value.(type) {
			case resume.String, resume.Number, resume.Bool:
				parts = append(parts, summarize(m.Value))
			}
			if len(parts) == 3 {
				break
			}
		}
		return strings.Join(parts, " | ")
	case resume.List:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			parts = append(parts, summarize(item))
		}
		return strings.Join(parts, ", ")
	default:
		return ""
	}
}

// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/job-recommender/internal/types"
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

	for _, line := range strings.Split(content, "\n") {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of the query profile.
func (p *Printer) PrintProfile(profile types.Profile) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Skills:     %s\n", valueOrNone(profile.Skills)))
	sb.WriteString(fmt.Sprintf("Experience: %s\n", valueOrNone(profile.Experience)))
	sb.WriteString(fmt.Sprintf("Location:   %s", valueOrNone(profile.Location)))

	p.printBox("QUERY PROFILE", sb.String())
}

// PrintResults outputs the ranked shortlist, one line per job.
func (p *Printer) PrintResults(results []types.Result) {
	if len(results) == 0 {
		p.printBox("RECOMMENDATIONS", "no matching jobs")
		return
	}

	var sb strings.Builder
	for i, res := range results {
		sb.WriteString(fmt.Sprintf("%2d. %s (%s)\n", i+1, res.Title, res.Location))
		sb.WriteString(fmt.Sprintf("    sim %.3f  skills %.2f%%", res.Similarity, res.SkillMatch))
		if i < len(results)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox(fmt.Sprintf("RECOMMENDATIONS (%d)", len(results)), sb.String())
}

func valueOrNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

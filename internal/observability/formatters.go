// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/facility-resolver/internal/types"
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

// PrintMatchCandidates outputs a human-readable summary of match results.
func (p *Printer) PrintMatchCandidates(query string, candidates []types.MatchCandidate) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Query:      %s\n", query))
	sb.WriteString(fmt.Sprintf("Candidates: %d\n", len(candidates)))
	sb.WriteString("\n")

	shown := candidates
	if len(shown) > maxItemsToShow {
		shown = shown[:maxItemsToShow]
	}
	for i, c := range shown {
		sb.WriteString(fmt.Sprintf("%d. %s (%s, %s)\n", i+1,
			c.Facility.FacilityName, c.Facility.City, c.Facility.State))
		sb.WriteString(fmt.Sprintf("   score %.3f  confidence %s\n", c.Score, c.Confidence))
	}
	if len(candidates) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(candidates)-maxItemsToShow))
	}

	p.printBox("FACILITY MATCHES", sb.String())
}

// PrintGeoResults outputs a human-readable summary of a radius lookup.
func (p *Printer) PrintGeoResults(lat, lon, radiusMiles float64, results []types.GeoResult) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Center:  %.4f, %.4f\n", lat, lon))
	sb.WriteString(fmt.Sprintf("Radius:  %.1f mi\n", radiusMiles))
	sb.WriteString(fmt.Sprintf("Results: %d\n", len(results)))
	sb.WriteString("\n")

	shown := results
	if len(shown) > maxItemsToShow {
		shown = shown[:maxItemsToShow]
	}
	for i, r := range shown {
		if r.Approximate {
			sb.WriteString(fmt.Sprintf("%d. %s (within bounding region)\n", i+1, r.Facility.FacilityName))
		} else {
			sb.WriteString(fmt.Sprintf("%d. %s (%.1f mi)\n", i+1, r.Facility.FacilityName, r.DistanceMiles))
		}
	}
	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(results)-maxItemsToShow))
	}

	p.printBox("NEARBY FACILITIES", sb.String())
}

package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pulso-tools/pulso/internal/report"
)

// printReport writes a full report to stdout: title, overview paragraph,
// then items grouped by source in stable order.
func printReport(r *report.Report, verbose bool) {
	width := termWidth()
	if width > 100 {
		width = 100
	}

	fmt.Printf("\n  %s\n", formatHeader(strings.ToUpper(r.Title())))
	fmt.Printf("  %s\n", formatMuted(strings.Repeat("─", width-4)))

	if r.Overview != "" {
		for _, line := range wrapTo(r.Overview, width-4) {
			fmt.Printf("  %s\n", line)
		}
		fmt.Println()
	}

	sources := make([]string, 0, len(r.Sources))
	for name := range r.Sources {
		if len(r.Sources[name]) > 0 {
			sources = append(sources, name)
		}
	}
	sort.Strings(sources)

	for _, name := range sources {
		fmt.Printf("  %s\n", formatHeader(strings.ToUpper(name)))
		for _, item := range r.Sources[name] {
			title := item.Title
			if item.Author != "" {
				title += formatMuted(" by " + item.Author)
			}
			fmt.Printf("   • %s\n", title)
			if verbose && item.Summary != "" {
				for _, line := range wrapTo(item.Summary, width-8) {
					fmt.Printf("     %s\n", formatMuted(line))
				}
			}
			if verbose && item.URL != "" {
				fmt.Printf("     %s\n", formatMuted(item.URL))
			}
		}
		fmt.Println()
	}

	fmt.Printf("  %s\n", formatMuted(fmt.Sprintf("%d items", r.ItemCount())))
}

// wrapTo breaks s into lines no longer than width, splitting on spaces.
func wrapTo(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
			continue
		}
		current += " " + word
	}
	return append(lines, current)
}

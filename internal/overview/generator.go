package overview

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/pulso-tools/pulso/internal/report"
)

// ErrNoItems is returned when a report has nothing to summarize.
var ErrNoItems = errors.New("report has no items to summarize")

const systemPrompt = `You are an editor for a developer-community activity digest. Output plain text only: one short paragraph, no markdown, no headings, under 120 words.`

const userPromptTemplate = `Write a one-paragraph overview of this %s of community activity.

Mention the dominant themes and the most notable items by name. Do not list
every item; synthesize. Plain text only.

Items by source:
%s`

// Generator produces overview paragraphs for reports.
type Generator struct {
	client Client
}

// NewGenerator creates a Generator backed by the given client.
func NewGenerator(client Client) *Generator {
	return &Generator{client: client}
}

// Generate builds an overview for the report from its items. The report's
// own overview, if any, is ignored so callers can regenerate on demand.
func (g *Generator) Generate(ctx context.Context, r *report.Report) (string, error) {
	if r.ItemCount() == 0 {
		return "", ErrNoItems
	}

	period := "day"
	if r.Week != "" {
		period = "week"
	}

	prompt := fmt.Sprintf(userPromptTemplate, period, formatItems(r))
	text, err := g.client.Chat(ctx, []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: prompt},
	})
	if err != nil {
		return "", fmt.Errorf("generating overview: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// formatItems renders the report items source by source, sources sorted for
// a stable prompt.
func formatItems(r *report.Report) string {
	sources := make([]string, 0, len(r.Sources))
	for name := range r.Sources {
		sources = append(sources, name)
	}
	sort.Strings(sources)

	var b strings.Builder
	for _, name := range sources {
		items := r.Sources[name]
		if len(items) == 0 {
			continue
		}
		fmt.Fprintf(&b, "[%s]\n", name)
		for _, item := range items {
			fmt.Fprintf(&b, "- %s", item.Title)
			if item.Summary != "" {
				fmt.Fprintf(&b, ": %s", item.Summary)
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

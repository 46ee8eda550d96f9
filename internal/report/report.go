// Package report defines the community-activity report data types, the disk
// loader for published report JSON, and the storage interface for the synced
// availability index.
package report

// Index is the published list of report identifiers: which daily and weekly
// reports exist. The calendar only ever sees these two string lists.
type Index struct {
	Dates       []string `json:"dates"` // YYYY-MM-DD
	Weeks       []string `json:"weeks"` // YYYY-Www
	GeneratedAt string   `json:"generated_at,omitempty"`
}

// Item is a single activity entry inside a report: a forum thread, a merged
// pull request, a reddit post.
type Item struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Author  string `json:"author,omitempty"`
	Summary string `json:"summary,omitempty"`
}

// Report is one daily or weekly report. Exactly one of Date and Week is set,
// mirroring which kind of report it is. Sources groups items by origin
// ("forum", "github", "reddit", ...).
type Report struct {
	Date     string            `json:"date,omitempty"` // YYYY-MM-DD
	Week     string            `json:"week,omitempty"` // YYYY-Www
	Overview string            `json:"overview,omitempty"`
	Sources  map[string][]Item `json:"sources"`
}

// ItemCount returns the total number of items across all sources.
func (r *Report) ItemCount() int {
	n := 0
	for _, items := range r.Sources {
		n += len(items)
	}
	return n
}

// Title returns the report's display title.
func (r *Report) Title() string {
	if r.Week != "" {
		return "Weekly report " + r.Week
	}
	return "Daily report " + r.Date
}

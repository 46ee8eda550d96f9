package tui

import (
	"strings"
	"testing"

	"github.com/pulso-tools/pulso/internal/report"
)

func TestView_MonthGrid(t *testing.T) {
	m := newTestModel(t)
	out := m.View()

	for _, want := range []string{
		"July 2025",
		"[month]",
		"Mo Tu We Th Fr Sa Su",
		"W29", // the row holding July 14
		"16",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}
}

func TestView_Pickers(t *testing.T) {
	t.Run("week picker lists week labels", func(t *testing.T) {
		m := newTestModel(t)
		m, _ = press(t, m, "w")
		out := m.View()
		if !strings.Contains(out, "[weeks]") {
			t.Errorf("header missing picker tag:\n%s", out)
		}
		if !strings.Contains(out, "2025-W29") {
			t.Errorf("view missing week label:\n%s", out)
		}
		if !strings.Contains(out, "Jul 14") {
			t.Errorf("view missing week Monday:\n%s", out)
		}
	})

	t.Run("month picker shows abbreviated months", func(t *testing.T) {
		m := newTestModel(t)
		m, _ = press(t, m, "m")
		out := m.View()
		for _, want := range []string{"[months]", "Jan", "Jul", "Dec"} {
			if !strings.Contains(out, want) {
				t.Errorf("view missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("year picker header spans the page", func(t *testing.T) {
		m := newTestModel(t)
		m, _ = press(t, m, "y")
		out := m.View()
		for _, want := range []string{"2021 - 2032", "[years]", "2025"} {
			if !strings.Contains(out, want) {
				t.Errorf("view missing %q:\n%s", want, out)
			}
		}
	})
}

func TestView_Preview(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(reportLoadedMsg{Report: &report.Report{
		Week:     "2025-W29",
		Overview: "steady progress on the storage layer",
	}})
	out := next.(Model).View()
	if !strings.Contains(out, "Weekly report 2025-W29") {
		t.Errorf("view missing preview title:\n%s", out)
	}
	if !strings.Contains(out, "steady progress") {
		t.Errorf("view missing overview text:\n%s", out)
	}
}

func TestRenderReport(t *testing.T) {
	r := &report.Report{
		Date:     "2025-07-14",
		Overview: "two pull requests landed",
		Sources: map[string][]report.Item{
			"github": {
				{Title: "Fix week boundary off-by-one", Author: "ana"},
				{Title: "Add index sync"},
			},
			"forum": nil,
		},
	}

	out := renderReport(r, 80)
	if !strings.Contains(out, "two pull requests landed") {
		t.Errorf("missing overview:\n%s", out)
	}
	if !strings.Contains(out, "GITHUB") {
		t.Errorf("missing source heading:\n%s", out)
	}
	if !strings.Contains(out, "- Fix week boundary off-by-one (ana)") {
		t.Errorf("missing attributed item:\n%s", out)
	}
	if !strings.Contains(out, "- Add index sync") {
		t.Errorf("missing item without author:\n%s", out)
	}
	if strings.Contains(out, "FORUM") {
		t.Errorf("empty source should be skipped:\n%s", out)
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits on one line", "short text", 20, "short text"},
		{"wraps at width", "one two three four", 9, "one two\nthree\nfour"},
		{"collapses whitespace", "  a \n b  ", 20, "a b"},
		{"empty", "", 10, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wrapText(tt.in, tt.width); got != tt.want {
				t.Errorf("wrapText(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}

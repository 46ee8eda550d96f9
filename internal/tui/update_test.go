package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pulso-tools/pulso/internal/calendar"
	"github.com/pulso-tools/pulso/internal/config"
	"github.com/pulso-tools/pulso/internal/report"
)

type fakeRepo struct {
	idx *report.Index
}

func (f *fakeRepo) SaveIndex(_ context.Context, idx *report.Index) error { f.idx = idx; return nil }

func (f *fakeRepo) LoadIndex(_ context.Context) (*report.Index, error) {
	if f.idx == nil {
		return &report.Index{}, nil
	}
	return f.idx, nil
}

func (f *fakeRepo) SyncedAt(_ context.Context) (time.Time, error) { return time.Time{}, nil }

func (f *fakeRepo) Close() error { return nil }

func testClock() time.Time {
	return time.Date(2025, time.July, 16, 0, 0, 0, 0, time.Local)
}

// newTestModel builds a model pinned to 2025-07-16 with a small index loaded:
// daily reports on July 14 and 15, a weekly report for week 29.
func newTestModel(t *testing.T) Model {
	t.Helper()
	m := New(&fakeRepo{}, report.NewLoader(t.TempDir()), config.Default(),
		WithClock(func() time.Time { return testClock() }))

	next, _ := m.Update(indexLoadedMsg{Index: &report.Index{
		Dates: []string{"2025-07-14", "2025-07-15"},
		Weeks: []string{"2025-W29"},
	}})
	return next.(Model)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(key(k))
		m = next.(Model)
	}
	return m, cmd
}

func TestUpdate_IndexLoaded(t *testing.T) {
	t.Run("populated index reports counts", func(t *testing.T) {
		m := newTestModel(t)
		if m.loading {
			t.Error("still loading after index arrived")
		}
		if !strings.Contains(m.statusMsg, "2 daily") || !strings.Contains(m.statusMsg, "1 weekly") {
			t.Errorf("status = %q", m.statusMsg)
		}
	})

	t.Run("empty index suggests sync", func(t *testing.T) {
		m := New(&fakeRepo{}, report.NewLoader(t.TempDir()), config.Default(),
			WithClock(func() time.Time { return testClock() }))
		next, _ := m.Update(indexLoadedMsg{Index: &report.Index{}})
		got := next.(Model)
		if !strings.Contains(got.statusMsg, "pulso sync") {
			t.Errorf("status = %q", got.statusMsg)
		}
	})
}

func TestUpdate_PickerToggles(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(t, m, "y")
	if m.nav.Mode() != calendar.ModeYearPicker {
		t.Fatalf("after y: mode = %v", m.nav.Mode())
	}
	m, _ = press(t, m, "esc")
	if m.nav.Mode() != calendar.ModeMonth {
		t.Fatalf("after esc: mode = %v", m.nav.Mode())
	}

	m, _ = press(t, m, "w")
	if m.nav.Mode() != calendar.ModeWeekPicker {
		t.Fatalf("after w: mode = %v", m.nav.Mode())
	}
	if m.pickerIndex != 28 {
		t.Errorf("week picker opens at index %d, want 28 (week 29)", m.pickerIndex)
	}
	m, _ = press(t, m, "w")
	if m.nav.Mode() != calendar.ModeMonth {
		t.Fatalf("w does not toggle back: mode = %v", m.nav.Mode())
	}
}

func TestUpdate_YearMonthWorkflow(t *testing.T) {
	m := newTestModel(t)

	// 2025 sits at index 4 of the 2021..2032 page; its cursor starts there.
	m, _ = press(t, m, "y")
	if m.pickerIndex != 4 {
		t.Fatalf("year picker opens at index %d, want 4", m.pickerIndex)
	}

	// Move down one year (2026) and confirm.
	m, _ = press(t, m, "j", "enter")
	if m.nav.Mode() != calendar.ModeMonthPicker {
		t.Fatalf("after year confirm: mode = %v", m.nav.Mode())
	}
	if m.nav.ViewDate().Year() != 2026 {
		t.Fatalf("after year confirm: year = %d", m.nav.ViewDate().Year())
	}

	// Month picker opened on July; move up to June and confirm.
	m, _ = press(t, m, "k", "enter")
	if m.nav.Mode() != calendar.ModeMonth {
		t.Fatalf("after month confirm: mode = %v", m.nav.Mode())
	}
	vd := m.nav.ViewDate()
	if vd.Year() != 2026 || vd.Month() != time.June || vd.Day() != 1 {
		t.Errorf("view date = %s, want 2026-06-01", calendar.FormatDate(vd))
	}
}

func TestUpdate_MonthPaging(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(t, m, "]")
	if m.nav.ViewDate().Month() != time.August {
		t.Errorf("] paged to %v, want August", m.nav.ViewDate().Month())
	}
	m, _ = press(t, m, "[", "[")
	if m.nav.ViewDate().Month() != time.June {
		t.Errorf("[[ paged to %v, want June", m.nav.ViewDate().Month())
	}

	m, _ = press(t, m, "t")
	if !m.nav.ViewDate().Equal(testClock()) {
		t.Errorf("t jumped to %s, want today", calendar.FormatDate(m.nav.ViewDate()))
	}
}

func TestUpdate_OpenDaily(t *testing.T) {
	m := newTestModel(t)

	// Cursor starts on July 16 (Wednesday); two steps left is July 14.
	m, cmd := press(t, m, "h", "h", "enter")
	if cmd == nil {
		t.Fatal("opening an available day returned no command")
	}
	if !strings.Contains(m.statusMsg, "2025-07-14") {
		t.Errorf("status = %q", m.statusMsg)
	}
	if m.nav.SelectedDate() != "2025-07-14" {
		t.Errorf("selected date = %q", m.nav.SelectedDate())
	}
}

func TestUpdate_OpenDaily_Unavailable(t *testing.T) {
	m := newTestModel(t)

	m, cmd := press(t, m, "enter")
	if cmd != nil {
		t.Error("unavailable day still produced a load command")
	}
	if !strings.Contains(m.statusMsg, "no report for 2025-07-16") {
		t.Errorf("status = %q", m.statusMsg)
	}
}

func TestUpdate_OpenWeekly(t *testing.T) {
	m := newTestModel(t)

	// Week picker opens on week 29, which has a weekly report.
	m, cmd := press(t, m, "w", "enter")
	if cmd == nil {
		t.Fatal("opening an available week returned no command")
	}
	if m.nav.Mode() != calendar.ModeMonth {
		t.Errorf("mode = %v, want month", m.nav.Mode())
	}
	if m.nav.SelectedWeek() != "2025-W29" {
		t.Errorf("selected week = %q", m.nav.SelectedWeek())
	}
}

func TestUpdate_OpenWeekly_Unavailable(t *testing.T) {
	m := newTestModel(t)

	// Week 28 has no report; picking it navigates but loads nothing.
	m, cmd := press(t, m, "w", "k", "enter")
	if cmd != nil {
		t.Error("unavailable week still produced a load command")
	}
	if !strings.Contains(m.statusMsg, "no report for 2025-W28") {
		t.Errorf("status = %q", m.statusMsg)
	}
	if m.nav.Mode() != calendar.ModeMonth {
		t.Errorf("mode = %v, want month", m.nav.Mode())
	}
}

func TestUpdate_ReportLoaded(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(reportLoadedMsg{Report: &report.Report{
		Date:     "2025-07-14",
		Overview: "quiet day",
	}})
	got := next.(Model)
	if !got.hasPreview {
		t.Error("preview not shown after report loaded")
	}
	if got.previewTitle != "Daily report 2025-07-14" {
		t.Errorf("preview title = %q", got.previewTitle)
	}

	next, _ = got.Update(key("esc"))
	if next.(Model).hasPreview {
		t.Error("esc did not dismiss the preview")
	}
}

func TestUpdate_WindowSize(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	got := next.(Model)
	if got.preview.Width != 96 {
		t.Errorf("preview width = %d, want 96", got.preview.Width)
	}
	if got.preview.Height != 40-gridHeight-6 {
		t.Errorf("preview height = %d", got.preview.Height)
	}
}

func TestUpdate_CursorStaysInGrid(t *testing.T) {
	m := newTestModel(t)

	// July 2025 has five grid rows; hammering down must not run past them.
	for i := 0; i < 10; i++ {
		m, _ = press(t, m, "j")
	}
	rows := len(m.nav.MonthGrid())
	if m.cursor.Row != rows-1 {
		t.Errorf("cursor row = %d, want %d", m.cursor.Row, rows-1)
	}

	for i := 0; i < 10; i++ {
		m, _ = press(t, m, "k")
	}
	if m.cursor.Row != 0 {
		t.Errorf("cursor row = %d, want 0", m.cursor.Row)
	}
}

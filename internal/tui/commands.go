package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pulso-tools/pulso/internal/report"
)

// indexLoadedMsg carries the availability index from storage.
type indexLoadedMsg struct {
	Index *report.Index
}

// reportLoadedMsg carries a loaded daily or weekly report for the preview.
type reportLoadedMsg struct {
	Report *report.Report
}

// errMsg carries an asynchronous failure into the status line.
type errMsg struct {
	Err error
}

const loadTimeout = 5 * time.Second

// loadIndex reads the synced availability index from the repository.
func loadIndex(repo report.Repository) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		idx, err := repo.LoadIndex(ctx)
		if err != nil {
			return errMsg{Err: err}
		}
		return indexLoadedMsg{Index: idx}
	}
}

// loadDaily reads a daily report from the report directory.
func loadDaily(loader *report.Loader, date string) tea.Cmd {
	return func() tea.Msg {
		r, err := loader.LoadDaily(date)
		if err != nil {
			return errMsg{Err: err}
		}
		return reportLoadedMsg{Report: r}
	}
}

// loadWeekly reads a weekly report from the report directory.
func loadWeekly(loader *report.Loader, week string) tea.Cmd {
	return func() tea.Msg {
		r, err := loader.LoadWeekly(week)
		if err != nil {
			return errMsg{Err: err}
		}
		return reportLoadedMsg{Report: r}
	}
}

package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when a requested report file does not exist.
var ErrNotFound = errors.New("report not found")

// Loader reads published report JSON from a local directory laid out as the
// report pipeline writes it:
//
//	<dir>/index.json
//	<dir>/daily/YYYY-MM-DD.json
//	<dir>/weekly/YYYY-Www.json
type Loader struct {
	dir string
}

// NewLoader creates a Loader rooted at dir.
func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

// LoadIndex reads the availability index.
func (l *Loader) LoadIndex() (*Index, error) {
	var idx Index
	if err := l.readJSON(filepath.Join(l.dir, "index.json"), &idx); err != nil {
		return nil, err
	}
	return &idx, nil
}

// LoadDaily reads the daily report for the given YYYY-MM-DD date.
func (l *Loader) LoadDaily(date string) (*Report, error) {
	var r Report
	if err := l.readJSON(filepath.Join(l.dir, "daily", date+".json"), &r); err != nil {
		return nil, err
	}
	if r.Date == "" {
		r.Date = date
	}
	return &r, nil
}

// LoadWeekly reads the weekly report for the given YYYY-Www identifier.
func (l *Loader) LoadWeekly(week string) (*Report, error) {
	var r Report
	if err := l.readJSON(filepath.Join(l.dir, "weekly", week+".json"), &r); err != nil {
		return nil, err
	}
	if r.Week == "" {
		r.Week = week
	}
	return &r, nil
}

func (l *Loader) readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, filepath.Base(path))
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

package report

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoader_LoadIndex(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "index.json"),
		`{"dates":["2025-07-14","2025-07-15"],"weeks":["2025-W29"],"generated_at":"2025-07-16T03:00:00Z"}`)

	idx, err := NewLoader(dir).LoadIndex()
	if err != nil {
		t.Fatalf("LoadIndex: %v", err)
	}
	if len(idx.Dates) != 2 || len(idx.Weeks) != 1 {
		t.Errorf("index = %+v", idx)
	}
	if idx.GeneratedAt != "2025-07-16T03:00:00Z" {
		t.Errorf("generated_at = %q", idx.GeneratedAt)
	}
}

func TestLoader_LoadDaily(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "daily", "2025-07-14.json"),
		`{"overview":"quiet day","sources":{"forum":[{"title":"t1","url":"u1"}],"github":[{"title":"t2","url":"u2"},{"title":"t3","url":"u3"}]}}`)

	r, err := NewLoader(dir).LoadDaily("2025-07-14")
	if err != nil {
		t.Fatalf("LoadDaily: %v", err)
	}
	if r.Date != "2025-07-14" {
		t.Errorf("date not backfilled: %q", r.Date)
	}
	if r.Overview != "quiet day" {
		t.Errorf("overview = %q", r.Overview)
	}
	if r.ItemCount() != 3 {
		t.Errorf("item count = %d, want 3", r.ItemCount())
	}
	if r.Title() != "Daily report 2025-07-14" {
		t.Errorf("title = %q", r.Title())
	}
}

func TestLoader_LoadWeekly_NotFound(t *testing.T) {
	l := NewLoader(t.TempDir())
	_, err := l.LoadWeekly("2025-W29")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestLoader_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "index.json"), `{"dates": [`)

	if _, err := NewLoader(dir).LoadIndex(); err == nil {
		t.Fatal("expected parse error")
	}
}

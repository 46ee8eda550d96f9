package overview

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/pulso-tools/pulso/internal/report"
)

// fakeClient records the messages it receives and returns a canned response.
type fakeClient struct {
	response string
	err      error
	messages []Message
}

func (f *fakeClient) Chat(_ context.Context, messages []Message) (string, error) {
	f.messages = messages
	return f.response, f.err
}

func testReport() *report.Report {
	return &report.Report{
		Date: "2025-07-14",
		Sources: map[string][]report.Item{
			"github": {
				{Title: "Fix scheduler deadlock", Summary: "long-standing race"},
			},
			"forum": {
				{Title: "Release 2.1 discussion"},
				{Title: "Plugin API feedback"},
			},
		},
	}
}

func TestGenerate(t *testing.T) {
	client := &fakeClient{response: "  A busy day overall.\n"}
	gen := NewGenerator(client)

	got, err := gen.Generate(context.Background(), testReport())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "A busy day overall." {
		t.Errorf("overview = %q, want trimmed response", got)
	}

	if len(client.messages) != 2 {
		t.Fatalf("sent %d messages, want system + user", len(client.messages))
	}
	if client.messages[0].Role != "system" {
		t.Errorf("first message role = %q", client.messages[0].Role)
	}

	prompt := client.messages[1].Content
	if !strings.Contains(prompt, "overview of this day") {
		t.Errorf("daily report prompt says %q", prompt)
	}
	// Sources appear sorted, so the prompt is stable across runs.
	if strings.Index(prompt, "[forum]") > strings.Index(prompt, "[github]") {
		t.Error("sources not sorted in prompt")
	}
	if !strings.Contains(prompt, "Fix scheduler deadlock: long-standing race") {
		t.Errorf("item with summary missing from prompt:\n%s", prompt)
	}
}

func TestGenerate_WeeklyWording(t *testing.T) {
	client := &fakeClient{response: "ok"}
	r := testReport()
	r.Date = ""
	r.Week = "2025-W29"

	if _, err := NewGenerator(client).Generate(context.Background(), r); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(client.messages[1].Content, "overview of this week") {
		t.Error("weekly report should be summarized as a week")
	}
}

func TestGenerate_NoItems(t *testing.T) {
	gen := NewGenerator(&fakeClient{})

	_, err := gen.Generate(context.Background(), &report.Report{Date: "2025-07-14"})
	if !errors.Is(err, ErrNoItems) {
		t.Errorf("err = %v, want ErrNoItems", err)
	}
}

func TestGenerate_ClientError(t *testing.T) {
	gen := NewGenerator(&fakeClient{err: errors.New("rate limited")})

	if _, err := gen.Generate(context.Background(), testReport()); err == nil {
		t.Fatal("expected error from client")
	}
}

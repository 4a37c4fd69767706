package errors

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil error", err: nil, expected: 0},
		{name: "content", err: ContentLoadError("bad date").Build(), expected: 3},
		{name: "resource", err: ResourceNotFoundError("cv.json").Build(), expected: 4},
		{name: "slug", err: SlugCollisionError("my-post").Build(), expected: 5},
		{name: "render", err: RenderError("no title").Build(), expected: 6},
		{name: "config", err: ConfigError("no author").Build(), expected: 7},
		{name: "unclassified", err: errors.New("boom"), expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := adapter.ExitCodeFor(tt.err); got != tt.expected {
				t.Errorf("ExitCodeFor() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCLIErrorAdapter_ReportPrintsSingleLine(t *testing.T) {
	var out bytes.Buffer
	adapter := NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	adapter.out = &out

	code := adapter.Report(SlugCollisionError("%q and %q share blog/my-post", "a.md", "b.md").Build())

	if code != 5 {
		t.Errorf("expected exit code 5, got %d", code)
	}
	line := strings.TrimSpace(out.String())
	if strings.Contains(line, "\n") {
		t.Errorf("expected a single line, got %q", line)
	}
	if !strings.HasPrefix(line, "Error: ") || !strings.Contains(line, "slug collision") {
		t.Errorf("unexpected message %q", line)
	}
}

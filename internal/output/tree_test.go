package output

import (
	"strings"
	"testing"
)

func TestRenderFileTree_Alignment(t *testing.T) {
	entries := []FileEntry{
		{Path: "plugin.json", Description: "plugin manifest"},
		{Path: "scripts/pack.js", Description: "packaging script"},
	}

	got := RenderFileTree(entries, 20)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d:\n%s", len(lines), got)
	}

	for i, line := range lines {
		idx := strings.Index(line, entries[i].Description)
		if idx != 20 {
			t.Errorf("line %d: description starts at column %d, want 20: %q", i, idx, line)
		}
	}
}

func TestRenderFileTree_PathLongerThanColumn(t *testing.T) {
	entries := []FileEntry{
		{Path: "a/very/long/path/that/exceeds/the/column.js", Description: "desc"},
	}

	got := RenderFileTree(entries, 10)
	if !strings.Contains(got, ".js desc") {
		t.Errorf("expected single-space separator for overlong path, got %q", got)
	}
}

func TestRenderFileTree_Empty(t *testing.T) {
	if got := RenderFileTree(nil, 30); got != "" {
		t.Errorf("expected empty string for no entries, got %q", got)
	}
}

func TestFormatCheckmark(t *testing.T) {
	got := FormatCheckmark("done")
	if !strings.Contains(got, "✔") {
		t.Errorf("expected checkmark glyph in %q", got)
	}
	if !strings.Contains(got, "done") {
		t.Errorf("expected message in %q", got)
	}
}

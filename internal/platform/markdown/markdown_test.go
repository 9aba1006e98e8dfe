package markdown_test

import (
	"strings"
	"testing"

	"github.com/ferdiebergado/boring/internal/platform/markdown"
)

func TestGoldmarkRenderer_Render(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src      string
		contains []string
		excludes []string
	}{
		{"heading", "# Title", []string{"<h1>Title</h1>"}, nil},
		{"emphasis", "some *soft* text", []string{"<em>soft</em>"}, nil},
		{"hard wraps", "line one\nline two", []string{"line one<br>"}, nil},
		{"table", "| a | b |\n|---|---|\n| 1 | 2 |", []string{"<table>", "<td>1</td>"}, nil},
		{"raw html is dropped", "<script>alert(1)</script>", nil, []string{"<script>"}},
		{"empty", "", nil, []string{"<p>"}},
	}

	r := markdown.NewGoldmarkRenderer()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := r.Render(tt.src)
			if err != nil {
				t.Fatalf("r.Render(%q) = %v", tt.src, err)
			}

			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("r.Render(%q) = %q, want to contain %q", tt.src, got, want)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(got, unwanted) {
					t.Errorf("r.Render(%q) = %q, must not contain %q", tt.src, got, unwanted)
				}
			}
		})
	}
}

package locator

import (
	"strings"
	"testing"
)

func TestMatchWindowTitles(t *testing.T) {
	tests := []struct {
		name   string
		out    string
		base   string
		titles []string
		want   string
	}{
		{
			name:   "single editor window",
			out:    "127\tmain.go + (~/src) - VIM\n",
			base:   "main.go",
			titles: []string{"VIM"},
			want:   "127",
		},
		{
			name:   "non-editor window with file name ignored",
			out:    "101\tless main.go\n127\tmain.go + (~/src) - VIM\n",
			base:   "main.go",
			titles: []string{"VIM"},
			want:   "127",
		},
		{
			name:   "last match wins",
			out:    "101\tmain.go - VIM\n127\tmain.go + (~/other) - VIM\n",
			base:   "main.go",
			titles: []string{"VIM"},
			want:   "127",
		},
		{
			name:   "different file not matched",
			out:    "127\tother.go + (~/src) - VIM\n",
			base:   "main.go",
			titles: []string{"VIM"},
			want:   "",
		},
		{
			name:   "editor marker missing",
			out:    "127\tmain.go — zsh\n",
			base:   "main.go",
			titles: []string{"VIM"},
			want:   "",
		},
		{
			name:   "alternate title marker",
			out:    "42\tmain.go - nvim\n",
			base:   "main.go",
			titles: []string{"VIM", "nvim"},
			want:   "42",
		},
		{
			name:   "empty output",
			out:    "",
			base:   "main.go",
			titles: []string{"VIM"},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matchWindowTitles(tt.out, tt.base, tt.titles)
			if got != tt.want {
				t.Errorf("matchWindowTitles(): got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestListWindowsScript(t *testing.T) {
	script := listWindowsScript("Terminal")
	if !strings.Contains(script, `tell application "Terminal"`) {
		t.Errorf("script missing application clause:\n%s", script)
	}
	if !strings.Contains(script, "repeat with w in windows") {
		t.Errorf("script missing window loop:\n%s", script)
	}
}

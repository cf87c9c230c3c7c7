package proc

import (
	"reflect"
	"testing"
)

func TestParsePIDs(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want []int
	}{
		{
			name: "single pid",
			out:  "8731\n",
			want: []int{8731},
		},
		{
			name: "multiple pids",
			out:  "8731\n9042\n",
			want: []int{8731, 9042},
		},
		{
			name: "whitespace and blank lines",
			out:  "  8731  \n\n9042\n",
			want: []int{8731, 9042},
		},
		{
			name: "garbage lines skipped",
			out:  "8731\nlsof: warning\n-1\n",
			want: []int{8731},
		},
		{
			name: "empty output",
			out:  "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parsePIDs(tt.out)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parsePIDs(%q): got %v, want %v", tt.out, got, tt.want)
			}
		})
	}
}

func TestNormalizeTTY(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want string
	}{
		{name: "darwin tty", out: "ttys003\n", want: "/dev/ttys003"},
		{name: "linux pts", out: "pts/1\n", want: "/dev/pts/1"},
		{name: "already absolute", out: "/dev/pts/1", want: "/dev/pts/1"},
		{name: "no terminal question mark", out: "?\n", want: ""},
		{name: "no terminal double question mark", out: "??\n", want: ""},
		{name: "no terminal dash", out: "-", want: ""},
		{name: "empty", out: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeTTY(tt.out)
			if got != tt.want {
				t.Errorf("normalizeTTY(%q): got %q, want %q", tt.out, got, tt.want)
			}
		})
	}
}

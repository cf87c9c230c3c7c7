package locator

import (
	"reflect"
	"testing"
)

func TestParsePanes(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want []paneEntry
	}{
		{
			name: "single pane",
			out:  "/dev/ttys003\t0\t0\n",
			want: []paneEntry{{tty: "/dev/ttys003", window: 0, pane: 0}},
		},
		{
			name: "multiple panes across windows",
			out:  "/dev/ttys003\t0\t0\n/dev/ttys004\t0\t1\n/dev/ttys007\t2\t0\n",
			want: []paneEntry{
				{tty: "/dev/ttys003", window: 0, pane: 0},
				{tty: "/dev/ttys004", window: 0, pane: 1},
				{tty: "/dev/ttys007", window: 2, pane: 0},
			},
		},
		{
			name: "linux pts devices",
			out:  "/dev/pts/1\t1\t0\n/dev/pts/2\t1\t1\n",
			want: []paneEntry{
				{tty: "/dev/pts/1", window: 1, pane: 0},
				{tty: "/dev/pts/2", window: 1, pane: 1},
			},
		},
		{
			name: "malformed lines skipped",
			out:  "/dev/ttys003\t0\n/dev/ttys004\tx\t1\n/dev/ttys005\t1\t1\n",
			want: []paneEntry{{tty: "/dev/ttys005", window: 1, pane: 1}},
		},
		{
			name: "empty output",
			out:  "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parsePanes(tt.out)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parsePanes(%q): got %v, want %v", tt.out, got, tt.want)
			}
		})
	}
}

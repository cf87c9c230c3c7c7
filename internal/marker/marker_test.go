package marker

import "testing"

var extensions = []string{".swp", ".swo", ".swn"}

func TestFor(t *testing.T) {
	tests := []struct {
		name string
		file string
		want string
	}{
		{name: "plain file", file: "/home/u/main.go", want: "/home/u/.main.go.swp"},
		{name: "dotfile", file: "/home/u/.bashrc", want: "/home/u/..bashrc.swp"},
		{name: "relative path", file: "notes.txt", want: ".notes.txt.swp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := For(tt.file); got != tt.want {
				t.Errorf("For(%q): got %q, want %q", tt.file, got, tt.want)
			}
		})
	}
}

func TestIsMarker(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "swp marker", input: ".main.go.swp", want: true},
		{name: "swo marker", input: ".main.go.swo", want: true},
		{name: "swn marker", input: ".main.go.swn", want: true},
		{name: "no leading dot", input: "main.go.swp", want: false},
		{name: "wrong extension", input: ".main.go.bak", want: false},
		{name: "hidden file without extension", input: ".bashrc", want: false},
		{name: "bare dot extension", input: ".swp", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsMarker(tt.input, extensions); got != tt.want {
				t.Errorf("IsMarker(%q): got %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFileFor(t *testing.T) {
	tests := []struct {
		name   string
		marker string
		want   string
		wantOK bool
	}{
		{name: "swp marker", marker: "/home/u/.main.go.swp", want: "/home/u/main.go", wantOK: true},
		{name: "dotfile marker", marker: "/home/u/..bashrc.swp", want: "/home/u/.bashrc", wantOK: true},
		{name: "relative marker", marker: ".notes.txt.swo", want: "notes.txt", wantOK: true},
		{name: "not a marker", marker: "/home/u/main.go", wantOK: false},
		{name: "wrong extension", marker: "/home/u/.main.go.bak", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FileFor(tt.marker, extensions)
			if ok != tt.wantOK {
				t.Fatalf("FileFor(%q): ok = %v, want %v", tt.marker, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("FileFor(%q): got %q, want %q", tt.marker, got, tt.want)
			}
		})
	}
}

package apps

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func TestParseDesktopFile(t *testing.T) {
	testCases := []struct {
		name     string
		content  string
		wantName string
		wantExec string
		wantOK   bool
	}{
		{
			name:     "basic",
			content:  "[Desktop Entry]\nName=Foo\nExec=foo --flag\n",
			wantName: "Foo",
			wantExec: "foo --flag",
			wantOK:   true,
		},
		{
			name:     "first occurrence wins",
			content:  "Exec=first\nName=One\nName=Two\nExec=second\n",
			wantName: "One",
			wantExec: "first",
			wantOK:   true,
		},
		{
			name:     "localized names are not Name=",
			content:  "Name[de]=Fuu\nName=Foo\nExec=foo\n",
			wantName: "Foo",
			wantExec: "foo",
			wantOK:   true,
		},
		{
			name:     "value kept verbatim",
			content:  "Name= Spaced = Out \nExec=env A=B run %U\n",
			wantName: " Spaced = Out ",
			wantExec: "env A=B run %U",
			wantOK:   true,
		},
		{
			name:     "crlf line endings",
			content:  "Name=Foo\r\nExec=foo\r\n",
			wantName: "Foo",
			wantExec: "foo",
			wantOK:   true,
		},
		{
			name:     "no trailing newline",
			content:  "Name=Foo\nExec=foo",
			wantName: "Foo",
			wantExec: "foo",
			wantOK:   true,
		},
		{
			name:     "long line before keys",
			content:  "Comment=" + strings.Repeat("x", 2<<20) + "\nName=L\nExec=l\n",
			wantName: "L",
			wantExec: "l",
			wantOK:   true,
		},
		{name: "missing exec", content: "Name=Bar\n", wantOK: false},
		{name: "missing name", content: "Exec=bar\n", wantOK: false},
		{name: "empty file", content: "", wantOK: false},
		{name: "indented keys do not count", content: "  Name=Foo\n  Exec=foo\n", wantOK: false},
	}

	dir := t.TempDir()
	for i, tc := range testCases {
		path := filepath.Join(dir, tc.name+".desktop")
		writeFile(t, path, tc.content)

		name, exec, ok, err := ParseDesktopFile(path)
		if err != nil {
			t.Fatalf("%d %s: unexpected error: %v", i, tc.name, err)
		}
		if ok != tc.wantOK {
			t.Errorf("%s: expected ok=%v, got %v", tc.name, tc.wantOK, ok)
			continue
		}
		if !ok {
			continue
		}
		if name != tc.wantName || exec != tc.wantExec {
			t.Errorf("%s: expected (%q, %q), got (%q, %q)", tc.name, tc.wantName, tc.wantExec, name, exec)
		}
	}
}

func TestParseDesktopFileMissing(t *testing.T) {
	_, _, ok, err := ParseDesktopFile(filepath.Join(t.TempDir(), "gone.desktop"))
	if err == nil {
		t.Fatal("Expected an error for a missing file")
	}
	if ok {
		t.Error("Expected ok=false for a missing file")
	}
}

func TestIsDesktopFile(t *testing.T) {
	testCases := map[string]bool{
		"/usr/share/applications/foo.desktop": true,
		"foo.desktop":                         true,
		"foo.desktop.bak":                     false,
		"foo.Desktop":                         false,
		"mimeinfo.cache":                      false,
		"desktop":                             false,
	}
	for path, want := range testCases {
		if got := IsDesktopFile(path); got != want {
			t.Errorf("IsDesktopFile(%q): expected %v, got %v", path, want, got)
		}
	}
}

func TestFormatLabel(t *testing.T) {
	if got := FormatLabel("Foo", "foo --flag"); got != "Foo (foo --flag)" {
		t.Errorf("Expected 'Foo (foo --flag)', got %q", got)
	}
}

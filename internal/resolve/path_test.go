package resolve

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestExpandHome(t *testing.T) {
	cases := []struct {
		name string
		path string
		home string
		want string
	}{
		{"no prefix", "notes.txt", "/home/u", "notes.txt"},
		{"absolute untouched", "/etc/hosts", "/home/u", "/etc/hosts"},
		{"expanded", "~/notes.txt", "/home/u", filepath.Join("/home/u", "notes.txt")},
		{"bare home", "~/", "/home/u", "/home/u"},
		{"doubled prefix is literal", "~/~/notes.txt", "/home/u", "~/notes.txt"},
		{"tilde without slash untouched", "~notes", "/home/u", "~notes"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ExpandHome(tc.path, tc.home)
			if err != nil {
				t.Fatalf("ExpandHome(%q, %q): %v", tc.path, tc.home, err)
			}
			if got != tc.want {
				t.Errorf("ExpandHome(%q, %q) = %q, want %q", tc.path, tc.home, got, tc.want)
			}
		})
	}
}

func TestExpandHomeMissingHome(t *testing.T) {
	if _, err := ExpandHome("~/notes.txt", ""); err == nil {
		t.Fatal("expected an error when home is empty")
	} else if !strings.Contains(err.Error(), "could not find user home") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestPathResolvesRelativeAgainstDir(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "child.txt")
	if err := os.WriteFile(target, []byte("x\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	want, err := filepath.EvalSymlinks(target)
	if err != nil {
		t.Fatal(err)
	}

	got, err := Path("child.txt", dir, "")
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	if got != want {
		t.Errorf("Path = %q, want %q", got, want)
	}
}

func TestPathCollapsesDotDot(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "top.txt")
	if err := os.WriteFile(target, []byte("x\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	want, err := filepath.EvalSymlinks(target)
	if err != nil {
		t.Fatal(err)
	}

	got, err := Path("../top.txt", filepath.Join(dir, "sub"), "")
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	if got != want {
		t.Errorf("Path = %q, want %q", got, want)
	}
}

func TestPathExpandsHome(t *testing.T) {
	home := t.TempDir()
	target := filepath.Join(home, "doc.txt")
	if err := os.WriteFile(target, []byte("x\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	want, err := filepath.EvalSymlinks(target)
	if err != nil {
		t.Fatal(err)
	}

	got, err := Path("~/doc.txt", "/elsewhere", home)
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	if got != want {
		t.Errorf("Path = %q, want %q", got, want)
	}
}

func TestPathFollowsSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation needs privileges on windows")
	}
	dir := t.TempDir()
	target := filepath.Join(dir, "real.txt")
	if err := os.WriteFile(target, []byte("x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(dir, "alias.txt")
	if err := os.Symlink(target, link); err != nil {
		t.Fatal(err)
	}

	want, err := filepath.EvalSymlinks(target)
	if err != nil {
		t.Fatal(err)
	}

	got, err := Path("alias.txt", dir, "")
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	if got != want {
		t.Errorf("Path = %q, want %q", got, want)
	}
}

func TestPathMissingFile(t *testing.T) {
	dir := t.TempDir()
	_, err := Path("absent.txt", dir, "")
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if !strings.Contains(err.Error(), "could not find") {
		t.Errorf("unexpected error: %v", err)
	}
	if !strings.Contains(err.Error(), "absent.txt") {
		t.Errorf("error should carry the requested path: %v", err)
	}
}

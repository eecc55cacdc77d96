package view

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func canonical(t *testing.T, path string) string {
	t.Helper()
	c, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func parsePath(t *testing.T, path string) *LineView {
	t.Helper()
	v, err := ReadPath(path, FileProvider{}, "")
	if err != nil {
		t.Fatalf("ReadPath: %v", err)
	}
	return v
}

func TestReadPathTitleFallsBackToPath(t *testing.T) {
	dir := t.TempDir()
	root := writeSource(t, dir, "root.txt", "body\n")

	v := parsePath(t, root)
	if v.Title() != root {
		t.Errorf("title = %q, want %q", v.Title(), root)
	}
}

func TestReadPathMissingRoot(t *testing.T) {
	dir := t.TempDir()
	_, err := ReadPath(filepath.Join(dir, "absent.txt"), FileProvider{}, "")
	if err == nil {
		t.Fatal("expected an error for a missing root")
	}
	if !strings.Contains(err.Error(), "resolving root source") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestImportInlinesAtPosition(t *testing.T) {
	dir := t.TempDir()
	root := writeSource(t, dir, "root.txt", "before\n#-import child.txt\nafter\n")
	child := writeSource(t, dir, "child.txt", "inside\n")

	v := parsePath(t, root)
	expectLines(t, v, "text:before", "text:inside", "empty", "text:after", "empty")

	rootC, childC := canonical(t, root), canonical(t, child)
	wantPaths := []string{rootC, childC, childC, rootC, rootC}
	wantPositions := []int{1, 1, 2, 3, 4}
	for i := 0; i < v.Len(); i++ {
		l := v.At(i)
		if l.Path() != wantPaths[i] {
			t.Errorf("line %d path = %q, want %q", i, l.Path(), wantPaths[i])
		}
		if l.Position() != wantPositions[i] {
			t.Errorf("line %d position = %d, want %d", i, l.Position(), wantPositions[i])
		}
		if want := "FILE:" + wantPaths[i]; l.Source() != want {
			t.Errorf("line %d source = %q, want %q", i, l.Source(), want)
		}
	}
}

func TestImportCycleWarnsOnce(t *testing.T) {
	dir := t.TempDir()
	a := writeSource(t, dir, "a.txt", "A\n#-import b.txt\n")
	writeSource(t, dir, "b.txt", "B\n#-import a.txt\n")

	v := parsePath(t, a)
	expectLines(t, v,
		"text:A",
		"text:B",
		"warning:could not source/import/lines a.txt",
		"empty",
		"empty")
}

func TestImportSelfWarns(t *testing.T) {
	dir := t.TempDir()
	root := writeSource(t, dir, "root.txt", "#-import root.txt\n")

	v := parsePath(t, root)
	expectLines(t, v,
		"warning:could not source/import/lines root.txt",
		"empty")
}

func TestImportMissingFileWarns(t *testing.T) {
	dir := t.TempDir()
	root := writeSource(t, dir, "root.txt", "#-import absent.txt\nafter\n")

	v := parsePath(t, root)
	expectLines(t, v,
		"warning:could not source/import/lines absent.txt",
		"text:after",
		"empty")
}

func TestSourceSharesCommandWithParent(t *testing.T) {
	dir := t.TempDir()
	root := writeSource(t, dir, "root.txt", "#-exe echo\nmine\n#-source child.txt\nalso mine\n")
	writeSource(t, dir, "child.txt", "#-arg -n\ntheirs\n")

	v := parsePath(t, root)
	expectLines(t, v, "text:mine", "text:theirs", "empty", "text:also mine", "empty")

	mine, theirs, alsoMine := v.At(0), v.At(1), v.At(3)
	if mine.cmd != theirs.cmd || mine.cmd != alsoMine.cmd {
		t.Fatal("sourced lines must share the parent's command")
	}
	if got := mine.cmd.Exe(); got != "echo" {
		t.Errorf("exe = %q, want %q", got, "echo")
	}
	if got := mine.cmd.Args(); len(got) != 1 || got[0] != "-n" {
		t.Errorf("args = %q, want the argument added by the sourced file", got)
	}
}

func TestCleanAfterSourcedCleanBindsFreshCommand(t *testing.T) {
	dir := t.TempDir()
	root := writeSource(t, dir, "root.txt", "#-source child.txt\n#-clean\n#-exe parent\nP\n")
	writeSource(t, dir, "child.txt", "#-clean\n#-arg childarg\nC\n")

	v := parsePath(t, root)
	expectLines(t, v, "text:C", "empty", "text:P", "empty")

	c, p := v.At(0), v.At(2)
	if c.cmd == p.cmd {
		t.Fatal("a clean in the parent must not alias the sourced file's command")
	}
	if got := c.cmd.Exe(); got != "" {
		t.Errorf("child exe = %q, want empty", got)
	}
	if got := c.cmd.Args(); len(got) != 1 || got[0] != "childarg" {
		t.Errorf("child args = %q, want [childarg]", got)
	}
	if got := p.cmd.Exe(); got != "parent" {
		t.Errorf("parent exe = %q, want %q", got, "parent")
	}
	if got := p.cmd.Args(); len(got) != 0 {
		t.Errorf("parent args = %q, want none", got)
	}
}

func TestSourceDedupWithinSubtree(t *testing.T) {
	dir := t.TempDir()
	root := writeSource(t, dir, "root.txt", "#-source c.txt\n#-source c.txt\n")
	writeSource(t, dir, "c.txt", "C\n")

	v := parsePath(t, root)
	expectLines(t, v,
		"text:C",
		"empty",
		"warning:could not source/import/lines c.txt",
		"empty")
}

func TestSourceDedupScopedPerImport(t *testing.T) {
	dir := t.TempDir()
	root := writeSource(t, dir, "root.txt", "#-import a.txt\n#-import b.txt\n")
	writeSource(t, dir, "a.txt", "#-source c.txt\n")
	writeSource(t, dir, "b.txt", "#-source c.txt\n")
	writeSource(t, dir, "c.txt", "C\n")

	v := parsePath(t, root)
	expectLines(t, v,
		"text:C", "empty", "empty",
		"text:C", "empty", "empty",
		"empty")
}

func TestLinesIncludeKeepsOnlyText(t *testing.T) {
	dir := t.TempDir()
	root := writeSource(t, dir, "root.txt", "#-exe echo\n#-lines child.txt\n")
	writeSource(t, dir, "child.txt", "#-title Nope\nkept\n#-end\n\nmore\n")

	v := parsePath(t, root)
	expectLines(t, v, "text:kept", "empty", "text:more", "empty", "empty")

	if v.Title() != root {
		t.Errorf("title = %q, a lines include must not set it", v.Title())
	}
	kept := v.At(0)
	if !kept.HasCommand() || kept.cmd.Exe() != "echo" {
		t.Error("lines-included text must bind to the including file's command")
	}
}

func TestLinesIncludeRepeatsFreely(t *testing.T) {
	dir := t.TempDir()
	root := writeSource(t, dir, "root.txt", "#-lines c.txt\n#-lines c.txt\n")
	writeSource(t, dir, "c.txt", "C\n")

	v := parsePath(t, root)
	expectLines(t, v,
		"text:C", "empty",
		"text:C", "empty",
		"empty")
}

func TestIncludeExpandsHome(t *testing.T) {
	home := t.TempDir()
	dir := t.TempDir()
	root := writeSource(t, dir, "root.txt", "#-import ~/c.txt\n")
	writeSource(t, home, "c.txt", "from home\n")

	v, err := ReadPath(root, FileProvider{}, home)
	if err != nil {
		t.Fatalf("ReadPath: %v", err)
	}
	expectLines(t, v, "text:from home", "empty", "empty")
}

func TestIncludeHomeExpansionFailsWithoutHome(t *testing.T) {
	dir := t.TempDir()
	root := writeSource(t, dir, "root.txt", "#-import ~/c.txt\n")

	v := parsePath(t, root)
	expectLines(t, v,
		"warning:could not source/import/lines ~/c.txt",
		"empty")
}

func TestIncludeResolvesRelativeToIncludingFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	root := writeSource(t, dir, "root.txt", "#-import sub/a.txt\n")
	writeSource(t, filepath.Join(dir, "sub"), "a.txt", "#-import b.txt\n")
	writeSource(t, filepath.Join(dir, "sub"), "b.txt", "deep\n")

	v := parsePath(t, root)
	expectLines(t, v, "text:deep", "empty", "empty", "empty")
}

package markdown

import (
	"strings"
	"testing"
	"testing/fstest"
)

func TestFragmentRendersBasicMarkdown(t *testing.T) {
	out, err := Fragment([]byte("# Title\n\nSome *emphasis* here.\n"))
	if err != nil {
		t.Fatalf("fragment: %v", err)
	}
	if !strings.Contains(out, "<h1>Title</h1>") {
		t.Fatalf("missing heading in %q", out)
	}
	if !strings.Contains(out, "<em>emphasis</em>") {
		t.Fatalf("missing emphasis in %q", out)
	}
	if strings.HasSuffix(out, "\n") {
		t.Fatalf("fragment keeps trailing newline: %q", out)
	}
}

func TestFragmentFile(t *testing.T) {
	fsys := fstest.MapFS{
		"pages/intro.md": {Data: []byte("- one\n- two\n")},
	}

	out, err := FragmentFile(fsys, "pages/intro.md")
	if err != nil {
		t.Fatalf("fragment file: %v", err)
	}
	if !strings.Contains(out, "<li>one</li>") || !strings.Contains(out, "<li>two</li>") {
		t.Fatalf("list items missing in %q", out)
	}
}

func TestFragmentFileMissing(t *testing.T) {
	if _, err := FragmentFile(fstest.MapFS{}, "nope.md"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

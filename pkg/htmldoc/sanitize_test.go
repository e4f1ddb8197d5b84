package htmldoc

import (
	"strings"
	"testing"
)

func TestSanitizeStripsScripts(t *testing.T) {
	got := Sanitize(`<p class="note">ok</p><script>alert(1)</script>`)
	if strings.Contains(got, "script") {
		t.Fatalf("script survived sanitization: %q", got)
	}
	if !strings.Contains(got, `<p class="note">ok</p>`) {
		t.Fatalf("benign markup was mangled: %q", got)
	}
}

func TestSanitizeEmptyInput(t *testing.T) {
	if got := Sanitize("   \n\t"); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestSanitizeKeepsIDs(t *testing.T) {
	got := Sanitize(`<h2 id="intro">Intro</h2>`)
	if !strings.Contains(got, `id="intro"`) {
		t.Fatalf("id attribute dropped: %q", got)
	}
}

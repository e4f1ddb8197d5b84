package manifest

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

const yamlManifest = `
title: Release Notes
lang: en
full: true
stylesheets:
  - site.css
  - notes.css
scripts:
  - app.js
body:
  - html: "<h1>Release Notes</h1>"
  - markdown: notes.md
output: notes.html
`

func TestLoadFSParsesYAML(t *testing.T) {
	fsys := fstest.MapFS{
		"pages/notes.yaml": {Data: []byte(yamlManifest)},
		"pages/notes.md":   {Data: []byte("Fixed *all* the bugs.\n")},
	}

	page, err := LoadFS(fsys, "pages/notes.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := []string{"site.css", "notes.css"}
	if diff := cmp.Diff(want, page.Stylesheets); diff != "" {
		t.Fatalf("stylesheets mismatch (-want +got):\n%s", diff)
	}
	if page.Output != "notes.html" {
		t.Fatalf("output mismatch: %q", page.Output)
	}
}

func TestLoadFSParsesJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"page.json": {Data: []byte(`{"title":"JSON Page","body":[{"html":"<p>hi</p>"}]}`)},
	}

	page, err := LoadFS(fsys, "page.json")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if page.Title != "JSON Page" {
		t.Fatalf("title mismatch: %q", page.Title)
	}
}

func TestDocumentBuildsFullPage(t *testing.T) {
	fsys := fstest.MapFS{
		"pages/notes.yaml": {Data: []byte(yamlManifest)},
		"pages/notes.md":   {Data: []byte("Fixed *all* the bugs.\n")},
	}

	page, err := LoadFS(fsys, "pages/notes.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	doc, err := page.Document()
	if err != nil {
		t.Fatalf("document: %v", err)
	}

	out := doc.Render()
	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Release Notes</title>",
		`<link rel="stylesheet" href="site.css">`,
		`<link rel="stylesheet" href="notes.css">`,
		`<script src="app.js"></script>`,
		"<h1>Release Notes</h1>",
		"<em>all</em>",
		"</html>",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in rendered page:\n%s", want, out)
		}
	}
}

func TestDocumentSanitizesFlaggedEntries(t *testing.T) {
	fsys := fstest.MapFS{
		"page.yaml": {Data: []byte("title: T\nbody:\n  - html: \"<p>ok</p><script>bad()</script>\"\n    sanitize: true\n")},
	}

	page, err := LoadFS(fsys, "page.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	doc, err := page.Document()
	if err != nil {
		t.Fatalf("document: %v", err)
	}
	if out := doc.Render(); strings.Contains(out, "bad()") {
		t.Fatalf("sanitize flag ignored:\n%s", out)
	}
}

func TestBodyEntryMustBeExclusive(t *testing.T) {
	cases := map[string]string{
		"both":    "title: T\nbody:\n  - html: \"<p>x</p>\"\n    markdown: x.md\n",
		"neither": "title: T\nbody:\n  - sanitize: true\n",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			fsys := fstest.MapFS{"bad.yaml": {Data: []byte(raw)}}
			if _, err := LoadFS(fsys, "bad.yaml"); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestLoadFSInvalidSyntaxReportsCause(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.yaml": {Data: []byte("title: [unclosed\n")},
	}

	_, err := LoadFS(fsys, "bad.yaml")
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "parse bad.yaml") {
		t.Fatalf("error should name the file: %v", err)
	}
	if !strings.Contains(err.Error(), "yaml") {
		t.Fatalf("error should carry the decoder's cause: %v", err)
	}
}

func TestLoadFSEmptyFile(t *testing.T) {
	fsys := fstest.MapFS{"empty.yaml": {Data: []byte("  \n")}}
	if _, err := LoadFS(fsys, "empty.yaml"); err == nil {
		t.Fatal("expected error for empty manifest")
	}
}

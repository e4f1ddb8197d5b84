// Package pagegen builds HTML pages from ordered string fragments, page
// manifests and Markdown sources. The root package re-exports the most used
// pieces of pkg/htmldoc and pkg/manifest and offers one-call page generation.
package pagegen

import (
	"io/fs"

	"github.com/goliatone/go-pagegen/pkg/htmldoc"
	"github.com/goliatone/go-pagegen/pkg/manifest"
)

// Document is the HTML document builder; alias exported via the root package
// for convenience.
type Document = htmldoc.Document

// Attr is a single ordered element attribute for Tag.
type Attr = htmldoc.Attr

// Page is a declarative page manifest.
type Page = manifest.Page

// Option configures a Document.
type Option = htmldoc.Option

// New constructs an empty document. See htmldoc.New.
func New(options ...Option) *Document {
	return htmldoc.New(options...)
}

// Tag renders a single element. See htmldoc.Tag.
func Tag(name, content string, attrs ...Attr) string {
	return htmldoc.Tag(name, content, attrs...)
}

// GeneratePage loads a manifest from disk, builds its document and renders
// the final HTML. It is the simplest entry point for callers that just want
// page output.
func GeneratePage(path string, options ...Option) (string, error) {
	page, err := manifest.Load(path)
	if err != nil {
		return "", err
	}
	doc, err := page.Document(options...)
	if err != nil {
		return "", err
	}
	return doc.Render(), nil
}

// GeneratePageFS is GeneratePage against an fs.FS, used with embedded page
// bundles and in tests.
func GeneratePageFS(fsys fs.FS, path string, options ...Option) (string, error) {
	page, err := manifest.LoadFS(fsys, path)
	if err != nil {
		return "", err
	}
	doc, err := page.Document(options...)
	if err != nil {
		return "", err
	}
	return doc.Render(), nil
}

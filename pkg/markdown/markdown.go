// Package markdown converts Markdown sources into HTML body fragments for
// htmldoc documents.
package markdown

import (
	"bytes"
	"fmt"
	"io/fs"
	"strings"

	"github.com/yuin/goldmark"
)

// Fragment renders a Markdown source as an HTML fragment suitable for
// Document.Add. The output is trimmed of trailing whitespace so fragments
// stack cleanly in the rendered body.
func Fragment(src []byte) (string, error) {
	md := goldmark.New()
	var buf bytes.Buffer
	if err := md.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("markdown: convert: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// FragmentFile reads path from fsys and renders it as an HTML fragment.
func FragmentFile(fsys fs.FS, path string) (string, error) {
	src, err := fs.ReadFile(fsys, path)
	if err != nil {
		return "", fmt.Errorf("markdown: read %s: %w", path, err)
	}
	out, err := Fragment(src)
	if err != nil {
		return "", fmt.Errorf("markdown: render %s: %w", path, err)
	}
	return out, nil
}

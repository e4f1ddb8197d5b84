// Package manifest loads YAML or JSON page descriptions and turns them into
// htmldoc documents. A manifest is the declarative counterpart to driving the
// builder by hand: title and asset lists map onto SetTitle, body entries map
// onto Add, with Markdown entries rendered through pkg/markdown first.
package manifest

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-pagegen/pkg/htmldoc"
	"github.com/goliatone/go-pagegen/pkg/markdown"
	"gopkg.in/yaml.v3"
)

// Page describes a single document to build.
type Page struct {
	Title       string   `json:"title" yaml:"title"`
	Lang        string   `json:"lang,omitempty" yaml:"lang,omitempty"`
	DocType     string   `json:"doctype,omitempty" yaml:"doctype,omitempty"`
	Full        bool     `json:"full,omitempty" yaml:"full,omitempty"`
	Stylesheets []string `json:"stylesheets,omitempty" yaml:"stylesheets,omitempty"`
	Scripts     []string `json:"scripts,omitempty" yaml:"scripts,omitempty"`
	Body        []Entry  `json:"body" yaml:"body"`

	// Output is the destination path used by the CLI; empty means stdout.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	fsys    fs.FS
	baseDir string
}

// Entry is one body fragment source. Exactly one of HTML or Markdown must be
// set: HTML is passed through verbatim, Markdown names a file rendered to a
// fragment. Sanitize runs the resulting fragment through htmldoc.Sanitize.
type Entry struct {
	HTML     string `json:"html,omitempty" yaml:"html,omitempty"`
	Markdown string `json:"markdown,omitempty" yaml:"markdown,omitempty"`
	Sanitize bool   `json:"sanitize,omitempty" yaml:"sanitize,omitempty"`
}

// Load reads a page manifest from disk. Markdown entries in the returned page
// resolve relative to the manifest's directory when built with Document.
func Load(path string) (*Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", path, err)
	}
	page, err := parse(data, path)
	if err != nil {
		return nil, err
	}
	page.baseDir = filepath.Dir(path)
	return page, nil
}

// LoadFS reads a page manifest from the provided filesystem.
func LoadFS(fsys fs.FS, path string) (*Page, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", path, err)
	}
	page, err := parse(data, path)
	if err != nil {
		return nil, err
	}
	page.fsys = fsys
	page.baseDir = filepath.Dir(path)
	return page, nil
}

func parse(data []byte, source string) (*Page, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("manifest: file %s is empty", source)
	}

	var fromJSON Page
	if err := json.Unmarshal(data, &fromJSON); err == nil {
		return validated(&fromJSON, source)
	}

	// YAML is the common format, so its decode error is the one worth
	// surfacing when both attempts fail.
	var fromYAML Page
	if err := yaml.Unmarshal(data, &fromYAML); err != nil {
		return nil, fmt.Errorf("manifest: parse %s: %w", source, err)
	}
	return validated(&fromYAML, source)
}

func validated(page *Page, source string) (*Page, error) {
	for i, entry := range page.Body {
		hasHTML := strings.TrimSpace(entry.HTML) != ""
		hasMarkdown := strings.TrimSpace(entry.Markdown) != ""
		if hasHTML == hasMarkdown {
			return nil, fmt.Errorf("manifest: file %s body entry %d must set exactly one of html or markdown", source, i)
		}
	}
	return page, nil
}

// Document builds an htmldoc.Document from the page, rendering Markdown
// entries along the way. Extra options (themes, overrides) are applied after
// the page's own settings.
func (p *Page) Document(options ...htmldoc.Option) (*htmldoc.Document, error) {
	opts := make([]htmldoc.Option, 0, len(options)+4)
	if p.Full {
		opts = append(opts, htmldoc.WithHead(), htmldoc.WithTail())
	}
	if p.Lang != "" {
		opts = append(opts, htmldoc.WithLang(p.Lang))
	}
	if p.DocType != "" {
		opts = append(opts, htmldoc.WithDocType(p.DocType))
	}
	opts = append(opts, options...)

	doc := htmldoc.New(opts...)
	doc.SetTitle(p.Title, strings.Join(p.Scripts, " "), strings.Join(p.Stylesheets, " "))

	for i, entry := range p.Body {
		fragment, err := p.fragment(entry)
		if err != nil {
			return nil, fmt.Errorf("manifest: body entry %d: %w", i, err)
		}
		doc.Add(fragment)
	}
	return doc, nil
}

func (p *Page) fragment(entry Entry) (string, error) {
	var fragment string
	switch {
	case strings.TrimSpace(entry.Markdown) != "":
		out, err := p.renderMarkdown(entry.Markdown)
		if err != nil {
			return "", err
		}
		fragment = out
	default:
		fragment = entry.HTML
	}
	if entry.Sanitize {
		fragment = htmldoc.Sanitize(fragment)
	}
	return fragment, nil
}

func (p *Page) renderMarkdown(name string) (string, error) {
	path := name
	if p.baseDir != "" && p.baseDir != "." && !filepath.IsAbs(name) {
		path = filepath.Join(p.baseDir, name)
	}
	if p.fsys != nil {
		return markdown.FragmentFile(p.fsys, filepath.ToSlash(path))
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return markdown.Fragment(src)
}

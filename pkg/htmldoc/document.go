package htmldoc

import "strings"

// Option configures a Document at construction time.
type Option func(*Document)

// WithHead enables the <!DOCTYPE>, <html> and <head> wrappers around the head
// metadata.
func WithHead() Option {
	return func(d *Document) {
		d.includeHead = true
	}
}

// WithTail enables the closing </html> after the body.
func WithTail() Option {
	return func(d *Document) {
		d.includeTail = true
	}
}

// WithLang sets the lang attribute emitted on the <html> element. The value
// is not validated; malformed values produce malformed output.
func WithLang(lang string) Option {
	return func(d *Document) {
		if lang != "" {
			d.lang = lang
		}
	}
}

// WithDocType sets the doctype keyword emitted in the <!DOCTYPE> line.
func WithDocType(docType string) Option {
	return func(d *Document) {
		if docType != "" {
			d.docType = docType
		}
	}
}

// Document accumulates head metadata and body fragments and renders them as a
// single HTML string. The zero value is not usable; construct with New.
type Document struct {
	includeHead bool
	includeTail bool
	lang        string
	docType     string

	head head
	body []string
}

type head struct {
	title       string
	stylesheets []string
	scripts     []string
	themeCSS    string
}

// New constructs a Document applying any provided options. Defaults produce a
// bare fragment: no wrappers, lang "en", doctype "html".
func New(options ...Option) *Document {
	doc := &Document{
		lang:    "en",
		docType: "html",
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(doc)
	}
	return doc
}

// SetTitle records the document title and whitespace-delimited lists of
// script sources and stylesheet hrefs. The title follows last-call-wins
// semantics; scripts and css replace any previously recorded lists. Order
// within each list is preserved in the rendered output.
func (d *Document) SetTitle(title, scripts, css string) *Document {
	d.head.title = title
	d.head.scripts = strings.Fields(scripts)
	d.head.stylesheets = strings.Fields(css)
	return d
}

// Add appends a body fragment. Fragments render in insertion order, each on
// its own line. The fragment is emitted verbatim.
func (d *Document) Add(fragment string) *Document {
	d.body = append(d.body, fragment)
	return d
}

// Render serializes the document. It never mutates the receiver, so repeated
// calls without intervening SetTitle/Add produce byte-identical output.
func (d *Document) Render() string {
	var b strings.Builder
	b.Grow(d.sizeHint())

	if d.includeHead {
		b.WriteString("<!DOCTYPE ")
		b.WriteString(d.docType)
		b.WriteString(">\n<html lang=\"")
		b.WriteString(d.lang)
		b.WriteString("\">\n<head>\n")
	}

	if d.head.title != "" {
		b.WriteString("<title>")
		b.WriteString(d.head.title)
		b.WriteString("</title>\n")
	}
	for _, href := range d.head.stylesheets {
		b.WriteString(`<link rel="stylesheet" href="`)
		b.WriteString(href)
		b.WriteString("\">\n")
	}
	if d.head.themeCSS != "" {
		b.WriteString("<style>")
		b.WriteString(d.head.themeCSS)
		b.WriteString("</style>\n")
	}
	for _, src := range d.head.scripts {
		b.WriteString(`<script src="`)
		b.WriteString(src)
		b.WriteString("\"></script>\n")
	}

	if d.includeHead {
		b.WriteString("</head>\n")
	}

	b.WriteString("<body>\n")
	for _, fragment := range d.body {
		b.WriteString(fragment)
		b.WriteByte('\n')
	}
	b.WriteString("</body>\n")

	if d.includeTail {
		b.WriteString("</html>")
	}

	return b.String()
}

func (d *Document) sizeHint() int {
	n := 128 + len(d.head.title) + len(d.head.themeCSS)
	for _, href := range d.head.stylesheets {
		n += len(href) + 40
	}
	for _, src := range d.head.scripts {
		n += len(src) + 32
	}
	for _, fragment := range d.body {
		n += len(fragment) + 1
	}
	return n
}

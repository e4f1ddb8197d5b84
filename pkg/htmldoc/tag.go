package htmldoc

import "strings"

// Attr is a single element attribute. Attributes are passed as an ordered
// slice rather than a map so the rendered order is deterministic.
type Attr struct {
	Name  string
	Value string
}

// Tag renders a single element with the supplied attributes and content. It
// is a pure helper; nothing is recorded on any Document. Content and
// attribute values are emitted verbatim, unescaped. Empty content yields an
// adjacent open/close pair (<name></name>), never a self-closing form.
func Tag(name, content string, attrs ...Attr) string {
	var b strings.Builder
	b.Grow(len(name)*2 + len(content) + len(attrs)*16 + 5)

	b.WriteByte('<')
	b.WriteString(name)
	for _, attr := range attrs {
		b.WriteByte(' ')
		b.WriteString(attr.Name)
		b.WriteString(`="`)
		b.WriteString(attr.Value)
		b.WriteByte('"')
	}
	b.WriteByte('>')
	b.WriteString(content)
	b.WriteString("</")
	b.WriteString(name)
	b.WriteByte('>')

	return b.String()
}

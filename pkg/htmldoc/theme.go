package htmldoc

import (
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// WithTheme resolves a go-theme selection and injects its manifest tokens as
// a :root custom-property block in the head, between the stylesheet links and
// the scripts. Selection failures leave the document without a theme block;
// Render has no error path and a missing theme is not fatal to page output.
func WithTheme(selector theme.ThemeSelector, name, variant string) Option {
	return func(d *Document) {
		if selector == nil {
			return
		}
		selection, err := selector.Select(name, variant)
		if err != nil || selection == nil || selection.Manifest == nil {
			return
		}
		d.head.themeCSS = tokensStyle(selection.Manifest.Tokens)
	}
}

func tokensStyle(tokens map[string]string) string {
	if len(tokens) == 0 {
		return ""
	}
	keys := make([]string, 0, len(tokens))
	for key := range tokens {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root{")
	for _, key := range keys {
		name := key
		if !strings.HasPrefix(name, "--") {
			name = "--" + name
		}
		b.WriteString(name)
		b.WriteByte(':')
		b.WriteString(tokens[key])
		b.WriteByte(';')
	}
	b.WriteByte('}')
	return b.String()
}

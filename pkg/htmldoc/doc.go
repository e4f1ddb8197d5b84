// Package htmldoc assembles HTML documents from ordered string fragments.
//
// A Document accumulates head metadata (title, stylesheet hrefs, script
// sources) and an append-only sequence of body fragments, then serializes
// everything with Render. The package performs no escaping and no validation:
// fragments, attribute values, lang and doctype strings are emitted verbatim,
// so callers must pre-escape untrusted input (or run it through Sanitize).
//
// Known limitations, kept on purpose:
//   - Tag always emits an open/close pair; void elements such as <br> or
//     <img> will render as <br></br>, which is not what a browser expects.
//   - A Document is not safe for concurrent mutation. Callers that share one
//     across goroutines must serialize SetTitle/Add themselves.
//   - Head metadata set on a document built without WithHead is still
//     emitted, just without the surrounding <!DOCTYPE>, <html> and <head>
//     wrappers.
package htmldoc

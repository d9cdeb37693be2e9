// Package render walks a goldmark document tree and writes HTML.
//
// Two variants share one walker. Basic emits plain markup. Enhanced adds
// syntax highlighting, heading ids with table-of-contents entries, code
// block chrome (header, copy and run buttons, line numbers) and inline or
// display math passthrough.
//
// All per-document state lives in a walker created by each Render call:
// the heading id counter, the table-head flag and the collected TOC
// entries. Renderers themselves are immutable and safe for concurrent use.
//
// Raw HTML blocks and inline HTML are copied through unescaped. Callers
// rendering untrusted Markdown must sanitize the output.
package render

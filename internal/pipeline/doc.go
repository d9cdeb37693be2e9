// Package pipeline holds the stages around rendering:
//   - line-ending normalization of the Markdown source
//   - parsing Markdown into a goldmark tree
//   - post-processing the rendered fragment (base URL rewriting,
//     sanitization)
//   - assembling a standalone HTML page from a fragment, its stylesheet,
//     a header built from front matter and the table of contents
//
// Rendering itself lives in internal/render; front matter extraction in
// internal/frontmatter.
package pipeline

package md2html

import (
	"errors"

	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/frontmatter"
	"github.com/alnah/go-md2html/internal/pipeline"
	"github.com/alnah/go-md2html/internal/render"
	"github.com/alnah/go-md2html/typography"
)

// Sentinel errors for library operations.
var (
	ErrEmptyContent   = errors.New("markdown content cannot be empty")
	ErrInvalidOptions = errors.New("invalid render options")
	ErrInvalidAsset   = errors.New("invalid asset path")

	// Front matter errors.
	ErrUnterminatedFrontMatter = frontmatter.ErrUnterminated
	ErrMalformedFrontMatter    = frontmatter.ErrMalformedLine

	// Rendering errors.
	ErrInvalidLink    = render.ErrInvalidLink
	ErrInvalidImage   = render.ErrInvalidImage
	ErrEmptyCodeBlock = render.ErrEmptyCodeBlock

	// Typography and asset errors.
	ErrUnknownPreset    = typography.ErrUnknownPreset
	ErrInvalidBaseURL   = pipeline.ErrInvalidBaseURL
	ErrTemplateNotFound = assets.ErrTemplateNotFound
)

// LineError reports a malformed front matter line. It matches
// ErrMalformedFrontMatter with errors.Is.
type LineError = frontmatter.LineError

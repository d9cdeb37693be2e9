package render

import "errors"

// Content errors abort a render.
var (
	ErrInvalidLink    = errors.New("link has no destination")
	ErrInvalidImage   = errors.New("image has no source")
	ErrEmptyCodeBlock = errors.New("code block is empty")
)

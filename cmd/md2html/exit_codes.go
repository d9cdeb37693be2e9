package main

import (
	"errors"
	"os"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/dateutil"
)

// Exit codes for the md2html CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitContent = 4 // Document content the renderer rejects
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Content errors (exit 4)
	if errors.Is(err, md2html.ErrInvalidLink) ||
		errors.Is(err, md2html.ErrInvalidImage) ||
		errors.Is(err, md2html.ErrEmptyCodeBlock) ||
		errors.Is(err, md2html.ErrUnterminatedFrontMatter) ||
		errors.Is(err, md2html.ErrMalformedFrontMatter) {
		return ExitContent
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrReadCSS) ||
		errors.Is(err, ErrWriteHTML) ||
		errors.Is(err, ErrCreateOutputDir) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrNoMarkdownFiles) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrInvalidFlags) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrWatchTarget) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidConfig) ||
		errors.Is(err, md2html.ErrEmptyContent) ||
		errors.Is(err, md2html.ErrInvalidOptions) ||
		errors.Is(err, md2html.ErrInvalidAsset) ||
		errors.Is(err, md2html.ErrUnknownPreset) ||
		errors.Is(err, md2html.ErrInvalidBaseURL) ||
		errors.Is(err, md2html.ErrTemplateNotFound) {
		return ExitUsage
	}

	return ExitGeneral
}

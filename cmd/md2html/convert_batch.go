package main

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"golang.org/x/sync/errgroup"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for batch operations.
var (
	ErrReadMarkdown    = errors.New("failed to read markdown file")
	ErrWriteHTML       = errors.New("failed to write HTML file")
	ErrCreateOutputDir = errors.New("failed to create output directory")
)

// DocumentParser is the part of md2html.Parser the CLI uses.
type DocumentParser interface {
	Parse(ctx context.Context, raw string) (*md2html.ParsedDocument, error)
	ParseWithTableOfContents(ctx context.Context, raw string) (*md2html.ParsedDocument, string, error)
	ParseSafely(ctx context.Context, raw string) *md2html.ParsedDocument
	ParseSafelyWithTableOfContents(ctx context.Context, raw string) (*md2html.ParsedDocument, string)
	Document(ctx context.Context, doc *md2html.ParsedDocument) (string, error)
	GenerateCSS() string
}

// Compile-time interface implementation check.
var _ DocumentParser = (*md2html.Parser)(nil)

// conversionParams groups the output choices shared by every file of a batch.
type conversionParams struct {
	standalone bool // complete HTML page
	toc        bool // prepend the table of contents
	safe       bool // escaped fallback instead of failing
	inlineCSS  bool // <style> block in fragments
	date       string
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Size       int
	Err        error
	Duration   time.Duration
}

// convertBatch converts files with at most workers goroutines. Results keep
// the order of files.
func convertBatch(ctx context.Context, p DocumentParser, files []FileToConvert, params *conversionParams, workers int) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	results := make([]ConversionResult, len(files))
	var g errgroup.Group
	g.SetLimit(workers)

	for i, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = ConversionResult{InputPath: f.InputPath, OutputPath: f.OutputPath, Err: err}
				return nil
			}
			results[i] = convertFile(ctx, p, f, params)
			return nil
		})
	}
	_ = g.Wait() // workers report through results

	return results
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, p DocumentParser, f FileToConvert, params *conversionParams) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	fail := func(err error) ConversionResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrReadMarkdown, err))
	}

	html, err := renderDocument(ctx, p, string(content), params)
	if err != nil {
		return fail(err)
	}

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrCreateOutputDir, err))
	}
	if err := fileutil.WriteFileAtomic(f.OutputPath, []byte(html), filePermissions); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrWriteHTML, err))
	}

	result.Size = len(html)
	result.Duration = time.Since(start)
	return result
}

// renderDocument parses raw and lays out the output: a complete page, or
// the body fragment preceded by the table of contents.
func renderDocument(ctx context.Context, p DocumentParser, raw string, params *conversionParams) (string, error) {
	var (
		doc *md2html.ParsedDocument
		toc string
		err error
	)
	switch {
	case params.safe && params.toc:
		doc, toc = p.ParseSafelyWithTableOfContents(ctx, raw)
	case params.safe:
		doc = p.ParseSafely(ctx, raw)
	case params.toc:
		doc, toc, err = p.ParseWithTableOfContents(ctx, raw)
	default:
		doc, err = p.Parse(ctx, raw)
	}
	if err != nil {
		return "", err
	}
	stampDate(doc, params.date)

	if params.standalone {
		return p.Document(ctx, doc)
	}

	out := doc.Body
	if toc != "" {
		out = toc + out
	}
	if params.inlineCSS {
		var injector pipeline.CSSInjector = &pipeline.CSSInjection{}
		out = injector.InjectCSS(ctx, out, p.GenerateCSS())
	}
	return out, nil
}

// stampDate sets the "date" front matter key when the document has none.
// The document gets a new map; the parsed one is left as it was.
func stampDate(doc *md2html.ParsedDocument, date string) {
	if date == "" {
		return
	}
	if _, ok := doc.FrontMatter["date"]; ok {
		return
	}
	fm := make(md2html.FrontMatter, len(doc.FrontMatter)+1)
	maps.Copy(fm, doc.FrontMatter)
	fm["date"] = date
	doc.FrontMatter = fm
}

// writeStylesheet writes css to styles.css in dir and returns its path.
func writeStylesheet(dir, css string) (string, error) {
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return "", fmt.Errorf("%w: %v", ErrCreateOutputDir, err)
	}
	path := filepath.Join(dir, stylesheetName)
	if err := fileutil.WriteFileAtomic(path, []byte(css), filePermissions); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteHTML, err)
	}
	return path, nil
}

// stylesheetName is the file written by --css.
const stylesheetName = "styles.css"

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
	Bytes     int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
			continue
		}
		summary.Succeeded++
		summary.Bytes += r.Size
	}
	return summary
}

// firstError returns the error of the first failed result.
func firstError(results []ConversionResult) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}

var (
	failedLabel  = color.New(color.FgRed, color.Bold).SprintFunc()
	createdLabel = color.New(color.FgGreen).SprintFunc()
)

// printResults outputs conversion results and returns the failure count.
func printResults(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "%s %s: %v\n", failedLabel("FAILED"), r.InputPath, r.Err)
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%s, %v)\n", r.InputPath, r.OutputPath,
				humanize.Bytes(uint64(r.Size)), r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "%s %s\n", createdLabel("Created"), r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed (%s written)\n",
			summary.Succeeded, summary.Failed, humanize.Bytes(uint64(summary.Bytes)))
	}

	return summary.Failed
}

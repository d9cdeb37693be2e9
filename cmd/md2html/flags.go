package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrInvalidFlags wraps flag parsing failures.
var ErrInvalidFlags = errors.New("invalid flags")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// renderFlags select the renderer and the stylesheet.
type renderFlags struct {
	preset     string
	basic      bool
	highlight  string
	languages  []string
	math       bool
	noMarks    bool
	codeTheme  string
	stylesheet string // extra CSS file appended to the stylesheet
	assetPath  string
}

// tocFlags holds table of contents flags.
type tocFlags struct {
	enabled  bool
	title    string
	maxDepth int
	numbered bool
}

// convertFlags holds all flags for the convert and watch commands.
type convertFlags struct {
	common     commonFlags
	render     renderFlags
	toc        tocFlags
	output     string
	workers    int
	standalone bool // --html-doc
	writeCSS   bool // --css
	inlineCSS  bool
	safe       bool
	sanitize   bool
	baseURL    string
	date       string // --date: auto, auto:FORMAT or literal
}

// cssFlags holds flags for the css command.
type cssFlags struct {
	common commonFlags
	render renderFlags
	output string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs and timing")
}

// addRenderFlags adds renderer selection flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.StringVarP(&f.preset, "preset", "p", "", "typography preset name")
	fs.BoolVar(&f.basic, "basic", false, "use the basic renderer")
	fs.StringVar(&f.highlight, "highlight", "", "syntax highlighting: off, selected, all")
	fs.StringSliceVar(&f.languages, "languages", nil, "languages highlighted with --highlight=selected")
	fs.BoolVar(&f.math, "math", false, "render $...$ and $$...$$ as math")
	fs.BoolVar(&f.noMarks, "no-marks", false, "leave ==text== unchanged")
	fs.StringVar(&f.codeTheme, "code-theme", "", "chroma style for code colors")
	fs.StringVar(&f.stylesheet, "stylesheet", "", "extra CSS file appended to the stylesheet")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
}

// addTOCFlags adds TOC flags to a FlagSet.
func addTOCFlags(fs *flag.FlagSet, f *tocFlags) {
	fs.BoolVar(&f.enabled, "toc", false, "render a table of contents")
	fs.StringVar(&f.title, "toc-title", "", "table of contents heading")
	fs.IntVar(&f.maxDepth, "toc-depth", 0, "max heading depth for the TOC (1-6)")
	fs.BoolVar(&f.numbered, "toc-numbered", false, "number TOC entries")
}

// parseConvertFlags parses convert and watch flags and returns positional args.
func parseConvertFlags(name string, args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.standalone, "html-doc", false, "write complete HTML documents")
	fs.BoolVar(&f.writeCSS, "css", false, "write the stylesheet next to the output")
	fs.BoolVar(&f.inlineCSS, "inline-css", false, "embed the stylesheet in each output")
	fs.BoolVar(&f.safe, "safe", false, "render invalid documents as escaped text")
	fs.BoolVar(&f.sanitize, "sanitize", false, "sanitize the rendered HTML")
	fs.StringVar(&f.baseURL, "base-url", "", "base URL or directory for relative links")
	fs.StringVar(&f.date, "date", "", "date for documents without one (auto, auto:FORMAT or text)")

	addCommonFlags(fs, &f.common)
	addRenderFlags(fs, &f.render)
	addTOCFlags(fs, &f.toc)

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}

	return f, fs.Args(), nil
}

// parseCSSFlags parses css command flags.
func parseCSSFlags(args []string) (*cssFlags, error) {
	fs := flag.NewFlagSet("css", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := &cssFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "write the stylesheet to a file")
	addCommonFlags(fs, &f.common)
	addRenderFlags(fs, &f.render)

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q", ErrInvalidFlags, fs.Arg(0))
	}
	return f, nil
}

// isVerbose reports whether args request verbose output. It runs before
// flag parsing so that GOMAXPROCS logging follows the flag.
func isVerbose(args []string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if a == "-v" || a == "--verbose" || a == "--verbose=true" {
			return true
		}
	}
	return false
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/dateutil"
)

// convertSession is the state shared by convert and watch once flags,
// environment and config are merged.
type convertSession struct {
	flags     *convertFlags
	cfg       *config.Config
	parser    DocumentParser
	params    *conversionParams
	inputPath string
	outputDir string
	logger    *slog.Logger
}

// newConvertSession parses flags for the named command and builds the parser.
func newConvertSession(name string, args []string, env *Environment) (*convertSession, error) {
	flags, positional, err := parseConvertFlags(name, args)
	if err != nil {
		return nil, err
	}
	if err := validateWorkers(flags.workers); err != nil {
		return nil, err
	}
	date, err := dateutil.ResolveDate(flags.date, env.Now())
	if err != nil {
		return nil, err
	}

	logger := env.Logger
	if flags.common.verbose {
		logger = newLogger(env.Stderr, true)
	}

	cfg, err := loadConfig(flags.common.config, loadEnvConfig())
	if err != nil {
		return nil, err
	}
	mergeConvertFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	inputPath, err := resolveInputPath(positional, cfg)
	if err != nil {
		return nil, err
	}

	p, err := newParser(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &convertSession{
		flags:  flags,
		cfg:    cfg,
		parser: p,
		params: &conversionParams{
			standalone: cfg.Output.Standalone,
			toc:        cfg.TOC.Enabled,
			safe:       flags.safe,
			inlineCSS:  flags.inlineCSS,
			date:       date,
		},
		inputPath: inputPath,
		outputDir: resolveOutputDir(flags.output, cfg),
		logger:    logger,
	}, nil
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, args []string, env *Environment) error {
	s, err := newConvertSession("convert", args, env)
	if err != nil {
		return err
	}

	files, err := discoverFiles(s.inputPath, s.outputDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}

	workers := resolveWorkers(s.cfg.Output.Workers, len(files), runtime.GOMAXPROCS(0))
	s.logger.Debug("converting", "files", len(files), "workers", workers)

	results := convertBatch(ctx, s.parser, files, s.params, workers)
	failed := printResults(results, s.flags.common.quiet, s.flags.common.verbose, env)

	if s.cfg.Output.WriteCSS {
		path, err := writeStylesheet(s.stylesheetDir(), s.parser.GenerateCSS())
		if err != nil {
			return err
		}
		if !s.flags.common.quiet {
			fmt.Fprintf(env.Stdout, "%s %s\n", createdLabel("Created"), path)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d conversion(s) failed: %w", failed, len(results), firstError(results))
	}
	return nil
}

// stylesheetDir is the directory --css writes into: the output directory,
// else the input directory.
func (s *convertSession) stylesheetDir() string {
	if s.outputDir != "" {
		if strings.EqualFold(filepath.Ext(s.outputDir), "."+htmlExt) {
			return filepath.Dir(s.outputDir)
		}
		return s.outputDir
	}
	if info, err := os.Stat(s.inputPath); err == nil && info.IsDir() {
		return s.inputPath
	}
	return filepath.Dir(s.inputPath)
}

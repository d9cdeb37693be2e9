package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-md2html/internal/fileutil"
)

// runCSS prints the stylesheet for the selected preset and renderer, or
// writes it to the -o file.
func runCSS(args []string, env *Environment) error {
	flags, err := parseCSSFlags(args)
	if err != nil {
		return err
	}

	logger := env.Logger
	if flags.common.verbose {
		logger = newLogger(env.Stderr, true)
	}

	cfg, err := loadConfig(flags.common.config, loadEnvConfig())
	if err != nil {
		return err
	}
	mergeRenderFlags(&flags.render, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	p, err := newParser(cfg, logger)
	if err != nil {
		return err
	}
	css := p.GenerateCSS()

	if flags.output == "" {
		_, err := fmt.Fprint(env.Stdout, css)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(flags.output), dirPermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrCreateOutputDir, err)
	}
	if err := fileutil.WriteFileAtomic(flags.output, []byte(css), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteHTML, err)
	}
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "%s %s\n", createdLabel("Created"), flags.output)
	}
	return nil
}

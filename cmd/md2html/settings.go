package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/hints"
	"github.com/alnah/go-md2html/typography"
)

// ErrReadCSS wraps failures to read the extra stylesheet.
var ErrReadCSS = errors.New("failed to read CSS file")

// loadConfig loads the config named by the flag, falling back to
// MD2HTML_CONFIG, then applies environment values.
// Without either, it starts from DefaultConfig.
func loadConfig(flagConfig string, env *envConfig) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = env.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		var err error
		cfg, err = config.LoadConfig(name)
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(env, cfg)
	return cfg, nil
}

// mergeRenderFlags applies renderer flags to cfg. Flags win over the config.
func mergeRenderFlags(f *renderFlags, cfg *config.Config) {
	if f.preset != "" {
		cfg.Typography.Preset = f.preset
	}
	if f.basic {
		cfg.Render.Variant = config.VariantBasic
	}
	if f.highlight != "" {
		cfg.Render.Highlight = f.highlight
	}
	if len(f.languages) > 0 {
		cfg.Render.Languages = f.languages
	}
	if f.math {
		cfg.Render.Math = true
	}
	if f.noMarks {
		off := false
		cfg.Render.Marks = &off
	}
	if f.codeTheme != "" {
		cfg.Render.CodeTheme = f.codeTheme
	}
	if f.stylesheet != "" {
		cfg.Render.Stylesheet = f.stylesheet
	}
	if f.assetPath != "" {
		cfg.Assets.BasePath = f.assetPath
	}
}

// mergeConvertFlags applies convert flags to cfg. Flags win over the config.
func mergeConvertFlags(f *convertFlags, cfg *config.Config) {
	mergeRenderFlags(&f.render, cfg)

	if f.workers > 0 {
		cfg.Output.Workers = f.workers
	}
	if f.standalone {
		cfg.Output.Standalone = true
	}
	if f.writeCSS {
		cfg.Output.WriteCSS = true
	}
	if f.sanitize {
		cfg.Render.Sanitize = true
	}
	if f.baseURL != "" {
		cfg.Render.BaseURL = f.baseURL
	}
	if f.toc.enabled {
		cfg.TOC.Enabled = true
	}
	if f.toc.title != "" {
		cfg.TOC.Title = f.toc.title
	}
	if f.toc.maxDepth > 0 {
		cfg.TOC.MaxDepth = f.toc.maxDepth
	}
	if f.toc.numbered {
		cfg.TOC.Numbered = true
	}
}

// highlightModes maps config values to render modes.
var highlightModes = map[string]md2html.HighlightMode{
	config.HighlightOff:      md2html.HighlightOff,
	config.HighlightSelected: md2html.HighlightSelected,
	config.HighlightAll:      md2html.HighlightAll,
}

// renderOptions converts the config into parser render options.
func renderOptions(cfg *config.Config) md2html.RenderOptions {
	opts := md2html.DefaultRenderOptions()
	if mode, ok := highlightModes[cfg.Render.Highlight]; ok {
		opts.Highlight = mode
	}
	opts.Languages = cfg.Render.Languages
	opts.Math = cfg.Render.Math
	opts.Highlights = cfg.Render.MarksEnabled()
	opts.Code = md2html.CodeOptions{
		CopyButton:  cfg.Code.CopyButtonEnabled(),
		LineNumbers: cfg.Code.LineNumbers,
		Filename:    cfg.Code.FilenameEnabled(),
		RunButton:   cfg.Code.RunButton,
		Wrap:        cfg.Code.Wrap,
	}
	if cfg.TOC.MaxDepth > 0 {
		opts.TOC.MaxDepth = cfg.TOC.MaxDepth
	}
	opts.TOC.Title = cfg.TOC.Title
	opts.TOC.Numbered = cfg.TOC.Numbered
	return opts
}

// parserOptions translates a validated config into parser options.
func parserOptions(cfg *config.Config, logger *slog.Logger) ([]md2html.Option, error) {
	variant := md2html.VariantEnhanced
	if cfg.Render.Variant == config.VariantBasic {
		variant = md2html.VariantBasic
	}

	opts := []md2html.Option{
		md2html.WithVariant(variant),
		md2html.WithRenderOptions(renderOptions(cfg)),
		md2html.WithSanitizer(cfg.Render.Sanitize),
		md2html.WithBaseURL(cfg.Render.BaseURL),
		md2html.WithLogger(logger),
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, md2html.WithAssetPath(cfg.Assets.BasePath))
	}
	if cfg.Render.CodeTheme != "" {
		opts = append(opts, md2html.WithHighlightStyle(cfg.Render.CodeTheme))
	}

	if isZeroTypography(cfg.Typography.Overrides) {
		if cfg.Typography.Preset != "" {
			opts = append(opts, md2html.WithPreset(cfg.Typography.Preset))
		}
	} else {
		typo, err := mergedTypography(cfg)
		if err != nil {
			return nil, err
		}
		opts = append(opts, md2html.WithTypography(typo))
	}

	if cfg.Render.Stylesheet != "" {
		css, err := os.ReadFile(cfg.Render.Stylesheet) // #nosec G304 -- user-provided path
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadCSS, err)
		}
		opts = append(opts, md2html.WithStylesheet(string(css)))
	}

	return opts, nil
}

// mergedTypography loads the configured preset and overlays the overrides.
func mergedTypography(cfg *config.Config) (typography.Configuration, error) {
	name := cfg.Typography.Preset
	if name == "" {
		name = typography.DefaultPreset
	}

	resolver, err := assets.NewAssetResolver(cfg.Assets.BasePath)
	if err != nil {
		return typography.Configuration{}, fmt.Errorf("%w: %v", md2html.ErrInvalidAsset, err)
	}
	data, err := resolver.LoadPreset(name)
	if err != nil {
		if errors.Is(err, assets.ErrPresetNotFound) || errors.Is(err, assets.ErrInvalidAssetName) {
			return typography.Configuration{}, fmt.Errorf("%w: %q", md2html.ErrUnknownPreset, name)
		}
		return typography.Configuration{}, err
	}
	base, err := typography.Load(data)
	if err != nil {
		return typography.Configuration{}, fmt.Errorf("loading preset %q: %w", name, err)
	}
	return base.Merge(cfg.Typography.Overrides), nil
}

func isZeroTypography(c typography.Configuration) bool {
	return c.FontFamily == "" && c.FontSize == "" && !c.Responsive &&
		len(c.Headings) == 0 && len(c.Elements) == 0 && len(c.Selectors) == 0
}

// newParser builds a parser from the config.
func newParser(cfg *config.Config, logger *slog.Logger) (*md2html.Parser, error) {
	opts, err := parserOptions(cfg, logger)
	if err != nil {
		return nil, err
	}
	p, err := md2html.NewParser(opts...)
	if err != nil {
		return nil, fmt.Errorf("creating parser: %w", err)
	}
	return p, nil
}

// Package config loads the YAML configuration of the md2html command.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/yamlutil"
	"github.com/alnah/go-md2html/typography"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidConfig   = errors.New("invalid config")
)

// AppDirName is the directory searched under the user config directory.
const AppDirName = "go-md2html"

// Renderer variants and highlight modes as written in config files.
const (
	VariantBasic    = "basic"
	VariantEnhanced = "enhanced"

	HighlightOff      = "off"
	HighlightSelected = "selected"
	HighlightAll      = "all"
)

// Limits.
const (
	MaxWorkers     = 64
	MaxTOCDepth    = 6
	MaxTitleLength = 100
)

// Config holds all configuration for document generation.
type Config struct {
	Input      InputConfig      `yaml:"input"`
	Output     OutputConfig     `yaml:"output"`
	Render     RenderConfig     `yaml:"render"`
	Code       CodeConfig       `yaml:"code"`
	TOC        TOCConfig        `yaml:"toc"`
	Typography TypographyConfig `yaml:"typography"`
	Assets     AssetsConfig     `yaml:"assets"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // empty = next to the source
	Standalone bool   `yaml:"standalone"` // full HTML page instead of a fragment
	WriteCSS   bool   `yaml:"writeCSS"`   // write the stylesheet next to the output
	Workers    int    `yaml:"workers"`    // 0 = GOMAXPROCS
}

// RenderConfig selects the renderer and its text features.
type RenderConfig struct {
	Variant    string   `yaml:"variant"`
	Highlight  string   `yaml:"highlight"`
	Languages  []string `yaml:"languages"`
	Math       bool     `yaml:"math"`
	Marks      *bool    `yaml:"marks"` // ==text== highlights, default on
	Sanitize   bool     `yaml:"sanitize"`
	BaseURL    string   `yaml:"baseURL"`
	CodeTheme  string   `yaml:"codeTheme"`
	Stylesheet string   `yaml:"stylesheet"` // path to extra CSS
}

// CodeConfig defines code block options.
type CodeConfig struct {
	CopyButton  *bool `yaml:"copyButton"` // default on
	LineNumbers bool  `yaml:"lineNumbers"`
	Filename    *bool `yaml:"filename"` // default on
	RunButton   bool  `yaml:"runButton"`
	Wrap        bool  `yaml:"wrap"`
}

// TOCConfig defines table of contents options.
type TOCConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Title    string `yaml:"title"`
	MaxDepth int    `yaml:"maxDepth"` // 1-6, default 3
	Numbered bool   `yaml:"numbered"`
}

// TypographyConfig selects a preset and optional overrides merged on top.
type TypographyConfig struct {
	Preset    string                   `yaml:"preset"`
	Overrides typography.Configuration `yaml:"overrides"`
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // empty = embedded assets
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (c *Config) validate() error {
	if err := validation.ValidateStruct(&c.Output,
		validation.Field(&c.Output.Workers, validation.Min(0), validation.Max(MaxWorkers)),
	); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	if err := c.Render.Validate(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := validation.ValidateStruct(&c.TOC,
		validation.Field(&c.TOC.Title, validation.Length(0, MaxTitleLength)),
		validation.Field(&c.TOC.MaxDepth, validation.Min(0), validation.Max(MaxTOCDepth)),
	); err != nil {
		return fmt.Errorf("toc: %w", err)
	}
	if err := c.Typography.Overrides.Validate(); err != nil {
		return fmt.Errorf("typography.overrides: %w", err)
	}
	return nil
}

// Validate checks the render section.
func (r *RenderConfig) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Variant, validation.In(VariantBasic, VariantEnhanced)),
		validation.Field(&r.Highlight, validation.In(HighlightOff, HighlightSelected, HighlightAll)),
		validation.Field(&r.Languages,
			validation.When(r.Highlight == HighlightSelected, validation.Required),
			validation.Each(validation.Required),
		),
		validation.Field(&r.BaseURL, validation.Length(0, 2048)),
	)
}

// MarksEnabled reports whether ==text== highlights are enabled.
func (r RenderConfig) MarksEnabled() bool {
	return r.Marks == nil || *r.Marks
}

// CopyButtonEnabled reports whether code blocks get a copy button.
func (c CodeConfig) CopyButtonEnabled() bool {
	return c.CopyButton == nil || *c.CopyButton
}

// FilenameEnabled reports whether code block filenames are shown.
func (c CodeConfig) FilenameEnabled() bool {
	return c.Filename == nil || *c.Filename
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() *Config {
	return &Config{
		Render: RenderConfig{Variant: VariantEnhanced, Highlight: HighlightAll},
		TOC:    TOCConfig{MaxDepth: 3},
	}
}

// LoadConfig loads configuration from a file path or config name.
// A value containing a path separator is a file path. Otherwise it is a
// name searched in the current directory and the user config directory.
// Unset fields keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the files tried for a config name, in order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppDirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing path of SearchPaths.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}

package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/alnah/go-md2html/internal/config"
)

// envPrefix marks the environment variables read by md2html. A .env file in
// the working directory is loaded into the environment at startup.
const envPrefix = "MD2HTML_"

// envConfig holds configuration from environment variables.
type envConfig struct {
	ConfigPath string // MD2HTML_CONFIG: config file name or path
	Preset     string // MD2HTML_PRESET: typography preset
	InputDir   string // MD2HTML_INPUT_DIR: default input directory
	OutputDir  string // MD2HTML_OUTPUT_DIR: default output directory
	BaseURL    string // MD2HTML_BASE_URL: base for relative links
	AssetPath  string // MD2HTML_ASSET_PATH: custom asset directory
	CodeTheme  string // MD2HTML_CODE_THEME: chroma style
	Workers    int    // MD2HTML_WORKERS: parallel workers
}

// knownEnvVars lists valid MD2HTML_* environment variables.
var knownEnvVars = map[string]bool{
	"MD2HTML_CONFIG":     true,
	"MD2HTML_PRESET":     true,
	"MD2HTML_INPUT_DIR":  true,
	"MD2HTML_OUTPUT_DIR": true,
	"MD2HTML_BASE_URL":   true,
	"MD2HTML_ASSET_PATH": true,
	"MD2HTML_CODE_THEME": true,
	"MD2HTML_WORKERS":    true,
}

// loadEnvConfig reads configuration from environment variables.
// An unparsable or non-positive MD2HTML_WORKERS is ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("MD2HTML_CONFIG"),
		Preset:     os.Getenv("MD2HTML_PRESET"),
		InputDir:   os.Getenv("MD2HTML_INPUT_DIR"),
		OutputDir:  os.Getenv("MD2HTML_OUTPUT_DIR"),
		BaseURL:    os.Getenv("MD2HTML_BASE_URL"),
		AssetPath:  os.Getenv("MD2HTML_ASSET_PATH"),
		CodeTheme:  os.Getenv("MD2HTML_CODE_THEME"),
	}

	if workers := os.Getenv("MD2HTML_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars writes a warning for each unrecognized MD2HTML_* variable.
func warnUnknownEnvVars(w io.Writer) {
	var unknown []string
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
	}
}

// applyEnvConfig applies environment values to fields the config file left
// empty. Priority: CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Preset != "" && cfg.Typography.Preset == "" {
		cfg.Typography.Preset = env.Preset
	}
	if env.InputDir != "" && cfg.Input.DefaultDir == "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.BaseURL != "" && cfg.Render.BaseURL == "" {
		cfg.Render.BaseURL = env.BaseURL
	}
	if env.AssetPath != "" && cfg.Assets.BasePath == "" {
		cfg.Assets.BasePath = env.AssetPath
	}
	if env.CodeTheme != "" && cfg.Render.CodeTheme == "" {
		cfg.Render.CodeTheme = env.CodeTheme
	}
	if env.Workers > 0 && cfg.Output.Workers == 0 {
		cfg.Output.Workers = env.Workers
	}
}

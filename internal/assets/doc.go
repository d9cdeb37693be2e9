// Package assets provides the typography presets, base stylesheets and page
// templates used to render Markdown to HTML.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in assets compiled in with go:embed
//	    ├── FilesystemLoader  - assets from a directory on disk
//	    └── AssetResolver     - custom directory first, embedded fallback
//
// # Directory Structure
//
//	{basePath}/
//	├── presets/
//	│   └── {name}.yaml          # typography configuration
//	├── styles/
//	│   └── {name}.css           # base stylesheet (code blocks, TOC, math)
//	└── templates/
//	    └── {name}.html          # standalone document template
//
// Asset names are validated to prevent path traversal, and FilesystemLoader
// resolves symlinks before checking that paths stay within basePath.
package assets

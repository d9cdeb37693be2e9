package assets

import "errors"

// AssetResolver tries a custom directory first and falls back to the
// embedded assets when an asset is not found there.
type AssetResolver struct {
	custom   AssetLoader // nil if no custom path configured
	embedded AssetLoader
}

// NewAssetResolver creates an AssetResolver. An empty customBasePath uses
// embedded assets only.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	resolver := &AssetResolver{embedded: NewEmbeddedLoader()}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// Load implements AssetLoader with custom-first lookup. Only not-found
// errors fall back; validation and I/O errors are returned as is.
func (r *AssetResolver) Load(kind Kind, name string) ([]byte, error) {
	// No custom loader: embedded only
	if r.custom == nil {
		return r.embedded.Load(kind, name)
	}

	// Try custom loader first
	content, err := r.custom.Load(kind, name)
	if err == nil {
		return content, nil
	}

	// Only fall back for "not found" errors, not validation or I/O errors
	if !isNotFoundError(err) {
		return nil, err
	}
	return r.embedded.Load(kind, name)
}

// LoadPreset loads a typography preset YAML.
func (r *AssetResolver) LoadPreset(name string) ([]byte, error) {
	return r.Load(KindPreset, name)
}

// HasCustomLoader reports whether a custom directory is configured.
func (r *AssetResolver) HasCustomLoader() bool {
	return r.custom != nil
}

// isNotFoundError reports whether err is one of the per-kind not found
// sentinels.
func isNotFoundError(err error) bool {
	return errors.Is(err, ErrPresetNotFound) ||
		errors.Is(err, ErrStyleNotFound) ||
		errors.Is(err, ErrTemplateNotFound)
}

// Compile-time interface check.
var _ AssetLoader = (*AssetResolver)(nil)

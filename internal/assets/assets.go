package assets

// defaultLoader serves the package-level helpers.
var defaultLoader = NewEmbeddedLoader()

// LoadPreset returns the YAML of a built-in typography preset.
func LoadPreset(name string) ([]byte, error) {
	return defaultLoader.Load(KindPreset, name)
}

// PresetNames lists the built-in typography presets.
func PresetNames() []string {
	return defaultLoader.Names(KindPreset)
}

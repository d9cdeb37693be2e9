package typography

import (
	"errors"
	"fmt"

	"github.com/alnah/go-md2html/internal/assets"
)

// DefaultPreset is the preset used when none is named.
const DefaultPreset = assets.DefaultPresetName

// Preset loads a built-in configuration by name.
func Preset(name string) (Configuration, error) {
	data, err := assets.LoadPreset(name)
	if err != nil {
		if errors.Is(err, assets.ErrPresetNotFound) || errors.Is(err, assets.ErrInvalidAssetName) {
			return Configuration{}, fmt.Errorf("%w: %q (available: %v)", ErrUnknownPreset, name, PresetNames())
		}
		return Configuration{}, err
	}
	return Load(data)
}

// MustPreset is like Preset but panics on error. It is meant for the
// built-in names, which are known to load.
func MustPreset(name string) Configuration {
	c, err := Preset(name)
	if err != nil {
		panic(err)
	}
	return c
}

// PresetNames lists the built-in presets.
func PresetNames() []string {
	return assets.PresetNames()
}

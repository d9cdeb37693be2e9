package assets

// Kind identifies a family of assets: where they live and how they are named.
type Kind struct {
	dir      string
	ext      string
	notFound error
}

var (
	KindPreset   = Kind{dir: "presets", ext: ".yaml", notFound: ErrPresetNotFound}
	KindStyle    = Kind{dir: "styles", ext: ".css", notFound: ErrStyleNotFound}
	KindTemplate = Kind{dir: "templates", ext: ".html", notFound: ErrTemplateNotFound}
)

// String returns the directory name of the kind.
func (k Kind) String() string { return k.dir }

// Built-in asset names.
const (
	DefaultPresetName   = "default"
	DefaultStyleName    = "base"
	DefaultTemplateName = "document"
)

// AssetLoader loads raw asset content by kind and name (without extension).
// Implementations return an error wrapping the kind's not-found sentinel
// when the asset does not exist, and ErrInvalidAssetName for unsafe names.
type AssetLoader interface {
	Load(kind Kind, name string) ([]byte, error)
}

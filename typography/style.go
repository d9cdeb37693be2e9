package typography

import "maps"

// Font groups the text properties of a style. Empty fields are unset.
type Font struct {
	Family        string     `yaml:"family,omitempty"`
	Size          FontSize   `yaml:"size,omitempty"`
	Weight        FontWeight `yaml:"weight,omitempty"`
	Align         Alignment  `yaml:"align,omitempty"`
	Color         string     `yaml:"color,omitempty"`
	LineHeight    string     `yaml:"lineHeight,omitempty"`
	LetterSpacing string     `yaml:"letterSpacing,omitempty"`
	Decoration    string     `yaml:"decoration,omitempty"`
	Transform     string     `yaml:"transform,omitempty"`
}

// Background groups background properties.
type Background struct {
	Color string `yaml:"color,omitempty"`
	Image string `yaml:"image,omitempty"`
}

// Spacing is a four-sided box value used for padding and margin.
type Spacing struct {
	Top    string `yaml:"top,omitempty"`
	Right  string `yaml:"right,omitempty"`
	Bottom string `yaml:"bottom,omitempty"`
	Left   string `yaml:"left,omitempty"`
}

// Uniform returns a Spacing with the same value on every side.
func Uniform(v string) *Spacing {
	return &Spacing{Top: v, Right: v, Bottom: v, Left: v}
}

// Border groups border properties.
type Border struct {
	Width  string `yaml:"width,omitempty"`
	Style  string `yaml:"style,omitempty"`
	Color  string `yaml:"color,omitempty"`
	Radius string `yaml:"radius,omitempty"`
}

// Style is the styling of one heading level, element kind or selector.
// A nil group is unset and contributes nothing to the CSS. Classes are
// injected into the rendered tag; Properties are emitted as extra CSS
// declarations.
type Style struct {
	Font       *Font             `yaml:"font,omitempty"`
	Background *Background       `yaml:"background,omitempty"`
	Padding    *Spacing          `yaml:"padding,omitempty"`
	Margin     *Spacing          `yaml:"margin,omitempty"`
	Border     *Border           `yaml:"border,omitempty"`
	Classes    []string          `yaml:"classes,omitempty"`
	Properties map[string]string `yaml:"properties,omitempty"`
}

// IsZero reports whether no group of the style is set.
func (s Style) IsZero() bool {
	return s.Font == nil && s.Background == nil && s.Padding == nil &&
		s.Margin == nil && s.Border == nil && len(s.Classes) == 0 && len(s.Properties) == 0
}

// Merge returns s overlaid with other. For each field of each group the
// value from other wins when set. Classes are unioned in first-seen order
// and properties from other overwrite colliding keys. Neither input is
// modified.
func (s Style) Merge(other Style) Style {
	return Style{
		Font:       mergeFont(s.Font, other.Font),
		Background: mergeBackground(s.Background, other.Background),
		Padding:    mergeSpacing(s.Padding, other.Padding),
		Margin:     mergeSpacing(s.Margin, other.Margin),
		Border:     mergeBorder(s.Border, other.Border),
		Classes:    unionClasses(s.Classes, other.Classes),
		Properties: mergeProperties(s.Properties, other.Properties),
	}
}

func pick[T ~string](base, over T) T {
	if over != "" {
		return over
	}
	return base
}

func mergeFont(a, b *Font) *Font {
	if a == nil && b == nil {
		return nil
	}
	var x, y Font
	if a != nil {
		x = *a
	}
	if b != nil {
		y = *b
	}
	return &Font{
		Family:        pick(x.Family, y.Family),
		Size:          pick(x.Size, y.Size),
		Weight:        pick(x.Weight, y.Weight),
		Align:         pick(x.Align, y.Align),
		Color:         pick(x.Color, y.Color),
		LineHeight:    pick(x.LineHeight, y.LineHeight),
		LetterSpacing: pick(x.LetterSpacing, y.LetterSpacing),
		Decoration:    pick(x.Decoration, y.Decoration),
		Transform:     pick(x.Transform, y.Transform),
	}
}

func mergeBackground(a, b *Background) *Background {
	if a == nil && b == nil {
		return nil
	}
	var x, y Background
	if a != nil {
		x = *a
	}
	if b != nil {
		y = *b
	}
	return &Background{Color: pick(x.Color, y.Color), Image: pick(x.Image, y.Image)}
}

func mergeSpacing(a, b *Spacing) *Spacing {
	if a == nil && b == nil {
		return nil
	}
	var x, y Spacing
	if a != nil {
		x = *a
	}
	if b != nil {
		y = *b
	}
	return &Spacing{
		Top:    pick(x.Top, y.Top),
		Right:  pick(x.Right, y.Right),
		Bottom: pick(x.Bottom, y.Bottom),
		Left:   pick(x.Left, y.Left),
	}
}

func mergeBorder(a, b *Border) *Border {
	if a == nil && b == nil {
		return nil
	}
	var x, y Border
	if a != nil {
		x = *a
	}
	if b != nil {
		y = *b
	}
	return &Border{
		Width:  pick(x.Width, y.Width),
		Style:  pick(x.Style, y.Style),
		Color:  pick(x.Color, y.Color),
		Radius: pick(x.Radius, y.Radius),
	}
}

func unionClasses(a, b []string) []string {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, c := range append(append([]string(nil), a...), b...) {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

func mergeProperties(a, b map[string]string) map[string]string {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]string, len(a)+len(b))
	maps.Copy(out, a)
	maps.Copy(out, b)
	return out
}
